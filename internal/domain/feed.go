package domain

import "github.com/google/uuid"

// ProfileNameUnknown is the display-name fallback for a post whose author
// profile cannot be resolved.
const ProfileNameUnknown = "Unknown"

// FeedEntry is the denormalized read-time join of a Post with the current
// state of its author's Profile. It is never persisted: it is recomputed on
// every full feed load and patched incrementally by post mutations.
type FeedEntry struct {
	Post

	// Username and ProfilePictureURL are nil when the author profile is
	// unresolved; clients treat nil as the fallback-glyph trigger.
	Username          *string
	ProfilePictureURL *string

	// ProfileName is the author's display name, or ProfileNameUnknown when
	// the profile is missing or the lookup failed.
	ProfileName string
}

// NewFeedEntry joins a post with its (possibly nil) author profile,
// applying the fallback rules: nil username/picture and "Unknown" display
// name for an unresolved author, and non-nil empty likes/comments.
func NewFeedEntry(post Post, author *Profile) FeedEntry {
	entry := FeedEntry{
		Post:        post,
		ProfileName: ProfileNameUnknown,
	}
	if entry.Likes == nil {
		entry.Likes = []uuid.UUID{}
	}
	if entry.Comments == nil {
		entry.Comments = []Comment{}
	}
	if author == nil {
		return entry
	}

	username := author.Username
	entry.Username = &username
	entry.ProfilePictureURL = author.ProfilePictureURL
	if author.Name != "" {
		entry.ProfileName = author.Name
	}
	return entry
}
