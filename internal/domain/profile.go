package domain

import (
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
)

// UnknownInitial is the sentinel glyph shown when a profile has no usable
// username to derive an avatar initial from.
const UnknownInitial = "U"

// Profile is a user's public directory record. Profiles and posts are
// separate, independently mutable records; every feed read joins a post
// with the current state of its author's profile.
type Profile struct {
	ID                uuid.UUID
	Username          string
	Name              string
	Bio               string
	ProfilePictureURL *string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// Initial returns the uppercased first rune of the username, or
// UnknownInitial when the username is empty. It is total: it never panics
// on malformed records.
func (p Profile) Initial() string {
	for _, r := range p.Username {
		return string(unicode.ToUpper(r))
	}
	return UnknownInitial
}

// IsMalformed reports whether the profile violates the non-empty-username
// invariant. Malformed profiles are skipped in search and degrade to
// fallback values in the feed.
func (p Profile) IsMalformed() bool {
	return strings.TrimSpace(p.Username) == ""
}

// SearchResult is a profile matched against a directory query. The ID is
// carried explicitly because clients navigate by it.
type SearchResult struct {
	ID                uuid.UUID `json:"id"`
	Username          string    `json:"username"`
	Name              string    `json:"name"`
	Bio               string    `json:"bio,omitempty"`
	ProfilePictureURL *string   `json:"profilePictureUrl,omitempty"`
}

// ToSearchResult converts a profile into its search projection.
func (p Profile) ToSearchResult() SearchResult {
	return SearchResult{
		ID:                p.ID,
		Username:          p.Username,
		Name:              p.Name,
		Bio:               p.Bio,
		ProfilePictureURL: p.ProfilePictureURL,
	}
}
