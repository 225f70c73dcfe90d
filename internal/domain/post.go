package domain

import (
	"time"

	"github.com/google/uuid"
)

// Post is a short text post in the startup-journey feed.
//
// UserID references a Profile but is deliberately not enforced by a schema
// constraint: a dangling reference degrades the joined display fields at
// read time rather than failing the feed load.
//
// Likes and Comments are part of the stored record but no operation in this
// backend mutates them; they default to empty collections when absent.
type Post struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Content   string
	Likes     []uuid.UUID
	Comments  []Comment
	CreatedAt time.Time
}

// Comment is an ordered reply attached to a post.
type Comment struct {
	UserID    uuid.UUID `json:"userId"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
}
