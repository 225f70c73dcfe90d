package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestProfile_Initial(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		username string
		want     string
	}{
		{"ascii lowercase", "alice", "A"},
		{"already uppercase", "Pedro", "P"},
		{"digit first", "42founders", "4"},
		{"unicode", "éloise", "É"},
		{"empty username", "", UnknownInitial},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p := Profile{Username: tt.username}
			assert.Equal(t, tt.want, p.Initial())
		})
	}
}

func TestProfile_IsMalformed(t *testing.T) {
	t.Parallel()

	assert.True(t, Profile{Username: ""}.IsMalformed())
	assert.True(t, Profile{Username: "   "}.IsMalformed())
	assert.False(t, Profile{Username: "alice"}.IsMalformed())
}

func TestNewFeedEntry_ResolvedAuthor(t *testing.T) {
	t.Parallel()

	post := Post{ID: uuid.New(), UserID: uuid.New(), Content: "shipping v1"}
	pic := "https://cdn.example.com/a.png"
	author := &Profile{ID: post.UserID, Username: "alice", Name: "Alice Liddell", ProfilePictureURL: &pic}

	entry := NewFeedEntry(post, author)

	assert.Equal(t, "Alice Liddell", entry.ProfileName)
	assert.Equal(t, "alice", *entry.Username)
	assert.Equal(t, &pic, entry.ProfilePictureURL)
}

func TestNewFeedEntry_UnresolvedAuthor(t *testing.T) {
	t.Parallel()

	entry := NewFeedEntry(Post{ID: uuid.New()}, nil)

	assert.Nil(t, entry.Username)
	assert.Nil(t, entry.ProfilePictureURL)
	assert.Equal(t, ProfileNameUnknown, entry.ProfileName)
}

func TestNewFeedEntry_DefaultsLikesAndComments(t *testing.T) {
	t.Parallel()

	entry := NewFeedEntry(Post{ID: uuid.New()}, nil)

	assert.NotNil(t, entry.Likes)
	assert.NotNil(t, entry.Comments)
	assert.Empty(t, entry.Likes)
	assert.Empty(t, entry.Comments)
}

func TestNewFeedEntry_EmptyAuthorName(t *testing.T) {
	t.Parallel()

	author := &Profile{ID: uuid.New(), Username: "ghost"}
	entry := NewFeedEntry(Post{UserID: author.ID}, author)

	assert.Equal(t, ProfileNameUnknown, entry.ProfileName)
	assert.Equal(t, "ghost", *entry.Username)
}
