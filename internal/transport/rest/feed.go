package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/foundersapp/founders-backend/internal/domain"
)

// feedService defines the minimal interface needed by FeedHandler.
type feedService interface {
	Load(ctx context.Context) ([]domain.FeedEntry, error)
}

// FeedHandler serves the feed read endpoint.
type FeedHandler struct {
	svc feedService
	log *slog.Logger
}

// NewFeedHandler creates a FeedHandler.
func NewFeedHandler(svc feedService, logger *slog.Logger) *FeedHandler {
	return &FeedHandler{svc: svc, log: logger.With("handler", "feed")}
}

type feedEntryResponse struct {
	ID                string           `json:"id"`
	UserID            string           `json:"userId"`
	Content           string           `json:"content"`
	Likes             []uuid.UUID      `json:"likes"`
	Comments          []domain.Comment `json:"comments"`
	CreatedAt         time.Time        `json:"createdAt"`
	Username          *string          `json:"username"`
	ProfilePictureURL *string          `json:"profilePictureUrl"`
	ProfileName       string           `json:"profileName"`
}

type feedResponse struct {
	Entries []feedEntryResponse `json:"entries"`
}

// List handles GET /api/feed. Every call is a fresh full load; the feed is
// never served stale from the cache.
func (h *FeedHandler) List(w http.ResponseWriter, r *http.Request) {
	entries, err := h.svc.Load(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	out := make([]feedEntryResponse, len(entries))
	for i, e := range entries {
		out[i] = toFeedEntryResponse(e)
	}
	writeJSON(w, http.StatusOK, feedResponse{Entries: out})
}

func toFeedEntryResponse(e domain.FeedEntry) feedEntryResponse {
	return feedEntryResponse{
		ID:                e.ID.String(),
		UserID:            e.UserID.String(),
		Content:           e.Content,
		Likes:             e.Likes,
		Comments:          e.Comments,
		CreatedAt:         e.CreatedAt,
		Username:          e.Username,
		ProfilePictureURL: e.ProfilePictureURL,
		ProfileName:       e.ProfileName,
	}
}
