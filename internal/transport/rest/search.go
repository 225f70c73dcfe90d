package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/foundersapp/founders-backend/internal/domain"
	"github.com/foundersapp/founders-backend/internal/service/search"
)

// noMatchesMessage is shown verbatim by clients when a query matches nothing.
const noMatchesMessage = "No user found with that username or name."

// searchService defines the minimal interface needed by SearchHandler.
type searchService interface {
	Search(ctx context.Context, query string) (search.Result, error)
}

// SearchHandler serves the directory search endpoint.
type SearchHandler struct {
	svc searchService
	log *slog.Logger
}

// NewSearchHandler creates a SearchHandler.
func NewSearchHandler(svc searchService, logger *slog.Logger) *SearchHandler {
	return &SearchHandler{svc: svc, log: logger.With("handler", "search")}
}

type searchResponse struct {
	Profiles []domain.SearchResult `json:"profiles"`
	Message  string                `json:"message,omitempty"`
}

// Search handles GET /api/search?q=. An empty query returns an empty result
// without consulting the store.
func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")

	result, err := h.svc.Search(r.Context(), query)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	resp := searchResponse{Profiles: result.Profiles}
	if resp.Profiles == nil {
		resp.Profiles = []domain.SearchResult{}
	}
	if result.NoMatches {
		resp.Message = noMatchesMessage
	}
	writeJSON(w, http.StatusOK, resp)
}
