// Package search implements directory search over the full profile set.
//
// Filtering is client-side over the whole directory by design: the store
// exposes no server-side substring queries. This bounds the engine to
// directories of modest size — a scaling limit, not a bug.
package search

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/foundersapp/founders-backend/internal/domain"
)

// profileRepo defines the profile repository interface needed by the engine.
type profileRepo interface {
	List(ctx context.Context) ([]domain.Profile, error)
}

// Service is the profile directory search engine.
type Service struct {
	log      *slog.Logger
	profiles profileRepo
}

// NewService creates a new search service instance.
func NewService(logger *slog.Logger, profiles profileRepo) *Service {
	return &Service{
		log:      logger.With("service", "search"),
		profiles: profiles,
	}
}

// Result is the outcome of one directory search.
type Result struct {
	Profiles []domain.SearchResult

	// NoMatches reports the "no results" condition: a non-empty query that
	// matched nothing. An empty query yields an empty result with
	// NoMatches false (no search active).
	NoMatches bool
}

// Search filters the profile directory by case-insensitive substring match
// against username and display name, in the store's enumeration order, with
// no ranking. Keystroke, search-button, and Enter triggers all invoke this
// one operation.
//
// A malformed profile (empty username) is skipped and logged rather than
// aborting the batch.
func (s *Service) Search(ctx context.Context, query string) (Result, error) {
	if query == "" {
		return Result{Profiles: []domain.SearchResult{}}, nil
	}

	profiles, err := s.profiles.List(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("search: list profiles: %w", err)
	}

	queryLower := strings.ToLower(query)

	matches := []domain.SearchResult{}
	for _, p := range profiles {
		if p.IsMalformed() {
			s.log.WarnContext(ctx, "skipping malformed profile",
				slog.String("profile_id", p.ID.String()),
			)
			continue
		}
		if strings.Contains(strings.ToLower(p.Username), queryLower) ||
			strings.Contains(strings.ToLower(p.Name), queryLower) {
			matches = append(matches, p.ToSearchResult())
		}
	}

	return Result{
		Profiles:  matches,
		NoMatches: len(matches) == 0,
	}, nil
}
