package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/foundersapp/founders-backend/internal/domain"
	"github.com/foundersapp/founders-backend/internal/service/profile"
)

// profileService defines the minimal interface needed by ProfileHandler.
type profileService interface {
	Resolve(ctx context.Context, userID uuid.UUID) (*domain.Profile, error)
	Badge(ctx context.Context) string
	Update(ctx context.Context, input profile.UpdateInput) (*domain.Profile, error)
	UpdatePicture(ctx context.Context, input profile.UpdatePictureInput) (*domain.Profile, error)
}

// ProfileHandler serves profile REST endpoints.
type ProfileHandler struct {
	svc profileService
	log *slog.Logger
}

// NewProfileHandler creates a ProfileHandler.
func NewProfileHandler(svc profileService, logger *slog.Logger) *ProfileHandler {
	return &ProfileHandler{svc: svc, log: logger.With("handler", "profile")}
}

type profileResponse struct {
	ID                string  `json:"id"`
	Username          string  `json:"username"`
	Name              string  `json:"name"`
	Bio               string  `json:"bio,omitempty"`
	ProfilePictureURL *string `json:"profilePictureUrl,omitempty"`
	Initial           string  `json:"initial"`
}

type updateProfileRequest struct {
	Name *string `json:"name"`
	Bio  *string `json:"bio"`
}

type updatePictureRequest struct {
	URL string `json:"url"`
}

type badgeResponse struct {
	Initial string `json:"initial"`
}

// Get handles GET /api/profiles/{id}.
func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid profile id")
		return
	}

	p, err := h.svc.Resolve(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toProfileResponse(p))
}

// Badge handles GET /api/profiles/me/badge. It always answers 200: an
// unresolvable profile degrades to the fallback initial rather than erroring.
func (h *ProfileHandler) Badge(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, badgeResponse{Initial: h.svc.Badge(r.Context())})
}

// Update handles PATCH /api/profiles/me.
func (h *ProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	p, err := h.svc.Update(r.Context(), profile.UpdateInput{
		Name: req.Name,
		Bio:  req.Bio,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toProfileResponse(p))
}

// UpdatePicture handles PUT /api/profiles/me/picture.
func (h *ProfileHandler) UpdatePicture(w http.ResponseWriter, r *http.Request) {
	var req updatePictureRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	p, err := h.svc.UpdatePicture(r.Context(), profile.UpdatePictureInput{URL: req.URL})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toProfileResponse(p))
}

func toProfileResponse(p *domain.Profile) profileResponse {
	return profileResponse{
		ID:                p.ID.String(),
		Username:          p.Username,
		Name:              p.Name,
		Bio:               p.Bio,
		ProfilePictureURL: p.ProfilePictureURL,
		Initial:           p.Initial(),
	}
}
