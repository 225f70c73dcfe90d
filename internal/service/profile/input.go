package profile

import (
	"strings"

	"github.com/foundersapp/founders-backend/internal/domain"
)

// UpdateInput holds parameters for the profile update operation.
// Nil fields are left unchanged.
type UpdateInput struct {
	Name *string
	Bio  *string
}

// Validate validates the update input.
func (i UpdateInput) Validate() error {
	var errs []domain.FieldError

	if i.Name != nil {
		if strings.TrimSpace(*i.Name) == "" {
			errs = append(errs, domain.FieldError{Field: "name", Message: "cannot be blank"})
		} else if len(*i.Name) > 255 {
			errs = append(errs, domain.FieldError{Field: "name", Message: "too long"})
		}
	}

	if i.Bio != nil && len(*i.Bio) > 2000 {
		errs = append(errs, domain.FieldError{Field: "bio", Message: "too long"})
	}

	if i.Name == nil && i.Bio == nil {
		errs = append(errs, domain.FieldError{Field: "name", Message: "nothing to update"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdatePictureInput holds parameters for the profile picture update.
type UpdatePictureInput struct {
	URL string
}

// Validate validates the picture input.
func (i UpdatePictureInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.URL) == "" {
		errs = append(errs, domain.FieldError{Field: "url", Message: "required"})
	} else if len(i.URL) > 4096 {
		errs = append(errs, domain.FieldError{Field: "url", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
