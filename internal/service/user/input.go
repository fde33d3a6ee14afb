package user

import (
	"github.com/heartmarshall/biztrack-backend/internal/domain"
)

// UpdateProfileInput is a partial profile edit. Nil fields are left unchanged.
type UpdateProfileInput struct {
	Name               *string
	Role               *string
	Team               *string
	Phone              *string
	AgendaReminderTime *string
	AvatarURL          *string
	Bio                *string
	Status             *domain.UserStatus
}

// Validate checks all fields and collects all errors.
func (i UpdateProfileInput) Validate() error {
	var errs []domain.FieldError

	if i == (UpdateProfileInput{}) {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.Name != nil {
		if *i.Name == "" {
			errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
		} else if len(*i.Name) > 255 {
			errs = append(errs, domain.FieldError{Field: "name", Message: "max 255 characters"})
		}
	}
	if i.AgendaReminderTime != nil && !domain.IsValidClock(*i.AgendaReminderTime) {
		errs = append(errs, domain.FieldError{Field: "agendaReminderTime", Message: "must be HH:MM"})
	}
	if i.Status != nil && !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "invalid value"})
	}
	if i.Bio != nil && len(*i.Bio) > 2000 {
		errs = append(errs, domain.FieldError{Field: "bio", Message: "max 2000 characters"})
	}
	if i.AvatarURL != nil && len(*i.AvatarURL) > 512 {
		errs = append(errs, domain.FieldError{Field: "avatarUrl", Message: "max 512 characters"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
