package followup

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/biztrack-backend/internal/domain"
)

const (
	maxNameLen  = 200
	maxNotesLen = 5000
)

// CreateInput holds the fields of a new follow-up. Empty enums take defaults.
type CreateInput struct {
	ClientName       string
	Company          string
	Mobile           string
	Email            string
	ClientType       domain.ClientType
	Frequency        domain.Frequency
	Priority         domain.Priority
	Status           domain.Status
	NextFollowUpDate time.Time
	Notes            string
	AvatarURL        *string
}

// Validate checks all fields and collects all errors.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	name := strings.TrimSpace(i.ClientName)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "clientName", Message: "required"})
	}
	if len(name) > maxNameLen {
		errs = append(errs, domain.FieldError{Field: "clientName", Message: "max 200 characters"})
	}
	if strings.TrimSpace(i.Mobile) == "" {
		errs = append(errs, domain.FieldError{Field: "mobile", Message: "required"})
	}
	if i.NextFollowUpDate.IsZero() {
		errs = append(errs, domain.FieldError{Field: "nextFollowUpDate", Message: "required"})
	}
	if i.ClientType != "" && !i.ClientType.IsValid() {
		errs = append(errs, domain.FieldError{Field: "clientType", Message: "invalid value"})
	}
	if i.Frequency != "" && !i.Frequency.IsValid() {
		errs = append(errs, domain.FieldError{Field: "frequency", Message: "invalid value"})
	}
	if i.Priority != "" && !i.Priority.IsValid() {
		errs = append(errs, domain.FieldError{Field: "priority", Message: "invalid value"})
	}
	if i.Status != "" && !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "invalid value"})
	}
	if len(i.Notes) > maxNotesLen {
		errs = append(errs, domain.FieldError{Field: "notes", Message: "max 5000 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateInput is a direct edit of any follow-up field.
type UpdateInput struct {
	ID     uuid.UUID
	Params domain.FollowUpUpdateParams
}

// Validate checks all fields and collects all errors.
func (i UpdateInput) Validate() error {
	var errs []domain.FieldError
	p := i.Params

	if i.ID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if p.IsEmpty() {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if p.ClientName != nil {
		name := strings.TrimSpace(*p.ClientName)
		if name == "" {
			errs = append(errs, domain.FieldError{Field: "clientName", Message: "required"})
		}
		if len(name) > maxNameLen {
			errs = append(errs, domain.FieldError{Field: "clientName", Message: "max 200 characters"})
		}
	}
	if p.Mobile != nil && strings.TrimSpace(*p.Mobile) == "" {
		errs = append(errs, domain.FieldError{Field: "mobile", Message: "required"})
	}
	if p.ClientType != nil && !p.ClientType.IsValid() {
		errs = append(errs, domain.FieldError{Field: "clientType", Message: "invalid value"})
	}
	if p.Frequency != nil && !p.Frequency.IsValid() {
		errs = append(errs, domain.FieldError{Field: "frequency", Message: "invalid value"})
	}
	if p.Priority != nil && !p.Priority.IsValid() {
		errs = append(errs, domain.FieldError{Field: "priority", Message: "invalid value"})
	}
	if p.Status != nil && !p.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "invalid value"})
	}
	if p.NextFollowUpDate != nil && p.NextFollowUpDate.IsZero() {
		errs = append(errs, domain.FieldError{Field: "nextFollowUpDate", Message: "must be a date"})
	}
	if p.Notes != nil && len(*p.Notes) > maxNotesLen {
		errs = append(errs, domain.FieldError{Field: "notes", Message: "max 5000 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// CompleteCycleInput logs a call outcome. NextFollowUpDate and Notes, when
// set, replace the engine defaults.
type CompleteCycleInput struct {
	ID               uuid.UUID
	Outcome          domain.Outcome
	NextFollowUpDate *time.Time
	Notes            *string
}

// Validate checks the identifier. The outcome is checked by the engine so
// callers get ErrInvalidOutcome rather than a field error.
func (i CompleteCycleInput) Validate() error {
	if i.ID == uuid.Nil {
		return domain.NewValidationError("id", "required")
	}
	return nil
}
