// Package outcome maps a logged call outcome to the field changes of a follow-up.
// It is a pure transform: no storage, no clock, no I/O.
package outcome

import (
	"fmt"
	"time"

	"github.com/heartmarshall/biztrack-backend/internal/domain"
)

// Offsets from the contact date to the next follow-up.
const (
	ConnectedDays  = 7
	VoicemailDays  = 1
	SaleClosedMons = 1
)

// Overrides are caller-edited values that replace the computed defaults.
// A nil field means "use the default".
type Overrides struct {
	NextFollowUpDate *time.Time
	Notes            *string
}

// Apply computes the mutation for completing one call cycle on rec.
//
// now is the contact date; only its calendar date is used. Every outcome sets
// LastContactDate to that date. WRONG archives the record and never sets a
// next date, so a date override is ignored for it.
func Apply(rec domain.FollowUp, o domain.Outcome, now time.Time, ov Overrides) (domain.CycleMutation, error) {
	if !o.IsValid() {
		return domain.CycleMutation{}, fmt.Errorf("%w: %q", domain.ErrInvalidOutcome, o)
	}

	today := domain.DateOf(now)
	m := domain.CycleMutation{
		LastContactDate: today,
		Notes:           DefaultNotes(o, rec.ClientName),
	}

	switch o {
	case domain.OutcomeConnected:
		m.NextFollowUpDate = ptr(domain.AddDays(today, ConnectedDays))
	case domain.OutcomeVoicemail:
		m.NextFollowUpDate = ptr(domain.AddDays(today, VoicemailDays))
	case domain.OutcomeSaleClosed:
		m.NextFollowUpDate = ptr(domain.AddMonthsClamped(today, SaleClosedMons))
		m.ClientType = ptr(domain.ClientTypeUser)
	case domain.OutcomeWrongNumber:
		m.Status = ptr(domain.StatusArchived)
	}

	if ov.NextFollowUpDate != nil && o != domain.OutcomeWrongNumber {
		m.NextFollowUpDate = ptr(domain.DateOf(*ov.NextFollowUpDate))
	}
	if ov.Notes != nil {
		m.Notes = *ov.Notes
	}

	return m, nil
}

// DefaultNotes returns the note template pre-filled for an outcome.
func DefaultNotes(o domain.Outcome, clientName string) string {
	switch o {
	case domain.OutcomeConnected:
		return fmt.Sprintf("Discussed details with %s, need to follow up again.", clientName)
	case domain.OutcomeVoicemail:
		return fmt.Sprintf("Left voicemail for %s.", clientName)
	case domain.OutcomeSaleClosed:
		return fmt.Sprintf("Success! Sale closed with %s.", clientName)
	case domain.OutcomeWrongNumber:
		return fmt.Sprintf("Marked as wrong number for %s.", clientName)
	}
	return ""
}

// Preview returns the defaults the UI shows before the user confirms an
// outcome: the suggested next date (nil for WRONG) and the note template.
func Preview(rec domain.FollowUp, o domain.Outcome, now time.Time) (*time.Time, string, error) {
	m, err := Apply(rec, o, now, Overrides{})
	if err != nil {
		return nil, "", err
	}
	return m.NextFollowUpDate, m.Notes, nil
}

func ptr[T any](v T) *T { return &v }
