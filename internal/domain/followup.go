package domain

import (
	"cmp"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
)

// FollowUp is a tracked client with a recurring-contact schedule.
type FollowUp struct {
	ID               uuid.UUID
	UserID           uuid.UUID
	ClientName       string
	Company          string
	Mobile           string
	Email            string
	ClientType       ClientType
	Frequency        Frequency
	Priority         Priority
	Status           Status
	LastContactDate  *time.Time
	NextFollowUpDate time.Time
	Notes            string
	AvatarURL        *string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// IsDue reports whether the follow-up should be surfaced on asOf: its next
// date is on or before asOf and it is neither completed nor archived.
// Overdue records are due.
func (f FollowUp) IsDue(asOf time.Time) bool {
	if !f.Status.IsOpen() {
		return false
	}
	return !DateOf(f.NextFollowUpDate).After(DateOf(asOf))
}

// IsScheduledFor reports whether the follow-up belongs to the agenda of day:
// its next date falls on that exact day and work on it has not finished.
func (f FollowUp) IsScheduledFor(day time.Time) bool {
	if f.Status != StatusPending && f.Status != StatusInProgress {
		return false
	}
	return DateOf(f.NextFollowUpDate).Equal(DateOf(day))
}

// SortAgenda orders follow-ups by client name, then ID.
func SortAgenda(items []FollowUp) {
	slices.SortStableFunc(items, func(a, b FollowUp) int {
		if c := strings.Compare(a.ClientName, b.ClientName); c != 0 {
			return c
		}
		return cmp.Compare(a.ID.String(), b.ID.String())
	})
}

// FollowUpUpdateParams is a partial update. Nil fields are left unchanged.
type FollowUpUpdateParams struct {
	ClientName       *string
	Company          *string
	Mobile           *string
	Email            *string
	ClientType       *ClientType
	Frequency        *Frequency
	Priority         *Priority
	Status           *Status
	LastContactDate  *time.Time
	NextFollowUpDate *time.Time
	Notes            *string
	AvatarURL        *string
}

// IsEmpty reports whether no field is set.
func (p FollowUpUpdateParams) IsEmpty() bool {
	return p == FollowUpUpdateParams{}
}

// CycleMutation is the set of field changes produced by completing a call cycle.
// LastContactDate and Notes are always written; the pointer fields only when set.
type CycleMutation struct {
	LastContactDate  time.Time
	Notes            string
	NextFollowUpDate *time.Time
	ClientType       *ClientType
	Status           *Status
}

// ApplyTo returns a copy of f with the mutation applied.
func (m CycleMutation) ApplyTo(f FollowUp) FollowUp {
	last := m.LastContactDate
	f.LastContactDate = &last
	f.Notes = m.Notes
	if m.NextFollowUpDate != nil {
		f.NextFollowUpDate = *m.NextFollowUpDate
	}
	if m.ClientType != nil {
		f.ClientType = *m.ClientType
	}
	if m.Status != nil {
		f.Status = *m.Status
	}
	return f
}
