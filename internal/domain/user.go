package domain

import (
	"time"

	"github.com/google/uuid"
)

// Defaults applied to newly registered users.
const (
	DefaultUserRole           = "Supervisor"
	DefaultAgendaReminderTime = "09:00"
)

// User is an authenticated account together with its profile.
type User struct {
	ID                 uuid.UUID
	Email              string
	Name               string
	PasswordHash       string
	Role               string
	Team               string
	Phone              string
	AgendaReminderTime string // HH:MM, process-local clock
	AvatarURL          *string
	Bio                string
	Status             UserStatus
	LastLoginAt        *time.Time
	JoinedAt           time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// IsActive reports whether the account is enabled.
func (u User) IsActive() bool {
	return u.Status == UserStatusActive
}

// RemindsAt reports whether the user's agenda reminder fires at clock (HH:MM).
func (u User) RemindsAt(clock string) bool {
	return u.AgendaReminderTime == clock
}

// HasDeliveryTarget reports whether a digest can be delivered to the user.
func (u User) HasDeliveryTarget() bool {
	return u.Phone != ""
}

// UserUpdateParams is a partial profile update. Nil fields are left unchanged.
type UserUpdateParams struct {
	Name               *string
	Role               *string
	Team               *string
	Phone              *string
	AgendaReminderTime *string
	AvatarURL          *string
	Bio                *string
	Status             *UserStatus
}

// IsEmpty reports whether no field is set.
func (p UserUpdateParams) IsEmpty() bool {
	return p == UserUpdateParams{}
}
