package domain

import (
	"time"

	"github.com/google/uuid"
)

// Task is a personal to-do item. Tasks have no recurrence.
type Task struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Title       string
	Description string
	Priority    Priority
	Status      Status
	DueDate     time.Time
	Notes       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TaskUpdateParams is a partial update. Nil fields are left unchanged.
type TaskUpdateParams struct {
	Title       *string
	Description *string
	Priority    *Priority
	Status      *Status
	DueDate     *time.Time
	Notes       *string
}

// IsEmpty reports whether no field is set.
func (p TaskUpdateParams) IsEmpty() bool {
	return p == TaskUpdateParams{}
}
