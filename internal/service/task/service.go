// Package task manages the caller's personal to-do items.
package task

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/biztrack-backend/internal/domain"
	"github.com/heartmarshall/biztrack-backend/pkg/ctxutil"
)

type taskRepo interface {
	Create(ctx context.Context, t domain.Task) (*domain.Task, error)
	GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.Task, error)
	List(ctx context.Context, userID uuid.UUID) ([]domain.Task, error)
	Update(ctx context.Context, userID, id uuid.UUID, p domain.TaskUpdateParams, now time.Time) (*domain.Task, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

// Service provides task operations.
type Service struct {
	repo taskRepo
	log  *slog.Logger
	now  func() time.Time
}

// NewService creates a task service.
func NewService(log *slog.Logger, repo taskRepo) *Service {
	return &Service{
		repo: repo,
		log:  log.With("service", "task"),
		now:  time.Now,
	}
}

// CreateInput holds the fields of a new task.
type CreateInput struct {
	Title       string
	Description string
	Priority    domain.Priority
	Status      domain.Status
	DueDate     time.Time
	Notes       string
}

// Validate checks all fields and collects all errors.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError
	if strings.TrimSpace(i.Title) == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	}
	if len(i.Title) > 200 {
		errs = append(errs, domain.FieldError{Field: "title", Message: "max 200 characters"})
	}
	if i.DueDate.IsZero() {
		errs = append(errs, domain.FieldError{Field: "dueDate", Message: "required"})
	}
	if i.Priority != "" && !i.Priority.IsValid() {
		errs = append(errs, domain.FieldError{Field: "priority", Message: "invalid value"})
	}
	if i.Status != "" && !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "invalid value"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// List returns the caller's tasks by due date.
func (s *Service) List(ctx context.Context) ([]domain.Task, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	return s.repo.List(ctx, userID)
}

// Get returns one task.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	return s.repo.GetByID(ctx, userID, id)
}

// Create stores a new task. Priority defaults to Medium, status to Pending.
func (s *Service) Create(ctx context.Context, in CreateInput) (*domain.Task, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}

	priority := in.Priority
	if priority == "" {
		priority = domain.PriorityMedium
	}
	status := in.Status
	if status == "" {
		status = domain.StatusPending
	}

	now := s.now().UTC()
	created, err := s.repo.Create(ctx, domain.Task{
		ID:          uuid.New(),
		UserID:      userID,
		Title:       strings.TrimSpace(in.Title),
		Description: in.Description,
		Priority:    priority,
		Status:      status,
		DueDate:     domain.DateOf(in.DueDate),
		Notes:       in.Notes,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		return nil, fmt.Errorf("task.Create: %w", err)
	}

	s.log.InfoContext(ctx, "task created",
		slog.String("user_id", userID.String()),
		slog.String("task_id", created.ID.String()))
	return created, nil
}

// Update applies a partial edit.
func (s *Service) Update(ctx context.Context, id uuid.UUID, p domain.TaskUpdateParams) (*domain.Task, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	var errs []domain.FieldError
	if p.IsEmpty() {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if p.Title != nil && strings.TrimSpace(*p.Title) == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	}
	if p.Priority != nil && !p.Priority.IsValid() {
		errs = append(errs, domain.FieldError{Field: "priority", Message: "invalid value"})
	}
	if p.Status != nil && !p.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "invalid value"})
	}
	if len(errs) > 0 {
		return nil, domain.NewValidationErrors(errs)
	}

	if p.DueDate != nil {
		d := domain.DateOf(*p.DueDate)
		p.DueDate = &d
	}

	updated, err := s.repo.Update(ctx, userID, id, p, s.now().UTC())
	if err != nil {
		return nil, fmt.Errorf("task.Update: %w", err)
	}
	return updated, nil
}

// Delete removes a task.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if err := s.repo.Delete(ctx, userID, id); err != nil {
		return fmt.Errorf("task.Delete: %w", err)
	}
	return nil
}
