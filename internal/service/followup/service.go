// Package followup manages client follow-up records and completes call
// cycles through the outcome engine.
package followup

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/biztrack-backend/internal/domain"
)

type followUpRepo interface {
	Create(ctx context.Context, f domain.FollowUp) (*domain.FollowUp, error)
	GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.FollowUp, error)
	GetForUpdate(ctx context.Context, userID, id uuid.UUID) (*domain.FollowUp, error)
	List(ctx context.Context, userID uuid.UUID) ([]domain.FollowUp, error)
	Update(ctx context.Context, userID, id uuid.UUID, p domain.FollowUpUpdateParams, now time.Time) (*domain.FollowUp, error)
	ApplyMutation(ctx context.Context, userID, id uuid.UUID, m domain.CycleMutation, now time.Time) (*domain.FollowUp, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides follow-up operations for the authenticated user.
type Service struct {
	repo followUpRepo
	tx   txManager
	log  *slog.Logger
	loc  *time.Location
	now  func() time.Time
}

// NewService creates a follow-up service. loc is the location whose calendar
// date counts as "today" when a call is logged; nil means time.Local.
func NewService(log *slog.Logger, repo followUpRepo, tx txManager, loc *time.Location) *Service {
	if loc == nil {
		loc = time.Local
	}
	return &Service{
		repo: repo,
		tx:   tx,
		log:  log.With("service", "followup"),
		loc:  loc,
		now:  time.Now,
	}
}

func (s *Service) today() time.Time {
	return s.now().In(s.loc)
}
