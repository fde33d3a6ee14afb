// Package schedule answers which follow-ups are due on a given calendar day.
package schedule

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/biztrack-backend/internal/domain"
	"github.com/heartmarshall/biztrack-backend/pkg/ctxutil"
)

type followUpStore interface {
	ListDue(ctx context.Context, userID uuid.UUID, asOf time.Time) ([]domain.FollowUp, error)
	ListForDay(ctx context.Context, userID uuid.UUID, day time.Time) ([]domain.FollowUp, error)
}

// Service runs due-date queries. It never reads the clock for the queried
// day; callers pass it in.
type Service struct {
	store followUpStore
	log   *slog.Logger
}

// NewService creates a schedule service.
func NewService(log *slog.Logger, store followUpStore) *Service {
	return &Service{
		store: store,
		log:   log.With("service", "schedule"),
	}
}

// Due returns the caller's follow-ups due on or before asOf (overdue
// included), excluding Completed and Archived, ordered by client name then id.
func (s *Service) Due(ctx context.Context, asOf time.Time) ([]domain.FollowUp, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	return s.DueFor(ctx, userID, asOf)
}

// DueFor is Due for an explicit owner.
func (s *Service) DueFor(ctx context.Context, userID uuid.UUID, asOf time.Time) ([]domain.FollowUp, error) {
	day := domain.DateOf(asOf)

	items, err := s.store.ListDue(ctx, userID, day)
	if err != nil {
		return nil, fmt.Errorf("list due follow-ups: %w", err)
	}
	return keep(items, func(f domain.FollowUp) bool { return f.IsDue(day) }), nil
}

// ForDay returns the caller's Pending and In Progress follow-ups scheduled
// exactly on day, ordered by client name then id.
func (s *Service) ForDay(ctx context.Context, day time.Time) ([]domain.FollowUp, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	return s.ForDayOf(ctx, userID, day)
}

// ForDayOf is ForDay for an explicit owner. The digest job calls it.
func (s *Service) ForDayOf(ctx context.Context, userID uuid.UUID, day time.Time) ([]domain.FollowUp, error) {
	day = domain.DateOf(day)

	items, err := s.store.ListForDay(ctx, userID, day)
	if err != nil {
		return nil, fmt.Errorf("list follow-ups for %s: %w", domain.FormatDate(day), err)
	}
	return keep(items, func(f domain.FollowUp) bool { return f.IsScheduledFor(day) }), nil
}

// ParseDay resolves a query parameter to a calendar date. An empty value
// means the calendar date of fallback. Malformed input wraps
// domain.ErrMalformedDate.
func ParseDay(raw string, fallback time.Time) (time.Time, error) {
	if raw == "" {
		return domain.DateOf(fallback), nil
	}
	return domain.ParseDate(raw)
}

// keep filters items in place with pred and re-sorts them into agenda order,
// so results stay deterministic whatever order the store returned.
func keep(items []domain.FollowUp, pred func(domain.FollowUp) bool) []domain.FollowUp {
	out := items[:0]
	for _, f := range items {
		if pred(f) {
			out = append(out, f)
		}
	}
	if out == nil {
		out = []domain.FollowUp{}
	}
	domain.SortAgenda(out)
	return out
}
