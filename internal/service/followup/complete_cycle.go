package followup

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/biztrack-backend/internal/domain"
	"github.com/heartmarshall/biztrack-backend/internal/service/followup/outcome"
	"github.com/heartmarshall/biztrack-backend/pkg/ctxutil"
)

// CompleteCycle logs a call outcome against a follow-up and persists the
// resulting mutation. The read and the write share one transaction with the
// row locked, so concurrent completions on the same record serialize.
func (s *Service) CompleteCycle(ctx context.Context, in CompleteCycleInput) (*domain.FollowUp, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}
	if !in.Outcome.IsValid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidOutcome, in.Outcome)
	}

	now := s.today()
	var updated *domain.FollowUp
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		rec, err := s.repo.GetForUpdate(txCtx, userID, in.ID)
		if err != nil {
			return fmt.Errorf("load follow-up: %w", err)
		}

		m, err := outcome.Apply(*rec, in.Outcome, now, outcome.Overrides{
			NextFollowUpDate: in.NextFollowUpDate,
			Notes:            in.Notes,
		})
		if err != nil {
			return err
		}

		updated, err = s.repo.ApplyMutation(txCtx, userID, in.ID, m, now.UTC())
		if err != nil {
			return fmt.Errorf("apply mutation: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "call cycle completed",
		slog.String("user_id", userID.String()),
		slog.String("follow_up_id", in.ID.String()),
		slog.String("outcome", in.Outcome.String()),
		slog.String("next_follow_up_date", domain.FormatDate(updated.NextFollowUpDate)),
	)
	return updated, nil
}

// Suggestion is what the UI pre-fills before the user confirms an outcome.
type Suggestion struct {
	Outcome          domain.Outcome
	NextFollowUpDate *time.Time
	Notes            string
}

// Suggest returns the engine defaults for logging o against a follow-up,
// without persisting anything.
func (s *Service) Suggest(ctx context.Context, in CompleteCycleInput) (*Suggestion, error) {
	rec, err := s.Get(ctx, in.ID)
	if err != nil {
		return nil, err
	}

	next, notes, err := outcome.Preview(*rec, in.Outcome, s.today())
	if err != nil {
		return nil, err
	}
	return &Suggestion{Outcome: in.Outcome, NextFollowUpDate: next, Notes: notes}, nil
}
