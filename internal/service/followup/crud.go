package followup

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/biztrack-backend/internal/domain"
	"github.com/heartmarshall/biztrack-backend/pkg/ctxutil"
)

// List returns the caller's follow-ups ordered by next follow-up date.
func (s *Service) List(ctx context.Context) ([]domain.FollowUp, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	return s.repo.List(ctx, userID)
}

// Get returns one of the caller's follow-ups.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.FollowUp, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	return s.repo.GetByID(ctx, userID, id)
}

// Create stores a new follow-up. Status defaults to Pending and
// lastContactDate starts unset.
func (s *Service) Create(ctx context.Context, in CreateInput) (*domain.FollowUp, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	f := domain.FollowUp{
		ID:               uuid.New(),
		UserID:           userID,
		ClientName:       strings.TrimSpace(in.ClientName),
		Company:          strings.TrimSpace(in.Company),
		Mobile:           strings.TrimSpace(in.Mobile),
		Email:            strings.TrimSpace(in.Email),
		ClientType:       orDefault(in.ClientType, domain.ClientTypeProspect),
		Frequency:        orDefault(in.Frequency, domain.FrequencyWeekly),
		Priority:         orDefault(in.Priority, domain.PriorityMedium),
		Status:           orDefault(in.Status, domain.StatusPending),
		NextFollowUpDate: domain.DateOf(in.NextFollowUpDate),
		Notes:            in.Notes,
		AvatarURL:        in.AvatarURL,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	created, err := s.repo.Create(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("create follow-up: %w", err)
	}

	s.log.InfoContext(ctx, "follow-up created",
		slog.String("user_id", userID.String()),
		slog.String("follow_up_id", created.ID.String()),
	)
	return created, nil
}

// Update applies a direct edit. Any field may change, status and
// nextFollowUpDate included, and Archived records may be reopened this way.
func (s *Service) Update(ctx context.Context, in UpdateInput) (*domain.FollowUp, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}

	p := in.Params
	if p.ClientName != nil {
		p.ClientName = ptr(strings.TrimSpace(*p.ClientName))
	}
	if p.NextFollowUpDate != nil {
		p.NextFollowUpDate = ptr(domain.DateOf(*p.NextFollowUpDate))
	}
	if p.LastContactDate != nil {
		p.LastContactDate = ptr(domain.DateOf(*p.LastContactDate))
	}

	updated, err := s.repo.Update(ctx, userID, in.ID, p, s.now().UTC())
	if err != nil {
		return nil, fmt.Errorf("update follow-up: %w", err)
	}
	return updated, nil
}

// Archive sets status Archived, hiding the record from due queries and the
// digest. It is distinct from Delete and can be undone by a direct edit.
func (s *Service) Archive(ctx context.Context, id uuid.UUID) (*domain.FollowUp, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	archived, err := s.repo.Update(ctx, userID, id,
		domain.FollowUpUpdateParams{Status: ptr(domain.StatusArchived)}, s.now().UTC())
	if err != nil {
		return nil, fmt.Errorf("archive follow-up: %w", err)
	}

	s.log.InfoContext(ctx, "follow-up archived",
		slog.String("user_id", userID.String()),
		slog.String("follow_up_id", id.String()),
	)
	return archived, nil
}

// Delete removes the record permanently.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if err := s.repo.Delete(ctx, userID, id); err != nil {
		return fmt.Errorf("delete follow-up: %w", err)
	}

	s.log.InfoContext(ctx, "follow-up deleted",
		slog.String("user_id", userID.String()),
		slog.String("follow_up_id", id.String()),
	)
	return nil
}

func orDefault[T ~string](v, def T) T {
	if v == "" {
		return def
	}
	return v
}

func ptr[T any](v T) *T { return &v }

