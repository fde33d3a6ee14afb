package org

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/biztrack-backend/internal/domain"
	"github.com/heartmarshall/biztrack-backend/pkg/ctxutil"
)

type memberRepo interface {
	Create(ctx context.Context, m domain.OrgMember) (*domain.OrgMember, error)
	GetByID(ctx context.Context, ownerID, id uuid.UUID) (*domain.OrgMember, error)
	List(ctx context.Context, ownerID uuid.UUID) ([]domain.OrgMember, error)
	Update(ctx context.Context, ownerID, id uuid.UUID, p domain.OrgMemberUpdateParams, now time.Time) (*domain.OrgMember, error)
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service manages the caller's organization chart.
type Service struct {
	repo memberRepo
	tx   txManager
	log  *slog.Logger
	now  func() time.Time
}

func NewService(log *slog.Logger, repo memberRepo, tx txManager) *Service {
	return &Service{
		repo: repo,
		tx:   tx,
		log:  log.With("service", "org"),
		now:  time.Now,
	}
}

// CreateInput holds the fields of a new member.
type CreateInput struct {
	ParentID  *uuid.UUID
	Name      string
	Role      string
	Level     domain.OrgLevel
	AvatarURL *string
}

func (i CreateInput) Validate() error {
	var errs []domain.FieldError
	if strings.TrimSpace(i.Name) == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if strings.TrimSpace(i.Role) == "" {
		errs = append(errs, domain.FieldError{Field: "role", Message: "required"})
	}
	if !i.Level.IsValid() {
		errs = append(errs, domain.FieldError{Field: "level", Message: "invalid value"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// List returns the flat member list in creation order.
func (s *Service) List(ctx context.Context) ([]domain.OrgMember, error) {
	ownerID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	return s.repo.List(ctx, ownerID)
}

// Tree returns the members linked into a forest.
func (s *Service) Tree(ctx context.Context) ([]*domain.OrgNode, error) {
	members, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	return domain.BuildOrgTree(members), nil
}

// Create adds a member. A parent must already belong to the caller.
func (s *Service) Create(ctx context.Context, in CreateInput) (*domain.OrgMember, error) {
	ownerID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}

	if in.ParentID != nil {
		if err := s.checkParent(ctx, ownerID, *in.ParentID); err != nil {
			return nil, err
		}
	}

	now := s.now().UTC()
	created, err := s.repo.Create(ctx, domain.OrgMember{
		ID:        uuid.New(),
		OwnerID:   ownerID,
		ParentID:  in.ParentID,
		Name:      strings.TrimSpace(in.Name),
		Role:      strings.TrimSpace(in.Role),
		Level:     in.Level,
		AvatarURL: in.AvatarURL,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return nil, fmt.Errorf("org.Create: %w", err)
	}

	s.log.InfoContext(ctx, "org member created",
		slog.String("owner_id", ownerID.String()),
		slog.String("member_id", created.ID.String()))
	return created, nil
}

// Update edits a member. Moving a member under itself or under one of its
// own reports is rejected with ErrConflict.
func (s *Service) Update(ctx context.Context, id uuid.UUID, p domain.OrgMemberUpdateParams) (*domain.OrgMember, error) {
	ownerID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	var errs []domain.FieldError
	if p == (domain.OrgMemberUpdateParams{}) {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if p.Name != nil && strings.TrimSpace(*p.Name) == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if p.Level != nil && !p.Level.IsValid() {
		errs = append(errs, domain.FieldError{Field: "level", Message: "invalid value"})
	}
	if len(errs) > 0 {
		return nil, domain.NewValidationErrors(errs)
	}

	var updated *domain.OrgMember
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if p.ParentID != nil && !p.ClearParent {
			if err := s.checkMove(txCtx, ownerID, id, *p.ParentID); err != nil {
				return err
			}
		}

		var err error
		updated, err = s.repo.Update(txCtx, ownerID, id, p, s.now().UTC())
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("org.Update: %w", err)
	}
	return updated, nil
}

// Delete removes a member together with everyone reporting to it.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	ownerID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if err := s.repo.Delete(ctx, ownerID, id); err != nil {
		return fmt.Errorf("org.Delete: %w", err)
	}

	s.log.InfoContext(ctx, "org member deleted",
		slog.String("owner_id", ownerID.String()),
		slog.String("member_id", id.String()))
	return nil
}

func (s *Service) checkParent(ctx context.Context, ownerID, parentID uuid.UUID) error {
	if _, err := s.repo.GetByID(ctx, ownerID, parentID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.NewValidationError("parentId", "parent not found")
		}
		return fmt.Errorf("get parent: %w", err)
	}
	return nil
}

func (s *Service) checkMove(ctx context.Context, ownerID, id, parentID uuid.UUID) error {
	if parentID == id {
		return fmt.Errorf("member cannot report to itself: %w", domain.ErrConflict)
	}
	members, err := s.repo.List(ctx, ownerID)
	if err != nil {
		return fmt.Errorf("list members: %w", err)
	}

	found := false
	for _, m := range members {
		if m.ID == parentID {
			found = true
			break
		}
	}
	if !found {
		return domain.NewValidationError("parentId", "parent not found")
	}
	if domain.IsDescendant(members, id, parentID) {
		return fmt.Errorf("parent is a report of the member: %w", domain.ErrConflict)
	}
	return nil
}
