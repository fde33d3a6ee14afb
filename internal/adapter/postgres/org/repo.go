// Package org implements organization chart persistence on PostgreSQL.
package org

import (
	"context"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"github.com/heartmarshall/biztrack-backend/internal/adapter/postgres"
	"github.com/heartmarshall/biztrack-backend/internal/domain"
)

const table = "org_members"

var columns = []string{
	"id", "owner_id", "parent_id", "name", "role", "level", "avatar_url", "created_at", "updated_at",
}

// Repo provides org member persistence backed by PostgreSQL.
type Repo struct {
	db postgres.DB
}

// New creates a new org repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

type row struct {
	ID        uuid.UUID  `db:"id"`
	OwnerID   uuid.UUID  `db:"owner_id"`
	ParentID  *uuid.UUID `db:"parent_id"`
	Name      string     `db:"name"`
	Role      string     `db:"role"`
	Level     string     `db:"level"`
	AvatarURL *string    `db:"avatar_url"`
	CreatedAt time.Time  `db:"created_at"`
	UpdatedAt time.Time  `db:"updated_at"`
}

func (r row) toDomain() domain.OrgMember {
	return domain.OrgMember{
		ID:        r.ID,
		OwnerID:   r.OwnerID,
		ParentID:  r.ParentID,
		Name:      r.Name,
		Role:      r.Role,
		Level:     domain.OrgLevel(r.Level),
		AvatarURL: r.AvatarURL,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

// Create inserts m.
func (r *Repo) Create(ctx context.Context, m domain.OrgMember) (*domain.OrgMember, error) {
	query, args, err := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(m.ID, m.OwnerID, m.ParentID, m.Name, m.Role, string(m.Level), m.AvatarURL, m.CreatedAt, m.UpdatedAt).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert: %w", err)
	}
	return r.getOne(ctx, m.ID, query, args)
}

// GetByID returns the member id of ownerID's chart.
func (r *Repo) GetByID(ctx context.Context, ownerID, id uuid.UUID) (*domain.OrgMember, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"id": id, "owner_id": ownerID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}
	return r.getOne(ctx, id, query, args)
}

// List returns the whole chart of ownerID in creation order.
func (r *Repo) List(ctx context.Context, ownerID uuid.UUID) ([]domain.OrgMember, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"owner_id": ownerID}).
		OrderBy("created_at ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, "org of user", ownerID)
	}

	out := make([]domain.OrgMember, 0, len(rows))
	for _, rw := range rows {
		out = append(out, rw.toDomain())
	}
	return out, nil
}

// Update applies the non-nil fields of p. ClearParent writes NULL parent_id.
func (r *Repo) Update(ctx context.Context, ownerID, id uuid.UUID, p domain.OrgMemberUpdateParams, now time.Time) (*domain.OrgMember, error) {
	set := map[string]any{"updated_at": now}
	switch {
	case p.ClearParent:
		set["parent_id"] = nil
	case p.ParentID != nil:
		set["parent_id"] = *p.ParentID
	}
	if p.Name != nil {
		set["name"] = *p.Name
	}
	if p.Role != nil {
		set["role"] = *p.Role
	}
	if p.Level != nil {
		set["level"] = string(*p.Level)
	}
	if p.AvatarURL != nil {
		set["avatar_url"] = *p.AvatarURL
	}

	query, args, err := postgres.Builder().
		Update(table).
		SetMap(set).
		Where(sq.Eq{"id": id, "owner_id": ownerID}).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update: %w", err)
	}
	return r.getOne(ctx, id, query, args)
}

// Delete removes the member; its subtree goes with it via ON DELETE CASCADE.
func (r *Repo) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	query, args, err := postgres.Builder().
		Delete(table).
		Where(sq.Eq{"id": id, "owner_id": ownerID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "org_member", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("org_member %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

func (r *Repo) getOne(ctx context.Context, id uuid.UUID, query string, args []any) (*domain.OrgMember, error) {
	var dst row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &dst, query, args...); err != nil {
		return nil, postgres.MapError(err, "org_member", id)
	}
	m := dst.toDomain()
	return &m, nil
}
