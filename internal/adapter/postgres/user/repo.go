// Package user implements user persistence on PostgreSQL.
package user

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

const table = "users"

var columns = []string{
	"id", "email", "name", "password_hash", "role", "team", "phone",
	"agenda_reminder_time", "avatar_url", "bio", "status",
	"last_login_at", "joined_at", "created_at", "updated_at",
}

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	db postgres.DB
}

// New creates a new user repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

type row struct {
	ID                 uuid.UUID  `db:"id"`
	Email              string     `db:"email"`
	Name               string     `db:"name"`
	PasswordHash       string     `db:"password_hash"`
	Role               string     `db:"role"`
	Team               string     `db:"team"`
	Phone              string     `db:"phone"`
	AgendaReminderTime string     `db:"agenda_reminder_time"`
	AvatarURL          *string    `db:"avatar_url"`
	Bio                string     `db:"bio"`
	Status             string     `db:"status"`
	LastLoginAt        *time.Time `db:"last_login_at"`
	JoinedAt           time.Time  `db:"joined_at"`
	CreatedAt          time.Time  `db:"created_at"`
	UpdatedAt          time.Time  `db:"updated_at"`
}

func (r row) toDomain() domain.User {
	return domain.User{
		ID:                 r.ID,
		Email:              r.Email,
		Name:               r.Name,
		PasswordHash:       r.PasswordHash,
		Role:               r.Role,
		Team:               r.Team,
		Phone:              r.Phone,
		AgendaReminderTime: r.AgendaReminderTime,
		AvatarURL:          r.AvatarURL,
		Bio:                r.Bio,
		Status:             domain.UserStatus(r.Status),
		LastLoginAt:        r.LastLoginAt,
		JoinedAt:           r.JoinedAt,
		CreatedAt:          r.CreatedAt,
		UpdatedAt:          r.UpdatedAt,
	}
}

// Create inserts u. A duplicate email yields domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, u domain.User) (*domain.User, error) {
	query, args, err := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(
			u.ID, u.Email, u.Name, u.PasswordHash, u.Role, u.Team, u.Phone,
			u.AgendaReminderTime, u.AvatarURL, u.Bio, string(u.Status),
			u.LastLoginAt, u.JoinedAt, u.CreatedAt, u.UpdatedAt,
		).
		Suffix(returning()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert: %w", err)
	}
	return r.getOne(ctx, u.ID, query, args)
}

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return r.getWhere(ctx, id, sq.Eq{"id": id})
}

// GetByEmail returns a user by email address.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.getWhere(ctx, uuid.Nil, sq.Eq{"email": email})
}

// ListActiveAt returns the Active users reminded at clock (HH:MM), the
// audience of one digest tick.
func (r *Repo) ListActiveAt(ctx context.Context, clock string) ([]domain.User, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{
			"status":               string(domain.UserStatusActive),
			"agenda_reminder_time": clock,
		}).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, "active users", uuid.Nil)
	}

	out := make([]domain.User, 0, len(rows))
	for _, rw := range rows {
		out = append(out, rw.toDomain())
	}
	return out, nil
}

// Update applies the non-nil profile fields of p.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, p domain.UserUpdateParams, now time.Time) (*domain.User, error) {
	set := map[string]any{"updated_at": now}
	if p.Name != nil {
		set["name"] = *p.Name
	}
	if p.Role != nil {
		set["role"] = *p.Role
	}
	if p.Team != nil {
		set["team"] = *p.Team
	}
	if p.Phone != nil {
		set["phone"] = *p.Phone
	}
	if p.AgendaReminderTime != nil {
		set["agenda_reminder_time"] = *p.AgendaReminderTime
	}
	if p.AvatarURL != nil {
		set["avatar_url"] = *p.AvatarURL
	}
	if p.Bio != nil {
		set["bio"] = *p.Bio
	}
	if p.Status != nil {
		set["status"] = string(*p.Status)
	}

	query, args, err := postgres.Builder().
		Update(table).
		SetMap(set).
		Where(sq.Eq{"id": id}).
		Suffix(returning()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update: %w", err)
	}
	return r.getOne(ctx, id, query, args)
}

// TouchLastLogin stamps a successful sign-in.
func (r *Repo) TouchLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	query, args, err := postgres.Builder().
		Update(table).
		Set("last_login_at", at).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "user", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("user %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

func (r *Repo) getWhere(ctx context.Context, id uuid.UUID, pred sq.Eq) (*domain.User, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(pred).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}
	return r.getOne(ctx, id, query, args)
}

func (r *Repo) getOne(ctx context.Context, id uuid.UUID, query string, args []any) (*domain.User, error) {
	var dst row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &dst, query, args...); err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	u := dst.toDomain()
	return &u, nil
}

func returning() string {
	return "RETURNING " + strings.Join(columns, ", ")
}
