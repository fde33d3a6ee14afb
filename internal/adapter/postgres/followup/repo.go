// Package followup implements follow-up persistence on PostgreSQL.
package followup

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

const table = "follow_ups"

var columns = []string{
	"id", "user_id", "client_name", "company", "mobile", "email",
	"client_type", "frequency", "priority", "status",
	"last_contact_date", "next_follow_up_date", "notes", "avatar_url",
	"created_at", "updated_at",
}

// Repo provides follow-up persistence backed by PostgreSQL.
type Repo struct {
	db postgres.DB
}

// New creates a new follow-up repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

type row struct {
	ID               uuid.UUID  `db:"id"`
	UserID           uuid.UUID  `db:"user_id"`
	ClientName       string     `db:"client_name"`
	Company          string     `db:"company"`
	Mobile           string     `db:"mobile"`
	Email            string     `db:"email"`
	ClientType       string     `db:"client_type"`
	Frequency        string     `db:"frequency"`
	Priority         string     `db:"priority"`
	Status           string     `db:"status"`
	LastContactDate  *time.Time `db:"last_contact_date"`
	NextFollowUpDate time.Time  `db:"next_follow_up_date"`
	Notes            string     `db:"notes"`
	AvatarURL        *string    `db:"avatar_url"`
	CreatedAt        time.Time  `db:"created_at"`
	UpdatedAt        time.Time  `db:"updated_at"`
}

func (r row) toDomain() domain.FollowUp {
	f := domain.FollowUp{
		ID:               r.ID,
		UserID:           r.UserID,
		ClientName:       r.ClientName,
		Company:          r.Company,
		Mobile:           r.Mobile,
		Email:            r.Email,
		ClientType:       domain.ClientType(r.ClientType),
		Frequency:        domain.Frequency(r.Frequency),
		Priority:         domain.Priority(r.Priority),
		Status:           domain.Status(r.Status),
		NextFollowUpDate: domain.DateOf(r.NextFollowUpDate),
		Notes:            r.Notes,
		AvatarURL:        r.AvatarURL,
		CreatedAt:        r.CreatedAt,
		UpdatedAt:        r.UpdatedAt,
	}
	if r.LastContactDate != nil {
		d := domain.DateOf(*r.LastContactDate)
		f.LastContactDate = &d
	}
	return f
}

func toDomainList(rows []row) []domain.FollowUp {
	out := make([]domain.FollowUp, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.toDomain())
	}
	return out
}

// Create inserts f and returns the stored record.
func (r *Repo) Create(ctx context.Context, f domain.FollowUp) (*domain.FollowUp, error) {
	query, args, err := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(
			f.ID, f.UserID, f.ClientName, f.Company, f.Mobile, f.Email,
			string(f.ClientType), string(f.Frequency), string(f.Priority), string(f.Status),
			f.LastContactDate, f.NextFollowUpDate, f.Notes, f.AvatarURL,
			f.CreatedAt, f.UpdatedAt,
		).
		Suffix(returning()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert: %w", err)
	}
	return r.getOne(ctx, f.ID, query, args)
}

// GetByID returns the follow-up id owned by userID.
func (r *Repo) GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.FollowUp, error) {
	return r.get(ctx, userID, id, false)
}

// GetForUpdate is GetByID with a row lock held until the surrounding
// transaction ends.
func (r *Repo) GetForUpdate(ctx context.Context, userID, id uuid.UUID) (*domain.FollowUp, error) {
	return r.get(ctx, userID, id, true)
}

func (r *Repo) get(ctx context.Context, userID, id uuid.UUID, lock bool) (*domain.FollowUp, error) {
	b := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"id": id, "user_id": userID})
	if lock {
		b = b.Suffix("FOR UPDATE")
	}
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}
	return r.getOne(ctx, id, query, args)
}

// List returns every follow-up of userID ordered by next follow-up date.
func (r *Repo) List(ctx context.Context, userID uuid.UUID) ([]domain.FollowUp, error) {
	return r.list(ctx, userID, postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("next_follow_up_date ASC", "client_name ASC", "id ASC"))
}

// ListDue returns the open follow-ups of userID whose next date is on or
// before asOf, overdue ones included.
func (r *Repo) ListDue(ctx context.Context, userID uuid.UUID, asOf time.Time) ([]domain.FollowUp, error) {
	return r.list(ctx, userID, postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"user_id": userID}).
		Where(sq.LtOrEq{"next_follow_up_date": domain.DateOf(asOf)}).
		Where(sq.NotEq{"status": []string{string(domain.StatusCompleted), string(domain.StatusArchived)}}).
		OrderBy("client_name ASC", "id ASC"))
}

// ListForDay returns the Pending and In Progress follow-ups of userID
// scheduled exactly on day.
func (r *Repo) ListForDay(ctx context.Context, userID uuid.UUID, day time.Time) ([]domain.FollowUp, error) {
	return r.list(ctx, userID, postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{
			"user_id":             userID,
			"next_follow_up_date": domain.DateOf(day),
			"status":              []string{string(domain.StatusPending), string(domain.StatusInProgress)},
		}).
		OrderBy("client_name ASC", "id ASC"))
}

// Update applies the non-nil fields of p.
func (r *Repo) Update(ctx context.Context, userID, id uuid.UUID, p domain.FollowUpUpdateParams, now time.Time) (*domain.FollowUp, error) {
	set := map[string]any{"updated_at": now}
	if p.ClientName != nil {
		set["client_name"] = *p.ClientName
	}
	if p.Company != nil {
		set["company"] = *p.Company
	}
	if p.Mobile != nil {
		set["mobile"] = *p.Mobile
	}
	if p.Email != nil {
		set["email"] = *p.Email
	}
	if p.ClientType != nil {
		set["client_type"] = string(*p.ClientType)
	}
	if p.Frequency != nil {
		set["frequency"] = string(*p.Frequency)
	}
	if p.Priority != nil {
		set["priority"] = string(*p.Priority)
	}
	if p.Status != nil {
		set["status"] = string(*p.Status)
	}
	if p.LastContactDate != nil {
		set["last_contact_date"] = domain.DateOf(*p.LastContactDate)
	}
	if p.NextFollowUpDate != nil {
		set["next_follow_up_date"] = domain.DateOf(*p.NextFollowUpDate)
	}
	if p.Notes != nil {
		set["notes"] = *p.Notes
	}
	if p.AvatarURL != nil {
		set["avatar_url"] = *p.AvatarURL
	}
	return r.update(ctx, userID, id, set)
}

// ApplyMutation persists the fields changed by a completed call cycle.
func (r *Repo) ApplyMutation(ctx context.Context, userID, id uuid.UUID, m domain.CycleMutation, now time.Time) (*domain.FollowUp, error) {
	set := map[string]any{
		"last_contact_date": m.LastContactDate,
		"notes":             m.Notes,
		"updated_at":        now,
	}
	if m.NextFollowUpDate != nil {
		set["next_follow_up_date"] = *m.NextFollowUpDate
	}
	if m.ClientType != nil {
		set["client_type"] = string(*m.ClientType)
	}
	if m.Status != nil {
		set["status"] = string(*m.Status)
	}
	return r.update(ctx, userID, id, set)
}

// Delete removes the follow-up. A missing row yields domain.ErrNotFound.
func (r *Repo) Delete(ctx context.Context, userID, id uuid.UUID) error {
	query, args, err := postgres.Builder().
		Delete(table).
		Where(sq.Eq{"id": id, "user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "follow_up", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("follow_up %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

func (r *Repo) update(ctx context.Context, userID, id uuid.UUID, set map[string]any) (*domain.FollowUp, error) {
	query, args, err := postgres.Builder().
		Update(table).
		SetMap(set).
		Where(sq.Eq{"id": id, "user_id": userID}).
		Suffix(returning()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update: %w", err)
	}
	return r.getOne(ctx, id, query, args)
}

func (r *Repo) getOne(ctx context.Context, id uuid.UUID, query string, args []any) (*domain.FollowUp, error) {
	var dst row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &dst, query, args...); err != nil {
		return nil, postgres.MapError(err, "follow_up", id)
	}
	f := dst.toDomain()
	return &f, nil
}

func (r *Repo) list(ctx context.Context, userID uuid.UUID, b sq.SelectBuilder) ([]domain.FollowUp, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, "follow_ups of user", userID)
	}
	return toDomainList(rows), nil
}

func returning() string {
	return "RETURNING " + strings.Join(columns, ", ")
}
