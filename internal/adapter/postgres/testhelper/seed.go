package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/biztrack-backend/internal/domain"
)

func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser inserts an active user reminded at 09:00.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	u := domain.User{
		ID:                 uuid.New(),
		Email:              "testuser-" + suffix + "@example.com",
		Name:               "Test User " + suffix,
		PasswordHash:       "x",
		Role:               domain.DefaultUserRole,
		Phone:              "+1555" + suffix,
		AgendaReminderTime: domain.DefaultAgendaReminderTime,
		Status:             domain.UserStatusActive,
		JoinedAt:           now,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO users (id, email, name, password_hash, role, phone, agenda_reminder_time, status, joined_at, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		u.ID, u.Email, u.Name, u.PasswordHash, u.Role, u.Phone, u.AgendaReminderTime,
		string(u.Status), u.JoinedAt, u.CreatedAt, u.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser: %v", err)
	}
	return u
}

// SeedFollowUp inserts a Pending follow-up owned by userID with the given next date.
func SeedFollowUp(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, name string, next time.Time) domain.FollowUp {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	f := domain.FollowUp{
		ID:               uuid.New(),
		UserID:           userID,
		ClientName:       name,
		Mobile:           "+1555" + uniqueSuffix(),
		ClientType:       domain.ClientTypeProspect,
		Frequency:        domain.FrequencyWeekly,
		Priority:         domain.PriorityMedium,
		Status:           domain.StatusPending,
		NextFollowUpDate: domain.DateOf(next),
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO follow_ups (id, user_id, client_name, mobile, client_type, frequency, priority, status, next_follow_up_date, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		f.ID, f.UserID, f.ClientName, f.Mobile, string(f.ClientType), string(f.Frequency),
		string(f.Priority), string(f.Status), f.NextFollowUpDate, f.CreatedAt, f.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedFollowUp: %v", err)
	}
	return f
}
