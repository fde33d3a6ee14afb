package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/biztrack-backend/internal/domain"
	authsvc "github.com/heartmarshall/biztrack-backend/internal/service/auth"
	"github.com/heartmarshall/biztrack-backend/internal/service/followup"
	"github.com/heartmarshall/biztrack-backend/internal/service/org"
	"github.com/heartmarshall/biztrack-backend/internal/service/task"
	"github.com/heartmarshall/biztrack-backend/internal/service/user"
	"github.com/heartmarshall/biztrack-backend/pkg/ctxutil"
)

type registrar interface {
	Register(ctx context.Context, input authsvc.RegisterInput) (*authsvc.AuthResult, error)
}

type profileUpdater interface {
	UpdateProfile(ctx context.Context, in user.UpdateProfileInput) (*domain.User, error)
}

type taskCreator interface {
	Create(ctx context.Context, in task.CreateInput) (*domain.Task, error)
}

type followUpCreator interface {
	Create(ctx context.Context, in followup.CreateInput) (*domain.FollowUp, error)
}

type orgCreator interface {
	Create(ctx context.Context, in org.CreateInput) (*domain.OrgMember, error)
}

// ErrAlreadySeeded is returned when the demo user exists.
var ErrAlreadySeeded = errors.New("demo data already present")

// Seeder creates a demo account with sample tasks, follow-ups due today,
// and an org root. It goes through the services so every record passes
// the same validation as API input.
type Seeder struct {
	auth      registrar
	profile   profileUpdater
	tasks     taskCreator
	followUps followUpCreator
	org       orgCreator
	log       *slog.Logger
}

// NewSeeder creates a Seeder from wired services.
func NewSeeder(logger *slog.Logger, s *Services) *Seeder {
	return &Seeder{
		auth:      s.Auth,
		profile:   s.Profile,
		tasks:     s.Task,
		followUps: s.FollowUp,
		org:       s.OrgChart,
		log:       logger.With("component", "seeder"),
	}
}

// SeedReport lists what was created.
type SeedReport struct {
	User      *domain.User
	Tasks     int
	FollowUps int
	OrgRoot   *domain.OrgMember
}

// Seed creates the demo data for email/password. today is the calendar date
// the follow-ups fall due on.
func (s *Seeder) Seed(ctx context.Context, email, password string, today time.Time) (*SeedReport, error) {
	res, err := s.auth.Register(ctx, authsvc.RegisterInput{
		Email:    email,
		Password: password,
		Name:     "John Doe",
		Phone:    "+15551234567",
	})
	if errors.Is(err, domain.ErrAlreadyExists) {
		return nil, ErrAlreadySeeded
	}
	if err != nil {
		return nil, fmt.Errorf("seed.Register: %w", err)
	}

	ctx = ctxutil.WithUserID(ctx, res.User.ID)
	report := &SeedReport{User: res.User}

	u, err := s.profile.UpdateProfile(ctx, user.UpdateProfileInput{
		Role:               ptr("President Team"),
		Team:               ptr("Global Sales"),
		AgendaReminderTime: ptr(domain.DefaultAgendaReminderTime),
	})
	if err != nil {
		return nil, fmt.Errorf("seed.UpdateProfile: %w", err)
	}
	report.User = u

	today = domain.DateOf(today)
	for _, in := range demoTasks(today) {
		if _, err := s.tasks.Create(ctx, in); err != nil {
			return nil, fmt.Errorf("seed.CreateTask %q: %w", in.Title, err)
		}
		report.Tasks++
	}

	for _, in := range demoFollowUps(today) {
		if _, err := s.followUps.Create(ctx, in); err != nil {
			return nil, fmt.Errorf("seed.CreateFollowUp %q: %w", in.ClientName, err)
		}
		report.FollowUps++
	}

	root, err := s.org.Create(ctx, org.CreateInput{
		Name:  u.Name,
		Role:  "President Team",
		Level: domain.OrgLevelPresidentTeam,
	})
	if err != nil {
		return nil, fmt.Errorf("seed.CreateOrgRoot: %w", err)
	}
	report.OrgRoot = root

	s.log.InfoContext(ctx, "demo data seeded",
		slog.String("user_id", u.ID.String()),
		slog.Int("tasks", report.Tasks),
		slog.Int("follow_ups", report.FollowUps),
	)
	return report, nil
}

func demoTasks(today time.Time) []task.CreateInput {
	return []task.CreateInput{
		{
			Title:       "Review Q3 Financial Reports",
			Description: "Analyze the P&L statement and prepare summary for investors.",
			Priority:    domain.PriorityHigh,
			Status:      domain.StatusInProgress,
			DueDate:     today,
		},
		{
			Title:       "Update Website Landing Page",
			Description: "Refresh the hero image and copy for the new product launch.",
			Priority:    domain.PriorityMedium,
			Status:      domain.StatusPending,
			DueDate:     domain.AddDays(today, 2),
		},
		{
			Title:       "Order New Business Cards",
			Description: "Need batch of 500 with updated QR code.",
			Priority:    domain.PriorityLow,
			Status:      domain.StatusPending,
			DueDate:     domain.AddDays(today, 5),
		},
	}
}

func demoFollowUps(today time.Time) []followup.CreateInput {
	return []followup.CreateInput{
		{
			ClientName:       "Sarah Jenkins",
			Company:          "TechFlow Solutions",
			Mobile:           "+15559876543",
			Email:            "sarah.j@techflow.example.com",
			ClientType:       domain.ClientTypeProspect,
			Frequency:        domain.FrequencyWeekly,
			Priority:         domain.PriorityHigh,
			Status:           domain.StatusPending,
			NextFollowUpDate: today,
			Notes:            "Discussed the premium enterprise plan. Needs a custom quote ASAP.",
		},
		{
			ClientName:       "Michael Chang",
			Company:          "Chang & Partners",
			Mobile:           "+15554443322",
			Email:            "m.chang@cp.example.com",
			ClientType:       domain.ClientTypeAssociate,
			Frequency:        domain.FrequencyMonthly,
			Priority:         domain.PriorityMedium,
			Status:           domain.StatusInProgress,
			NextFollowUpDate: today,
			Notes:            "Met at the networking event. Interested in partnership opportunities.",
		},
	}
}

func ptr[T any](v T) *T { return &v }
