package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	goredis "github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/biztrack-backend/internal/adapter/messaging"
	"github.com/heartmarshall/biztrack-backend/internal/adapter/postgres"
	followuprepo "github.com/heartmarshall/biztrack-backend/internal/adapter/postgres/followup"
	orgrepo "github.com/heartmarshall/biztrack-backend/internal/adapter/postgres/org"
	taskrepo "github.com/heartmarshall/biztrack-backend/internal/adapter/postgres/task"
	userrepo "github.com/heartmarshall/biztrack-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/biztrack-backend/internal/adapter/redis"
	"github.com/heartmarshall/biztrack-backend/internal/auth"
	"github.com/heartmarshall/biztrack-backend/internal/config"
	authsvc "github.com/heartmarshall/biztrack-backend/internal/service/auth"
	"github.com/heartmarshall/biztrack-backend/internal/service/digest"
	"github.com/heartmarshall/biztrack-backend/internal/service/followup"
	"github.com/heartmarshall/biztrack-backend/internal/service/org"
	"github.com/heartmarshall/biztrack-backend/internal/service/schedule"
	"github.com/heartmarshall/biztrack-backend/internal/service/task"
	"github.com/heartmarshall/biztrack-backend/internal/service/user"
	"github.com/heartmarshall/biztrack-backend/internal/transport/middleware"
	"github.com/heartmarshall/biztrack-backend/internal/transport/rest"
	"github.com/heartmarshall/biztrack-backend/migrations"
)

// Services is the wired service layer shared by the server and biztrackctl.
type Services struct {
	Users     *userrepo.Repo
	FollowUps *followuprepo.Repo
	Tasks     *taskrepo.Repo
	Org       *orgrepo.Repo

	JWT      *auth.JWTManager
	Auth     *authsvc.Service
	Profile  *user.Service
	FollowUp *followup.Service
	Schedule *schedule.Service
	Task     *task.Service
	OrgChart *org.Service
}

// NewServices builds repositories and services on top of pool.
func NewServices(cfg *config.Config, logger *slog.Logger, pool *pgxpool.Pool) *Services {
	loc := cfg.Digest.Location()
	tx := postgres.NewTxManager(pool)

	s := &Services{
		Users:     userrepo.New(pool),
		FollowUps: followuprepo.New(pool),
		Tasks:     taskrepo.New(pool),
		Org:       orgrepo.New(pool),
		JWT:       auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL),
	}
	s.Auth = authsvc.NewService(logger, s.Users, s.JWT, cfg.Auth)
	s.Profile = user.NewService(logger, s.Users)
	s.FollowUp = followup.NewService(logger, s.FollowUps, tx, loc)
	s.Schedule = schedule.NewService(logger, s.FollowUps)
	s.Task = task.NewService(logger, s.Tasks)
	s.OrgChart = org.NewService(logger, s.Org, tx)
	return s
}

// NewSender selects the digest delivery driver.
func NewSender(cfg config.MessagingConfig, logger *slog.Logger) digest.Sender {
	if cfg.Driver == config.MessagingDriverWebhook {
		return messaging.NewWebhookSender(logger, cfg.WebhookURL, cfg.Token, cfg.Timeout)
	}
	return messaging.NewLogSender(logger)
}

// NewDigestJob wires the digest job. When Redis is enabled the returned
// client coordinates delivery claims and must be closed by the caller; it
// is nil otherwise.
func NewDigestJob(ctx context.Context, cfg *config.Config, logger *slog.Logger, s *Services) (*digest.Job, *goredis.Client, error) {
	var (
		claims digest.Claimer
		client *goredis.Client
	)
	if cfg.Redis.Enabled {
		c, err := redis.NewClient(ctx, cfg.Redis)
		if err != nil {
			return nil, nil, err
		}
		client = c
		claims = redis.NewClaimer(c)
		logger.Info("digest claims coordinated via redis", slog.String("addr", cfg.Redis.Addr))
	}

	job := digest.NewJob(logger, s.Users, s.Schedule, NewSender(cfg.Messaging, logger), claims, digest.Config{
		Interval:       cfg.Digest.TickInterval,
		PerUserTimeout: cfg.Digest.PerUserTimeout,
		ClaimTTL:       cfg.Digest.ClaimTTL,
		Workers:        cfg.Digest.Workers,
		Location:       cfg.Digest.Location(),
	})
	return job, client, nil
}

// Run loads configuration, connects to Postgres, and serves HTTP plus the
// digest job until ctx is canceled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)
	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("messaging_driver", cfg.Messaging.Driver),
		slog.Bool("digest_enabled", cfg.Digest.Enabled),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	if cfg.Database.AutoMigrate {
		if err := postgres.Migrate(ctx, logger, pool, migrations.FS); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}

	svc := NewServices(cfg, logger, pool)

	health := rest.NewHealthHandler(pool, BuildVersion())

	var job *digest.Job
	if cfg.Digest.Enabled {
		j, client, err := NewDigestJob(ctx, cfg, logger, svc)
		if err != nil {
			return err
		}
		if client != nil {
			defer client.Close()
			health.WithComponent("redis", func(ctx context.Context) error {
				return client.Ping(ctx).Err()
			})
		}
		job = j
	}

	limiter := middleware.NewRateLimiter(5 * time.Minute)
	defer limiter.Stop()

	handler := rest.NewRouter(rest.RouterDeps{
		Logger:    logger,
		Tokens:    svc.JWT,
		CORS:      cfg.CORS,
		Limiter:   limiter,
		AuthLimit: cfg.RateLimit.AuthPerMinute,
		Health:    health,
		Auth:      rest.NewAuthHandler(logger, svc.Auth),
		User:      rest.NewUserHandler(logger, svc.Profile),
		FollowUps: rest.NewFollowUpHandler(logger, svc.FollowUp, svc.Schedule, cfg.Digest.Location()),
		Tasks:     rest.NewTaskHandler(logger, svc.Task),
		Org:       rest.NewOrgHandler(logger, svc.OrgChart),
	})

	server := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	if job != nil {
		job.Start(gctx)
	}

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		err := server.Shutdown(shutdownCtx)
		if job != nil {
			job.Stop()
		}
		return err
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("stopped")
	return nil
}
