// Package digest runs the daily outreach agenda job: once per minute it finds
// the users whose reminder time is now and sends each one the follow-ups
// scheduled for today.
package digest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/biztrack-backend/internal/domain"
)

// ErrTickInProgress is returned by RunOnce while another tick is running.
var ErrTickInProgress = errors.New("digest tick already in progress")

type userLister interface {
	ListActiveAt(ctx context.Context, clock string) ([]domain.User, error)
}

type agendaSource interface {
	ForDayOf(ctx context.Context, userID uuid.UUID, day time.Time) ([]domain.FollowUp, error)
}

// Sender delivers one rendered agenda to a phone number.
type Sender interface {
	Send(ctx context.Context, phone, text string) error
}

// Claimer grants a key to one caller until ttl passes, so replicas do not
// send the same digest twice.
type Claimer interface {
	Claim(ctx context.Context, key string, ttl time.Duration) (bool, error)
}

// Config tunes the job.
type Config struct {
	Interval       time.Duration
	PerUserTimeout time.Duration
	ClaimTTL       time.Duration
	Workers        int
	// Location is the process clock the reminder times are read in.
	Location *time.Location
}

func (c Config) withDefaults() Config {
	if c.Interval <= 0 {
		c.Interval = time.Minute
	}
	if c.PerUserTimeout <= 0 {
		c.PerUserTimeout = 10 * time.Second
	}
	if c.ClaimTTL <= 0 {
		c.ClaimTTL = 24 * time.Hour
	}
	if c.Workers <= 0 {
		c.Workers = 4
	}
	if c.Location == nil {
		c.Location = time.Local
	}
	return c
}

// Report summarizes one tick.
type Report struct {
	Clock     string
	Date      time.Time
	Matched   int
	Delivered int
	Skipped   int
	Failed    int
}

type result int

const (
	resultSkipped result = iota
	resultDelivered
	resultFailed
)

// Job is the daily digest scheduler. Create it with NewJob, then Start it;
// Stop waits for the loop and any running tick to finish.
type Job struct {
	users  userLister
	agenda agendaSource
	sender Sender
	claims Claimer
	cfg    Config
	log    *slog.Logger
	now    func() time.Time

	running atomic.Bool

	mu        sync.Mutex
	lastClock string

	stop     chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// NewJob creates a digest job. claims may be nil for single-replica setups.
func NewJob(
	log *slog.Logger,
	users userLister,
	agenda agendaSource,
	snd Sender,
	claims Claimer,
	cfg Config,
) *Job {
	if claims == nil {
		claims = NopClaimer{}
	}
	return &Job{
		users:  users,
		agenda: agenda,
		sender: snd,
		claims: claims,
		cfg:    cfg.withDefaults(),
		log:    log.With("service", "digest"),
		now:    time.Now,
		stop:   make(chan struct{}),
	}
}

// Start runs the tick loop in the background until ctx is done or Stop is
// called. The first tick fires on the next minute boundary.
func (j *Job) Start(ctx context.Context) {
	j.wg.Add(1)
	go func() {
		defer j.wg.Done()

		now := j.now()
		first := time.NewTimer(now.Truncate(time.Minute).Add(time.Minute).Sub(now))
		defer first.Stop()

		select {
		case <-ctx.Done():
			return
		case <-j.stop:
			return
		case <-first.C:
		}
		j.tick(ctx)

		ticker := time.NewTicker(j.cfg.Interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-j.stop:
				return
			case <-ticker.C:
				j.tick(ctx)
			}
		}
	}()

	j.log.Info("digest job started",
		slog.Duration("interval", j.cfg.Interval),
		slog.String("location", j.cfg.Location.String()),
	)
}

// Stop ends the loop and waits for an in-flight tick.
func (j *Job) Stop() {
	j.stopOnce.Do(func() { close(j.stop) })
	j.wg.Wait()
	j.log.Info("digest job stopped")
}

// tick starts RunOnce in its own goroutine so a slow tick never delays the
// ticker. Local minutes only move forward: a tick for a minute at or before
// the last one run is dropped, so the hour repeated when DST falls back is
// not delivered twice.
func (j *Job) tick(ctx context.Context) {
	now := j.now()
	local := now.In(j.cfg.Location)
	key := domain.FormatDate(local) + " " + domain.ClockOf(local)

	j.mu.Lock()
	if key <= j.lastClock {
		j.mu.Unlock()
		return
	}
	j.lastClock = key
	j.mu.Unlock()

	j.wg.Add(1)
	go func() {
		defer j.wg.Done()
		rep, err := j.RunOnce(ctx, now)
		switch {
		case errors.Is(err, ErrTickInProgress):
			j.log.Warn("digest tick skipped, previous tick still running", slog.String("clock", rep.Clock))
		case err != nil:
			j.log.Error("digest tick failed", slog.String("error", err.Error()))
		default:
			j.log.Debug("digest tick done",
				slog.String("clock", rep.Clock),
				slog.Int("matched", rep.Matched),
				slog.Int("delivered", rep.Delivered),
				slog.Int("skipped", rep.Skipped),
				slog.Int("failed", rep.Failed),
			)
		}
	}()
}

// RunOnce performs a single tick as of now. Per-user failures are logged and
// counted, never returned; only listing users can fail the tick.
func (j *Job) RunOnce(ctx context.Context, now time.Time) (Report, error) {
	local := now.In(j.cfg.Location)
	rep := Report{Clock: domain.ClockOf(local), Date: domain.DateOf(local)}

	if !j.running.CompareAndSwap(false, true) {
		return rep, ErrTickInProgress
	}
	defer j.running.Store(false)

	all, err := j.users.ListActiveAt(ctx, rep.Clock)
	if err != nil {
		return rep, fmt.Errorf("list active users: %w", err)
	}

	var due []domain.User
	for _, u := range all {
		if u.IsActive() && u.RemindsAt(rep.Clock) {
			due = append(due, u)
		}
	}
	rep.Matched = len(due)
	if len(due) == 0 {
		return rep, nil
	}

	var delivered, skipped, failed atomic.Int64
	var g errgroup.Group
	g.SetLimit(j.cfg.Workers)
	for _, u := range due {
		g.Go(func() error {
			switch j.deliver(ctx, u, rep.Date, rep.Clock) {
			case resultDelivered:
				delivered.Add(1)
			case resultFailed:
				failed.Add(1)
			default:
				skipped.Add(1)
			}
			return nil
		})
	}
	_ = g.Wait()

	rep.Delivered = int(delivered.Load())
	rep.Skipped = int(skipped.Load())
	rep.Failed = int(failed.Load())
	return rep, nil
}

func (j *Job) deliver(ctx context.Context, u domain.User, day time.Time, clock string) result {
	log := j.log.With(slog.String("user_id", u.ID.String()))

	if !u.HasDeliveryTarget() {
		log.Debug("digest skipped, no phone")
		return resultSkipped
	}

	ctx, cancel := context.WithTimeout(ctx, j.cfg.PerUserTimeout)
	defer cancel()

	records, err := j.agenda.ForDayOf(ctx, u.ID, day)
	if err != nil {
		log.Error("digest agenda query failed", slog.String("error", err.Error()))
		return resultFailed
	}
	if len(records) == 0 {
		log.Debug("digest skipped, nothing scheduled")
		return resultSkipped
	}

	ok, err := j.claims.Claim(ctx, ClaimKey(day, clock, u.ID), j.cfg.ClaimTTL)
	if err != nil {
		log.Warn("digest claim failed, delivering anyway", slog.String("error", err.Error()))
	} else if !ok {
		log.Debug("digest already claimed by another replica")
		return resultSkipped
	}

	if err := j.sender.Send(ctx, u.Phone, Render(u.Name, records)); err != nil {
		err = fmt.Errorf("%w: %w", domain.ErrDeliveryFailure, err)
		log.Error("digest delivery failed", slog.String("error", err.Error()))
		return resultFailed
	}

	log.Info("digest delivered", slog.Int("records", len(records)))
	return resultDelivered
}
