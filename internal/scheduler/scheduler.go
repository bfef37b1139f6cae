package scheduler

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"AmISober/internal/config"
	"AmISober/internal/input"
	"AmISober/internal/model"
	"AmISober/internal/notifier"
	"AmISober/internal/verdict"
)

// sendRetries is how many times a status-change message is retried.
const sendRetries = 3

// Scheduler re-evaluates the estimate on a cron schedule, advancing the
// elapsed time one step per tick, until the status is normal or the elapsed
// time reaches the form maximum.
type Scheduler struct {
	Cron     *cron.Cron
	Notifier notifier.Sender // nil disables chat messages
	Out      io.Writer
	Logger   zerolog.Logger
	Ctx      context.Context

	mu       sync.Mutex
	current  model.EstimationInput
	previous *model.StatusBucket
	done     chan struct{}
	stopOnce sync.Once
}

// NewScheduler creates a Scheduler starting from in.
func NewScheduler(ctx context.Context, in model.EstimationInput, sender notifier.Sender, out io.Writer, logger zerolog.Logger) *Scheduler {
	return &Scheduler{
		Cron:     cron.New(cron.WithParser(config.CronParser)),
		Notifier: sender,
		Out:      out,
		Logger:   logger,
		Ctx:      ctx,
		current:  in,
		done:     make(chan struct{}),
	}
}

// Register adds the watch tick under the given cron expression.
func (s *Scheduler) Register(spec string) error {
	if _, err := s.Cron.AddFunc(spec, s.Tick); err != nil {
		return fmt.Errorf("register watch task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	s.Logger.Info().Msg("scheduler started")
}

// Stop stops the cron scheduler and waits for a running tick to finish.
func (s *Scheduler) Stop() {
	<-s.Cron.Stop().Done()
	s.Logger.Info().Msg("scheduler stopped")
}

// Done is closed once the watch has nothing left to report.
func (s *Scheduler) Done() <-chan struct{} {
	return s.done
}

// Tick evaluates the current snapshot, reports it and advances elapsed time.
func (s *Scheduler) Tick() {
	s.mu.Lock()
	defer s.mu.Unlock()

	select {
	case <-s.done:
		return
	default:
	}

	a := verdict.Evaluate(s.current)
	s.Logger.Debug().
		Float64("elapsed_hours", s.current.ElapsedHours).
		Float64("bac", a.BAC).
		Str("status", a.Status.Level.String()).
		Msg("watch tick")

	update := notifier.FormatWatchUpdate(a, s.previous)
	if _, err := io.WriteString(s.Out, update); err != nil {
		s.Logger.Error().Err(err).Msg("write watch update")
	}

	if s.Notifier != nil && (s.previous == nil || s.previous.Level != a.Status.Level) {
		if err := s.Notifier.SendWithRetry(s.Ctx, update, sendRetries); err != nil {
			s.Logger.Error().Err(err).Msg("send notification")
		}
	}

	status := a.Status
	s.previous = &status

	if a.Status.Level == model.LevelNormal || s.current.ElapsedHours >= input.MaxElapsedHours {
		s.Logger.Info().
			Str("status", a.Status.Level.String()).
			Float64("elapsed_hours", s.current.ElapsedHours).
			Msg("watch finished")
		s.stopOnce.Do(func() { close(s.done) })
		return
	}
	s.current = input.Advance(s.current)
}
