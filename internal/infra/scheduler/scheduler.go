package scheduler

import (
	"context"
	"log/slog"
	"time"

	"cosmic-courier/internal/infra/repository"
	"cosmic-courier/internal/pkg/config"
	"cosmic-courier/internal/pkg/errs"
	"cosmic-courier/internal/usecase/commands"

	"github.com/robfig/cron/v3"
)

// DispatchScheduler runs the sweep and digest as in-process cron jobs. It is
// an optional fallback: external schedulers hitting the /cron endpoints are
// the primary trigger, and the dedup store keeps the two from double-sending.
type DispatchScheduler struct {
	cronEngine *cron.Cron
	dispatch   commands.DispatchCommands
	logger     *slog.Logger
	cfg        config.CronConfig
}

func NewDispatchScheduler(dispatch commands.DispatchCommands, logger *slog.Logger, cfg config.CronConfig) *DispatchScheduler {
	return &DispatchScheduler{
		cronEngine: cron.New(cron.WithLocation(time.UTC)),
		dispatch:   dispatch,
		logger:     logger,
		cfg:        cfg,
	}
}

// Start registers the sweep and digest jobs and starts the cron engine.
func (s *DispatchScheduler) Start() error {
	if _, err := s.cronEngine.AddFunc(s.cfg.SweepSpec, func() {
		s.runJob("sweep", repository.SentByFourHourly, s.cfg.SweepTopN)
	}); err != nil {
		return errs.Wrap(err, "register sweep job")
	}

	if _, err := s.cronEngine.AddFunc(s.cfg.DigestSpec, func() {
		s.runJob("digest", repository.SentByDaily, s.cfg.DigestTopN)
	}); err != nil {
		return errs.Wrap(err, "register digest job")
	}

	s.cronEngine.Start()
	s.logger.Info("dispatch scheduler started",
		slog.String("sweep_spec", s.cfg.SweepSpec),
		slog.String("digest_spec", s.cfg.DigestSpec))
	return nil
}

func (s *DispatchScheduler) runJob(name string, sentBy repository.SentBy, topN int) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	result, err := s.dispatch.Run(ctx, sentBy, topN)
	if err != nil {
		s.logger.Error("scheduled dispatch failed",
			slog.String("job", name),
			slog.String("error", err.Error()))
		return
	}

	s.logger.Info("scheduled dispatch completed",
		slog.String("job", name),
		slog.Int("notifications_sent", result.NotificationsSent),
		slog.Int("new_events", result.NewEventsCount),
		slog.Bool("suppressed", result.Suppressed))
}

// Stop waits for running jobs before returning.
func (s *DispatchScheduler) Stop() {
	ctx := s.cronEngine.Stop()
	<-ctx.Done()
	s.logger.Info("dispatch scheduler stopped")
}
