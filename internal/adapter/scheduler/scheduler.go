// Package scheduler triggers recompute runs on a fixed interval.
package scheduler

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"adspend/internal/core/port"
)

// Scheduler calls SpendUseCase.Recompute once at start and then on every
// tick until its context is cancelled.
type Scheduler struct {
	svc      port.SpendUseCase
	interval time.Duration
	logger   *slog.Logger
}

// New returns a scheduler running svc every interval. Errors of a single
// run are logged and do not stop the schedule.
func New(svc port.SpendUseCase, interval time.Duration, logger *slog.Logger) *Scheduler {
	return &Scheduler{svc: svc, interval: interval, logger: logger}
}

// Run blocks until ctx is done. A non-positive interval returns at once.
func (s *Scheduler) Run(ctx context.Context) {
	if s.interval <= 0 {
		s.logger.Info("scheduled recompute disabled")
		return
	}
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduled recompute started", slog.Duration("interval", s.interval))
	s.runOnce(ctx)
	for {
		select {
		case <-ticker.C:
			s.runOnce(ctx)
		case <-ctx.Done():
			s.logger.Info("scheduled recompute stopped")
			return
		}
	}
}

func (s *Scheduler) runOnce(ctx context.Context) {
	res, err := s.svc.Recompute(ctx)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return
		}
		s.logger.Error("scheduled recompute failed", slog.Any("error", err))
		return
	}
	if len(res.Failed) > 0 {
		s.logger.Warn("scheduled recompute finished with failures",
			slog.String("run_id", res.RunID),
			slog.Int("failed", len(res.Failed)),
		)
	}
}
