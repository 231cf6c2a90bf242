// Package scheduler runs periodic maintenance jobs.
package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"

	"goldapple-bot/internal/logger"
)

// Scheduler drives the nightly catalog check.
type Scheduler struct {
	cron        *cron.Cron
	ctx         context.Context
	cancel      context.CancelFunc
	refreshFunc func(ctx context.Context) error
}

func New() *Scheduler {
	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{
		cron:   cron.New(cron.WithLocation(time.UTC)),
		ctx:    ctx,
		cancel: cancel,
	}
}

// SetRefreshFunction sets the job run on the nightly schedule.
func (s *Scheduler) SetRefreshFunction(f func(ctx context.Context) error) {
	s.refreshFunc = f
}

func (s *Scheduler) Start() error {
	if s.refreshFunc == nil {
		logger.Warnf("refresh function not set, scheduler will not run catalog checks")
		return nil
	}

	// Nightly at 03:00 UTC
	_, err := s.cron.AddFunc("0 3 * * *", func() {
		if err := s.refreshFunc(s.ctx); err != nil {
			logger.Errorf("nightly catalog check failed: %v", err)
		}
	})
	if err != nil {
		return err
	}

	s.cron.Start()
	logger.Infof("scheduler started, catalog check runs daily at 03:00 UTC")
	return nil
}

func (s *Scheduler) Stop() {
	if s.cron != nil {
		ctx := s.cron.Stop()
		<-ctx.Done()
	}
	if s.cancel != nil {
		s.cancel()
	}
	logger.Infof("scheduler stopped")
}
