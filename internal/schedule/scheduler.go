package schedule

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/qdm12/gdomains-updater/internal/gdomains"
	"github.com/qdm12/gdomains-updater/internal/models"
	"github.com/robfig/cron/v3"
	"k8s.io/utils/clock"
)

// RetryDelay is the delay before the single retry
// done when the first update attempt fails.
const RetryDelay = time.Second

var ErrSetupFailed = errors.New("setup failed")

type Scheduler struct {
	updater Updater
	clock   clock.Clock
	logger  Logger
}

func New(updater Updater, clk clock.Clock, logger Logger) *Scheduler {
	return &Scheduler{
		updater: updater,
		clock:   clk,
		logger:  logger,
	}
}

// Start brings up the periodic updates for the domain given.
// It blocks until a first update succeeds, retrying exactly once
// after RetryDelay. If both attempts fail, an error wrapping
// ErrSetupFailed is returned and nothing keeps running.
// Canceling ctx aborts a pending retry.
func (s *Scheduler) Start(ctx context.Context, config models.UpdateConfig) (
	handle *Handle, err error) {
	outcome := s.attempt(ctx, config)
	if !outcome.Success {
		s.logger.Warn(fmt.Sprintf("%s: first update failed, retrying in %s",
			config.Domain, RetryDelay))

		timer := s.clock.NewTimer(RetryDelay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, fmt.Errorf("waiting to retry update for %s: %w",
				config.Domain, ctx.Err())
		case <-timer.C():
		}

		outcome = s.attempt(ctx, config)
		if !outcome.Success {
			return nil, fmt.Errorf("%w: for domain %s: %w",
				ErrSetupFailed, config.Domain, outcome.Err)
		}
	}

	runCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	handle = newHandle(config.Domain, cancel)
	go s.run(runCtx, config, handle)

	s.logger.Info(fmt.Sprintf("%s: updating every %s", config.Domain, config.Interval))
	return handle, nil
}

func (s *Scheduler) attempt(ctx context.Context,
	config models.UpdateConfig) (outcome gdomains.Outcome) {
	return s.updater.AttemptUpdate(ctx, config.Domain,
		config.Username, config.Password, config.Timeout)
}

// run drives the periodic timeline of a single domain. The next tick
// is only scheduled once the previous attempt returned, so attempts
// for the same domain never overlap.
func (s *Scheduler) run(ctx context.Context, config models.UpdateConfig,
	handle *Handle) {
	defer close(handle.done)

	schedule := cron.Every(config.Interval)
	for {
		now := s.clock.Now()
		next := schedule.Next(now)
		timer := s.clock.NewTimer(next.Sub(now))
		select {
		case <-handle.stop:
			timer.Stop()
			return
		case <-timer.C():
		}

		select {
		case <-handle.stop:
			return
		default:
		}

		outcome := s.attempt(ctx, config)

		select {
		case <-handle.stop:
			s.logger.Debug(fmt.Sprintf("%s: discarding outcome of update finished after stop",
				config.Domain))
			return
		default:
		}

		if !outcome.Success {
			s.logger.Debug(fmt.Sprintf("%s: periodic update failed, next attempt in %s",
				config.Domain, config.Interval))
		}
	}
}
