package schedule

import (
	"context"
	"net/netip"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/qdm12/gdomains-updater/internal/gdomains"
	"github.com/qdm12/gdomains-updater/internal/models"
	"github.com/qdm12/gdomains-updater/internal/schedule/mock_schedule"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	testingclock "k8s.io/utils/clock/testing"
)

func newTestConfig() models.UpdateConfig {
	return models.UpdateConfig{
		Domain:   "sub.example.com",
		Username: "u",
		Password: "p",
		Interval: time.Minute,
		Timeout:  5 * time.Second,
	}
}

func newFakeClock() *testingclock.FakeClock {
	return testingclock.NewFakeClock(time.Unix(1700000000, 0))
}

func waitForTimer(t *testing.T, fakeClock *testingclock.FakeClock) {
	t.Helper()
	require.Eventually(t, fakeClock.HasWaiters, time.Second, time.Millisecond)
}

type startResult struct {
	handle *Handle
	err    error
}

func startAsync(ctx context.Context, scheduler *Scheduler,
	config models.UpdateConfig) <-chan startResult {
	results := make(chan startResult, 1)
	go func() {
		handle, err := scheduler.Start(ctx, config)
		results <- startResult{handle: handle, err: err}
	}()
	return results
}

func Test_Scheduler_Start(t *testing.T) {
	t.Parallel()

	success := gdomains.Outcome{
		Success: true,
		Address: netip.MustParseAddr("203.0.113.7"),
		RawBody: "good 203.0.113.7",
	}
	failure := gdomains.Outcome{
		RawBody: "badauth",
		Err:     gdomains.ErrProviderRejection,
	}

	t.Run("first attempt succeeds", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		config := newTestConfig()
		fakeClock := newFakeClock()

		updater := mock_schedule.NewMockUpdater(ctrl)
		updater.EXPECT().AttemptUpdate(gomock.Any(), "sub.example.com", "u", "p", 5*time.Second).
			Return(success)
		logger := mock_schedule.NewMockLogger(ctrl)
		logger.EXPECT().Info("sub.example.com: updating every 1m0s")

		scheduler := New(updater, fakeClock, logger)

		handle, err := scheduler.Start(context.Background(), config)
		require.NoError(t, err)
		require.NotNil(t, handle)
		assert.Equal(t, "sub.example.com", handle.Domain())

		handle.Stop()
	})

	t.Run("retry succeeds after the first attempt failed", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		config := newTestConfig()
		fakeClock := newFakeClock()

		updater := mock_schedule.NewMockUpdater(ctrl)
		gomock.InOrder(
			updater.EXPECT().AttemptUpdate(gomock.Any(), "sub.example.com", "u", "p", 5*time.Second).
				Return(failure),
			updater.EXPECT().AttemptUpdate(gomock.Any(), "sub.example.com", "u", "p", 5*time.Second).
				Return(success),
		)
		logger := mock_schedule.NewMockLogger(ctrl)
		logger.EXPECT().Warn("sub.example.com: first update failed, retrying in 1s")
		logger.EXPECT().Info("sub.example.com: updating every 1m0s")

		scheduler := New(updater, fakeClock, logger)

		results := startAsync(context.Background(), scheduler, config)

		waitForTimer(t, fakeClock)
		fakeClock.Step(RetryDelay - time.Millisecond)
		select {
		case <-results:
			t.Fatal("start returned before the retry delay elapsed")
		default:
		}
		fakeClock.Step(time.Millisecond)

		result := <-results
		require.NoError(t, result.err)
		require.NotNil(t, result.handle)

		// periodic timer installed
		waitForTimer(t, fakeClock)
		result.handle.Stop()
		assert.False(t, fakeClock.HasWaiters())
	})

	t.Run("setup fails when the retry fails", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		config := newTestConfig()
		fakeClock := newFakeClock()

		updater := mock_schedule.NewMockUpdater(ctrl)
		updater.EXPECT().AttemptUpdate(gomock.Any(), "sub.example.com", "u", "p", 5*time.Second).
			Return(failure).Times(2)
		logger := mock_schedule.NewMockLogger(ctrl)
		logger.EXPECT().Warn("sub.example.com: first update failed, retrying in 1s")

		scheduler := New(updater, fakeClock, logger)

		results := startAsync(context.Background(), scheduler, config)

		waitForTimer(t, fakeClock)
		fakeClock.Step(RetryDelay)

		result := <-results
		assert.Nil(t, result.handle)
		assert.ErrorIs(t, result.err, ErrSetupFailed)
		assert.ErrorIs(t, result.err, gdomains.ErrProviderRejection)
		assert.EqualError(t, result.err, "setup failed: for domain sub.example.com: "+
			"update rejected by Google Domains")

		// no periodic timer installed
		assert.False(t, fakeClock.HasWaiters())
		fakeClock.Step(10 * time.Minute)
	})

	t.Run("context canceled while waiting to retry", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		config := newTestConfig()
		fakeClock := newFakeClock()

		updater := mock_schedule.NewMockUpdater(ctrl)
		updater.EXPECT().AttemptUpdate(gomock.Any(), "sub.example.com", "u", "p", 5*time.Second).
			Return(failure)
		logger := mock_schedule.NewMockLogger(ctrl)
		logger.EXPECT().Warn("sub.example.com: first update failed, retrying in 1s")

		scheduler := New(updater, fakeClock, logger)

		ctx, cancel := context.WithCancel(context.Background())
		results := startAsync(ctx, scheduler, config)

		waitForTimer(t, fakeClock)
		cancel()

		result := <-results
		assert.Nil(t, result.handle)
		assert.ErrorIs(t, result.err, context.Canceled)
		assert.NotErrorIs(t, result.err, ErrSetupFailed)

		// pending retry canceled
		assert.False(t, fakeClock.HasWaiters())
		fakeClock.Step(RetryDelay)
	})
}

func Test_Handle_Stop(t *testing.T) {
	t.Parallel()

	success := gdomains.Outcome{
		Success: true,
		Address: netip.MustParseAddr("203.0.113.7"),
	}
	failure := gdomains.Outcome{Err: gdomains.ErrConnectivity}

	t.Run("no attempt after stop", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		config := newTestConfig()
		fakeClock := newFakeClock()

		updater := mock_schedule.NewMockUpdater(ctrl)
		updater.EXPECT().AttemptUpdate(gomock.Any(), "sub.example.com", "u", "p", 5*time.Second).
			Return(success)
		logger := mock_schedule.NewMockLogger(ctrl)
		logger.EXPECT().Info("sub.example.com: updating every 1m0s")
		logger.EXPECT().Debug("sub.example.com: periodic update failed, next attempt in 1m0s")

		scheduler := New(updater, fakeClock, logger)

		handle, err := scheduler.Start(context.Background(), config)
		require.NoError(t, err)

		attempted := make(chan struct{})
		updater.EXPECT().AttemptUpdate(gomock.Any(), "sub.example.com", "u", "p", 5*time.Second).
			DoAndReturn(func(_ context.Context, _, _, _ string, _ time.Duration) gdomains.Outcome {
				attempted <- struct{}{}
				return failure
			})
		updater.EXPECT().AttemptUpdate(gomock.Any(), "sub.example.com", "u", "p", 5*time.Second).
			DoAndReturn(func(_ context.Context, _, _, _ string, _ time.Duration) gdomains.Outcome {
				attempted <- struct{}{}
				return success
			})

		// Ticks keep on attempting regardless of the previous outcome.
		const ticks = 2
		for i := 0; i < ticks; i++ {
			waitForTimer(t, fakeClock)
			fakeClock.Step(config.Interval)
			<-attempted
		}

		waitForTimer(t, fakeClock)
		handle.Stop()
		handle.Stop()
		assert.False(t, fakeClock.HasWaiters())

		const intervalsAfterStop = 5
		for i := 0; i < intervalsAfterStop; i++ {
			fakeClock.Step(config.Interval)
		}
	})

	t.Run("in flight outcome discarded", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		config := newTestConfig()
		fakeClock := newFakeClock()

		updater := mock_schedule.NewMockUpdater(ctrl)
		updater.EXPECT().AttemptUpdate(gomock.Any(), "sub.example.com", "u", "p", 5*time.Second).
			Return(success)
		logger := mock_schedule.NewMockLogger(ctrl)
		logger.EXPECT().Info("sub.example.com: updating every 1m0s")
		logger.EXPECT().Debug("sub.example.com: discarding outcome of update finished after stop")

		scheduler := New(updater, fakeClock, logger)

		handle, err := scheduler.Start(context.Background(), config)
		require.NoError(t, err)

		inFlight := make(chan struct{})
		release := make(chan struct{})
		updater.EXPECT().AttemptUpdate(gomock.Any(), "sub.example.com", "u", "p", 5*time.Second).
			DoAndReturn(func(ctx context.Context, _, _, _ string, _ time.Duration) gdomains.Outcome {
				close(inFlight)
				<-ctx.Done() // canceled by Stop
				<-release
				return failure
			})

		waitForTimer(t, fakeClock)
		fakeClock.Step(config.Interval)
		<-inFlight

		stopped := make(chan struct{})
		go func() {
			handle.Stop()
			close(stopped)
		}()

		require.Eventually(t, func() bool {
			select {
			case <-handle.stop:
				return true
			default:
				return false
			}
		}, time.Second, time.Millisecond)

		select {
		case <-stopped:
			t.Fatal("stop returned before the attempt in flight finished")
		default:
		}

		close(release)
		<-stopped

		assert.False(t, fakeClock.HasWaiters())
		fakeClock.Step(3 * config.Interval)
	})
}
