package pendingrequest

import (
	"context"
	"errors"
	"meeting-scheduler-service/internal/app/config"
	"meeting-scheduler-service/internal/app/models"
	"meeting-scheduler-service/internal/pkg/constvars"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestSweeper(lockerSvc *MockLockerService, store *MockPendingRequestStore, now time.Time) *Sweeper {
	cfg := &config.InternalConfig{
		PendingRequest: config.AppPendingRequest{
			SweepCronSpec: "@every 1h",
			MaxAgeInHours: 48,
			SweepBatch:    100,
		},
	}
	w := NewSweeper(zap.NewNop(), cfg, lockerSvc, store)
	w.now = func() time.Time { return now }
	return w
}

func TestSweeper_Sweep(t *testing.T) {
	now := time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)
	cutoff := now.Add(-48 * time.Hour)

	t.Run("purges every stale entry", func(t *testing.T) {
		store := new(MockPendingRequestStore)
		w := newTestSweeper(new(MockLockerService), store, now)

		store.On("ListStale", mock.Anything, cutoff, int64(100)).Return([]string{"a", "b", "c"}, nil).Once()
		store.On("GetAndRemove", mock.Anything, "a").Return(&models.PendingRequest{FileKey: "a"}, nil).Once()
		store.On("GetAndRemove", mock.Anything, "b").Return(nil, nil).Once()
		store.On("GetAndRemove", mock.Anything, "c").Return(nil, errors.New("redis down")).Once()

		purged, err := w.sweep(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 1, purged)
		store.AssertExpectations(t)
	})

	t.Run("listing failure purges nothing", func(t *testing.T) {
		store := new(MockPendingRequestStore)
		w := newTestSweeper(new(MockLockerService), store, now)

		store.On("ListStale", mock.Anything, cutoff, int64(100)).Return(nil, errors.New("down")).Once()

		purged, err := w.sweep(context.Background())
		assert.Error(t, err)
		assert.Equal(t, 0, purged)
		store.AssertNotCalled(t, "GetAndRemove", mock.Anything, mock.Anything)
	})
}

func TestSweeper_RunOnce(t *testing.T) {
	now := time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)

	t.Run("skips when another instance holds the lock", func(t *testing.T) {
		lockerSvc := new(MockLockerService)
		store := new(MockPendingRequestStore)
		w := newTestSweeper(lockerSvc, store, now)

		lockerSvc.On("TryLock", mock.Anything, constvars.RedisSweeperLeaderLockKey, constvars.SweeperLeaderLockTTL).Return(false, "", nil).Once()

		w.runOnce(context.Background())
		store.AssertNotCalled(t, "ListStale", mock.Anything, mock.Anything, mock.Anything)
		lockerSvc.AssertNotCalled(t, "Unlock", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("sweeps and releases the lock as leader", func(t *testing.T) {
		lockerSvc := new(MockLockerService)
		store := new(MockPendingRequestStore)
		w := newTestSweeper(lockerSvc, store, now)

		lockerSvc.On("TryLock", mock.Anything, constvars.RedisSweeperLeaderLockKey, constvars.SweeperLeaderLockTTL).Return(true, "token-1", nil).Once()
		lockerSvc.On("Unlock", mock.Anything, constvars.RedisSweeperLeaderLockKey, "token-1").Return(nil).Once()
		store.On("ListStale", mock.Anything, mock.Anything, int64(100)).Return([]string{}, nil).Once()

		w.runOnce(context.Background())
		lockerSvc.AssertExpectations(t)
		store.AssertExpectations(t)
	})
	t.Run("releases the lock when stopped mid-sweep", func(t *testing.T) {
		lockerSvc := new(MockLockerService)
		store := new(MockPendingRequestStore)
		w := newTestSweeper(lockerSvc, store, now)
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		lockerSvc.On("TryLock", mock.Anything, constvars.RedisSweeperLeaderLockKey, constvars.SweeperLeaderLockTTL).Return(true, "token-2", nil).Once()
		lockerSvc.On("Unlock", mock.MatchedBy(func(c context.Context) bool { return c.Err() == nil }), constvars.RedisSweeperLeaderLockKey, "token-2").Return(nil).Once()
		store.On("ListStale", mock.Anything, mock.Anything, int64(100)).
			Run(func(mock.Arguments) { cancel() }).
			Return([]string{"a", "b"}, nil).Once()

		w.runOnce(ctx)

		require.Error(t, ctx.Err())
		lockerSvc.AssertExpectations(t)
		store.AssertNotCalled(t, "GetAndRemove", mock.Anything, mock.Anything)
	})
}

func TestSweeper_StartFallsBackOnInvalidSpec(t *testing.T) {
	w := newTestSweeper(new(MockLockerService), new(MockPendingRequestStore), time.Now())
	w.cfg.PendingRequest.SweepCronSpec = "not a cron spec"

	w.Start(context.Background())
	defer w.Stop()

	assert.Len(t, w.cron.Entries(), 1)
}
