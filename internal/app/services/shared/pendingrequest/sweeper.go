package pendingrequest

import (
	"context"
	"meeting-scheduler-service/internal/app/config"
	"meeting-scheduler-service/internal/app/contracts"
	"meeting-scheduler-service/internal/pkg/constvars"
	"meeting-scheduler-service/internal/pkg/utils"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Sweeper purges pending requests whose solver never called back.
type Sweeper struct {
	log    *zap.Logger
	cfg    *config.InternalConfig
	locker contracts.LockerService
	store  contracts.PendingRequestStore
	now    func() time.Time
	stop   chan struct{}
	cron   *cron.Cron
	runCtx context.Context
	cancel context.CancelFunc
}

func NewSweeper(log *zap.Logger, cfg *config.InternalConfig, lockerSvc contracts.LockerService, store contracts.PendingRequestStore) *Sweeper {
	return &Sweeper{log: log, cfg: cfg, locker: lockerSvc, store: store, now: time.Now, stop: make(chan struct{})}
}

func (w *Sweeper) Start(ctx context.Context) {
	w.runCtx, w.cancel = context.WithCancel(ctx)
	c := cron.New()
	spec := w.cfg.PendingRequest.SweepCronSpec
	_, err := c.AddFunc(spec, func() { w.runOnce(w.runCtx) })
	if err != nil {
		w.log.Warn("pendingrequest.sweeper: failed to schedule with provided cron spec; falling back",
			zap.String("cron_spec", spec),
			zap.String("fallback_cron_spec", constvars.SweeperFallbackCronSpec),
			zap.Error(err),
		)
		c = cron.New()
		_, _ = c.AddFunc(constvars.SweeperFallbackCronSpec, func() { w.runOnce(w.runCtx) })
	}
	c.Start()
	w.cron = c
}

// Stop waits for an in-flight sweep to finish.
func (w *Sweeper) Stop() {
	select {
	case <-w.stop:
	default:
		close(w.stop)
	}
	if w.cancel != nil {
		w.cancel()
	}
	if w.cron != nil {
		ctx := w.cron.Stop()
		<-ctx.Done()
	}
}

func (w *Sweeper) runOnce(ctx context.Context) {
	ttl := constvars.SweeperLeaderLockTTL
	acquired, token, err := w.locker.TryLock(ctx, constvars.RedisSweeperLeaderLockKey, ttl)
	if err != nil {
		w.log.Warn("pendingrequest.sweeper: leader lock attempt failed", zap.Error(err))
		return
	}
	if !acquired {
		w.log.Info("pendingrequest.sweeper: leader lock not acquired; another instance is sweeping")
		return
	}
	// Stop cancels ctx mid-sweep; the lock must still be released.
	defer w.locker.Unlock(context.WithoutCancel(ctx), constvars.RedisSweeperLeaderLockKey, token)

	refreshCtx, cancelRefresh := context.WithCancel(ctx)
	defer cancelRefresh()
	go func() {
		tick := time.NewTicker(ttl / 2)
		defer tick.Stop()
		for {
			select {
			case <-refreshCtx.Done():
				return
			case <-tick.C:
				if err := w.locker.Refresh(refreshCtx, constvars.RedisSweeperLeaderLockKey, token, ttl); err != nil {
					w.log.Warn("pendingrequest.sweeper: failed to refresh leader lock TTL", zap.Error(err))
				}
			}
		}
	}()

	_ = utils.TraceOperation(w.log, constvars.OperationPendingRequestSweep, utils.GenerateRequestID(), func() error {
		_, err := w.sweep(ctx)
		return err
	})
}

func (w *Sweeper) sweep(ctx context.Context) (int, error) {
	maxAge := time.Duration(w.cfg.PendingRequest.MaxAgeInHours) * time.Hour
	cutoff := w.now().Add(-maxAge)

	fileKeys, err := w.store.ListStale(ctx, cutoff, int64(w.cfg.PendingRequest.SweepBatch))
	if err != nil {
		return 0, err
	}

	purged := 0
	for _, fileKey := range fileKeys {
		if ctx.Err() != nil {
			break
		}
		request, err := w.store.GetAndRemove(ctx, fileKey)
		if err != nil {
			w.log.Warn("pendingrequest.sweeper: purge failed",
				zap.String(constvars.LoggingFileKeyKey, fileKey),
				zap.Error(err),
			)
			continue
		}
		if request == nil {
			continue
		}
		purged++
		w.log.Info("pendingrequest.sweeper: purged stale pending request",
			zap.String(constvars.LoggingFileKeyKey, fileKey),
			zap.String(constvars.LoggingUserIDKey, request.UserID),
			zap.Time("submitted_at", request.SubmittedAt),
		)
	}

	if len(fileKeys) > 0 {
		w.log.Info("pendingrequest.sweeper: sweep finished",
			zap.Int("candidates", len(fileKeys)),
			zap.Int("purged", purged),
		)
	}
	return purged, nil
}
