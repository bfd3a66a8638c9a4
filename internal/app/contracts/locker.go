package contracts

import (
	"context"
	"time"
)

// LockerService is a redis-backed mutex shared by every service instance.
// The sweeper uses it to elect a single leader per run.
type LockerService interface {
	// TryLock returns the lock value the caller must present to Unlock or Refresh.
	TryLock(ctx context.Context, key string, expiration time.Duration) (acquired bool, lockValue string, err error)
	Unlock(ctx context.Context, key, lockValue string) error
	Refresh(ctx context.Context, key, lockValue string, expiration time.Duration) error
}
