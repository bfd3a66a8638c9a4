package contracts

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

type RedisRepository interface {
	Delete(ctx context.Context, key string) error
	Set(ctx context.Context, key string, value interface{}, exp time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	GetDel(ctx context.Context, key string) (string, error)
	TrySetNX(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error)
	Expire(ctx context.Context, key string, exp time.Duration) (bool, error)
	AddToSortedSet(ctx context.Context, key string, members ...redis.Z) error
	GetSortedSetRangeByScore(ctx context.Context, key string, min, max string, limit int64) ([]string, error)
	RemoveFromSortedSet(ctx context.Context, key string, members ...interface{}) error
}
