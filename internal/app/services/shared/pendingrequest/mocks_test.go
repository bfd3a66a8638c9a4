package pendingrequest

import (
	"context"
	"meeting-scheduler-service/internal/app/models"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/mock"
)

type MockRedisRepository struct {
	mock.Mock
}

func (m *MockRedisRepository) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockRedisRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	args := m.Called(ctx, key, value, exp)
	return args.Error(0)
}

func (m *MockRedisRepository) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockRedisRepository) GetDel(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockRedisRepository) TrySetNX(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error) {
	args := m.Called(ctx, key, value, exp)
	return args.Bool(0), args.Error(1)
}

func (m *MockRedisRepository) Expire(ctx context.Context, key string, exp time.Duration) (bool, error) {
	args := m.Called(ctx, key, exp)
	return args.Bool(0), args.Error(1)
}

func (m *MockRedisRepository) AddToSortedSet(ctx context.Context, key string, members ...redis.Z) error {
	args := m.Called(ctx, key, members)
	return args.Error(0)
}

func (m *MockRedisRepository) GetSortedSetRangeByScore(ctx context.Context, key string, min, max string, limit int64) ([]string, error) {
	args := m.Called(ctx, key, min, max, limit)
	var members []string
	if v := args.Get(0); v != nil {
		members = v.([]string)
	}
	return members, args.Error(1)
}

func (m *MockRedisRepository) RemoveFromSortedSet(ctx context.Context, key string, members ...interface{}) error {
	args := m.Called(ctx, key, members)
	return args.Error(0)
}

type MockLockerService struct {
	mock.Mock
}

func (m *MockLockerService) TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error) {
	args := m.Called(ctx, key, expiration)
	return args.Bool(0), args.String(1), args.Error(2)
}

func (m *MockLockerService) Unlock(ctx context.Context, key, lockValue string) error {
	args := m.Called(ctx, key, lockValue)
	return args.Error(0)
}

func (m *MockLockerService) Refresh(ctx context.Context, key, lockValue string, expiration time.Duration) error {
	args := m.Called(ctx, key, lockValue, expiration)
	return args.Error(0)
}

type MockPendingRequestStore struct {
	mock.Mock
}

func (m *MockPendingRequestStore) Put(ctx context.Context, request *models.PendingRequest) (bool, error) {
	args := m.Called(ctx, request)
	return args.Bool(0), args.Error(1)
}

func (m *MockPendingRequestStore) GetAndRemove(ctx context.Context, fileKey string) (*models.PendingRequest, error) {
	args := m.Called(ctx, fileKey)
	var request *models.PendingRequest
	if v := args.Get(0); v != nil {
		request = v.(*models.PendingRequest)
	}
	return request, args.Error(1)
}

func (m *MockPendingRequestStore) ListStale(ctx context.Context, olderThan time.Time, limit int64) ([]string, error) {
	args := m.Called(ctx, olderThan, limit)
	var fileKeys []string
	if v := args.Get(0); v != nil {
		fileKeys = v.([]string)
	}
	return fileKeys, args.Error(1)
}
