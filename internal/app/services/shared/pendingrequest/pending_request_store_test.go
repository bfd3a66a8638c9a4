package pendingrequest

import (
	"context"
	"errors"
	"meeting-scheduler-service/internal/app/models"
	"meeting-scheduler-service/internal/pkg/constvars"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestPendingRequestStore_Put(t *testing.T) {
	ctx := context.Background()
	ttl := 72 * time.Hour
	submittedAt := time.Date(2024, 1, 8, 10, 0, 0, 0, time.UTC)

	t.Run("stores and indexes a new request", func(t *testing.T) {
		repo := new(MockRedisRepository)
		store := NewPendingRequestStore(repo, zap.NewNop(), ttl)
		request := &models.PendingRequest{FileKey: "meet_h1_abc", UserID: "U1", SubmittedAt: submittedAt}

		repo.On("TrySetNX", mock.Anything, "scheduler:pending:meet_h1_abc", request, ttl).Return(true, nil).Once()
		repo.On("AddToSortedSet", mock.Anything, constvars.RedisPendingRequestIndexKey, []redis.Z{{
			Score:  float64(submittedAt.Unix()),
			Member: "meet_h1_abc",
		}}).Return(nil).Once()

		stored, err := store.Put(ctx, request)
		require.NoError(t, err)
		assert.True(t, stored)
		repo.AssertExpectations(t)
	})

	t.Run("does not overwrite an existing entry", func(t *testing.T) {
		repo := new(MockRedisRepository)
		store := NewPendingRequestStore(repo, zap.NewNop(), ttl)
		request := &models.PendingRequest{FileKey: "meet_h1_abc", SubmittedAt: submittedAt}

		repo.On("TrySetNX", mock.Anything, mock.Anything, mock.Anything, ttl).Return(false, nil).Once()

		stored, err := store.Put(ctx, request)
		require.NoError(t, err)
		assert.False(t, stored)
		repo.AssertNotCalled(t, "AddToSortedSet", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("index failure does not fail the put", func(t *testing.T) {
		repo := new(MockRedisRepository)
		store := NewPendingRequestStore(repo, zap.NewNop(), ttl)
		request := &models.PendingRequest{FileKey: "meet_h1_abc"}

		repo.On("TrySetNX", mock.Anything, mock.Anything, mock.Anything, ttl).Return(true, nil).Once()
		repo.On("AddToSortedSet", mock.Anything, mock.Anything, mock.Anything).Return(errors.New("zadd down")).Once()

		stored, err := store.Put(ctx, request)
		require.NoError(t, err)
		assert.True(t, stored)
		assert.False(t, request.SubmittedAt.IsZero())
	})

	t.Run("redis failure propagates", func(t *testing.T) {
		repo := new(MockRedisRepository)
		store := NewPendingRequestStore(repo, zap.NewNop(), ttl)

		repo.On("TrySetNX", mock.Anything, mock.Anything, mock.Anything, ttl).Return(false, errors.New("down")).Once()

		stored, err := store.Put(ctx, &models.PendingRequest{FileKey: "k"})
		assert.Error(t, err)
		assert.False(t, stored)
	})
}

func TestPendingRequestStore_GetAndRemove(t *testing.T) {
	ctx := context.Background()

	t.Run("returns and removes a tracked request", func(t *testing.T) {
		repo := new(MockRedisRepository)
		store := NewPendingRequestStore(repo, zap.NewNop(), time.Hour)
		tracked := models.PendingRequest{
			FileKey:       "meet_h1_abc",
			UserID:        "U1",
			HostID:        "h1",
			SingletonID:   "abc",
			OriginalQuery: "sync with design",
			SubmittedAt:   time.Date(2024, 1, 8, 10, 0, 0, 0, time.UTC),
		}
		raw, err := json.Marshal(tracked)
		require.NoError(t, err)

		repo.On("GetDel", mock.Anything, "scheduler:pending:meet_h1_abc").Return(string(raw), nil).Once()
		repo.On("RemoveFromSortedSet", mock.Anything, constvars.RedisPendingRequestIndexKey, []interface{}{"meet_h1_abc"}).Return(nil).Once()

		request, err := store.GetAndRemove(ctx, "meet_h1_abc")
		require.NoError(t, err)
		require.NotNil(t, request)
		assert.Equal(t, tracked, *request)
		repo.AssertExpectations(t)
	})

	t.Run("unknown fileKey is not an error", func(t *testing.T) {
		repo := new(MockRedisRepository)
		store := NewPendingRequestStore(repo, zap.NewNop(), time.Hour)

		repo.On("GetDel", mock.Anything, "scheduler:pending:missing").Return("", nil).Once()
		repo.On("RemoveFromSortedSet", mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()

		request, err := store.GetAndRemove(ctx, "missing")
		assert.NoError(t, err)
		assert.Nil(t, request)
	})

	t.Run("corrupt entry is reported", func(t *testing.T) {
		repo := new(MockRedisRepository)
		store := NewPendingRequestStore(repo, zap.NewNop(), time.Hour)

		repo.On("GetDel", mock.Anything, mock.Anything).Return("{not json", nil).Once()
		repo.On("RemoveFromSortedSet", mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()

		request, err := store.GetAndRemove(ctx, "broken")
		assert.Error(t, err)
		assert.Nil(t, request)
	})
}

func TestPendingRequestStore_ListStale(t *testing.T) {
	repo := new(MockRedisRepository)
	store := NewPendingRequestStore(repo, zap.NewNop(), time.Hour)
	cutoff := time.Unix(1704700000, 0)

	repo.On("GetSortedSetRangeByScore", mock.Anything, constvars.RedisPendingRequestIndexKey, "-inf", "1704700000", int64(50)).
		Return([]string{"a", "b"}, nil).Once()

	fileKeys, err := store.ListStale(context.Background(), cutoff, 50)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, fileKeys)
}
