package pendingrequest

import (
	"context"
	"fmt"
	"meeting-scheduler-service/internal/app/contracts"
	"meeting-scheduler-service/internal/app/models"
	"meeting-scheduler-service/internal/pkg/constvars"
	"meeting-scheduler-service/internal/pkg/exceptions"
	"meeting-scheduler-service/internal/pkg/utils"
	"strconv"
	"time"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type pendingRequestStore struct {
	redisRepo contracts.RedisRepository
	ttl       time.Duration
	Log       *zap.Logger
}

// NewPendingRequestStore keeps pending requests in redis under
// scheduler:pending:<fileKey> and indexes them by submission time so the
// sweeper can find stale entries.
func NewPendingRequestStore(redisRepo contracts.RedisRepository, logger *zap.Logger, ttl time.Duration) contracts.PendingRequestStore {
	return &pendingRequestStore{
		redisRepo: redisRepo,
		ttl:       ttl,
		Log:       logger,
	}
}

func pendingRequestKey(fileKey string) string {
	return fmt.Sprintf(constvars.RedisPendingRequestKeyFormat, fileKey)
}

func (s *pendingRequestStore) Put(ctx context.Context, request *models.PendingRequest) (bool, error) {
	requestID := utils.GetRequestID(ctx)
	s.Log.Info("pendingRequestStore.Put called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingFileKeyKey, request.FileKey),
	)

	if request.SubmittedAt.IsZero() {
		request.SubmittedAt = time.Now().UTC()
	}

	stored, err := s.redisRepo.TrySetNX(ctx, pendingRequestKey(request.FileKey), request, s.ttl)
	if err != nil {
		s.Log.Error("pendingRequestStore.Put error calling redisRepo.TrySetNX",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingFileKeyKey, request.FileKey),
			zap.Error(err),
		)
		return false, err
	}
	if !stored {
		s.Log.Info("pendingRequestStore.Put entry already exists",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingFileKeyKey, request.FileKey),
		)
		return false, nil
	}

	err = s.redisRepo.AddToSortedSet(ctx, constvars.RedisPendingRequestIndexKey, redis.Z{
		Score:  float64(request.SubmittedAt.Unix()),
		Member: request.FileKey,
	})
	if err != nil {
		// The entry still expires through its TTL; it is only invisible to the sweeper.
		s.Log.Warn("pendingRequestStore.Put error indexing entry",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingFileKeyKey, request.FileKey),
			zap.Error(err),
		)
	}

	return true, nil
}

func (s *pendingRequestStore) GetAndRemove(ctx context.Context, fileKey string) (*models.PendingRequest, error) {
	requestID := utils.GetRequestID(ctx)
	s.Log.Info("pendingRequestStore.GetAndRemove called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingFileKeyKey, fileKey),
	)

	raw, err := s.redisRepo.GetDel(ctx, pendingRequestKey(fileKey))
	if err != nil {
		s.Log.Error("pendingRequestStore.GetAndRemove error calling redisRepo.GetDel",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingFileKeyKey, fileKey),
			zap.Error(err),
		)
		return nil, err
	}

	if err := s.redisRepo.RemoveFromSortedSet(ctx, constvars.RedisPendingRequestIndexKey, fileKey); err != nil {
		s.Log.Warn("pendingRequestStore.GetAndRemove error removing index entry",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingFileKeyKey, fileKey),
			zap.Error(err),
		)
	}

	if raw == "" {
		return nil, nil
	}

	var request models.PendingRequest
	if err := json.Unmarshal([]byte(raw), &request); err != nil {
		s.Log.Error("pendingRequestStore.GetAndRemove error unmarshaling entry",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingFileKeyKey, fileKey),
			zap.Error(err),
		)
		return nil, exceptions.ErrCannotParseJSON(err)
	}

	s.Log.Info("pendingRequestStore.GetAndRemove succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingFileKeyKey, fileKey),
		zap.String(constvars.LoggingUserIDKey, request.UserID),
	)
	return &request, nil
}

// ListStale returns up to limit fileKeys submitted at or before olderThan,
// oldest first.
func (s *pendingRequestStore) ListStale(ctx context.Context, olderThan time.Time, limit int64) ([]string, error) {
	max := strconv.FormatInt(olderThan.Unix(), 10)
	fileKeys, err := s.redisRepo.GetSortedSetRangeByScore(ctx, constvars.RedisPendingRequestIndexKey, "-inf", max, limit)
	if err != nil {
		s.Log.Error("pendingRequestStore.ListStale error calling redisRepo.GetSortedSetRangeByScore",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.Error(err),
		)
		return nil, err
	}
	return fileKeys, nil
}
