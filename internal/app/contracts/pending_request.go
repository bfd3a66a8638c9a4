package contracts

import (
	"context"
	"meeting-scheduler-service/internal/app/models"
	"time"
)

// PendingRequestStore keeps submitted scheduling requests until the solver calls back.
type PendingRequestStore interface {
	// Put stores the request only when no entry exists for its fileKey.
	Put(ctx context.Context, request *models.PendingRequest) (bool, error)
	// GetAndRemove atomically removes and returns the entry, or nil when absent.
	GetAndRemove(ctx context.Context, fileKey string) (*models.PendingRequest, error)
	ListStale(ctx context.Context, olderThan time.Time, limit int64) ([]string, error)
}
