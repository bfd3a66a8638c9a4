package contracts

import (
	"context"
	"meeting-scheduler-service/internal/app/models"
)

type PreferenceRepository interface {
	FindByUserID(ctx context.Context, userID string) (*models.UserPreference, error)
}
