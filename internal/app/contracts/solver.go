package contracts

import (
	"context"
	"meeting-scheduler-service/internal/pkg/dto/requests"
)

type SolverClient interface {
	SubmitJob(ctx context.Context, body *requests.PostTableRequestBody) error
}
