package contracts

import (
	"context"
	"meeting-scheduler-service/internal/pkg/dto/requests"
	"meeting-scheduler-service/internal/pkg/dto/responses"
)

type AvailabilityUsecase interface {
	GenerateAvailability(ctx context.Context, request *requests.GenerateAvailability) (*responses.Availability, error)
	FilterCandidateTimeslots(ctx context.Context, request *requests.FilterCandidateTimeslots) (*responses.CandidateTimeslots, error)
}

type SchedulingUsecase interface {
	SubmitSchedulingJob(ctx context.Context, request *requests.SubmitSchedulingJob) (*responses.SchedulingJob, error)
}

type SchedulerCallbackUsecase interface {
	// AuthenticateCallback checks the callback token without the body. ok is
	// false when the returned status and body must be sent as is.
	AuthenticateCallback(ctx context.Context, token string, tokenPresent bool) (status int, body *responses.CallbackResponse, ok bool)
	// HandleCallback returns the status code and bare body for the callback route.
	HandleCallback(ctx context.Context, token string, tokenPresent bool, body []byte) (int, *responses.CallbackResponse)
}
