package scheduling

import (
	"context"
	"errors"
	"meeting-scheduler-service/internal/app/config"
	"meeting-scheduler-service/internal/app/contracts"
	"meeting-scheduler-service/internal/app/models"
	"meeting-scheduler-service/internal/app/services/core/availability"
	"meeting-scheduler-service/internal/pkg/constvars"
	"meeting-scheduler-service/internal/pkg/dto/requests"
	"meeting-scheduler-service/internal/pkg/dto/responses"
	"meeting-scheduler-service/internal/pkg/exceptions"
	"meeting-scheduler-service/internal/pkg/utils"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

var errNoCandidates = errors.New("no timeslot is free for every participant")

type schedulingUsecase struct {
	AvailabilityUsecase contracts.AvailabilityUsecase
	PendingRequestStore contracts.PendingRequestStore
	SolverClient        contracts.SolverClient
	InternalConfig      *config.InternalConfig
	Log                 *zap.Logger
	newSingletonID      func() (string, error)
	now                 func() time.Time
}

var (
	schedulingUsecaseInstance contracts.SchedulingUsecase
	onceSchedulingUsecase     sync.Once
)

func NewSchedulingUsecase(
	availabilityUsecase contracts.AvailabilityUsecase,
	pendingRequestStore contracts.PendingRequestStore,
	solverClient contracts.SolverClient,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.SchedulingUsecase {
	onceSchedulingUsecase.Do(func() {
		instance := &schedulingUsecase{
			AvailabilityUsecase: availabilityUsecase,
			PendingRequestStore: pendingRequestStore,
			SolverClient:        solverClient,
			InternalConfig:      internalConfig,
			Log:                 logger,
			newSingletonID:      utils.GenerateSingletonID,
			now:                 time.Now,
		}
		schedulingUsecaseInstance = instance
	})
	return schedulingUsecaseInstance
}

// SubmitSchedulingJob narrows the catalog to the timeslots every participant
// is free in, registers the pending request and hands the problem to the
// solver. The pending request is written before the solver is called so a
// fast callback always finds it, and removed again when submission fails.
func (uc *schedulingUsecase) SubmitSchedulingJob(ctx context.Context, request *requests.SubmitSchedulingJob) (*responses.SchedulingJob, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("schedulingUsecase.SubmitSchedulingJob called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingHostIDKey, request.HostID),
		zap.String(constvars.LoggingUserIDKey, request.UserID),
	)

	if request.SlotDurationMinutes == 0 {
		request.SlotDurationMinutes = uc.InternalConfig.Availability.DefaultSlotMinutes
	}
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}
	loc, err := time.LoadLocation(request.Timezone)
	if err != nil {
		return nil, exceptions.ErrInvalidTimezone(err, request.Timezone)
	}

	candidates := request.Catalog
	if len(candidates) == 0 {
		candidates = availability.BuildTimeslotCatalog(request.HostID, request.WindowStart, request.WindowEnd, loc, request.SlotDurationMinutes)
	}

	for _, participant := range request.Participants {
		free, err := uc.AvailabilityUsecase.GenerateAvailability(ctx, &requests.GenerateAvailability{
			UserID:              participant.UserID,
			WindowStart:         request.WindowStart,
			WindowEnd:           request.WindowEnd,
			Timezone:            request.Timezone,
			SlotDurationMinutes: request.SlotDurationMinutes,
			CommittedEvents:     participant.CommittedEvents,
		})
		if err != nil {
			uc.Log.Error("schedulingUsecase.SubmitSchedulingJob error computing participant availability",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingUserIDKey, participant.UserID),
				zap.Error(err),
			)
			return nil, err
		}
		candidates = availability.FilterCandidates(candidates, free.Timeslots)
	}

	if len(candidates) == 0 {
		return nil, exceptions.ErrNoCandidateTimeslots(errNoCandidates)
	}

	singletonID, err := uc.newSingletonID()
	if err != nil {
		return nil, exceptions.ErrServerProcess(err)
	}
	fileKey := utils.BuildSchedulingFileKey(request.HostID, singletonID)

	stored, err := uc.PendingRequestStore.Put(ctx, &models.PendingRequest{
		FileKey:       fileKey,
		UserID:        request.UserID,
		HostID:        request.HostID,
		SingletonID:   singletonID,
		OriginalQuery: request.OriginalQuery,
		SubmittedAt:   uc.now().UTC(),
	})
	if err != nil {
		return nil, err
	}
	if !stored {
		return nil, exceptions.ErrPendingRequestExists(nil, fileKey)
	}

	body := &requests.PostTableRequestBody{
		SingletonID: singletonID,
		HostID:      request.HostID,
		Timeslots:   candidates,
		UserList:    nonNilRaw(request.UserList),
		EventParts:  nonNilRaw(request.EventParts),
		FileKey:     fileKey,
		Delay:       uc.InternalConfig.Scheduler.DelayInMs,
		CallBackURL: uc.InternalConfig.Scheduler.CallbackUrl,
	}

	if err := uc.SolverClient.SubmitJob(ctx, body); err != nil {
		uc.Log.Error("schedulingUsecase.SubmitSchedulingJob error submitting job",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingFileKeyKey, fileKey),
			zap.Error(err),
		)
		if _, cleanupErr := uc.PendingRequestStore.GetAndRemove(ctx, fileKey); cleanupErr != nil {
			uc.Log.Error("schedulingUsecase.SubmitSchedulingJob error removing pending request",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingFileKeyKey, fileKey),
				zap.Error(cleanupErr),
			)
		}
		var customErr *exceptions.CustomError
		if errors.As(err, &customErr) && customErr.StatusCode == constvars.StatusBadGateway {
			return nil, err
		}
		return nil, exceptions.ErrSendHTTPRequest(err)
	}

	utils.LogSchedulingEvent(uc.Log, constvars.SchedulingEventJobSubmitted, requestID,
		zap.String(constvars.LoggingFileKeyKey, fileKey),
		zap.String(constvars.LoggingSingletonIDKey, singletonID),
		zap.Int(constvars.LoggingTimeslotCountKey, len(candidates)),
	)

	return &responses.SchedulingJob{
		SingletonID:   singletonID,
		FileKey:       fileKey,
		TimeslotCount: len(candidates),
	}, nil
}

func nonNilRaw(values []json.RawMessage) []json.RawMessage {
	if values == nil {
		return []json.RawMessage{}
	}
	return values
}
