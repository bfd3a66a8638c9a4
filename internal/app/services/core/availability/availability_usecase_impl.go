package availability

import (
	"context"
	"meeting-scheduler-service/internal/app/config"
	"meeting-scheduler-service/internal/app/contracts"
	"meeting-scheduler-service/internal/app/services/core/slot"
	"meeting-scheduler-service/internal/pkg/constvars"
	"meeting-scheduler-service/internal/pkg/dto/requests"
	"meeting-scheduler-service/internal/pkg/dto/responses"
	"meeting-scheduler-service/internal/pkg/exceptions"
	"meeting-scheduler-service/internal/pkg/utils"
	"sync"
	"time"

	"go.uber.org/zap"
)

type availabilityUsecase struct {
	PreferenceRepository contracts.PreferenceRepository
	InternalConfig       *config.InternalConfig
	Log                  *zap.Logger
}

var (
	availabilityUsecaseInstance contracts.AvailabilityUsecase
	onceAvailabilityUsecase     sync.Once
)

func NewAvailabilityUsecase(
	preferenceRepository contracts.PreferenceRepository,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.AvailabilityUsecase {
	onceAvailabilityUsecase.Do(func() {
		instance := &availabilityUsecase{
			PreferenceRepository: preferenceRepository,
			InternalConfig:       internalConfig,
			Log:                  logger,
		}
		availabilityUsecaseInstance = instance
	})
	return availabilityUsecaseInstance
}

func (uc *availabilityUsecase) GenerateAvailability(ctx context.Context, request *requests.GenerateAvailability) (*responses.Availability, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("availabilityUsecase.GenerateAvailability called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, request.UserID),
		zap.String(constvars.LoggingTimezoneKey, request.Timezone),
	)

	slots, loc, err := uc.availableSlots(ctx, request)
	if err != nil {
		return nil, err
	}

	response := &responses.Availability{
		Slots:     make([]responses.AvailableSlot, 0, len(slots)),
		Timeslots: ToCanonicalTimeslots(slots, loc),
	}
	for _, s := range slots {
		response.Slots = append(response.Slots, responses.AvailableSlot{ID: s.ID, Start: s.Start, End: s.End})
	}

	uc.Log.Info("availabilityUsecase.GenerateAvailability succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingSlotCountKey, len(slots)),
	)
	return response, nil
}

func (uc *availabilityUsecase) FilterCandidateTimeslots(ctx context.Context, request *requests.FilterCandidateTimeslots) (*responses.CandidateTimeslots, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("availabilityUsecase.FilterCandidateTimeslots called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, request.UserID),
		zap.Int(constvars.LoggingTimeslotCountKey, len(request.Catalog)),
	)

	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	slots, loc, err := uc.availableSlots(ctx, &request.GenerateAvailability)
	if err != nil {
		return nil, err
	}

	candidates := FilterCandidates(request.Catalog, ToCanonicalTimeslots(slots, loc))

	uc.Log.Info("availabilityUsecase.FilterCandidateTimeslots succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingTimeslotCountKey, len(candidates)),
	)
	return &responses.CandidateTimeslots{Timeslots: candidates}, nil
}

// availableSlots validates the query, looks up the user's work hours and runs
// the window generator. A preference lookup failure is returned, not defaulted.
func (uc *availabilityUsecase) availableSlots(ctx context.Context, request *requests.GenerateAvailability) ([]slot.AvailableSlot, *time.Location, error) {
	requestID := utils.GetRequestID(ctx)
	if request.SlotDurationMinutes == 0 {
		request.SlotDurationMinutes = uc.InternalConfig.Availability.DefaultSlotMinutes
	}
	if err := utils.ValidateStruct(request); err != nil {
		return nil, nil, exceptions.ErrInputValidation(err)
	}

	loc, err := time.LoadLocation(request.Timezone)
	if err != nil {
		return nil, nil, exceptions.ErrInvalidTimezone(err, request.Timezone)
	}

	preference, err := uc.PreferenceRepository.FindByUserID(ctx, request.UserID)
	if err != nil {
		uc.Log.Error("availabilityUsecase.availableSlots error fetching preference",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingUserIDKey, request.UserID),
			zap.Error(err),
		)
		return nil, nil, exceptions.ErrPreferenceLookup(err, request.UserID)
	}

	slots := slot.GenerateWindowSlots(slot.WindowRequest{
		Start:       request.WindowStart,
		End:         request.WindowEnd,
		SlotMinutes: request.SlotDurationMinutes,
		Preference:  ToWorkHourPreference(preference),
		Location:    loc,
		Exclusions:  toExclusions(request.CommittedEvents),
	})
	return slots, loc, nil
}
