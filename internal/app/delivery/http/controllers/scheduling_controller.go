package controllers

import (
	"context"
	"errors"
	"meeting-scheduler-service/internal/app/contracts"
	"meeting-scheduler-service/internal/pkg/constvars"
	"meeting-scheduler-service/internal/pkg/dto/requests"
	"meeting-scheduler-service/internal/pkg/exceptions"
	"meeting-scheduler-service/internal/pkg/utils"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type SchedulingController struct {
	Log               *zap.Logger
	SchedulingUsecase contracts.SchedulingUsecase
}

func NewSchedulingController(logger *zap.Logger, schedulingUsecase contracts.SchedulingUsecase) *SchedulingController {
	return &SchedulingController{
		Log:               logger,
		SchedulingUsecase: schedulingUsecase,
	}
}

// SubmitSchedulingJob accepts a meeting request, hands it to the solver and
// answers 202 once the solver has taken the job.
func (ctrl *SchedulingController) SubmitSchedulingJob(w http.ResponseWriter, r *http.Request) {
	request := new(requests.SubmitSchedulingJob)
	err := json.NewDecoder(r.Body).Decode(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, decodeError(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	response, err := ctrl.SchedulingUsecase.SubmitSchedulingJob(ctx, request)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusAccepted, constvars.SubmitSchedulingJobSuccessMessage, response)
}
