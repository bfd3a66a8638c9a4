package controllers

import (
	"errors"
	"io"
	"meeting-scheduler-service/internal/app/contracts"
	"meeting-scheduler-service/internal/pkg/constvars"
	"meeting-scheduler-service/internal/pkg/dto/responses"
	"meeting-scheduler-service/internal/pkg/utils"
	"net/http"

	"go.uber.org/zap"
)

type SchedulerCallbackController struct {
	Log                      *zap.Logger
	SchedulerCallbackUsecase contracts.SchedulerCallbackUsecase
}

func NewSchedulerCallbackController(logger *zap.Logger, uc contracts.SchedulerCallbackUsecase) *SchedulerCallbackController {
	return &SchedulerCallbackController{
		Log:                      logger,
		SchedulerCallbackUsecase: uc,
	}
}

// HandleCallback processes POST /{prefix}/{version}/scheduler/callback.
// The token is checked before the body is read, so an unauthenticated caller
// always gets the auth answer whatever it sent. The response body is the bare
// {message} or {error} object the solver expects.
func (ctrl *SchedulerCallbackController) HandleCallback(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	tokenValues := r.Header.Values(constvars.HeaderXCallbackToken)
	tokenPresent := len(tokenValues) > 0
	token := ""
	if tokenPresent {
		token = tokenValues[0]
	}

	if status, rejection, ok := ctrl.SchedulerCallbackUsecase.AuthenticateCallback(r.Context(), token, tokenPresent); !ok {
		utils.BuildCallbackResponse(w, status, *rejection)
		return
	}

	raw, err := io.ReadAll(r.Body)
	if err != nil {
		status := constvars.StatusBadRequest
		message := constvars.CallbackErrEmptyPayload
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			status = constvars.StatusRequestEntityTooLarge
			message = constvars.ErrClientRequestBodyTooLarge
		}
		ctrl.Log.Warn("SchedulerCallbackController.HandleCallback cannot read body",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(r.Context())),
			zap.Error(err),
		)
		utils.BuildCallbackResponse(w, status, responses.CallbackResponse{Error: message})
		return
	}

	status, body := ctrl.SchedulerCallbackUsecase.HandleCallback(r.Context(), token, tokenPresent, raw)
	utils.BuildCallbackResponse(w, status, *body)
}
