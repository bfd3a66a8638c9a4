package callback

import (
	"bytes"
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"meeting-scheduler-service/internal/app/config"
	"meeting-scheduler-service/internal/app/contracts"
	"meeting-scheduler-service/internal/app/models"
	"meeting-scheduler-service/internal/pkg/constvars"
	"meeting-scheduler-service/internal/pkg/dto/requests"
	"meeting-scheduler-service/internal/pkg/dto/responses"
	"meeting-scheduler-service/internal/pkg/exceptions"
	"meeting-scheduler-service/internal/pkg/utils"
	"sync"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type callbackState string

const (
	stateAwaitingToken    callbackState = "AWAITING_TOKEN"
	stateAwaitingPayload  callbackState = "AWAITING_PAYLOAD"
	stateResolvingContext callbackState = "RESOLVING_CONTEXT"
	stateSummarizing      callbackState = "SUMMARIZING"
	stateNotifying        callbackState = "NOTIFYING"
	stateRetiring         callbackState = "RETIRING"
	stateDone             callbackState = "DONE"
)

var errNoSecretConfigured = errors.New("CALLBACK_SECRET_TOKEN is empty")

type schedulerCallbackUsecase struct {
	PendingRequestStore contracts.PendingRequestStore
	UserNotifier        contracts.UserNotifier
	InternalConfig      *config.InternalConfig
	Log                 *zap.Logger
}

var (
	schedulerCallbackUsecaseInstance contracts.SchedulerCallbackUsecase
	onceSchedulerCallbackUsecase     sync.Once
)

func NewSchedulerCallbackUsecase(
	pendingRequestStore contracts.PendingRequestStore,
	userNotifier contracts.UserNotifier,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.SchedulerCallbackUsecase {
	onceSchedulerCallbackUsecase.Do(func() {
		instance := &schedulerCallbackUsecase{
			PendingRequestStore: pendingRequestStore,
			UserNotifier:        userNotifier,
			InternalConfig:      internalConfig,
			Log:                 logger,
		}
		schedulerCallbackUsecaseInstance = instance
	})
	return schedulerCallbackUsecaseInstance
}

// AuthenticateCallback runs the token ladder on its own: missing server
// secret, then missing token, then mismatch. ok is false when the callback
// must be answered with the returned status and body.
func (uc *schedulerCallbackUsecase) AuthenticateCallback(ctx context.Context, token string, tokenPresent bool) (status int, body *responses.CallbackResponse, ok bool) {
	if err := uc.authenticate(token, tokenPresent); err != nil {
		utils.LogRejectedCaller(uc.Log, constvars.RejectionCallbackToken, utils.GetRequestID(ctx), utils.SeverityMedium,
			zap.String(constvars.LoggingCallbackStateKey, string(stateAwaitingToken)),
			zap.Error(err),
		)
		status, body = uc.reject(ctx, stateAwaitingToken, err)
		return status, body, false
	}
	return constvars.StatusOK, nil, true
}

// HandleCallback authenticates and reconciles a solver callback. Auth is fully
// checked before the body is looked at. The pending request is consumed
// atomically; it is put back only when summarizing or notifying fails, so a
// retried callback can still be processed.
func (uc *schedulerCallbackUsecase) HandleCallback(ctx context.Context, token string, tokenPresent bool, body []byte) (int, *responses.CallbackResponse) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("schedulerCallbackUsecase.HandleCallback called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if status, rejection, ok := uc.AuthenticateCallback(ctx, token, tokenPresent); !ok {
		return status, rejection
	}

	solution, err := parseSolution(body)
	if err != nil {
		return uc.reject(ctx, stateAwaitingPayload, err)
	}

	pending, err := uc.PendingRequestStore.GetAndRemove(ctx, solution.FileKey)
	if err != nil {
		return uc.reject(ctx, stateResolvingContext, exceptions.ErrCallbackProcessing(err))
	}
	if pending == nil {
		uc.Log.Info("schedulerCallbackUsecase.HandleCallback no pending request for fileKey",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingFileKeyKey, solution.FileKey),
			zap.String(constvars.LoggingHostIDKey, solution.HostID),
		)
		return constvars.StatusOK, &responses.CallbackResponse{Message: constvars.CallbackMsgNoPendingRequest}
	}

	uc.Log.Info("schedulerCallbackUsecase.HandleCallback resolved pending request",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingFileKeyKey, pending.FileKey),
		zap.String(constvars.LoggingUserIDKey, pending.UserID),
		zap.String(constvars.LoggingSingletonIDKey, pending.SingletonID),
		zap.Time("submitted_at", pending.SubmittedAt),
		zap.Int(constvars.LoggingEventPartCountKey, len(solution.EventPartList)),
	)

	if state, err := uc.process(ctx, pending, solution); err != nil {
		uc.restore(ctx, pending)
		return uc.reject(ctx, state, exceptions.ErrCallbackProcessing(err))
	}

	uc.Log.Info("schedulerCallbackUsecase.HandleCallback succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingFileKeyKey, pending.FileKey),
		zap.String(constvars.LoggingCallbackStateKey, string(stateDone)),
	)
	return constvars.StatusOK, &responses.CallbackResponse{Message: constvars.CallbackMsgProcessed}
}

func (uc *schedulerCallbackUsecase) authenticate(token string, tokenPresent bool) error {
	secret := uc.InternalConfig.Callback.SecretToken
	if secret == "" {
		return exceptions.ErrCallbackSecretNotConfigured(errNoSecretConfigured)
	}
	if !tokenPresent || token == "" {
		return exceptions.ErrCallbackTokenMissing(nil)
	}
	if subtle.ConstantTimeCompare([]byte(token), []byte(secret)) != 1 {
		return exceptions.ErrCallbackTokenInvalid(nil)
	}
	return nil
}

// parseSolution accepts an empty eventPartList but not a missing one.
func parseSolution(body []byte) (*requests.SchedulerCallback, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, exceptions.ErrCallbackEmptyPayload(nil)
	}

	var solution requests.SchedulerCallback
	if err := json.Unmarshal(trimmed, &solution); err != nil {
		return nil, exceptions.ErrCallbackMissingFields(err)
	}
	if err := utils.ValidateStruct(&solution); err != nil {
		return nil, exceptions.ErrCallbackMissingFields(err)
	}
	return &solution, nil
}

// process runs the summarizing and notifying steps. It reports the state it
// failed in; a notification delivery failure is not a failure here.
func (uc *schedulerCallbackUsecase) process(ctx context.Context, pending *models.PendingRequest, solution *requests.SchedulerCallback) (state callbackState, err error) {
	state = stateSummarizing
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic while %s: %v", state, r)
		}
	}()

	message := composeSummary(pending.OriginalQuery, solution)

	state = stateNotifying
	uc.notify(ctx, pending, message)

	state = stateRetiring
	return state, nil
}

func (uc *schedulerCallbackUsecase) notify(ctx context.Context, pending *models.PendingRequest, message string) {
	requestID := utils.GetRequestID(ctx)
	result, err := uc.UserNotifier.NotifyUser(ctx, pending.UserID, message)
	switch {
	case err != nil:
		uc.Log.Warn("schedulerCallbackUsecase.notify user notification failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingUserIDKey, pending.UserID),
			zap.String(constvars.LoggingFileKeyKey, pending.FileKey),
			zap.Error(err),
		)
	case result == nil || !result.OK:
		reason := ""
		if result != nil {
			reason = result.Error
		}
		uc.Log.Warn("schedulerCallbackUsecase.notify user notification rejected",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingUserIDKey, pending.UserID),
			zap.String(constvars.LoggingFileKeyKey, pending.FileKey),
			zap.String(constvars.LoggingErrorMessageKey, reason),
		)
	default:
		uc.Log.Info("schedulerCallbackUsecase.notify user notified",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingUserIDKey, pending.UserID),
			zap.String(constvars.LoggingNotificationTSKey, result.TS),
		)
	}
}

func (uc *schedulerCallbackUsecase) restore(ctx context.Context, pending *models.PendingRequest) {
	requestID := utils.GetRequestID(ctx)
	restored, err := uc.PendingRequestStore.Put(ctx, pending)
	if err != nil {
		uc.Log.Error("schedulerCallbackUsecase.restore error restoring pending request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingFileKeyKey, pending.FileKey),
			zap.Error(err),
		)
		return
	}
	uc.Log.Info("schedulerCallbackUsecase.restore pending request restored",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingFileKeyKey, pending.FileKey),
		zap.Bool("restored", restored),
	)
}

func (uc *schedulerCallbackUsecase) reject(ctx context.Context, state callbackState, err error) (int, *responses.CallbackResponse) {
	status := constvars.StatusInternalServerError
	message := constvars.CallbackErrProcessing

	var customErr *exceptions.CustomError
	if errors.As(err, &customErr) {
		status = customErr.StatusCode
		message = customErr.ClientMessage
	}

	fields := []zap.Field{
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingCallbackStateKey, string(state)),
		zap.Int(constvars.LoggingStatusCodeKey, status),
		zap.Error(err),
	}
	if status >= constvars.StatusInternalServerError {
		uc.Log.Error("schedulerCallbackUsecase.HandleCallback failed", fields...)
	} else {
		uc.Log.Warn("schedulerCallbackUsecase.HandleCallback rejected", fields...)
	}
	return status, &responses.CallbackResponse{Error: message}
}
