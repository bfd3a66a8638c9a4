package utils

import (
	"context"
	"time"

	"meeting-scheduler-service/internal/pkg/constvars"

	"go.uber.org/zap"
)

// Severity grades a rejected caller for alerting.
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// TraceOperation runs fn and records how the named operation ended and how
// long it took. A failure is logged at error level and returned unchanged.
func TraceOperation(logger *zap.Logger, operation string, requestID string, fn func() error) error {
	started := time.Now()
	err := fn()

	fields := []zap.Field{
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingOperationKey, operation),
		zap.Duration(constvars.LoggingDurationKey, time.Since(started)),
		zap.Bool(constvars.LoggingSuccessKey, err == nil),
	}
	if err != nil {
		logger.Error(operation+" failed", append(fields, zap.Error(err))...)
		return err
	}
	logger.Info(operation+" finished", fields...)
	return nil
}

// LogSchedulingEvent records a milestone in the life of a scheduling job.
func LogSchedulingEvent(logger *zap.Logger, event string, requestID string, fields ...zap.Field) {
	allFields := append([]zap.Field{
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSchedulingEventKey, event),
	}, fields...)

	logger.Info("scheduling event", allFields...)
}

// LogRejectedCaller records a request turned away by an auth check.
func LogRejectedCaller(logger *zap.Logger, rejection string, requestID string, severity Severity, fields ...zap.Field) {
	allFields := append([]zap.Field{
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRejectionKey, rejection),
		zap.String(constvars.LoggingSeverityKey, string(severity)),
	}, fields...)

	logger.Warn("caller rejected", allFields...)
}

func GetRequestID(ctx context.Context) string {
	if requestID, ok := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string); ok {
		return requestID
	}
	return ""
}
