package constvars

import "time"

// Scheduler callback wire contract.
const (
	HeaderXCallbackToken = "X-Callback-Token"

	CallbackErrSecurityNotConfigured = "Internal Server Error: Callback security not configured."
	CallbackErrMissingToken          = "Unauthorized: Missing callback token."
	CallbackErrInvalidToken          = "Forbidden: Invalid callback token."
	CallbackErrEmptyPayload          = "Bad Request: Empty payload."
	CallbackErrMissingFields         = "Bad Request: Missing fileKey, hostId, or eventPartList."
	CallbackErrProcessing            = "Callback received, but an internal error occurred during solution processing."
	CallbackMsgNoPendingRequest      = "Callback received, but no matching pending request found or already processed."
	CallbackMsgProcessed             = "Callback processed successfully. User notification attempted."
)

// Notification message composition.
const (
	SummaryHeaderFormat          = "Update for your scheduling request%s:"
	SummaryScheduledSection      = "Successfully scheduled items:"
	SummaryUnscheduledSection    = "Items that could not be scheduled:"
	SummaryScheduledBullet       = "- '%s' scheduled %s"
	SummaryUnscheduledBullet     = "- '%s' could not be scheduled."
	SummaryUnspecifiedTime       = "at an unspecified time"
	SummaryNoEventsProcessed     = "The scheduling process completed, but no events were processed."
	SummaryOutcomesUnclear       = "The scheduling process completed, but detailed outcomes for some items were not clear."
	SummaryScoreFormat           = "Overall schedule score: %s"
	SummaryUnnamedEventPartLabel = "Unnamed Event Part"
)

// Solver submission.
const (
	SolverSolveDayPath      = "/timeTable/user/solve-day"
	SchedulingFileKeyFormat = "meet_%s_%s"
	SingletonIDAlphabet     = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"
	SingletonIDLength       = 12
)

// Redis keys.
const (
	RedisPendingRequestKeyFormat = "scheduler:pending:%s"
	RedisPendingRequestIndexKey  = "scheduler:pending:index"
	RedisSweeperLeaderLockKey    = "scheduler:sweeper:leader"
)

// Work hour defaults applied when a weekday has no stored preference.
const (
	DefaultWorkStartHour   = 8
	DefaultWorkStartMinute = 0
	DefaultWorkEndHour     = 20
	DefaultWorkEndMinute   = 0
)

const (
	DefaultSlotDurationMinutes = 30
	SweeperLeaderLockTTL       = 2 * time.Minute
	SweeperFallbackCronSpec    = "@hourly"
)

// Canonical timeslot formats.
const (
	TimeslotClockLayout    = "15:04"
	TimeslotMonthDayLayout = "--01-02"
	TimeslotDateLayout     = "2006-01-02"
)
