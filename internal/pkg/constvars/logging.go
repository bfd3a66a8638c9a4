package constvars

const (
	LoggingRequestIDKey         = "request_id"
	LoggingRequestKey           = "request"
	LoggingResponseKey          = "response"
	LoggingErrorCodeKey         = "error_code"
	LoggingErrorMessageKey      = "error_message"
	LoggingOperationKey         = "operation"
	LoggingDurationKey          = "duration"
	LoggingSuccessKey           = "success"
	LoggingStatusCodeKey        = "status_code"
	LoggingMethodKey            = "method"
	LoggingEndpointKey          = "endpoint"
	LoggingRemoteAddrKey        = "remote_addr"
	LoggingUserAgentKey         = "user_agent"
	LoggingQueryKey             = "query"
	LoggingRedisKey             = "redis_key"
	LoggingQueueNameKey         = "queue_name"
	LoggingLockValueKey         = "lock_value"
	LoggingLockStoredValueKey   = "lock_stored_value"
	LoggingLockExpectedValueKey = "lock_expected_value"
	LoggingLockExpirationKey    = "lock_expiration"
	LoggingUserIDKey            = "user_id"
	LoggingHostIDKey            = "host_id"
	LoggingFileKeyKey           = "file_key"
	LoggingSingletonIDKey       = "singleton_id"
	LoggingTimezoneKey          = "timezone"
	LoggingSlotCountKey         = "slot_count"
	LoggingTimeslotCountKey     = "timeslot_count"
	LoggingEventPartCountKey    = "event_part_count"
	LoggingCallbackStateKey     = "callback_state"
	LoggingNotificationTSKey    = "notification_ts"
	LoggingEndpointURLKey       = "endpoint_url"
	LoggingSchedulingEventKey   = "scheduling_event"
	LoggingRejectionKey         = "rejection"
	LoggingSeverityKey          = "severity"
)

const (
	SchedulingEventJobSubmitted = "scheduling_job_submitted"

	RejectionCallbackToken = "scheduler_callback_token"
	RejectionAPIKey        = "api_key"

	OperationPendingRequestSweep = "pendingrequest.sweep"
)
