package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":     "is required",
	"min":          "must be at least %s",
	"max":          "must be at most %s",
	"gt":           "must be greater than %s",
	"gte":          "must be greater than or equal to %s",
	"lte":          "must be less than or equal to %s",
	"oneof":        "must be one of [%s]",
	"timezone":     "must be a valid IANA timezone",
	"gtfield":      "must be after %s",
	"clock":        "must be a HH:MM wall time",
	"month_day":    "must be a --MM-DD month day",
	"slot_minutes": "must be between 1 and 1440 minutes",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":     true,
	"max":     true,
	"gt":      true,
	"gte":     true,
	"lte":     true,
	"oneof":   true,
	"gtfield": true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientSchedulerUnavailable          = "the scheduler could not accept your request, please try again later"
	ErrClientSchedulingRequestExists       = "a scheduling request with the same key is already pending"
	ErrClientNoCandidateTimeslots          = "no timeslot is free for every participant in the requested window"
	ErrClientRequestBodyTooLarge           = "request body is too large"
)

// Error messages for developers
const (
	ErrDevCannotParseJSON           = "cannot parse JSON"
	ErrDevCannotMarshalJSON         = "cannot marshal JSON"
	ErrDevReadBody                  = "failed to read request body"
	ErrDevRequestBodyTooLarge       = "request body exceeds configured limit"
	ErrDevValidationFailed          = "validation failed"
	ErrDevInvalidTimezone           = "invalid timezone %s"
	ErrDevInvalidAPIKey             = "invalid api key"
	ErrDevCreateHTTPRequest         = "failed to create HTTP request"
	ErrDevSendHTTPRequest           = "failed to send HTTP request"
	ErrDevServerProcess             = "server failed to process the request"
	ErrDevServerDeadlineExceeded    = "server deadline exceeded"
	ErrDevSolverRejectedJob         = "scheduler api rejected job with status %d"
	ErrDevPendingRequestExists      = "pending request already exists for file key %s"
	ErrDevNoCandidateTimeslots      = "candidate timeslot intersection is empty"
	ErrDevPreferenceLookupFailed    = "failed to look up work hour preference for user %s"
	ErrDevCallbackSecretMissing     = "callback secret token is not configured"
	ErrDevCallbackTokenMissing      = "callback token header missing"
	ErrDevCallbackTokenInvalid      = "callback token mismatch"
	ErrDevCallbackEmptyPayload      = "callback payload empty"
	ErrDevCallbackMissingFields     = "callback payload missing required fields"
	ErrDevCallbackProcessingFailure = "callback solution processing failed"
	ErrDevNotificationRejected      = "notification provider rejected message: %s"

	// Mongo DB
	ErrDevDBFailedToFindDocument = "failed to find document"

	// Redis
	ErrDevRedisGetNoData   = "no data found in redis for key %s"
	ErrDevRedisGetData     = "failed to get data from redis"
	ErrDevRedisGetDelData  = "failed to get and delete data from redis"
	ErrDevRedisSetData     = "failed to set data into redis"
	ErrDevRedisDeleteData  = "failed to delete data from redis"
	ErrDevRedisExpire      = "failed to set expiration on redis key"
	ErrDevRedisZAdd        = "failed to add member into redis sorted set"
	ErrDevRedisZRangeScore = "failed to range redis sorted set by score"
	ErrDevRedisZRem        = "failed to remove member from redis sorted set"
	ErrDevRedisUnlock      = "failed to unlock redis lock"

	// RabbitMQ
	ErrDevRabbitMQPublishMessage = "failed to publish message into queue %s"
)
