package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":     "is required",
	"email":        "must be a valid email",
	"min":          "must be at least %s characters long",
	"max":          "maximum at %s characters long",
	"oneof":        "must be one of [%s]",
	"datetime":     "must be a valid date",
	"uuid":         "must be a valid UUID",
	"phone_number": "must be a valid phone number starting with + followed by 10 to 15 digits",
	"past_date":    "must be a date in the past",
	"consent":      "must be accepted",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"oneof": true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientPatientNotOwnedByUser         = "patient does not belong to this user"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientNotLoggedIn                   = "your session ended, please login again"
	ErrClientInvalidPasskey                = "invalid passkey"
	ErrClientResourceNotFound              = "the requested %s was not found"
	ErrClientResourceAlreadyExists         = "the %s already exists"
	ErrClientServiceUnavailable            = "the service is temporarily unavailable, please try again"
	ErrClientInvalidStatusTransition       = "appointment cannot be moved from %s to %s"
	ErrClientAppointmentBusy               = "appointment is being updated, please try again"
	ErrClientTooManyRequests               = "too many requests, please try again later"
	ErrClientRequestTooLarge               = "request body is too large"
	ErrClientInvalidDocument               = "identification document must be a jpeg, png or pdf file within the size limit"
)

// Error messages for developers
const (
	ErrDevValidationFailed           = "validation failed"
	ErrDevCannotParseJSON            = "cannot parse JSON"
	ErrDevCannotParseMultipartForm   = "cannot parse multipart form"
	ErrDevCannotMarshalJSON          = "cannot marshal JSON"
	ErrDevServerDeadlineExceeded     = "server deadline exceeded"
	ErrDevServerProcess              = "server failed to process request"
	ErrDevURLParamIDValidationFailed = "url param %s validation failed"
	ErrDevPatientNotOwnedByUser      = "patient %s is owned by user %s, not %s"
	ErrDevUnknownValidationKind      = "unknown validation kind %s"
	ErrDevMissingRequestID           = "request id missing from context"
	ErrDevAuthTokenMissing           = "auth token missing"
	ErrDevAuthTokenInvalidOrExpired  = "auth token invalid or expired"
	ErrDevAuthGenerateToken          = "failed to generate auth token"
	ErrDevAuthInvalidSession         = "session not found or expired"
	ErrDevInvalidPasskey             = "passkey does not match configured hash"
	ErrDevDocumentInvalid            = "identification document rejected"
	ErrDevStoreConflict              = "store rejected write on %s: uniqueness conflict"
	ErrDevStoreNotFound              = "store has no %s matching the request"
	ErrDevStoreTransient             = "store unavailable while accessing %s"
	ErrDevStoreUnknown               = "store failed while accessing %s"
	ErrDevInvalidStatusTransition    = "illegal appointment transition %s -> %s"
	ErrDevAppointmentLocked          = "appointment %s is locked by another request"
	ErrDevRateLimited                = "client %s is temporarily blocked"
	ErrDevRequestTooLarge            = "request body exceeds %d bytes"
	ErrDevRedisGetData               = "failed to get data from redis"
	ErrDevRedisSetData               = "failed to set data in redis"
	ErrDevRedisDeleteData            = "failed to delete data from redis"
	ErrDevRedisUnlock                = "failed to release redis lock"
	ErrDevRabbitMQPublishMessage     = "failed to publish message to queue %s"
	ErrDevUserNotFoundAfterConflict  = "user with email conflicted but could not be read back"
)
