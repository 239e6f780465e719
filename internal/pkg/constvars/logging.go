package constvars

const (
	LoggingRequestIDKey          = "request_id"
	LoggingMethodKey             = "method"
	LoggingEndpointKey           = "endpoint"
	LoggingRemoteAddrKey         = "remote_addr"
	LoggingUserAgentKey          = "user_agent"
	LoggingQueryKey              = "query"
	LoggingStatusCodeKey         = "status_code"
	LoggingDurationKey           = "duration"
	LoggingSuccessKey            = "success"
	LoggingCollectionKey         = "collection"
	LoggingUserIDKey             = "user_id"
	LoggingEmailKey              = "email"
	LoggingPatientIDKey          = "patient_id"
	LoggingAppointmentIDKey      = "appointment_id"
	LoggingAppointmentCountKey   = "appointment_count"
	LoggingStatusFromKey         = "status_from"
	LoggingStatusToKey           = "status_to"
	LoggingObjectIDKey           = "object_id"
	LoggingBucketKey             = "bucket"
	LoggingQueueKey              = "queue"
	LoggingRedisKey              = "redis_key"
	LoggingLockValueKey          = "lock_value"
	LoggingSessionIDKey          = "session_id"
	LoggingValidationKindKey     = "validation_kind"
	LoggingValidationFieldsKey   = "validation_fields"
	LoggingRetryAttemptKey       = "retry_attempt"
	LoggingLockExpirationTimeKey = "lock_expiration_time"
	LoggingLockStoredValueKey    = "lock_stored_value"
	LoggingLockExpectedValueKey  = "lock_expected_value"
	LoggingNotificationTypeKey   = "notification_type"
	LoggingFileNameKey           = "file_name"
	LoggingFileSizeKey           = "file_size"
)
