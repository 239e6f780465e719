package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
	CONTEXT_SESSION_ID_KEY           ContextKey = "session_id"
	CONTEXT_SESSION_DATA_KEY         ContextKey = "session_data"
)

const (
	MongoCollectionUsers        = "users"
	MongoCollectionPatients     = "patients"
	MongoCollectionAppointments = "appointments"
)

const (
	ResourceUser = "user"
)

const (
	RoleAdmin = "admin"
)

const (
	StoreDriverMongoDB = "mongodb"
	StoreDriverMemory  = "memory"
)

const (
	// <endpoint>/storage/buckets/<bucketId>/files/<fileId>/view?project=<projectId>
	StorageObjectViewURLFormat = "%s/storage/buckets/%s/files/%s/view?project=%s"

	RedisAdminSessionKeyFormat    = "admin:session:%s"
	RedisAppointmentLockKeyFormat = "appointment:lock:%s"
)

const (
	DefaultDoctorImage    = "/assets/icons/default-doctor.svg"
	DisplayDateTimeLayout = "Jan 2, 2006, 3:04 PM"
	InputDateLayout       = "2006-01-02"
	NotificationGreeting  = "Greetings from CarePulse."
)

const (
	NotificationTypeSchedule = "schedule"
	NotificationTypeCancel   = "cancel"

	NotificationScheduleContentFormat = "%s Your appointment is confirmed for %s with Dr. %s"
	NotificationCancelContentFormat   = "%s We regret to inform that your appointment for %s is cancelled. Reason: %s"
)
