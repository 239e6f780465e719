package constvars

const (
	ResponseUnknown = "unknown"

	CreateUserSuccessMessage          = "user created successfully"
	GetUserSuccessMessage             = "get user successfully"
	GetPatientSuccessMessage          = "get patient successfully"
	RegisterPatientSuccessMessage     = "patient registered successfully"
	CreateAppointmentSuccessMessage   = "appointment requested successfully"
	GetAppointmentSuccessMessage      = "get appointment successfully"
	ListAppointmentsSuccessMessage    = "get recent appointments successfully"
	ScheduleAppointmentSuccessMessage = "appointment scheduled successfully"
	CancelAppointmentSuccessMessage   = "appointment cancelled successfully"
	GetDoctorsSuccessMessage          = "get doctors successfully"
	ValidationSuccessMessage          = "payload is valid"
	LoginSuccessMessage               = "successfully login"
	LogoutSuccessMessage              = "successfully logout"
)
