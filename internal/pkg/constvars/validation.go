package constvars

// ValidationKind selects which request schema a raw payload is checked against.
type ValidationKind string

const (
	ValidationKindCreateUser          ValidationKind = "create-user"
	ValidationKindRegisterPatient     ValidationKind = "register-patient"
	ValidationKindCreateAppointment   ValidationKind = "create-appointment"
	ValidationKindScheduleAppointment ValidationKind = "schedule-appointment"
	ValidationKindCancelAppointment   ValidationKind = "cancel-appointment"
)
