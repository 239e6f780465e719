package constvars

const (
	URLParamUserID         = "userId"
	URLParamAppointmentID  = "appointmentId"
	URLParamValidationKind = "kind"
)

const (
	MultipartFieldData                   = "data"
	MultipartFieldIdentificationDocument = "identificationDocument"
)
