package requests

type CreateAppointment struct {
	UserID           string `json:"userId" validate:"required"`
	PatientID        string `json:"patientId" validate:"required"`
	PrimaryPhysician string `json:"primaryPhysician" validate:"required,min=2"`
	Schedule         string `json:"schedule" validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
	Reason           string `json:"reason" validate:"required,min=2,max=500"`
	Note             string `json:"note" validate:"omitempty,max=500"`
}

type ScheduleAppointment struct {
	PrimaryPhysician   string `json:"primaryPhysician" validate:"required,min=2"`
	Schedule           string `json:"schedule" validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
	Reason             string `json:"reason" validate:"omitempty,max=500"`
	Note               string `json:"note" validate:"omitempty,max=500"`
	CancellationReason string `json:"cancellationReason" validate:"omitempty,max=500"`
}

type CancelAppointment struct {
	PrimaryPhysician   string `json:"primaryPhysician" validate:"required,min=2"`
	Schedule           string `json:"schedule" validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
	Reason             string `json:"reason" validate:"omitempty,max=500"`
	Note               string `json:"note" validate:"omitempty,max=500"`
	CancellationReason string `json:"cancellationReason" validate:"required,min=2,max=500"`
}

type AppointmentNotification struct {
	UserID        string `json:"userId"`
	AppointmentID string `json:"appointmentId"`
	Type          string `json:"type"`
	Content       string `json:"content"`
}
