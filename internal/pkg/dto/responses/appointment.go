package responses

import "carepulse-service/internal/app/models"

// RecentAppointments is the read model behind the admin dashboard.
type RecentAppointments struct {
	ScheduledCount int                   `json:"scheduledCount"`
	PendingCount   int                   `json:"pendingCount"`
	CancelledCount int                   `json:"cancelledCount"`
	Documents      []AppointmentDocument `json:"documents"`
}

// AppointmentDocument is an appointment with its patient expanded. Patient is
// nil when the referenced patient no longer resolves.
type AppointmentDocument struct {
	models.Appointment
	Patient *models.Patient `json:"patient"`
}

type AppointmentDashboard struct {
	ScheduledCount int                   `json:"scheduledCount"`
	PendingCount   int                   `json:"pendingCount"`
	CancelledCount int                   `json:"cancelledCount"`
	Rows           []AppointmentTableRow `json:"rows"`
}

type AppointmentTableRow struct {
	Index           int    `json:"index"`
	ID              string `json:"id"`
	UserID          string `json:"userId"`
	PatientID       string `json:"patientId"`
	PatientName     string `json:"patientName"`
	Status          string `json:"status"`
	StatusLabel     string `json:"statusLabel"`
	Schedule        string `json:"schedule"`
	ScheduleDisplay string `json:"scheduleDisplay"`
	DoctorName      string `json:"doctorName"`
	DoctorImage     string `json:"doctorImage"`
}

type AppointmentDetail struct {
	models.Appointment
	ScheduleDisplay string `json:"scheduleDisplay"`
	DoctorImage     string `json:"doctorImage"`
}
