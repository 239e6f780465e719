package utils

import (
	"carepulse-service/internal/app/models"
	"carepulse-service/internal/pkg/constvars"
	"carepulse-service/internal/pkg/dto/responses"
	"time"
)

// DoctorLookup resolves a physician name against the doctor catalog.
type DoctorLookup func(name string) (models.Doctor, bool)

func MapRecentAppointmentsToDashboard(recent *responses.RecentAppointments, lookup DoctorLookup, location *time.Location) *responses.AppointmentDashboard {
	dashboard := &responses.AppointmentDashboard{
		ScheduledCount: recent.ScheduledCount,
		PendingCount:   recent.PendingCount,
		CancelledCount: recent.CancelledCount,
		Rows:           make([]responses.AppointmentTableRow, 0, len(recent.Documents)),
	}

	for i, document := range recent.Documents {
		row := responses.AppointmentTableRow{
			Index:           i + 1,
			ID:              document.ID,
			UserID:          document.UserID,
			PatientID:       document.PatientID,
			Status:          string(document.Status),
			StatusLabel:     document.Status.Label(),
			Schedule:        document.Schedule.UTC().Format(time.RFC3339),
			ScheduleDisplay: FormatDateTime(document.Schedule, location),
			DoctorName:      document.PrimaryPhysician,
			DoctorImage:     doctorImage(document.PrimaryPhysician, lookup),
		}
		if document.Patient != nil {
			row.PatientName = document.Patient.Name
		}
		dashboard.Rows = append(dashboard.Rows, row)
	}
	return dashboard
}

func MapAppointmentToDetail(appointment *models.Appointment, lookup DoctorLookup, location *time.Location) *responses.AppointmentDetail {
	return &responses.AppointmentDetail{
		Appointment:     *appointment,
		ScheduleDisplay: FormatDateTime(appointment.Schedule, location),
		DoctorImage:     doctorImage(appointment.PrimaryPhysician, lookup),
	}
}

func doctorImage(name string, lookup DoctorLookup) string {
	if lookup == nil {
		return constvars.DefaultDoctorImage
	}
	doctor, ok := lookup(name)
	if !ok || doctor.Image == "" {
		return constvars.DefaultDoctorImage
	}
	return doctor.Image
}
