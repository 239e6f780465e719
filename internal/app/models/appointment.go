package models

import (
	"carepulse-service/internal/pkg/exceptions"
	"slices"
	"time"
)

type AppointmentStatus string

const (
	AppointmentStatusPending   AppointmentStatus = "pending"
	AppointmentStatusScheduled AppointmentStatus = "scheduled"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
)

// scheduled -> scheduled lets an admin move an already scheduled visit.
var appointmentTransitions = map[AppointmentStatus][]AppointmentStatus{
	AppointmentStatusPending:   {AppointmentStatusScheduled, AppointmentStatusCancelled},
	AppointmentStatusScheduled: {AppointmentStatusScheduled, AppointmentStatusCancelled},
	AppointmentStatusCancelled: {},
}

func (s AppointmentStatus) IsValid() bool {
	_, ok := appointmentTransitions[s]
	return ok
}

func (s AppointmentStatus) CanTransitionTo(next AppointmentStatus) bool {
	return slices.Contains(appointmentTransitions[s], next)
}

func (s AppointmentStatus) IsTerminal() bool {
	return s.IsValid() && len(appointmentTransitions[s]) == 0
}

// Label is the text shown on the dashboard status badge.
func (s AppointmentStatus) Label() string {
	switch s {
	case AppointmentStatusPending:
		return "Pending"
	case AppointmentStatusScheduled:
		return "Scheduled"
	case AppointmentStatusCancelled:
		return "Cancelled"
	default:
		return string(s)
	}
}

type Appointment struct {
	ID                 string            `json:"id" bson:"_id,omitempty"`
	UserID             string            `json:"userId" bson:"userId"`
	PatientID          string            `json:"patientId" bson:"patientId"`
	PrimaryPhysician   string            `json:"primaryPhysician" bson:"primaryPhysician"`
	Schedule           time.Time         `json:"schedule" bson:"schedule"`
	Status             AppointmentStatus `json:"status" bson:"status"`
	Reason             string            `json:"reason,omitempty" bson:"reason,omitempty"`
	Note               string            `json:"note,omitempty" bson:"note,omitempty"`
	CancellationReason string            `json:"cancellationReason,omitempty" bson:"cancellationReason,omitempty"`
	TimeModel          `bson:",inline"`
}

// AppointmentPatch carries the fields an admin action overwrites. Nil pointers
// leave the stored value untouched.
type AppointmentPatch struct {
	PrimaryPhysician   *string
	Schedule           *time.Time
	Status             AppointmentStatus
	CancellationReason *string
}

// Apply checks the status edge and mutates the appointment in place.
func (a *Appointment) Apply(patch AppointmentPatch) error {
	if !a.Status.CanTransitionTo(patch.Status) {
		return &exceptions.TransitionError{
			AppointmentID: a.ID,
			From:          string(a.Status),
			To:            string(patch.Status),
		}
	}

	if patch.PrimaryPhysician != nil {
		a.PrimaryPhysician = *patch.PrimaryPhysician
	}
	if patch.Schedule != nil {
		a.Schedule = patch.Schedule.UTC()
	}
	if patch.CancellationReason != nil {
		a.CancellationReason = *patch.CancellationReason
	}
	a.Status = patch.Status
	a.SetUpdatedAt()
	return nil
}

// UpdateFields is the partial document written back to the store after Apply.
func (a *Appointment) UpdateFields(patch AppointmentPatch) map[string]interface{} {
	fields := map[string]interface{}{
		"status":    string(a.Status),
		"updatedAt": a.UpdatedAt,
	}
	if patch.PrimaryPhysician != nil {
		fields["primaryPhysician"] = a.PrimaryPhysician
	}
	if patch.Schedule != nil {
		fields["schedule"] = a.Schedule
	}
	if patch.CancellationReason != nil {
		fields["cancellationReason"] = a.CancellationReason
	}
	return fields
}

// StatusCounts is the dashboard aggregate over a fetched appointment set.
type StatusCounts struct {
	Scheduled int
	Pending   int
	Cancelled int
}

func CountByStatus(appointments []Appointment) StatusCounts {
	var counts StatusCounts
	for _, appointment := range appointments {
		switch appointment.Status {
		case AppointmentStatusScheduled:
			counts.Scheduled++
		case AppointmentStatusPending:
			counts.Pending++
		case AppointmentStatusCancelled:
			counts.Cancelled++
		}
	}
	return counts
}
