package models

import (
	"carepulse-service/internal/pkg/exceptions"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppointmentStatus_Transitions(t *testing.T) {
	tests := []struct {
		from AppointmentStatus
		to   AppointmentStatus
		want bool
	}{
		{AppointmentStatusPending, AppointmentStatusScheduled, true},
		{AppointmentStatusPending, AppointmentStatusCancelled, true},
		{AppointmentStatusPending, AppointmentStatusPending, false},
		{AppointmentStatusScheduled, AppointmentStatusScheduled, true},
		{AppointmentStatusScheduled, AppointmentStatusCancelled, true},
		{AppointmentStatusScheduled, AppointmentStatusPending, false},
		{AppointmentStatusCancelled, AppointmentStatusScheduled, false},
		{AppointmentStatusCancelled, AppointmentStatusPending, false},
		{AppointmentStatusCancelled, AppointmentStatusCancelled, false},
		{AppointmentStatusPending, AppointmentStatus("archived"), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}

	assert.True(t, AppointmentStatusCancelled.IsTerminal())
	assert.False(t, AppointmentStatusScheduled.IsTerminal())
	assert.False(t, AppointmentStatus("archived").IsValid())
}

func TestAppointment_ApplyOverwritesSuppliedFieldsOnly(t *testing.T) {
	appointment := &Appointment{
		ID:               "a1",
		PrimaryPhysician: "John Green",
		Status:           AppointmentStatusPending,
		Reason:           "checkup",
	}
	schedule := time.Date(2030, 1, 2, 10, 0, 0, 0, time.FixedZone("WIB", 7*3600))

	patch := AppointmentPatch{Schedule: &schedule, Status: AppointmentStatusScheduled}
	require.NoError(t, appointment.Apply(patch))

	assert.Equal(t, "John Green", appointment.PrimaryPhysician)
	assert.Equal(t, time.UTC, appointment.Schedule.Location())
	assert.True(t, schedule.Equal(appointment.Schedule))
	assert.False(t, appointment.UpdatedAt.IsZero())

	fields := appointment.UpdateFields(patch)
	assert.Contains(t, fields, "schedule")
	assert.Contains(t, fields, "status")
	assert.NotContains(t, fields, "primaryPhysician")
	assert.NotContains(t, fields, "cancellationReason")
}

func TestAppointment_ApplyRejectsIllegalEdge(t *testing.T) {
	appointment := &Appointment{ID: "a1", Status: AppointmentStatusCancelled}
	physician := "Jane Powell"

	err := appointment.Apply(AppointmentPatch{PrimaryPhysician: &physician, Status: AppointmentStatusScheduled})

	var transitionErr *exceptions.TransitionError
	require.True(t, errors.As(err, &transitionErr))
	assert.Equal(t, "a1", transitionErr.AppointmentID)
	assert.Empty(t, appointment.PrimaryPhysician)
	assert.Equal(t, AppointmentStatusCancelled, appointment.Status)
}

func TestCountByStatus(t *testing.T) {
	appointments := []Appointment{
		{Status: AppointmentStatusScheduled},
		{Status: AppointmentStatusPending},
		{Status: AppointmentStatusPending},
		{Status: AppointmentStatusCancelled},
		{Status: AppointmentStatusScheduled},
		{Status: AppointmentStatusScheduled},
	}

	counts := CountByStatus(appointments)
	assert.Equal(t, StatusCounts{Scheduled: 3, Pending: 2, Cancelled: 1}, counts)
	assert.Equal(t, StatusCounts{}, CountByStatus(nil))
}
