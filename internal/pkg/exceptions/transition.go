package exceptions

import "fmt"

// TransitionError is returned when an appointment status change is not an
// edge of the lifecycle.
type TransitionError struct {
	AppointmentID string
	From          string
	To            string
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("appointment %s: illegal transition %s -> %s", e.AppointmentID, e.From, e.To)
}
