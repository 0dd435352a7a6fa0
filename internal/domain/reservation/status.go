package reservation

import "github.com/lotusspa/salon-scheduler/internal/httperr"

// ===============================
// Reservation Status
// ===============================

type Status string

const (
	StatusWaiting Status = "WAITING"
	StatusDone    Status = "DONE"
	StatusCancel  Status = "CANCEL"
)

// ===============================
// Validations
// ===============================

// Only a waiting reservation may change state; DONE and CANCEL are
// terminal.
func CanComplete(current Status) error {
	if current != StatusWaiting {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

func InitialStatus() Status {
	return StatusWaiting
}

// Blocking reports whether a reservation in this state keeps its bed
// unavailable for overlapping bookings.
func Blocking(s Status) bool {
	return s == StatusWaiting
}
