package reservation

import (
	"time"

	"github.com/lotusspa/salon-scheduler/internal/httperr"
)

// Window is the half-open booking interval [From, To).
type Window struct {
	From time.Time
	To   time.Time
}

// Validate enforces the two input invariants of a booking request:
// the interval is non-empty and starts strictly in the future.
func (w Window) Validate(now time.Time) error {
	if !w.From.Before(w.To) {
		return httperr.ErrBusiness("invalid_time_range")
	}
	if !w.From.After(now) {
		return httperr.ErrBusiness("time_in_past")
	}
	return nil
}

// Overlaps reports whether two half-open intervals intersect.
// Adjacent windows (w.To == other.From) do not overlap.
func (w Window) Overlaps(other Window) bool {
	return w.From.Before(other.To) && other.From.Before(w.To)
}
