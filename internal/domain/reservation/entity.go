package reservation

import (
	"time"

	"github.com/lotusspa/salon-scheduler/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// Cancellation has no counterpart here: it runs as one conditional
// update in the repository so the state check cannot race the write.
func Complete(res *models.Reservation, now time.Time) error {
	if err := CanComplete(Status(res.Status)); err != nil {
		return err
	}

	res.Status = string(StatusDone)
	res.CompletedAt = &now
	return nil
}
