package reservation

import (
	"context"
	"time"

	"github.com/lotusspa/salon-scheduler/internal/audit"
	domain "github.com/lotusspa/salon-scheduler/internal/domain/reservation"
	"github.com/lotusspa/salon-scheduler/internal/models"
	"github.com/lotusspa/salon-scheduler/internal/queue"
)

type CancelReservation struct {
	repo   domain.Repository
	audit  *audit.Dispatcher
	events *queue.Publisher
}

func NewCancelReservation(
	repo domain.Repository,
	audit *audit.Dispatcher,
	events *queue.Publisher,
) *CancelReservation {
	return &CancelReservation{
		repo:   repo,
		audit:  audit,
		events: events,
	}
}

// Execute cancels the user's own waiting reservation. The repository
// runs one conditional update, so a wrong owner, a missing row and an
// already terminal reservation all fail the same way.
func (uc *CancelReservation) Execute(
	ctx context.Context,
	userID uint,
	reservationID uint,
) (*models.Reservation, error) {

	res, err := uc.repo.CancelOwned(ctx, reservationID, userID, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	if uc.audit != nil {
		salonID, _ := uc.repo.GetBedSalon(ctx, res.SalonBedID)
		uc.audit.Dispatch(audit.Event{
			SalonID:  salonID,
			UserID:   &userID,
			Action:   "reservation_cancelled",
			Entity:   "reservation",
			EntityID: &res.ID,
		})
	}
	if uc.events != nil {
		uc.events.Publish(queue.ReservationCancelled, reservationEvent(res))
	}

	return res, nil
}
