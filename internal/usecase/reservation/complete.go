package reservation

import (
	"context"
	"time"

	"github.com/lotusspa/salon-scheduler/internal/audit"
	domain "github.com/lotusspa/salon-scheduler/internal/domain/reservation"
	"github.com/lotusspa/salon-scheduler/internal/models"
	"github.com/lotusspa/salon-scheduler/internal/queue"
)

type CompleteReservation struct {
	repo   domain.Repository
	audit  *audit.Dispatcher
	events *queue.Publisher
}

func NewCompleteReservation(
	repo domain.Repository,
	audit *audit.Dispatcher,
	events *queue.Publisher,
) *CompleteReservation {
	return &CompleteReservation{
		repo:   repo,
		audit:  audit,
		events: events,
	}
}

// Execute marks a waiting reservation DONE. Only the owner of the salon
// the booked bed belongs to may do this.
func (uc *CompleteReservation) Execute(
	ctx context.Context,
	ownerID uint,
	reservationID uint,
) (*models.Reservation, error) {

	res, err := uc.repo.GetReservationForSalonOwner(ctx, reservationID, ownerID)
	if err != nil {
		return nil, err
	}

	if err := domain.Complete(res, time.Now().UTC()); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateReservation(ctx, res); err != nil {
		return nil, err
	}

	if uc.audit != nil {
		salonID, _ := uc.repo.GetBedSalon(ctx, res.SalonBedID)
		uc.audit.Dispatch(audit.Event{
			SalonID:  salonID,
			UserID:   &ownerID,
			Action:   "reservation_completed",
			Entity:   "reservation",
			EntityID: &res.ID,
		})
	}
	if uc.events != nil {
		uc.events.Publish(queue.ReservationCompleted, reservationEvent(res))
	}

	return res, nil
}
