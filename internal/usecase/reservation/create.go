package reservation

import (
	"context"
	"time"

	"github.com/lotusspa/salon-scheduler/internal/audit"
	domain "github.com/lotusspa/salon-scheduler/internal/domain/reservation"
	"github.com/lotusspa/salon-scheduler/internal/httperr"
	"github.com/lotusspa/salon-scheduler/internal/models"
	"github.com/lotusspa/salon-scheduler/internal/queue"
)

// ======================================================
// INPUT
// ======================================================

type CreateReservationInput struct {
	UserID     uint
	TherapyID  uint
	SalonBedID uint

	TimeFrom time.Time
	// Zero TimeTo means "derive from the therapy duration".
	TimeTo time.Time

	Comment string
}

// ======================================================
// USE CASE
// ======================================================

type CreateReservation struct {
	repo   domain.Repository
	audit  *audit.Dispatcher
	events *queue.Publisher
}

func NewCreateReservation(
	repo domain.Repository,
	audit *audit.Dispatcher,
	events *queue.Publisher,
) *CreateReservation {
	return &CreateReservation{
		repo:   repo,
		audit:  audit,
		events: events,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateReservation) Execute(
	ctx context.Context,
	in CreateReservationInput,
) (*models.Reservation, error) {

	// --------------------------------------------------
	// 1. Therapy (also anchors the salon for the bed check)
	// --------------------------------------------------
	therapy, err := uc.repo.GetTherapy(ctx, in.TherapyID)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 2. Booking window
	// --------------------------------------------------
	win := domain.Window{From: in.TimeFrom, To: in.TimeTo}
	if win.To.IsZero() {
		if therapy.DurationMin <= 0 {
			return nil, httperr.ErrBusiness("invalid_time_range")
		}
		win.To = win.From.Add(time.Duration(therapy.DurationMin) * time.Minute)
	}

	if err := win.Validate(time.Now().UTC()); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 3. Therapy and bed must live in the same salon
	// --------------------------------------------------
	bedSalonID, err := uc.repo.GetBedSalon(ctx, in.SalonBedID)
	if err != nil {
		return nil, err
	}
	if bedSalonID != therapy.SalonID {
		return nil, httperr.ErrBusiness("salon_mismatch")
	}

	// --------------------------------------------------
	// 4. Atomic availability check + insert
	// --------------------------------------------------
	res := &models.Reservation{
		UserID:     in.UserID,
		TherapyID:  therapy.ID,
		SalonBedID: in.SalonBedID,
		TimeFrom:   win.From,
		TimeTo:     win.To,
		Comment:    in.Comment,
		Status:     string(domain.InitialStatus()),
	}

	if err := uc.repo.CreateIfAvailable(ctx, res); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 5. Audit + notification event (best effort)
	// --------------------------------------------------
	if uc.audit != nil {
		uc.audit.Dispatch(audit.Event{
			SalonID:  bedSalonID,
			UserID:   &in.UserID,
			Action:   "reservation_created",
			Entity:   "reservation",
			EntityID: &res.ID,
		})
	}
	if uc.events != nil {
		uc.events.Publish(queue.ReservationCreated, reservationEvent(res))
	}

	return res, nil
}

func reservationEvent(res *models.Reservation) queue.ReservationEvent {
	return queue.ReservationEvent{
		ReservationID: res.ID,
		UserID:        res.UserID,
		SalonBedID:    res.SalonBedID,
		TherapyID:     res.TherapyID,
		TimeFrom:      res.TimeFrom,
		TimeTo:        res.TimeTo,
		Status:        res.Status,
		OccurredAt:    time.Now().UTC(),
	}
}
