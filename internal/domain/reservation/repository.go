package reservation

import (
	"context"
	"time"

	"github.com/lotusspa/salon-scheduler/internal/models"
)

type Repository interface {
	// -------- Catalog lookups --------
	GetTherapy(
		ctx context.Context,
		therapyID uint,
	) (*models.Therapy, error)

	// GetBedSalon resolves a bed to its salon through the branch join.
	GetBedSalon(
		ctx context.Context,
		bedID uint,
	) (uint, error)

	// -------- Reservation (create) --------

	// CreateIfAvailable persists the reservation only when no WAITING
	// reservation overlaps its window on the same bed. The availability
	// check and the insert are one atomic statement.
	CreateIfAvailable(
		ctx context.Context,
		res *models.Reservation,
	) error

	// -------- Reservation (state change) --------

	// CancelOwned flips WAITING -> CANCEL in a single conditional
	// update scoped to the owning user.
	CancelOwned(
		ctx context.Context,
		reservationID uint,
		userID uint,
		now time.Time,
	) (*models.Reservation, error)

	GetReservationForSalonOwner(
		ctx context.Context,
		reservationID uint,
		ownerID uint,
	) (*models.Reservation, error)

	UpdateReservation(
		ctx context.Context,
		res *models.Reservation,
	) error

	// -------- Queries --------
	ListHistory(
		ctx context.Context,
		userID uint,
		offset int,
		limit int,
	) ([]HistoryRow, int64, error)

	ListAvailableBeds(
		ctx context.Context,
		salonID uint,
		win Window,
	) ([]models.SalonBed, error)
}
