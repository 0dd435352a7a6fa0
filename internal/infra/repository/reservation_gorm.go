package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	domain "github.com/lotusspa/salon-scheduler/internal/domain/reservation"
	"github.com/lotusspa/salon-scheduler/internal/httperr"
	"github.com/lotusspa/salon-scheduler/internal/models"
)

type ReservationGormRepository struct {
	db *gorm.DB
}

func NewReservationGormRepository(db *gorm.DB) *ReservationGormRepository {
	return &ReservationGormRepository{db: db}
}

// --------------------------------------------------
// Catalog lookups
// --------------------------------------------------

func (r *ReservationGormRepository) GetTherapy(
	ctx context.Context,
	therapyID uint,
) (*models.Therapy, error) {

	var therapy models.Therapy
	if err := r.db.WithContext(ctx).First(&therapy, therapyID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("therapy_not_found")
		}
		return nil, err
	}
	return &therapy, nil
}

func (r *ReservationGormRepository) GetBedSalon(
	ctx context.Context,
	bedID uint,
) (uint, error) {

	var salonID uint
	result := r.db.WithContext(ctx).
		Raw(`
            SELECT salon_branches.salon_id
            FROM salon_beds
            INNER JOIN salon_branches ON salon_branches.id = salon_beds.branch_id
            WHERE salon_beds.id = ?
        `, bedID).
		Scan(&salonID)

	if result.Error != nil {
		return 0, result.Error
	}
	if result.RowsAffected == 0 {
		return 0, httperr.ErrBusiness("bed_not_found")
	}
	return salonID, nil
}

// --------------------------------------------------
// Reservation (create)
// --------------------------------------------------

// CreateIfAvailable runs the availability check and the insert as one
// statement, so two racing bookings can never both pass the check. The
// WAITING-scoped exclusion constraint backs it up at the storage level.
func (r *ReservationGormRepository) CreateIfAvailable(
	ctx context.Context,
	res *models.Reservation,
) error {

	var out struct {
		ID        uint
		CreatedAt time.Time
		UpdatedAt time.Time
	}

	result := r.db.WithContext(ctx).
		Raw(`
            INSERT INTO reservations
                (user_id, therapy_id, salon_bed_id, time_from, time_to, comment, status, created_at, updated_at)
            SELECT ?, ?, salon_beds.id, ?, ?, ?, ?, now(), now()
            FROM salon_beds
            WHERE salon_beds.id = ?
              AND NOT EXISTS (
                  SELECT 1 FROM reservations booked
                  WHERE booked.salon_bed_id = salon_beds.id
                    AND booked.status = ?
                    AND booked.time_from < ? AND booked.time_to > ?
              )
            RETURNING id, created_at, updated_at
        `,
			res.UserID, res.TherapyID,
			res.TimeFrom, res.TimeTo, res.Comment, res.Status,
			res.SalonBedID,
			string(domain.StatusWaiting), res.TimeTo, res.TimeFrom,
		).
		Scan(&out)

	if result.Error != nil {
		if isPgError(result.Error, "23P01") {
			return httperr.ErrBusiness("bed_unavailable")
		}
		return result.Error
	}
	if result.RowsAffected == 0 {
		// Covers both an absent bed and an overlapping booking.
		return httperr.ErrBusiness("bed_unavailable")
	}

	res.ID = out.ID
	res.CreatedAt = out.CreatedAt
	res.UpdatedAt = out.UpdatedAt
	return nil
}

// --------------------------------------------------
// Reservation (cancel / complete)
// --------------------------------------------------

func (r *ReservationGormRepository) CancelOwned(
	ctx context.Context,
	reservationID uint,
	userID uint,
	now time.Time,
) (*models.Reservation, error) {

	result := r.db.WithContext(ctx).
		Model(&models.Reservation{}).
		Where(
			"id = ? AND user_id = ? AND status = ?",
			reservationID, userID, string(domain.StatusWaiting),
		).
		Updates(map[string]any{
			"status":       string(domain.StatusCancel),
			"cancelled_at": now,
			"updated_at":   now,
		})

	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		// Not found, not yours and already terminal all collapse into
		// one message so ownership is never leaked.
		return nil, httperr.ErrBusiness("already_canceled_or_absent")
	}

	var res models.Reservation
	if err := r.db.WithContext(ctx).First(&res, reservationID).Error; err != nil {
		return nil, err
	}
	return &res, nil
}

func (r *ReservationGormRepository) GetReservationForSalonOwner(
	ctx context.Context,
	reservationID uint,
	ownerID uint,
) (*models.Reservation, error) {

	var res models.Reservation
	err := r.db.WithContext(ctx).
		Joins("INNER JOIN salon_beds ON salon_beds.id = reservations.salon_bed_id").
		Joins("INNER JOIN salon_branches ON salon_branches.id = salon_beds.branch_id").
		Joins("INNER JOIN salons ON salons.id = salon_branches.salon_id").
		Where("reservations.id = ? AND salons.user_id = ?", reservationID, ownerID).
		First(&res).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("reservation_not_found")
		}
		return nil, err
	}
	return &res, nil
}

func (r *ReservationGormRepository) UpdateReservation(
	ctx context.Context,
	res *models.Reservation,
) error {
	return r.db.WithContext(ctx).Save(res).Error
}

// --------------------------------------------------
// Queries
// --------------------------------------------------

func (r *ReservationGormRepository) ListHistory(
	ctx context.Context,
	userID uint,
	offset int,
	limit int,
) ([]domain.HistoryRow, int64, error) {

	// Total rides along via a window function so the count and the page
	// come from the same snapshot.
	var rows []struct {
		domain.HistoryRow
		Total int64
	}

	err := r.db.WithContext(ctx).
		Raw(`
            SELECT reservations.id,
                   reservations.time_from,
                   reservations.time_to,
                   reservations.comment,
                   reservations.status,
                   reservations.created_at,
                   salon_beds.name        AS bed_name,
                   salon_branches.address AS branch_addr,
                   salons.id              AS salon_id,
                   salons.name            AS salon_name,
                   therapies.name         AS therapy_name,
                   COUNT(*) OVER ()       AS total
            FROM reservations
            LEFT JOIN therapies ON therapies.id = reservations.therapy_id
            LEFT JOIN salon_beds ON salon_beds.id = reservations.salon_bed_id
            LEFT JOIN salon_branches ON salon_branches.id = salon_beds.branch_id
            LEFT JOIN salons ON salons.id = salon_branches.salon_id
            WHERE reservations.user_id = ?
            ORDER BY reservations.time_from DESC
            OFFSET ? LIMIT ?
        `, userID, offset, limit).
		Scan(&rows).Error

	if err != nil {
		return nil, 0, err
	}

	out := make([]domain.HistoryRow, 0, len(rows))
	var total int64
	for _, row := range rows {
		total = row.Total
		out = append(out, row.HistoryRow)
	}
	return out, total, nil
}

func (r *ReservationGormRepository) ListAvailableBeds(
	ctx context.Context,
	salonID uint,
	win domain.Window,
) ([]models.SalonBed, error) {

	var beds []models.SalonBed
	err := r.db.WithContext(ctx).
		Raw(`
            SELECT salon_beds.*
            FROM salon_beds
            INNER JOIN salon_branches ON salon_branches.id = salon_beds.branch_id
            WHERE salon_branches.salon_id = ?
              AND salon_beds.status = ?
              AND NOT EXISTS (
                  SELECT 1 FROM reservations booked
                  WHERE booked.salon_bed_id = salon_beds.id
                    AND booked.status = ?
                    AND booked.time_from < ? AND booked.time_to > ?
              )
            ORDER BY salon_beds.id ASC
        `,
			salonID, models.SalonStatusActivate,
			string(domain.StatusWaiting), win.To, win.From,
		).
		Scan(&beds).Error

	if err != nil {
		return nil, err
	}
	return beds, nil
}

func isPgError(err error, code string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == code
}

// Compile-time check
var _ domain.Repository = (*ReservationGormRepository)(nil)
