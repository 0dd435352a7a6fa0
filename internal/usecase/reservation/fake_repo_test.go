package reservation

import (
	"context"
	"sync"
	"time"

	domain "github.com/lotusspa/salon-scheduler/internal/domain/reservation"
	"github.com/lotusspa/salon-scheduler/internal/httperr"
	"github.com/lotusspa/salon-scheduler/internal/models"
)

// fakeRepo is an in-memory domain.Repository. CreateIfAvailable holds a
// single lock across check and insert, mirroring the one-statement
// guarantee of the real store.
type fakeRepo struct {
	mu sync.Mutex

	therapies   map[uint]*models.Therapy
	beds        map[uint]models.SalonBed
	bedSalon    map[uint]uint
	salonOwner  map[uint]uint
	reservation map[uint]*models.Reservation
	nextID      uint

	lastOffset int
	lastLimit  int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		therapies:   make(map[uint]*models.Therapy),
		beds:        make(map[uint]models.SalonBed),
		bedSalon:    make(map[uint]uint),
		salonOwner:  make(map[uint]uint),
		reservation: make(map[uint]*models.Reservation),
	}
}

func (f *fakeRepo) addTherapy(id, salonID uint, durationMin int) {
	f.therapies[id] = &models.Therapy{ID: id, SalonID: salonID, DurationMin: durationMin}
}

func (f *fakeRepo) addBed(id, salonID uint, name string) {
	f.beds[id] = models.SalonBed{ID: id, Name: name}
	f.bedSalon[id] = salonID
}

func (f *fakeRepo) GetTherapy(_ context.Context, therapyID uint) (*models.Therapy, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	t, ok := f.therapies[therapyID]
	if !ok {
		return nil, httperr.ErrBusiness("therapy_not_found")
	}
	cp := *t
	return &cp, nil
}

func (f *fakeRepo) GetBedSalon(_ context.Context, bedID uint) (uint, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	salonID, ok := f.bedSalon[bedID]
	if !ok {
		return 0, httperr.ErrBusiness("bed_not_found")
	}
	return salonID, nil
}

func (f *fakeRepo) CreateIfAvailable(_ context.Context, res *models.Reservation) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.bedSalon[res.SalonBedID]; !ok {
		return httperr.ErrBusiness("bed_unavailable")
	}
	want := domain.Window{From: res.TimeFrom, To: res.TimeTo}
	for _, booked := range f.reservation {
		if booked.SalonBedID != res.SalonBedID {
			continue
		}
		if !domain.Blocking(domain.Status(booked.Status)) {
			continue
		}
		if want.Overlaps(domain.Window{From: booked.TimeFrom, To: booked.TimeTo}) {
			return httperr.ErrBusiness("bed_unavailable")
		}
	}

	f.nextID++
	res.ID = f.nextID
	res.CreatedAt = time.Now().UTC()
	cp := *res
	f.reservation[res.ID] = &cp
	return nil
}

func (f *fakeRepo) CancelOwned(
	_ context.Context,
	reservationID uint,
	userID uint,
	now time.Time,
) (*models.Reservation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	res, ok := f.reservation[reservationID]
	if !ok || res.UserID != userID || res.Status != string(domain.StatusWaiting) {
		return nil, httperr.ErrBusiness("already_canceled_or_absent")
	}

	res.Status = string(domain.StatusCancel)
	res.CancelledAt = &now
	cp := *res
	return &cp, nil
}

func (f *fakeRepo) GetReservationForSalonOwner(
	_ context.Context,
	reservationID uint,
	ownerID uint,
) (*models.Reservation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	res, ok := f.reservation[reservationID]
	if !ok {
		return nil, httperr.ErrBusiness("reservation_not_found")
	}
	salonID := f.bedSalon[res.SalonBedID]
	if f.salonOwner[salonID] != ownerID {
		return nil, httperr.ErrBusiness("reservation_not_found")
	}
	cp := *res
	return &cp, nil
}

func (f *fakeRepo) UpdateReservation(_ context.Context, res *models.Reservation) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.reservation[res.ID]; !ok {
		return httperr.ErrBusiness("reservation_not_found")
	}
	cp := *res
	f.reservation[res.ID] = &cp
	return nil
}

func (f *fakeRepo) ListHistory(
	_ context.Context,
	userID uint,
	offset int,
	limit int,
) ([]domain.HistoryRow, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.lastOffset = offset
	f.lastLimit = limit

	var rows []domain.HistoryRow
	for _, res := range f.reservation {
		if res.UserID != userID {
			continue
		}
		rows = append(rows, domain.HistoryRow{
			ID:       res.ID,
			TimeFrom: res.TimeFrom,
			TimeTo:   res.TimeTo,
			Status:   res.Status,
			SalonID:  f.bedSalon[res.SalonBedID],
			BedName:  f.beds[res.SalonBedID].Name,
		})
	}
	return rows, int64(len(rows)), nil
}

func (f *fakeRepo) ListAvailableBeds(
	_ context.Context,
	salonID uint,
	win domain.Window,
) ([]models.SalonBed, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []models.SalonBed
	for id, bed := range f.beds {
		if f.bedSalon[id] != salonID {
			continue
		}
		blocked := false
		for _, res := range f.reservation {
			if res.SalonBedID != id || !domain.Blocking(domain.Status(res.Status)) {
				continue
			}
			if win.Overlaps(domain.Window{From: res.TimeFrom, To: res.TimeTo}) {
				blocked = true
				break
			}
		}
		if !blocked {
			out = append(out, bed)
		}
	}
	return out, nil
}

var _ domain.Repository = (*fakeRepo)(nil)
