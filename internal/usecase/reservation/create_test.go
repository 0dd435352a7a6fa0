package reservation

import (
	"context"
	"sync"
	"testing"
	"time"

	domain "github.com/lotusspa/salon-scheduler/internal/domain/reservation"
	"github.com/lotusspa/salon-scheduler/internal/httperr"
)

// bookingRepo seeds one salon (therapy 1, bed 1) plus a second salon
// with bed 2, so the cross-salon check has something to trip on.
func bookingRepo() *fakeRepo {
	repo := newFakeRepo()
	repo.addTherapy(1, 1, 60)
	repo.addTherapy(2, 1, 0)
	repo.addBed(1, 1, "bed-a")
	repo.addBed(2, 2, "bed-b")
	repo.salonOwner[1] = 10
	return repo
}

func futureSlot() (time.Time, time.Time) {
	from := time.Now().UTC().Add(24 * time.Hour).Truncate(time.Hour)
	return from, from.Add(time.Hour)
}

func TestCreateReservation(t *testing.T) {
	from, to := futureSlot()

	tests := []struct {
		name     string
		in       CreateReservationInput
		wantCode string
	}{
		{
			name: "success",
			in:   CreateReservationInput{UserID: 5, TherapyID: 1, SalonBedID: 1, TimeFrom: from, TimeTo: to},
		},
		{
			name:     "unknown therapy",
			in:       CreateReservationInput{UserID: 5, TherapyID: 99, SalonBedID: 1, TimeFrom: from, TimeTo: to},
			wantCode: "therapy_not_found",
		},
		{
			name:     "unknown bed",
			in:       CreateReservationInput{UserID: 5, TherapyID: 1, SalonBedID: 99, TimeFrom: from, TimeTo: to},
			wantCode: "bed_not_found",
		},
		{
			name:     "bed from another salon",
			in:       CreateReservationInput{UserID: 5, TherapyID: 1, SalonBedID: 2, TimeFrom: from, TimeTo: to},
			wantCode: "salon_mismatch",
		},
		{
			name:     "inverted window",
			in:       CreateReservationInput{UserID: 5, TherapyID: 1, SalonBedID: 1, TimeFrom: to, TimeTo: from},
			wantCode: "invalid_time_range",
		},
		{
			name: "start in the past",
			in: CreateReservationInput{
				UserID: 5, TherapyID: 1, SalonBedID: 1,
				TimeFrom: time.Now().UTC().Add(-time.Hour),
				TimeTo:   time.Now().UTC().Add(time.Hour),
			},
			wantCode: "time_in_past",
		},
		{
			name:     "no end time and no therapy duration",
			in:       CreateReservationInput{UserID: 5, TherapyID: 2, SalonBedID: 1, TimeFrom: from},
			wantCode: "invalid_time_range",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewCreateReservation(bookingRepo(), nil, nil)

			res, err := uc.Execute(context.Background(), tt.in)
			if got := httperr.BusinessCode(err); got != tt.wantCode {
				t.Fatalf("Execute() code = %q, want %q (err=%v)", got, tt.wantCode, err)
			}
			if tt.wantCode != "" {
				return
			}
			if res.ID == 0 {
				t.Error("created reservation has no ID")
			}
			if res.Status != string(domain.StatusWaiting) {
				t.Errorf("status = %s, want WAITING", res.Status)
			}
		})
	}
}

func TestCreateReservationDerivesEndTime(t *testing.T) {
	repo := bookingRepo()
	uc := NewCreateReservation(repo, nil, nil)
	from, _ := futureSlot()

	res, err := uc.Execute(context.Background(), CreateReservationInput{
		UserID: 5, TherapyID: 1, SalonBedID: 1, TimeFrom: from,
	})
	if err != nil {
		t.Fatalf("Execute() = %v", err)
	}

	want := from.Add(60 * time.Minute)
	if !res.TimeTo.Equal(want) {
		t.Errorf("TimeTo = %v, want %v (therapy duration)", res.TimeTo, want)
	}
}

func TestCreateReservationRejectsOverlap(t *testing.T) {
	repo := bookingRepo()
	uc := NewCreateReservation(repo, nil, nil)
	ctx := context.Background()
	from, to := futureSlot()

	if _, err := uc.Execute(ctx, CreateReservationInput{
		UserID: 5, TherapyID: 1, SalonBedID: 1, TimeFrom: from, TimeTo: to,
	}); err != nil {
		t.Fatalf("first booking: %v", err)
	}

	// Same bed, shifted half in: must collide.
	_, err := uc.Execute(ctx, CreateReservationInput{
		UserID: 6, TherapyID: 1, SalonBedID: 1,
		TimeFrom: from.Add(30 * time.Minute),
		TimeTo:   to.Add(30 * time.Minute),
	})
	if !httperr.IsBusiness(err, "bed_unavailable") {
		t.Fatalf("overlapping booking = %v, want bed_unavailable", err)
	}

	// Back to back on the same bed is fine.
	if _, err := uc.Execute(ctx, CreateReservationInput{
		UserID: 6, TherapyID: 1, SalonBedID: 1,
		TimeFrom: to,
		TimeTo:   to.Add(time.Hour),
	}); err != nil {
		t.Fatalf("adjacent booking = %v, want success", err)
	}
}

func TestCreateReservationAfterCancelFreesBed(t *testing.T) {
	repo := bookingRepo()
	create := NewCreateReservation(repo, nil, nil)
	cancel := NewCancelReservation(repo, nil, nil)
	ctx := context.Background()
	from, to := futureSlot()

	res, err := create.Execute(ctx, CreateReservationInput{
		UserID: 5, TherapyID: 1, SalonBedID: 1, TimeFrom: from, TimeTo: to,
	})
	if err != nil {
		t.Fatalf("first booking: %v", err)
	}
	if _, err := cancel.Execute(ctx, 5, res.ID); err != nil {
		t.Fatalf("cancel: %v", err)
	}

	// A cancelled reservation no longer blocks the slot.
	if _, err := create.Execute(ctx, CreateReservationInput{
		UserID: 6, TherapyID: 1, SalonBedID: 1, TimeFrom: from, TimeTo: to,
	}); err != nil {
		t.Fatalf("rebooking freed slot = %v, want success", err)
	}
}

func TestCreateReservationConcurrentSameSlot(t *testing.T) {
	repo := bookingRepo()
	uc := NewCreateReservation(repo, nil, nil)
	ctx := context.Background()
	from, to := futureSlot()

	const workers = 16

	var wg sync.WaitGroup
	var mu sync.Mutex
	created := 0

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(userID uint) {
			defer wg.Done()
			_, err := uc.Execute(ctx, CreateReservationInput{
				UserID: userID, TherapyID: 1, SalonBedID: 1, TimeFrom: from, TimeTo: to,
			})
			if err == nil {
				mu.Lock()
				created++
				mu.Unlock()
				return
			}
			if !httperr.IsBusiness(err, "bed_unavailable") {
				t.Errorf("unexpected error: %v", err)
			}
		}(uint(i + 1))
	}
	wg.Wait()

	if created != 1 {
		t.Fatalf("concurrent bookings created = %d, want exactly 1", created)
	}
}
