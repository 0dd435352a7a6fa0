package reservation

import (
	"context"
	"testing"

	domain "github.com/lotusspa/salon-scheduler/internal/domain/reservation"
	"github.com/lotusspa/salon-scheduler/internal/httperr"
)

func TestCancelReservation(t *testing.T) {
	repo := bookingRepo()
	create := NewCreateReservation(repo, nil, nil)
	cancel := NewCancelReservation(repo, nil, nil)
	ctx := context.Background()
	from, to := futureSlot()

	res, err := create.Execute(ctx, CreateReservationInput{
		UserID: 5, TherapyID: 1, SalonBedID: 1, TimeFrom: from, TimeTo: to,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := cancel.Execute(ctx, 5, res.ID)
	if err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if got.Status != string(domain.StatusCancel) {
		t.Errorf("status = %s, want CANCEL", got.Status)
	}
	if got.CancelledAt == nil {
		t.Error("CancelledAt not set")
	}
}

// A missing reservation, someone else's reservation and an already
// terminal one all answer identically, so ownership is never leaked.
func TestCancelReservationFailsUniformly(t *testing.T) {
	repo := bookingRepo()
	create := NewCreateReservation(repo, nil, nil)
	cancel := NewCancelReservation(repo, nil, nil)
	ctx := context.Background()
	from, to := futureSlot()

	res, err := create.Execute(ctx, CreateReservationInput{
		UserID: 5, TherapyID: 1, SalonBedID: 1, TimeFrom: from, TimeTo: to,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// Not the owner.
	if _, err := cancel.Execute(ctx, 6, res.ID); !httperr.IsBusiness(err, "already_canceled_or_absent") {
		t.Errorf("foreign cancel = %v, want already_canceled_or_absent", err)
	}

	// Unknown id.
	if _, err := cancel.Execute(ctx, 5, 999); !httperr.IsBusiness(err, "already_canceled_or_absent") {
		t.Errorf("unknown id cancel = %v, want already_canceled_or_absent", err)
	}

	// Second cancel of the same reservation.
	if _, err := cancel.Execute(ctx, 5, res.ID); err != nil {
		t.Fatalf("first cancel: %v", err)
	}
	if _, err := cancel.Execute(ctx, 5, res.ID); !httperr.IsBusiness(err, "already_canceled_or_absent") {
		t.Errorf("repeat cancel = %v, want already_canceled_or_absent", err)
	}
}
