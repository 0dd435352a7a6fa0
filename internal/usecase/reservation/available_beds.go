package reservation

import (
	"context"

	domain "github.com/lotusspa/salon-scheduler/internal/domain/reservation"
	"github.com/lotusspa/salon-scheduler/internal/httperr"
	"github.com/lotusspa/salon-scheduler/internal/models"
)

type ListAvailableBeds struct {
	repo domain.Repository
}

func NewListAvailableBeds(repo domain.Repository) *ListAvailableBeds {
	return &ListAvailableBeds{repo: repo}
}

// Execute returns the beds of a salon that carry no waiting reservation
// overlapping the requested window. The window only has to be non-empty;
// browsing past ranges is allowed.
func (uc *ListAvailableBeds) Execute(
	ctx context.Context,
	in domain.AvailabilityInput,
) ([]models.SalonBed, error) {

	if !in.Window.From.Before(in.Window.To) {
		return nil, httperr.ErrBusiness("invalid_time_range")
	}

	beds, err := uc.repo.ListAvailableBeds(ctx, in.SalonID, in.Window)
	if err != nil {
		return nil, err
	}
	if beds == nil {
		beds = []models.SalonBed{}
	}
	return beds, nil
}
