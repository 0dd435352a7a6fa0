package reservation

import (
	"context"

	domain "github.com/lotusspa/salon-scheduler/internal/domain/reservation"
	"github.com/lotusspa/salon-scheduler/internal/dto"
)

type ListHistory struct {
	repo domain.Repository
}

func NewListHistory(repo domain.Repository) *ListHistory {
	return &ListHistory{repo: repo}
}

func (uc *ListHistory) Execute(
	ctx context.Context,
	userID uint,
	page int,
	limit int,
) ([]dto.ReservationHistoryDTO, int64, error) {

	if page <= 0 {
		page = 1
	}
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	offset := (page - 1) * limit

	rows, total, err := uc.repo.ListHistory(ctx, userID, offset, limit)
	if err != nil {
		return nil, 0, err
	}

	out := make([]dto.ReservationHistoryDTO, 0, len(rows))
	for _, row := range rows {
		out = append(out, dto.ReservationHistoryDTO{
			ID:            row.ID,
			TimeFrom:      row.TimeFrom,
			TimeTo:        row.TimeTo,
			Comment:       row.Comment,
			Status:        row.Status,
			CreatedAt:     row.CreatedAt,
			BedName:       row.BedName,
			BranchAddress: row.BranchAddr,
			SalonID:       row.SalonID,
			SalonName:     row.SalonName,
			TherapyName:   row.TherapyName,
		})
	}

	return out, total, nil
}
