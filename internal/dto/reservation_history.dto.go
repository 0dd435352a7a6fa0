package dto

import "time"

type ReservationHistoryDTO struct {
	ID            uint      `json:"id"`
	TimeFrom      time.Time `json:"time_from"`
	TimeTo        time.Time `json:"time_to"`
	Comment       string    `json:"comment"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	BedName       string    `json:"bed_name"`
	BranchAddress string    `json:"branch_address"`
	SalonID       uint      `json:"salon_id"`
	SalonName     string    `json:"salon_name"`
	TherapyName   string    `json:"therapy_name"`
}
