package reservation

import "time"

type AvailabilityInput struct {
	SalonID uint
	Window  Window
}

// HistoryRow is one reservation of the requesting user joined with the
// catalog names it was booked against.
type HistoryRow struct {
	ID          uint
	TimeFrom    time.Time
	TimeTo      time.Time
	Comment     string
	Status      string
	CreatedAt   time.Time
	BedName     string
	BranchAddr  string
	SalonID     uint
	SalonName   string
	TherapyName string
}
