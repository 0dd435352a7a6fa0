// Package queue defines the payloads published to the message broker.
package queue

import "time"

const (
	ReservationCreated   = "reservation.created"
	ReservationCancelled = "reservation.cancelled"
	ReservationCompleted = "reservation.completed"
)

// ReservationEvent is emitted on every reservation state change. It
// carries enough for a notification consumer to act without querying
// the primary database.
type ReservationEvent struct {
	ReservationID uint      `json:"reservation_id"`
	UserID        uint      `json:"user_id"`
	SalonBedID    uint      `json:"salon_bed_id"`
	TherapyID     uint      `json:"therapy_id"`
	TimeFrom      time.Time `json:"time_from"`
	TimeTo        time.Time `json:"time_to"`
	Status        string    `json:"status"`
	OccurredAt    time.Time `json:"occurred_at"`
}
