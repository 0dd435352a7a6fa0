package models

import "time"

type SalonMedia struct {
	ID uint `gorm:"primaryKey" json:"id"`

	SalonID uint  `gorm:"index;not null" json:"salon_id"`
	Salon   Salon `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	URL       string `gorm:"size:255;not null" json:"url"`
	ObjectKey string `gorm:"size:255;not null" json:"-"`
	MediaType string `gorm:"size:10;default:'IMAGE'" json:"media_type"`

	CreatedAt time.Time `json:"created_at"`
}

const (
	MediaTypeImage = "IMAGE"
	MediaTypeVideo = "VIDEO"
)
