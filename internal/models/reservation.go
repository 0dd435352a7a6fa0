package models

import "time"

type Reservation struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID uint `gorm:"index;not null" json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	TherapyID uint    `gorm:"not null" json:"therapy_id"`
	Therapy   Therapy `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	SalonBedID uint     `gorm:"index;not null" json:"salon_bed_id"`
	SalonBed   SalonBed `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	TimeFrom time.Time `gorm:"not null" json:"time_from"`
	TimeTo   time.Time `gorm:"not null" json:"time_to"`

	Comment string `gorm:"size:255" json:"comment"`
	Status  string `gorm:"size:20;default:'WAITING'" json:"status"`

	CancelledAt *time.Time `json:"cancelled_at"`
	CompletedAt *time.Time `json:"completed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
