package models

import "time"

type SalonBed struct {
	ID uint `gorm:"primaryKey" json:"id"`

	BranchID uint        `gorm:"index;not null" json:"branch_id"`
	Branch   SalonBranch `gorm:"foreignKey:BranchID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	Name   string `gorm:"size:100;not null" json:"name"`
	Status string `gorm:"size:20;default:'ACTIVATE'" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
