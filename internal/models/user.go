package models

import "time"

type User struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Username     string `gorm:"size:100;uniqueIndex;not null" json:"username"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	FullName     string `gorm:"size:100" json:"full_name"`
	Email        string `gorm:"size:100" json:"email"`
	Gender       string `gorm:"size:10" json:"gender"`
	Role         string `gorm:"size:20;default:'CUSTOMER'" json:"role"`
	Avatar       string `gorm:"size:255" json:"avatar"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
