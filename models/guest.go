package models

import (
	"time"
)

type Guest struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Name  string `gorm:"size:100;not null" json:"name"`
	Phone string `gorm:"size:15;not null" json:"phone"`
	Email string `gorm:"size:100;not null" json:"email"`
}
