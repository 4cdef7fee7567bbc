package models

import (
	"time"
)

type Room struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	RoomNumber string  `json:"roomNumber" gorm:"column:room_number;uniqueIndex;type:varchar(10);not null"`
	RoomType   string  `json:"roomType"   gorm:"column:room_type;index;type:varchar(50);not null"`
	Price      float64 `json:"price"      gorm:"not null"`

	// Owned by the reservation lifecycle: false while a reservation holds the room.
	Available bool `json:"available" gorm:"column:is_available;default:true;not null"`
}
