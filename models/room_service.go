package models

import "time"

// RoomService is one ad-hoc charge (breakfast, laundry...) against a reservation.
type RoomService struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreatedAt time.Time `json:"createdAt"`

	ReservationID uint    `gorm:"column:reservation_id;index;not null" json:"reservationId"`
	Item          string  `gorm:"size:100;not null" json:"item"`
	Price         float64 `gorm:"not null" json:"price"`

	Reservation *Reservation `gorm:"foreignKey:ReservationID;references:ID" json:"-"`
}
