package models

import (
	"time"

	"gorm.io/datatypes"
)

const (
	PaymentStatusUnpaid = "Unpaid"
	PaymentStatusPaid   = "Paid"
)

type Reservation struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	GuestID       uint           `gorm:"column:guest_id;index;not null" json:"guestId"`
	RoomID        uint           `gorm:"column:room_id;index;not null" json:"roomId"`
	CheckIn       datatypes.Date `gorm:"column:check_in;not null" json:"checkIn"`
	CheckOut      datatypes.Date `gorm:"column:check_out;not null" json:"checkOut"`
	PaymentStatus string         `gorm:"column:payment_status;size:20;default:Unpaid" json:"paymentStatus"`

	// Pointers so a zero value never triggers an association upsert on Create.
	Guest *Guest `gorm:"foreignKey:GuestID;references:ID" json:"guest,omitempty"`
	Room  *Room  `gorm:"foreignKey:RoomID;references:ID" json:"room,omitempty"`
}

// StayDates returns the check-in and check-out dates as time.Time.
func (r Reservation) StayDates() (time.Time, time.Time) {
	return time.Time(r.CheckIn), time.Time(r.CheckOut)
}
