package models

import "time"

const (
	BillingStatusPending = "Pending"
	BillingStatusPaid    = "Paid"

	CategoryRoomStay    = "Room Stay"
	CategoryRoomService = "Room Service"
)

// Billing is a derived charge against a reservation. GuestName is a snapshot
// taken when the row is written.
type Billing struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	ReservationID uint    `gorm:"column:reservation_id;index:idx_billing_reservation_category;not null" json:"reservationId"`
	GuestName     string  `gorm:"column:guest_name;size:100;not null" json:"guestName"`
	Amount        float64 `gorm:"not null" json:"amount"`
	Status        string  `gorm:"size:20;default:Pending;not null" json:"status"`
	Category      string  `gorm:"size:50;default:Room Stay;not null;index:idx_billing_reservation_category" json:"category"`

	Reservation *Reservation `gorm:"foreignKey:ReservationID;references:ID" json:"-"`
}

func (b Billing) IsPaid() bool {
	return b.Status == BillingStatusPaid
}
