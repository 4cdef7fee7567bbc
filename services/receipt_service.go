package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"hotel-frontdesk/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type ReceiptLine struct {
	Item  string  `json:"item"`
	Price float64 `json:"price"`
}

// Receipt is the read-only view of one stay used for display and PDF export.
type Receipt struct {
	ReservationID    uint          `json:"reservationId"`
	GuestName        string        `json:"guestName"`
	RoomNumber       string        `json:"roomNumber"`
	RoomType         string        `json:"roomType"`
	RoomPrice        float64       `json:"roomPrice"`
	CheckIn          time.Time     `json:"checkIn"`
	CheckOut         time.Time     `json:"checkOut"`
	Services         []ReceiptLine `json:"services"`
	TotalServiceCost float64       `json:"totalServiceCost"`
	GrandTotal       float64       `json:"grandTotal"`
}

// ReceiptFilename is the download name for a reservation's receipt.
func ReceiptFilename(reservationID uint) string {
	return fmt.Sprintf("receipt_%d.pdf", reservationID)
}

type ReceiptService struct {
	DB  *gorm.DB
	Log *zap.Logger
}

func NewReceiptService(db *gorm.DB, log *zap.Logger) *ReceiptService {
	return &ReceiptService{DB: db, Log: log.Named("receipts")}
}

// Build aggregates a reservation's room and service charges.
// GrandTotal is the room's nightly price plus all services, not nights x price.
func (s *ReceiptService) Build(ctx context.Context, reservationID uint) (*Receipt, error) {
	db := s.DB.WithContext(ctx)

	reservation, err := loadReservation(db, reservationID)
	if err != nil {
		return nil, err
	}

	var room models.Room
	if err := db.First(&room, reservation.RoomID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("room %d of reservation %d: %w", reservation.RoomID, reservationID, ErrNotFound)
		}
		return nil, err
	}

	var services []models.RoomService
	if err := db.Where("reservation_id = ?", reservation.ID).Order("id ASC").Find(&services).Error; err != nil {
		return nil, fmt.Errorf("failed to load room services of reservation %d: %w", reservationID, err)
	}

	checkIn, checkOut := reservation.StayDates()
	receipt := &Receipt{
		ReservationID: reservation.ID,
		GuestName:     guestNameOf(db, s.Log, reservation),
		RoomNumber:    room.RoomNumber,
		RoomType:      room.RoomType,
		RoomPrice:     room.Price,
		CheckIn:       checkIn,
		CheckOut:      checkOut,
		Services:      make([]ReceiptLine, 0, len(services)),
	}
	for _, svc := range services {
		receipt.Services = append(receipt.Services, ReceiptLine{Item: svc.Item, Price: svc.Price})
		receipt.TotalServiceCost += svc.Price
	}
	receipt.GrandTotal = room.Price + receipt.TotalServiceCost

	return receipt, nil
}
