package services

import (
	"context"
	"fmt"

	"hotel-frontdesk/models"

	"gorm.io/gorm"
)

// RoomServiceLog reads the ad-hoc charges recorded by BillingService.AddServiceCharge.
type RoomServiceLog struct {
	DB *gorm.DB
}

func NewRoomServiceLog(db *gorm.DB) *RoomServiceLog {
	return &RoomServiceLog{DB: db}
}

// List returns service rows oldest first; reservationID 0 means all reservations.
func (s *RoomServiceLog) List(ctx context.Context, reservationID uint) ([]models.RoomService, error) {
	q := s.DB.WithContext(ctx).Order("id ASC")
	if reservationID != 0 {
		q = q.Where("reservation_id = ?", reservationID)
	}

	var items []models.RoomService
	if err := q.Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to list room services: %w", err)
	}
	return items, nil
}
