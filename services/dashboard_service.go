package services

import (
	"context"
	"fmt"

	"hotel-frontdesk/models"

	"gorm.io/gorm"
)

type DashboardStats struct {
	TotalGuests       int64   `json:"totalGuests"`
	TotalReservations int64   `json:"totalReservations"`
	OccupiedRooms     int64   `json:"occupiedRooms"`
	AvailableRooms    int64   `json:"availableRooms"`
	TotalRevenue      float64 `json:"totalRevenue"`
}

type DashboardService struct {
	DB *gorm.DB
}

func NewDashboardService(db *gorm.DB) *DashboardService {
	return &DashboardService{DB: db}
}

// Stats sums every billing row, paid or not, as revenue.
func (s *DashboardService) Stats(ctx context.Context) (*DashboardStats, error) {
	db := s.DB.WithContext(ctx)
	var stats DashboardStats

	if err := db.Model(&models.Guest{}).Count(&stats.TotalGuests).Error; err != nil {
		return nil, fmt.Errorf("count guests: %w", err)
	}
	if err := db.Model(&models.Reservation{}).Count(&stats.TotalReservations).Error; err != nil {
		return nil, fmt.Errorf("count reservations: %w", err)
	}
	if err := db.Model(&models.Room{}).Where("is_available = ?", false).Count(&stats.OccupiedRooms).Error; err != nil {
		return nil, fmt.Errorf("count occupied rooms: %w", err)
	}
	if err := db.Model(&models.Room{}).Where("is_available = ?", true).Count(&stats.AvailableRooms).Error; err != nil {
		return nil, fmt.Errorf("count available rooms: %w", err)
	}
	if err := db.Model(&models.Billing{}).
		Select("COALESCE(SUM(amount), 0)").
		Row().
		Scan(&stats.TotalRevenue); err != nil {
		return nil, fmt.Errorf("sum revenue: %w", err)
	}

	return &stats, nil
}
