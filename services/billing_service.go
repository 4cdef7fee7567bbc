package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"hotel-frontdesk/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// UnknownGuestName stands in when a reservation's guest cannot be resolved.
const UnknownGuestName = "Unknown"

type BillingService struct {
	DB  *gorm.DB
	Log *zap.Logger
}

func NewBillingService(db *gorm.DB, log *zap.Logger) *BillingService {
	return &BillingService{DB: db, Log: log.Named("billing")}
}

// guestNameOf resolves the guest behind a reservation. A broken link is logged
// and yields UnknownGuestName instead of failing the caller.
func guestNameOf(tx *gorm.DB, log *zap.Logger, reservation models.Reservation) string {
	var guest models.Guest
	if err := tx.First(&guest, reservation.GuestID).Error; err != nil {
		log.Warn("guest link missing, using placeholder name",
			zap.Uint("reservation_id", reservation.ID),
			zap.Uint("guest_id", reservation.GuestID),
			zap.Error(err),
		)
		return UnknownGuestName
	}
	return guest.Name
}

func loadReservation(tx *gorm.DB, id uint) (models.Reservation, error) {
	var reservation models.Reservation
	if err := tx.First(&reservation, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return reservation, fmt.Errorf("reservation %d: %w", id, ErrNotFound)
		}
		return reservation, err
	}
	return reservation, nil
}

// GenerateStayBill (re)computes the "Room Stay" bill as nights x room price.
// Calling it again with unchanged dates leaves exactly one identical row.
// The reservation row stays locked until commit, so concurrent calls for the
// same reservation run one after another and never insert twice.
func (s *BillingService) GenerateStayBill(ctx context.Context, reservationID uint) (*models.Billing, error) {
	var bill models.Billing
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		reservation, err := loadReservation(tx.Clauses(clause.Locking{Strength: "UPDATE"}), reservationID)
		if err != nil {
			return err
		}

		var room models.Room
		if err := tx.First(&room, reservation.RoomID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("room %d of reservation %d: %w", reservation.RoomID, reservationID, ErrNotFound)
			}
			return err
		}

		checkIn, checkOut := reservation.StayDates()
		nights := Nights(checkIn, checkOut)

		bill = models.Billing{
			ReservationID: reservation.ID,
			GuestName:     guestNameOf(tx, s.Log, reservation),
			Amount:        float64(nights) * room.Price,
			Status:        models.BillingStatusPending,
			Category:      models.CategoryRoomStay,
		}
		return PolicyFor(bill.Category).Apply(tx, &bill)
	})
	if err != nil {
		return nil, err
	}

	s.Log.Info("stay bill generated",
		zap.Uint("reservation_id", reservationID),
		zap.Uint("bill_id", bill.ID),
		zap.Float64("amount", bill.Amount),
	)
	return &bill, nil
}

// AddServiceCharge records one room-service item and bills it as its own
// "Room Service" row.
func (s *BillingService) AddServiceCharge(ctx context.Context, reservationID uint, item string, price float64) (*models.RoomService, *models.Billing, error) {
	item = strings.TrimSpace(item)
	if item == "" {
		return nil, nil, fmt.Errorf("%w: item is required", ErrInvalidInput)
	}
	if price <= 0 {
		return nil, nil, fmt.Errorf("%w: price must be greater than zero", ErrInvalidInput)
	}

	var (
		svc  models.RoomService
		bill models.Billing
	)
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		reservation, err := loadReservation(tx, reservationID)
		if err != nil {
			return err
		}

		svc = models.RoomService{ReservationID: reservation.ID, Item: item, Price: price}
		if err := tx.Create(&svc).Error; err != nil {
			return fmt.Errorf("failed to record room service: %w", err)
		}

		bill = models.Billing{
			ReservationID: reservation.ID,
			GuestName:     guestNameOf(tx, s.Log, reservation),
			Amount:        price,
			Status:        models.BillingStatusPending,
			Category:      models.CategoryRoomService,
		}
		return PolicyFor(bill.Category).Apply(tx, &bill)
	})
	if err != nil {
		return nil, nil, err
	}

	s.Log.Info("room service billed",
		zap.Uint("reservation_id", reservationID),
		zap.Uint("service_id", svc.ID),
		zap.Uint("bill_id", bill.ID),
		zap.String("item", item),
		zap.Float64("price", price),
	)
	return &svc, &bill, nil
}

// PayBill marks a bill Paid. Paying an already paid bill is a no-op.
func (s *BillingService) PayBill(ctx context.Context, billID uint) (*models.Billing, error) {
	var bill models.Billing
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&bill, billID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("bill %d: %w", billID, ErrNotFound)
			}
			return err
		}
		if bill.IsPaid() {
			return nil
		}

		if err := tx.Model(&bill).Update("status", models.BillingStatusPaid).Error; err != nil {
			return fmt.Errorf("failed to pay bill %d: %w", billID, err)
		}
		bill.Status = models.BillingStatusPaid
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.Log.Info("bill paid", zap.Uint("bill_id", billID))
	return &bill, nil
}

// List returns bills newest first; reservationID 0 means all reservations.
func (s *BillingService) List(ctx context.Context, reservationID uint) ([]models.Billing, error) {
	q := s.DB.WithContext(ctx).Order("id DESC")
	if reservationID != 0 {
		q = q.Where("reservation_id = ?", reservationID)
	}

	var bills []models.Billing
	if err := q.Find(&bills).Error; err != nil {
		return nil, fmt.Errorf("failed to list bills: %w", err)
	}
	return bills, nil
}
