package services

import (
	"context"
	"errors"
	"fmt"

	"hotel-frontdesk/models"

	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ReservationService owns the link between a guest, a room and a stay, and
// keeps Room.Available in step with it.
type ReservationService struct {
	DB  *gorm.DB
	Log *zap.Logger
}

func NewReservationService(db *gorm.DB, log *zap.Logger) *ReservationService {
	return &ReservationService{DB: db, Log: log.Named("reservations")}
}

// Create books roomID for guestID. The reservation insert and the room flip
// happen in one transaction.
func (s *ReservationService) Create(ctx context.Context, guestID, roomID uint, checkIn, checkOut string) (*models.Reservation, error) {
	ci, co, err := parseStay(checkIn, checkOut)
	if err != nil {
		return nil, err
	}

	var reservation models.Reservation
	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var room models.Room
		if err := tx.First(&room, roomID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("room %d does not exist: %w", roomID, ErrRoomUnavailable)
			}
			return err
		}
		if !room.Available {
			return fmt.Errorf("room %s is already booked: %w", room.RoomNumber, ErrRoomUnavailable)
		}

		var guest models.Guest
		if err := tx.First(&guest, guestID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("guest %d: %w", guestID, ErrGuestNotFound)
			}
			return err
		}

		reservation = models.Reservation{
			GuestID:       guest.ID,
			RoomID:        room.ID,
			CheckIn:       datatypes.Date(ci),
			CheckOut:      datatypes.Date(co),
			PaymentStatus: models.PaymentStatusUnpaid,
		}
		if err := tx.Create(&reservation).Error; err != nil {
			return fmt.Errorf("failed to create reservation: %w", err)
		}

		// Conditional flip: a concurrent booking that got here first leaves 0 rows.
		res := tx.Model(&models.Room{}).
			Where("id = ? AND is_available = ?", room.ID, true).
			Update("is_available", false)
		if res.Error != nil {
			return fmt.Errorf("failed to mark room %d occupied: %w", room.ID, res.Error)
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("room %s was booked concurrently: %w", room.RoomNumber, ErrRoomUnavailable)
		}

		room.Available = false
		reservation.Guest = &guest
		reservation.Room = &room
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.Log.Info("reservation created",
		zap.Uint("reservation_id", reservation.ID),
		zap.Uint("guest_id", guestID),
		zap.Uint("room_id", roomID),
		zap.String("check_in", checkIn),
		zap.String("check_out", checkOut),
	)
	return &reservation, nil
}

// Edit moves the stay dates. Overlap with other reservations is not checked:
// the room is held exclusively by this reservation until it is deleted.
func (s *ReservationService) Edit(ctx context.Context, id uint, checkIn, checkOut string) (*models.Reservation, error) {
	ci, co, err := parseStay(checkIn, checkOut)
	if err != nil {
		return nil, err
	}

	var reservation models.Reservation
	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&reservation, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("reservation %d: %w", id, ErrNotFound)
			}
			return err
		}

		if err := tx.Model(&reservation).Updates(map[string]interface{}{
			"check_in":  datatypes.Date(ci),
			"check_out": datatypes.Date(co),
		}).Error; err != nil {
			return fmt.Errorf("failed to update reservation %d: %w", id, err)
		}

		reservation.CheckIn = datatypes.Date(ci)
		reservation.CheckOut = datatypes.Date(co)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.Log.Info("reservation edited", zap.Uint("reservation_id", id), zap.String("check_in", checkIn), zap.String("check_out", checkOut))
	return &reservation, nil
}

// Delete removes the reservation together with its service and billing rows
// and releases the room. The release is unconditional, so it is idempotent.
func (s *ReservationService) Delete(ctx context.Context, id uint) error {
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var reservation models.Reservation
		if err := tx.First(&reservation, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("reservation %d: %w", id, ErrNotFound)
			}
			return err
		}

		if err := tx.Where("reservation_id = ?", id).Delete(&models.RoomService{}).Error; err != nil {
			return fmt.Errorf("failed to delete room services of reservation %d: %w", id, err)
		}
		if err := tx.Where("reservation_id = ?", id).Delete(&models.Billing{}).Error; err != nil {
			return fmt.Errorf("failed to delete bills of reservation %d: %w", id, err)
		}
		if err := tx.Delete(&reservation).Error; err != nil {
			return fmt.Errorf("failed to delete reservation %d: %w", id, err)
		}

		if err := tx.Model(&models.Room{}).
			Where("id = ?", reservation.RoomID).
			Update("is_available", true).Error; err != nil {
			return fmt.Errorf("failed to release room %d: %w", reservation.RoomID, err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.Log.Info("reservation deleted, room released", zap.Uint("reservation_id", id))
	return nil
}

func (s *ReservationService) GetByID(ctx context.Context, id uint) (*models.Reservation, error) {
	var reservation models.Reservation
	if err := s.DB.WithContext(ctx).
		Preload("Guest").
		Preload("Room").
		First(&reservation, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("reservation %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to load reservation %d: %w", id, err)
	}
	return &reservation, nil
}

func (s *ReservationService) List(ctx context.Context) ([]models.Reservation, error) {
	var list []models.Reservation
	if err := s.DB.WithContext(ctx).
		Preload("Guest").
		Preload("Room").
		Order("id DESC").
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to list reservations: %w", err)
	}
	return list, nil
}
