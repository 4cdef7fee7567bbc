package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"hotel-frontdesk/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	DefaultRecommendType  = "Single"
	DefaultRecommendLimit = 3
)

// RoomInput is what staff may set on a room. Availability is not part of it:
// only the reservation lifecycle flips that flag.
type RoomInput struct {
	RoomNumber string
	RoomType   string
	Price      float64
}

func (in *RoomInput) normalize() error {
	in.RoomNumber = strings.TrimSpace(in.RoomNumber)
	in.RoomType = strings.TrimSpace(in.RoomType)
	if in.RoomNumber == "" {
		return fmt.Errorf("%w: room number is required", ErrInvalidInput)
	}
	if in.RoomType == "" {
		return fmt.Errorf("%w: room type is required", ErrInvalidInput)
	}
	if in.Price <= 0 {
		return fmt.Errorf("%w: price must be greater than zero", ErrInvalidInput)
	}
	return nil
}

type RoomService struct {
	DB  *gorm.DB
	Log *zap.Logger
}

func NewRoomService(db *gorm.DB, log *zap.Logger) *RoomService {
	return &RoomService{DB: db, Log: log.Named("rooms")}
}

func (s *RoomService) Create(ctx context.Context, in RoomInput) (*models.Room, error) {
	if err := in.normalize(); err != nil {
		return nil, err
	}

	room := models.Room{
		RoomNumber: in.RoomNumber,
		RoomType:   in.RoomType,
		Price:      in.Price,
		Available:  true,
	}
	if err := s.DB.WithContext(ctx).Create(&room).Error; err != nil {
		if isDuplicateKeyError(err) {
			return nil, fmt.Errorf("room %q: %w", in.RoomNumber, ErrDuplicateRoomNumber)
		}
		return nil, fmt.Errorf("failed to create room: %w", err)
	}

	s.Log.Info("room created", zap.Uint("room_id", room.ID), zap.String("room_number", room.RoomNumber))
	return &room, nil
}

// List returns every room, or only rooms of roomType when it is non-empty.
func (s *RoomService) List(ctx context.Context, roomType string) ([]models.Room, error) {
	q := s.DB.WithContext(ctx).Order("room_number ASC")
	if t := strings.TrimSpace(roomType); t != "" {
		q = q.Where("room_type = ?", t)
	}

	var rooms []models.Room
	if err := q.Find(&rooms).Error; err != nil {
		return nil, fmt.Errorf("failed to list rooms: %w", err)
	}
	return rooms, nil
}

// ListAvailable returns rooms that can be booked right now.
func (s *RoomService) ListAvailable(ctx context.Context) ([]models.Room, error) {
	var rooms []models.Room
	if err := s.DB.WithContext(ctx).
		Where("is_available = ?", true).
		Order("room_number ASC").
		Find(&rooms).Error; err != nil {
		return nil, fmt.Errorf("failed to list available rooms: %w", err)
	}
	return rooms, nil
}

// Recommend returns up to limit available rooms of roomType, cheapest first.
func (s *RoomService) Recommend(ctx context.Context, roomType string, limit int) ([]models.Room, error) {
	roomType = strings.TrimSpace(roomType)
	if roomType == "" {
		roomType = DefaultRecommendType
	}
	if limit <= 0 {
		limit = DefaultRecommendLimit
	}

	var rooms []models.Room
	if err := s.DB.WithContext(ctx).
		Where("is_available = ? AND room_type = ?", true, roomType).
		Order("price ASC").
		Limit(limit).
		Find(&rooms).Error; err != nil {
		return nil, fmt.Errorf("failed to recommend rooms: %w", err)
	}
	return rooms, nil
}

func (s *RoomService) GetByID(ctx context.Context, id uint) (*models.Room, error) {
	var room models.Room
	if err := s.DB.WithContext(ctx).First(&room, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("room %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to load room %d: %w", id, err)
	}
	return &room, nil
}

func (s *RoomService) Update(ctx context.Context, id uint, in RoomInput) (*models.Room, error) {
	if err := in.normalize(); err != nil {
		return nil, err
	}

	room, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.DB.WithContext(ctx).Model(room).Updates(map[string]interface{}{
		"room_number": in.RoomNumber,
		"room_type":   in.RoomType,
		"price":       in.Price,
	}).Error; err != nil {
		if isDuplicateKeyError(err) {
			return nil, fmt.Errorf("room %q: %w", in.RoomNumber, ErrDuplicateRoomNumber)
		}
		return nil, fmt.Errorf("failed to update room %d: %w", id, err)
	}

	room.RoomNumber, room.RoomType, room.Price = in.RoomNumber, in.RoomType, in.Price
	return room, nil
}

// Delete removes a room that no reservation references.
func (s *RoomService) Delete(ctx context.Context, id uint) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var room models.Room
		if err := tx.First(&room, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("room %d: %w", id, ErrNotFound)
			}
			return err
		}

		var refs int64
		if err := tx.Model(&models.Reservation{}).Where("room_id = ?", id).Count(&refs).Error; err != nil {
			return err
		}
		if refs > 0 {
			return fmt.Errorf("room %s has %d reservation(s): %w", room.RoomNumber, refs, ErrRoomInUse)
		}

		if err := tx.Delete(&room).Error; err != nil {
			if isForeignKeyError(err) {
				return fmt.Errorf("room %s: %w", room.RoomNumber, ErrRoomInUse)
			}
			return err
		}

		s.Log.Info("room deleted", zap.Uint("room_id", id), zap.String("room_number", room.RoomNumber))
		return nil
	})
}
