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

type GuestService struct {
	DB  *gorm.DB
	Log *zap.Logger
}

func NewGuestService(db *gorm.DB, log *zap.Logger) *GuestService {
	return &GuestService{DB: db, Log: log.Named("guests")}
}

func normalizeGuest(guest *models.Guest) error {
	guest.Name = strings.TrimSpace(guest.Name)
	guest.Phone = strings.TrimSpace(guest.Phone)
	guest.Email = strings.TrimSpace(guest.Email)
	if guest.Name == "" || guest.Phone == "" || guest.Email == "" {
		return fmt.Errorf("%w: name, phone and email are required", ErrInvalidInput)
	}
	return nil
}

// Create takes a pointer so the generated ID is filled back in.
func (s *GuestService) Create(ctx context.Context, guest *models.Guest) error {
	if err := normalizeGuest(guest); err != nil {
		return err
	}
	guest.ID = 0

	if err := s.DB.WithContext(ctx).Create(guest).Error; err != nil {
		return fmt.Errorf("failed to create guest: %w", err)
	}

	s.Log.Debug("guest created", zap.Uint("guest_id", guest.ID))
	return nil
}

func (s *GuestService) List(ctx context.Context) ([]models.Guest, error) {
	var guests []models.Guest
	if err := s.DB.WithContext(ctx).Order("id DESC").Find(&guests).Error; err != nil {
		return nil, fmt.Errorf("failed to list guests: %w", err)
	}
	return guests, nil
}

func (s *GuestService) GetByID(ctx context.Context, id uint) (*models.Guest, error) {
	var guest models.Guest
	if err := s.DB.WithContext(ctx).First(&guest, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("guest %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to load guest %d: %w", id, err)
	}
	return &guest, nil
}

func (s *GuestService) Update(ctx context.Context, id uint, in models.Guest) (*models.Guest, error) {
	if err := normalizeGuest(&in); err != nil {
		return nil, err
	}

	guest, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.DB.WithContext(ctx).Model(guest).Updates(map[string]interface{}{
		"name":  in.Name,
		"phone": in.Phone,
		"email": in.Email,
	}).Error; err != nil {
		return nil, fmt.Errorf("failed to update guest %d: %w", id, err)
	}

	guest.Name, guest.Phone, guest.Email = in.Name, in.Phone, in.Email
	return guest, nil
}

// Delete refuses to remove a guest that still has reservations.
func (s *GuestService) Delete(ctx context.Context, id uint) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var guest models.Guest
		if err := tx.First(&guest, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("guest %d: %w", id, ErrNotFound)
			}
			return err
		}

		var refs int64
		if err := tx.Model(&models.Reservation{}).Where("guest_id = ?", id).Count(&refs).Error; err != nil {
			return err
		}
		if refs > 0 {
			return fmt.Errorf("guest %d has %d reservation(s): %w", id, refs, ErrGuestInUse)
		}

		if err := tx.Delete(&guest).Error; err != nil {
			if isForeignKeyError(err) {
				return fmt.Errorf("guest %d: %w", id, ErrGuestInUse)
			}
			return err
		}

		s.Log.Info("guest deleted", zap.Uint("guest_id", id))
		return nil
	})
}
