package services

import (
	"errors"
	"fmt"

	"hotel-frontdesk/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AggregationPolicy decides how a new charge lands in the billing ledger.
// Apply runs inside the caller's transaction and fills in bill.ID.
type AggregationPolicy interface {
	Apply(tx *gorm.DB, bill *models.Billing) error
}

// ReplacePolicy keeps at most one row per reservation and category: an
// existing row has its amount overwritten, otherwise one is inserted.
// Reapplying the same amount leaves the ledger unchanged.
type ReplacePolicy struct{}

func (ReplacePolicy) Apply(tx *gorm.DB, bill *models.Billing) error {
	var existing models.Billing
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("reservation_id = ? AND category = ?", bill.ReservationID, bill.Category).
		First(&existing).Error

	switch {
	case err == nil:
		if err := tx.Model(&existing).Update("amount", bill.Amount).Error; err != nil {
			return fmt.Errorf("failed to update %s bill %d: %w", bill.Category, existing.ID, err)
		}
		existing.Amount = bill.Amount
		*bill = existing
		return nil

	case errors.Is(err, gorm.ErrRecordNotFound):
		return AppendPolicy{}.Apply(tx, bill)

	default:
		return err
	}
}

// AppendPolicy always writes a new row; charges are never merged.
type AppendPolicy struct{}

func (AppendPolicy) Apply(tx *gorm.DB, bill *models.Billing) error {
	bill.ID = 0
	if bill.Status == "" {
		bill.Status = models.BillingStatusPending
	}
	if err := tx.Create(bill).Error; err != nil {
		return fmt.Errorf("failed to insert %s bill: %w", bill.Category, err)
	}
	return nil
}

// PolicyFor maps a billing category to its aggregation policy.
func PolicyFor(category string) AggregationPolicy {
	switch category {
	case models.CategoryRoomStay:
		return ReplacePolicy{}
	default:
		return AppendPolicy{}
	}
}
