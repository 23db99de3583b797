package store

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"realestatedb/internal/models"
	"realestatedb/internal/validate"
)

var hundred = decimal.NewFromInt(100)

// CreatePropertyOwner links an owner to a property with an ownership
// share. The per-property percentage sum is deliberately not checked
// against 100.
func (s *Store) CreatePropertyOwner(ctx context.Context, po *models.PropertyOwner) error {
	if err := validatePercentage(po.OwnershipPercentage); err != nil {
		return s.fail("propertyowner.create", "property owner", "", po, err)
	}
	if err := s.requireRef(ctx, s.db, &models.Property{}, "property owner", "property", po.PropertyID); err != nil {
		return s.fail("propertyowner.create", "property owner", "", po, err)
	}
	if err := s.requireRef(ctx, s.db, &models.Owner{}, "property owner", "owner", po.OwnerID); err != nil {
		return s.fail("propertyowner.create", "property owner", "", po, err)
	}
	if err := s.db.WithContext(ctx).Create(po).Error; err != nil {
		return s.fail("propertyowner.create", "property owner", "", po, err)
	}
	return nil
}

func (s *Store) ListPropertyOwners(ctx context.Context, opts ListOptions) ([]models.PropertyOwner, error) {
	q, err := s.query(ctx, &models.PropertyOwner{}, opts, map[string]bool{"property_id": true, "owner_id": true})
	if err != nil {
		return nil, s.fail("propertyowner.list", "property owner", "", opts.Filters, err)
	}
	var rows []models.PropertyOwner
	if err := q.Order("property_id, owner_id").Find(&rows).Error; err != nil {
		return nil, s.fail("propertyowner.list", "property owner", "", opts.Filters, err)
	}
	return rows, nil
}

// UpdateOwnershipPercentage changes the share for one property-owner pair.
func (s *Store) UpdateOwnershipPercentage(ctx context.Context, propertyID, ownerID uint, pct decimal.Decimal) (*models.PropertyOwner, error) {
	pair := fmt.Sprintf("%d/%d", propertyID, ownerID)
	if err := validatePercentage(pct); err != nil {
		return nil, s.fail("propertyowner.update", "property owner", pair, pct, err)
	}
	var po models.PropertyOwner
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("property_id = ? AND owner_id = ?", propertyID, ownerID).First(&po).Error; err != nil {
			return err
		}
		po.OwnershipPercentage = pct
		return tx.Save(&po).Error
	})
	if err != nil {
		return nil, s.fail("propertyowner.update", "property owner", pair, pct, err)
	}
	return &po, nil
}

func (s *Store) DeletePropertyOwner(ctx context.Context, propertyID, ownerID uint) error {
	pair := fmt.Sprintf("%d/%d", propertyID, ownerID)
	res := s.db.WithContext(ctx).
		Where("property_id = ? AND owner_id = ?", propertyID, ownerID).
		Delete(&models.PropertyOwner{})
	if res.Error != nil {
		return s.fail("propertyowner.delete", "property owner", pair, nil, res.Error)
	}
	if res.RowsAffected == 0 {
		return s.fail("propertyowner.delete", "property owner", pair, nil, gorm.ErrRecordNotFound)
	}
	return nil
}

func validatePercentage(pct decimal.Decimal) error {
	if pct.IsNegative() || pct.GreaterThan(hundred) {
		return &validate.FieldError{Field: "ownership_percentage", Reason: "must be between 0 and 100"}
	}
	return nil
}
