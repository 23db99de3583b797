package store

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"realestatedb/internal/models"
	"realestatedb/internal/validate"
)

var ownerFilterColumns = map[string]bool{
	"first_name": true,
	"last_name":  true,
	"email":      true,
}

func (s *Store) CreateOwner(ctx context.Context, o *models.Owner) error {
	if err := s.val.Struct(o); err != nil {
		return s.fail("owner.create", "owner", "", o, err)
	}
	if err := s.db.WithContext(ctx).Create(o).Error; err != nil {
		return s.fail("owner.create", "owner", "", o, err)
	}
	return nil
}

func (s *Store) GetOwner(ctx context.Context, id uint) (*models.Owner, error) {
	var o models.Owner
	if err := s.db.WithContext(ctx).First(&o, id).Error; err != nil {
		return nil, s.fail("owner.get", "owner", formatID(id), id, err)
	}
	return &o, nil
}

func (s *Store) ListOwners(ctx context.Context, opts ListOptions) ([]models.Owner, error) {
	q, err := s.query(ctx, &models.Owner{}, opts, ownerFilterColumns)
	if err != nil {
		return nil, s.fail("owner.list", "owner", "", opts.Filters, err)
	}
	var rows []models.Owner
	if err := q.Order("id").Find(&rows).Error; err != nil {
		return nil, s.fail("owner.list", "owner", "", opts.Filters, err)
	}
	return rows, nil
}

func (s *Store) UpdateOwner(ctx context.Context, id uint, fields map[string]string) (*models.Owner, error) {
	var o models.Owner
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&o, id).Error; err != nil {
			return err
		}
		for field, value := range fields {
			if err := applyOwnerField(&o, field, value); err != nil {
				return err
			}
		}
		if err := s.val.Struct(&o); err != nil {
			return err
		}
		return tx.Save(&o).Error
	})
	if err != nil {
		return nil, s.fail("owner.update", "owner", formatID(id), fields, err)
	}
	return &o, nil
}

// DeleteOwner refuses to remove an owner who still holds a nonzero
// stake in any property, even though storage would cascade the join
// rows away. The check and the delete share one transaction.
func (s *Store) DeleteOwner(ctx context.Context, id uint) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var o models.Owner
		if err := tx.First(&o, id).Error; err != nil {
			return err
		}
		var stakes int64
		if err := tx.Model(&models.PropertyOwner{}).
			Where("owner_id = ? AND ownership_percentage > 0", id).
			Count(&stakes).Error; err != nil {
			return err
		}
		if stakes > 0 {
			return &ReferenceError{
				Entity:   "owner",
				Relation: "property ownership",
				Reason:   fmt.Sprintf("owner %d still holds a stake in %d property(ies); remove the ownership records first", id, stakes),
			}
		}
		return tx.Delete(&models.Owner{}, id).Error
	})
	if err != nil {
		return s.fail("owner.delete", "owner", formatID(id), id, err)
	}
	return nil
}

func applyOwnerField(o *models.Owner, field, value string) error {
	switch field {
	case "first_name":
		o.FirstName = value
	case "last_name":
		o.LastName = value
	case "email":
		o.Email = value
	case "phone":
		o.Phone = value
	case "mailing_address":
		o.MailingAddress = value
	default:
		return &validate.FieldError{Field: field, Reason: "unknown owner field"}
	}
	return nil
}
