package store

import (
	"context"
	"strconv"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"realestatedb/internal/models"
	"realestatedb/internal/validate"
)

var propertyFilterColumns = map[string]bool{
	"city":          true,
	"state":         true,
	"zip_code":      true,
	"property_type": true,
	"year_built":    true,
}

// CreateProperty validates and inserts a property, filling in its
// generated id.
func (s *Store) CreateProperty(ctx context.Context, p *models.Property) error {
	if !p.PropertyType.Valid() {
		return s.fail("property.create", "property", "", p,
			&validate.FieldError{Field: "property_type", Reason: "must be one of the known property types"})
	}
	if err := s.val.Struct(p); err != nil {
		return s.fail("property.create", "property", "", p, err)
	}
	if err := s.db.WithContext(ctx).Create(p).Error; err != nil {
		return s.fail("property.create", "property", "", p, err)
	}
	return nil
}

func (s *Store) GetProperty(ctx context.Context, id uint) (*models.Property, error) {
	var p models.Property
	if err := s.db.WithContext(ctx).First(&p, id).Error; err != nil {
		return nil, s.fail("property.get", "property", formatID(id), id, err)
	}
	return &p, nil
}

func (s *Store) ListProperties(ctx context.Context, opts ListOptions) ([]models.Property, error) {
	q, err := s.query(ctx, &models.Property{}, opts, propertyFilterColumns)
	if err != nil {
		return nil, s.fail("property.list", "property", "", opts.Filters, err)
	}
	var rows []models.Property
	if err := q.Order("id").Find(&rows).Error; err != nil {
		return nil, s.fail("property.list", "property", "", opts.Filters, err)
	}
	return rows, nil
}

// UpdateProperty applies a partial field update to one row. The load
// and save share one transaction so the row cannot vanish in between.
func (s *Store) UpdateProperty(ctx context.Context, id uint, fields map[string]string) (*models.Property, error) {
	var p models.Property
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&p, id).Error; err != nil {
			return err
		}
		for field, value := range fields {
			if err := applyPropertyField(&p, field, value); err != nil {
				return err
			}
		}
		if !p.PropertyType.Valid() {
			return &validate.FieldError{Field: "property_type", Reason: "must be one of the known property types"}
		}
		if err := s.val.Struct(&p); err != nil {
			return err
		}
		return tx.Save(&p).Error
	})
	if err != nil {
		return nil, s.fail("property.update", "property", formatID(id), fields, err)
	}
	return &p, nil
}

func (s *Store) DeleteProperty(ctx context.Context, id uint) error {
	res := s.db.WithContext(ctx).Delete(&models.Property{}, id)
	if res.Error != nil {
		return s.fail("property.delete", "property", formatID(id), id, res.Error)
	}
	if res.RowsAffected == 0 {
		return s.fail("property.delete", "property", formatID(id), id, gorm.ErrRecordNotFound)
	}
	return nil
}

func applyPropertyField(p *models.Property, field, value string) error {
	switch field {
	case "address":
		p.Address = value
	case "city":
		p.City = value
	case "state":
		p.State = value
	case "zip_code":
		p.ZipCode = value
	case "property_type":
		p.PropertyType = models.PropertyType(value)
	case "square_feet":
		n, err := strconv.Atoi(value)
		if err != nil {
			return &validate.FieldError{Field: field, Reason: "expected an integer"}
		}
		p.SquareFeet = n
	case "year_built":
		n, err := strconv.Atoi(value)
		if err != nil {
			return &validate.FieldError{Field: field, Reason: "expected an integer"}
		}
		p.YearBuilt = n
	case "purchase_date":
		ts, err := validate.ParseDate(field, value)
		if err != nil {
			return err
		}
		p.PurchaseDate = ts
	case "purchase_price":
		amount, err := decimal.NewFromString(value)
		if err != nil {
			return &validate.FieldError{Field: field, Reason: "expected a decimal amount"}
		}
		p.PurchasePrice = amount
	default:
		return &validate.FieldError{Field: field, Reason: "unknown property field"}
	}
	return nil
}
