package store

import (
	"context"

	"gorm.io/gorm"

	"realestatedb/internal/models"
	"realestatedb/internal/validate"
)

var tenantFilterColumns = map[string]bool{
	"first_name": true,
	"last_name":  true,
	"email":      true,
	"employer":   true,
}

func (s *Store) CreateTenant(ctx context.Context, t *models.Tenant) error {
	if err := s.val.Struct(t); err != nil {
		return s.fail("tenant.create", "tenant", "", t, err)
	}
	if err := s.db.WithContext(ctx).Create(t).Error; err != nil {
		return s.fail("tenant.create", "tenant", "", t, err)
	}
	return nil
}

func (s *Store) GetTenant(ctx context.Context, id uint) (*models.Tenant, error) {
	var t models.Tenant
	if err := s.db.WithContext(ctx).First(&t, id).Error; err != nil {
		return nil, s.fail("tenant.get", "tenant", formatID(id), id, err)
	}
	return &t, nil
}

func (s *Store) ListTenants(ctx context.Context, opts ListOptions) ([]models.Tenant, error) {
	q, err := s.query(ctx, &models.Tenant{}, opts, tenantFilterColumns)
	if err != nil {
		return nil, s.fail("tenant.list", "tenant", "", opts.Filters, err)
	}
	var rows []models.Tenant
	if err := q.Order("id").Find(&rows).Error; err != nil {
		return nil, s.fail("tenant.list", "tenant", "", opts.Filters, err)
	}
	return rows, nil
}

func (s *Store) UpdateTenant(ctx context.Context, id uint, fields map[string]string) (*models.Tenant, error) {
	var t models.Tenant
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&t, id).Error; err != nil {
			return err
		}
		for field, value := range fields {
			if err := applyTenantField(&t, field, value); err != nil {
				return err
			}
		}
		if err := s.val.Struct(&t); err != nil {
			return err
		}
		return tx.Save(&t).Error
	})
	if err != nil {
		return nil, s.fail("tenant.update", "tenant", formatID(id), fields, err)
	}
	return &t, nil
}

func (s *Store) DeleteTenant(ctx context.Context, id uint) error {
	res := s.db.WithContext(ctx).Delete(&models.Tenant{}, id)
	if res.Error != nil {
		return s.fail("tenant.delete", "tenant", formatID(id), id, res.Error)
	}
	if res.RowsAffected == 0 {
		return s.fail("tenant.delete", "tenant", formatID(id), id, gorm.ErrRecordNotFound)
	}
	return nil
}

func applyTenantField(t *models.Tenant, field, value string) error {
	switch field {
	case "first_name":
		t.FirstName = value
	case "last_name":
		t.LastName = value
	case "email":
		t.Email = value
	case "phone":
		t.Phone = value
	case "employer":
		t.Employer = value
	case "emergency_contact":
		t.EmergencyContact = value
	default:
		return &validate.FieldError{Field: field, Reason: "unknown tenant field"}
	}
	return nil
}
