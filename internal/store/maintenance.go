package store

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"realestatedb/internal/models"
	"realestatedb/internal/validate"
)

var maintenanceFilterColumns = map[string]bool{
	"property_id": true,
	"tenant_id":   true,
	"employee_id": true,
	"status":      true,
}

// CreateMaintenanceRequest inserts a request. The tenant and employee
// references are optional; the request date defaults to today.
func (s *Store) CreateMaintenanceRequest(ctx context.Context, r *models.MaintenanceRequest) error {
	if r.RequestDate.IsZero() {
		r.RequestDate = time.Now()
	}
	if r.Status == "" {
		r.Status = models.RequestStatusOpen
	}
	if !r.Status.Valid() {
		return s.fail("maintenance.create", "maintenance request", "", r,
			&validate.FieldError{Field: "status", Reason: "must be Open, In Progress or Completed"})
	}
	if err := s.val.Struct(r); err != nil {
		return s.fail("maintenance.create", "maintenance request", "", r, err)
	}
	if err := s.requireRef(ctx, s.db, &models.Property{}, "maintenance request", "property", r.PropertyID); err != nil {
		return s.fail("maintenance.create", "maintenance request", "", r, err)
	}
	if r.TenantID != nil {
		if err := s.requireRef(ctx, s.db, &models.Tenant{}, "maintenance request", "tenant", *r.TenantID); err != nil {
			return s.fail("maintenance.create", "maintenance request", "", r, err)
		}
	}
	if r.EmployeeID != nil {
		if err := s.requireRef(ctx, s.db, &models.Employee{}, "maintenance request", "employee", *r.EmployeeID); err != nil {
			return s.fail("maintenance.create", "maintenance request", "", r, err)
		}
	}
	if err := s.db.WithContext(ctx).Create(r).Error; err != nil {
		return s.fail("maintenance.create", "maintenance request", "", r, err)
	}
	return nil
}

func (s *Store) GetMaintenanceRequest(ctx context.Context, id uint) (*models.MaintenanceRequest, error) {
	var r models.MaintenanceRequest
	if err := s.db.WithContext(ctx).First(&r, id).Error; err != nil {
		return nil, s.fail("maintenance.get", "maintenance request", formatID(id), id, err)
	}
	return &r, nil
}

func (s *Store) ListMaintenanceRequests(ctx context.Context, opts ListOptions) ([]models.MaintenanceRequest, error) {
	q, err := s.query(ctx, &models.MaintenanceRequest{}, opts, maintenanceFilterColumns)
	if err != nil {
		return nil, s.fail("maintenance.list", "maintenance request", "", opts.Filters, err)
	}
	var rows []models.MaintenanceRequest
	if err := q.Order("id").Find(&rows).Error; err != nil {
		return nil, s.fail("maintenance.list", "maintenance request", "", opts.Filters, err)
	}
	return rows, nil
}

func (s *Store) UpdateMaintenanceRequest(ctx context.Context, id uint, fields map[string]string) (*models.MaintenanceRequest, error) {
	var r models.MaintenanceRequest
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&r, id).Error; err != nil {
			return err
		}
		for field, value := range fields {
			if err := s.applyMaintenanceField(ctx, tx, &r, field, value); err != nil {
				return err
			}
		}
		if !r.Status.Valid() {
			return &validate.FieldError{Field: "status", Reason: "must be Open, In Progress or Completed"}
		}
		if err := s.val.Struct(&r); err != nil {
			return err
		}
		return tx.Save(&r).Error
	})
	if err != nil {
		return nil, s.fail("maintenance.update", "maintenance request", formatID(id), fields, err)
	}
	return &r, nil
}

func (s *Store) DeleteMaintenanceRequest(ctx context.Context, id uint) error {
	res := s.db.WithContext(ctx).Delete(&models.MaintenanceRequest{}, id)
	if res.Error != nil {
		return s.fail("maintenance.delete", "maintenance request", formatID(id), id, res.Error)
	}
	if res.RowsAffected == 0 {
		return s.fail("maintenance.delete", "maintenance request", formatID(id), id, gorm.ErrRecordNotFound)
	}
	return nil
}

func (s *Store) applyMaintenanceField(ctx context.Context, tx *gorm.DB, r *models.MaintenanceRequest, field, value string) error {
	switch field {
	case "property_id":
		id, err := parseUint(field, value)
		if err != nil {
			return err
		}
		if err := s.requireRef(ctx, tx, &models.Property{}, "maintenance request", "property", id); err != nil {
			return err
		}
		r.PropertyID = id
	case "tenant_id":
		if value == "" {
			r.TenantID = nil
			return nil
		}
		id, err := parseUint(field, value)
		if err != nil {
			return err
		}
		if err := s.requireRef(ctx, tx, &models.Tenant{}, "maintenance request", "tenant", id); err != nil {
			return err
		}
		r.TenantID = &id
	case "employee_id":
		if value == "" {
			r.EmployeeID = nil
			return nil
		}
		id, err := parseUint(field, value)
		if err != nil {
			return err
		}
		if err := s.requireRef(ctx, tx, &models.Employee{}, "maintenance request", "employee", id); err != nil {
			return err
		}
		r.EmployeeID = &id
	case "description":
		r.Description = value
	case "request_date":
		ts, err := validate.ParseDate(field, value)
		if err != nil {
			return err
		}
		r.RequestDate = ts
	case "completion_date":
		if value == "" {
			r.CompletionDate = nil
			return nil
		}
		ts, err := validate.ParseDate(field, value)
		if err != nil {
			return err
		}
		r.CompletionDate = &ts
	case "status":
		r.Status = models.RequestStatus(value)
	case "cost":
		if value == "" {
			r.Cost = decimal.NullDecimal{}
			return nil
		}
		amount, err := decimal.NewFromString(value)
		if err != nil {
			return &validate.FieldError{Field: field, Reason: "expected a decimal amount"}
		}
		r.Cost = decimal.NullDecimal{Decimal: amount, Valid: true}
	default:
		return &validate.FieldError{Field: field, Reason: "unknown maintenance request field"}
	}
	return nil
}
