package store

import (
	"context"
	"strconv"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"realestatedb/internal/models"
	"realestatedb/internal/validate"
)

var leaseFilterColumns = map[string]bool{
	"property_id": true,
	"tenant_id":   true,
	"status":      true,
	"due_day":     true,
}

// CreateLease inserts a lease after verifying the referenced property
// and tenant exist. The overlap guard and the expired-status rule run
// inside the insert's transaction via the model hooks.
func (s *Store) CreateLease(ctx context.Context, l *models.Lease) error {
	if l.Status == "" {
		l.Status = models.LeaseStatusActive
	}
	if !l.Status.Valid() {
		return s.fail("lease.create", "lease", "", l,
			&validate.FieldError{Field: "status", Reason: "must be Active, Expired or Terminated"})
	}
	if !l.MonthlyRent.IsPositive() {
		return s.fail("lease.create", "lease", "", l,
			&validate.FieldError{Field: "monthly_rent", Reason: "must be greater than zero"})
	}
	if l.EndDate.Before(l.StartDate) {
		return s.fail("lease.create", "lease", "", l,
			&validate.FieldError{Field: "end_date", Reason: "must not precede the start date"})
	}
	if err := s.val.Struct(l); err != nil {
		return s.fail("lease.create", "lease", "", l, err)
	}
	if err := s.requireRef(ctx, s.db, &models.Property{}, "lease", "property", l.PropertyID); err != nil {
		return s.fail("lease.create", "lease", "", l, err)
	}
	if err := s.requireRef(ctx, s.db, &models.Tenant{}, "lease", "tenant", l.TenantID); err != nil {
		return s.fail("lease.create", "lease", "", l, err)
	}
	if err := s.db.WithContext(ctx).Create(l).Error; err != nil {
		return s.fail("lease.create", "lease", "", l, err)
	}
	return nil
}

func (s *Store) GetLease(ctx context.Context, id uint) (*models.Lease, error) {
	var l models.Lease
	if err := s.db.WithContext(ctx).First(&l, id).Error; err != nil {
		return nil, s.fail("lease.get", "lease", formatID(id), id, err)
	}
	return &l, nil
}

func (s *Store) ListLeases(ctx context.Context, opts ListOptions) ([]models.Lease, error) {
	q, err := s.query(ctx, &models.Lease{}, opts, leaseFilterColumns)
	if err != nil {
		return nil, s.fail("lease.list", "lease", "", opts.Filters, err)
	}
	var rows []models.Lease
	if err := q.Order("id").Find(&rows).Error; err != nil {
		return nil, s.fail("lease.list", "lease", "", opts.Filters, err)
	}
	return rows, nil
}

// UpdateLease applies a partial update. Saving through the model runs
// the BeforeSave hook, so an end date moved into the past forces the
// status to Expired no matter what the caller submitted.
func (s *Store) UpdateLease(ctx context.Context, id uint, fields map[string]string) (*models.Lease, error) {
	var l models.Lease
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&l, id).Error; err != nil {
			return err
		}
		for field, value := range fields {
			if err := s.applyLeaseField(ctx, tx, &l, field, value); err != nil {
				return err
			}
		}
		if !l.Status.Valid() {
			return &validate.FieldError{Field: "status", Reason: "must be Active, Expired or Terminated"}
		}
		if err := s.val.Struct(&l); err != nil {
			return err
		}
		return tx.Save(&l).Error
	})
	if err != nil {
		return nil, s.fail("lease.update", "lease", formatID(id), fields, err)
	}
	return &l, nil
}

func (s *Store) DeleteLease(ctx context.Context, id uint) error {
	res := s.db.WithContext(ctx).Delete(&models.Lease{}, id)
	if res.Error != nil {
		return s.fail("lease.delete", "lease", formatID(id), id, res.Error)
	}
	if res.RowsAffected == 0 {
		return s.fail("lease.delete", "lease", formatID(id), id, gorm.ErrRecordNotFound)
	}
	return nil
}

func (s *Store) applyLeaseField(ctx context.Context, tx *gorm.DB, l *models.Lease, field, value string) error {
	switch field {
	case "property_id":
		id, err := parseUint(field, value)
		if err != nil {
			return err
		}
		if err := s.requireRef(ctx, tx, &models.Property{}, "lease", "property", id); err != nil {
			return err
		}
		l.PropertyID = id
	case "tenant_id":
		id, err := parseUint(field, value)
		if err != nil {
			return err
		}
		if err := s.requireRef(ctx, tx, &models.Tenant{}, "lease", "tenant", id); err != nil {
			return err
		}
		l.TenantID = id
	case "start_date":
		ts, err := validate.ParseDate(field, value)
		if err != nil {
			return err
		}
		l.StartDate = ts
	case "end_date":
		ts, err := validate.ParseDate(field, value)
		if err != nil {
			return err
		}
		l.EndDate = ts
	case "monthly_rent":
		amount, err := decimal.NewFromString(value)
		if err != nil || !amount.IsPositive() {
			return &validate.FieldError{Field: field, Reason: "expected a positive decimal amount"}
		}
		l.MonthlyRent = amount
	case "security_deposit":
		if value == "" {
			l.SecurityDeposit = decimal.NullDecimal{}
			return nil
		}
		amount, err := decimal.NewFromString(value)
		if err != nil {
			return &validate.FieldError{Field: field, Reason: "expected a decimal amount"}
		}
		l.SecurityDeposit = decimal.NullDecimal{Decimal: amount, Valid: true}
	case "status":
		l.Status = models.LeaseStatus(value)
	case "due_day":
		day, err := strconv.Atoi(value)
		if err != nil || day < 1 || day > 31 {
			return &validate.FieldError{Field: field, Reason: "expected a day of month between 1 and 31"}
		}
		l.DueDay = day
	default:
		return &validate.FieldError{Field: field, Reason: "unknown lease field"}
	}
	return nil
}

func parseUint(field, value string) (uint, error) {
	n, err := strconv.ParseUint(value, 10, 32)
	if err != nil {
		return 0, &validate.FieldError{Field: field, Reason: "expected a numeric id"}
	}
	return uint(n), nil
}
