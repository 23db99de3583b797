package store

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"realestatedb/internal/models"
	"realestatedb/internal/validate"
)

var paymentFilterColumns = map[string]bool{
	"lease_id":    true,
	"tenant_id":   true,
	"method":      true,
	"received_by": true,
}

// CreatePayment inserts a payment. The late-payment audit runs inside
// the insert's transaction via the model hook, so the payment and any
// audit row commit or roll back together.
func (s *Store) CreatePayment(ctx context.Context, p *models.Payment) error {
	if p.PaymentDate.IsZero() {
		p.PaymentDate = time.Now()
	}
	if !p.Method.Valid() {
		return s.fail("payment.create", "payment", "", p,
			&validate.FieldError{Field: "method", Reason: "must be Credit Card, Check, Bank Transfer or Cash"})
	}
	if !p.Amount.IsPositive() {
		return s.fail("payment.create", "payment", "", p,
			&validate.FieldError{Field: "amount", Reason: "must be greater than zero"})
	}
	if err := s.val.Struct(p); err != nil {
		return s.fail("payment.create", "payment", "", p, err)
	}
	if err := s.requireRef(ctx, s.db, &models.Lease{}, "payment", "lease", p.LeaseID); err != nil {
		return s.fail("payment.create", "payment", "", p, err)
	}
	if p.TenantID != nil {
		if err := s.requireRef(ctx, s.db, &models.Tenant{}, "payment", "tenant", *p.TenantID); err != nil {
			return s.fail("payment.create", "payment", "", p, err)
		}
	}
	if p.ReceivedBy != nil {
		if err := s.requireRef(ctx, s.db, &models.Employee{}, "payment", "employee", *p.ReceivedBy); err != nil {
			return s.fail("payment.create", "payment", "", p, err)
		}
	}
	if err := s.db.WithContext(ctx).Create(p).Error; err != nil {
		return s.fail("payment.create", "payment", "", p, err)
	}
	return nil
}

func (s *Store) GetPayment(ctx context.Context, id uint) (*models.Payment, error) {
	var p models.Payment
	if err := s.db.WithContext(ctx).First(&p, id).Error; err != nil {
		return nil, s.fail("payment.get", "payment", formatID(id), id, err)
	}
	return &p, nil
}

func (s *Store) ListPayments(ctx context.Context, opts ListOptions) ([]models.Payment, error) {
	q, err := s.query(ctx, &models.Payment{}, opts, paymentFilterColumns)
	if err != nil {
		return nil, s.fail("payment.list", "payment", "", opts.Filters, err)
	}
	var rows []models.Payment
	if err := q.Order("id").Find(&rows).Error; err != nil {
		return nil, s.fail("payment.list", "payment", "", opts.Filters, err)
	}
	return rows, nil
}

func (s *Store) UpdatePayment(ctx context.Context, id uint, fields map[string]string) (*models.Payment, error) {
	var p models.Payment
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&p, id).Error; err != nil {
			return err
		}
		for field, value := range fields {
			if err := s.applyPaymentField(ctx, tx, &p, field, value); err != nil {
				return err
			}
		}
		if !p.Method.Valid() {
			return &validate.FieldError{Field: "method", Reason: "must be Credit Card, Check, Bank Transfer or Cash"}
		}
		if err := s.val.Struct(&p); err != nil {
			return err
		}
		return tx.Save(&p).Error
	})
	if err != nil {
		return nil, s.fail("payment.update", "payment", formatID(id), fields, err)
	}
	return &p, nil
}

func (s *Store) DeletePayment(ctx context.Context, id uint) error {
	res := s.db.WithContext(ctx).Delete(&models.Payment{}, id)
	if res.Error != nil {
		return s.fail("payment.delete", "payment", formatID(id), id, res.Error)
	}
	if res.RowsAffected == 0 {
		return s.fail("payment.delete", "payment", formatID(id), id, gorm.ErrRecordNotFound)
	}
	return nil
}

// ListPaymentAudits returns the append-only late-fee log, newest first.
func (s *Store) ListPaymentAudits(ctx context.Context, opts ListOptions) ([]models.PaymentAudit, error) {
	q, err := s.query(ctx, &models.PaymentAudit{}, opts, map[string]bool{"payment_id": true})
	if err != nil {
		return nil, s.fail("paymentaudit.list", "payment audit", "", opts.Filters, err)
	}
	var rows []models.PaymentAudit
	if err := q.Order("audit_timestamp DESC").Find(&rows).Error; err != nil {
		return nil, s.fail("paymentaudit.list", "payment audit", "", opts.Filters, err)
	}
	return rows, nil
}

func (s *Store) applyPaymentField(ctx context.Context, tx *gorm.DB, p *models.Payment, field, value string) error {
	switch field {
	case "lease_id":
		id, err := parseUint(field, value)
		if err != nil {
			return err
		}
		if err := s.requireRef(ctx, tx, &models.Lease{}, "payment", "lease", id); err != nil {
			return err
		}
		p.LeaseID = id
	case "tenant_id":
		if value == "" {
			p.TenantID = nil
			return nil
		}
		id, err := parseUint(field, value)
		if err != nil {
			return err
		}
		if err := s.requireRef(ctx, tx, &models.Tenant{}, "payment", "tenant", id); err != nil {
			return err
		}
		p.TenantID = &id
	case "amount":
		amount, err := decimal.NewFromString(value)
		if err != nil || !amount.IsPositive() {
			return &validate.FieldError{Field: field, Reason: "expected a positive decimal amount"}
		}
		p.Amount = amount
	case "payment_date":
		ts, err := validate.ParseDate(field, value)
		if err != nil {
			return err
		}
		p.PaymentDate = ts
	case "method":
		p.Method = models.PaymentMethod(value)
	case "received_by":
		if value == "" {
			p.ReceivedBy = nil
			return nil
		}
		id, err := parseUint(field, value)
		if err != nil {
			return err
		}
		if err := s.requireRef(ctx, tx, &models.Employee{}, "payment", "employee", id); err != nil {
			return err
		}
		p.ReceivedBy = &id
	default:
		return &validate.FieldError{Field: field, Reason: "unknown payment field"}
	}
	return nil
}
