package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// lateFeeRate is the penalty applied to payments made after the due date.
var lateFeeRate = decimal.NewFromFloat(0.10)

// Payment records rent received against a lease.
type Payment struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	LeaseID     uint            `gorm:"index;not null" json:"lease_id" validate:"required"`
	Lease       *Lease          `gorm:"foreignKey:LeaseID" json:"lease,omitempty"`
	TenantID    *uint           `gorm:"index" json:"tenant_id"`
	Amount      decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"amount"`
	PaymentDate time.Time       `gorm:"not null" json:"payment_date"`
	Method      PaymentMethod   `gorm:"size:20;not null" json:"method" validate:"required"`
	ReceivedBy  *uint           `gorm:"index" json:"received_by"`
	Receiver    *Employee       `gorm:"foreignKey:ReceivedBy" json:"receiver,omitempty"`
	CreatedAt   time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"autoUpdateTime" json:"updated_at"`

	Audits []PaymentAudit `gorm:"foreignKey:PaymentID;constraint:OnDelete:CASCADE" json:"audits,omitempty"`
}

// AfterCreate appends a PaymentAudit row when the payment date is
// strictly later than the due date for the payment's calendar month,
// computed from the lease's due day. The late fee is 10% of the amount.
// Running inside the insert's transaction keeps the audit atomic with
// the payment.
func (p *Payment) AfterCreate(tx *gorm.DB) error {
	var lease Lease
	if err := tx.Select("due_day").First(&lease, p.LeaseID).Error; err != nil {
		return err
	}
	due := dueDateFor(p.PaymentDate, lease.DueDay)
	if !p.PaymentDate.After(due) {
		return nil
	}
	audit := PaymentAudit{
		PaymentID: p.ID,
		LateFee:   p.Amount.Mul(lateFeeRate).Round(2),
	}
	return tx.Create(&audit).Error
}

// dueDateFor resolves a lease's due day within the month of ts, clamping
// to the last day of months shorter than the due day.
func dueDateFor(ts time.Time, dueDay int) time.Time {
	lastDay := time.Date(ts.Year(), ts.Month()+1, 0, 0, 0, 0, 0, ts.Location()).Day()
	if dueDay > lastDay {
		dueDay = lastDay
	}
	return time.Date(ts.Year(), ts.Month(), dueDay, 23, 59, 59, 0, ts.Location())
}
