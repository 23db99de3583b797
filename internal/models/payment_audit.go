package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentAudit is an append-only log row created automatically when a
// payment postdates its lease's due day for the payment's month.
type PaymentAudit struct {
	ID             uint            `gorm:"primaryKey" json:"id"`
	PaymentID      uint            `gorm:"index;not null" json:"payment_id"`
	Payment        *Payment        `gorm:"foreignKey:PaymentID" json:"payment,omitempty"`
	LateFee        decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"late_fee"`
	AuditTimestamp time.Time       `gorm:"autoCreateTime" json:"audit_timestamp"`
}
