package models

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ErrLeaseOverlap is returned when a new lease starts inside the date
// range of an existing lease on the same property.
var ErrLeaseOverlap = errors.New("lease dates overlap an existing lease for this property")

// Lease binds a tenant to a property for a date range at a monthly rent.
type Lease struct {
	ID              uint                `gorm:"primaryKey" json:"id"`
	PropertyID      uint                `gorm:"index;not null" json:"property_id" validate:"required"`
	Property        *Property           `gorm:"foreignKey:PropertyID" json:"property,omitempty"`
	TenantID        uint                `gorm:"index;not null" json:"tenant_id" validate:"required"`
	Tenant          *Tenant             `gorm:"foreignKey:TenantID" json:"tenant,omitempty"`
	StartDate       time.Time           `gorm:"not null" json:"start_date"`
	EndDate         time.Time           `gorm:"not null" json:"end_date"`
	MonthlyRent     decimal.Decimal     `gorm:"type:decimal(10,2);not null" json:"monthly_rent"`
	SecurityDeposit decimal.NullDecimal `gorm:"type:decimal(10,2)" json:"security_deposit"`
	Status          LeaseStatus         `gorm:"size:20;not null;default:Active" json:"status" validate:"required"`
	DueDay          int                 `gorm:"not null;default:1" json:"due_day" validate:"required,gte=1,lte=31"`
	CreatedAt       time.Time           `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time           `gorm:"autoUpdateTime" json:"updated_at"`

	Payments []Payment `gorm:"foreignKey:LeaseID;constraint:OnDelete:CASCADE" json:"payments,omitempty"`
}

// BeforeCreate rejects a lease whose start date falls inside an existing
// lease's range for the same property. The overlap is reported as
// ErrLeaseOverlap rather than a constraint violation.
func (l *Lease) BeforeCreate(tx *gorm.DB) error {
	var count int64
	err := tx.Model(&Lease{}).
		Where("property_id = ? AND start_date <= ? AND end_date >= ?", l.PropertyID, l.StartDate, l.StartDate).
		Count(&count).Error
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrLeaseOverlap
	}
	return nil
}

// BeforeSave forces the status to Expired whenever the end date is in
// the past, regardless of the caller-supplied status.
func (l *Lease) BeforeSave(tx *gorm.DB) error {
	if !l.EndDate.IsZero() && l.EndDate.Before(time.Now()) {
		l.Status = LeaseStatusExpired
	}
	return nil
}
