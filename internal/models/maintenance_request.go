package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// MaintenanceRequest tracks repair work on a property. Tenant and
// employee references are optional and survive the referenced row's
// deletion as nulls.
type MaintenanceRequest struct {
	ID             uint                `gorm:"primaryKey" json:"id"`
	PropertyID     uint                `gorm:"index;not null" json:"property_id" validate:"required"`
	Property       *Property           `gorm:"foreignKey:PropertyID" json:"property,omitempty"`
	TenantID       *uint               `gorm:"index" json:"tenant_id"`
	Tenant         *Tenant             `gorm:"foreignKey:TenantID" json:"tenant,omitempty"`
	EmployeeID     *uint               `gorm:"index" json:"employee_id"`
	Employee       *Employee           `gorm:"foreignKey:EmployeeID" json:"employee,omitempty"`
	Description    string              `gorm:"type:text;not null" json:"description" validate:"required"`
	RequestDate    time.Time           `gorm:"not null" json:"request_date"`
	CompletionDate *time.Time          `json:"completion_date"`
	Status         RequestStatus       `gorm:"size:20;not null;default:Open" json:"status" validate:"required"`
	Cost           decimal.NullDecimal `gorm:"type:decimal(10,2)" json:"cost"`
	CreatedAt      time.Time           `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time           `gorm:"autoUpdateTime" json:"updated_at"`
}
