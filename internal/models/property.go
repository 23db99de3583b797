package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Property is the root entity: a building or unit under management.
// Deleting a property cascades to its leases, maintenance requests
// and ownership records.
type Property struct {
	ID            uint            `gorm:"primaryKey" json:"id"`
	Address       string          `gorm:"size:255;not null" json:"address" validate:"required"`
	City          string          `gorm:"size:100;not null" json:"city" validate:"required"`
	State         string          `gorm:"size:2;not null" json:"state" validate:"required,len=2,alpha"`
	ZipCode       string          `gorm:"size:10;not null" json:"zip_code" validate:"required,zipcode"`
	PropertyType  PropertyType    `gorm:"size:20;not null" json:"property_type" validate:"required"`
	SquareFeet    int             `json:"square_feet" validate:"omitempty,gt=0"`
	YearBuilt     int             `json:"year_built" validate:"omitempty,gte=1800,lte=2100"`
	PurchaseDate  time.Time       `json:"purchase_date"`
	PurchasePrice decimal.Decimal `gorm:"type:decimal(12,2)" json:"purchase_price"`
	CreatedAt     time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time       `gorm:"autoUpdateTime" json:"updated_at"`

	Leases              []Lease              `gorm:"foreignKey:PropertyID;constraint:OnDelete:CASCADE" json:"leases,omitempty"`
	MaintenanceRequests []MaintenanceRequest `gorm:"foreignKey:PropertyID;constraint:OnDelete:CASCADE" json:"maintenance_requests,omitempty"`
	Owners              []PropertyOwner      `gorm:"foreignKey:PropertyID;constraint:OnDelete:CASCADE" json:"owners,omitempty"`
}
