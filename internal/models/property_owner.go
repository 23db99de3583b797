package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PropertyOwner joins properties and owners with an ownership share.
// The per-property sum of percentages is not enforced to equal 100.
type PropertyOwner struct {
	PropertyID          uint            `gorm:"primaryKey;autoIncrement:false" json:"property_id" validate:"required"`
	Property            *Property       `gorm:"foreignKey:PropertyID" json:"property,omitempty"`
	OwnerID             uint            `gorm:"primaryKey;autoIncrement:false" json:"owner_id" validate:"required"`
	Owner               *Owner          `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`
	OwnershipPercentage decimal.Decimal `gorm:"type:decimal(5,2);not null" json:"ownership_percentage"`
	CreatedAt           time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt           time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}
