package models

import "time"

// Tenant rents properties through leases. Deleting a tenant cascades to
// its leases but only clears the tenant reference on maintenance
// requests and payments.
type Tenant struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	FirstName        string    `gorm:"size:50;not null" json:"first_name" validate:"required"`
	LastName         string    `gorm:"size:50;not null" json:"last_name" validate:"required"`
	Email            string    `gorm:"size:100;uniqueIndex;not null" json:"email" validate:"required,email"`
	Phone            string    `gorm:"size:20" json:"phone" validate:"omitempty,phone"`
	Employer         string    `gorm:"size:100" json:"employer"`
	EmergencyContact string    `gorm:"size:20" json:"emergency_contact" validate:"omitempty,phone"`
	CreatedAt        time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Leases              []Lease              `gorm:"foreignKey:TenantID;constraint:OnDelete:CASCADE" json:"leases,omitempty"`
	MaintenanceRequests []MaintenanceRequest `gorm:"foreignKey:TenantID;constraint:OnDelete:SET NULL" json:"maintenance_requests,omitempty"`
	Payments            []Payment            `gorm:"foreignKey:TenantID;constraint:OnDelete:SET NULL" json:"payments,omitempty"`
}
