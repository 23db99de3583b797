package models

import "time"

// Employee is a staff member. Deleting an employee never cascades; the
// references from maintenance requests and payments are set to null.
type Employee struct {
	ID        uint         `gorm:"primaryKey" json:"id"`
	FirstName string       `gorm:"size:50;not null" json:"first_name" validate:"required"`
	LastName  string       `gorm:"size:50;not null" json:"last_name" validate:"required"`
	Email     string       `gorm:"size:100;uniqueIndex;not null" json:"email" validate:"required,email"`
	Phone     string       `gorm:"size:20" json:"phone" validate:"omitempty,phone"`
	Role      EmployeeRole `gorm:"size:20;not null" json:"role" validate:"required"`
	HireDate  time.Time    `json:"hire_date"`
	CreatedAt time.Time    `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time    `gorm:"autoUpdateTime" json:"updated_at"`

	AssignedRequests []MaintenanceRequest `gorm:"foreignKey:EmployeeID;constraint:OnDelete:SET NULL" json:"assigned_requests,omitempty"`
	ReceivedPayments []Payment            `gorm:"foreignKey:ReceivedBy;constraint:OnDelete:SET NULL" json:"received_payments,omitempty"`
}
