package models

import "time"

// Owner holds a stake in one or more properties through PropertyOwner rows.
type Owner struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	FirstName      string    `gorm:"size:50;not null" json:"first_name" validate:"required"`
	LastName       string    `gorm:"size:50;not null" json:"last_name" validate:"required"`
	Email          string    `gorm:"size:100;uniqueIndex;not null" json:"email" validate:"required,email"`
	Phone          string    `gorm:"size:20" json:"phone" validate:"omitempty,phone"`
	MailingAddress string    `gorm:"size:255" json:"mailing_address"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Properties []PropertyOwner `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE" json:"properties,omitempty"`
}
