package models

import (
	"time"
)

const (
	RoleCustomer = "CUSTOMER"
	RoleBroker   = "BROKER"
	RoleAdmin    = "ADMIN"
)

type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"size:255;not null" json:"name"`
	Email    string `gorm:"size:255;not null;unique" json:"email"`
	Password string `gorm:"not null" json:"-"`
	Role     string `gorm:"size:20;not null;default:'CUSTOMER'" json:"role"`

	IsActive bool `gorm:"default:true" json:"is_active"`

	BrokerProfile *BrokerProfile `gorm:"foreignKey:UserID" json:"broker_profile,omitempty"`

	ResetPasswordToken          *string    `gorm:"size:255;unique" json:"-"`
	ResetPasswordTokenExpiresAt *time.Time `json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
