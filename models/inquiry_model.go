package models

import (
	"time"
)

const (
	InquiryOpen      = "OPEN"
	InquiryResponded = "RESPONDED"
)

type Inquiry struct {
	ID         uint  `gorm:"primaryKey" json:"id"`
	PropertyID uint  `gorm:"not null;index" json:"property_id"`
	CustomerID *uint `json:"customer_id"`

	Name    string `gorm:"size:255;not null" json:"name"`
	Email   string `gorm:"size:255;not null" json:"email"`
	Phone   string `gorm:"size:30" json:"phone"`
	Message string `gorm:"type:text;not null" json:"message"`

	Status string `gorm:"size:20;not null;default:'OPEN'" json:"status"`

	Property Property `gorm:"foreignKey:PropertyID" json:"property,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}
