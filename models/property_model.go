package models

import (
	"time"
)

const (
	PropertyActive   = "ACTIVE"
	PropertySold     = "SOLD"
	PropertyRented   = "RENTED"
	PropertyInactive = "INACTIVE"
)

type Property struct {
	ID            uint   `gorm:"primaryKey" json:"id"`
	BrokerID      uint   `gorm:"not null;index" json:"broker_id"`
	ReferenceCode string `gorm:"size:12;not null;unique" json:"reference_code"`

	Title       string  `gorm:"size:255;not null" json:"title"`
	Description string  `gorm:"type:text" json:"description"`
	Price       float64 `gorm:"type:numeric(14,2);not null" json:"price"`
	Currency    string  `gorm:"size:3;not null;default:'ETB'" json:"currency"`
	Type        string  `gorm:"size:20;not null" json:"type"`
	Status      string  `gorm:"size:20;not null;default:'ACTIVE'" json:"status"`

	Address string `gorm:"size:255" json:"address"`
	City    string `gorm:"size:100" json:"city"`
	State   string `gorm:"size:100" json:"state"`
	Country string `gorm:"size:100;default:'Ethiopia'" json:"country"`

	Bedrooms  *int     `json:"bedrooms"`
	Bathrooms *int     `json:"bathrooms"`
	AreaSqm   *float64 `json:"area_sqm"`

	Images []PropertyImage `gorm:"foreignKey:PropertyID" json:"images"`
	Broker User            `gorm:"foreignKey:BrokerID" json:"broker,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type PropertyImage struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	PropertyID uint   `gorm:"not null;index" json:"property_id"`
	URL        string `gorm:"size:255;not null" json:"url"`
	Position   int    `gorm:"default:0" json:"position"`
}
