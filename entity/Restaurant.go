package entity

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Restaurant struct {
	gorm.Model
	Name         string         `gorm:"not null" json:"name"`
	Slug         string         `gorm:"uniqueIndex;not null" json:"slug"`
	Category     string         `json:"category"`
	PriceRange   string         `json:"priceRange"`
	MinPrice     int64          `json:"minPrice"`
	DeliveryTime int            `json:"deliveryTime"` // minutes
	Criteria     datatypes.JSON `json:"criteria"`
	IsActive     bool           `gorm:"not null;default:true" json:"isActive"`

	Reviews  []Review `json:"-"`
	Managers []User   `gorm:"foreignKey:RestaurantID" json:"-"`
}
