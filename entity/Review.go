package entity

import (
	"time"

	"gorm.io/gorm"
)

type Review struct {
	gorm.Model
	UserID       uint       `json:"userId"`
	User         User       `json:"-"`
	RestaurantID uint       `json:"restaurantId"`
	Restaurant   Restaurant `json:"-"`

	// snapshot of the restaurant name at review time, survives renames
	RestaurantName string `json:"restaurantName"`

	Rating  int    `gorm:"not null" json:"rating"` // 1..5
	Comment string `json:"comment"`

	// per-criterion sub-ratings
	FoodRating        int `json:"foodRating"`
	ServiceRating     int `json:"serviceRating"`
	AtmosphereRating  int `json:"atmosphereRating"`
	PriceRating       int `json:"priceRating"`
	CleanlinessRating int `json:"cleanlinessRating"`

	// delivery-specific
	DeliverySpeedRating   int `json:"deliverySpeedRating"`
	DeliveryQualityRating int `json:"deliveryQualityRating"`

	Likes int `gorm:"not null;default:0" json:"likes"`

	// manager reply
	Response     string     `json:"response,omitempty"`
	ResponseDate *time.Time `json:"responseDate,omitempty"`
	ManagerName  string     `json:"managerName,omitempty"`

	// soft-delete flag for moderation; NULL rows predate the column and
	// count as active
	Deleted bool `gorm:"default:false" json:"-"`

	Photos []ReviewPhoto `json:"photos,omitempty"`
	Votes  []ReviewVote  `json:"-"`
}
