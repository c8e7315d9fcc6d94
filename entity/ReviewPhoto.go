package entity

import (
	"gorm.io/gorm"
)

type ReviewPhoto struct {
	gorm.Model
	ReviewID uint   `gorm:"not null;index" json:"reviewId"`
	Path     string `gorm:"not null" json:"path"`
}
