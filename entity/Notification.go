package entity

import (
	"gorm.io/gorm"
)

const (
	NotificationNewReview = "new_review"
	NotificationNewTicket = "new_ticket"
)

type Notification struct {
	gorm.Model
	// nil UserID = broadcast to everyone
	UserID *uint  `gorm:"index" json:"userId,omitempty"`
	Type   string `gorm:"not null" json:"type"`
	Title  string `json:"title"`
	Body   string `json:"body"`
	IsRead bool   `gorm:"not null;default:false" json:"isRead"`
}
