package entity

import (
	"gorm.io/gorm"
)

const (
	TicketOpen       = "open"
	TicketInProgress = "in_progress"
	TicketClosed     = "closed"

	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

type SupportTicket struct {
	gorm.Model
	UserID   uint   `gorm:"not null;index" json:"userId"`
	User     User   `json:"-"`
	Subject  string `gorm:"not null" json:"subject"`
	Status   string `gorm:"not null;default:open" json:"status"`
	Priority string `gorm:"not null;default:medium" json:"priority"`

	Messages []SupportMessage `gorm:"foreignKey:TicketID" json:"messages,omitempty"`
}
