package entity

import (
	"gorm.io/gorm"
)

// SupportMessage is one entry in a ticket's append-only message log.
type SupportMessage struct {
	gorm.Model
	TicketID   uint          `gorm:"not null;index" json:"ticketId"`
	Ticket     SupportTicket `json:"-"`
	UserID     uint          `gorm:"not null" json:"userId"`
	AuthorName string        `json:"authorName"`
	AuthorRole string        `json:"authorRole"`
	Body       string        `gorm:"type:text;not null" json:"body"`
}
