package repository

import (
	"gorm.io/gorm"

	"github.com/kitaezov/FeedbackDeliveryService-sub003/entity"
)

type SupportRepository struct {
	DB *gorm.DB
}

func NewSupportRepository(db *gorm.DB) *SupportRepository {
	return &SupportRepository{DB: db}
}

func (r *SupportRepository) CreateTicket(t *entity.SupportTicket) error {
	return r.DB.Create(t).Error
}

func (r *SupportRepository) FindTicketByID(id uint) (*entity.SupportTicket, error) {
	var t entity.SupportTicket
	if err := r.DB.First(&t, id).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *SupportRepository) ListTicketsForUser(userID uint) ([]entity.SupportTicket, error) {
	var tickets []entity.SupportTicket
	err := r.DB.Where("user_id = ?", userID).Order("id DESC").Find(&tickets).Error
	return tickets, err
}

func (r *SupportRepository) ListTickets(status string) ([]entity.SupportTicket, error) {
	q := r.DB.Order("id DESC")
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var tickets []entity.SupportTicket
	err := q.Find(&tickets).Error
	return tickets, err
}

func (r *SupportRepository) UpdateTicketStatus(id uint, status string) error {
	return r.DB.Model(&entity.SupportTicket{}).Where("id = ?", id).
		Update("status", status).Error
}

func (r *SupportRepository) CreateMessage(m *entity.SupportMessage) error {
	return r.DB.Create(m).Error
}

// FindMessages returns the ticket's message log in insertion order.
func (r *SupportRepository) FindMessages(ticketID uint) ([]entity.SupportMessage, error) {
	var msgs []entity.SupportMessage
	err := r.DB.Where("ticket_id = ?", ticketID).
		Order("created_at ASC").
		Find(&msgs).Error
	return msgs, err
}
