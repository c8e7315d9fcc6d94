package services

import (
	"strings"

	"github.com/kitaezov/FeedbackDeliveryService-sub003/entity"
	"github.com/kitaezov/FeedbackDeliveryService-sub003/pkg/apperr"
	"github.com/kitaezov/FeedbackDeliveryService-sub003/repository"
)

type SupportService struct {
	Repo  *repository.SupportRepository
	Users *repository.UserRepository

	Notifier *NotificationService
}

func NewSupportService(repo *repository.SupportRepository, users *repository.UserRepository, notifier *NotificationService) *SupportService {
	return &SupportService{Repo: repo, Users: users, Notifier: notifier}
}

func validPriority(p string) bool {
	return p == entity.PriorityLow || p == entity.PriorityMedium || p == entity.PriorityHigh
}

func validStatus(s string) bool {
	return s == entity.TicketOpen || s == entity.TicketInProgress || s == entity.TicketClosed
}

// CreateTicket opens a ticket with its first message.
func (s *SupportService) CreateTicket(userID uint, subject, body, priority string) (*entity.SupportTicket, error) {
	subject = strings.TrimSpace(subject)
	body = strings.TrimSpace(body)
	if subject == "" {
		return nil, apperr.Validation("subject is required")
	}
	if body == "" {
		return nil, apperr.Validation("message body is required")
	}
	if priority == "" {
		priority = entity.PriorityMedium
	}
	if !validPriority(priority) {
		return nil, apperr.Validationf("invalid priority %q", priority)
	}

	author, err := s.Users.FindByID(userID)
	if err != nil {
		return nil, apperr.NotFound("user not found")
	}

	ticket := &entity.SupportTicket{
		UserID:   userID,
		Subject:  subject,
		Status:   entity.TicketOpen,
		Priority: priority,
	}
	if err := s.Repo.CreateTicket(ticket); err != nil {
		return nil, apperr.Internal(err)
	}

	msg := &entity.SupportMessage{
		TicketID:   ticket.ID,
		UserID:     userID,
		AuthorName: author.Name,
		AuthorRole: author.Role,
		Body:       body,
	}
	if err := s.Repo.CreateMessage(msg); err != nil {
		return nil, apperr.Internal(err)
	}
	ticket.Messages = []entity.SupportMessage{*msg}

	if s.Notifier != nil {
		s.Notifier.NewTicket(ticket)
	}
	return ticket, nil
}

// GetTicket returns the ticket with its message log. Owners see their own
// tickets, staff see all.
func (s *SupportService) GetTicket(actorID uint, actorRole string, ticketID uint) (*entity.SupportTicket, error) {
	ticket, err := s.Repo.FindTicketByID(ticketID)
	if err != nil {
		return nil, apperr.NotFound("ticket not found")
	}
	if ticket.UserID != actorID && !StaffRole(actorRole) {
		return nil, apperr.Forbidden("no access to this ticket")
	}

	msgs, err := s.Repo.FindMessages(ticket.ID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	ticket.Messages = msgs
	return ticket, nil
}

func (s *SupportService) ListTickets(actorID uint, actorRole, status string) ([]entity.SupportTicket, error) {
	if StaffRole(actorRole) {
		tickets, err := s.Repo.ListTickets(status)
		if err != nil {
			return nil, apperr.Internal(err)
		}
		return tickets, nil
	}

	tickets, err := s.Repo.ListTicketsForUser(actorID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return tickets, nil
}

// AddMessage appends to the ticket's log. A closed ticket accepts
// messages from staff only.
func (s *SupportService) AddMessage(actorID uint, actorRole string, ticketID uint, body string) (*entity.SupportMessage, error) {
	body = strings.TrimSpace(body)
	if body == "" {
		return nil, apperr.Validation("message body is required")
	}

	ticket, err := s.Repo.FindTicketByID(ticketID)
	if err != nil {
		return nil, apperr.NotFound("ticket not found")
	}

	staff := StaffRole(actorRole)
	if ticket.UserID != actorID && !staff {
		return nil, apperr.Forbidden("no access to this ticket")
	}
	if ticket.Status == entity.TicketClosed && !staff {
		return nil, apperr.Conflict("ticket is closed")
	}

	author, err := s.Users.FindByID(actorID)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	msg := &entity.SupportMessage{
		TicketID:   ticket.ID,
		UserID:     actorID,
		AuthorName: author.Name,
		AuthorRole: author.Role,
		Body:       body,
	}
	if err := s.Repo.CreateMessage(msg); err != nil {
		return nil, apperr.Internal(err)
	}

	// first staff reply moves an open ticket into progress
	if staff && ticket.Status == entity.TicketOpen {
		if err := s.Repo.UpdateTicketStatus(ticket.ID, entity.TicketInProgress); err != nil {
			return nil, apperr.Internal(err)
		}
	}
	return msg, nil
}

func (s *SupportService) UpdateStatus(ticketID uint, status string) error {
	if !validStatus(status) {
		return apperr.Validationf("invalid status %q", status)
	}
	if _, err := s.Repo.FindTicketByID(ticketID); err != nil {
		return apperr.NotFound("ticket not found")
	}
	if err := s.Repo.UpdateTicketStatus(ticketID, status); err != nil {
		return apperr.Internal(err)
	}
	return nil
}
