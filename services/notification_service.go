package services

import (
	"log"

	"github.com/kitaezov/FeedbackDeliveryService-sub003/entity"
	"github.com/kitaezov/FeedbackDeliveryService-sub003/pkg/apperr"
	"github.com/kitaezov/FeedbackDeliveryService-sub003/repository"
	"github.com/kitaezov/FeedbackDeliveryService-sub003/ws"
)

// NotificationService persists notification rows and fans them out over
// the push channel. Failures on this path are logged and swallowed; the
// triggering request must not fail because a browser tab missed an event.
type NotificationService struct {
	Repo *repository.NotificationRepository
	Hub  *ws.Hub
}

func NewNotificationService(repo *repository.NotificationRepository, hub *ws.Hub) *NotificationService {
	return &NotificationService{Repo: repo, Hub: hub}
}

func (s *NotificationService) NewReview(review *entity.Review) {
	n := &entity.Notification{
		Type:  entity.NotificationNewReview,
		Title: "New review for " + review.RestaurantName,
		Body:  review.Comment,
	}
	if err := s.Repo.Create(n); err != nil {
		log.Printf("save notification failed: %v", err)
	}

	if s.Hub != nil {
		s.Hub.Publish(ws.Event{
			Type: entity.NotificationNewReview,
			Payload: map[string]any{
				"reviewId":     review.ID,
				"restaurantId": review.RestaurantID,
				"rating":       review.Rating,
			},
		})
	}
}

func (s *NotificationService) NewTicket(ticket *entity.SupportTicket) {
	n := &entity.Notification{
		Type:  entity.NotificationNewTicket,
		Title: "New support ticket: " + ticket.Subject,
	}
	if err := s.Repo.Create(n); err != nil {
		log.Printf("save notification failed: %v", err)
	}

	if s.Hub != nil {
		s.Hub.Publish(ws.Event{
			Type: entity.NotificationNewTicket,
			Payload: map[string]any{
				"ticketId": ticket.ID,
				"priority": ticket.Priority,
			},
		})
	}
}

func (s *NotificationService) ListForUser(userID uint, limit, offset int) ([]entity.Notification, error) {
	limit, offset = clampPaging(limit, offset)

	items, err := s.Repo.ListForUser(userID, limit, offset)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return items, nil
}

func (s *NotificationService) MarkRead(id, userID uint) error {
	if err := s.Repo.MarkRead(id, userID); err != nil {
		return apperr.Internal(err)
	}
	return nil
}
