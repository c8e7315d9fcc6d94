package repository

import (
	"gorm.io/gorm"

	"github.com/kitaezov/FeedbackDeliveryService-sub003/entity"
)

type NotificationRepository struct {
	DB *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{DB: db}
}

func (r *NotificationRepository) Create(n *entity.Notification) error {
	return r.DB.Create(n).Error
}

// ListForUser returns the user's own notifications plus broadcasts.
func (r *NotificationRepository) ListForUser(userID uint, limit, offset int) ([]entity.Notification, error) {
	var items []entity.Notification
	err := r.DB.Where("user_id = ? OR user_id IS NULL", userID).
		Order("id DESC").Limit(limit).Offset(offset).
		Find(&items).Error
	return items, err
}

func (r *NotificationRepository) MarkRead(id, userID uint) error {
	return r.DB.Model(&entity.Notification{}).
		Where("id = ? AND (user_id = ? OR user_id IS NULL)", id, userID).
		Update("is_read", true).Error
}
