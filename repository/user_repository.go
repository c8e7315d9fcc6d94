package repository

import (
	"gorm.io/gorm"

	"github.com/kitaezov/FeedbackDeliveryService-sub003/entity"
)

// UserRepository talks to the users table and nothing else.
type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) FindByEmail(email string) (*entity.User, error) {
	var user entity.User
	if err := r.DB.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) CountByEmail(email string) (int64, error) {
	var count int64
	if err := r.DB.Model(&entity.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *UserRepository) Create(user *entity.User) error {
	return r.DB.Create(user).Error
}

func (r *UserRepository) FindByID(id uint) (*entity.User, error) {
	var user entity.User
	if err := r.DB.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) Update(userID uint, updates map[string]any) error {
	return r.DB.Model(&entity.User{}).Where("id = ?", userID).Updates(updates).Error
}

// UpdateRole persists a role change; restaurantID stays nil unless the new
// role is manager.
func (r *UserRepository) UpdateRole(userID uint, role string, restaurantID *uint) error {
	return r.DB.Model(&entity.User{}).Where("id = ?", userID).
		Updates(map[string]any{
			"role":          role,
			"restaurant_id": restaurantID,
		}).Error
}

func (r *UserRepository) SetBlocked(userID uint, blocked bool, reason string) error {
	return r.DB.Model(&entity.User{}).Where("id = ?", userID).
		Updates(map[string]any{
			"is_blocked":     blocked,
			"blocked_reason": reason,
		}).Error
}

func (r *UserRepository) List(limit, offset int) ([]entity.User, int64, error) {
	var total int64
	if err := r.DB.Model(&entity.User{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var users []entity.User
	err := r.DB.Order("id DESC").Limit(limit).Offset(offset).Find(&users).Error
	return users, total, err
}

func (r *UserRepository) SaveAvatar(userID uint, data []byte, contentType string) error {
	return r.DB.Model(&entity.User{}).Where("id = ?", userID).
		Updates(map[string]any{
			"avatar":      data,
			"avatar_type": contentType,
		}).Error
}

func (r *UserRepository) GetAvatar(userID uint) (*entity.User, error) {
	var u entity.User
	if err := r.DB.Select("avatar, avatar_type").First(&u, userID).Error; err != nil {
		return nil, err
	}
	return &u, nil
}
