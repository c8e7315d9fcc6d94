package repository

import (
	"gorm.io/gorm"

	"github.com/kitaezov/FeedbackDeliveryService-sub003/entity"
)

type RestaurantRepository struct {
	DB *gorm.DB
}

func NewRestaurantRepository(db *gorm.DB) *RestaurantRepository {
	return &RestaurantRepository{DB: db}
}

func (r *RestaurantRepository) Create(rest *entity.Restaurant) error {
	return r.DB.Create(rest).Error
}

func (r *RestaurantRepository) FindByID(id uint) (*entity.Restaurant, error) {
	var rest entity.Restaurant
	if err := r.DB.First(&rest, id).Error; err != nil {
		return nil, err
	}
	return &rest, nil
}

func (r *RestaurantRepository) FindBySlug(slug string) (*entity.Restaurant, error) {
	var rest entity.Restaurant
	if err := r.DB.Where("slug = ?", slug).First(&rest).Error; err != nil {
		return nil, err
	}
	return &rest, nil
}

func (r *RestaurantRepository) CountBySlug(slug string) (int64, error) {
	var count int64
	err := r.DB.Model(&entity.Restaurant{}).Where("slug = ?", slug).Count(&count).Error
	return count, err
}

func (r *RestaurantRepository) ListActive(limit, offset int) ([]entity.Restaurant, int64, error) {
	var total int64
	if err := r.DB.Model(&entity.Restaurant{}).Where("is_active = ?", true).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var items []entity.Restaurant
	err := r.DB.Where("is_active = ?", true).
		Order("id DESC").Limit(limit).Offset(offset).
		Find(&items).Error
	return items, total, err
}

func (r *RestaurantRepository) Update(id uint, updates map[string]any) error {
	return r.DB.Model(&entity.Restaurant{}).Where("id = ?", id).Updates(updates).Error
}

func (r *RestaurantRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.Restaurant{}, id).Error
}
