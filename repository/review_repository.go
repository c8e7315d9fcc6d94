package repository

import (
	"gorm.io/gorm"

	"github.com/kitaezov/FeedbackDeliveryService-sub003/entity"
)

type ReviewRepository struct {
	DB *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{DB: db}
}

// activeReviews narrows a query to reviews visible to the public.
// Rows predating the deleted column carry NULL and count as active.
func activeReviews(db *gorm.DB) *gorm.DB {
	return db.Where("deleted = ? OR deleted IS NULL", false)
}

func (r *ReviewRepository) FindByID(id uint) (*entity.Review, error) {
	var rev entity.Review
	if err := r.DB.First(&rev, id).Error; err != nil {
		return nil, err
	}
	return &rev, nil
}

func (r *ReviewRepository) ListActive(limit, offset int) ([]entity.Review, error) {
	var reviews []entity.Review
	err := activeReviews(r.DB).
		Preload("Photos").
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&reviews).Error
	return reviews, err
}

func (r *ReviewRepository) ListActiveForRestaurant(restaurantID uint, limit, offset int) ([]entity.Review, error) {
	var reviews []entity.Review
	err := activeReviews(r.DB.Where("restaurant_id = ?", restaurantID)).
		Preload("Photos").
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&reviews).Error
	return reviews, err
}

func (r *ReviewRepository) ListForUser(userID uint, limit, offset int) ([]entity.Review, error) {
	var reviews []entity.Review
	err := activeReviews(r.DB.Where("user_id = ?", userID)).
		Preload("Photos").
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&reviews).Error
	return reviews, err
}

type RatingAggregate struct {
	Avg   float64 `json:"avgRating"`
	Count int64   `json:"total"`
}

func (r *ReviewRepository) AggregateForRestaurant(restaurantID uint) (RatingAggregate, error) {
	var a RatingAggregate
	err := activeReviews(r.DB.Model(&entity.Review{}).Where("restaurant_id = ?", restaurantID)).
		Select("COALESCE(AVG(rating), 0) AS avg, COUNT(*) AS count").
		Scan(&a).Error
	return a, err
}

func (r *ReviewRepository) SetResponse(reviewID uint, updates map[string]any) error {
	return r.DB.Model(&entity.Review{}).Where("id = ?", reviewID).Updates(updates).Error
}

// ListDeleted pages through the audit table; moderatorID narrows to one
// moderator when non-nil. Read-only.
func (r *ReviewRepository) ListDeleted(limit, offset int, moderatorID *uint) ([]entity.DeletedReview, int64, error) {
	q := r.DB.Model(&entity.DeletedReview{})
	if moderatorID != nil {
		q = q.Where("deleted_by = ?", *moderatorID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var items []entity.DeletedReview
	err := q.Order("deleted_at DESC").Limit(limit).Offset(offset).Find(&items).Error
	return items, total, err
}

func (r *ReviewRepository) FindDeletedByReviewID(reviewID uint) (*entity.DeletedReview, error) {
	var d entity.DeletedReview
	if err := r.DB.Where("review_id = ?", reviewID).First(&d).Error; err != nil {
		return nil, err
	}
	return &d, nil
}
