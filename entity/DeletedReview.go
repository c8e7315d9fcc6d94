package entity

import "time"

// DeletedReview is the immutable audit copy written when a moderator
// soft-deletes a review. It is a separate row from the flagged live one,
// so the history survives even a later hard delete. Never updated,
// never removed.
type DeletedReview struct {
	ID             uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	ReviewID       uint      `gorm:"not null;index" json:"reviewId"`
	UserID         uint      `gorm:"not null" json:"userId"`
	RestaurantName string    `json:"restaurantName"`
	Rating         int       `json:"rating"`
	Comment        string    `gorm:"type:text" json:"comment"`
	DeletedBy      uint      `gorm:"not null;index" json:"deletedBy"`
	DeletionReason string    `gorm:"not null" json:"deletionReason"`
	AdminName      string    `json:"adminName"`
	DeletedAt      time.Time `gorm:"not null;autoCreateTime" json:"deletedAt"`
}

func (DeletedReview) TableName() string {
	return "deleted_reviews"
}
