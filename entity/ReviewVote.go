package entity

import (
	"time"
)

const (
	VoteUp   = "up"
	VoteDown = "down"
)

// ReviewVote holds one vote per (review, user) pair; the composite unique
// index is what makes a second vote a no-op conflict rather than an
// overwrite.
type ReviewVote struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	ReviewID  uint      `gorm:"not null;uniqueIndex:idx_review_user_vote" json:"reviewId"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_review_user_vote" json:"userId"`
	VoteType  string    `gorm:"not null" json:"voteType"` // up | down
	CreatedAt time.Time `json:"createdAt"`
}
