package entity

import (
	"gorm.io/gorm"
)

const (
	RoleUser      = "user"
	RoleManager   = "manager"
	RoleAdmin     = "admin"
	RoleHeadAdmin = "head_admin"
)

type User struct {
	gorm.Model
	Name     string `json:"name"`
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `json:"-"`
	Role     string `gorm:"not null;default:user" json:"role"`

	// set only while role=manager, points at the managed restaurant
	RestaurantID *uint       `json:"restaurantId,omitempty"`
	Restaurant   *Restaurant `json:"-"`

	IsBlocked     bool   `gorm:"not null;default:false" json:"isBlocked"`
	BlockedReason string `json:"blockedReason,omitempty"`

	Avatar     []byte `json:"-" gorm:"column:avatar"`
	AvatarType string `json:"-" gorm:"column:avatar_type"`

	// Relations — preload only when needed
	Reviews []Review        `json:"-"`
	Votes   []ReviewVote    `json:"-"`
	Tickets []SupportTicket `gorm:"foreignKey:UserID" json:"-"`
}

// IsStaff reports whether the user handles other users' content
// (support replies on closed tickets, review responses).
func (u *User) IsStaff() bool {
	return u.Role == RoleManager || u.Role == RoleAdmin || u.Role == RoleHeadAdmin
}
