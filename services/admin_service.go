package services

import (
	"strings"

	"gorm.io/gorm"

	"github.com/kitaezov/FeedbackDeliveryService-sub003/entity"
	"github.com/kitaezov/FeedbackDeliveryService-sub003/pkg/apperr"
	"github.com/kitaezov/FeedbackDeliveryService-sub003/repository"
)

// AdminService owns the role-hierarchy gated operations: role changes,
// account blocking and the review moderation workflow.
type AdminService struct {
	DB      *gorm.DB
	Users   *repository.UserRepository
	Reviews *repository.ReviewRepository
	Rests   *repository.RestaurantRepository
	Support *repository.SupportRepository

	// the distinguished account nobody else may touch
	HeadAdminEmail string
}

func NewAdminService(
	db *gorm.DB,
	users *repository.UserRepository,
	reviews *repository.ReviewRepository,
	rests *repository.RestaurantRepository,
	support *repository.SupportRepository,
	headAdminEmail string,
) *AdminService {
	return &AdminService{
		DB:             db,
		Users:          users,
		Reviews:        reviews,
		Rests:          rests,
		Support:        support,
		HeadAdminEmail: headAdminEmail,
	}
}

// UpdateUserRole reassigns the target's role. The checks run in a fixed
// order; the first violated rule decides the error.
func (s *AdminService) UpdateUserRole(actorID uint, actorRole string, targetID uint, newRole string, restaurantID *uint) (*entity.User, error) {
	if !ValidRole(newRole) {
		return nil, apperr.Validationf("invalid role %q", newRole)
	}
	if newRole == entity.RoleManager {
		if restaurantID == nil {
			return nil, apperr.Validation("restaurantId is required for the manager role")
		}
		if _, err := s.Rests.FindByID(*restaurantID); err != nil {
			return nil, apperr.Validation("restaurant not found")
		}
	}

	target, err := s.Users.FindByID(targetID)
	if err != nil {
		return nil, apperr.NotFound("user not found")
	}

	// no touching equals or betters
	if RoleLevel(target.Role) >= RoleLevel(actorRole) {
		return nil, apperr.Forbidden("cannot modify a user of equal or higher role")
	}
	// no escalation to or beyond the actor's own level
	if RoleLevel(newRole) >= RoleLevel(actorRole) {
		return nil, apperr.Forbidden("cannot assign a role at or above your own")
	}
	// only head admin creates admins
	if actorRole == entity.RoleAdmin && newRole == entity.RoleAdmin {
		return nil, apperr.Forbidden("only the head admin may assign the admin role")
	}
	// managers may only demote to user
	if actorRole == entity.RoleManager && newRole != entity.RoleUser {
		return nil, apperr.Forbidden("managers may only demote to the user role")
	}
	if target.Email == s.HeadAdminEmail && actorID != target.ID {
		return nil, apperr.Forbidden("the head admin account cannot be modified")
	}

	var rid *uint
	if newRole == entity.RoleManager {
		rid = restaurantID
	}
	if err := s.Users.UpdateRole(target.ID, newRole, rid); err != nil {
		return nil, apperr.Internal(err)
	}

	target.Role = newRole
	target.RestaurantID = rid
	return target, nil
}

// BlockUser flags the account and records the reason; blocked users are
// refused a session at login until unblocked.
func (s *AdminService) BlockUser(actorID uint, actorRole string, targetID uint, reason string) error {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return apperr.Validation("block reason is required")
	}

	target, err := s.Users.FindByID(targetID)
	if err != nil {
		return apperr.NotFound("user not found")
	}

	if !CanModerate(actorRole, target.Role) {
		return apperr.Forbidden("cannot block a user of equal or higher role")
	}
	if target.Email == s.HeadAdminEmail && actorID != target.ID {
		return apperr.Forbidden("the head admin account cannot be blocked")
	}

	if err := s.Users.SetBlocked(target.ID, true, reason); err != nil {
		return apperr.Internal(err)
	}
	return nil
}

// UnblockUser clears the flag and the stored reason. Unlike BlockUser it
// carries no hierarchy check beyond the target existing.
func (s *AdminService) UnblockUser(targetID uint) error {
	target, err := s.Users.FindByID(targetID)
	if err != nil {
		return apperr.NotFound("user not found")
	}
	if err := s.Users.SetBlocked(target.ID, false, ""); err != nil {
		return apperr.Internal(err)
	}
	return nil
}

// DeleteReview soft-deletes the live row and writes the audit copy in one
// transaction, so a partial failure cannot leave the two out of step.
func (s *AdminService) DeleteReview(actorID uint, reviewID uint, reason string) error {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return apperr.Validation("deletion reason is required")
	}

	review, err := s.Reviews.FindByID(reviewID)
	if err != nil {
		return apperr.NotFound("review not found")
	}
	if review.Deleted {
		return apperr.Conflict("review already deleted")
	}

	moderator, err := s.Users.FindByID(actorID)
	if err != nil {
		return apperr.Internal(err)
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		audit := entity.DeletedReview{
			ReviewID:       review.ID,
			UserID:         review.UserID,
			RestaurantName: review.RestaurantName,
			Rating:         review.Rating,
			Comment:        review.Comment,
			DeletedBy:      moderator.ID,
			DeletionReason: reason,
			AdminName:      moderator.Name,
		}
		if err := tx.Create(&audit).Error; err != nil {
			return err
		}
		return tx.Model(&entity.Review{}).Where("id = ?", review.ID).
			Update("deleted", true).Error
	})
	if err != nil {
		return apperr.Internal(err)
	}
	return nil
}

type DeletedReviewPage struct {
	Items []entity.DeletedReview `json:"items"`
	Page  int                    `json:"page"`
	Limit int                    `json:"limit"`
	Total int64                  `json:"total"`
}

// GetDeletedReviews pages through the audit table. Read-only.
func (s *AdminService) GetDeletedReviews(page, limit int, moderatorID *uint) (*DeletedReviewPage, error) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	items, total, err := s.Reviews.ListDeleted(limit, (page-1)*limit, moderatorID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return &DeletedReviewPage{Items: items, Page: page, Limit: limit, Total: total}, nil
}

// GetDeletedReview returns the audit copy for one review. This backs the
// UI's "restore" view: it only reveals the copy, the live row stays
// flagged.
func (s *AdminService) GetDeletedReview(reviewID uint) (*entity.DeletedReview, error) {
	d, err := s.Reviews.FindDeletedByReviewID(reviewID)
	if err != nil {
		return nil, apperr.NotFound("deleted review not found")
	}
	return d, nil
}

type UserPage struct {
	Items []entity.User `json:"items"`
	Page  int           `json:"page"`
	Limit int           `json:"limit"`
	Total int64         `json:"total"`
}

func (s *AdminService) ListUsers(page, limit int) (*UserPage, error) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	users, total, err := s.Users.List(limit, (page-1)*limit)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return &UserPage{Items: users, Page: page, Limit: limit, Total: total}, nil
}

type DashboardStats struct {
	TotalUsers       int64 `json:"totalUsers"`
	TotalRestaurants int64 `json:"totalRestaurants"`
	TotalReviews     int64 `json:"totalReviews"`
	DeletedReviews   int64 `json:"deletedReviews"`
	OpenTickets      int64 `json:"openTickets"`
}

func (s *AdminService) Dashboard() (*DashboardStats, error) {
	var stats DashboardStats
	counts := []struct {
		model any
		query map[string]any
		dst   *int64
	}{
		{&entity.User{}, nil, &stats.TotalUsers},
		{&entity.Restaurant{}, nil, &stats.TotalRestaurants},
		{&entity.Review{}, nil, &stats.TotalReviews},
		{&entity.DeletedReview{}, nil, &stats.DeletedReviews},
		{&entity.SupportTicket{}, map[string]any{"status": entity.TicketOpen}, &stats.OpenTickets},
	}
	for _, c := range counts {
		q := s.DB.Model(c.model)
		if c.query != nil {
			q = q.Where(c.query)
		}
		if err := q.Count(c.dst).Error; err != nil {
			return nil, apperr.Internal(err)
		}
	}
	return &stats, nil
}
