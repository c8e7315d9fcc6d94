package services

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/kitaezov/FeedbackDeliveryService-sub003/entity"
	"github.com/kitaezov/FeedbackDeliveryService-sub003/pkg/apperr"
	"github.com/kitaezov/FeedbackDeliveryService-sub003/repository"
)

type ReviewService struct {
	DB    *gorm.DB
	Repo  *repository.ReviewRepository
	Rests *repository.RestaurantRepository
	Users *repository.UserRepository

	// best-effort push channel; nil in tests
	Notifier *NotificationService
}

func NewReviewService(
	db *gorm.DB,
	repo *repository.ReviewRepository,
	rests *repository.RestaurantRepository,
	users *repository.UserRepository,
	notifier *NotificationService,
) *ReviewService {
	return &ReviewService{DB: db, Repo: repo, Rests: rests, Users: users, Notifier: notifier}
}

type CreateReviewInput struct {
	RestaurantID uint
	Rating       int
	Comment      string

	FoodRating        int
	ServiceRating     int
	AtmosphereRating  int
	PriceRating       int
	CleanlinessRating int

	DeliverySpeedRating   int
	DeliveryQualityRating int

	PhotoPaths []string
}

// Create stores the review and its photo rows as one transaction and
// snapshots the restaurant name onto the review.
func (s *ReviewService) Create(userID uint, in CreateReviewInput) (*entity.Review, error) {
	if in.Rating < 1 || in.Rating > 5 {
		return nil, apperr.Validation("rating must be between 1 and 5")
	}

	rest, err := s.Rests.FindByID(in.RestaurantID)
	if err != nil {
		return nil, apperr.NotFound("restaurant not found")
	}

	review := &entity.Review{
		UserID:         userID,
		RestaurantID:   rest.ID,
		RestaurantName: rest.Name,
		Rating:         in.Rating,
		Comment:        strings.TrimSpace(in.Comment),

		FoodRating:        in.FoodRating,
		ServiceRating:     in.ServiceRating,
		AtmosphereRating:  in.AtmosphereRating,
		PriceRating:       in.PriceRating,
		CleanlinessRating: in.CleanlinessRating,

		DeliverySpeedRating:   in.DeliverySpeedRating,
		DeliveryQualityRating: in.DeliveryQualityRating,
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(review).Error; err != nil {
			return err
		}
		for _, path := range in.PhotoPaths {
			photo := entity.ReviewPhoto{ReviewID: review.ID, Path: path}
			if err := tx.Create(&photo).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, apperr.Internal(err)
	}

	if s.Notifier != nil {
		s.Notifier.NewReview(review)
	}
	return review, nil
}

// Vote records one vote per (review, user) pair and adjusts the likes
// counter in the same transaction. A duplicate pair reports recorded=false
// without touching the counter.
func (s *ReviewService) Vote(reviewID, userID uint, voteType string) (bool, error) {
	if voteType != entity.VoteUp && voteType != entity.VoteDown {
		return false, apperr.Validation("voteType must be up or down")
	}

	if _, err := s.Repo.FindByID(reviewID); err != nil {
		return false, apperr.NotFound("review not found")
	}

	delta := 1
	if voteType == entity.VoteDown {
		delta = -1
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		vote := entity.ReviewVote{ReviewID: reviewID, UserID: userID, VoteType: voteType}
		if err := tx.Create(&vote).Error; err != nil {
			return err
		}
		return tx.Model(&entity.Review{}).Where("id = ?", reviewID).
			UpdateColumn("likes", gorm.Expr("likes + ?", delta)).Error
	})
	if err != nil {
		if isDuplicateKey(err) {
			return false, nil
		}
		return false, apperr.Internal(err)
	}
	return true, nil
}

func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	// fallback for drivers whose errors gorm does not translate
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint") || strings.Contains(msg, "Duplicate entry")
}

// Respond sets the manager reply. Managers may only answer reviews of
// their own restaurant; admins may answer any.
func (s *ReviewService) Respond(actorID uint, actorRole string, reviewID uint, response string) (*entity.Review, error) {
	response = strings.TrimSpace(response)
	if response == "" {
		return nil, apperr.Validation("response is required")
	}

	review, err := s.Repo.FindByID(reviewID)
	if err != nil {
		return nil, apperr.NotFound("review not found")
	}

	actor, err := s.Users.FindByID(actorID)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	switch {
	case actorRole == entity.RoleManager:
		if actor.RestaurantID == nil || *actor.RestaurantID != review.RestaurantID {
			return nil, apperr.Forbidden("managers may only respond to reviews of their own restaurant")
		}
	case RoleLevel(actorRole) >= RoleLevel(entity.RoleAdmin):
		// admins and head admin answer anywhere
	default:
		return nil, apperr.Forbidden("only managers and admins may respond to reviews")
	}

	now := time.Now()
	updates := map[string]any{
		"response":      response,
		"response_date": &now,
		"manager_name":  actor.Name,
	}
	if err := s.Repo.SetResponse(review.ID, updates); err != nil {
		return nil, apperr.Internal(err)
	}

	review.Response = response
	review.ResponseDate = &now
	review.ManagerName = actor.Name
	return review, nil
}

type ReviewListing struct {
	Items     []entity.Review            `json:"items"`
	Limit     int                        `json:"limit"`
	Offset    int                        `json:"offset"`
	Aggregate *repository.RatingAggregate `json:"aggregate,omitempty"`
}

func clampPaging(limit, offset int) (int, int) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

func (s *ReviewService) ListForRestaurant(restaurantID uint, limit, offset int) (*ReviewListing, error) {
	limit, offset = clampPaging(limit, offset)

	reviews, err := s.Repo.ListActiveForRestaurant(restaurantID, limit, offset)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	agg, err := s.Repo.AggregateForRestaurant(restaurantID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return &ReviewListing{Items: reviews, Limit: limit, Offset: offset, Aggregate: &agg}, nil
}

func (s *ReviewService) ListAll(limit, offset int) (*ReviewListing, error) {
	limit, offset = clampPaging(limit, offset)

	reviews, err := s.Repo.ListActive(limit, offset)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return &ReviewListing{Items: reviews, Limit: limit, Offset: offset}, nil
}

func (s *ReviewService) ListForUser(userID uint, limit, offset int) (*ReviewListing, error) {
	limit, offset = clampPaging(limit, offset)

	reviews, err := s.Repo.ListForUser(userID, limit, offset)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return &ReviewListing{Items: reviews, Limit: limit, Offset: offset}, nil
}
