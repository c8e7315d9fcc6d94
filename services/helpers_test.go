package services

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/kitaezov/FeedbackDeliveryService-sub003/entity"
	"github.com/kitaezov/FeedbackDeliveryService-sub003/repository"
)

const testHeadAdminEmail = "root@example.com"

func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	// one named in-memory DB per test so pooled connections see the
	// same data
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&entity.User{},
		&entity.Restaurant{},
		&entity.Review{}, &entity.DeletedReview{},
		&entity.ReviewPhoto{}, &entity.ReviewVote{},
		&entity.Notification{},
		&entity.SupportTicket{}, &entity.SupportMessage{},
	))
	return db
}

func createUser(t *testing.T, db *gorm.DB, name, email, role string) *entity.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)

	u := &entity.User{Name: name, Email: email, Password: string(hash), Role: role}
	require.NoError(t, db.Create(u).Error)
	return u
}

func createRestaurant(t *testing.T, db *gorm.DB, name string) *entity.Restaurant {
	t.Helper()

	r := &entity.Restaurant{Name: name, Slug: strings.ToLower(strings.ReplaceAll(name, " ", "-")), IsActive: true}
	require.NoError(t, db.Create(r).Error)
	return r
}

func createReview(t *testing.T, db *gorm.DB, userID, restaurantID uint, rating int) *entity.Review {
	t.Helper()

	rev := &entity.Review{
		UserID:         userID,
		RestaurantID:   restaurantID,
		RestaurantName: "Test Restaurant",
		Rating:         rating,
		Comment:        "decent",
	}
	require.NoError(t, db.Create(rev).Error)
	return rev
}

func newTestAdminService(db *gorm.DB) *AdminService {
	return NewAdminService(
		db,
		repository.NewUserRepository(db),
		repository.NewReviewRepository(db),
		repository.NewRestaurantRepository(db),
		repository.NewSupportRepository(db),
		testHeadAdminEmail,
	)
}

func newTestReviewService(db *gorm.DB) *ReviewService {
	return NewReviewService(
		db,
		repository.NewReviewRepository(db),
		repository.NewRestaurantRepository(db),
		repository.NewUserRepository(db),
		nil,
	)
}
