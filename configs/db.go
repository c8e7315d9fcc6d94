package configs

import (
	"fmt"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/kitaezov/FeedbackDeliveryService-sub003/entity"
)

var db *gorm.DB

func DB() *gorm.DB {
	return db
}

func ConnectionDB(cfg *Config) error {
	var dialector gorm.Dialector
	switch cfg.DBDriver {
	case "mysql":
		dialector = mysql.Open(cfg.DBSource)
	case "sqlite":
		dialector = sqlite.Open(cfg.DBSource)
	default:
		return fmt.Errorf("unsupported DB_DRIVER: %s", cfg.DBDriver)
	}

	database, err := gorm.Open(dialector, &gorm.Config{TranslateError: true})
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	db = database
	return nil
}

// SetupDatabase runs the schema migration once at startup. Query code
// assumes the schema is already in place.
func SetupDatabase() error {
	return db.AutoMigrate(
		&entity.User{},
		&entity.Restaurant{},
		&entity.Review{}, &entity.DeletedReview{},
		&entity.ReviewPhoto{}, &entity.ReviewVote{},
		&entity.Notification{},
		&entity.SupportTicket{}, &entity.SupportMessage{},
	)
}
