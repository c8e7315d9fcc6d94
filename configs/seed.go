package configs

import (
	"log"

	"golang.org/x/crypto/bcrypt"

	"github.com/kitaezov/FeedbackDeliveryService-sub003/entity"
)

// SeedHeadAdmin makes sure the one distinguished head-admin account exists.
func SeedHeadAdmin(cfg *Config) error {
	if cfg.HeadAdminEmail == "" || cfg.HeadAdminPassword == "" {
		log.Println("skip seeding head admin: missing HEAD_ADMIN_EMAIL/HEAD_ADMIN_PASSWORD")
		return nil
	}

	var count int64
	if err := db.Model(&entity.User{}).Where("email = ?", cfg.HeadAdminEmail).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("head admin already exists:", cfg.HeadAdminEmail)
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.HeadAdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := entity.User{
		Email:    cfg.HeadAdminEmail,
		Password: string(hash),
		Name:     "Head Admin",
		Role:     entity.RoleHeadAdmin,
	}
	return db.Create(&admin).Error
}
