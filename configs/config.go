package configs

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port      string
	DBDriver  string
	DBSource  string
	JWTSecret string
	JWTTTL    time.Duration

	// the distinguished top-level account, seeded at startup
	HeadAdminEmail    string
	HeadAdminPassword string

	UploadDir string
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using process environment")
	}

	return &Config{
		Port:              getEnv("PORT", "8000"),
		DBDriver:          getEnv("DB_DRIVER", "sqlite"),
		DBSource:          getEnv("DB_SOURCE", "reviews.db"),
		JWTSecret:         getEnv("JWT_SECRET", "changeme"),
		JWTTTL:            24 * time.Hour,
		HeadAdminEmail:    getEnv("HEAD_ADMIN_EMAIL", "admin@example.com"),
		HeadAdminPassword: os.Getenv("HEAD_ADMIN_PASSWORD"),
		UploadDir:         getEnv("UPLOAD_DIR", "./uploads"),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}
