package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string
	DBTimezone string

	ServerPort      string
	JWTSecret       string
	RedisAddr       string
	RedisPassword   string
	UploadDir       string
	SubmissionLimit int
	Development     bool
}

func Load() (*Config, error) {
	// loads .env in dev
	_ = godotenv.Load()

	cfg := &Config{
		DBHost:     os.Getenv("DB_HOST"),
		DBPort:     os.Getenv("DB_PORT"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),
		DBSSLMode:  os.Getenv("DB_SSLMODE"),
		DBTimezone: os.Getenv("DB_TIMEZONE"),

		ServerPort:    getenv("SERVER_PORT", "8080"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		RedisAddr:     getenv("REDIS_ADDRESS", "localhost:6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		UploadDir:     getenv("UPLOAD_DIR", "uploads"),
		Development:   os.Getenv("APP_ENV") == "development",
	}

	limit, err := strconv.Atoi(getenv("SUBMISSION_LIMIT_PER_DAY", "10"))
	if err != nil || limit <= 0 {
		return nil, fmt.Errorf("invalid SUBMISSION_LIMIT_PER_DAY")
	}
	cfg.SubmissionLimit = limit

	if cfg.DBHost == "" || cfg.DBPort == "" || cfg.DBUser == "" || cfg.DBName == "" {
		return nil, fmt.Errorf("database environment variables are not configured")
	}

	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
