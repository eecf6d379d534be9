package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// RabbitURL empty disables subscription notifications.
	RabbitURL string

	JWTSecret string
	JWTTTL    time.Duration

	UploadDir string
	AppURL    string
}

func Load() *Config {
	// .env is optional, real deployments inject the environment directly
	_ = godotenv.Load()

	ttl, err := time.ParseDuration(getEnv("JWT_TTL", "168h"))
	if err != nil {
		log.Fatalf("invalid JWT_TTL: %v", err)
	}

	cfg := &Config{
		ServerPort: getEnv("SERVER_PORT", "3333"),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", "postgres"),
		DBName:     getEnv("DB_NAME", "meetapp"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),
		RabbitURL:  os.Getenv("RABBITMQ_URL"),
		JWTSecret:  os.Getenv("JWT_SECRET"),
		JWTTTL:     ttl,
		UploadDir:  getEnv("UPLOAD_DIR", "tmp/uploads"),
		AppURL:     getEnv("APP_URL", "http://localhost:3333"),
	}

	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET is required")
	}

	return cfg
}

func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode,
	)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
