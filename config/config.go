package config

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds every runtime setting for the storefront backend. It is built
// once at startup and passed down explicitly; nothing else reads the
// environment.
type Config struct {
	Port string
	Env  string

	RedisURL string

	MongoURI string
	MongoDB  string

	PostgresUser     string
	PostgresPassword string
	PostgresDB       string
	PostgresHost     string
	PostgresPort     string
	PostgresSSLMode  string
	PostgresTimeZone string

	KafkaBrokers string
	KafkaTopic   string

	JWTSecret string

	CartTTL     time.Duration
	CheckoutTTL time.Duration

	OTPTTL             time.Duration
	OTPInitialCooldown time.Duration
	OTPResendCooldown  time.Duration

	SMTPServer   string
	SMTPPort     string
	SMTPEmail    string
	SMTPPassword string
	SenderName   string

	AllowOrigins []string
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: No .env file found, using system environment variables")
	}

	cfg := &Config{
		Port: getEnv("PORT", "8080"),
		Env:  getEnv("APP_ENV", "development"),

		RedisURL: getEnv("REDIS_URL", "redis://localhost:6379"),

		MongoURI: getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:  getEnv("MONGO_DB", "printmate"),

		PostgresUser:     os.Getenv("POSTGRES_USER"),
		PostgresPassword: os.Getenv("POSTGRES_PASSWORD"),
		PostgresDB:       os.Getenv("POSTGRES_DB"),
		PostgresHost:     getEnv("POSTGRES_HOST", "localhost"),
		PostgresPort:     getEnv("POSTGRES_PORT", "5432"),
		PostgresSSLMode:  getEnv("POSTGRES_SSLMODE", "disable"),
		PostgresTimeZone: getEnv("POSTGRES_TIMEZONE", "Asia/Kolkata"),

		KafkaBrokers: getEnv("KAFKA_BROKERS", "localhost:9092"),
		KafkaTopic:   getEnv("ORDER_TOPIC", "order.placed"),

		JWTSecret: os.Getenv("JWT_SECRET"),

		CartTTL:     time.Hour * 24 * 7,
		CheckoutTTL: time.Hour * 24,

		OTPTTL:             5 * time.Minute,
		OTPInitialCooldown: 12 * time.Second,
		OTPResendCooldown:  60 * time.Second,

		SMTPServer:   getEnv("SMTP_SERVER", "smtp.gmail.com"),
		SMTPPort:     getEnv("SMTP_PORT", "587"),
		SMTPEmail:    os.Getenv("SMTP_EMAIL"),
		SMTPPassword: os.Getenv("SMTP_PASSWORD"),
		SenderName:   getEnv("SMTP_SENDER_NAME", "Print Mate Online"),

		AllowOrigins: strings.Split(getEnv("ALLOW_ORIGINS", "http://localhost:3000"), ","),
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET environment variable not set")
	}
	if cfg.PostgresUser == "" || cfg.PostgresPassword == "" || cfg.PostgresDB == "" {
		return nil, fmt.Errorf("database config incomplete")
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
