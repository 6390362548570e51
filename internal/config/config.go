package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Session  SessionConfig
	SMTP     SMTPConfig
	Line     LineConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	NatsURL            string
	AdminRecipients    []string
}

type DatabaseConfig struct {
	Connection string
}

type SessionConfig struct {
	// Backend selects where dialogue sessions live: "memory" or "redis".
	Backend         string
	RedisURL        string
	RegistrationTTL time.Duration
	InquiryTTL      time.Duration
}

type SMTPConfig struct {
	Host       string
	Port       int
	Email      string
	Password   string
	SenderName string
}

type LineConfig struct {
	ChannelSecret string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, using system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			NatsURL:            getEnv("NATS_URL", "nats://localhost:4222"),
			AdminRecipients:    getEnvAsList("ADMIN_NOTIFY_EMAILS"),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		Session: SessionConfig{
			Backend:         getEnv("SESSION_BACKEND", "memory"),
			RedisURL:        getEnv("REDIS_URL", "redis://localhost:6379"),
			RegistrationTTL: getEnvAsDuration("REGISTRATION_SESSION_TTL", 5*time.Minute),
			InquiryTTL:      getEnvAsDuration("INQUIRY_SESSION_TTL", 10*time.Minute),
		},
		SMTP: SMTPConfig{
			Host:       getEnv("SMTP_HOST", ""),
			Port:       getEnvAsInt("SMTP_PORT", 587),
			Email:      getEnv("SMTP_EMAIL", ""),
			Password:   getEnv("SMTP_PASSWORD", ""),
			SenderName: getEnv("SMTP_SENDER_NAME", "ManualBot"),
		},
		Line: LineConfig{
			ChannelSecret: getEnv("LINE_CHANNEL_SECRET", ""),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	strValue := getEnv(key, "")
	if value, err := time.ParseDuration(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsList(key string) []string {
	raw := getEnv(key, "")
	if raw == "" {
		return nil
	}
	var values []string
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			values = append(values, trimmed)
		}
	}
	return values
}
