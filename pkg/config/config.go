package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort      string
	FirebaseProject string
	Environment     string

	// Polling cadence pushed down to sync clients.
	InboxPollInterval  time.Duration
	ThreadPollInterval time.Duration
	UnreadPollInterval time.Duration
	MaxAttachmentBytes int64
}

func Load() (*Config, error) {
	godotenv.Load()

	config := &Config{
		ServerPort:         getEnv("SERVER_PORT", "8080"),
		FirebaseProject:    getEnv("FIREBASE_PROJECT_ID", ""),
		Environment:        getEnv("ENVIRONMENT", "development"),
		InboxPollInterval:  getEnvAsDuration("INBOX_POLL_INTERVAL", 30*time.Second),
		ThreadPollInterval: getEnvAsDuration("THREAD_POLL_INTERVAL", 10*time.Second),
		UnreadPollInterval: getEnvAsDuration("UNREAD_POLL_INTERVAL", 30*time.Second),
		MaxAttachmentBytes: getEnvAsInt64("MAX_ATTACHMENT_BYTES", 25*1024*1024),
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value, exists := os.LookupEnv(key); exists {
		intValue, err := strconv.ParseInt(value, 10, 64)
		if err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		d, err := time.ParseDuration(value)
		if err == nil {
			return d
		}
	}
	return defaultValue
}
