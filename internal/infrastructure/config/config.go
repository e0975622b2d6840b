package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	Server ServerConfig
	Log    LogConfig
	Model  ModelConfig
	Store  StoreConfig
	Redis  RedisConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host string
	Port int
	Mode string
}

// LogConfig holds logger configuration
type LogConfig struct {
	Level  string
	Format string
}

// ModelConfig holds model-serving backend configuration
type ModelConfig struct {
	BaseURL           string
	Timeout           time.Duration
	EnglishModel      string
	MultilingualModel string
}

// StoreConfig holds prediction log configuration
type StoreConfig struct {
	Path string
}

// RedisConfig holds Redis cache configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	TTL      time.Duration
}

// Load reads configuration from environment variables with defaults
func Load() (*Config, error) {
	port, err := getEnvInt("SERVER_PORT", 8080)
	if err != nil {
		return nil, fmt.Errorf("invalid SERVER_PORT: %w", err)
	}

	redisPort, err := getEnvInt("REDIS_PORT", 6379)
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_PORT: %w", err)
	}

	redisDB, err := getEnvInt("REDIS_DB", 0)
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}

	modelTimeout, err := getEnvDuration("MODEL_TIMEOUT", 30*time.Second)
	if err != nil {
		return nil, fmt.Errorf("invalid MODEL_TIMEOUT: %w", err)
	}

	cacheTTL, err := getEnvDuration("REDIS_TTL", time.Hour)
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_TTL: %w", err)
	}

	return &Config{
		Server: ServerConfig{
			Host: getEnv("SERVER_HOST", "0.0.0.0"),
			Port: port,
			Mode: getEnv("SERVER_MODE", "debug"),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
		Model: ModelConfig{
			BaseURL:           getEnv("MODEL_SERVER_URL", "http://localhost:8500"),
			Timeout:           modelTimeout,
			EnglishModel:      getEnv("MODEL_ENGLISH", "bhadresh-savani/distilbert-base-uncased-emotion"),
			MultilingualModel: getEnv("MODEL_MULTILINGUAL", "cardiffnlp/twitter-xlm-roberta-base-emotion"),
		},
		Store: StoreConfig{
			Path: getEnv("PREDICTION_LOG_PATH", "predictions_log.csv"),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     redisPort,
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       redisDB,
			TTL:      cacheTTL,
		},
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	return strconv.Atoi(value)
}

func getEnvDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	return time.ParseDuration(value)
}
