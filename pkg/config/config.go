package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	JWT       JWTConfig
	EmailSync EmailSyncConfig
	Logger    LoggerConfig
}

type LoggerConfig struct {
	Level string
}

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type JWTConfig struct {
	SecretKey  string
	Expiration time.Duration
	RefreshExp time.Duration
}

// EmailSyncConfig controls the bank-email polling loop. InitialDays and
// InitialBatchSize apply only to the first sync after startup.
type EmailSyncConfig struct {
	Interval         time.Duration
	InitialDays      int
	BatchSize        int
	InitialBatchSize int
	DefaultUserID    string
}

func Load() (*Config, error) {
	// Try to load .env from the current directory or project root
	envFiles := []string{".env", "../.env", "../../.env"}
	for _, envFile := range envFiles {
		if err := godotenv.Load(envFile); err == nil {
			break
		}
	}
	// No .env file is fine, environment variables are used directly

	readTimeout, _ := strconv.Atoi(getEnv("SERVER_READ_TIMEOUT", "30"))
	writeTimeout, _ := strconv.Atoi(getEnv("SERVER_WRITE_TIMEOUT", "30"))
	jwtExp, _ := strconv.Atoi(getEnv("JWT_EXPIRATION_HOURS", "24"))
	refreshExp, _ := strconv.Atoi(getEnv("JWT_REFRESH_EXPIRATION_HOURS", "168"))
	syncInterval, _ := strconv.Atoi(getEnv("EMAIL_SYNC_INTERVAL_MINUTES", "5"))
	initialDays, _ := strconv.Atoi(getEnv("EMAIL_SYNC_INITIAL_DAYS", "30"))
	batchSize, _ := strconv.Atoi(getEnv("EMAIL_SYNC_BATCH_SIZE", "50"))
	initialBatchSize, _ := strconv.Atoi(getEnv("EMAIL_SYNC_INITIAL_BATCH_SIZE", "200"))

	return &Config{
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			ReadTimeout:  time.Duration(readTimeout) * time.Second,
			WriteTimeout: time.Duration(writeTimeout) * time.Second,
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "spendlens"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		JWT: JWTConfig{
			SecretKey:  getEnv("JWT_SECRET_KEY", "your-secret-key-change-in-production"),
			Expiration: time.Duration(jwtExp) * time.Hour,
			RefreshExp: time.Duration(refreshExp) * time.Hour,
		},
		EmailSync: EmailSyncConfig{
			Interval:         time.Duration(syncInterval) * time.Minute,
			InitialDays:      initialDays,
			BatchSize:        batchSize,
			InitialBatchSize: initialBatchSize,
			DefaultUserID:    getEnv("EXPENSE_DEFAULT_USER_ID", ""),
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
