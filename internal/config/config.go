package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type DB struct {
	DbHOST     string
	DbPORT     string
	DbUSER     string
	DbPASSWORD string
	DbNAME     string
	DbSSLMODE  string
}

type Upload struct {
	// Backend is "local" or "minio".
	Backend string
	Dir     string
	BaseURL string
	MaxSize int64
}

type MinIO struct {
	Endpoint   string
	AccessKey  string
	SecretKey  string
	BucketName string
	UseSSL     bool
	Region     string
}

type Newsletter struct {
	APIKey  string
	ListID  string
	BaseURL string
}

type Config struct {
	ServerPort      int
	DB              DB
	Upload          Upload
	MinIO           MinIO
	Newsletter      Newsletter
	JWTSecretKey    string
	SessionDuration time.Duration
	AllowedOrigin   string
	MigrationsFile  string
}

func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return fallback
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func parseDuration(value string, fallback time.Duration) time.Duration {
	duration, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return duration
}

func LoadDB() DB {
	return DB{
		DbHOST:     getEnv("DB_HOST", "localhost"),
		DbPORT:     getEnv("DB_PORT", "5432"),
		DbUSER:     getEnv("DB_USER", "postgres"),
		DbPASSWORD: getEnv("DB_PASSWORD", "password"),
		DbNAME:     getEnv("DB_NAME", "noorcms"),
		DbSSLMODE:  getEnv("DB_SSLMODE", "disable"),
	}
}

func LoadUpload() Upload {
	return Upload{
		Backend: getEnv("UPLOAD_BACKEND", "local"),
		Dir:     getEnv("UPLOAD_DIR", "public/uploads"),
		BaseURL: getEnv("UPLOAD_BASE_URL", "/uploads"),
		MaxSize: getEnvAsInt64("MAX_UPLOAD_SIZE", 5*1024*1024),
	}
}

func LoadMinIO() MinIO {
	return MinIO{
		Endpoint:   getEnv("MINIO_ENDPOINT", "localhost:9000"),
		AccessKey:  getEnv("MINIO_ACCESS_KEY", "minioadmin"),
		SecretKey:  getEnv("MINIO_SECRET_KEY", "minioadmin"),
		BucketName: getEnv("MINIO_BUCKET_NAME", "uploads"),
		UseSSL:     getEnvBool("MINIO_USE_SSL", false),
		Region:     getEnv("MINIO_REGION", "us-east-1"),
	}
}

func LoadNewsletter() Newsletter {
	return Newsletter{
		APIKey:  getEnv("NEWSLETTER_API_KEY", ""),
		ListID:  getEnv("NEWSLETTER_LIST_ID", ""),
		BaseURL: getEnv("NEWSLETTER_API_URL", ""),
	}
}

func LoadConfig() *Config {
	err := godotenv.Load()
	if err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	return &Config{
		ServerPort:      getEnvAsInt("SERVER_PORT", 8080),
		DB:              LoadDB(),
		Upload:          LoadUpload(),
		MinIO:           LoadMinIO(),
		Newsletter:      LoadNewsletter(),
		JWTSecretKey:    getEnv("JWT_SECRET_KEY", ""),
		SessionDuration: parseDuration(getEnv("SESSION_DURATION", "12h"), 12*time.Hour),
		AllowedOrigin:   getEnv("CORS_ALLOWED_ORIGIN", "*"),
		MigrationsFile:  getEnv("MIGRATIONS_FILE", "migrations/001_create_tables.sql"),
	}
}
