package app

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	SessionSecret string // Required in prod: HMAC secret for session tokens (generated when empty)
	Issuer        string // Optional: issuer claim for session tokens (default: arsip)

	AdminPassword string // Optional: initial admin password seeded on first boot (default: admin123)
	SeedDemoUsers bool   // Optional: also seed the staff and pimpinan demo accounts (default: true)

	DatabaseFile string // Optional: path to SQLite database file (default: ./arsip.db)
	PepperFile   string // Optional: path to file containing pepper for password hashing (default: ./pepper)

	StorageDriver string // Optional: attachment storage driver (disk, s3) (default: disk)
	UploadsDir    string // Optional: directory for the disk driver (default: ./uploads)
	S3Region      string // Required for s3: bucket region
	S3Endpoint    string // Optional: custom S3 endpoint (MinIO and friends)
	S3Bucket      string // Required for s3: bucket name
	S3AccessKey   string // Required for s3: access key id
	S3SecretKey   string // Required for s3: secret access key

	CookieSecure        bool          // Optional: set the Secure flag on the session cookie (default: false)
	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 8080)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
}

func LoadConfig() Config {
	return Config{
		SessionSecret: os.Getenv("ARSIP_SESSION_SECRET"),
		Issuer:        getEnvOrDefault("ARSIP_ISSUER", "arsip"),

		AdminPassword: getEnvOrDefault("ARSIP_ADMIN_PASSWORD", "admin123"),
		SeedDemoUsers: getEnvBoolOrDefault("ARSIP_SEED_DEMO_USERS", true),

		DatabaseFile: getEnvOrDefault("ARSIP_DATABASE_FILE", "arsip.db"),
		PepperFile:   getEnvOrDefault("ARSIP_PEPPER_FILE", "pepper"),

		StorageDriver: getEnvOrDefault("ARSIP_STORAGE_DRIVER", "disk"),
		UploadsDir:    getEnvOrDefault("ARSIP_UPLOADS_DIR", "uploads"),
		S3Region:      os.Getenv("ARSIP_S3_REGION"),
		S3Endpoint:    os.Getenv("ARSIP_S3_ENDPOINT"),
		S3Bucket:      os.Getenv("ARSIP_S3_BUCKET"),
		S3AccessKey:   os.Getenv("ARSIP_S3_ACCESS_KEY"),
		S3SecretKey:   os.Getenv("ARSIP_S3_SECRET_KEY"),

		CookieSecure:        getEnvBoolOrDefault("ARSIP_COOKIE_SECURE", false),
		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if boolValue, err := strconv.ParseBool(value); err == nil {
		return boolValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// Try parsing as duration (e.g., "1h", "30m", "90s")
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Try parsing as integer seconds
	if seconds, err := strconv.Atoi(value); err == nil {
		return time.Duration(seconds) * time.Second
	}

	return defaultValue
}
