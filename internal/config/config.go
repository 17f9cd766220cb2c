// Package config loads application configuration from environment variables.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

// Config holds all runtime configuration for the service.
type Config struct {
	Port     string
	AppEnv   string
	LogLevel string
	LogFile  string

	LogMaxSizeMB  int
	LogMaxBackups int
	LogMaxAgeDays int

	// Key-value store: "redis" or "badger"
	KVDriver      string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	BadgerDir     string // empty runs Badger in memory

	// Object storage: "minio" (any S3-compatible endpoint) or "s3" (AWS SDK)
	StorageDriver     string
	StorageEndpoint   string
	StorageAccessKey  string
	StorageSecretKey  string
	StorageRegion     string
	StorageBucket     string
	StorageUseSSL     bool
	StoragePublicBase string // browser-accessible base URL for uploaded images

	// StoragePublicPolicy applies a public-read bucket policy at startup
	// (minio driver). Off for endpoints without bucket policies, e.g. GCS interop.
	StoragePublicPolicy bool

	ScratchDir  string
	VideoURLTTL time.Duration

	// JWTSecret enables bearer-token protection of PUT and DELETE routes when set.
	JWTSecret      string
	SwaggerEnabled bool
}

// Load reads configuration from a .env file (if present) and environment variables.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Debug("no .env file found, reading from environment")
	}

	return &Config{
		Port:     getEnv("PORT", "8080"),
		AppEnv:   getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
		LogFile:  getEnv("LOG_FILE", ""),

		LogMaxSizeMB:  getEnvInt("LOG_MAX_SIZE_MB", 50),
		LogMaxBackups: getEnvInt("LOG_MAX_BACKUPS", 5),
		LogMaxAgeDays: getEnvInt("LOG_MAX_AGE_DAYS", 14),

		KVDriver:      getEnv("KV_DRIVER", "redis"),
		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getEnvInt("REDIS_DB", 0),
		BadgerDir:     badgerDir(),

		StorageDriver:     getEnv("STORAGE_DRIVER", "minio"),
		StorageEndpoint:   getEnv("STORAGE_ENDPOINT", "localhost:9000"),
		StorageAccessKey:  getEnv("STORAGE_ACCESS_KEY", "minioadmin"),
		StorageSecretKey:  getEnv("STORAGE_SECRET_KEY", "minioadmin"),
		StorageRegion:     getEnv("STORAGE_REGION", "us-east-1"),
		StorageBucket:     getEnv("STORAGE_BUCKET", "bottle-template"),
		StorageUseSSL:     getEnvBool("STORAGE_USE_SSL", false),
		StoragePublicBase: getEnv("STORAGE_PUBLIC_BASE", "https://storage.cloud.google.com/bottle-template"),

		StoragePublicPolicy: getEnvBool("STORAGE_PUBLIC_POLICY", true),

		ScratchDir:  getEnv("SCRATCH_DIR", "temp"),
		VideoURLTTL: getEnvDuration("VIDEO_URL_TTL", 5*time.Minute),

		JWTSecret:      getEnv("JWT_SECRET", ""),
		SwaggerEnabled: getEnvBool("SWAGGER_ENABLED", false),
	}
}

// IsProduction returns true when the app is running in production mode.
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// badgerDir returns "" (in-memory) when BADGER_IN_MEMORY is set.
func badgerDir() string {
	if getEnvBool("BADGER_IN_MEMORY", false) {
		return ""
	}
	return getEnv("BADGER_DIR", "data/badger")
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		log.Warnf("config: %s=%q is not a bool, using %t", key, v, fallback)
		return fallback
	}
	return b
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Warnf("config: %s=%q is not an integer, using %d", key, v, fallback)
		return fallback
	}
	return n
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Warnf("config: %s=%q is not a duration, using %s", key, v, fallback)
		return fallback
	}
	return d
}
