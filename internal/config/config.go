package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type SessionConfig struct {
	CookieName  string
	Secure      bool
	TTL         time.Duration
	IdleTimeout time.Duration
}

type StorageConfig struct {
	Driver          string
	LocalDir        string
	LocalURLPrefix  string
	S3Region        string
	S3Bucket        string
	S3Prefix        string
	S3PublicBaseURL string
}

type Config struct {
	Addr    string
	DBDSN   string
	Env     string
	Session SessionConfig
	Storage StorageConfig
}

// Load reads configuration from the environment, after loading .env if one
// exists (prod uses real env vars).
func Load() (Config, error) {
	_ = godotenv.Load()

	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		return Config{}, fmt.Errorf("DB_DSN environment variable is required")
	}

	cfg := Config{
		Addr:  envOr("ADDR", ":8080"),
		DBDSN: dsn,
		Env:   envOr("APP_ENV", "development"),
		Session: SessionConfig{
			CookieName:  envOr("SESSION_COOKIE", "admin_session"),
			Secure:      envOr("APP_ENV", "development") == "production",
			TTL:         durationOr("SESSION_TTL", 12*time.Hour),
			IdleTimeout: durationOr("SESSION_IDLE_TIMEOUT", 30*time.Minute),
		},
		Storage: StorageConfig{
			Driver:          envOr("STORAGE_DRIVER", "local"),
			LocalDir:        envOr("LOCAL_UPLOAD_DIR", "./storage/uploads"),
			LocalURLPrefix:  envOr("LOCAL_UPLOAD_URL_PREFIX", "/uploads"),
			S3Region:        os.Getenv("S3_REGION"),
			S3Bucket:        os.Getenv("S3_BUCKET"),
			S3Prefix:        envOr("S3_PREFIX", "uploads"),
			S3PublicBaseURL: os.Getenv("S3_PUBLIC_BASE_URL"),
		},
	}
	return cfg, nil
}

func envOr(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func durationOr(k string, def time.Duration) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}
