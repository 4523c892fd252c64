// Package config loads runtime settings for the API server from the
// environment, with development defaults for everything except secrets.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds runtime settings for the solsite API server.
type Config struct {
	// HTTPAddr is the bind address for the public HTTP endpoint.
	HTTPAddr string
	// DatabaseURL is the PostgreSQL DSN (pgx).
	DatabaseURL string
	// JWTSecret signs session tokens (HS256). Required.
	JWTSecret string
	// TokenTTL is the session token lifetime.
	TokenTTL time.Duration

	// Object storage (S3-compatible) settings for the upload pipeline.
	S3AccessKey    string
	S3SecretKey    string
	S3Bucket       string
	S3Region       string
	S3BaseEndpoint string
	// PublicBaseURL is the externally resolvable prefix for stored objects.
	PublicBaseURL string

	// MaxUploadBytes is the job-file size ceiling.
	MaxUploadBytes int64

	// CORSAllowedOrigin is sent back as Access-Control-Allow-Origin.
	CORSAllowedOrigin string
}

const defaultTokenTTL = 24 * time.Hour

// Load builds a Config from environment variables. DatabaseURL and
// JWTSecret have no defaults; callers must treat empty values as fatal.
func Load() (*Config, error) {
	cfg := &Config{
		HTTPAddr:          envOr("HTTP_ADDR", ":8080"),
		DatabaseURL:       os.Getenv("DATABASE_URL"),
		JWTSecret:         os.Getenv("JWT_SECRET"),
		TokenTTL:          defaultTokenTTL,
		S3AccessKey:       os.Getenv("S3_ACCESS_KEY"),
		S3SecretKey:       os.Getenv("S3_SECRET_KEY"),
		S3Bucket:          envOr("S3_BUCKET", "job-files"),
		S3Region:          envOr("S3_REGION", "us-east-1"),
		S3BaseEndpoint:    os.Getenv("S3_BASE_ENDPOINT"),
		PublicBaseURL:     os.Getenv("S3_PUBLIC_BASE_URL"),
		MaxUploadBytes:    5 << 20,
		CORSAllowedOrigin: envOr("CORS_ALLOWED_ORIGIN", "*"),
	}

	if ttl := os.Getenv("TOKEN_TTL"); ttl != "" {
		d, err := time.ParseDuration(ttl)
		if err != nil {
			return nil, fmt.Errorf("config: parse TOKEN_TTL: %w", err)
		}
		cfg.TokenTTL = d
	}

	if limit := os.Getenv("MAX_UPLOAD_BYTES"); limit != "" {
		n, err := strconv.ParseInt(limit, 10, 64)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("config: invalid MAX_UPLOAD_BYTES %q", limit)
		}
		cfg.MaxUploadBytes = n
	}

	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
