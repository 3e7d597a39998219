package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config captures all process-wide settings. It is built once at startup
// and passed read-only to every component; nothing re-reads the
// environment after that.
type Config struct {
	Addr string

	// JWTSecret signs and verifies every token the process issues.
	JWTSecret       string
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration

	BcryptCost int

	// DatabaseURL selects the PostgreSQL stores; empty falls back to the
	// in-memory stores for local runs.
	DatabaseURL string

	// KafkaBrokers enables the audit publisher; empty keeps it a no-op.
	KafkaBrokers []string
	AuditTopic   string
}

// FromEnv builds a Config from environment variables so main stays lean.
func FromEnv() Config {
	addr := os.Getenv("CLASSROOM_ADDR")
	if addr == "" {
		addr = ":8000"
	}

	return Config{
		Addr:            addr,
		JWTSecret:       os.Getenv("JWT_SECRET"),
		AccessTokenTTL:  time.Duration(intEnv("ACCESS_TOKEN_EXP_MINUTES", 15)) * time.Minute,
		RefreshTokenTTL: time.Duration(intEnv("REFRESH_TOKEN_EXP_DAYS", 30)) * 24 * time.Hour,
		BcryptCost:      intEnv("BCRYPT_COST", 10),
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		KafkaBrokers:    listEnv("KAFKA_BROKERS"),
		AuditTopic:      stringEnv("AUDIT_TOPIC", "classroom.audit"),
	}
}

// Validate rejects configurations the process must not start with. The
// signing secret has no development default.
func (c Config) Validate() error {
	if c.JWTSecret == "" {
		return errors.New("JWT_SECRET must be set")
	}
	return nil
}

func stringEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func intEnv(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func listEnv(key string) []string {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
