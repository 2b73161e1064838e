package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config is loaded once at startup and handed to whichever component needs it
// through fx. Nothing in the core reads the environment directly.
type Config struct {
	Port        string
	PostgresURL string

	JWTSecret []byte
	TokenTTL  time.Duration

	GoogleClientID     string
	GoogleClientSecret string
	OAuthRedirectURI   string
	BaseURL            string

	// Optional login allowlist; empty means everyone with a Google account.
	AllowedEmails map[string]struct{}

	// Durations (minutes) a session may be logged for.
	SessionDurations []int
}

func Load() *Config {
	// .env is a local-dev convenience; real deployments set the environment.
	_ = godotenv.Load()

	cfg := &Config{
		Port:               getEnv("PORT", "8000"),
		PostgresURL:        os.Getenv("POSTGRES_URL"),
		JWTSecret:          []byte(getEnv("JWT_SECRET", "change-me-please")),
		TokenTTL:           time.Hour,
		GoogleClientID:     os.Getenv("GOOGLE_CLIENT_ID"),
		GoogleClientSecret: os.Getenv("GOOGLE_CLIENT_SECRET"),
		OAuthRedirectURI:   getEnv("OAUTH_REDIRECT_URI", "http://localhost:8000/auth/callback"),
		BaseURL:            getEnv("BASE_URL", "http://localhost:8000"),
		AllowedEmails:      parseEmailSet(os.Getenv("ALLOWED_EMAILS")),
		SessionDurations:   parseDurations(getEnv("SESSION_DURATIONS", "30,45")),
	}

	if ttlStr := os.Getenv("TOKEN_TTL_MINUTES"); ttlStr != "" {
		if mins, err := strconv.Atoi(ttlStr); err == nil && mins > 0 {
			cfg.TokenTTL = time.Duration(mins) * time.Minute
		}
	}

	return cfg
}

func (c *Config) EmailAllowed(email string) bool {
	if len(c.AllowedEmails) == 0 {
		return true
	}
	_, ok := c.AllowedEmails[strings.ToLower(email)]
	return ok
}

func (c *Config) DurationConfigured(minutes int) bool {
	for _, d := range c.SessionDurations {
		if d == minutes {
			return true
		}
	}
	return false
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseEmailSet(raw string) map[string]struct{} {
	out := map[string]struct{}{}
	for _, e := range strings.Split(raw, ",") {
		e = strings.ToLower(strings.TrimSpace(e))
		if e != "" {
			out[e] = struct{}{}
		}
	}
	return out
}

func parseDurations(raw string) []int {
	var out []int
	for _, s := range strings.Split(raw, ",") {
		if n, err := strconv.Atoi(strings.TrimSpace(s)); err == nil && n > 0 {
			out = append(out, n)
		}
	}
	if len(out) == 0 {
		out = []int{30, 45}
	}
	return out
}
