package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"gymtrack/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	cfg := config.Load()

	require.Equal(t, []int{30, 45}, cfg.SessionDurations)
	require.Equal(t, time.Hour, cfg.TokenTTL)
	require.True(t, cfg.EmailAllowed("anyone@example.com"))
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("SESSION_DURATIONS", "20, 40, 60")
	t.Setenv("ALLOWED_EMAILS", "A@Example.com, b@example.com")
	t.Setenv("TOKEN_TTL_MINUTES", "15")

	cfg := config.Load()

	require.Equal(t, []int{20, 40, 60}, cfg.SessionDurations)
	require.Equal(t, 15*time.Minute, cfg.TokenTTL)
	require.True(t, cfg.DurationConfigured(40))
	require.False(t, cfg.DurationConfigured(45))

	require.True(t, cfg.EmailAllowed("a@example.com"))
	require.True(t, cfg.EmailAllowed("B@EXAMPLE.COM"))
	require.False(t, cfg.EmailAllowed("c@example.com"))
}
