package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	require.Equal(t, "8080", cfg.Server.Port)
	require.Equal(t, "cvnest", cfg.Database.DBName)
	require.Equal(t, 15*time.Minute, cfg.JWT.AccessExpiry)
	require.Equal(t, "90", cfg.WhatsApp.CountryCode)
	require.Equal(t, 10*time.Second, cfg.WhatsApp.SendTimeout)
	require.Equal(t, 5*time.Second, cfg.BotCheck.Timeout)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("SERVER_PORT", "9999")
	t.Setenv("DB_PORT", "5433")
	t.Setenv("DB_PORT_BAD", "x")
	t.Setenv("JWT_ACCESS_EXPIRY", "30m")
	t.Setenv("WHATSAPP_GATEWAY_URL", "http://wa.internal:8088")

	cfg := Load()
	require.Equal(t, "9999", cfg.Server.Port)
	require.Equal(t, 5433, cfg.Database.Port)
	require.Equal(t, 30*time.Minute, cfg.JWT.AccessExpiry)
	require.Equal(t, "http://wa.internal:8088", cfg.WhatsApp.GatewayURL)
}

func TestGetEnvAsIntAndDurationFallback(t *testing.T) {
	t.Setenv("SOME_INT", "not-a-number")
	t.Setenv("SOME_DUR", "not-a-duration")

	require.Equal(t, 42, getEnvAsInt("SOME_INT", 42))
	require.Equal(t, time.Minute, getEnvAsDuration("SOME_DUR", time.Minute))
}

func TestDatabaseURL(t *testing.T) {
	c := DatabaseConfig{Host: "db", Port: 5432, User: "u", Password: "p", DBName: "cvnest", SSLMode: "disable"}
	require.Equal(t, "postgres://u:p@db:5432/cvnest?sslmode=disable", c.URL())
}
