package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "staff-booking-service", cfg.App.Name)
	require.Equal(t, "0.0.0.0:8080", cfg.App.Addr())
	require.Equal(t, 30*time.Second, cfg.App.RequestTimeout())
	require.Equal(t, 60, cfg.Auth.AccessTokenTTLMinutes)
	require.Equal(t, "avatars", cfg.Storage.Bucket)
	require.Equal(t, 15*time.Minute, cfg.Storage.PresignTTL())
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("APP_PORT", "9090")
	t.Setenv("AUTH_BCRYPT_COST", "4")
	t.Setenv("STORAGE_PRESIGN_TTL_MINUTES", "5")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "0.0.0.0:9090", cfg.App.Addr())
	require.Equal(t, 4, cfg.Auth.BcryptCost)
	require.Equal(t, 5*time.Minute, cfg.Storage.PresignTTL())
}

func TestEnvHelpersFallBackOnGarbage(t *testing.T) {
	t.Setenv("AUTH_ACCESS_TOKEN_TTL_MINUTES", "not-a-number")
	t.Setenv("POSTGRES_RUN_MIGRATIONS", "not-a-bool")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, 60, cfg.Auth.AccessTokenTTLMinutes)
	require.True(t, cfg.Postgres.RunMigrations)
}
