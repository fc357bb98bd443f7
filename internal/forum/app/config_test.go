package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("FORUM_JWT_SECRET", "s3cret")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, "dev", cfg.Env)
	require.Equal(t, 8080, cfg.Port)
	require.Equal(t, 10*time.Second, cfg.ShutdownGracePeriod)
	require.Equal(t, StoreDriverSQLite, cfg.StoreDriver)
	require.Equal(t, "forum.db", cfg.DatabaseFile)
	require.Empty(t, cfg.JWTAudience)
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("FORUM_JWT_SECRET", "s3cret")
	t.Setenv("PORT", "9090")
	t.Setenv("SHUTDOWN_GRACE_PERIOD", "3s")
	t.Setenv("FORUM_STORE_DRIVER", "mongodb")
	t.Setenv("FORUM_JWT_AUDIENCE", "forum,lms")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, 9090, cfg.Port)
	require.Equal(t, 3*time.Second, cfg.ShutdownGracePeriod)
	require.Equal(t, StoreDriverMongoDB, cfg.StoreDriver)
	require.Equal(t, []string{"forum", "lms"}, cfg.JWTAudience)
}

func TestLoadConfigRequiresSecret(t *testing.T) {
	t.Setenv("FORUM_JWT_SECRET", "")

	_, err := LoadConfig()
	require.Error(t, err)
}

func TestLoadConfigRejectsUnknownDriver(t *testing.T) {
	t.Setenv("FORUM_JWT_SECRET", "s3cret")
	t.Setenv("FORUM_STORE_DRIVER", "postgres")

	_, err := LoadConfig()
	require.ErrorContains(t, err, "postgres")
}
