package config_test

import (
	"os"
	"testing"
	"time"

	"storefront-service/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// unsetenv clears a variable for the test while restoring it afterwards.
func unsetenv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	os.Unsetenv(key)
}

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"DATABASE_URL", "DATABASE_NAME", "SERVER_PORT",
		"APP_ENV", "LOG_LEVEL", "METRICS_PREFIX",
	} {
		unsetenv(t, key)
	}

	cfg, err := config.Load("storefront-service")
	require.NoError(t, err)

	assert.Equal(t, "storefront-service", cfg.ServiceName)
	assert.Equal(t, "", cfg.Mongo.URL)
	assert.Equal(t, "storefront-service", cfg.Mongo.Database)
	assert.Equal(t, "8000", cfg.Server.Port)
	assert.Equal(t, "development", cfg.Server.Env)
	assert.Equal(t, "storefront-service", cfg.Metrics.Prefix)
	assert.Equal(t, 10*time.Second, cfg.Mongo.ConnectTimeout)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("DATABASE_URL", "mongodb://localhost:27017")
	t.Setenv("DATABASE_NAME", "storefront")
	t.Setenv("SERVER_PORT", "9000")
	t.Setenv("APP_ENV", "production")
	t.Setenv("METRICS_PREFIX", "storefront")

	cfg, err := config.Load("storefront-service")
	require.NoError(t, err)

	assert.Equal(t, "mongodb://localhost:27017", cfg.Mongo.URL)
	assert.Equal(t, "storefront", cfg.Mongo.Database)
	assert.Equal(t, "9000", cfg.Server.Port)
	assert.Equal(t, "production", cfg.Server.Env)
	assert.Equal(t, "storefront", cfg.Metrics.Prefix)
}

func TestLogConfigBaseFields(t *testing.T) {
	t.Setenv("DATABASE_NAME", "storefront")
	t.Setenv("SERVER_PORT", "9000")
	t.Setenv("APP_ENV", "production")

	cfg, err := config.Load("storefront-service")
	require.NoError(t, err)

	fields := cfg.LogConfig()
	assert.ElementsMatch(t, []zap.Field{
		zap.String("service", "storefront-service"),
		zap.String("environment", "production"),
		zap.String("db_name", "storefront"),
		zap.String("server_port", "9000"),
	}, fields)
}

func TestDatabaseEnvPresence(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("DATABASE_NAME", "storefront")

	assert.False(t, config.DatabaseURLSet())
	assert.True(t, config.DatabaseNameSet())
}
