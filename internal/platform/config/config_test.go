package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnv(t *testing.T) {
	t.Run("defaults when nothing is set", func(t *testing.T) {
		cfg := FromEnv()
		assert.Equal(t, ":8080", cfg.Addr)
		assert.Equal(t, StoreMemory, cfg.StoreDriver)
		assert.Equal(t, 3, cfg.OpenStates.RetryMax)
	})

	t.Run("environment overrides defaults", func(t *testing.T) {
		t.Setenv("DIRECTORY_ADDR", ":9090")
		t.Setenv("DIRECTORY_STORE", StoreMongo)
		t.Setenv("DIRECTORY_MONGO_URI", "mongodb://db:27017")
		t.Setenv("REDIS_LOCK_TTL", "45s")
		t.Setenv("OPENSTATES_RETRY_MAX", "5")

		cfg := FromEnv()
		assert.Equal(t, ":9090", cfg.Addr)
		assert.Equal(t, StoreMongo, cfg.StoreDriver)
		assert.Equal(t, "mongodb://db:27017", cfg.Mongo.URI)
		assert.Equal(t, 45*time.Second, cfg.Redis.LockTTL)
		assert.Equal(t, 5, cfg.OpenStates.RetryMax)
	})

	t.Run("malformed durations keep the default", func(t *testing.T) {
		t.Setenv("OPENSTATES_TIMEOUT", "soon")
		assert.Equal(t, 30*time.Second, FromEnv().OpenStates.Timeout)
	})
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "directory.toml")
	content := `
addr = ":7000"
store = "postgres"

[postgres]
dsn = "postgres://localhost/askthem"

[openstates]
api_key = "secret"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg := Defaults()
	require.NoError(t, LoadFile(path, &cfg))
	assert.Equal(t, ":7000", cfg.Addr)
	assert.Equal(t, StorePostgres, cfg.StoreDriver)
	assert.Equal(t, "postgres://localhost/askthem", cfg.Postgres.DSN)
	assert.Equal(t, "secret", cfg.OpenStates.APIKey)
	assert.Equal(t, "https://openstates.org/api/v1", cfg.OpenStates.BaseURL, "unset keys keep defaults")
	require.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	cfg := Defaults()
	cfg.StoreDriver = "cassandra"
	assert.Error(t, cfg.Validate())

	cfg.StoreDriver = StorePostgres
	assert.Error(t, cfg.Validate(), "postgres without dsn")

	cfg.Postgres.DSN = "postgres://localhost/askthem"
	assert.NoError(t, cfg.Validate())
}
