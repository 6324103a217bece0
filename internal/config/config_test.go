package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, StoreMemory, cfg.Store)
	assert.True(t, cfg.Seed)
	require.Len(t, cfg.Family, 6)
	assert.Equal(t, "Dad", cfg.Family[0].Name)
	assert.Equal(t, "q", cfg.Keys.Quit)
}

func TestLoad_YAML(t *testing.T) {
	path := writeFile(t, "homekeeper.yaml", `
addr: ":9090"
store: sqlite
seed: false
family:
  - name: Ana
    points: 10
  - name: Rui
keys:
  quit: x
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, StoreSQLite, cfg.Store)
	assert.False(t, cfg.Seed)
	assert.Equal(t, []Member{{Name: "Ana", Points: 10}, {Name: "Rui"}}, cfg.Family)
	assert.Equal(t, "x", cfg.Keys.Quit)
	assert.Equal(t, "k", cfg.Keys.Up, "unset keys keep defaults")
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoad_TOML(t *testing.T) {
	path := writeFile(t, "homekeeper.toml", `
addr = ":7070"
log_level = "debug"

[[family]]
name = "Ana"
points = 3
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":7070", cfg.Addr)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, []Member{{Name: "Ana", Points: 3}}, cfg.Family)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeFile(t, "homekeeper.yml", "addr: \":9090\"\nstore: sqlite\n")
	t.Setenv("HOMEKEEPER_ADDR", ":1234")
	t.Setenv("HOMEKEEPER_STORE", "memory")
	t.Setenv("HOMEKEEPER_SEED", "false")
	t.Setenv("LOG_LEVEL", "warn")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":1234", cfg.Addr)
	assert.Equal(t, StoreMemory, cfg.Store)
	assert.False(t, cfg.Seed)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoad_InvalidSeedEnvIgnored(t *testing.T) {
	t.Setenv("HOMEKEEPER_SEED", "maybe")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.True(t, cfg.Seed)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("unknown extension", func(t *testing.T) {
		path := writeFile(t, "homekeeper.json", "{}")
		_, err := Load(path)
		assert.ErrorIs(t, err, ErrUnknownFormat)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("unknown store", func(t *testing.T) {
		path := writeFile(t, "homekeeper.yaml", "store: postgres\n")
		_, err := Load(path)
		assert.ErrorContains(t, err, "unknown store")
	})

	t.Run("duplicate member", func(t *testing.T) {
		path := writeFile(t, "homekeeper.yaml", "family:\n  - name: Ana\n  - name: Ana\n")
		_, err := Load(path)
		assert.ErrorContains(t, err, "duplicate family member")
	})
}

func TestMembers(t *testing.T) {
	cfg := Config{Family: []Member{{Name: " marta ", Points: 63}}}

	members := cfg.Members()
	require.Len(t, members, 1)
	assert.Equal(t, "marta", members[0].Name)
	assert.Equal(t, "M", members[0].Avatar)
	assert.Equal(t, 63, members[0].Points)
}
