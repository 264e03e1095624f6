package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, data map[string]any) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cfg.json")
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func Test_parseJSON(t *testing.T) {
	path := writeTempJSON(t, map[string]any{
		"database_path":   "/var/lib/workplace.db",
		"storage":         "memory",
		"env":             "local",
		"log_file":        "/var/log/workplace.log",
		"search_debounce": "300ms",
		"login_delay":     int64(time.Second),
	})

	t.Run("loads from -config", func(t *testing.T) {
		cfg := &Config{}
		parseJSON(cfg, []string{"-config", path})

		assert.Equal(t, Config{
			DatabasePath:   "/var/lib/workplace.db",
			Storage:        StorageMemory,
			Env:            "local",
			LogFile:        "/var/log/workplace.log",
			SearchDebounce: 300 * time.Millisecond,
			LoginDelay:     time.Second,
		}, *cfg)
	})

	t.Run("partial file keeps other values", func(t *testing.T) {
		partial := writeTempJSON(t, map[string]any{"env": "development"})
		cfg := &Config{}
		cfg.LoadDefaults()
		parseJSON(cfg, []string{"-c", partial})

		assert.Equal(t, "development", cfg.Env)
		assert.Equal(t, "workplace.db", cfg.DatabasePath)
	})

	t.Run("no config flag → no changes", func(t *testing.T) {
		cfg := &Config{DatabasePath: "keep.db"}
		parseJSON(cfg, []string{"-d", "other.db"})
		assert.Equal(t, "keep.db", cfg.DatabasePath)
	})

	t.Run("invalid JSON → panics", func(t *testing.T) {
		bad := filepath.Join(t.TempDir(), "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte(`{ not json`), 0o600))
		require.Panics(t, func() { parseJSON(&Config{}, []string{"-c", bad}) })
	})

	t.Run("missing file → panics", func(t *testing.T) {
		require.Panics(t, func() { parseJSON(&Config{}, []string{"-c", filepath.Join(t.TempDir(), "nope.json")}) })
	})
}
