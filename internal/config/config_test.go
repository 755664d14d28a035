package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestMustLoad(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		// Given: a config file that only sets the mode
		path := writeConfig(t, "mode: showdown\n")

		// When: loading it
		conf := MustLoad(path)

		// Then: every other field has its default
		assert.Equal(t, ModeShowdown, conf.Mode)
		assert.Equal(t, "info", conf.LogLevel)
		assert.Equal(t, 100*time.Millisecond, conf.Think.BotTime)
		assert.Equal(t, time.Duration(0), conf.Think.ShowdownStart)
		assert.Equal(t, time.Millisecond, conf.Think.ShowdownStep)
		assert.Equal(t, 1000, conf.Showdown.BatchSize)
		assert.Equal(t, "results.csv", conf.Showdown.ResultsPath)
		assert.False(t, conf.Redis.Enabled)
		assert.Equal(t, "localhost:6379", conf.Redis.GetRedisAddr())
		assert.Empty(t, conf.SQLiteStoragePath)
	})

	t.Run("File values", func(t *testing.T) {
		path := writeConfig(t, `
log-level: debug
mode: watch
seed: 99
think:
  bot-time: 250ms
  showdown-step: 5ms
showdown:
  batch-size: 10
  max-batches: 3
  results-path: out.csv
redis:
  enabled: true
  host: cache
  port: "6380"
sqlite-storage-path: results.db
`)

		conf := MustLoad(path)

		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, ModeWatch, conf.Mode)
		assert.Equal(t, uint64(99), conf.Seed)
		assert.Equal(t, 250*time.Millisecond, conf.Think.BotTime)
		assert.Equal(t, 5*time.Millisecond, conf.Think.ShowdownStep)
		assert.Equal(t, 10, conf.Showdown.BatchSize)
		assert.Equal(t, 3, conf.Showdown.MaxBatches)
		assert.Equal(t, "out.csv", conf.Showdown.ResultsPath)
		assert.Equal(t, "cache:6380", conf.Redis.GetRedisAddr())
		assert.Equal(t, "results.db", conf.SQLiteStoragePath)
	})

	t.Run("Unknown mode panics", func(t *testing.T) {
		path := writeConfig(t, "mode: tournament\n")

		assert.Panics(t, func() { MustLoad(path) })
	})

	t.Run("Missing file panics", func(t *testing.T) {
		assert.Panics(t, func() { MustLoad(filepath.Join(t.TempDir(), "absent.yml")) })
	})
}

func TestConfig_Validate(t *testing.T) {
	// Given: a valid config
	conf := MustLoad(writeConfig(t, "mode: play\n"))
	require.NoError(t, conf.Validate())

	// When: the mode is overridden with garbage
	conf.Mode = "nope"

	// Then: validation fails
	require.Error(t, conf.Validate())
}
