package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "local", cfg.Env)
	assert.Equal(t, DriverSQLite, cfg.Storage.Driver)
	assert.Equal(t, "@pookie4u_game_data", cfg.Storage.Key)
	assert.Equal(t, "terminal", cfg.Feedback.Mode)
	assert.True(t, cfg.Feedback.Bell)
}

func TestLoadFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "pookie.yaml")
	require.NoError(t, os.WriteFile(file, []byte(`
env: production
timezone: Asia/Kolkata
storage:
  driver: memory
feedback:
  mode: log
  bell: false
`), 0o600))
	t.Setenv("POOKIE_LOG_LEVEL", "debug")

	cfg, err := Load(file)
	require.NoError(t, err)
	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, DriverMemory, cfg.Storage.Driver)
	assert.Equal(t, "log", cfg.Feedback.Mode)
	assert.False(t, cfg.Feedback.Bell)

	loc, err := cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, "Asia/Kolkata", loc.String())
}

func TestValidateRejectsUnknownDriver(t *testing.T) {
	cfg := Config{Storage: Storage{Driver: "mongo"}, Feedback: Feedback{Mode: "none"}}
	err := cfg.Validate()
	assert.ErrorIs(t, err, ErrUnknownDriver)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

// chdir changes the working directory for the duration of the test
// (equivalent of testing.T.Chdir, which requires Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(old) })
}
