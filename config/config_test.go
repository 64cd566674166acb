package config

import (
	"os"
	"path/filepath"
	"reactive-breakpoints/breakpoint"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)
	return home
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, breakpoint.DefaultThresholds, cfg.Thresholds)
	assert.Equal(t, 300*time.Millisecond, cfg.ResizeDelay())
	assert.NoError(t, cfg.Validate())
}

func TestResizeDelayFallsBackToDefault(t *testing.T) {
	cfg := &Config{ResizeDelayMs: -5}
	assert.Equal(t, breakpoint.ResizeDelay, cfg.ResizeDelay())

	cfg.ResizeDelayMs = 50
	assert.Equal(t, 50*time.Millisecond, cfg.ResizeDelay())
}

func TestValidateRejectsUnorderedThresholds(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Thresholds.SM = 10

	assert.Error(t, cfg.Validate())
}

func TestLoadConfigCreatesDefault(t *testing.T) {
	home := setHome(t)

	cfg := LoadConfig()
	assert.Equal(t, DefaultConfig(), cfg)

	_, err := os.Stat(filepath.Join(home, configDirName, ConfigFileName))
	assert.NoError(t, err, "default config should be written")
}

func TestSaveThenLoad(t *testing.T) {
	setHome(t)

	cfg := DefaultConfig()
	cfg.Thresholds.XS = 300
	cfg.ResizeDelayMs = 100
	require.NoError(t, SaveConfig(cfg))

	assert.Equal(t, cfg, LoadConfig())
}

func TestLoadConfigKeepsDefaultsForMissingKeys(t *testing.T) {
	home := setHome(t)
	dir := filepath.Join(home, configDirName)
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(`{"resize_delay_ms": 120}`), 0644))

	cfg := LoadConfig()

	assert.Equal(t, 120, cfg.ResizeDelayMs)
	assert.Equal(t, breakpoint.DefaultThresholds, cfg.Thresholds)
}

func TestLoadConfigBacksUpCorruptFile(t *testing.T) {
	home := setHome(t)
	dir := filepath.Join(home, configDirName)
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte("{not json"), 0644))

	cfg := LoadConfig()
	assert.Equal(t, DefaultConfig(), cfg)

	backups, err := filepath.Glob(filepath.Join(dir, ConfigFileName+".corrupt.*"))
	require.NoError(t, err)
	assert.Len(t, backups, 1)
}

func TestFileLock(t *testing.T) {
	dir := t.TempDir()
	lock := NewFileLock(filepath.Join(dir, ConfigFileName))

	require.NoError(t, lock.Lock())
	assert.Error(t, lock.Lock(), "lock is not reentrant")
	require.NoError(t, lock.Unlock())
	require.NoError(t, lock.Unlock(), "unlocking twice is harmless")

	require.NoError(t, lock.RLock())
	require.NoError(t, lock.Unlock())

	_, err := os.Stat(filepath.Join(dir, lockFileName))
	assert.NoError(t, err)
}
