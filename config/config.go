package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"reactive-breakpoints/breakpoint"
	"reactive-breakpoints/log"
	"reactive-breakpoints/ui/layout"
	"time"
)

const (
	ConfigFileName = "config.json"
	configDirName  = ".reactive-breakpoints"
)

// GetConfigDir returns the path to the application's configuration directory
func GetConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get config home directory: %w", err)
	}
	return filepath.Join(homeDir, configDirName), nil
}

// Config represents the application configuration
type Config struct {
	// Thresholds are the pixel boundaries used by the classify command.
	Thresholds breakpoint.Threshold `json:"thresholds"`
	// TerminalThresholds are the boundaries, in cells, used when classifying
	// the terminal itself (the TUI and the watch command).
	TerminalThresholds breakpoint.Threshold `json:"terminal_thresholds"`
	// ResizeDelayMs is how long (ms) to wait for resizing to settle before
	// re-measuring.
	ResizeDelayMs int `json:"resize_delay_ms"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Thresholds:         breakpoint.DefaultThresholds,
		TerminalThresholds: layout.TerminalThresholds,
		ResizeDelayMs:      int(breakpoint.ResizeDelay / time.Millisecond),
	}
}

// ResizeDelay returns the debounce delay, falling back to the default for
// non-positive values.
func (c *Config) ResizeDelay() time.Duration {
	if c.ResizeDelayMs <= 0 {
		return breakpoint.ResizeDelay
	}
	return time.Duration(c.ResizeDelayMs) * time.Millisecond
}

// Validate reports thresholds that are out of order. Out-of-order thresholds
// still classify, just not sensibly, so callers only warn about them.
func (c *Config) Validate() error {
	if !c.Thresholds.Ordered() {
		return fmt.Errorf("thresholds are not in ascending order: %+v", c.Thresholds)
	}
	if !c.TerminalThresholds.Ordered() {
		return fmt.Errorf("terminal thresholds are not in ascending order: %+v", c.TerminalThresholds)
	}
	return nil
}

func LoadConfig() *Config {
	configDir, err := GetConfigDir()
	if err != nil {
		log.ErrorLog.Printf("failed to get config directory: %v", err)
		return DefaultConfig()
	}

	configPath := filepath.Join(configDir, ConfigFileName)
	data, err := readConfigFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			// Create and save default config if file doesn't exist
			defaultCfg := DefaultConfig()
			if saveErr := SaveConfig(defaultCfg); saveErr != nil {
				log.WarningLog.Printf("failed to save default config: %v", saveErr)
			}
			return defaultCfg
		}

		log.WarningLog.Printf("failed to get config file: %v", err)
		return DefaultConfig()
	}

	// Start from the defaults so keys missing from the file keep their
	// default values.
	config := DefaultConfig()
	if err := json.Unmarshal(data, config); err != nil {
		preview := string(data)
		if len(preview) > 200 {
			preview = preview[:200] + "..."
		}
		log.ErrorLog.Printf("failed to parse config file at %s: %v\nConfig content preview: %s", configPath, err, preview)

		// Backup the corrupted config before falling back to defaults
		backupPath := configPath + ".corrupt." + time.Now().Format("20060102-150405")
		if backupErr := os.WriteFile(backupPath, data, 0644); backupErr == nil {
			log.InfoLog.Printf("Backed up corrupted config to: %s", backupPath)
		}

		return DefaultConfig()
	}

	if err := config.Validate(); err != nil {
		log.WarningLog.Printf("config at %s: %v", configPath, err)
	}

	return config
}

// readConfigFile reads the config under a shared lock. A missing directory
// means there is nothing to lock yet, so the read goes ahead unlocked.
func readConfigFile(configPath string) ([]byte, error) {
	lock := NewFileLock(configPath)
	if _, err := os.Stat(filepath.Dir(configPath)); err == nil {
		if err := lock.RLock(); err != nil {
			log.WarningLog.Printf("failed to acquire read lock: %v", err)
		} else {
			defer lock.Unlock()
		}
	}
	return os.ReadFile(configPath)
}

// SaveConfig writes the configuration to disk under an exclusive lock.
func SaveConfig(config *Config) error {
	configDir, err := GetConfigDir()
	if err != nil {
		return fmt.Errorf("failed to get config directory: %w", err)
	}

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	configPath := filepath.Join(configDir, ConfigFileName)
	lock := NewFileLock(configPath)
	if err := lock.Lock(); err != nil {
		return err
	}
	defer lock.Unlock()

	return writeConfig(configPath, config)
}

// writeConfig writes without taking the lock; the caller holds it.
func writeConfig(configPath string, config *Config) error {
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	return os.WriteFile(configPath, data, 0644)
}
