package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Fujita-Naoyuki/visual-table-canvas-for-markdown/log"
)

const (
	ConfigFileName = "config.json"

	// PaddingPreserve keeps unchanged rows byte-identical on save;
	// PaddingCanonical reformats the whole table with aligned columns.
	PaddingPreserve  = "preserve"
	PaddingCanonical = "canonical"

	defaultUndoLimit = 100
)

// GetConfigDir returns the path to the application's configuration directory
func GetConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get config home directory: %w", err)
	}
	return filepath.Join(homeDir, ".mdtable"), nil
}

// Config represents the application configuration
type Config struct {
	// PaddingMode selects how edited tables are written back:
	// "preserve" (diff-minimizing) or "canonical" (full reformat).
	PaddingMode string `json:"padding_mode"`
	// UndoLimit caps the number of snapshots kept on the undo stack.
	UndoLimit int `json:"undo_limit"`
	// ConfirmOnQuit asks before quitting with unsaved table edits.
	ConfirmOnQuit bool `json:"confirm_on_quit"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		PaddingMode:   PaddingPreserve,
		UndoLimit:     defaultUndoLimit,
		ConfirmOnQuit: true,
	}
}

func LoadConfig() *Config {
	configDir, err := GetConfigDir()
	if err != nil {
		log.ErrorLog.Printf("failed to get config directory: %v", err)
		return DefaultConfig()
	}

	configPath := filepath.Join(configDir, ConfigFileName)
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			// Create and save default config if file doesn't exist
			defaultCfg := DefaultConfig()
			if saveErr := saveConfig(defaultCfg); saveErr != nil {
				log.WarningLog.Printf("failed to save default config: %v", saveErr)
			}
			return defaultCfg
		}

		log.WarningLog.Printf("failed to get config file: %v", err)
		return DefaultConfig()
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		log.ErrorLog.Printf("failed to parse config file: %v", err)
		return DefaultConfig()
	}

	// Merge with defaults for missing fields to handle config file migration
	defaults := DefaultConfig()
	if config.PaddingMode != PaddingPreserve && config.PaddingMode != PaddingCanonical {
		config.PaddingMode = defaults.PaddingMode
	}
	if config.UndoLimit <= 0 {
		config.UndoLimit = defaults.UndoLimit
	}

	return &config
}

// saveConfig saves the configuration to disk
func saveConfig(config *Config) error {
	configDir, err := GetConfigDir()
	if err != nil {
		return fmt.Errorf("failed to get config directory: %w", err)
	}

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	configPath := filepath.Join(configDir, ConfigFileName)
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	return os.WriteFile(configPath, data, 0644)
}

// SaveConfig exports the saveConfig function for use by other packages
func SaveConfig(config *Config) error {
	return saveConfig(config)
}
