package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

const KeyBindingsFileName = "keybindings.json"

// KeyBinding represents a custom keybinding configuration
type KeyBinding struct {
	Command string   `json:"command"` // The command name (e.g., "up", "edit", "save")
	Keys    []string `json:"keys"`    // The key combinations (e.g., ["k", "up"])
	Help    string   `json:"help"`    // Help text to display
}

// KeyBindingsConfig stores all custom keybindings
type KeyBindingsConfig struct {
	Version  string       `json:"version"`  // Config version for future migrations
	Bindings []KeyBinding `json:"bindings"` // List of custom keybindings
}

// DefaultKeyBindings returns the default keybindings configuration
func DefaultKeyBindings() *KeyBindingsConfig {
	return &KeyBindingsConfig{
		Version: "1.0",
		Bindings: []KeyBinding{
			// Navigation
			{Command: "up", Keys: []string{"up", "k"}, Help: "↑/k"},
			{Command: "down", Keys: []string{"down", "j"}, Help: "↓/j"},
			{Command: "left", Keys: []string{"left", "h"}, Help: "←/h"},
			{Command: "right", Keys: []string{"right", "l"}, Help: "→/l"},
			{Command: "row_start", Keys: []string{"home", "ctrl+a"}, Help: "home"},
			{Command: "row_end", Keys: []string{"end", "ctrl+e"}, Help: "end"},
			{Command: "next_table", Keys: []string{"]"}, Help: "]"},
			{Command: "prev_table", Keys: []string{"["}, Help: "["},

			// Editing
			{Command: "edit", Keys: []string{"enter", "i"}, Help: "↵/i"},
			{Command: "clear", Keys: []string{"backspace", "delete"}, Help: "⌫"},
			{Command: "insert_row", Keys: []string{"o"}, Help: "o"},
			{Command: "insert_row_above", Keys: []string{"O"}, Help: "O"},
			{Command: "delete_row", Keys: []string{"D"}, Help: "D"},
			{Command: "insert_col", Keys: []string{"a"}, Help: "a"},
			{Command: "delete_col", Keys: []string{"X"}, Help: "X"},
			{Command: "undo", Keys: []string{"u"}, Help: "u"},
			{Command: "redo", Keys: []string{"ctrl+r"}, Help: "ctrl+r"},
			{Command: "copy", Keys: []string{"y", "ctrl+c"}, Help: "y"},
			{Command: "paste", Keys: []string{"p", "ctrl+v"}, Help: "p"},

			// Actions
			{Command: "save", Keys: []string{"ctrl+s", "w"}, Help: "ctrl+s"},
			{Command: "reformat", Keys: []string{"F"}, Help: "F"},
			{Command: "tab", Keys: []string{"tab"}, Help: "tab"},
			{Command: "help", Keys: []string{"?"}, Help: "?"},
			{Command: "quit", Keys: []string{"q", "ctrl+q"}, Help: "q"},
		},
	}
}

// LoadKeyBindings loads keybindings from the config file, falling back
// to the defaults when no file exists.
func LoadKeyBindings() (*KeyBindingsConfig, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return nil, err
	}
	configPath := filepath.Join(configDir, KeyBindingsFileName)

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return DefaultKeyBindings(), nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read keybindings file: %w", err)
	}

	var config KeyBindingsConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse keybindings file: %w", err)
	}

	return &config, nil
}

// SaveKeyBindings writes the keybindings configuration to disk
func SaveKeyBindings(config *KeyBindingsConfig) error {
	configDir, err := GetConfigDir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal keybindings: %w", err)
	}

	return os.WriteFile(filepath.Join(configDir, KeyBindingsFileName), data, 0644)
}

// ToKeyMap converts the bindings to a key-string → command-name map.
// The keys package resolves command names to its KeyName constants.
func (c *KeyBindingsConfig) ToKeyMap() map[string]string {
	keyMap := make(map[string]string)
	for _, binding := range c.Bindings {
		for _, k := range binding.Keys {
			keyMap[k] = binding.Command
		}
	}
	return keyMap
}
