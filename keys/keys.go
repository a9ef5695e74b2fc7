package keys

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/Fujita-Naoyuki/visual-table-canvas-for-markdown/config"
)

type KeyName int

const (
	KeyUp KeyName = iota
	KeyDown
	KeyLeft
	KeyRight
	KeyRowStart
	KeyRowEnd
	KeyNextTable
	KeyPrevTable

	KeyEdit
	KeyClear
	KeyInsertRow
	KeyInsertRowAbove
	KeyDeleteRow
	KeyInsertCol
	KeyDeleteCol
	KeyUndo
	KeyRedo
	KeyCopy
	KeyPaste

	KeySave
	KeyReformat // Reformat the whole table with canonical padding
	KeyTab      // Tab switches between the grid and markdown panes
	KeyHelp
	KeyQuit

	KeySubmitCell // Special keybinding for committing a cell edit
)

// GlobalKeyStringsMap is a global, immutable map string to keybinding.
var GlobalKeyStringsMap = map[string]KeyName{
	"up":        KeyUp,
	"k":         KeyUp,
	"down":      KeyDown,
	"j":         KeyDown,
	"left":      KeyLeft,
	"h":         KeyLeft,
	"right":     KeyRight,
	"l":         KeyRight,
	"home":      KeyRowStart,
	"ctrl+a":    KeyRowStart,
	"end":       KeyRowEnd,
	"ctrl+e":    KeyRowEnd,
	"]":         KeyNextTable,
	"[":         KeyPrevTable,
	"enter":     KeyEdit,
	"i":         KeyEdit,
	"backspace": KeyClear,
	"delete":    KeyClear,
	"o":         KeyInsertRow,
	"O":         KeyInsertRowAbove,
	"D":         KeyDeleteRow,
	"a":         KeyInsertCol,
	"X":         KeyDeleteCol,
	"u":         KeyUndo,
	"ctrl+r":    KeyRedo,
	"y":         KeyCopy,
	"ctrl+c":    KeyCopy,
	"p":         KeyPaste,
	"ctrl+v":    KeyPaste,
	"ctrl+s":    KeySave,
	"w":         KeySave,
	"F":         KeyReformat,
	"tab":       KeyTab,
	"?":         KeyHelp,
	"q":         KeyQuit,
	"ctrl+q":    KeyQuit,
}

// GlobalkeyBindings is a global, immutable map of KeyName to keybinding.
var GlobalkeyBindings = map[KeyName]key.Binding{
	KeyUp: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	KeyDown: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	KeyLeft: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←/h", "left"),
	),
	KeyRight: key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("→/l", "right"),
	),
	KeyRowStart: key.NewBinding(
		key.WithKeys("home", "ctrl+a"),
		key.WithHelp("home", "first column"),
	),
	KeyRowEnd: key.NewBinding(
		key.WithKeys("end", "ctrl+e"),
		key.WithHelp("end", "last column"),
	),
	KeyNextTable: key.NewBinding(
		key.WithKeys("]"),
		key.WithHelp("]", "next table"),
	),
	KeyPrevTable: key.NewBinding(
		key.WithKeys("["),
		key.WithHelp("[", "prev table"),
	),
	KeyEdit: key.NewBinding(
		key.WithKeys("enter", "i"),
		key.WithHelp("↵/i", "edit cell"),
	),
	KeyClear: key.NewBinding(
		key.WithKeys("backspace", "delete"),
		key.WithHelp("⌫", "clear cell"),
	),
	KeyInsertRow: key.NewBinding(
		key.WithKeys("o"),
		key.WithHelp("o", "insert row below"),
	),
	KeyInsertRowAbove: key.NewBinding(
		key.WithKeys("O"),
		key.WithHelp("O", "insert row above"),
	),
	KeyDeleteRow: key.NewBinding(
		key.WithKeys("D"),
		key.WithHelp("D", "delete row"),
	),
	KeyInsertCol: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "insert column"),
	),
	KeyDeleteCol: key.NewBinding(
		key.WithKeys("X"),
		key.WithHelp("X", "delete column"),
	),
	KeyUndo: key.NewBinding(
		key.WithKeys("u"),
		key.WithHelp("u", "undo"),
	),
	KeyRedo: key.NewBinding(
		key.WithKeys("ctrl+r"),
		key.WithHelp("ctrl+r", "redo"),
	),
	KeyCopy: key.NewBinding(
		key.WithKeys("y", "ctrl+c"),
		key.WithHelp("y", "copy cell"),
	),
	KeyPaste: key.NewBinding(
		key.WithKeys("p", "ctrl+v"),
		key.WithHelp("p", "paste"),
	),
	KeySave: key.NewBinding(
		key.WithKeys("ctrl+s", "w"),
		key.WithHelp("ctrl+s", "save"),
	),
	KeyReformat: key.NewBinding(
		key.WithKeys("F"),
		key.WithHelp("F", "reformat table"),
	),
	KeyTab: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "switch pane"),
	),
	KeyHelp: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	KeyQuit: key.NewBinding(
		key.WithKeys("q", "ctrl+q"),
		key.WithHelp("q", "quit"),
	),

	// -- Special keybindings --

	KeySubmitCell: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "commit cell"),
	),
}

// CustomKeyStringsMap is a mutable map that can be updated with custom keybindings
var CustomKeyStringsMap map[string]KeyName

// commandToKeyName maps keybinding config command names to KeyName constants.
var commandToKeyName = map[string]KeyName{
	"up":               KeyUp,
	"down":             KeyDown,
	"left":             KeyLeft,
	"right":            KeyRight,
	"row_start":        KeyRowStart,
	"row_end":          KeyRowEnd,
	"next_table":       KeyNextTable,
	"prev_table":       KeyPrevTable,
	"edit":             KeyEdit,
	"clear":            KeyClear,
	"insert_row":       KeyInsertRow,
	"insert_row_above": KeyInsertRowAbove,
	"delete_row":       KeyDeleteRow,
	"insert_col":       KeyInsertCol,
	"delete_col":       KeyDeleteCol,
	"undo":             KeyUndo,
	"redo":             KeyRedo,
	"copy":             KeyCopy,
	"paste":            KeyPaste,
	"save":             KeySave,
	"reformat":         KeyReformat,
	"tab":              KeyTab,
	"help":             KeyHelp,
	"quit":             KeyQuit,
}

// InitializeCustomKeyBindings loads custom keybindings from config
func InitializeCustomKeyBindings() error {
	kbConfig, err := config.LoadKeyBindings()
	if err != nil {
		return err
	}

	keyMap := make(map[string]KeyName)
	for keyStr, command := range kbConfig.ToKeyMap() {
		if keyName, ok := commandToKeyName[command]; ok {
			keyMap[keyStr] = keyName
		}
	}
	CustomKeyStringsMap = keyMap

	// Also update the GlobalkeyBindings with custom keys
	updateGlobalBindings(kbConfig)

	return nil
}

// GetKeyName returns the KeyName for a given key string, checking custom bindings first
func GetKeyName(keyStr string) (KeyName, bool) {
	if CustomKeyStringsMap != nil {
		if keyName, ok := CustomKeyStringsMap[keyStr]; ok {
			return keyName, true
		}
	}

	keyName, ok := GlobalKeyStringsMap[keyStr]
	return keyName, ok
}

// updateGlobalBindings updates the GlobalkeyBindings with custom keybindings
func updateGlobalBindings(kbConfig *config.KeyBindingsConfig) {
	for _, binding := range kbConfig.Bindings {
		if keyName, ok := commandToKeyName[binding.Command]; ok {
			GlobalkeyBindings[keyName] = key.NewBinding(
				key.WithKeys(binding.Keys...),
				key.WithHelp(binding.Help, getHelpText(binding.Command)),
			)
		}
	}
}

// getHelpText returns the help text for a command
func getHelpText(command string) string {
	helpTexts := map[string]string{
		"up":               "up",
		"down":             "down",
		"left":             "left",
		"right":            "right",
		"row_start":        "first column",
		"row_end":          "last column",
		"next_table":       "next table",
		"prev_table":       "prev table",
		"edit":             "edit cell",
		"clear":            "clear cell",
		"insert_row":       "insert row below",
		"insert_row_above": "insert row above",
		"delete_row":       "delete row",
		"insert_col":       "insert column",
		"delete_col":       "delete column",
		"undo":             "undo",
		"redo":             "redo",
		"copy":             "copy cell",
		"paste":            "paste",
		"save":             "save",
		"reformat":         "reformat table",
		"tab":              "switch pane",
		"help":             "help",
		"quit":             "quit",
	}

	if text, ok := helpTexts[command]; ok {
		return text
	}
	return command
}
