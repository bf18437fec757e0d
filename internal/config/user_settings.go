package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// UISettings stores user-facing display preferences.
type UISettings struct {
	ShowKeymapHints bool
	Theme           string // Theme ID, defaults to "tokyo-night"
}

func defaultUISettings() UISettings {
	return UISettings{
		ShowKeymapHints: true,
		Theme:           "tokyo-night",
	}
}

func loadUISettings(path string) UISettings {
	settings := defaultUISettings()
	data, err := os.ReadFile(path)
	if err != nil {
		return settings
	}

	var raw struct {
		UI struct {
			ShowKeymapHints *bool   `json:"show_keymap_hints"`
			Theme           *string `json:"theme"`
		} `json:"ui"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return settings
	}
	if raw.UI.ShowKeymapHints != nil {
		settings.ShowKeymapHints = *raw.UI.ShowKeymapHints
	}
	if raw.UI.Theme != nil && *raw.UI.Theme != "" {
		settings.Theme = *raw.UI.Theme
	}
	return settings
}

// UIChange lists the UI fields to persist. Nil fields are left as they are
// in the file, so values that came from command-line flags stay out of it.
type UIChange struct {
	ShowKeymapHints *bool
	Theme           *string
}

func (ch UIChange) empty() bool {
	return ch.ShowKeymapHints == nil && ch.Theme == nil
}

// writeUIChange rewrites the "ui" section of the config file in place.
// Other sections and unknown keys survive.
func writeUIChange(path string, ch UIChange) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	payload := map[string]any{}
	existing, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := json.Unmarshal(existing, &payload); err != nil {
			return fmt.Errorf("parse %s: %w", path, err)
		}
	case !os.IsNotExist(err):
		return err
	}

	ui, _ := payload["ui"].(map[string]any)
	if ui == nil {
		ui = map[string]any{}
	}
	if ch.ShowKeymapHints != nil {
		ui["show_keymap_hints"] = *ch.ShowKeymapHints
	}
	if ch.Theme != nil {
		ui["theme"] = *ch.Theme
	}
	payload["ui"] = ui

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}

// SaveUISettings applies ch to the in-memory settings and writes the same
// fields to the config file. A file that does not parse is left untouched.
func (c *Config) SaveUISettings(ch UIChange) error {
	if c == nil || ch.empty() {
		return nil
	}
	if ch.ShowKeymapHints != nil {
		c.UI.ShowKeymapHints = *ch.ShowKeymapHints
	}
	if ch.Theme != nil {
		c.UI.Theme = *ch.Theme
	}
	if c.Paths == nil {
		return nil
	}
	return writeUIChange(c.Paths.ConfigPath, ch)
}
