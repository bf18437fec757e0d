package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"
)

const (
	DefaultAutoPlayDelay = 3000 * time.Millisecond
	minAutoPlayDelay     = 250 * time.Millisecond
)

// KeyMapConfig holds user overrides for keybindings.
type KeyMapConfig struct {
	Bindings map[string][]string `json:"bindings,omitempty"`
}

// BindingFor returns the configured keys for an action, if present.
func (k KeyMapConfig) BindingFor(action string) ([]string, bool) {
	if len(k.Bindings) == 0 {
		return nil, false
	}
	if keys, ok := k.Bindings[action]; ok {
		return keys, true
	}
	if keys, ok := k.Bindings[strings.ToLower(action)]; ok {
		return keys, true
	}
	return nil, false
}

// CarouselConfig holds the recognized widget options.
type CarouselConfig struct {
	AutoPlay      bool
	AutoPlayDelay time.Duration
	PauseOnHover  bool
}

// Config holds the application configuration
type Config struct {
	Paths    *Paths
	Carousel CarouselConfig
	UI       UISettings
	KeyMap   KeyMapConfig
}

// DefaultConfig returns the default configuration
func DefaultConfig() (*Config, error) {
	paths, err := DefaultPaths()
	if err != nil {
		return nil, err
	}
	return defaultConfigAt(paths), nil
}

func defaultConfigAt(paths *Paths) *Config {
	return &Config{
		Paths: paths,
		Carousel: CarouselConfig{
			AutoPlay:      true,
			AutoPlayDelay: DefaultAutoPlayDelay,
			PauseOnHover:  true,
		},
		UI:     defaultUISettings(),
		KeyMap: KeyMapConfig{},
	}
}

// Load loads config overrides from ~/.carousel/config.json if present.
func Load() (*Config, error) {
	paths, err := DefaultPaths()
	if err != nil {
		return nil, err
	}
	return LoadFrom(paths)
}

// LoadFrom loads the config file named by paths, falling back to defaults when missing.
func LoadFrom(paths *Paths) (*Config, error) {
	cfg := defaultConfigAt(paths)

	data, err := os.ReadFile(paths.ConfigPath)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	var user struct {
		Carousel struct {
			AutoPlay        *bool `json:"autoplay"`
			AutoPlayDelayMs *int  `json:"autoplay_delay_ms"`
			PauseOnHover    *bool `json:"pause_on_hover"`
		} `json:"carousel"`
		KeyMap KeyMapConfig `json:"keymap,omitempty"`
	}
	if err := json.Unmarshal(data, &user); err != nil {
		return nil, fmt.Errorf("parse %s: %w", paths.ConfigPath, err)
	}

	if v := user.Carousel.AutoPlay; v != nil {
		cfg.Carousel.AutoPlay = *v
	}
	if v := user.Carousel.AutoPlayDelayMs; v != nil {
		cfg.Carousel.AutoPlayDelay = NormalizeDelay(time.Duration(*v) * time.Millisecond)
	}
	if v := user.Carousel.PauseOnHover; v != nil {
		cfg.Carousel.PauseOnHover = *v
	}
	if len(user.KeyMap.Bindings) > 0 {
		cfg.KeyMap = user.KeyMap
	}
	cfg.UI = loadUISettings(paths.ConfigPath)

	return cfg, nil
}

// NormalizeDelay substitutes the default for non-positive delays and floors tiny ones.
func NormalizeDelay(d time.Duration) time.Duration {
	if d <= 0 {
		return DefaultAutoPlayDelay
	}
	if d < minAutoPlayDelay {
		return minAutoPlayDelay
	}
	return d
}
