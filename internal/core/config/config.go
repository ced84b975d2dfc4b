// Package config handles configuration loading and validation for lobby.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/colonyops/lobby/internal/core/auth"
	"github.com/colonyops/lobby/internal/core/styles"
	"github.com/colonyops/lobby/internal/core/toast"
)

// Anchor is the screen corner toasts are pinned to.
type Anchor string

const (
	AnchorTopRight    Anchor = "top-right"
	AnchorTopLeft     Anchor = "top-left"
	AnchorBottomRight Anchor = "bottom-right"
	AnchorBottomLeft  Anchor = "bottom-left"
)

// IsValid reports whether a is a known anchor.
func (a Anchor) IsValid() bool {
	switch a {
	case AnchorTopRight, AnchorTopLeft, AnchorBottomRight, AnchorBottomLeft:
		return true
	}
	return false
}

// Top reports whether the anchor is on the top edge.
func (a Anchor) Top() bool { return a == AnchorTopRight || a == AnchorTopLeft }

// Right reports whether the anchor is on the right edge.
func (a Anchor) Right() bool { return a == AnchorTopRight || a == AnchorBottomRight }

// Config holds the application configuration.
type Config struct {
	API   APIConfig   `yaml:"api"`
	Toast ToastConfig `yaml:"toast"`
	TUI   TUIConfig   `yaml:"tui"`
}

// APIConfig locates the external login endpoint.
type APIConfig struct {
	BaseURL   string        `yaml:"base_url"`
	LoginPath string        `yaml:"login_path"`
	Timeout   time.Duration `yaml:"timeout"`
}

// ToastConfig controls notification presentation.
type ToastConfig struct {
	Duration time.Duration `yaml:"duration"`
	Anchor   Anchor        `yaml:"anchor"`
}

// TUIConfig holds terminal UI settings.
type TUIConfig struct {
	Theme      string `yaml:"theme"`
	Animations *bool  `yaml:"animations"` // nil = enabled
}

// AnimationsEnabled returns whether the entry reveal animation runs.
func (t TUIConfig) AnimationsEnabled() bool {
	return t.Animations == nil || *t.Animations
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		API: APIConfig{
			BaseURL:   "http://localhost:8090",
			LoginPath: auth.DefaultLoginPath,
			Timeout:   auth.DefaultTimeout,
		},
		Toast: ToastConfig{
			Duration: toast.DefaultDuration,
			Anchor:   AnchorTopRight,
		},
		TUI: TUIConfig{
			Theme: styles.DefaultTheme,
		},
	}
}

// Load reads configuration from the given path.
// If configPath is empty or doesn't exist, returns defaults.
func Load(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}
		}
	}

	// Apply defaults for zero values
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.API.BaseURL == "" {
		c.API.BaseURL = defaults.API.BaseURL
	}
	if c.API.LoginPath == "" {
		c.API.LoginPath = defaults.API.LoginPath
	}
	if c.API.Timeout == 0 {
		c.API.Timeout = defaults.API.Timeout
	}
	if c.Toast.Duration == 0 {
		c.Toast.Duration = defaults.Toast.Duration
	}
	if c.Toast.Anchor == "" {
		c.Toast.Anchor = defaults.Toast.Anchor
	}
	if c.TUI.Theme == "" {
		c.TUI.Theme = defaults.TUI.Theme
	}
}

// Validate checks that the configuration is structurally valid.
func (c *Config) Validate() error {
	if c.API.Timeout < 0 {
		return fmt.Errorf("api.timeout cannot be negative")
	}

	if c.Toast.Duration < 0 {
		return fmt.Errorf("toast.duration cannot be negative")
	}

	if !c.Toast.Anchor.IsValid() {
		return fmt.Errorf("toast.anchor %q is not one of top-right, top-left, bottom-right, bottom-left", c.Toast.Anchor)
	}

	if _, ok := styles.GetPalette(c.TUI.Theme); !ok {
		return fmt.Errorf("tui.theme %q is unknown, available: %v", c.TUI.Theme, styles.ThemeNames())
	}

	return nil
}

// AuthOptions converts the api section into auth client options.
func (c *Config) AuthOptions() auth.Options {
	return auth.Options{
		BaseURL:   c.API.BaseURL,
		LoginPath: c.API.LoginPath,
		Timeout:   c.API.Timeout,
	}
}
