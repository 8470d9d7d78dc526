package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Config is the optional ~/.calpicker/config.json file. Command-line flags
// win over anything set here.
type Config struct {
	// Timezone is an IANA name ("Europe/Oslo"). Empty means the local zone.
	Timezone string `json:"timezone,omitempty"`

	// FirstWeekday is a weekday name ("monday") or number (0 = Sunday).
	FirstWeekday string `json:"firstWeekday,omitempty"`

	// MinMonth and MaxMonth are YYYY-MM navigation bounds.
	MinMonth string `json:"minMonth,omitempty"`
	MaxMonth string `json:"maxMonth,omitempty"`

	// Events is a path to an .ics file whose event days get a marker.
	Events string `json:"events,omitempty"`

	// Marks are extra YYYY-MM-DD days to mark.
	Marks []string `json:"marks,omitempty"`

	Formats *FormatConfig `json:"formats,omitempty"`
	TUI     *TUIConfig    `json:"tui,omitempty"`
}

// FormatConfig overrides the English month/date labels. Layouts use Go
// reference-time syntax.
type FormatConfig struct {
	MonthYear string   `json:"monthYear,omitempty"`
	Date      string   `json:"date,omitempty"`
	Weekdays  []string `json:"weekdays,omitempty"`
}

type TUIConfig struct {
	Glyphs   string `json:"glyphs,omitempty"` // unicode|ascii
	Theme    string `json:"theme,omitempty"`  // auto|light|dark
	Expanded bool   `json:"expanded,omitempty"`
}

type parseError struct {
	path string
	err  error
}

func (e parseError) Error() string {
	return fmt.Sprintf("invalid config %s: %v", e.path, e.err)
}

func (e parseError) Unwrap() error { return e.err }

func Dir() (string, error) {
	if v := strings.TrimSpace(os.Getenv("CALPICKER_CONFIG_DIR")); v != "" {
		return v, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".calpicker"), nil
}

// Path resolves the config file: CALPICKER_CONFIG, then <Dir>/config.json.
func Path() (string, error) {
	if v := strings.TrimSpace(os.Getenv("CALPICKER_CONFIG")); v != "" {
		return v, nil
	}
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads path (or the default location when path is empty). A missing
// default file yields an empty Config; a missing explicit file is an error.
func Load(path string) (*Config, error) {
	explicit := strings.TrimSpace(path) != ""
	if !explicit {
		p, err := Path()
		if err != nil {
			return nil, err
		}
		path = p
	}
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !explicit {
			return &Config{}, nil
		}
		return nil, err
	}
	var cfg Config
	if err := json.Unmarshal(b, &cfg); err != nil {
		return nil, parseError{path: path, err: err}
	}
	return &cfg, nil
}

func (c *Config) Glyphs() string {
	if c == nil || c.TUI == nil {
		return ""
	}
	return c.TUI.Glyphs
}

func (c *Config) Theme() string {
	if c == nil || c.TUI == nil {
		return ""
	}
	return c.TUI.Theme
}

func (c *Config) Expanded() bool {
	return c != nil && c.TUI != nil && c.TUI.Expanded
}
