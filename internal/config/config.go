// Package config loads rheia's settings from a TOML file and RHEIA_*
// environment variables.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/iw2rmb/rheia/highlight"
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("invalid config")

// Dialog backends.
const (
	DialogPrompt = "prompt"
	DialogNative = "native"
)

const envPrefix = "RHEIA_"

type Config struct {
	// DefaultFile is loaded at startup. Empty starts untitled.
	DefaultFile string `toml:"default_file"`
	Theme       string `toml:"theme"`
	Dialog      string `toml:"dialog"`
	StartDir    string `toml:"start_dir"`

	LineNumbers  bool `toml:"line_numbers"`
	TabWidth     int  `toml:"tab_width"`
	HistoryLimit int  `toml:"history_limit"`

	Watch       bool `toml:"watch"`
	DropOnPaste bool `toml:"drop_on_paste"`

	Log Log `toml:"log"`
}

type Log struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

func Default() Config {
	return Config{
		Theme:        string(highlight.DefaultTheme),
		Dialog:       DialogPrompt,
		LineNumbers:  true,
		TabWidth:     4,
		HistoryLimit: 1000,
		Watch:        true,
		DropOnPaste:  true,
		Log:          Log{Level: "info"},
	}
}

// DefaultPath returns the per-user config file location.
func DefaultPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "rheia", "config.toml")
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "rheia", "config.toml")
}

// Load reads path over the defaults. A missing file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config file %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return cfg, nil
}

// ApplyEnv overrides fields from RHEIA_* variables, e.g. RHEIA_THEME or
// RHEIA_LOG_LEVEL. lookup is usually os.LookupEnv.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	str := func(name string, dst *string) {
		if v, ok := lookup(envPrefix + name); ok {
			*dst = v
		}
	}
	var errs []error
	boolean := func(name string, dst *bool) {
		if v, ok := lookup(envPrefix + name); ok {
			b, err := strconv.ParseBool(strings.TrimSpace(v))
			if err != nil {
				errs = append(errs, fmt.Errorf("%s%s: %w", envPrefix, name, err))
				return
			}
			*dst = b
		}
	}
	integer := func(name string, dst *int) {
		if v, ok := lookup(envPrefix + name); ok {
			n, err := strconv.Atoi(strings.TrimSpace(v))
			if err != nil {
				errs = append(errs, fmt.Errorf("%s%s: %w", envPrefix, name, err))
				return
			}
			*dst = n
		}
	}

	str("DEFAULT_FILE", &c.DefaultFile)
	str("THEME", &c.Theme)
	str("DIALOG", &c.Dialog)
	str("START_DIR", &c.StartDir)
	boolean("LINE_NUMBERS", &c.LineNumbers)
	integer("TAB_WIDTH", &c.TabWidth)
	integer("HISTORY_LIMIT", &c.HistoryLimit)
	boolean("WATCH", &c.Watch)
	boolean("DROP_ON_PASTE", &c.DropOnPaste)
	str("LOG_FILE", &c.Log.File)
	str("LOG_LEVEL", &c.Log.Level)

	return errors.Join(errs...)
}

func (c Config) Validate() error {
	if _, err := highlight.Parse(c.Theme); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	switch c.Dialog {
	case DialogPrompt, DialogNative:
	default:
		return fmt.Errorf("%w: dialog must be %q or %q, got %q", ErrInvalid, DialogPrompt, DialogNative, c.Dialog)
	}
	if c.TabWidth < 1 || c.TabWidth > 16 {
		return fmt.Errorf("%w: tab_width must be between 1 and 16, got %d", ErrInvalid, c.TabWidth)
	}
	if _, err := c.LogLevel(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}

// ThemeValue returns the configured theme. Call Validate first.
func (c Config) ThemeValue() highlight.Theme {
	t, err := highlight.Parse(c.Theme)
	if err != nil {
		return highlight.DefaultTheme
	}
	return t
}

// LogLevel parses Log.Level. Empty means info.
func (c Config) LogLevel() (slog.Level, error) {
	var lvl slog.Level
	if strings.TrimSpace(c.Log.Level) == "" {
		return slog.LevelInfo, nil
	}
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(c.Log.Level))); err != nil {
		return slog.LevelInfo, fmt.Errorf("log level %q: %w", c.Log.Level, err)
	}
	return lvl, nil
}
