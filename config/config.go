// Package config loads and saves sicasm's persistent settings: the
// default output directory, verbosity level, and text record width,
// stored as TOML.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/BurntSushi/toml"
)

// Config holds the settings the batch CLI and interactive shell share.
type Config struct {
	Assemble struct {
		Verbosity       int    `toml:"verbosity"`        // 0=silent, 1=summary, 2=line detail
		TextRecordWidth int    `toml:"text_record_width"` // bytes per T record, max 30
		OutputDir       string `toml:"output_dir"`
	} `toml:"assemble"`

	Shell struct {
		Prompt      string `toml:"prompt"`
		HistorySize int    `toml:"history_size"`
		// AutoStart launches the interactive shell when no source file
		// is given and stdin is attached to a terminal.
		AutoStart bool `toml:"auto_start"`
	} `toml:"shell"`
}

// Default returns a Config populated with sicasm's built-in defaults.
func Default() *Config {
	cfg := &Config{}
	cfg.Assemble.Verbosity = 0
	cfg.Assemble.TextRecordWidth = 30
	cfg.Assemble.OutputDir = "."
	cfg.Shell.Prompt = "sicasm> "
	cfg.Shell.HistorySize = 1000
	cfg.Shell.AutoStart = true
	return cfg
}

// Path returns the platform-specific path to sicasm's config file.
func Path() string {
	var dir string
	switch runtime.GOOS {
	case "windows":
		dir = os.Getenv("APPDATA")
		if dir == "" {
			dir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
		dir = filepath.Join(dir, "sicasm")
	case "darwin", "linux":
		home, err := os.UserHomeDir()
		if err != nil {
			return "sicasm.toml"
		}
		dir = filepath.Join(home, ".config", "sicasm")
	default:
		return "sicasm.toml"
	}
	if err := os.MkdirAll(dir, 0750); err != nil {
		return "sicasm.toml"
	}
	return filepath.Join(dir, "config.toml")
}

// Load reads configuration from the default config file, falling back
// to Default() if the file does not exist.
func Load() (*Config, error) {
	return LoadFrom(Path())
}

// LoadFrom reads configuration from path, falling back to Default() if
// the file does not exist.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if cfg.Assemble.TextRecordWidth <= 0 || cfg.Assemble.TextRecordWidth > 30 {
		return nil, fmt.Errorf("config: text_record_width must be between 1 and 30")
	}
	return cfg, nil
}

// Save writes c to the default config file.
func (c *Config) Save() error {
	return c.SaveTo(Path())
}

// SaveTo writes c to path.
func (c *Config) SaveTo(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return fmt.Errorf("config: create directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("config: create %s: %w", path, err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(c); err != nil {
		return fmt.Errorf("config: encode: %w", err)
	}
	return nil
}
