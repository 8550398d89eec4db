package cliconfig

import (
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// FileConfig mirrors Config with optional fields for TOML.
type FileConfig struct {
	DataFile     string `toml:"data_file"`
	Prompt       string `toml:"prompt"`
	Banner       *bool  `toml:"banner"`
	OutputFormat string `toml:"output_format"`
	LogLevel     string `toml:"log_level"`
	Watch        *bool  `toml:"watch"`
}

// LoadFileConfig reads and parses a TOML config file from the given path.
// A relative data_file is resolved against the config file's directory.
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	if err := toml.Unmarshal(b, &fc); err != nil {
		return fc, err
	}
	if fc.DataFile != "" && !filepath.IsAbs(fc.DataFile) {
		fc.DataFile = filepath.Join(filepath.Dir(path), fc.DataFile)
	}
	return fc, nil
}

// DefaultConfigPath returns ~/.shiptraffic/config.toml, or "" if the home
// directory cannot be determined.
func DefaultConfigPath() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".shiptraffic", "config.toml")
	}
	return ""
}

// ApplyFileConfig applies configuration from a file to the Config struct.
// It respects flags that have been explicitly set (changed map).
func ApplyFileConfig(cfg *Config, fc FileConfig, changed map[string]bool) {
	s := newConfigSetter(changed)

	s.setString("data", fc.DataFile, &cfg.DataFile)
	s.setString("prompt", fc.Prompt, &cfg.Prompt)
	s.setString("format", fc.OutputFormat, &cfg.OutputFormat)
	s.setString("log-level", fc.LogLevel, &cfg.LogLevel)

	s.setBool("banner", fc.Banner, &cfg.Banner)
	s.setBool("watch", fc.Watch, &cfg.Watch)
}

// FileExists checks if a file exists at the given path.
func FileExists(p string) bool {
	info, err := os.Stat(p)
	return err == nil && !info.IsDir()
}
