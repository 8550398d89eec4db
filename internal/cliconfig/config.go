package cliconfig

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator"

	"github.com/bft-labs/shiptraffic/internal/domain"
	"github.com/bft-labs/shiptraffic/internal/repl"
	"github.com/bft-labs/shiptraffic/pkg/dataset"
)

var validate = validator.New()

// Config holds CLI configuration for shiptraffic.
type Config struct {
	DataFile     string `validate:"required"`
	Prompt       string
	Banner       bool
	OutputFormat string `validate:"oneof=text json"`
	LogLevel     string `validate:"oneof=debug info warn error disabled"`
	Watch        bool
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		DataFile:     dataset.DefaultPath,
		Prompt:       repl.DefaultPrompt,
		Banner:       true,
		OutputFormat: repl.FormatText,
		LogLevel:     "warn",
	}
}

// Validate normalizes the configuration and checks it for errors.
func (c *Config) Validate() error {
	c.DataFile = strings.TrimSpace(c.DataFile)
	c.OutputFormat = strings.ToLower(strings.TrimSpace(c.OutputFormat))
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))

	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidConfig, err)
	}
	return nil
}

// configSetter applies configuration values while respecting flag precedence.
// It only applies values if the corresponding flag hasn't been explicitly set.
type configSetter struct {
	changed map[string]bool
}

func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

// setString sets a string value if not empty and flag not changed.
func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

// setBool sets a bool value from a pointer if not nil and flag not changed.
func (s *configSetter) setBool(flag string, value *bool, dst *bool) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}
