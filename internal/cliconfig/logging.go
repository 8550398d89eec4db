package cliconfig

import (
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"
)

// Logger builds the console logger used for diagnostics. Command output never
// goes through it.
func Logger(w io.Writer, level string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("parse log level: %w", err)
	}
	out := zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	return zerolog.New(out).Level(lvl).With().Timestamp().Logger(), nil
}
