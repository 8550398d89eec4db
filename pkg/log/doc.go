// Package log provides the logging abstraction used by shiptraffic components.
//
// Components log through the Logger interface so they stay independent of the
// logging library. A zerolog adapter is used by the CLI; the no-op logger keeps
// tests quiet.
//
//	logger := log.NewZerologAdapterWithLogger(zerolog.New(os.Stderr))
//	logger.Info("dataset loaded", log.String("path", path), log.Int("records", n))
//
// # Version
//
// Current version: 1.0.0
package log
