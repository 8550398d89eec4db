package domain

import "errors"

// Domain errors represent error conditions in the shiptraffic domain.
// They are wrapped with context by the returning layer and can be checked with errors.Is.
var (
	// ErrDataUnavailable is returned when the data file is missing or unreadable.
	ErrDataUnavailable = errors.New("shiptraffic: data unavailable")

	// ErrDataFormat is returned when the data file does not parse or lacks a record collection.
	ErrDataFormat = errors.New("shiptraffic: data format error")

	// ErrInvalidCommand is returned when the first token of an input line names no command.
	ErrInvalidCommand = errors.New("shiptraffic: invalid command")

	// ErrInvalidArgument is returned for a wrong argument count or a malformed count argument.
	ErrInvalidArgument = errors.New("shiptraffic: invalid argument")

	// ErrInvalidConfig is returned when configuration validation fails.
	ErrInvalidConfig = errors.New("shiptraffic: invalid configuration")
)
