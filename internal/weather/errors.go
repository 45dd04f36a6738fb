package weather

import "errors"

var (
	// ErrNotFound is returned when a dataset location does not exist or cannot be read.
	ErrNotFound = errors.New("dataset not found")

	// ErrParse is returned for malformed rows, numbers or dates.
	ErrParse = errors.New("parse error")

	// ErrEmptyInput is returned when an aggregate is requested over no values.
	ErrEmptyInput = errors.New("empty input")

	// ErrUnavailable is returned when a remote source fails to answer usably
	// (transport error, rate limit, 5xx, open circuit).
	ErrUnavailable = errors.New("source unavailable")

	// ErrUnknownSource is returned when a source name is not configured.
	ErrUnknownSource = errors.New("unknown source")
)
