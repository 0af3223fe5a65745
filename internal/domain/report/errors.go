package report

import "errors"

// Report domain errors
var (
	// ErrInvalidPeriod rejects malformed date/month/year input before
	// the attendance source is ever queried
	ErrInvalidPeriod = errors.New("invalid report period")

	// ErrSourceUnavailable marks the attendance source as unreachable;
	// callers may retry
	ErrSourceUnavailable = errors.New("attendance source unavailable")
)
