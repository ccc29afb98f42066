package countryinfo

import "errors"

var (
	// ErrUnavailable is returned when the service cannot be reached or times
	// out after retries.
	ErrUnavailable = errors.New("country service unavailable")

	// ErrServiceFault is returned when the service answers with a fault or a
	// response that cannot be parsed.
	ErrServiceFault = errors.New("country service fault")

	// ErrInvalidCode is returned when the input is not a two-letter ISO code.
	// Checked before any network I/O.
	ErrInvalidCode = errors.New("invalid country code")

	// ErrNotFound is returned when a well-formed code has no data in the
	// directory.
	ErrNotFound = errors.New("country not found")
)
