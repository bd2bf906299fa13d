package workinghours

import "errors"

var (
	// ErrInvalidArgument is returned when a value violates a domain rule,
	// e.g. an adjustment outside its range or an opening after the closing.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrMalformedInput is returned when raw input cannot be read as a
	// time of day or a decimal.
	ErrMalformedInput = errors.New("malformed input")
)
