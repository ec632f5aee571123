package panel

import "errors"

var (
	// ErrMissingColumn is returned when a required column is absent.
	ErrMissingColumn = errors.New("missing column")

	// ErrDuplicateKey is returned when a series has two values for the
	// same (country, time) pair.
	ErrDuplicateKey = errors.New("duplicate (country, time) key")

	// ErrUnknownFrequency is returned for frequency codes other than A, Q or M.
	ErrUnknownFrequency = errors.New("unknown frequency")

	// ErrBadTime is returned when a TIME value cannot be parsed.
	ErrBadTime = errors.New("unparseable time")

	// ErrShape is returned when frame columns and index disagree in length.
	ErrShape = errors.New("column length does not match index")
)
