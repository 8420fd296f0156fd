package colorthief

import "errors"

var (
	// ErrEmptyInput is returned when no pixel survives filtering and no
	// default colour was configured.
	ErrEmptyInput = errors.New("no usable pixels")

	// ErrInvalidParameter is returned for out-of-range options.
	ErrInvalidParameter = errors.New("invalid parameter")
)
