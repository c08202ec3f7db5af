package palette

import "errors"

// Error kinds returned by color construction and gradient generation
var (
	ErrParse      = errors.New("parse error")
	ErrRange      = errors.New("value out of range")
	ErrMissingKey = errors.New("missing key")
)
