package plan

import "errors"

// Planning errors, reported before any compute unit starts.
var (
	ErrInvalidConfig    = errors.New("unit count and tile count must be non-zero")
	ErrDegenerateTiling = errors.New("tiling factor leaves no elements per tile")
)
