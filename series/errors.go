package series

import "errors"

// Sentinel errors. Every message carries the "series: " prefix; callers match
// with errors.Is.
var (
	// ErrNaN indicates a NaN argument x.
	ErrNaN = errors.New("series: x is NaN")

	// ErrBadEpsilon indicates a negative or NaN tolerance.
	ErrBadEpsilon = errors.New("series: epsilon must be >= 0")

	// ErrBadMaxIterations indicates an iteration cap below 1.
	ErrBadMaxIterations = errors.New("series: max iterations must be >= 1")

	// ErrUnknownMode indicates a Mode outside Fixed/Auto/Stable.
	ErrUnknownMode = errors.New("series: unknown mode")
)
