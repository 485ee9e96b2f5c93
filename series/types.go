package series

import (
	"fmt"
	"strings"
)

// Result is the outcome of an auto-stopping series computation.
// It is returned by value and never mutated afterwards.
type Result struct {
	// Value is the partial sum at the step where the loop stopped.
	Value float64

	// Iterations is the index k of the last term added (k ≥ 1 for the
	// auto-stopping sums, N for SumFixedTerms via Approximate).
	Iterations int

	// Converged is false iff the iteration cap ended the loop before
	// |S(k) − S(k−1)| ≤ ε held.
	Converged bool
}

// Mode selects one of the three summation strategies.
type Mode int

const (
	// Fixed sums exactly Options.Terms terms after t₀.
	Fixed Mode = iota

	// Auto stops on the ε-criterion or the iteration cap.
	Auto

	// Stable is Auto with the reciprocal rule for negative x.
	Stable
)

var modeNames = [...]string{Fixed: "fixed", Auto: "auto", Stable: "stable"}

// String returns the lower-case mode name.
func (m Mode) String() string {
	if m < Fixed || m > Stable {
		return fmt.Sprintf("Mode(%d)", int(m))
	}

	return modeNames[m]
}

// ParseMode is the inverse of Mode.String (case-insensitive).
func ParseMode(s string) (Mode, error) {
	for m, name := range modeNames {
		if strings.EqualFold(s, name) {
			return Mode(m), nil
		}
	}

	return 0, fmt.Errorf("%q: %w", s, ErrUnknownMode)
}

// Comparison relates an approximation to the reference math.Exp(X).
//
// RelErr is AbsErr/|Exact|; it is +Inf (or NaN) when Exact underflows to 0.
type Comparison struct {
	X      float64
	Approx float64
	Exact  float64
	AbsErr float64
	RelErr float64
}
