package series

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon is the stopping tolerance on consecutive partial sums.
	DefaultEpsilon = 1e-13

	// DefaultMaxIterations bounds the auto-stopping loop.
	DefaultMaxIterations = 1_000_000

	// DefaultTerms is N for the fixed-term sum.
	DefaultTerms = 20
)

// Panic messages for invalid option parameters (programmer errors).
const (
	panicEpsilonInvalid = "series: WithEpsilon: eps must be finite and >= 0"
	panicMaxIterInvalid = "series: WithMaxIterations: n must be >= 1"
	panicTermsInvalid   = "series: WithTerms: n must be >= 0"
)

// Options holds the effective configuration for Approximate.
//
// Fields:
//   - Epsilon: tolerance for |S(k) − S(k−1)| (Auto, Stable).
//   - MaxIterations: cap on k (Auto, Stable).
//   - Terms: N for Fixed.
type Options struct {
	Epsilon       float64
	MaxIterations int
	Terms         int
}

// Option mutates Options; constructors validate eagerly and panic on
// nonsensical values, which are programmer errors.
type Option func(*Options)

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		Epsilon:       DefaultEpsilon,
		MaxIterations: DefaultMaxIterations,
		Terms:         DefaultTerms,
	}
}

// WithEpsilon sets the stopping tolerance. Panics if eps is NaN, ±Inf or negative.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.Epsilon = eps }
}

// WithMaxIterations sets the iteration cap. Panics if n < 1.
func WithMaxIterations(n int) Option {
	if n < 1 {
		panic(panicMaxIterInvalid)
	}

	return func(o *Options) { o.MaxIterations = n }
}

// WithTerms sets N for the fixed-term sum. Panics if n < 0.
func WithTerms(n int) Option {
	if n < 0 {
		panic(panicTermsInvalid)
	}

	return func(o *Options) { o.Terms = n }
}

// gatherOptions applies opts over the defaults in order; later options win.
func gatherOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
