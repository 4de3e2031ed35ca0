// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for random construction and
// printing. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: Random is reproducible for a given seed.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

// Random construction.
const (
	// DefaultRandomLow is the inclusive lower bound of Random entries.
	DefaultRandomLow = 1.0

	// DefaultRandomHigh is the exclusive upper bound of Random entries.
	DefaultRandomHigh = 51.0

	// DefaultSeed is used when the caller does not pass WithSeed.
	// Zero keeps the legacy "seed==0 ⇒ fixed stream" policy of rngFromSeed.
	DefaultSeed int64 = 0
)

// Printing.
const (
	// DefaultPrecision is the number of decimals used by Print.
	DefaultPrecision = 2

	// maxPrecision bounds WithPrecision; float64 carries ~17 significant digits.
	maxPrecision = 17
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicRangeInvalid     = "matrix: WithRandomRange: bounds must be finite with lo < hi"
	panicPrecisionInvalid = "matrix: WithPrecision: precision must be in [0,17]"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option` and resolve
// them via gatherOptions.
type Options struct {
	// random construction
	seed   int64   // DefaultSeed
	lo, hi float64 // DefaultRandomLow, DefaultRandomHigh

	// printing
	precision int // DefaultPrecision
}

// WithSeed fixes the seed used by Random.
// Seed 0 maps to the package default stream (see rngFromSeed).
func WithSeed(seed int64) Option {
	return func(o *Options) { o.seed = seed }
}

// WithRandomRange sets the half-open interval [lo, hi) sampled by Random.
// Implementation:
//   - Stage 1: validate lo, hi finite and lo < hi.
//   - Stage 2: return a setter that writes both bounds.
//
// Errors:
//   - Panics with a stable message when the interval is invalid.
//
// Complexity:
//   - Time O(1), Space O(1).
func WithRandomRange(lo, hi float64) Option {
	if isNonFinite(lo) || isNonFinite(hi) || lo >= hi {
		panic(panicRangeInvalid)
	}

	return func(o *Options) { o.lo, o.hi = lo, hi }
}

// WithPrecision sets the number of decimals Print renders per entry.
// Panics when p is outside [0,17].
func WithPrecision(p int) Option {
	if p < 0 || p > maxPrecision {
		panic(panicPrecisionInvalid)
	}

	return func(o *Options) { o.precision = p }
}

// NewMatrixOptions resolves opts on top of the documented defaults.
// Pure function; stable for a given sequence of opts.
func NewMatrixOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// Seed reports the resolved Random seed.
func (o Options) Seed() int64 { return o.seed }

// RandomRange reports the resolved Random interval [lo, hi).
func (o Options) RandomRange() (lo, hi float64) { return o.lo, o.hi }

// Precision reports the resolved Print precision.
func (o Options) Precision() int { return o.precision }

// gatherOptions applies user-provided Option setters on top of defaults.
// Implementation:
//   - Stage 1: start from the Default* constants.
//   - Stage 2: apply setters in order (last-writer-wins).
//
// Complexity:
//   - Time O(k), Space O(1) for k=len(user).
func gatherOptions(user ...Option) Options {
	o := Options{
		seed:      DefaultSeed,
		lo:        DefaultRandomLow,
		hi:        DefaultRandomHigh,
		precision: DefaultPrecision,
	}
	for _, set := range user {
		if set == nil {
			continue
		}
		set(&o) // apply in order; last-writer-wins semantics
	}

	return o
}

// isNonFinite reports NaN or ±Inf.
func isNonFinite(x float64) bool { return math.IsNaN(x) || math.IsInf(x, 0) }
