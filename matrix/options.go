// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for Dense construction.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves defaults.
//
// Design goals:
//   - The random provider is injected, never hard-wired: Randomize draws
//     from whatever Source the matrix was built with.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//
// Notes:
//   - The default Source is the process-wide math/rand generator. It has no
//     seeding control; use WithSeed or WithRand for reproducible draws.
//   - *rand.Rand is NOT goroutine-safe. Do not share one across goroutines.
//   - validateNaNInf is an ingestion guard for Set/Apply/FromRows only.
//     Scalar and elementwise arithmetic follow IEEE-754 unguarded.
package matrix

import "math/rand"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultValidateNaNInf toggles finite-value validation in Set/Apply/FromRows.
	// Off by default so that the matrix behaves like plain float64 storage.
	DefaultValidateNaNInf = false

	// RandomLow is the inclusive lower bound of Randomize draws.
	RandomLow = 1.0

	// RandomHigh is the exclusive upper bound of Randomize draws.
	RandomHigh = 5.0
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicNilSource = "matrix: WithSource(nil)"
	panicNilRand   = "matrix: WithRand(nil)"
)

// processSource draws from the math/rand top-level generator.
// It is safe for concurrent use and carries no state of its own.
type processSource struct{}

// Float64 returns a uniform draw in [0, 1) from the process generator.
func (processSource) Float64() float64 { return rand.Float64() }

// defaultSource is shared by every Dense built without a source option.
var defaultSource Source = processSource{}

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (last wins).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	rng            Source // defaultSource unless overridden
	validateNaNInf bool   // DefaultValidateNaNInf
}

// WithSource sets the random provider used by Randomize.
// Panics on nil to surface the programmer error at construction time.
// Complexity: O(1).
func WithSource(src Source) Option {
	if src == nil {
		panic(panicNilSource)
	}

	return func(o *Options) { o.rng = src }
}

// WithRand attaches an explicit *rand.Rand; callers decide the seed policy.
// Panics on nil; prefer WithSeed for reproducible runs.
// Complexity: O(1).
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic(panicNilRand)
	}

	return func(o *Options) { o.rng = r }
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
// Each application builds a fresh stream, so two matrices configured with
// the same seed draw identical values.
// Complexity: O(1).
func WithSeed(seed int64) Option {
	return func(o *Options) { o.rng = rand.New(rand.NewSource(seed)) }
}

// WithValidateNaNInf makes Set, Apply and FromRows reject NaN and ±Inf
// with ErrNaNInf.
//
// Notes:
//   - Scalar ops (DivScalar by zero included) are not affected; they
//     propagate IEEE-754 special values.
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// gatherOptions resolves defaults and applies setters in order.
// Complexity: O(len(opts)).
func gatherOptions(opts ...Option) Options {
	o := Options{
		rng:            defaultSource,
		validateNaNInf: DefaultValidateNaNInf,
	}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
