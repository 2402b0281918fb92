// SPDX-License-Identifier: MIT

// Package matrix - randomized initialization.
//
// Randomize draws from the Source attached to the matrix (options.go).
// The default Source is the process-wide math/rand generator; tests and
// reproducible pipelines inject one with WithSeed, WithRand or WithSource.

package matrix

import "math"

// Randomize overwrites every cell with a uniform draw from
// [RandomLow, RandomHigh), in row-major order. Shape is unchanged.
//
// Behavior highlights:
//   - One Source draw per cell, so a seeded Source gives reproducible grids.
//   - The upper bound stays exclusive even when low + u*(high-low) rounds
//     up to high for u close to 1.
//
// Complexity: Time O(r*c), Space O(1).
func (m *Dense) Randomize() {
	src := m.rng
	if src == nil {
		src = defaultSource
	}
	for idx := range m.data {
		m.data[idx] = uniform(src.Float64(), RandomLow, RandomHigh)
	}
}

// uniform maps u ∈ [0,1) onto [lo,hi).
func uniform(u, lo, hi float64) float64 {
	v := lo + u*(hi-lo)
	if v >= hi {
		v = math.Nextafter(hi, lo)
	}
	if v < lo {
		v = lo
	}

	return v
}
