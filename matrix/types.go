// SPDX-License-Identifier: MIT

// Package matrix: domain-facing types shared by Dense and the operations.
// Errors and options live in dedicated files (errors.go, options.go).
package matrix

// Matrix represents a two-dimensional mutable array of float64 values.
// Binary operations accept any Matrix; *Dense operands unlock the flat
// row-major fast path, other implementations go through At/Set.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	Set(i, j int, v float64) error

	// Clone returns a deep copy of the matrix.
	// The returned cells are independent of the original. *Dense clones
	// share the original's random Source (see Dense.Clone).
	// Complexity: O(rows*cols).
	Clone() Matrix
}

// Source supplies uniform draws in [0, 1) for Randomize.
// *math/rand.Rand satisfies it; tests inject a seeded or scripted source.
type Source interface {
	Float64() float64
}
