// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors. Operations return
// these sentinels wrapped with an operation tag (see matrixErrorf) and tests
// MUST check them via errors.Is. No operation panics on user-triggered error
// conditions; panics are reserved for programmer errors (negative shapes in
// New, nil option arguments).

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and easy
// grepping. Sentinels are never formatted at definition site; context is
// attached with fmt.Errorf("ctx: %w", ErrX) at the detection site.
//
// ERROR PRIORITY (enforced in tests):
// nil operand -> shape/dimension -> index -> numeric policy.

var (
	// ErrInvalidDimension signals incompatible operand shapes: Add/Sub with
	// different shapes, Multiply where a.Cols != b.Rows, or a negative
	// dimension passed to NewDense.
	// Recoverable: the receiver is left unchanged.
	ErrInvalidDimension = errors.New("matrix: invalid dimension")

	// ErrNotImplemented marks an intentionally unsupported operation.
	// Nothing in the package returns it today; it is reserved for linear
	// algebra extensions (determinant, inverse).
	ErrNotImplemented = errors.New("matrix: operation not implemented")

	// ErrOutOfRange indicates that a row or column index is outside bounds.
	// Public indexers (At/Set/Row) return this, never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNilMatrix indicates that a nil Matrix argument was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrBadShape is returned when an input grid cannot describe a matrix
	// (ragged rows in FromRows, empty shapes where an adapter needs data).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrNaNInf signals a NaN or ±Inf value where the numeric policy
	// (WithValidateNaNInf) requires finite values, or a non-finite tolerance.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")
)
