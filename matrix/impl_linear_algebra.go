// SPDX-License-Identifier: MIT
// Package matrix provides the arithmetic kernels of Dense: in-place
// element-wise addition and subtraction, matrix multiplication and
// transposition. All kernels perform fail-fast validation and return
// clear errors on dimension mismatches.
//
// Purpose:
//   - Define operation tags and shared helpers for error reporting.
//   - Keep a flat-slice fast path for *Dense operands and an At/Set
//     fallback for any other Matrix, with identical results.
//
// Notes:
//   - Add/Sub mutate the receiver only and never partially: validation and
//     all operand reads happen before the first write.
//   - Multiply accumulates the full dot product over the contraction index.

package matrix

import "fmt"

// ZeroSum is the initial value of a dot-product accumulator.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping.
const (
	opAdd        = "Add"
	opSub        = "Sub"
	opMultiply   = "Multiply"
	opTransposed = "Transposed"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// The wrapper keeps a stable "Op: underlying" shape for uniform reporting.
// Use only when err != nil.
//
// Complexity:
//   - Time O(1), Space O(1).
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// addSubInPlace computes m[i,j] += sign*other[i,j] for sign ∈ {+1, -1}.
//
// Implementation:
//   - Stage 1: ValidateBinarySameShape(m, other).
//   - Stage 2: Fast path if other is *Dense - single flat loop 0..n-1.
//     Otherwise stage other's cells into a buffer via At, then apply.
//
// Behavior highlights:
//   - On any error the receiver is left exactly as it was.
//   - Self-aliasing (m.Add(m)) is fine: each cell reads before it writes.
//
// Complexity:
//   - Time O(r*c); Space O(1) on the fast path, O(r*c) on the fallback.
func (m *Dense) addSubInPlace(other Matrix, sign float64, opTag string) error {
	if err := ValidateBinarySameShape(m, other); err != nil {
		return matrixErrorf(opTag, err)
	}

	if od, ok := other.(*Dense); ok {
		for idx := range m.data { // deterministic 0..n-1
			m.data[idx] += sign * od.data[idx]
		}

		return nil
	}

	// Fallback: read everything first so a failing At cannot leave m half-updated.
	staged := make([]float64, len(m.data))
	var i, j int
	var v float64
	var err error
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			if v, err = other.At(i, j); err != nil {
				return matrixErrorf(opTag, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			staged[i*m.c+j] = v
		}
	}
	for idx := range m.data {
		m.data[idx] += sign * staged[idx]
	}

	return nil
}

// Add performs m[i,j] += other[i,j] for every cell, in place.
//
// Errors:
//   - ErrNilMatrix (nil other), ErrInvalidDimension (shape mismatch).
//     In both cases m is unmodified.
//
// Complexity:
//   - Time O(r*c).
func (m *Dense) Add(other Matrix) error { return m.addSubInPlace(other, +1, opAdd) }

// Sub performs m[i,j] -= other[i,j] for every cell, in place.
// Same contract as Add.
func (m *Dense) Sub(other Matrix) error { return m.addSubInPlace(other, -1, opSub) }

// Multiply returns the matrix product C = A × B as a new Dense.
//
// Implementation:
//   - Stage 1: Validate A,B (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: If A and B are *Dense, use i→k→j with row-major strides;
//     otherwise use i→j→k via At.
//
// Behavior highlights:
//   - C[i,j] = Σ_k A[i,k]*B[k,j], accumulated over every k.
//   - Operands are never mutated; C gets A's Source and numeric policy
//     when A is *Dense.
//   - An inner dimension of zero yields an all-zero r×c result.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrInvalidDimension (inner mismatch, or an
//     r×c result too large to address).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Multiply(a, b Matrix) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMultiply, err)
	}

	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res, err := resultLike(a, aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMultiply, err)
	}

	var (
		i, j, k int
		av, bv  float64
	)
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			// da.data layout: i*aCols + k; db.data layout: k*bCols + j
			var rowOffsetA, rowOffsetB, rowOffsetR int
			for i = 0; i < aRows; i++ {
				rowOffsetA = i * aCols
				rowOffsetR = i * bCols
				for k = 0; k < aCols; k++ {
					av = da.data[rowOffsetA+k]
					rowOffsetB = k * bCols
					for j = 0; j < bCols; j++ {
						res.data[rowOffsetR+j] += av * db.data[rowOffsetB+j]
					}
				}
			}

			return res, nil
		}
	}

	// Fallback: generic interface triple loop (i-j-k).
	var current float64
	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			current = ZeroSum
			for k = 0; k < aCols; k++ {
				if av, err = a.At(i, k); err != nil {
					return nil, matrixErrorf(opMultiply, fmt.Errorf("At(%d,%d): %w", i, k, err))
				}
				if bv, err = b.At(k, j); err != nil {
					return nil, matrixErrorf(opMultiply, fmt.Errorf("At(%d,%d): %w", k, j, err))
				}
				current += av * bv
			}
			res.data[i*bCols+j] = current
		}
	}

	return res, nil
}

// Transpose swaps rows and columns of m in place.
// The transposed buffer is built first and then swapped in together with
// the new shape, so a partially transposed state is never observable.
// Complexity: Time O(r*c), Space O(r*c).
func (m *Dense) Transpose() {
	rows, cols := m.r, m.c
	next := make([]float64, len(m.data))
	var i, j, baseSrc int
	for i = 0; i < rows; i++ {
		baseSrc = i * cols
		for j = 0; j < cols; j++ {
			next[j*rows+i] = m.data[baseSrc+j]
		}
	}
	m.r, m.c, m.data = cols, rows, next
}

// Transposed returns mᵀ as a new Dense; m is not mutated.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity: Time O(r*c), Space O(r*c).
func Transposed(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTransposed, err)
	}
	if dm, ok := m.(*Dense); ok {
		out := dm.clone()
		out.Transpose()

		return out, nil
	}

	rows, cols := m.Rows(), m.Cols()
	res, err := resultLike(m, cols, rows)
	if err != nil {
		return nil, matrixErrorf(opTransposed, err)
	}
	var i, j int
	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opTransposed, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			res.data[j*rows+i] = v
		}
	}

	return res, nil
}

// resultLike allocates a zero rows×cols Dense carrying src's Source and
// numeric policy when src is *Dense, package defaults otherwise.
// Returns ErrInvalidDimension when rows*cols does not fit in an int.
func resultLike(src Matrix, rows, cols int) (*Dense, error) {
	n, err := checkedSize(rows, cols)
	if err != nil {
		return nil, fmt.Errorf("%dx%d: %w", rows, cols, err)
	}
	out := &Dense{
		r:              rows,
		c:              cols,
		data:           make([]float64, n),
		rng:            defaultSource,
		validateNaNInf: DefaultValidateNaNInf,
	}
	if d, ok := src.(*Dense); ok {
		out.rng = d.rng
		out.validateNaNInf = d.validateNaNInf
	}

	return out, nil
}
