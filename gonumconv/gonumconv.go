// SPDX-License-Identifier: MIT

// Package gonumconv moves matrices between matrix.Dense and gonum's
// mat.Dense, and offers gonum-backed reference kernels for cross-checks.
//
// Notes:
//   - gonum cannot represent empty dimensions (mat.NewDense panics on a
//     zero row or column count); ToGonum reports matrix.ErrBadShape instead.
//   - Conversions copy; neither side aliases the other's storage.
package gonumconv

import (
	"fmt"

	"github.com/katalvlaran/densematrix/matrix"
	"gonum.org/v1/gonum/mat"
)

const (
	opToGonum      = "ToGonum"
	opFromGonum    = "FromGonum"
	opMulReference = "MulReference"
)

// ToGonum copies m into a new *mat.Dense.
//
// Errors:
//   - matrix.ErrNilMatrix for nil m.
//   - matrix.ErrBadShape when m has a zero dimension.
//   - Any error returned by m.At.
//
// Complexity: O(r*c).
func ToGonum(m matrix.Matrix) (*mat.Dense, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, fmt.Errorf("%s: %w", opToGonum, err)
	}
	r, c := m.Rows(), m.Cols()
	if r == 0 || c == 0 {
		return nil, fmt.Errorf("%s: %dx%d: %w", opToGonum, r, c, matrix.ErrBadShape)
	}

	if d, ok := m.(*matrix.Dense); ok {
		data := make([]float64, 0, r*c)
		for _, row := range d.ToRows() {
			data = append(data, row...)
		}

		return mat.NewDense(r, c, data), nil
	}

	out := mat.NewDense(r, c, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", opToGonum, err)
			}
			out.Set(i, j, v)
		}
	}

	return out, nil
}

// FromGonum copies any gonum matrix (Dense, views, transposes) into a new
// *matrix.Dense configured with opts.
//
// Errors:
//   - matrix.ErrNaNInf when opts enable the numeric policy and g holds a
//     non-finite value.
//
// Complexity: O(r*c).
func FromGonum(g mat.Matrix, opts ...matrix.Option) (*matrix.Dense, error) {
	r, c := g.Dims()
	if r == 0 {
		return matrix.NewDense(0, c, opts...)
	}
	rows := make([][]float64, r)
	for i := 0; i < r; i++ {
		rows[i] = mat.Row(nil, i, g)
	}
	out, err := matrix.FromRows(rows, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opFromGonum, err)
	}

	return out, nil
}

// MulReference computes a × b with gonum's mat.Dense.Mul.
// It exists as an independent oracle for matrix.Multiply.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrInvalidDimension (checked before gonum,
//     which would panic), matrix.ErrBadShape for empty operands.
func MulReference(a, b matrix.Matrix) (*matrix.Dense, error) {
	if err := matrix.ValidateMulCompatible(a, b); err != nil {
		return nil, fmt.Errorf("%s: %w", opMulReference, err)
	}
	ga, err := ToGonum(a)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opMulReference, err)
	}
	gb, err := ToGonum(b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opMulReference, err)
	}

	var out mat.Dense
	out.Mul(ga, gb)

	return FromGonum(&out)
}
