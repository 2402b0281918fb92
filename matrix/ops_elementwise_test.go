// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/densematrix/matrix"
	"github.com/stretchr/testify/require"
)

func TestAllClose_FastAndFallback(t *testing.T) {
	a := NewFilledDense(t, 2, 2, []float64{1, 2, 3, 4})
	b := NewFilledDense(t, 2, 2, []float64{1, 2, 3, 4.0000001})

	for _, pair := range [][2]matrix.Matrix{{a, b}, {hide{a}, b}, {a, hide{b}}} {
		ok, err := matrix.AllClose(pair[0], pair[1], 0, 1e-6)
		require.NoError(t, err)
		require.True(t, ok)

		ok, err = matrix.AllClose(pair[0], pair[1], 0, 1e-9)
		require.NoError(t, err)
		require.False(t, ok)
	}
}

func TestAllClose_RelativeAndNegativeTolerances(t *testing.T) {
	a := NewFilledDense(t, 1, 1, []float64{1000})
	b := NewFilledDense(t, 1, 1, []float64{1001})

	ok, err := matrix.AllClose(a, b, -1e-2, 0) // |rtol| is used
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = matrix.AllClose(a, b, 1e-4, 0)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestAllClose_SpecialValues(t *testing.T) {
	inf := NewFilledDense(t, 1, 1, []float64{math.Inf(1)})
	ok, err := matrix.AllClose(inf, inf.Clone(), 0, 0)
	require.NoError(t, err)
	require.True(t, ok)

	nan := NewFilledDense(t, 1, 1, []float64{math.NaN()})
	ok, err = matrix.AllClose(nan, nan.Clone(), 1, 1)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestAllClose_Errors(t *testing.T) {
	a := matrix.New(2, 2)

	_, err := matrix.AllClose(a, matrix.New(2, 3), 0, 0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimension)

	_, err = matrix.AllClose(a, nil, 0, 0)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = matrix.AllClose(a, a, math.NaN(), 0)
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	_, err = matrix.AllClose(a, a, 0, math.Inf(1))
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}
