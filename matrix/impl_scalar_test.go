// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/densematrix/matrix"
	"github.com/stretchr/testify/require"
)

func TestScalarOps_Scenarios(t *testing.T) {
	cases := []struct {
		name  string
		apply func(m *matrix.Dense)
		want  float64
	}{
		{"add", func(m *matrix.Dense) { m.AddScalar(5) }, 5},
		{"sub", func(m *matrix.Dense) { m.AddScalar(3); m.SubScalar(2) }, 1},
		{"mul", func(m *matrix.Dense) { m.AddScalar(3); m.MulScalar(2) }, 6},
		{"div", func(m *matrix.Dense) { m.AddScalar(8); m.DivScalar(2) }, 4},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			m := matrix.New(2, 2)
			tc.apply(m)
			m.Do(func(i, j int, v float64) bool {
				require.Equalf(t, tc.want, v, "cell (%d,%d)", i, j)
				return true
			})
		})
	}
}

// TestScalarOps_RoundTrip: += then -= and *= then /= restore values within tolerance.
func TestScalarOps_RoundTrip(t *testing.T) {
	for _, seed := range []int64{1, 2, 3} {
		m := RandFilledDense(t, 3, 4, seed)
		orig := m.Clone()

		m.AddScalar(0.75)
		m.SubScalar(0.75)
		ok, err := matrix.AllClose(m, orig, 0, 1e-12)
		require.NoError(t, err)
		require.True(t, ok, "add/sub round trip, seed %d", seed)

		m.MulScalar(3.3)
		m.DivScalar(3.3)
		ok, err = matrix.AllClose(m, orig, 1e-12, 0)
		require.NoError(t, err)
		require.True(t, ok, "mul/div round trip, seed %d", seed)
	}
}

// TestDivScalar_ByZero propagates IEEE-754 specials instead of failing.
func TestDivScalar_ByZero(t *testing.T) {
	m := NewFilledDense(t, 1, 3, []float64{1, -1, 0})
	m.DivScalar(0)

	require.True(t, math.IsInf(MustAt(t, m, 0, 0), 1))
	require.True(t, math.IsInf(MustAt(t, m, 0, 1), -1))
	require.True(t, math.IsNaN(MustAt(t, m, 0, 2)))
}

// TestDivScalar_ByZeroIgnoresPolicy: the ingestion guard does not apply to arithmetic.
func TestDivScalar_ByZeroIgnoresPolicy(t *testing.T) {
	m := MustDense(t, 1, 1, matrix.WithValidateNaNInf())
	MustSet(t, m, 0, 0, 2)
	m.DivScalar(0)
	require.True(t, math.IsInf(MustAt(t, m, 0, 0), 1))
}

// TestScalarOps_Empty is a no-op on empty shapes.
func TestScalarOps_Empty(t *testing.T) {
	m := matrix.New(0, 3)
	m.AddScalar(1)
	m.SubScalar(1)
	m.MulScalar(2)
	m.DivScalar(0)
	require.Equal(t, 0, m.Rows())
	require.Equal(t, 3, m.Cols())
}
