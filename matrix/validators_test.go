// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/densematrix/matrix"
	"github.com/stretchr/testify/require"
)

func TestValidators(t *testing.T) {
	var typedNil *matrix.Dense

	require.ErrorIs(t, matrix.ValidateNotNil(nil), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateNotNil(typedNil), matrix.ErrNilMatrix)
	require.NoError(t, matrix.ValidateNotNil(matrix.New(0, 0)))

	require.NoError(t, matrix.ValidateSameShape(matrix.New(2, 3), matrix.New(2, 3)))
	require.ErrorIs(t, matrix.ValidateSameShape(matrix.New(2, 3), matrix.New(3, 3)), matrix.ErrInvalidDimension)
	require.ErrorIs(t, matrix.ValidateSameShape(matrix.New(2, 3), matrix.New(2, 2)), matrix.ErrInvalidDimension)

	require.ErrorIs(t, matrix.ValidateBinarySameShape(nil, matrix.New(1, 1)), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateBinarySameShape(matrix.New(1, 1), nil), matrix.ErrNilMatrix)

	require.NoError(t, matrix.ValidateMulCompatible(matrix.New(2, 3), matrix.New(3, 4)))
	require.ErrorIs(t, matrix.ValidateMulCompatible(matrix.New(2, 3), matrix.New(2, 3)), matrix.ErrInvalidDimension)
	require.ErrorIs(t, matrix.ValidateMulCompatible(nil, matrix.New(2, 3)), matrix.ErrNilMatrix)
}

// TestNotImplementedIsReserved keeps the sentinel distinct from the others.
func TestNotImplementedIsReserved(t *testing.T) {
	require.NotErrorIs(t, matrix.ErrNotImplemented, matrix.ErrInvalidDimension)
	require.EqualError(t, matrix.ErrNotImplemented, "matrix: operation not implemented")
}
