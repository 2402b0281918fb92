// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures for the Dense kernels.
//   • Keep all data finite unless a test is about IEEE-754 behavior.

package matrix_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/densematrix/matrix"
)

// hide WRAPS any Matrix to hide its concrete type from type assertions.
// Use hide{X} to force the At/Set fallback paths in code under test.
type hide struct{ matrix.Matrix }

// errAt is a sentinel used by failingMatrix.
var errAt = errors.New("test: At failed")

// failingMatrix behaves like its embedded Matrix except that At fails at
// (failI, failJ). Used to prove the receiver is left untouched on error.
type failingMatrix struct {
	matrix.Matrix
	failI, failJ int
}

func (f failingMatrix) At(i, j int) (float64, error) {
	if i == f.failI && j == f.failJ {
		return 0, errAt
	}

	return f.Matrix.At(i, j)
}

// scriptedSource replays fixed draws in order, wrapping around.
type scriptedSource struct {
	vals []float64
	next int
}

func (s *scriptedSource) Float64() float64 {
	v := s.vals[s.next%len(s.vals)]
	s.next++

	return v
}

// MustDense ALLOCATES an r×c *Dense or fails the test.
func MustDense(t testing.TB, r, c int, opts ...matrix.Option) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c, opts...)
	if err != nil {
		t.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}

	return m
}

// NewFilledDense BUILDS r×c *Dense from a row-major flat slice.
func NewFilledDense(t testing.TB, r, c int, vals []float64) *matrix.Dense {
	t.Helper()
	if len(vals) != r*c {
		t.Fatalf("NewFilledDense: want %d values, got %d", r*c, len(vals))
	}
	d := MustDense(t, r, c)
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			MustSet(t, d, i, j, vals[i*c+j])
		}
	}

	return d
}

// MustAt READS (i,j) or fails the test.
func MustAt(t testing.TB, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}

// MustSet WRITES (i,j) or fails the test.
func MustSet(t testing.TB, m matrix.Matrix, i, j int, v float64) {
	t.Helper()
	if err := m.Set(i, j, v); err != nil {
		t.Fatalf("Set(%d,%d): %v", i, j, err)
	}
}

// RandFilledDense RETURNS a new r×c Dense with seeded draws from [1,5).
func RandFilledDense(t testing.TB, r, c int, seed int64) *matrix.Dense {
	t.Helper()
	m := MustDense(t, r, c, matrix.WithSeed(seed))
	m.Randomize()

	return m
}
