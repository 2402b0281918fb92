// Package matrix implements a dense, row-major float64 matrix.
//
// What it offers:
//
//   - Construction: New / NewDense (zero-filled, empty dimensions allowed)
//     and FromRows (deep copy of a row-major grid).
//   - Randomize: uniform draws from [1, 5) through an injectable Source
//     (WithSeed, WithRand, WithSource); the default is the process-wide
//     math/rand generator.
//   - Scalar ops, in place: AddScalar, SubScalar, MulScalar, DivScalar.
//   - Elementwise ops, in place on the receiver: Add, Sub. A shape
//     mismatch returns ErrInvalidDimension and leaves the receiver intact.
//   - Multiply(a, b): a new a.Rows()×b.Cols() product with the full
//     dot-product sum in every cell.
//   - Transpose (in place) and Transposed (new matrix).
//   - Describe / Print: framed debug rendering; String for fmt.
//
// Errors are package sentinels (errors.go) wrapped with an operation tag;
// match them with errors.Is. Division by zero is not an error: it yields
// ±Inf or NaN per IEEE-754.
//
// Dense is not safe for concurrent mutation.
//
// Quick example:
//
//	a := matrix.New(2, 2)
//	a.AddScalar(1)
//	b := matrix.New(2, 2)
//	b.AddScalar(1)
//	_ = a.Add(b) // a[0][0] == 2
package matrix
