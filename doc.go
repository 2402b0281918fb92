// Package densematrix is a small dense linear-algebra module built around
// a row-major float64 matrix.
//
// Layout:
//
//	matrix/       Dense: construction, Randomize, scalar ops, in-place
//	              Add/Sub, Multiply, Transpose, Describe
//	gonumconv/    copy to and from gonum's mat.Dense; gonum-backed
//	              reference product for cross-checks
//	cmd/matdemo/  cobra command that prints a worked demo
//
// Quick example:
//
//	a := matrix.New(2, 3, matrix.WithSeed(1))
//	a.Randomize()
//	b := matrix.New(3, 2)
//	b.AddScalar(1)
//	c, err := matrix.Multiply(a, b) // 2×2
//
//	go get github.com/katalvlaran/densematrix
package densematrix
