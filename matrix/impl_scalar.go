// SPDX-License-Identifier: MIT

// Package matrix - scalar compound-assignment operations.
//
// Each op applies one float64 to every cell in place, in flat row-major
// order. There is no error path: a scalar cannot mismatch a shape, and the
// numeric policy (WithValidateNaNInf) does not apply here. DivScalar(0)
// yields ±Inf or NaN per IEEE-754, exactly as Go float64 division does.

package matrix

// AddScalar performs cell += s for every cell.
func (m *Dense) AddScalar(s float64) {
	for idx := range m.data {
		m.data[idx] += s
	}
}

// SubScalar performs cell -= s for every cell.
func (m *Dense) SubScalar(s float64) {
	for idx := range m.data {
		m.data[idx] -= s
	}
}

// MulScalar performs cell *= s for every cell.
func (m *Dense) MulScalar(s float64) {
	for idx := range m.data {
		m.data[idx] *= s
	}
}

// DivScalar performs cell /= s for every cell. s == 0 is not guarded.
func (m *Dense) DivScalar(s float64) {
	for idx := range m.data {
		m.data[idx] /= s
	}
}
