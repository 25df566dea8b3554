// Copyright 2026 The digitgrad Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Error is the panic payload for operations applied to matrices with
// incompatible shapes. It carries the operation name and the offending
// dimensions.
type Error struct {
	msg string
}

// Error implements the error interface.
func (e Error) Error() string { return e.msg }

// errShape builds an Error and panics with it.
func errShape(op string, format string, args ...interface{}) {
	panic(Error{msg: "matrix: " + op + ": " + fmt.Sprintf(format, args...)})
}

// Matrix is a dense, row-major 2-D array of float64 values with fixed
// dimensions. The zero value is not usable; use the creation functions.
type Matrix struct {
	data *mat.Dense
}

// Dims returns the row and column counts.
func (m *Matrix) Dims() (rows, cols int) {
	return m.data.Dims()
}

// At returns the element at row i, column j.
func (m *Matrix) At(i, j int) float64 {
	return m.data.At(i, j)
}

// Set assigns the element at row i, column j.
func (m *Matrix) Set(i, j int, v float64) {
	m.data.Set(i, j, v)
}

// RawRow returns the backing slice for row i without copying. The slice
// is valid until the matrix is mutated.
func (m *Matrix) RawRow(i int) []float64 {
	return m.data.RawRowView(i)
}

// Dense exposes the underlying gonum matrix for interoperation with
// gonum packages. Mutations through the returned value are visible in m.
func (m *Matrix) Dense() *mat.Dense {
	return m.data
}

// Clone returns a deep copy of m.
func (m *Matrix) Clone() *Matrix {
	var d mat.Dense
	d.CloneFrom(m.data)
	return &Matrix{data: &d}
}

// CopyFrom overwrites m's elements with other's. Panics if shapes differ.
func (m *Matrix) CopyFrom(other *Matrix) {
	mr, mc := m.Dims()
	or, oc := other.Dims()
	if mr != or || mc != oc {
		errShape("CopyFrom", "cannot copy %dx%d into %dx%d", or, oc, mr, mc)
	}
	m.data.Copy(other.data)
}

// MatMul returns the matrix product m·other.
//
// Panics if m's column count does not equal other's row count.
func (m *Matrix) MatMul(other *Matrix) *Matrix {
	mr, mc := m.Dims()
	or, oc := other.Dims()
	if mc != or {
		errShape("MatMul", "inner dimensions differ: %dx%d · %dx%d", mr, mc, or, oc)
	}
	out := mat.NewDense(mr, oc, nil)
	out.Mul(m.data, other.data)
	return &Matrix{data: out}
}

// T returns a materialized transpose of m.
func (m *Matrix) T() *Matrix {
	r, c := m.Dims()
	out := mat.NewDense(c, r, nil)
	out.Copy(m.data.T())
	return &Matrix{data: out}
}

// Add returns the element-wise sum m + other. Panics if shapes differ.
func (m *Matrix) Add(other *Matrix) *Matrix {
	out := m.likeShaped("Add", other)
	out.data.Add(m.data, other.data)
	return out
}

// Sub returns the element-wise difference m − other. Panics if shapes differ.
func (m *Matrix) Sub(other *Matrix) *Matrix {
	out := m.likeShaped("Sub", other)
	out.data.Sub(m.data, other.data)
	return out
}

// MulElem returns the element-wise (Hadamard) product m ∘ other.
// Panics if shapes differ.
func (m *Matrix) MulElem(other *Matrix) *Matrix {
	out := m.likeShaped("MulElem", other)
	out.data.MulElem(m.data, other.data)
	return out
}

// Scale returns m with every element multiplied by f.
func (m *Matrix) Scale(f float64) *Matrix {
	r, c := m.Dims()
	out := mat.NewDense(r, c, nil)
	out.Scale(f, m.data)
	return &Matrix{data: out}
}

// AddRow returns m with the 1×C row vector added to every row.
//
// Panics unless row has exactly one row and the same column count as m.
func (m *Matrix) AddRow(row *Matrix) *Matrix {
	mr, mc := m.Dims()
	rr, rc := row.Dims()
	if rr != 1 || rc != mc {
		errShape("AddRow", "cannot broadcast %dx%d row onto %dx%d", rr, rc, mr, mc)
	}
	out := mat.NewDense(mr, mc, nil)
	bias := row.data.RawRowView(0)
	for i := 0; i < mr; i++ {
		src := m.data.RawRowView(i)
		dst := out.RawRowView(i)
		for j := 0; j < mc; j++ {
			dst[j] = src[j] + bias[j]
		}
	}
	return &Matrix{data: out}
}

// ColSums returns a 1×C matrix holding the sum of each column.
func (m *Matrix) ColSums() *Matrix {
	r, c := m.Dims()
	out := mat.NewDense(1, c, nil)
	sums := out.RawRowView(0)
	for i := 0; i < r; i++ {
		row := m.data.RawRowView(i)
		for j := 0; j < c; j++ {
			sums[j] += row[j]
		}
	}
	return &Matrix{data: out}
}

// Apply returns a new matrix whose elements are fn(i, j, m[i,j]).
func (m *Matrix) Apply(fn func(i, j int, v float64) float64) *Matrix {
	r, c := m.Dims()
	out := mat.NewDense(r, c, nil)
	out.Apply(fn, m.data)
	return &Matrix{data: out}
}

// Slice returns a view (no copy) of rows [from, to). Mutating the view
// mutates the parent.
//
// Panics if the interval is empty or out of range.
func (m *Matrix) Slice(from, to int) *Matrix {
	r, c := m.Dims()
	if from < 0 || to > r || from >= to {
		errShape("Slice", "row interval [%d, %d) invalid for %dx%d", from, to, r, c)
	}
	view := m.data.Slice(from, to, 0, c).(*mat.Dense)
	return &Matrix{data: view}
}

// likeShaped allocates an output matrix with m's shape after verifying
// other matches it.
func (m *Matrix) likeShaped(op string, other *Matrix) *Matrix {
	mr, mc := m.Dims()
	or, oc := other.Dims()
	if mr != or || mc != oc {
		errShape(op, "shapes differ: %dx%d vs %dx%d", mr, mc, or, oc)
	}
	return &Matrix{data: mat.NewDense(mr, mc, nil)}
}
