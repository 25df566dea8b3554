// Copyright 2026 The digitgrad Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package matrix

import (
	"fmt"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// Zeros creates an r×c matrix filled with zeros.
//
// Panics with Error if either dimension is not positive.
func Zeros(r, c int) *Matrix {
	checkDims("Zeros", r, c)
	return &Matrix{data: mat.NewDense(r, c, nil)}
}

// New creates an r×c matrix backed by data, interpreted row-major.
//
// Returns an error if the dimensions are not positive or the data length
// does not equal r*c.
func New(r, c int, data []float64) (*Matrix, error) {
	if r <= 0 || c <= 0 {
		return nil, fmt.Errorf("matrix: invalid dimensions %dx%d (must be positive)", r, c)
	}
	if len(data) != r*c {
		return nil, fmt.Errorf("matrix: data length %d does not match %dx%d", len(data), r, c)
	}
	return &Matrix{data: mat.NewDense(r, c, data)}, nil
}

// FromRows creates a matrix from a slice of equal-length rows.
func FromRows(rows [][]float64) (*Matrix, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("matrix: cannot build matrix from empty rows")
	}
	c := len(rows[0])
	out := mat.NewDense(len(rows), c, nil)
	for i, row := range rows {
		if len(row) != c {
			return nil, fmt.Errorf("matrix: row %d has %d columns, want %d", i, len(row), c)
		}
		copy(out.RawRowView(i), row)
	}
	return &Matrix{data: out}, nil
}

// Randn creates an r×c matrix with entries drawn i.i.d. from N(0, sigma²)
// using the given source, so runs seeded identically are reproducible.
//
// Panics with Error if either dimension is not positive.
func Randn(r, c int, sigma float64, src rand.Source) *Matrix {
	checkDims("Randn", r, c)
	dist := distuv.Normal{Mu: 0, Sigma: sigma, Src: src}
	out := mat.NewDense(r, c, nil)
	for i := 0; i < r; i++ {
		row := out.RawRowView(i)
		for j := range row {
			row[j] = dist.Rand()
		}
	}
	return &Matrix{data: out}
}

func checkDims(op string, r, c int) {
	if r <= 0 || c <= 0 {
		errShape(op, "invalid dimensions %dx%d (must be positive)", r, c)
	}
}
