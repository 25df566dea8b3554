// Copyright 2026 The digitgrad Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"math"

	"github.com/digitgrad-ml/digitgrad/matrix"
)

// Cache holds the intermediates of one forward pass over one batch.
// The backward pass consumes it; its lifetime is a single training step.
type Cache struct {
	Z1 *matrix.Matrix // pre-activation of the hidden layer, B×H
	A1 *matrix.Matrix // ReLU(Z1), B×H
	Z2 *matrix.Matrix // pre-activation of the output layer, B×C
	A2 *matrix.Matrix // row-wise softmax(Z2), B×C
}

// Forward propagates a batch x (B×D) through the network:
//
//	Z1 = x·W1 + b1
//	A1 = max(0, Z1)
//	Z2 = A1·W2 + b2
//	A2 = softmax(Z2) row-wise
//
// Forward is a pure function: it reads params without mutating them and
// is deterministic for a given input.
//
// Panics with matrix.Error if x's column count does not match W1.
func Forward(x *matrix.Matrix, params *Parameters) *Cache {
	z1 := x.MatMul(params.W1).AddRow(params.B1)
	a1 := relu(z1)
	z2 := a1.MatMul(params.W2).AddRow(params.B2)
	a2 := softmax(z2)
	return &Cache{Z1: z1, A1: a1, Z2: z2, A2: a2}
}

// relu applies max(0, v) element-wise.
func relu(m *matrix.Matrix) *matrix.Matrix {
	return m.Apply(func(_, _ int, v float64) float64 {
		if v > 0 {
			return v
		}
		return 0
	})
}

// softmax normalizes each row of m into a probability distribution.
// The row maximum is subtracted before exponentiating so large scores
// cannot overflow.
func softmax(m *matrix.Matrix) *matrix.Matrix {
	rows, cols := m.Dims()
	out := m.Clone()
	for i := 0; i < rows; i++ {
		row := out.RawRow(i)

		maxV := row[0]
		for j := 1; j < cols; j++ {
			if row[j] > maxV {
				maxV = row[j]
			}
		}

		sum := 0.0
		for j := 0; j < cols; j++ {
			row[j] = math.Exp(row[j] - maxV)
			sum += row[j]
		}
		for j := 0; j < cols; j++ {
			row[j] /= sum
		}
	}
	return out
}
