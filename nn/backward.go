// Copyright 2026 The digitgrad Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"github.com/digitgrad-ml/digitgrad/matrix"
)

// Gradients holds the loss gradients for the four parameter matrices.
// Each gradient has exactly the shape of its parameter. A Gradients
// value is produced fresh per step and consumed immediately by the
// optimizer; it is never retained.
type Gradients struct {
	DW1 *matrix.Matrix
	DB1 *matrix.Matrix
	DW2 *matrix.Matrix
	DB2 *matrix.Matrix
}

// Backward computes parameter gradients for one batch from the cached
// forward intermediates, using the hand-derived equations:
//
//	dZ2 = A2 − Y              (softmax + cross-entropy combined)
//	dW2 = (1/B) · A1ᵀ · dZ2
//	db2 = (1/B) · colsum(dZ2)
//	dA1 = dZ2 · W2ᵀ
//	dZ1 = dA1 ∘ [Z1 > 0]      (ReLU mask, strict inequality)
//	dW1 = (1/B) · Xᵀ · dZ1
//	db1 = (1/B) · colsum(dZ1)
//
// The ReLU mask is 1 only where Z1 is strictly positive; a pre-activation
// of exactly zero passes no gradient.
//
// Backward is a pure function of its inputs.
func Backward(x, y *matrix.Matrix, cache *Cache, params *Parameters) *Gradients {
	batch, _ := x.Dims()
	invB := 1.0 / float64(batch)

	dZ2 := cache.A2.Sub(y)
	dW2 := cache.A1.T().MatMul(dZ2).Scale(invB)
	dB2 := dZ2.ColSums().Scale(invB)

	dA1 := dZ2.MatMul(params.W2.T())
	dZ1 := dA1.Apply(func(i, j int, v float64) float64 {
		if cache.Z1.At(i, j) > 0 {
			return v
		}
		return 0
	})
	dW1 := x.T().MatMul(dZ1).Scale(invB)
	dB1 := dZ1.ColSums().Scale(invB)

	return &Gradients{DW1: dW1, DB1: dB1, DW2: dW2, DB2: dB2}
}
