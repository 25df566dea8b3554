// Copyright 2026 The digitgrad Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"fmt"
	"math"

	"github.com/digitgrad-ml/digitgrad/matrix"
)


// Loss computes mean cross-entropy between a one-hot target matrix y and
// predicted probabilities yPred, both B×C:
//
//	loss = -(1/B) · Σ y ∘ log(yPred)
//
// Only the entry of the true class contributes per row, so this equals
// the mean negative log-likelihood of the true class.
//
// Probabilities are not clamped: a prediction of exactly zero for a true
// class yields +Inf (and NaN once mixed with other batches), which is
// surfaced to the caller through the loss history rather than hidden.
//
// Panics if the two shapes differ.
func Loss(y, yPred *matrix.Matrix) float64 {
	yr, yc := y.Dims()
	pr, pc := yPred.Dims()
	if yr != pr || yc != pc {
		panic(fmt.Sprintf("nn.Loss: shape mismatch: target %dx%d vs prediction %dx%d", yr, yc, pr, pc))
	}

	total := 0.0
	for i := 0; i < yr; i++ {
		target := y.RawRow(i)
		pred := yPred.RawRow(i)
		for j := 0; j < yc; j++ {
			if target[j] != 0 {
				total += target[j] * math.Log(pred[j])
			}
		}
	}
	return -total / float64(yr)
}
