// Copyright 2026 The digitgrad Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package optim_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/digitgrad-ml/digitgrad/matrix"
	"github.com/digitgrad-ml/digitgrad/nn"
	"github.com/digitgrad-ml/digitgrad/optim"
)

// constMatrix builds an r×c matrix with every element set to v.
func constMatrix(r, c int, v float64) *matrix.Matrix {
	return matrix.Zeros(r, c).Apply(func(_, _ int, _ float64) float64 { return v })
}

// constParams builds parameters with every element set to v.
func constParams(v float64) *nn.Parameters {
	return &nn.Parameters{
		W1: constMatrix(2, 3, v), B1: constMatrix(1, 3, v),
		W2: constMatrix(3, 2, v), B2: constMatrix(1, 2, v),
	}
}

// constGrads builds gradients matching constParams shapes, every element v.
func constGrads(v float64) *nn.Gradients {
	return &nn.Gradients{
		DW1: constMatrix(2, 3, v), DB1: constMatrix(1, 3, v),
		DW2: constMatrix(3, 2, v), DB2: constMatrix(1, 2, v),
	}
}

func TestSGD_Step(t *testing.T) {
	params := constParams(2.0)
	grads := constGrads(1.0)

	sgd := optim.NewSGD(optim.SGDConfig{LR: 0.1})
	sgd.Step(params, grads)

	// param = 2.0 - 0.1 * 1.0 = 1.9 everywhere
	for _, m := range []*matrix.Matrix{params.W1, params.B1, params.W2, params.B2} {
		r, c := m.Dims()
		for i := 0; i < r; i++ {
			for j := 0; j < c; j++ {
				assert.InDelta(t, 1.9, m.At(i, j), 1e-12)
			}
		}
	}
}

func TestSGD_StepMutatesInPlace(t *testing.T) {
	params := constParams(1.0)
	w1 := params.W1 // same matrix object after the step

	optim.NewSGD(optim.SGDConfig{LR: 1.0}).Step(params, constGrads(0.5))

	require.Same(t, w1, params.W1)
	assert.InDelta(t, 0.5, w1.At(0, 0), 1e-12)
}

func TestSGD_DefaultLR(t *testing.T) {
	sgd := optim.NewSGD(optim.SGDConfig{})
	assert.Equal(t, 0.01, sgd.LR())
}

func TestSGD_SetLR(t *testing.T) {
	sgd := optim.NewSGD(optim.SGDConfig{LR: 0.5})
	assert.Equal(t, 0.5, sgd.LR())

	sgd.SetLR(0.05)
	assert.Equal(t, 0.05, sgd.LR())
}
