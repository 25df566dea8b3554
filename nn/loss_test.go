// Copyright 2026 The digitgrad Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/digitgrad-ml/digitgrad/matrix"
	"github.com/digitgrad-ml/digitgrad/nn"
)

func TestLoss_KnownValue(t *testing.T) {
	// Two samples, true classes 0 and 1, predicted probs 0.8 and 0.4.
	y, err := matrix.New(2, 2, []float64{1, 0, 0, 1})
	require.NoError(t, err)
	pred, err := matrix.New(2, 2, []float64{0.8, 0.2, 0.6, 0.4})
	require.NoError(t, err)

	want := -(math.Log(0.8) + math.Log(0.4)) / 2
	assert.InDelta(t, want, nn.Loss(y, pred), 1e-12)
}

func TestLoss_NonNegative(t *testing.T) {
	y, _ := matrix.New(3, 2, []float64{1, 0, 0, 1, 1, 0})
	pred, _ := matrix.New(3, 2, []float64{0.5, 0.5, 0.3, 0.7, 0.99, 0.01})

	assert.GreaterOrEqual(t, nn.Loss(y, pred), 0.0)
}

func TestLoss_ZeroForPerfectPrediction(t *testing.T) {
	y, _ := matrix.New(2, 3, []float64{1, 0, 0, 0, 0, 1})
	pred, _ := matrix.New(2, 3, []float64{1, 0, 0, 0, 0, 1})

	assert.InDelta(t, 0.0, nn.Loss(y, pred), 0)
}

func TestLoss_DegenerateZeroProbability(t *testing.T) {
	// A true-class probability of exactly zero is not clamped; the
	// infinite loss surfaces to the caller instead of being hidden.
	y, _ := matrix.New(1, 2, []float64{1, 0})
	pred, _ := matrix.New(1, 2, []float64{0, 1})

	assert.True(t, math.IsInf(nn.Loss(y, pred), 1))
}

func TestLoss_ShapeMismatchPanics(t *testing.T) {
	y := matrix.Zeros(2, 3)
	pred := matrix.Zeros(2, 4)

	assert.Panics(t, func() { nn.Loss(y, pred) })
}
