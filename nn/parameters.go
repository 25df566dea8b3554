// Copyright 2026 The digitgrad Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"errors"
	"fmt"
	"math"

	"golang.org/x/exp/rand"

	"github.com/digitgrad-ml/digitgrad/matrix"
)

// ErrInvalidDimension reports a non-positive layer size passed to Init.
var ErrInvalidDimension = errors.New("nn: invalid dimension")

// Parameters holds the four weight and bias matrices of the two-layer
// network. For input width D, hidden width H, and C classes:
//
//	W1: D×H    b1: 1×H
//	W2: H×C    b2: 1×C
//
// Parameters are owned by the caller and mutated in place once per
// mini-batch by the optimizer; nothing else writes to them.
type Parameters struct {
	W1 *matrix.Matrix
	B1 *matrix.Matrix
	W2 *matrix.Matrix
	B2 *matrix.Matrix
}

// Init allocates and initializes parameters for a network with the given
// layer sizes.
//
// Weights are drawn from N(0, 2/inputSize) — He initialization sized for
// the ReLU layer fed by inputSize features. Note that W2 is also scaled
// by the input width rather than the hidden width; this matches the
// system being reimplemented and is deliberately not "corrected" to the
// usual sqrt(2/hiddenSize). Biases start at zero.
//
// The seed fixes the weight draw, so identical seeds produce identical
// parameters.
//
// Returns ErrInvalidDimension if any size is not positive.
func Init(inputSize, hiddenSize, outputSize int, seed uint64) (*Parameters, error) {
	if inputSize <= 0 {
		return nil, fmt.Errorf("%w: input size %d (must be positive)", ErrInvalidDimension, inputSize)
	}
	if hiddenSize <= 0 {
		return nil, fmt.Errorf("%w: hidden size %d (must be positive)", ErrInvalidDimension, hiddenSize)
	}
	if outputSize <= 0 {
		return nil, fmt.Errorf("%w: output size %d (must be positive)", ErrInvalidDimension, outputSize)
	}

	sigma := math.Sqrt(2.0 / float64(inputSize))
	src := rand.NewSource(seed)

	return &Parameters{
		W1: matrix.Randn(inputSize, hiddenSize, sigma, src),
		B1: matrix.Zeros(1, hiddenSize),
		W2: matrix.Randn(hiddenSize, outputSize, sigma, src),
		B2: matrix.Zeros(1, outputSize),
	}, nil
}

// InputSize returns the input feature count D.
func (p *Parameters) InputSize() int {
	d, _ := p.W1.Dims()
	return d
}

// HiddenSize returns the hidden layer width H.
func (p *Parameters) HiddenSize() int {
	_, h := p.W1.Dims()
	return h
}

// OutputSize returns the class count C.
func (p *Parameters) OutputSize() int {
	_, c := p.W2.Dims()
	return c
}

// Clone returns a deep copy of the parameters. Useful for comparing
// trajectories across runs.
func (p *Parameters) Clone() *Parameters {
	return &Parameters{
		W1: p.W1.Clone(),
		B1: p.B1.Clone(),
		W2: p.W2.Clone(),
		B2: p.B2.Clone(),
	}
}
