// Copyright 2026 The digitgrad Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package optim

import (
	"github.com/digitgrad-ml/digitgrad/nn"
)

// SGD applies vanilla gradient-descent updates to network parameters.
//
// Update rule, applied element-wise to all four parameter matrices:
//
//	param = param − lr · grad
//
// Example:
//
//	sgd := optim.NewSGD(optim.SGDConfig{LR: 0.1})
//	for epoch := 0; epoch < epochs; epoch++ {
//	    sgd.SetLR(schedule.Rate(epoch))
//	    for _, batch := range batches {
//	        grads := step(batch)
//	        sgd.Step(params, grads)
//	    }
//	}
type SGD struct {
	lr float64
}

// SGDConfig holds configuration for the SGD optimizer.
type SGDConfig struct {
	LR float64 // learning rate (default: 0.01)
}

// NewSGD creates a new SGD optimizer.
func NewSGD(config SGDConfig) *SGD {
	if config.LR == 0 {
		config.LR = 0.01
	}
	return &SGD{lr: config.LR}
}

// Step applies one gradient-descent update to params in place.
//
// Step is the sole mutator of nn.Parameters; every gradient matrix must
// match its parameter's shape (guaranteed by nn.Backward), otherwise the
// underlying matrix subtraction panics.
func (s *SGD) Step(params *nn.Parameters, grads *nn.Gradients) {
	params.W1.CopyFrom(params.W1.Sub(grads.DW1.Scale(s.lr)))
	params.B1.CopyFrom(params.B1.Sub(grads.DB1.Scale(s.lr)))
	params.W2.CopyFrom(params.W2.Sub(grads.DW2.Scale(s.lr)))
	params.B2.CopyFrom(params.B2.Sub(grads.DB2.Scale(s.lr)))
}

// LR returns the current learning rate.
func (s *SGD) LR() float64 {
	return s.lr
}

// SetLR updates the learning rate. Called once per epoch when a
// schedule drives training.
func (s *SGD) SetLR(lr float64) {
	s.lr = lr
}
