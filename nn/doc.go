// Copyright 2026 The digitgrad Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn implements the numeric core of a two-layer fully-connected
// classifier: He parameter initialization, forward propagation through a
// ReLU hidden layer and a softmax output layer, cross-entropy loss, and
// the hand-derived backward pass producing parameter gradients.
//
// Everything except the Parameters container is a pure function: Forward
// and Backward take matrices in and return matrices out, with no hidden
// state. Parameters are mutated only by the optim package.
//
// Typical training step:
//
//	cache := nn.Forward(x, params)
//	loss := nn.Loss(y, cache.A2)
//	grads := nn.Backward(x, y, cache, params)
//	sgd.Step(params, grads)
package nn
