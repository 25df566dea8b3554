// Copyright 2026 The digitgrad Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides the parameter update rule and learning-rate
// schedule for training.
//
// SGD is plain mini-batch gradient descent: P ← P − lr·dP for each of
// the four parameter matrices, no momentum, no weight decay, no
// clipping. It is the single component allowed to mutate nn.Parameters.
//
// CosineSchedule produces the per-epoch learning rate via a
// cosine-annealing curve that settles on a floor proportional to the
// initial rate instead of zero.
package optim
