// Copyright 2026 The digitgrad Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package train orchestrates mini-batch gradient-descent training of the
// two-layer network: parameter initialization, the epoch/batch loop,
// loss and accuracy bookkeeping, and periodic progress reporting.
//
// The Trainer is a plain component with injected configuration and no
// global state, so it can be driven from a command, a test, or any other
// caller that supplies the data matrix and labels.
//
// Example:
//
//	trainer, err := train.New(train.Config{
//	    HiddenSize:   128,
//	    OutputSize:   10,
//	    BatchSize:    64,
//	    MaxEpochs:    100,
//	    LearningRate: 0.1,
//	    DecayFloor:   0.1,
//	}, nil)
//	if err != nil { ... }
//	params, history, err := trainer.Run(x, labels)
package train
