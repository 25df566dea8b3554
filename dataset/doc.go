// Copyright 2026 The digitgrad Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package dataset supplies training data to the core: fixed-size digit
// images as an N×D matrix of pixel intensities normalized to [0, 1],
// paired with integer class labels.
//
// Loaders exist for the official MNIST IDX binary format and the
// Kaggle-style CSV export, plus a synthetic two-cluster generator for
// demos and tests that need no files on disk. The training core never
// imports this package; it only consumes the matrix contract.
package dataset
