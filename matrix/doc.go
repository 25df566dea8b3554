// Copyright 2026 The digitgrad Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package matrix provides the dense 2-D float64 container used by every
// numeric component in digitgrad.
//
// Matrix wraps gonum's mat.Dense with the fixed operation set the training
// core needs: matrix product, transpose, element-wise arithmetic,
// broadcast addition of a bias row, column reductions, and row-window
// views for mini-batch slicing. Data is row-major.
//
// Operations on incompatible shapes panic with Error, mirroring gonum's
// own convention: a shape violation mid-computation is a programming
// error with no recovery path. Constructors that take caller-supplied
// data return ordinary errors instead.
//
// Example:
//
//	x := matrix.Zeros(32, 784)
//	w := matrix.Randn(784, 128, 0.05, rand.NewSource(1))
//	z := x.MatMul(w) // shape 32×128
package matrix
