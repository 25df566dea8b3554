// Copyright 2026 The digitgrad Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package dataset

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/digitgrad-ml/digitgrad/matrix"
)

// TwoClusters generates a linearly separable two-class, two-feature
// dataset: n points split evenly between a cluster near (0.2, 0.2) with
// label 0 and a cluster near (0.8, 0.8) with label 1, jittered by a
// small seeded Gaussian. Feature values stay within [0, 1].
//
// Useful for pipeline demos and for end-to-end training checks where a
// small network must reach full accuracy.
func TwoClusters(n int, seed uint64) *Dataset {
	noise := distuv.Normal{Mu: 0, Sigma: 0.05, Src: rand.NewSource(seed)}

	x := matrix.Zeros(n, 2)
	labels := make([]int, n)
	for i := 0; i < n; i++ {
		center := 0.2
		if i%2 == 1 {
			center = 0.8
			labels[i] = 1
		}
		row := x.RawRow(i)
		row[0] = clamp01(center + noise.Rand())
		row[1] = clamp01(center + noise.Rand())
	}
	return &Dataset{X: x, Labels: labels}
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}
