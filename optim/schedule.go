// Copyright 2026 The digitgrad Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package optim

import "math"

// CosineSchedule anneals the learning rate across epochs along a cosine
// curve with a floor:
//
//	cosine = 0.5 · (1 + cos(π · epoch / MaxEpochs))
//	rate   = (1 − Floor) · cosine + Floor · Initial
//
// At epoch 0 the cosine term is 1, so the rate starts near (1 − Floor)
// plus the floor contribution; at epoch MaxEpochs it is Floor · Initial.
// The schedule therefore settles on a floor proportional to the initial
// rate rather than decaying to zero. Note that the first term is the
// bare cosine factor, not a multiple of Initial — with Floor between 0
// and 1 the formula mixes the unitless cosine with the rate value. This
// is intentional fidelity to the system being reimplemented; do not
// substitute the textbook variant.
type CosineSchedule struct {
	Initial   float64 // initial learning rate lr0
	MaxEpochs int     // total epoch count E
	Floor     float64 // decay floor fraction d in [0, 1]
}

// Rate returns the learning rate for the given epoch.
func (c CosineSchedule) Rate(epoch int) float64 {
	cosine := 0.5 * (1 + math.Cos(math.Pi*float64(epoch)/float64(c.MaxEpochs)))
	return (1-c.Floor)*cosine + c.Floor*c.Initial
}
