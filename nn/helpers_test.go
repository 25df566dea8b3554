// Copyright 2026 The digitgrad Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn_test

import "golang.org/x/exp/rand"

func newSource(seed uint64) rand.Source {
	return rand.NewSource(seed)
}
