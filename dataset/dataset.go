// Copyright 2026 The digitgrad Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package dataset

import (
	"fmt"

	"github.com/digitgrad-ml/digitgrad/matrix"
)

// Dataset pairs an N×D matrix of normalized pixel intensities with its
// N integer class labels.
type Dataset struct {
	X      *matrix.Matrix
	Labels []int
}

// NumSamples returns the number of rows in the dataset.
func (d *Dataset) NumSamples() int {
	return len(d.Labels)
}

// Split partitions the dataset into a training and a validation part,
// with validationRatio (for example 0.2) of the samples going to the
// validation side. Both parts are views into the original matrix.
//
// Returns an error if either side would be empty.
func (d *Dataset) Split(validationRatio float64) (*Dataset, *Dataset, error) {
	n := d.NumSamples()
	splitIdx := int(float64(n) * (1.0 - validationRatio))
	if splitIdx <= 0 || splitIdx >= n {
		return nil, nil, fmt.Errorf("dataset: split ratio %v leaves an empty partition of %d samples", validationRatio, n)
	}

	trainPart := &Dataset{X: d.X.Slice(0, splitIdx), Labels: d.Labels[:splitIdx]}
	valPart := &Dataset{X: d.X.Slice(splitIdx, n), Labels: d.Labels[splitIdx:]}
	return trainPart, valPart, nil
}

// fromPixelRows builds a Dataset from raw byte images, normalizing each
// pixel from [0, 255] to [0, 1].
func fromPixelRows(images [][]byte, labels []byte, maxSamples int) (*Dataset, error) {
	if len(images) != len(labels) {
		return nil, fmt.Errorf("dataset: image count %d != label count %d", len(images), len(labels))
	}
	n := len(images)
	if maxSamples > 0 && n > maxSamples {
		n = maxSamples
	}
	if n == 0 {
		return nil, fmt.Errorf("dataset: no samples to load")
	}

	d := len(images[0])
	x := matrix.Zeros(n, d)
	out := make([]int, n)
	for i := 0; i < n; i++ {
		if len(images[i]) != d {
			return nil, fmt.Errorf("dataset: image %d has %d pixels, want %d", i, len(images[i]), d)
		}
		row := x.RawRow(i)
		for j, pixel := range images[i] {
			row[j] = float64(pixel) / 255.0
		}
		out[i] = int(labels[i])
	}
	return &Dataset{X: x, Labels: out}, nil
}
