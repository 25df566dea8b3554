// Copyright 2026 The digitgrad Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"fmt"

	"github.com/digitgrad-ml/digitgrad/matrix"
)

// OneHot encodes integer class labels as an N×numClasses matrix with a
// single 1 per row at the label's index.
//
// Returns an error if labels is empty, numClasses is not positive, or a
// label falls outside [0, numClasses).
func OneHot(labels []int, numClasses int) (*matrix.Matrix, error) {
	if len(labels) == 0 {
		return nil, fmt.Errorf("nn: cannot one-hot encode an empty label vector")
	}
	if numClasses <= 0 {
		return nil, fmt.Errorf("%w: class count %d (must be positive)", ErrInvalidDimension, numClasses)
	}

	out := matrix.Zeros(len(labels), numClasses)
	for i, label := range labels {
		if label < 0 || label >= numClasses {
			return nil, fmt.Errorf("nn: label %d at index %d out of range [0, %d)", label, i, numClasses)
		}
		out.Set(i, label, 1)
	}
	return out, nil
}

// Accuracy returns the fraction of rows in probs (N×C) whose argmax
// equals the corresponding true label.
//
// Panics if the row count and label count differ.
func Accuracy(probs *matrix.Matrix, labels []int) float64 {
	rows, _ := probs.Dims()
	if rows != len(labels) {
		panic(fmt.Sprintf("nn.Accuracy: %d prediction rows vs %d labels", rows, len(labels)))
	}

	correct := 0
	for i := 0; i < rows; i++ {
		if argmax(probs.RawRow(i)) == labels[i] {
			correct++
		}
	}
	return float64(correct) / float64(rows)
}

// argmax returns the index of the largest value; ties go to the first.
func argmax(row []float64) int {
	maxIdx := 0
	maxVal := row[0]
	for i := 1; i < len(row); i++ {
		if row[i] > maxVal {
			maxVal = row[i]
			maxIdx = i
		}
	}
	return maxIdx
}
