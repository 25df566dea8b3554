// Copyright 2026 The digitgrad Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/digitgrad-ml/digitgrad/matrix"
)

// LoadCSV loads digit samples from a Kaggle-style CSV export:
//
//	label,pixel0,pixel1,...,pixel783
//	5,0,0,12,...,0
//
// The header row is required. Pixels are normalized to [0, 1].
// maxSamples of 0 loads everything.
func LoadCSV(filename string, maxSamples int) (*Dataset, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("dataset: %w", err)
	}
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("dataset: reading CSV: %w", err)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("dataset: CSV %s is empty or missing header", filename)
	}
	records = records[1:] // header

	n := len(records)
	if maxSamples > 0 && n > maxSamples {
		n = maxSamples
	}
	d := len(records[0]) - 1
	if d <= 0 {
		return nil, fmt.Errorf("dataset: CSV %s has no pixel columns", filename)
	}

	x := matrix.Zeros(n, d)
	labels := make([]int, n)
	for i := 0; i < n; i++ {
		record := records[i]
		if len(record) != d+1 {
			return nil, fmt.Errorf("dataset: row %d has %d fields, want %d", i+1, len(record), d+1)
		}

		label, err := strconv.Atoi(record[0])
		if err != nil {
			return nil, fmt.Errorf("dataset: invalid label at row %d: %w", i+1, err)
		}
		labels[i] = label

		row := x.RawRow(i)
		for j := 0; j < d; j++ {
			pixel, err := strconv.Atoi(record[j+1])
			if err != nil {
				return nil, fmt.Errorf("dataset: invalid pixel at row %d, column %d: %w", i+1, j+1, err)
			}
			row[j] = float64(pixel) / 255.0
		}
	}

	return &Dataset{X: x, Labels: labels}, nil
}
