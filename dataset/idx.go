// Copyright 2026 The digitgrad Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package dataset

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// IDX magic numbers from the MNIST file format.
const (
	idxImagesMagic = 2051
	idxLabelsMagic = 2049
)

// LoadIDX loads MNIST samples from the official IDX binary files in
// dataDir. When trainSet is true it reads the 60k training split
// (train-images-idx3-ubyte, train-labels-idx1-ubyte), otherwise the 10k
// test split (t10k-*). maxSamples of 0 loads everything.
//
// Pixels are normalized to [0, 1]. Download and gunzip the files from
// http://yann.lecun.com/exdb/mnist/ first.
func LoadIDX(dataDir string, trainSet bool, maxSamples int) (*Dataset, error) {
	imageFile := filepath.Join(dataDir, "t10k-images-idx3-ubyte")
	labelFile := filepath.Join(dataDir, "t10k-labels-idx1-ubyte")
	if trainSet {
		imageFile = filepath.Join(dataDir, "train-images-idx3-ubyte")
		labelFile = filepath.Join(dataDir, "train-labels-idx1-ubyte")
	}

	images, err := readIDXImages(imageFile)
	if err != nil {
		return nil, fmt.Errorf("dataset: loading images: %w", err)
	}
	labels, err := readIDXLabels(labelFile)
	if err != nil {
		return nil, fmt.Errorf("dataset: loading labels: %w", err)
	}

	return fromPixelRows(images, labels, maxSamples)
}

// readIDXImages reads an IDX image file:
//
//	magic number: 0x00000803 (2051)
//	image count, row count, column count: 4 bytes each, big endian
//	pixel data: unsigned bytes
func readIDXImages(filename string) ([][]byte, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var magic uint32
	if err := binary.Read(file, binary.BigEndian, &magic); err != nil {
		return nil, fmt.Errorf("reading magic: %w", err)
	}
	if magic != idxImagesMagic {
		return nil, fmt.Errorf("invalid image magic number: got %d, want %d", magic, idxImagesMagic)
	}

	var numImages, numRows, numCols uint32
	for _, dim := range []*uint32{&numImages, &numRows, &numCols} {
		if err := binary.Read(file, binary.BigEndian, dim); err != nil {
			return nil, fmt.Errorf("reading header: %w", err)
		}
	}

	imageSize := int(numRows * numCols)
	images := make([][]byte, numImages)
	for i := range images {
		images[i] = make([]byte, imageSize)
		if _, err := io.ReadFull(file, images[i]); err != nil {
			return nil, fmt.Errorf("reading image %d: %w", i, err)
		}
	}
	return images, nil
}

// readIDXLabels reads an IDX label file:
//
//	magic number: 0x00000801 (2049)
//	label count: 4 bytes, big endian
//	label data: unsigned bytes
func readIDXLabels(filename string) ([]byte, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var magic uint32
	if err := binary.Read(file, binary.BigEndian, &magic); err != nil {
		return nil, fmt.Errorf("reading magic: %w", err)
	}
	if magic != idxLabelsMagic {
		return nil, fmt.Errorf("invalid label magic number: got %d, want %d", magic, idxLabelsMagic)
	}

	var numLabels uint32
	if err := binary.Read(file, binary.BigEndian, &numLabels); err != nil {
		return nil, fmt.Errorf("reading label count: %w", err)
	}

	labels := make([]byte, numLabels)
	if _, err := io.ReadFull(file, labels); err != nil {
		return nil, fmt.Errorf("reading labels: %w", err)
	}
	return labels, nil
}
