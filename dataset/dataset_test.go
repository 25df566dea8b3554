// Copyright 2026 The digitgrad Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package dataset_test

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/digitgrad-ml/digitgrad/dataset"
)

func TestTwoClusters(t *testing.T) {
	d := dataset.TwoClusters(40, 1)

	assert.Equal(t, 40, d.NumSamples())
	rows, cols := d.X.Dims()
	assert.Equal(t, 40, rows)
	assert.Equal(t, 2, cols)

	zeros, ones := 0, 0
	for i, label := range d.Labels {
		switch label {
		case 0:
			zeros++
		case 1:
			ones++
		default:
			t.Fatalf("unexpected label %d", label)
		}
		for j := 0; j < 2; j++ {
			v := d.X.At(i, j)
			assert.GreaterOrEqual(t, v, 0.0)
			assert.LessOrEqual(t, v, 1.0)
		}
	}
	assert.Equal(t, 20, zeros)
	assert.Equal(t, 20, ones)
}

func TestTwoClusters_SeedDeterminism(t *testing.T) {
	a := dataset.TwoClusters(10, 5)
	b := dataset.TwoClusters(10, 5)

	for i := 0; i < 10; i++ {
		assert.Equal(t, a.X.At(i, 0), b.X.At(i, 0))
		assert.Equal(t, a.X.At(i, 1), b.X.At(i, 1))
	}
}

func TestSplit(t *testing.T) {
	d := dataset.TwoClusters(100, 1)

	trainPart, valPart, err := d.Split(0.2)
	require.NoError(t, err)
	assert.Equal(t, 80, trainPart.NumSamples())
	assert.Equal(t, 20, valPart.NumSamples())

	// Validation rows line up with the tail of the original set.
	assert.Equal(t, d.X.At(80, 0), valPart.X.At(0, 0))
	assert.Equal(t, d.Labels[80], valPart.Labels[0])

	_, _, err = d.Split(0)
	assert.Error(t, err)
	_, _, err = d.Split(1)
	assert.Error(t, err)
}

func TestLoadCSV(t *testing.T) {
	// Three samples with 4 pixel columns.
	content := "label,p0,p1,p2,p3\n" +
		"7,0,128,255,0\n" +
		"0,255,255,0,0\n" +
		"3,0,0,0,51\n"
	path := filepath.Join(t.TempDir(), "digits.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	d, err := dataset.LoadCSV(path, 0)
	require.NoError(t, err)

	assert.Equal(t, []int{7, 0, 3}, d.Labels)
	rows, cols := d.X.Dims()
	assert.Equal(t, 3, rows)
	assert.Equal(t, 4, cols)
	assert.InDelta(t, 128.0/255.0, d.X.At(0, 1), 1e-12)
	assert.Equal(t, 1.0, d.X.At(0, 2))
	assert.InDelta(t, 0.2, d.X.At(2, 3), 1e-12)
}

func TestLoadCSV_MaxSamples(t *testing.T) {
	content := "label,p0\n1,10\n2,20\n3,30\n"
	path := filepath.Join(t.TempDir(), "digits.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	d, err := dataset.LoadCSV(path, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, d.NumSamples())
}

func TestLoadCSV_Errors(t *testing.T) {
	_, err := dataset.LoadCSV(filepath.Join(t.TempDir(), "missing.csv"), 0)
	assert.Error(t, err)

	empty := filepath.Join(t.TempDir(), "empty.csv")
	require.NoError(t, os.WriteFile(empty, []byte("label,p0\n"), 0o600))
	_, err = dataset.LoadCSV(empty, 0)
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.csv")
	require.NoError(t, os.WriteFile(bad, []byte("label,p0\nx,1\n"), 0o600))
	_, err = dataset.LoadCSV(bad, 0)
	assert.Error(t, err)
}

// writeIDX writes a minimal IDX image/label file pair: two 2×2 images
// with labels 3 and 8.
func writeIDX(t *testing.T, dir string) {
	t.Helper()

	images, err := os.Create(filepath.Join(dir, "train-images-idx3-ubyte"))
	require.NoError(t, err)
	defer images.Close()
	for _, v := range []uint32{2051, 2, 2, 2} {
		require.NoError(t, binary.Write(images, binary.BigEndian, v))
	}
	_, err = images.Write([]byte{0, 51, 102, 255, 255, 204, 153, 0})
	require.NoError(t, err)

	labels, err := os.Create(filepath.Join(dir, "train-labels-idx1-ubyte"))
	require.NoError(t, err)
	defer labels.Close()
	for _, v := range []uint32{2049, 2} {
		require.NoError(t, binary.Write(labels, binary.BigEndian, v))
	}
	_, err = labels.Write([]byte{3, 8})
	require.NoError(t, err)
}

func TestLoadIDX(t *testing.T) {
	dir := t.TempDir()
	writeIDX(t, dir)

	d, err := dataset.LoadIDX(dir, true, 0)
	require.NoError(t, err)

	assert.Equal(t, []int{3, 8}, d.Labels)
	rows, cols := d.X.Dims()
	assert.Equal(t, 2, rows)
	assert.Equal(t, 4, cols)
	assert.Equal(t, 0.0, d.X.At(0, 0))
	assert.InDelta(t, 51.0/255.0, d.X.At(0, 1), 1e-12)
	assert.Equal(t, 1.0, d.X.At(0, 3))
	assert.Equal(t, 0.0, d.X.At(1, 3))
}

func TestLoadIDX_BadMagic(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "train-images-idx3-ubyte")
	require.NoError(t, os.WriteFile(path, []byte{0, 0, 0, 1}, 0o600))

	_, err := dataset.LoadIDX(dir, true, 0)
	assert.Error(t, err)
}

func TestLoadIDX_MissingFiles(t *testing.T) {
	_, err := dataset.LoadIDX(t.TempDir(), true, 0)
	assert.Error(t, err)
}
