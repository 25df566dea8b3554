// Copyright 2026 The digitgrad Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package train

import (
	"errors"
	"fmt"

	"golang.org/x/exp/rand"

	"github.com/digitgrad-ml/digitgrad/matrix"
	"github.com/digitgrad-ml/digitgrad/nn"
	"github.com/digitgrad-ml/digitgrad/optim"
)

// ErrEmptyDataset reports a run that would execute zero full batches:
// either the dataset has no rows or the batch size exceeds it.
var ErrEmptyDataset = errors.New("train: empty dataset")

// progressEvery is the epoch interval at which the progress sink fires.
const progressEvery = 5

// Config holds the hyperparameters of a training run. All fields except
// Seed and Shuffle are required; there are no defaults.
type Config struct {
	HiddenSize   int     // hidden layer width H
	OutputSize   int     // class count C
	BatchSize    int     // mini-batch size B
	MaxEpochs    int     // epoch count E
	LearningRate float64 // initial learning rate lr0
	DecayFloor   float64 // decay floor fraction d of the cosine schedule

	// Seed fixes weight initialization (and shuffling, when enabled) so
	// identical runs produce identical parameter trajectories.
	Seed uint64

	// Shuffle enables a seeded per-epoch permutation of the training
	// rows. Off by default: every epoch then replays batches in
	// identical index order.
	Shuffle bool
}

// validate rejects non-positive hyperparameters before a run starts.
func (c Config) validate() error {
	switch {
	case c.HiddenSize <= 0:
		return fmt.Errorf("%w: hidden size %d (must be positive)", nn.ErrInvalidDimension, c.HiddenSize)
	case c.OutputSize <= 0:
		return fmt.Errorf("%w: output size %d (must be positive)", nn.ErrInvalidDimension, c.OutputSize)
	case c.BatchSize <= 0:
		return fmt.Errorf("%w: batch size %d (must be positive)", nn.ErrInvalidDimension, c.BatchSize)
	case c.MaxEpochs <= 0:
		return fmt.Errorf("%w: max epochs %d (must be positive)", nn.ErrInvalidDimension, c.MaxEpochs)
	case c.LearningRate <= 0:
		return fmt.Errorf("train: learning rate %v must be positive", c.LearningRate)
	case c.DecayFloor < 0 || c.DecayFloor > 1:
		return fmt.Errorf("train: decay floor %v must be in [0, 1]", c.DecayFloor)
	}
	return nil
}

// History collects the metrics of one training run: one loss entry per
// mini-batch across all epochs and one accuracy entry per epoch.
type History struct {
	Loss     []float64
	Accuracy []float64
}

// ProgressFunc receives a progress observation every few epochs with the
// epoch index, the loss of that epoch's last batch, and the accuracy
// over the full training set. A nil ProgressFunc disables reporting.
type ProgressFunc func(epoch int, loss, accuracy float64)

// Trainer runs mini-batch gradient descent over a fixed dataset.
type Trainer struct {
	cfg      Config
	progress ProgressFunc
}

// New creates a Trainer after validating the configuration.
func New(cfg Config, progress ProgressFunc) (*Trainer, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Trainer{cfg: cfg, progress: progress}, nil
}

// Run trains the network on x (N×D, values in [0,1]) with integer class
// labels (length N) and returns the final parameters plus the run's
// metric history.
//
// Each epoch executes floor(N/B) contiguous full batches in increasing
// index order; a trailing partial batch is dropped. The learning rate is
// queried from the cosine schedule once per epoch. After the batch loop,
// a forward pass over the entire training set produces the epoch's
// accuracy.
//
// Errors from initialization or encoding are fatal: Run aborts
// immediately and performs no retries.
func (t *Trainer) Run(x *matrix.Matrix, labels []int) (*nn.Parameters, *History, error) {
	if x == nil || len(labels) == 0 {
		return nil, nil, fmt.Errorf("%w: no training samples", ErrEmptyDataset)
	}
	rows, cols := x.Dims()
	if rows != len(labels) {
		return nil, nil, fmt.Errorf("train: %d sample rows vs %d labels", rows, len(labels))
	}
	numBatches := rows / t.cfg.BatchSize
	if numBatches == 0 {
		return nil, nil, fmt.Errorf("%w: %d samples yield zero full batches of size %d",
			ErrEmptyDataset, rows, t.cfg.BatchSize)
	}

	params, err := nn.Init(cols, t.cfg.HiddenSize, t.cfg.OutputSize, t.cfg.Seed)
	if err != nil {
		return nil, nil, err
	}
	y, err := nn.OneHot(labels, t.cfg.OutputSize)
	if err != nil {
		return nil, nil, err
	}

	sgd := optim.NewSGD(optim.SGDConfig{LR: t.cfg.LearningRate})
	schedule := optim.CosineSchedule{
		Initial:   t.cfg.LearningRate,
		MaxEpochs: t.cfg.MaxEpochs,
		Floor:     t.cfg.DecayFloor,
	}

	history := &History{
		Loss:     make([]float64, 0, numBatches*t.cfg.MaxEpochs),
		Accuracy: make([]float64, 0, t.cfg.MaxEpochs),
	}

	// Epoch-local views; replaced by permuted copies when shuffling.
	xEpoch, yEpoch := x, y
	var rng *rand.Rand
	if t.cfg.Shuffle {
		rng = rand.New(rand.NewSource(t.cfg.Seed))
	}

	for epoch := 0; epoch < t.cfg.MaxEpochs; epoch++ {
		sgd.SetLR(schedule.Rate(epoch))

		if t.cfg.Shuffle {
			xEpoch, yEpoch = permuteRows(x, y, rng)
		}

		lastLoss := 0.0
		for b := 0; b < numBatches; b++ {
			start := b * t.cfg.BatchSize
			xb := xEpoch.Slice(start, start+t.cfg.BatchSize)
			yb := yEpoch.Slice(start, start+t.cfg.BatchSize)

			cache := nn.Forward(xb, params)
			lastLoss = nn.Loss(yb, cache.A2)
			history.Loss = append(history.Loss, lastLoss)

			grads := nn.Backward(xb, yb, cache, params)
			sgd.Step(params, grads)
		}

		accuracy := nn.Accuracy(nn.Forward(x, params).A2, labels)
		history.Accuracy = append(history.Accuracy, accuracy)

		if t.progress != nil && epoch%progressEvery == 0 {
			t.progress(epoch, lastLoss, accuracy)
		}
	}

	return params, history, nil
}

// permuteRows returns copies of x and y with rows rearranged by one
// shared random permutation, keeping samples aligned with their targets.
func permuteRows(x, y *matrix.Matrix, rng *rand.Rand) (*matrix.Matrix, *matrix.Matrix) {
	rows, xc := x.Dims()
	_, yc := y.Dims()
	perm := rng.Perm(rows)

	xOut := matrix.Zeros(rows, xc)
	yOut := matrix.Zeros(rows, yc)
	for i, src := range perm {
		copy(xOut.RawRow(i), x.RawRow(src))
		copy(yOut.RawRow(i), y.RawRow(src))
	}
	return xOut, yOut
}
