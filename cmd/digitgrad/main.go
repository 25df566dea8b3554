// Copyright 2026 The digitgrad Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Command digitgrad trains the two-layer digit classifier from the
// command line. It loads MNIST from IDX or CSV files (or falls back to a
// synthetic dataset), runs the training loop, and prints progress plus
// final metrics. Plotting the returned histories is left to the caller;
// this command just reports the numbers.
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/digitgrad-ml/digitgrad/dataset"
	"github.com/digitgrad-ml/digitgrad/train"
)

func main() {
	dataDir := flag.String("data", "./data", "directory containing MNIST IDX files")
	csvFile := flag.String("csv", "", "load from a Kaggle-style CSV file instead of IDX")
	useSynthetic := flag.Bool("synthetic", false, "use a synthetic two-cluster dataset (no files needed)")
	maxSamples := flag.Int("samples", 0, "max samples to load (0 = all)")
	hidden := flag.Int("hidden", 128, "hidden layer width")
	batchSize := flag.Int("batch", 64, "mini-batch size")
	epochs := flag.Int("epochs", 100, "number of training epochs")
	lr := flag.Float64("lr", 0.1, "initial learning rate")
	decayFloor := flag.Float64("decay-floor", 0.1, "decay floor fraction of the cosine schedule")
	seed := flag.Uint64("seed", 42, "seed for weight initialization")
	shuffle := flag.Bool("shuffle", false, "reshuffle training rows every epoch")
	flag.Parse()

	data, classes, err := loadData(*csvFile, *dataDir, *useSynthetic, *maxSamples)
	if err != nil {
		log.Fatalf("loading data: %v", err)
	}
	rows, cols := data.X.Dims()
	fmt.Printf("Loaded %d samples with %d features, %d classes\n", rows, cols, classes)

	trainer, err := train.New(train.Config{
		HiddenSize:   *hidden,
		OutputSize:   classes,
		BatchSize:    *batchSize,
		MaxEpochs:    *epochs,
		LearningRate: *lr,
		DecayFloor:   *decayFloor,
		Seed:         *seed,
		Shuffle:      *shuffle,
	}, func(epoch int, loss, accuracy float64) {
		fmt.Printf("epoch %3d: loss=%.4f accuracy=%.2f%%\n", epoch, loss, accuracy*100)
	})
	if err != nil {
		log.Fatalf("configuring trainer: %v", err)
	}

	params, history, err := trainer.Run(data.X, data.Labels)
	if err != nil {
		log.Fatalf("training: %v", err)
	}

	finalLoss := history.Loss[len(history.Loss)-1]
	finalAcc := history.Accuracy[len(history.Accuracy)-1]
	fmt.Printf("\nTraining complete: %d batches, final loss=%.4f, final accuracy=%.2f%%\n",
		len(history.Loss), finalLoss, finalAcc*100)
	fmt.Printf("Network: %d -> %d -> %d\n",
		params.InputSize(), params.HiddenSize(), params.OutputSize())
}

// loadData picks a data source based on the flags. Synthetic data has 2
// classes; MNIST has 10.
func loadData(csvFile, dataDir string, synthetic bool, maxSamples int) (*dataset.Dataset, int, error) {
	switch {
	case synthetic:
		n := maxSamples
		if n == 0 {
			n = 400
		}
		return dataset.TwoClusters(n, 1), 2, nil
	case csvFile != "":
		d, err := dataset.LoadCSV(csvFile, maxSamples)
		return d, 10, err
	default:
		d, err := dataset.LoadIDX(dataDir, true, maxSamples)
		return d, 10, err
	}
}
