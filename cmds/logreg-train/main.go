package main

import (
	"log"
	"time"

	"github.com/alexflint/go-arg"
	"github.com/kr/pretty"

	"github.com/kiteco/logreg/arff"
	"github.com/kiteco/logreg/linear"
)

func fail(err error) {
	if err != nil {
		log.Fatalln(err)
	}
}

func main() {
	args := struct {
		Data       string  `arg:"required" help:"path to the training set in ARFF format"`
		Alpha      float64 `help:"learning rate"`
		Threshold  float64 `help:"minimum cost decrease between iterations"`
		MaxIter    int     `help:"maximum number of iterations"`
		InitWeight float64 `help:"initial value of every weight"`
		UpdateBias bool    `help:"include the bias term in the gradient update"`
		Quiet      bool    `help:"suppress per-iteration progress"`
	}{
		Alpha:     linear.DefaultOptions.Alpha,
		Threshold: linear.DefaultOptions.ConvergenceThreshold,
		MaxIter:   linear.DefaultOptions.MaxIterations,
	}
	arg.MustParse(&args)

	var importer arff.Importer
	fail(importer.Read(args.Data))

	feats := importer.Features()
	numInst := importer.NumInstances()
	log.Printf("read %d instances with %d features from %s", numInst, len(feats), args.Data)
	if len(importer.ClassAttr()) != 2 {
		log.Fatalln("expected 2 class labels, got", len(importer.ClassAttr()))
	}

	buff := importer.FeatureBuff()
	labels := importer.ClassIndex()

	norm := linear.NewNormalizer(feats)
	norm.NormalizeMatrix(buff, numInst)

	opts := linear.Options{
		Alpha:                args.Alpha,
		ConvergenceThreshold: args.Threshold,
		MaxIterations:        args.MaxIter,
		InitWeight:           args.InitWeight,
		UpdateBias:           args.UpdateBias,
	}
	if !args.Quiet {
		opts.Progress = func(rec linear.ProgressRecord) {
			log.Printf("iter %d: weight[0] %f bias %f delta cost %f", rec.Iteration, rec.Weight0, rec.Bias, rec.DeltaCost)
		}
	}

	trainer := linear.NewTrainer(len(feats), opts)

	start := time.Now()
	model, err := trainer.Train(buff, labels, numInst)
	elapsed := time.Since(start)
	if err != nil {
		if linear.IsNumericDivergence(err) {
			log.Printf("last finite model: %# v", pretty.Formatter(model))
		}
		log.Fatalln(err)
	}

	log.Printf("converged after %d iterations in %.2fs (final delta cost %f)", trainer.Iterations(), elapsed.Seconds(), trainer.DeltaCost())
	log.Printf("model: %# v", pretty.Formatter(model))

	var correct int
	numFeatures := len(feats)
	for j := 0; j < numInst; j++ {
		row := buff[j*numFeatures : (j+1)*numFeatures]
		if model.Classify(row) == int(labels[j]) {
			correct++
		}
	}
	log.Printf("training set accuracy: %d/%d (%.2f%%)", correct, numInst, 100*float64(correct)/float64(numInst))
}
