package linear

import (
	"log"
	"math"
)

// State is the training state of a Trainer.
type State int

// Trainer states. A trainer starts Iterating and ends Converged.
const (
	Iterating State = iota
	Converged
)

// ProgressRecord carries the per-iteration values handed to the Progress
// callback. It is observational only; the callback cannot feed back into
// training.
type ProgressRecord struct {
	Iteration int
	Weight0   float64
	Bias      float64
	Cost      float64
	DeltaCost float64
}

// Options configures batch gradient descent.
type Options struct {
	// Alpha is the learning rate.
	Alpha float64
	// ConvergenceThreshold is the minimum decrease in total cost between
	// iterations below which training stops.
	ConvergenceThreshold float64
	// MaxIterations bounds the number of weight updates.
	MaxIterations int
	// InitWeight is the deterministic initial value of every coefficient
	// and the bias.
	InitWeight float64
	// UpdateBias includes the bias term in the gradient update. The
	// default leaves the bias frozen at InitWeight.
	UpdateBias bool
	// Progress, if non-nil, is called once per iteration after the weight
	// update.
	Progress func(ProgressRecord)
}

// DefaultOptions are the standard training hyperparameters.
var DefaultOptions = Options{
	Alpha:                50.0,
	ConvergenceThreshold: 1.0,
	MaxIterations:        200,
}

// Trainer fits a logistic regression model to a dataset by batch gradient
// descent. A trainer trains one model and is not reusable.
type Trainer struct {
	opts  Options
	model *LogisticRegression
	state State

	iter      int
	prevCost  float64
	deltaCost float64
}

// NewTrainer returns a trainer for numFeatures features. Zero Alpha and
// MaxIterations are filled from DefaultOptions.
func NewTrainer(numFeatures int, opts Options) *Trainer {
	if opts.Alpha <= 0 {
		opts.Alpha = DefaultOptions.Alpha
	}
	if opts.MaxIterations <= 0 {
		opts.MaxIterations = DefaultOptions.MaxIterations
	}
	return &Trainer{
		opts:  opts,
		model: NewLogisticRegression(numFeatures, opts.InitWeight),
		state: Iterating,
	}
}

// Train runs gradient descent over the row-major feature matrix buff and the
// class index vector labels until the cost decrease falls to the convergence
// threshold or MaxIterations is reached. The first iteration always runs
// regardless of the cost delta. The returned model is also kept by the
// trainer; on a NumericDivergenceError it holds the weights of the last
// finite iteration.
func (t *Trainer) Train(buff []float64, labels []uint16, numInstances int) (*LogisticRegression, error) {
	if t.state == Converged {
		return t.model, nil
	}
	if numInstances == 0 || numInstances != len(labels) {
		log.Fatalln("instance count does not match label count", numInstances, len(labels))
	}
	numFeatures := len(t.model.Coefs)

	grad := make([]float64, numFeatures)
	prevCoefs := make([]float64, numFeatures)
	for {
		var cost float64
		var biasGrad float64
		for k := range grad {
			grad[k] = 0
		}

		for j := 0; j < numInstances; j++ {
			row := buff[j*numFeatures : (j+1)*numFeatures]
			hRes := t.model.Evaluate(row)
			diff := hRes - float64(labels[j])
			if labels[j] != 0 {
				cost += -math.Log(hRes)
			} else {
				cost += -math.Log(1 - hRes)
			}
			for k, v := range row {
				grad[k] += diff * v
			}
			biasGrad += diff
		}

		t.iter++
		t.deltaCost = t.prevCost - cost
		t.prevCost = cost

		if !finite(cost) || !finiteAll(grad) || !finite(biasGrad) {
			t.state = Converged
			return t.model, &NumericDivergenceError{Iteration: t.iter}
		}

		copy(prevCoefs, t.model.Coefs)
		prevBias := t.model.Bias

		step := t.opts.Alpha / float64(numInstances)
		for k := range t.model.Coefs {
			t.model.Coefs[k] -= step * grad[k]
		}
		if t.opts.UpdateBias {
			t.model.Bias -= step * biasGrad
		}

		if !finiteAll(t.model.Coefs) || !finite(t.model.Bias) {
			copy(t.model.Coefs, prevCoefs)
			t.model.Bias = prevBias
			t.state = Converged
			return t.model, &NumericDivergenceError{Iteration: t.iter}
		}

		if t.opts.Progress != nil {
			var weight0 float64
			if numFeatures > 0 {
				weight0 = t.model.Coefs[0]
			}
			t.opts.Progress(ProgressRecord{
				Iteration: t.iter,
				Weight0:   weight0,
				Bias:      t.model.Bias,
				Cost:      cost,
				DeltaCost: t.deltaCost,
			})
		}

		if t.iter == 1 || (t.deltaCost > t.opts.ConvergenceThreshold && t.iter < t.opts.MaxIterations) {
			continue
		}
		break
	}

	t.state = Converged
	return t.model, nil
}

// Model returns the model being fitted.
func (t *Trainer) Model() *LogisticRegression {
	return t.model
}

// Iterations returns the number of completed iterations.
func (t *Trainer) Iterations() int {
	return t.iter
}

// DeltaCost returns the cost decrease of the last completed iteration.
func (t *Trainer) DeltaCost() float64 {
	return t.deltaCost
}

// State returns Iterating until training has stopped.
func (t *Trainer) State() State {
	return t.state
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func finiteAll(vs []float64) bool {
	for _, v := range vs {
		if !finite(v) {
			return false
		}
	}
	return true
}
