package linear

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogisticRegressionEvaluate(t *testing.T) {
	clf := &LogisticRegression{
		Bias:  -1.5,
		Coefs: []float64{2.0, -0.5},
	}

	feat := []float64{1.0, 2.0}
	act := clf.Evaluate(feat)
	exp := 1 / (1 + math.Exp(0.5))
	if math.Abs(act-exp) > 1e-12 {
		t.Errorf("expected %f, but got %f\n", exp, act)
	}
}

func TestEvaluateStaysInOpenUnitInterval(t *testing.T) {
	clf := &LogisticRegression{
		Bias:  0.3,
		Coefs: []float64{-4.2, 1.7, 0.01},
	}
	rows := [][]float64{
		{0, 0, 0},
		{10, -10, 3},
		{-25, 25, -1},
		{0.001, 0.002, 0.003},
	}
	for _, row := range rows {
		p := clf.Evaluate(row)
		assert.True(t, p > 0 && p < 1, "probability %f out of (0,1)", p)
	}
}

func TestNewLogisticRegressionInit(t *testing.T) {
	clf := NewLogisticRegression(3, 1.0)
	assert.Equal(t, 1.0, clf.Bias)
	assert.Equal(t, []float64{1, 1, 1}, clf.Coefs)

	clf = NewLogisticRegression(2, 0)
	assert.Equal(t, 0.5, clf.Evaluate([]float64{7, -3}))
}

func TestClassify(t *testing.T) {
	clf := &LogisticRegression{Coefs: []float64{3.0}}
	assert.Equal(t, 1, clf.Classify([]float64{2}))
	assert.Equal(t, 0, clf.Classify([]float64{-2}))
	// score 0 sits on the decision boundary
	assert.Equal(t, 1, clf.Classify([]float64{0}))
}
