// Package linear implements feature normalization and batch gradient-descent
// training for a binary logistic regression model.
package linear

import (
	"log"
	"math"
)

// Scorer defines the functions that a scorer should implement.
// Evaluate computes the score of a feature vector using the scorer.
type Scorer interface {
	Evaluate([]float64) float64
	Print()
}

// LogisticRegression represents a binary logistic regression classifier.
type LogisticRegression struct {
	Bias  float64
	Coefs []float64
}

var _ Scorer = (*LogisticRegression)(nil)

// NewLogisticRegression returns a model with every coefficient and the bias
// set to init.
func NewLogisticRegression(numFeatures int, init float64) *LogisticRegression {
	coefs := make([]float64, numFeatures)
	for i := range coefs {
		coefs[i] = init
	}
	return &LogisticRegression{Bias: init, Coefs: coefs}
}

// Evaluate returns the probability of the feature vector to be classified as
// class 1 (v.s. 0) given the model.
func (l *LogisticRegression) Evaluate(feats []float64) float64 {
	if len(feats) != len(l.Coefs) {
		log.Fatalln("feature length is not equal to length of coefs", len(feats), len(l.Coefs))
	}
	var score float64
	for i := range l.Coefs {
		score += feats[i] * l.Coefs[i]
	}
	score += l.Bias
	return 1 / (1 + math.Exp(-score))
}

// Classify maps the feature vector to class 1 if its probability is at least
// one half, and to class 0 otherwise.
func (l *LogisticRegression) Classify(feats []float64) int {
	if l.Evaluate(feats) >= 0.5 {
		return 1
	}
	return 0
}

// Print prints coefficients of a logistic regression classifier.
func (l *LogisticRegression) Print() {
	log.Println("Bias", l.Bias)
	log.Println("Coefs", l.Coefs)
}
