package linear

import (
	"log"

	"github.com/kiteco/logreg/arff"
)

// Normalizer normalizes input data as follows: x = (x + Offset) * Scale.
type Normalizer struct {
	Offset []float64
	Scale  []float64
}

// NewNormalizer builds a mean-and-range normalizer from the statistics of the
// given feature attributes: a value v in column i maps to
// (v - mean) / (max - min). A column with zero range is left untouched.
func NewNormalizer(feats []arff.NumericAttr) *Normalizer {
	n := &Normalizer{
		Offset: make([]float64, len(feats)),
		Scale:  make([]float64, len(feats)),
	}
	for i, f := range feats {
		rng := f.Max - f.Min
		if rng == 0 {
			n.Scale[i] = 1
			continue
		}
		n.Offset[i] = -f.Mean
		n.Scale[i] = 1 / rng
	}
	return n
}

// Normalize normalizes the input feature vector by the normalizer's
// offset vector and scale vector.
func (n *Normalizer) Normalize(features []float64) []float64 {
	if len(features) != len(n.Offset) {
		log.Fatalln("feature length is not equal to length of offset", len(features), len(n.Offset))
	}
	for i := 0; i < len(features); i++ {
		features[i] = (features[i] + n.Offset[i]) * n.Scale[i]
	}
	return features
}

// NormalizeMatrix normalizes a row-major feature matrix in place, one row
// per instance.
func (n *Normalizer) NormalizeMatrix(buff []float64, numInstances int) {
	numFeatures := len(n.Offset)
	for j := 0; j < numInstances; j++ {
		n.Normalize(buff[j*numFeatures : (j+1)*numFeatures])
	}
}

// Print prints co-efficients of the normalizer.
func (n *Normalizer) Print() {
	log.Println("Offset:", n.Offset)
	log.Println("Scale:", n.Scale)
}
