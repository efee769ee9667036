package linear

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"

	"github.com/kiteco/logreg/arff"
)

func column(buff []float64, numFeatures, i, numInstances int) []float64 {
	col := make([]float64, numInstances)
	for j := range col {
		col[j] = buff[j*numFeatures+i]
	}
	return col
}

func TestNormalizeMatrix(t *testing.T) {
	feats := []arff.NumericAttr{
		{Name: "f1", Min: 1, Max: 5, Mean: 3},
		{Name: "f2", Min: 2, Max: 6, Mean: 4},
	}
	buff := []float64{
		1, 2,
		3, 4,
		5, 6,
	}

	NewNormalizer(feats).NormalizeMatrix(buff, 3)

	assert.Equal(t, []float64{
		-0.5, -0.5,
		0, 0,
		0.5, 0.5,
	}, buff)
}

func TestNormalizeCentersColumns(t *testing.T) {
	feats := []arff.NumericAttr{
		{Name: "f1", Min: -2, Max: 10, Mean: 2.5},
		{Name: "f2", Min: 0.25, Max: 0.75, Mean: 0.4375},
	}
	buff := []float64{
		-2, 0.25,
		1, 0.3,
		1, 0.45,
		10, 0.75,
	}

	NewNormalizer(feats).NormalizeMatrix(buff, 4)

	for i, f := range feats {
		col := column(buff, len(feats), i, 4)
		require.InDelta(t, 0, stat.Mean(col, nil), 1e-12, f.Name)
		rng := f.Max - f.Min
		for _, v := range col {
			assert.True(t, v >= (f.Min-f.Mean)/rng-1e-12, f.Name)
			assert.True(t, v <= (f.Max-f.Mean)/rng+1e-12, f.Name)
		}
	}
}

func TestNormalizeConstantColumnUntouched(t *testing.T) {
	feats := []arff.NumericAttr{
		{Name: "const", Min: 7, Max: 7, Mean: 7},
		{Name: "f", Min: 0, Max: 2, Mean: 1},
	}
	buff := []float64{
		7, 0,
		7, 2,
	}

	NewNormalizer(feats).NormalizeMatrix(buff, 2)

	assert.Equal(t, []float64{
		7, -0.5,
		7, 0.5,
	}, buff)
}

func TestNormalizeSingleRow(t *testing.T) {
	feats := []arff.NumericAttr{{Name: "f", Min: 0, Max: 10, Mean: 4}}
	row := NewNormalizer(feats).Normalize([]float64{9})
	assert.InDelta(t, 0.5, row[0], 1e-12)
}
