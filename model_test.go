package linearmodels

import (
	"testing"

	mat_ "github.com/burkovae/linear-models/mat"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeightsPredict(t *testing.T) {
	testData := map[string]struct {
		w        Weights
		x        [][]float64
		err      error
		expected []float64
	}{
		"line": {
			w:        Weights{Intercept: 200.0, Coef: []float64{10.0}},
			x:        [][]float64{{0}, {150}},
			expected: []float64{200.0, 1700.0},
		},
		"two features": {
			w:        Weights{Intercept: 2.0, Coef: []float64{3.0, 4.0}},
			x:        [][]float64{{0, 0}, {3, 5}},
			expected: []float64{2.0, 31.0},
		},
		"feature count mismatch": {
			w:   Weights{Intercept: 2.0, Coef: []float64{3.0, 4.0}},
			x:   [][]float64{{1, 2, 3}},
			err: ErrDimensionMismatch,
		},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			x, err := mat_.NewDenseFromRows(td.x)
			require.Nil(t, err)

			res, err := td.w.Predict(x)
			if td.err != nil {
				assert.ErrorIs(t, err, td.err)
				return
			}
			require.Nil(t, err)
			assert.InDeltaSlice(t, td.expected, res, 1e-12)
		})
	}
}

func TestWeightsRoundTrip(t *testing.T) {
	w := Weights{Intercept: -1.5, Coef: []float64{0.25, 3.0, -7.125}}

	data, err := w.Bytes()
	require.Nil(t, err)

	restored, err := NewWeightsFromBytes(data)
	require.Nil(t, err)
	assert.Equal(t, w, *restored)
}

func TestWeightsFromFit(t *testing.T) {
	x, err := mat_.NewDenseFromRows([][]float64{{0}, {50}, {100}, {150}})
	require.Nil(t, err)
	y, err := mat_.NewTarget([]float64{200, 700, 1200, 1700})
	require.Nil(t, err)

	model, err := NewOLSRegression(nil)
	require.Nil(t, err)
	require.Nil(t, model.Fit(x, y))

	w := model.Weights()
	assert.InDelta(t, 200.0, w.Intercept, 1e-6)
	assert.InDeltaSlice(t, []float64{10.0}, w.Coef, 1e-6)

	// the detached weights predict identically to the model
	fromModel, err := model.Predict(x)
	require.Nil(t, err)
	fromWeights, err := w.Predict(x)
	require.Nil(t, err)
	assert.Equal(t, fromModel, fromWeights)
}

func TestNewWeightsFromBytesInvalid(t *testing.T) {
	_, err := NewWeightsFromBytes([]byte("{"))
	assert.NotNil(t, err)

	var raw json.RawMessage
	assert.Nil(t, json.Unmarshal([]byte(`{"intercept":1,"coef":[2,3]}`), &raw))
	w, err := NewWeightsFromBytes(raw)
	require.Nil(t, err)
	assert.Equal(t, Weights{Intercept: 1, Coef: []float64{2, 3}}, *w)
}
