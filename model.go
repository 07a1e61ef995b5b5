// Package linearmodels is a collection of linear regression fitting
// implementations sharing a common model interface.
package linearmodels

import (
	"fmt"

	mat_ "github.com/burkovae/linear-models/mat"
	"github.com/goccy/go-json"
	"gonum.org/v1/gonum/mat"
)

type Model interface {
	Fit(x, y mat.Matrix) error
	Predict(x mat.Matrix) ([]float64, error)
	Score(x, y mat.Matrix) (float64, error)
	Intercept() float64
	Coef() []float64
	Weights() Weights
}

// Weights is the bias-augmented weight vector of a fitted linear model. It is
// a plain value detached from the model that produced it, suitable for
// persisting and for applying to new observations without refitting.
type Weights struct {
	Intercept float64   `json:"intercept"`
	Coef      []float64 `json:"coef"`
}

// Predict applies the weights to every row of x, prepending the constant 1.0
// bias feature to each row. Returns one value per row in row order.
func (w Weights) Predict(x mat.Matrix) ([]float64, error) {
	if x == nil {
		return nil, ErrNoDesignMatrix
	}

	coef := append([]float64{w.Intercept}, w.Coef...)
	n := len(coef)

	xa := mat_.WithOnes(x)
	_, xn := xa.Dims()
	if xn != n {
		return nil, fmt.Errorf("got %d features in design matrix, but expected %d, %w", xn-1, n-1, ErrFeatureLenMismatch)
	}
	coefMx := mat.NewDense(1, n, coef)

	var res mat.Dense
	res.Mul(coefMx, xa.T())
	return res.RawRowView(0), nil
}

// Bytes serializes the weights to JSON.
func (w Weights) Bytes() ([]byte, error) {
	return json.Marshal(w)
}

// NewWeightsFromBytes deserializes weights previously serialized with Bytes.
func NewWeightsFromBytes(data []byte) (*Weights, error) {
	w := new(Weights)
	if err := json.Unmarshal(data, w); err != nil {
		return nil, fmt.Errorf("unable to unmarshal weights, %w", err)
	}
	return w, nil
}
