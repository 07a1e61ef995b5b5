// Package dataset generates synthetic regression data with known weights,
// primarily for tests, benchmarks and examples.
package dataset

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

var (
	ErrNoCoef         = errors.New("no coefficients provided")
	ErrCoefLen        = errors.New("coefficient count does not match design matrix columns")
	ErrNoDesignMatrix = errors.New("no design matrix provided")
)

// Series is a response vector that can be composed out of multiple additive parts.
type Series []float64

// Add accumulates src into the series in place.
func (s Series) Add(src Series) Series {
	floats.Add(s, src)
	return s
}

// AddNoise perturbs every point with gaussian noise of the given scale.
func (s Series) AddNoise(scale float64, rnd *rand.Rand) Series {
	for i := range s {
		s[i] += rnd.NormFloat64() * scale
	}
	return s
}

// Features generates an m x n design matrix of iid uniform features in
// [-1, 1). Pass a seeded *rand.Rand for reproducible data.
func Features(m, n int, rnd *rand.Rand) *mat.Dense {
	data := make([]float64, m*n)
	for i := range data {
		data[i] = rnd.Float64()*2.0 - 1.0
	}
	return mat.NewDense(m, n, data)
}

// Response computes the noise free response intercept + x·coef for every row
// of x.
func Response(x mat.Matrix, intercept float64, coef []float64) (Series, error) {
	if x == nil {
		return nil, ErrNoDesignMatrix
	}
	if len(coef) == 0 {
		return nil, ErrNoCoef
	}
	m, n := x.Dims()
	if n != len(coef) {
		return nil, fmt.Errorf("design matrix has %d columns and %d coefficients, %w", n, len(coef), ErrCoefLen)
	}

	coefMx := mat.NewDense(1, n, coef)
	var res mat.Dense
	res.Mul(coefMx, x.T())

	y := make(Series, m)
	copy(y, res.RawRowView(0))
	floats.AddConst(intercept, y)
	return y, nil
}
