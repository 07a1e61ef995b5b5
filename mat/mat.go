// Package mat provides construction helpers bridging row-oriented float
// slices and gonum dense matrices.
package mat

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

var (
	// ErrDimensionMismatch indicates that input shapes cannot form a valid
	// dense matrix. Every shape error in this package wraps it.
	ErrDimensionMismatch = errors.New("input dimensions do not agree")

	ErrColMismatch = fmt.Errorf("column size mismatch, %w", ErrDimensionMismatch)
	ErrNoRows      = fmt.Errorf("no rows provided, %w", ErrDimensionMismatch)
	ErrNoCols      = fmt.Errorf("no columns provided, %w", ErrDimensionMismatch)
)

// NewDenseFromRows creates a dense matrix from a slice of observation rows.
// Every row must have the same length and at least one value must be present.
func NewDenseFromRows(x [][]float64) (*mat.Dense, error) {
	m := len(x)
	if m == 0 {
		return nil, ErrNoRows
	}

	n := -1
	for i, row := range x {
		if n >= 0 && len(row) != n {
			return nil, fmt.Errorf("at row %d, %w", i, ErrColMismatch)
		}
		if n < 0 {
			n = len(row)
		}
	}
	if n == 0 {
		return nil, ErrNoCols
	}

	// flatten to row order
	data := make([]float64, 0, m*n)
	for _, row := range x {
		data = append(data, row...)
	}
	return mat.NewDense(m, n, data), nil
}

// NewTarget creates the m x 1 target matrix from a slice of observed
// responses.
func NewTarget(y []float64) (*mat.Dense, error) {
	if len(y) == 0 {
		return nil, ErrNoRows
	}
	return mat.NewDense(len(y), 1, y), nil
}

// WithOnes returns x with a constant 1.0 column prepended to every row,
// representing the bias feature of a linear model.
func WithOnes(x mat.Matrix) mat.Matrix {
	m, _ := x.Dims()
	ones := make([]float64, m)
	floats.AddConst(1.0, ones)
	onesMx := mat.NewDense(1, m, ones)

	var withOnes mat.Dense
	withOnes.Stack(onesMx, x.T())
	return withOnes.T()
}
