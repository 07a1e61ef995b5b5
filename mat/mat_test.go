package mat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestNewDenseFromRows(t *testing.T) {
	testData := map[string]struct {
		err error
		x   [][]float64
		m   int
		n   int
	}{
		"nil input": {
			ErrNoRows,
			nil,
			0, 0,
		},
		"empty input": {
			ErrNoRows,
			[][]float64{},
			0, 0,
		},
		"zero width rows": {
			ErrNoCols,
			[][]float64{{}, {}},
			0, 0,
		},
		"single element": {
			nil,
			[][]float64{{1}},
			1, 1,
		},
		"one row multiple cols": {
			nil,
			[][]float64{{1, 2, 3}},
			1, 3,
		},
		"multiple rows one col": {
			nil,
			[][]float64{{1}, {2}, {3}},
			3, 1,
		},
		"multiple rows and cols": {
			nil,
			[][]float64{{1, 2, 3}, {4, 5, 6}},
			2, 3,
		},
		"inconsistent cols": {
			ErrColMismatch,
			[][]float64{{1, 2, 3}, {4, 5}},
			0, 0,
		},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			mx, err := NewDenseFromRows(td.x)
			if td.err != nil {
				require.ErrorIs(t, err, td.err)
				assert.ErrorIs(t, err, ErrDimensionMismatch)
				return
			}
			require.Nil(t, err)

			m, n := mx.Dims()
			assert.Equal(t, td.m, m, "m")
			assert.Equal(t, td.n, n, "n")

			for ri, row := range td.x {
				assert.Equal(t, row, mat.Row(nil, ri, mx), "rows")
			}
		})
	}
}

func TestNewTarget(t *testing.T) {
	y, err := NewTarget([]float64{1, 2, 3})
	require.Nil(t, err)

	m, n := y.Dims()
	assert.Equal(t, 3, m)
	assert.Equal(t, 1, n)
	assert.Equal(t, 2.0, y.At(1, 0))

	_, err = NewTarget(nil)
	assert.ErrorIs(t, err, ErrNoRows)
	assert.ErrorIs(t, err, ErrDimensionMismatch)
}

func TestWithOnes(t *testing.T) {
	x, err := NewDenseFromRows([][]float64{{2, 3}, {4, 5}})
	require.Nil(t, err)

	xa := WithOnes(x)
	m, n := xa.Dims()
	assert.Equal(t, 2, m)
	assert.Equal(t, 3, n)

	assert.Equal(t, []float64{1, 2, 3}, mat.Row(nil, 0, xa))
	assert.Equal(t, []float64{1, 4, 5}, mat.Row(nil, 1, xa))
}
