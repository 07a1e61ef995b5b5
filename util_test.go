package linearmodels

import (
	"math/rand/v2"
	"testing"

	"github.com/burkovae/linear-models/dataset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func testModel(t *testing.T, model Model, x, y mat.Matrix, intercept float64, coef []float64, tol float64) {
	err := model.Fit(x, y)
	require.Nil(t, err)

	assert.InDelta(t, intercept, model.Intercept(), tol, "intercept")

	c := model.Coef()
	assert.InDeltaSlice(t, coef, c, tol, "coefficients")

	r2, err := model.Score(x, y)
	require.Nil(t, err)
	assert.InDelta(t, 1.0, r2, tol, "score")
}

// generateTestData returns a well conditioned design matrix along with the
// noise free responses of the known weights.
func generateTestData(t testing.TB, nObs int, intercept float64, coef []float64) (mat.Matrix, mat.Matrix) {
	rnd := rand.New(rand.NewPCG(42, 1))
	x := dataset.Features(nObs, len(coef), rnd)
	y, err := dataset.Response(x, intercept, coef)
	if err != nil {
		t.Fatal(err)
	}
	return x, mat.NewDense(nObs, 1, y)
}
