package linearmodels

import (
	"fmt"
	"math"

	mat_ "github.com/burkovae/linear-models/mat"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// DefaultCondTol is the reciprocal condition estimate below which a fit is
// reported as singular.
const DefaultCondTol = 1e-12

// OLSOptions represents input options to run the OLS Regression
type OLSOptions struct {
	// FitIntercept adds a constant 1.0 feature as the first column if set to true
	FitIntercept bool

	// CondTol is the smallest reciprocal condition estimate of the factored
	// design matrix before the fit is rejected as singular. Defaults to
	// DefaultCondTol when left at 0.
	CondTol float64
}

// Validate runs basic validation on OLS options
func (o *OLSOptions) Validate() (*OLSOptions, error) {
	if o == nil {
		o = NewDefaultOLSOptions()
	}

	if o.CondTol < 0 {
		return nil, ErrNegativeCondTol
	}
	if o.CondTol == 0 {
		o.CondTol = DefaultCondTol
	}
	return o, nil
}

// NewDefaultOLSOptions returns a default set of OLS Regression options
func NewDefaultOLSOptions() *OLSOptions {
	return &OLSOptions{
		FitIntercept: true,
		CondTol:      DefaultCondTol,
	}
}

// OLSRegression computes ordinary least squares using QR factorization. QR is
// numerically equivalent to solving the normal equation with the inverse gram
// matrix, without forming the gram matrix and squaring its condition number.
type OLSRegression struct {
	opt       *OLSOptions
	coef      []float64
	intercept float64
}

// NewOLSRegression initializes an ordinary least squares model ready for fitting
func NewOLSRegression(opt *OLSOptions) (*OLSRegression, error) {
	opt, err := opt.Validate()
	if err != nil {
		return nil, err
	}
	return &OLSRegression{
		opt: opt,
	}, nil
}

// Fit the model according to the given training data
func (o *OLSRegression) Fit(x, y mat.Matrix) error {
	if o.opt == nil {
		return ErrNoOptions
	}
	if x == nil {
		return ErrNoTrainingMatrix
	}
	if y == nil {
		return ErrNoTargetMatrix
	}
	m, n := x.Dims()

	ym, _ := y.Dims()
	if ym != m {
		return fmt.Errorf("training data has %d rows and target has %d rows, %w", m, ym, ErrTargetLenMismatch)
	}

	if o.opt.FitIntercept {
		x = mat_.WithOnes(x)
		_, n = x.Dims()
	}

	if m < n {
		return fmt.Errorf("%d observations cannot determine %d coefficients, %w", m, n, ErrSingularMatrix)
	}

	yT := y.T()

	qr := new(mat.QR)
	qr.Factorize(x)

	q := new(mat.Dense)
	r := new(mat.Dense)

	qr.QTo(q)
	qr.RTo(r)

	if rcond := diagRCond(r, n); rcond < o.opt.CondTol {
		return fmt.Errorf("reciprocal condition estimate %.3g below tolerance %.3g, %w", rcond, o.opt.CondTol, ErrSingularMatrix)
	}

	yq := new(mat.Dense)
	yq.Mul(yT, q)

	c := make([]float64, n)
	for i := n - 1; i >= 0; i-- {
		c[i] = yq.At(0, i)
		for j := i + 1; j < n; j++ {
			c[i] -= c[j] * r.At(i, j)
		}
		c[i] /= r.At(i, i)
	}

	if o.opt.FitIntercept {
		o.intercept = c[0]
		o.coef = c[1:]
	} else {
		o.coef = c
	}

	return nil
}

// diagRCond estimates the reciprocal condition number of the upper triangular
// factor from the ratio of its extreme diagonal magnitudes. A rank deficient
// factor has a zero on the diagonal and estimates to 0.
func diagRCond(r mat.Matrix, n int) float64 {
	maxAbs := 0.0
	minAbs := math.Inf(1)
	for i := 0; i < n; i++ {
		v := math.Abs(r.At(i, i))
		maxAbs = math.Max(maxAbs, v)
		minAbs = math.Min(minAbs, v)
	}
	if maxAbs == 0 {
		return 0.0
	}
	return minAbs / maxAbs
}

// Predict using the OLS model
func (o *OLSRegression) Predict(x mat.Matrix) ([]float64, error) {
	if o.opt == nil {
		return nil, ErrNoOptions
	}
	if x == nil {
		return nil, ErrNoDesignMatrix
	}

	coef := o.coef
	if o.opt.FitIntercept {
		coef = append([]float64{o.intercept}, o.coef...)
		x = mat_.WithOnes(x)
	}
	n := len(coef)

	_, xn := x.Dims()
	if xn != n {
		return nil, fmt.Errorf("got %d features in design matrix, but expected %d, %w", xn, n, ErrFeatureLenMismatch)
	}
	coefMx := mat.NewDense(1, n, coef)

	var res mat.Dense
	res.Mul(coefMx, x.T())
	return res.RawRowView(0), nil
}

// Score computes the coefficient of determination of the prediction
func (o *OLSRegression) Score(x, y mat.Matrix) (float64, error) {
	if o.opt == nil {
		return 0.0, ErrNoOptions
	}
	if x == nil {
		return 0.0, ErrNoDesignMatrix
	}
	if y == nil {
		return 0.0, ErrNoTargetMatrix
	}

	m, _ := x.Dims()

	ym, _ := y.Dims()
	if m != ym {
		return 0.0, fmt.Errorf("design matrix has %d rows and target has %d rows, %w", m, ym, ErrTargetLenMismatch)
	}

	res, err := o.Predict(x)
	if err != nil {
		return 0.0, err
	}

	ySlice := mat.Col(nil, 0, y)

	return stat.RSquaredFrom(res, ySlice, nil), nil
}

// Intercept returns the computed intercept if FitIntercept is set to true. Defaults to 0.0 if not set.
func (o *OLSRegression) Intercept() float64 {
	return o.intercept
}

// Coef returns a slice of the trained coefficients in the same order of the training feature Matrix by column.
func (o *OLSRegression) Coef() []float64 {
	c := make([]float64, len(o.coef))
	copy(c, o.coef)
	return c
}

// Weights returns the fitted weight vector detached from the model.
func (o *OLSRegression) Weights() Weights {
	return Weights{
		Intercept: o.intercept,
		Coef:      o.Coef(),
	}
}
