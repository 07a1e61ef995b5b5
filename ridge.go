package linearmodels

import (
	"fmt"
	"log/slog"
	"math"
	"sync"

	mat_ "github.com/burkovae/linear-models/mat"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

const DefaultLambda = 1.0

// RidgeOptions represents input options to run the Ridge Regression
type RidgeOptions struct {
	// Lambda represents the L2 multiplier, controlling the regularization. Must be
	// non-negative. 0.0 is equivalent to Ordinary Least Squares (OLS).
	Lambda float64

	// FitIntercept adds a constant 1.0 feature as the first column if set to true
	FitIntercept bool
}

// Validate runs basic validation on Ridge options
func (r *RidgeOptions) Validate() (*RidgeOptions, error) {
	if r == nil {
		r = NewDefaultRidgeOptions()
	}

	if r.Lambda < 0 {
		return nil, ErrNegativeLambda
	}
	return r, nil
}

// NewDefaultRidgeOptions returns a default set of Ridge Regression options
func NewDefaultRidgeOptions() *RidgeOptions {
	return &RidgeOptions{
		Lambda:       DefaultLambda,
		FitIntercept: true,
	}
}

// RidgeRegression computes the L2 regularized least squares solution in closed
// form, solving (XᵗX + λI)c = Xᵗy with a Cholesky factorization of the damped
// gram matrix. All coefficients including the bias are shrunk toward zero.
// Regularization is never applied implicitly; it must be requested through the
// Lambda option.
type RidgeRegression struct {
	opt       *RidgeOptions
	coef      []float64
	intercept float64
}

// NewRidgeRegression initializes a Ridge model ready for fitting
func NewRidgeRegression(opt *RidgeOptions) (*RidgeRegression, error) {
	opt, err := opt.Validate()
	if err != nil {
		return nil, err
	}
	return &RidgeRegression{
		opt: opt,
	}, nil
}

// Fit the model according to the given training data
func (r *RidgeRegression) Fit(x, y mat.Matrix) error {
	if r.opt == nil {
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

	if r.opt.FitIntercept {
		x = mat_.WithOnes(x)
		_, n = x.Dims()
	}

	gram := mat.NewSymDense(n, nil)
	gram.SymOuterK(1.0, x.T())
	for i := 0; i < n; i++ {
		gram.SetSym(i, i, gram.At(i, i)+r.opt.Lambda)
	}

	var chol mat.Cholesky
	if ok := chol.Factorize(gram); !ok {
		return fmt.Errorf("damped gram matrix is not positive definite, %w", ErrSingularMatrix)
	}

	yVec := mat.NewVecDense(m, mat.Col(nil, 0, y))
	var xty mat.VecDense
	xty.MulVec(x.T(), yVec)

	var c mat.VecDense
	if err := chol.SolveVecTo(&c, &xty); err != nil {
		return fmt.Errorf("unable to solve against the damped gram matrix, %w", ErrSingularMatrix)
	}

	coef := make([]float64, n)
	copy(coef, c.RawVector().Data)

	if r.opt.FitIntercept {
		r.intercept = coef[0]
		r.coef = coef[1:]
	} else {
		r.coef = coef
	}

	return nil
}

// Predict using the Ridge model
func (r *RidgeRegression) Predict(x mat.Matrix) ([]float64, error) {
	if r.opt == nil {
		return nil, ErrNoOptions
	}
	if x == nil {
		return nil, ErrNoDesignMatrix
	}

	coef := r.coef
	if r.opt.FitIntercept {
		coef = append([]float64{r.intercept}, r.coef...)
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
func (r *RidgeRegression) Score(x, y mat.Matrix) (float64, error) {
	if r.opt == nil {
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

	res, err := r.Predict(x)
	if err != nil {
		return 0.0, err
	}

	ySlice := mat.Col(nil, 0, y)

	return stat.RSquaredFrom(res, ySlice, nil), nil
}

// Intercept returns the computed intercept if FitIntercept is set to true. Defaults to 0.0 if not set.
func (r *RidgeRegression) Intercept() float64 {
	return r.intercept
}

// Coef returns a slice of the trained coefficients in the same order of the training feature Matrix by column.
func (r *RidgeRegression) Coef() []float64 {
	c := make([]float64, len(r.coef))
	copy(c, r.coef)
	return c
}

// Weights returns the fitted weight vector detached from the model.
func (r *RidgeRegression) Weights() Weights {
	return Weights{
		Intercept: r.intercept,
		Coef:      r.Coef(),
	}
}

// RidgeAutoOptions represents input options to run the Ridge Regression with
// automated selection of the regularization parameter lambda
type RidgeAutoOptions struct {
	// Lambdas are the candidate L2 multipliers to fit with. All must be non-negative.
	Lambdas []float64

	// FitIntercept adds a constant 1.0 feature as the first column if set to true
	FitIntercept bool

	// Parallelization sets how many fits to run in parallel. More will increase
	// memory and compute usage.
	Parallelization int
}

// Validate runs basic validation on Ridge Auto options
func (r *RidgeAutoOptions) Validate() (*RidgeAutoOptions, error) {
	if r == nil {
		r = NewDefaultRidgeAutoOptions()
	}

	if len(r.Lambdas) == 0 {
		return nil, ErrNoLambdas
	}
	for _, lambda := range r.Lambdas {
		if lambda < 0.0 {
			return nil, ErrNegativeLambda
		}
	}
	if r.Parallelization <= 0 || r.Parallelization > len(r.Lambdas) {
		r.Parallelization = len(r.Lambdas)
	}
	return r, nil
}

// NewDefaultRidgeAutoOptions returns a default set of Ridge Auto Regression options
func NewDefaultRidgeAutoOptions() *RidgeAutoOptions {
	return &RidgeAutoOptions{
		Lambdas:         []float64{DefaultLambda},
		FitIntercept:    true,
		Parallelization: 1,
	}
}

// RidgeAutoRegression fits one ridge model per candidate lambda and keeps the
// one with the best coefficient of determination.
type RidgeAutoRegression struct {
	opt *RidgeAutoOptions

	scoreMu   sync.Mutex
	bestScore float64
	bestModel *RidgeRegression
}

// NewRidgeAutoRegression initializes a Ridge model ready for fitting using
// automated lambda parameter selection
func NewRidgeAutoRegression(opt *RidgeAutoOptions) (*RidgeAutoRegression, error) {
	opt, err := opt.Validate()
	if err != nil {
		return nil, err
	}
	return &RidgeAutoRegression{
		opt:       opt,
		bestScore: math.Inf(-1),
	}, nil
}

// Fit the model according to the given training data
func (r *RidgeAutoRegression) Fit(x, y mat.Matrix) error {
	if r.opt == nil {
		return ErrNoOptions
	}
	if x == nil {
		return ErrNoTrainingMatrix
	}
	if y == nil {
		return ErrNoTargetMatrix
	}

	m, _ := x.Dims()

	ym, _ := y.Dims()
	if ym != m {
		return fmt.Errorf("training data has %d rows and target has %d rows, %w", m, ym, ErrTargetLenMismatch)
	}

	if r.opt.FitIntercept {
		x = mat_.WithOnes(x)
	}

	// a refit starts the candidate search over, previous fits do not carry over
	r.bestScore = math.Inf(-1)
	r.bestModel = nil

	sem := make(chan struct{}, r.opt.Parallelization)
	var wg sync.WaitGroup
	for _, lambda := range r.opt.Lambdas {
		sem <- struct{}{}
		wg.Add(1)

		go r.runRidge(lambda, x, y, &wg, sem)
	}
	wg.Wait()

	if r.bestModel == nil {
		return fmt.Errorf("no candidate lambda produced a usable fit, %w", ErrSingularMatrix)
	}
	return nil
}

func (r *RidgeAutoRegression) runRidge(lambda float64, x, y mat.Matrix, wg *sync.WaitGroup, sem chan struct{}) {
	defer func() {
		wg.Done()
		<-sem
	}()

	opt := &RidgeOptions{
		Lambda:       lambda,
		FitIntercept: false, // taken care of ahead of time
	}
	reg, err := NewRidgeRegression(opt)
	if err != nil {
		slog.Error("unable to initialize ridge regression", "lambda", lambda, "error", err.Error())
		return
	}

	if err := reg.Fit(x, y); err != nil {
		slog.Error("unable to fit ridge regression", "lambda", lambda, "error", err.Error())
		return
	}

	score, err := reg.Score(x, y)
	if err != nil {
		slog.Error("unable to compute fit score for ridge regression", "lambda", lambda, "error", err.Error())
		return
	}

	r.scoreMu.Lock()
	defer r.scoreMu.Unlock()
	if score > r.bestScore {
		r.bestScore = score
		r.bestModel = reg
	}
}

// Predict using the best fitted Ridge model
func (r *RidgeAutoRegression) Predict(x mat.Matrix) ([]float64, error) {
	if r.bestModel == nil {
		return nil, ErrNoOptions
	}
	if x == nil {
		return nil, ErrNoDesignMatrix
	}

	if r.opt.FitIntercept {
		x = mat_.WithOnes(x)
	}
	return r.bestModel.Predict(x)
}

// Score computes the coefficient of determination of the prediction
func (r *RidgeAutoRegression) Score(x, y mat.Matrix) (float64, error) {
	if r.bestModel == nil {
		return 0.0, ErrNoOptions
	}
	if x == nil {
		return 0.0, ErrNoDesignMatrix
	}

	if r.opt.FitIntercept {
		x = mat_.WithOnes(x)
	}
	return r.bestModel.Score(x, y)
}

// Intercept returns the computed intercept if FitIntercept is set to true. Defaults to 0.0 if not set.
func (r *RidgeAutoRegression) Intercept() float64 {
	if r == nil || r.bestModel == nil {
		return 0.0
	}
	if r.opt.FitIntercept {
		return r.bestModel.Coef()[0]
	}
	return 0.0
}

// Coef returns a slice of the trained coefficients in the same order of the training feature Matrix by column.
func (r *RidgeAutoRegression) Coef() []float64 {
	if r == nil || r.bestModel == nil {
		return nil
	}
	if r.opt.FitIntercept {
		return r.bestModel.Coef()[1:]
	}
	return r.bestModel.Coef()
}

// Weights returns the fitted weight vector detached from the model.
func (r *RidgeAutoRegression) Weights() Weights {
	return Weights{
		Intercept: r.Intercept(),
		Coef:      r.Coef(),
	}
}

// BestLambda returns the lambda of the best scoring candidate model. Only
// meaningful after a successful fit.
func (r *RidgeAutoRegression) BestLambda() float64 {
	if r == nil || r.bestModel == nil {
		return 0.0
	}
	return r.bestModel.opt.Lambda
}
