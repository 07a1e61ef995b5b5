package linearmodels

import (
	"errors"
	"fmt"

	mat_ "github.com/burkovae/linear-models/mat"
)

var (
	// ErrDimensionMismatch indicates that input shapes violate the documented
	// preconditions, e.g. ragged rows, mismatched row counts between the
	// training matrix and the target, or a feature count differing from the
	// fitted coefficients. Shape errors raised at matrix construction wrap the
	// same sentinel.
	ErrDimensionMismatch = mat_.ErrDimensionMismatch

	// ErrSingularMatrix indicates that the gram matrix of the (bias-augmented)
	// design matrix is singular or near-singular within the configured
	// tolerance, e.g. collinear features or fewer observations than
	// coefficients. The fit is aborted rather than returning meaningless
	// coefficients.
	ErrSingularMatrix = errors.New("gram matrix is singular or near-singular within tolerance")

	ErrNoOptions        = errors.New("no initialized model options")
	ErrNoTrainingMatrix = errors.New("no training matrix")
	ErrNoTargetMatrix   = errors.New("no target matrix")
	ErrNoDesignMatrix   = errors.New("no design matrix for inference")

	ErrTargetLenMismatch  = fmt.Errorf("target length does not match training rows, %w", ErrDimensionMismatch)
	ErrFeatureLenMismatch = fmt.Errorf("number of features does not match number of model coefficients, %w", ErrDimensionMismatch)

	ErrNegativeCondTol = errors.New("negative condition tolerance")
	ErrNegativeLambda  = errors.New("negative lambda")
	ErrNoLambdas       = errors.New("no lambdas provided to fit with")
)
