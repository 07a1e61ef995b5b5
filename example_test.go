package linearmodels_test

import (
	"fmt"

	linearmodels "github.com/burkovae/linear-models"
	mat_ "github.com/burkovae/linear-models/mat"
)

func ExampleOLSRegression() {
	x, err := mat_.NewDenseFromRows([][]float64{{0}, {50}, {100}, {150}})
	if err != nil {
		panic(err)
	}
	y, err := mat_.NewTarget([]float64{200, 700, 1200, 1700})
	if err != nil {
		panic(err)
	}

	model, err := linearmodels.NewOLSRegression(nil)
	if err != nil {
		panic(err)
	}
	if err := model.Fit(x, y); err != nil {
		panic(err)
	}

	newX, err := mat_.NewDenseFromRows([][]float64{{75}})
	if err != nil {
		panic(err)
	}
	res, err := model.Predict(newX)
	if err != nil {
		panic(err)
	}

	fmt.Printf("intercept: %.1f\n", model.Intercept())
	fmt.Printf("coef: %.1f\n", model.Coef()[0])
	fmt.Printf("prediction at 75: %.1f\n", res[0])
	// Output:
	// intercept: 200.0
	// coef: 10.0
	// prediction at 75: 950.0
}
