package sammon_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/sammonmap/dataset"
	"github.com/katalvlaran/sammonmap/sammon"
)

// ExampleOptimizer_Map projects two well-separated 3-D clusters onto the plane.
func ExampleOptimizer_Map() {
	x := dataset.TwoSpheres(40)

	opt, err := sammon.New(2, sammon.WithAlpha(0.35))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	res, err := opt.Map(context.Background(), x)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Y.Len(), res.Y.Dimensionality(), res.Stress < res.InitialStress)
}

// ExampleOptimizer_SetAlpha shows the saturation of the step size.
func ExampleOptimizer_SetAlpha() {
	opt, _ := sammon.New(2)
	opt.SetAlpha(1)
	fmt.Println(opt.Alpha())
	opt.SetAlpha(0)
	fmt.Println(opt.Alpha())
	// Output:
	// 0.4
	// 0.3
}
