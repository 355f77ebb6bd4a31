package vectorset_test

import (
	"fmt"

	"github.com/katalvlaran/sammonmap/vectorset"
)

// ExampleVectorSet_Distance shows the compute-then-query cache discipline.
func ExampleVectorSet_Distance() {
	vs, _ := vectorset.New(3)
	_ = vs.Add([]float64{0, 0, 0})
	_ = vs.Add([]float64{1, 2, 2})
	_ = vs.Add([]float64{0, 3, 4})

	if _, err := vs.Distance(0, 1); err != nil {
		fmt.Println("before compute:", err)
	}
	_ = vs.ComputeDistanceMatrix()

	d01, _ := vs.Distance(0, 1)
	d02, _ := vs.Distance(0, 2)
	c, _ := vs.NormalizingConstant()
	fmt.Printf("d(0,1)=%.0f d(0,2)=%.0f c=%.4f\n", d01, d02, c)
	// Output:
	// before compute: vectorset: distance matrix not computed
	// d(0,1)=3 d(0,2)=5 c=10.4495
}

// ExampleVectorSet_Diff shows the convergence metric between two configurations.
func ExampleVectorSet_Diff() {
	a, _ := vectorset.FromPoints(2, [][]float64{{0, 0}, {1, 1}})
	b, _ := vectorset.FromPoints(2, [][]float64{{0, 0.5}, {1, 1}})

	d, _ := a.Diff(b)
	fmt.Println(d)
	// Output:
	// 0.25
}
