package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/sammonmap/dataset"
	"github.com/katalvlaran/sammonmap/vectorset"
)

// generators lists the synthetic datasets by --kind.
var generators = map[string]func(n int, radius float64, seed int64) *vectorset.VectorSet{
	"two-spheres": func(n int, _ float64, _ int64) *vectorset.VectorSet { return dataset.TwoSpheres(n) },
	"two-clusters": func(n int, radius float64, seed int64) *vectorset.VectorSet {
		return dataset.TwoClusters(n/2, radius, vectorset.NewRand(seed))
	},
	"sphere":      func(n int, radius float64, _ int64) *vectorset.VectorSet { return dataset.Sphere(n, radius) },
	"tetrahedron": func(int, float64, int64) *vectorset.VectorSet { return dataset.Tetrahedron() },
}

func (c *CLI) newGenerateCommand() *cobra.Command {
	var (
		kind       string
		n          int
		radius     float64
		seed       int64
		outputPath string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a synthetic 3-D point set as CSV",
		Args:  cobra.NoArgs,
		Example: `  sammonmap generate --kind two-spheres -n 100 > points.csv
  sammonmap generate --kind two-clusters -n 60 --radius 0.5 --seed 7 -o points.csv
  sammonmap generate --kind tetrahedron`,
		RunE: func(cmd *cobra.Command, args []string) error {
			gen, ok := generators[kind]
			if !ok {
				return fmt.Errorf("unknown kind %q (want one of %s)", kind, kindNames())
			}
			if n <= 0 {
				return fmt.Errorf("--count must be > 0, got %d", n)
			}
			return writeOutput(cmd, outputPath, gen(n, radius, seed))
		},
	}

	f := cmd.Flags()
	f.StringVarP(&kind, "kind", "k", "two-spheres", "Dataset: "+kindNames())
	f.IntVarP(&n, "count", "n", 100, "Number of points (ignored for tetrahedron)")
	f.Float64Var(&radius, "radius", 1, "Sphere or cluster radius")
	f.Int64Var(&seed, "seed", vectorset.DefaultSeed, "Seed for random datasets")
	f.StringVarP(&outputPath, "output", "o", "-", "Output CSV (- for stdout)")

	return cmd
}

func kindNames() string {
	return strings.Join([]string{"two-spheres", "two-clusters", "sphere", "tetrahedron"}, ", ")
}
