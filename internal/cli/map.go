package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/sammonmap/dataset"
	"github.com/katalvlaran/sammonmap/internal/config"
	"github.com/katalvlaran/sammonmap/sammon"
	"github.com/katalvlaran/sammonmap/scatter"
	"github.com/katalvlaran/sammonmap/store"
	"github.com/katalvlaran/sammonmap/vectorset"
)

func (c *CLI) newMapCommand() *cobra.Command {
	var (
		configPath string
		inputPath  string
		outputPath string
		flags      = config.Default()
	)

	cmd := &cobra.Command{
		Use:   "map",
		Short: "Map a CSV point set onto a lower dimensionality",
		Args:  cobra.NoArgs,
		Example: `  # Map 3-D points onto the plane
  sammonmap map --input points.csv --output plane.csv

  # Read from stdin, write to stdout, keep a scatter plot
  cat points.csv | sammonmap map --plot plane.png

  # Reuse earlier results from a bbolt cache
  sammonmap map -i points.csv --cache results.db

  # Load a run configuration; flags still win
  sammonmap map -i points.csv --config run.yaml --alpha 0.35`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Default()
			if configPath != "" {
				loaded, err := config.Load(configPath)
				if err != nil {
					return err
				}
				cfg = loaded
			}
			overrideFromFlags(cmd, &cfg, flags)
			if err := cfg.Validate(); err != nil {
				return err
			}

			x, err := readInput(cmd, inputPath)
			if err != nil {
				return err
			}
			slog.Debug("Input loaded", "points", x.Len(), "dimensions", x.Dimensionality())

			res, err := runMap(cmd, cfg, x)
			if err != nil {
				return err
			}

			if err = writeOutput(cmd, outputPath, res.Y); err != nil {
				return err
			}
			if cfg.PlotPath != "" {
				if err = scatter.Save(cfg.PlotPath, res.Y, scatter.Options{Title: "Sammon mapping"}); err != nil {
					return err
				}
				slog.Info("Plot written", "path", cfg.PlotPath)
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&configPath, "config", "", "YAML run configuration")
	f.StringVarP(&inputPath, "input", "i", "-", "Input CSV, one point per row (- for stdin)")
	f.StringVarP(&outputPath, "output", "o", "-", "Output CSV (- for stdout)")
	f.IntVarP(&flags.Dimensions, "dims", "d", flags.Dimensions, "Output dimensionality")
	f.Float64Var(&flags.Alpha, "alpha", flags.Alpha, "Step size, saturated to [0.3, 0.4]")
	f.Float64Var(&flags.Threshold, "threshold", flags.Threshold, "Convergence threshold on the squared coordinate change")
	f.IntVar(&flags.MaxIterations, "max-iter", flags.MaxIterations, "Iteration budget (0 = unbounded)")
	f.Int64Var(&flags.Seed, "seed", flags.Seed, "Seed of the random initial configuration")
	f.IntVar(&flags.Workers, "workers", flags.Workers, "Goroutines per iteration")
	f.StringVar(&flags.CachePath, "cache", "", "bbolt file caching results by input and settings")
	f.StringVar(&flags.PlotPath, "plot", "", "Write a scatter plot of dimensions 0 and 1 (png, svg, pdf)")

	return cmd
}

// overrideFromFlags copies every explicitly set flag from flags into cfg.
func overrideFromFlags(cmd *cobra.Command, cfg *config.Config, flags config.Config) {
	set := cmd.Flags().Changed
	if set("dims") {
		cfg.Dimensions = flags.Dimensions
	}
	if set("alpha") {
		cfg.Alpha = flags.Alpha
	}
	if set("threshold") {
		cfg.Threshold = flags.Threshold
	}
	if set("max-iter") {
		cfg.MaxIterations = flags.MaxIterations
	}
	if set("seed") {
		cfg.Seed = flags.Seed
	}
	if set("workers") {
		cfg.Workers = flags.Workers
	}
	if set("cache") {
		cfg.CachePath = flags.CachePath
	}
	if set("plot") {
		cfg.PlotPath = flags.PlotPath
	}
}

func runMap(cmd *cobra.Command, cfg config.Config, x *vectorset.VectorSet) (*sammon.Result, error) {
	opt, err := sammon.New(cfg.Dimensions, append(cfg.Options(), sammon.WithLogger(slog.Default()))...)
	if err != nil {
		return nil, err
	}
	if cfg.CachePath == "" {
		return opt.Map(cmd.Context(), x)
	}

	db, err := store.OpenBolt(cfg.CachePath, store.DefaultBucket)
	if err != nil {
		return nil, err
	}
	defer func() { _ = db.Close() }()

	cm, err := sammon.NewCachedMapper(opt, db)
	if err != nil {
		return nil, err
	}
	res, hit, err := cm.Map(cmd.Context(), x)
	if err != nil {
		return nil, err
	}
	slog.Info("Cache consulted", "path", cfg.CachePath, "hit", hit)
	return res, nil
}

func readInput(cmd *cobra.Command, path string) (*vectorset.VectorSet, error) {
	var r io.Reader = cmd.InOrStdin()
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open input: %w", err)
		}
		defer func() { _ = f.Close() }()
		r = f
	}
	return dataset.ReadCSV(r)
}

func writeOutput(cmd *cobra.Command, path string, vs *vectorset.VectorSet) error {
	if path == "-" {
		return dataset.WriteCSV(cmd.OutOrStdout(), vs)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	if err = dataset.WriteCSV(f, vs); err != nil {
		_ = f.Close()
		return err
	}
	if err = f.Close(); err != nil {
		return err
	}
	slog.Info("Output written", "path", path, "points", vs.Len())
	return nil
}
