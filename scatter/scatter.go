// SPDX-License-Identifier: MIT

// Package scatter draws a VectorSet as a 2-D scatter plot.
//
// Only dimensions 0 and 1 are drawn; a one-dimensional set is plotted along
// the x axis. Points may carry integer group labels, each group getting its
// own color and legend entry.
package scatter

import (
	"errors"
	"fmt"
	"io"
	"slices"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/katalvlaran/sammonmap/vectorset"
)

// Sentinel errors.
var (
	// ErrNilSet indicates a nil VectorSet.
	ErrNilSet = errors.New("scatter: vector set is nil")

	// ErrEmptySet indicates a set without points.
	ErrEmptySet = errors.New("scatter: vector set is empty")

	// ErrLabelCount indicates len(Labels) differs from the number of points.
	ErrLabelCount = errors.New("scatter: label count does not match point count")
)

// Defaults.
const (
	DefaultWidth  = 4 * vg.Inch
	DefaultHeight = 4 * vg.Inch
	DefaultFormat = "png"
	DefaultRadius = vg.Length(2)
)

// Options controls the rendered figure. The zero value is usable.
type Options struct {
	Title  string
	Width  vg.Length // DefaultWidth if 0
	Height vg.Length // DefaultHeight if 0
	Format string    // png, svg, pdf, eps, jpg, tif; DefaultFormat if empty

	// Labels assigns a group to each point; nil draws a single group.
	Labels []int
}

func (o Options) withDefaults() Options {
	if o.Width <= 0 {
		o.Width = DefaultWidth
	}
	if o.Height <= 0 {
		o.Height = DefaultHeight
	}
	if o.Format == "" {
		o.Format = DefaultFormat
	}

	return o
}

// Render writes the scatter plot of vs to w in opts.Format.
func Render(w io.Writer, vs *vectorset.VectorSet, opts Options) error {
	opts = opts.withDefaults()
	p, err := build(vs, opts)
	if err != nil {
		return err
	}
	wt, err := p.WriterTo(opts.Width, opts.Height, opts.Format)
	if err != nil {
		return fmt.Errorf("scatter: %w", err)
	}
	_, err = wt.WriteTo(w)

	return err
}

// Save writes the scatter plot of vs to path; the format follows the file
// extension and opts.Format is ignored.
func Save(path string, vs *vectorset.VectorSet, opts Options) error {
	opts = opts.withDefaults()
	p, err := build(vs, opts)
	if err != nil {
		return err
	}
	if err = p.Save(opts.Width, opts.Height, path); err != nil {
		return fmt.Errorf("scatter: save %s: %w", path, err)
	}

	return nil
}

// build assembles the plot; one plotter.Scatter per label group.
func build(vs *vectorset.VectorSet, opts Options) (*plot.Plot, error) {
	if vs == nil {
		return nil, ErrNilSet
	}
	n := vs.Len()
	if n == 0 {
		return nil, ErrEmptySet
	}
	if opts.Labels != nil && len(opts.Labels) != n {
		return nil, fmt.Errorf("%w: %d labels, %d points", ErrLabelCount, len(opts.Labels), n)
	}

	xs, err := vs.Column(0)
	if err != nil {
		return nil, err
	}
	ys := make([]float64, n)
	if vs.Dimensionality() > 1 {
		if ys, err = vs.Column(1); err != nil {
			return nil, err
		}
	}

	groups := make(map[int]plotter.XYs)
	for i := 0; i < n; i++ {
		g := 0
		if opts.Labels != nil {
			g = opts.Labels[i]
		}
		groups[g] = append(groups[g], plotter.XY{X: xs[i], Y: ys[i]})
	}
	keys := make([]int, 0, len(groups))
	for g := range groups {
		keys = append(keys, g)
	}
	slices.Sort(keys)

	p := plot.New()
	p.Title.Text = opts.Title
	p.X.Label.Text = "y0"
	p.Y.Label.Text = "y1"
	p.Add(plotter.NewGrid())

	for i, g := range keys {
		s, err := plotter.NewScatter(groups[g])
		if err != nil {
			return nil, fmt.Errorf("scatter: group %d: %w", g, err)
		}
		s.GlyphStyle.Color = plotutil.Color(i)
		s.GlyphStyle.Shape = draw.CircleGlyph{}
		s.GlyphStyle.Radius = DefaultRadius
		p.Add(s)
		if opts.Labels != nil {
			p.Legend.Add(fmt.Sprintf("group %d", g), s)
		}
	}

	return p, nil
}
