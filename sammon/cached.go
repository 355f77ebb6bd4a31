// SPDX-License-Identifier: MIT

package sammon

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"math"

	farmhash "github.com/leemcloughlin/gofarmhash"

	"github.com/katalvlaran/sammonmap/store"
	"github.com/katalvlaran/sammonmap/vectorset"
)

// keyPrefix namespaces mapping results inside a shared store.
const keyPrefix = "sammon/"

// CachedMapper wraps an Optimizer so that a computed mapping is kept in a
// store.Store under a fingerprint of the source data and the configuration.
// The optimizer itself stays a pure function of (x, configuration).
type CachedMapper struct {
	opt   *Optimizer
	store store.Store
}

// NewCachedMapper returns a mapper backed by s.
func NewCachedMapper(opt *Optimizer, s store.Store) (*CachedMapper, error) {
	if opt == nil {
		return nil, ErrNilOptimizer
	}
	if s == nil {
		return nil, ErrNilStore
	}

	return &CachedMapper{opt: opt, store: s}, nil
}

// snapshot is the persisted form of a Result.
type snapshot struct {
	Dim           int         `json:"dim"`
	Points        [][]float64 `json:"points"`
	Status        Status      `json:"status"`
	Iterations    int         `json:"iterations"`
	Diff          float64     `json:"diff"`
	InitialStress float64     `json:"initial_stress"`
	Stress        float64     `json:"stress"`
}

// Map returns the cached mapping of x when present; otherwise it runs the
// optimizer and stores the result. hit reports whether the store answered.
// Corrupt entries are removed and recomputed.
func (cm *CachedMapper) Map(ctx context.Context, x *vectorset.VectorSet) (res *Result, hit bool, err error) {
	if x == nil {
		return nil, false, ErrNilSource
	}
	key := Fingerprint(x, cm.opt)

	raw, err := cm.store.Get(key)
	switch {
	case err == nil:
		if res, err = decodeResult(raw); err == nil {
			cm.opt.opts.logger.Debug("sammon: cache hit", "key", key)
			return res, true, nil
		}
		cm.opt.opts.logger.Warn("sammon: dropping corrupt cache entry", "key", key, "error", err)
		if err = cm.store.Remove(key); err != nil {
			return nil, false, err
		}
	case !errors.Is(err, store.ErrNotFound):
		return nil, false, err
	}

	if res, err = cm.opt.Map(ctx, x); err != nil {
		return nil, false, err
	}
	if raw, err = encodeResult(res); err != nil {
		return nil, false, err
	}
	if err = cm.store.Put(key, raw); err != nil {
		return nil, false, fmt.Errorf("sammon: cache put: %w", err)
	}

	return res, false, nil
}

// Fingerprint returns the store key for mapping x with opt: a farmhash over
// the source coordinates, the output dimensionality, alpha, and the remaining
// knobs that change the result (seed, threshold, iteration budget, both
// stabilization guards, curvature mode). Workers and the logger are excluded.
func Fingerprint(x *vectorset.VectorSet, opt *Optimizer) string {
	var (
		dim = x.Dimensionality()
		n   = x.Len()
		b   = make([]byte, 0, 8*(n*dim+8))
	)
	b = binary.LittleEndian.AppendUint64(b, uint64(dim))
	b = binary.LittleEndian.AppendUint64(b, uint64(n))
	for _, p := range x.Points() {
		for _, v := range p {
			b = binary.LittleEndian.AppendUint64(b, math.Float64bits(v))
		}
	}
	b = binary.LittleEndian.AppendUint64(b, uint64(opt.newDim))
	b = binary.LittleEndian.AppendUint64(b, math.Float64bits(opt.opts.alpha))
	b = binary.LittleEndian.AppendUint64(b, uint64(opt.opts.seed))
	b = binary.LittleEndian.AppendUint64(b, math.Float64bits(opt.opts.threshold))
	b = binary.LittleEndian.AppendUint64(b, uint64(opt.opts.maxIterations))
	b = binary.LittleEndian.AppendUint64(b, math.Float64bits(opt.opts.epsilon))
	b = binary.LittleEndian.AppendUint64(b, math.Float64bits(opt.opts.e2))
	if opt.opts.absCurvature {
		b = append(b, 1)
	}

	return fmt.Sprintf("%s%016x", keyPrefix, farmhash.Hash64(b))
}

func encodeResult(res *Result) ([]byte, error) {
	return json.Marshal(snapshot{
		Dim:           res.Y.Dimensionality(),
		Points:        res.Y.Points(),
		Status:        res.Status,
		Iterations:    res.Iterations,
		Diff:          res.Diff,
		InitialStress: res.InitialStress,
		Stress:        res.Stress,
	})
}

func decodeResult(raw []byte) (*Result, error) {
	var s snapshot
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, err
	}
	y, err := vectorset.FromPoints(s.Dim, s.Points)
	if err != nil {
		return nil, err
	}
	if err = y.ComputeDistanceMatrix(); err != nil {
		return nil, err
	}

	return &Result{
		Y:             y,
		Status:        s.Status,
		Iterations:    s.Iterations,
		Diff:          s.Diff,
		InitialStress: s.InitialStress,
		Stress:        s.Stress,
	}, nil
}
