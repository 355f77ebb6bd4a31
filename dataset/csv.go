package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/sammonmap/vectorset"
)

var (
	// ErrEmpty is returned when a source holds no points.
	ErrEmpty = errors.New("dataset: no points")

	// ErrParse is returned for a malformed coordinate.
	ErrParse = errors.New("dataset: malformed coordinate")
)

// ReadCSV reads one point per record. The first record fixes the dimensionality;
// later records of another width fail with vectorset.ErrDimensionMismatch.
func ReadCSV(r io.Reader) (*vectorset.VectorSet, error) {
	cr := csv.NewReader(r)
	cr.Comment = '#'
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	var (
		vs   *vectorset.VectorSet
		line int
	)
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("dataset: read: %w", err)
		}
		line++

		p := make([]float64, len(rec))
		for i, field := range rec {
			if p[i], err = strconv.ParseFloat(strings.TrimSpace(field), 64); err != nil {
				return nil, fmt.Errorf("%w: record %d column %d: %q", ErrParse, line, i+1, field)
			}
		}
		if vs == nil {
			if vs, err = vectorset.New(len(p)); err != nil {
				return nil, err
			}
		}
		if err = vs.Add(p); err != nil {
			return nil, fmt.Errorf("dataset: record %d: %w", line, err)
		}
	}
	if vs == nil {
		return nil, ErrEmpty
	}

	return vs, nil
}

// WriteCSV writes every point of vs as one record, shortest exact formatting.
func WriteCSV(w io.Writer, vs *vectorset.VectorSet) error {
	cw := csv.NewWriter(w)
	rec := make([]string, vs.Dimensionality())
	for _, p := range vs.Points() {
		for i, v := range p {
			rec[i] = strconv.FormatFloat(v, 'g', -1, 64)
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}
