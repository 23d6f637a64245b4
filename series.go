package fincalc

import (
	"errors"
	"fmt"
	"math"

	"github.com/etnz/fincalc/date"
)

// Point is one daily snapshot of the portfolio.
type Point struct {
	Date      date.Date `json:"date" csv:"date"`
	Value     float64   `json:"value" csv:"value"`          // portfolio market value
	Benchmark float64   `json:"benchmark" csv:"benchmark"`  // value of the same contributions invested in the benchmark
	CostBasis float64   `json:"costBasis" csv:"cost_basis"` // cumulative net capital contributed
}

// Series is a chronological list of points, without duplicate dates.
//
// Series methods never fail: degenerate inputs produce zero figures or a
// "no data" result. Use Validate to reject malformed input upstream.
type Series []Point

// Validate returns all the reasons why s is not a well formed series.
func (s Series) Validate() error {
	var errs error
	for i, p := range s {
		if p.Date.IsZero() {
			errs = errors.Join(errs, fmt.Errorf("point #%d: missing date", i))
		}
		for _, f := range []struct {
			name string
			v    float64
		}{{"value", p.Value}, {"benchmark", p.Benchmark}, {"cost basis", p.CostBasis}} {
			if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
				errs = errors.Join(errs, fmt.Errorf("point #%d on %s: %s is not a number", i, p.Date, f.name))
			}
		}
		if p.CostBasis < 0 {
			errs = errors.Join(errs, fmt.Errorf("point #%d on %s: negative cost basis %v", i, p.Date, p.CostBasis))
		}
		if i == 0 {
			continue
		}
		switch prev := s[i-1].Date; {
		case p.Date == prev:
			errs = errors.Join(errs, fmt.Errorf("point #%d: duplicate date %s", i, p.Date))
		case p.Date.Before(prev):
			errs = errors.Join(errs, fmt.Errorf("point #%d: %s is before previous point %s", i, p.Date, prev))
		}
	}
	return errs
}

// Range returns the dates covered by the series.
func (s Series) Range() date.Range {
	if len(s) == 0 {
		return date.Range{}
	}
	return date.Range{From: s[0].Date, To: s[len(s)-1].Date}
}

// IndexAsOf returns the index of the last point on or before day.
func (s Series) IndexAsOf(day date.Date) (int, bool) {
	i := len(s) - 1
	for i >= 0 && s[i].Date.After(day) {
		i--
	}
	return i, i >= 0
}

// indexesOver returns the inclusive index range of the points within r.
func (s Series) indexesOver(r date.Range) (start, end int) {
	start, end = -1, -2
	for i, p := range s {
		if !r.Contains(p.Date) {
			continue
		}
		if start < 0 {
			start = i
		}
		end = i
	}
	return start, end
}
