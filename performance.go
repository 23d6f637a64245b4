package fincalc

import (
	"math"

	"github.com/etnz/fincalc/date"
)

// RangeSummary holds the return figures of a portfolio and its benchmark over
// a range of a Series.
//
// Gains are net of the capital added during the range. Both the portfolio
// and the benchmark are measured against the same contributions: the
// benchmark is the hypothetical parallel investment of the same cash.
type RangeSummary struct {
	Start, End date.Date
	Years      float64 // (End - Start) in 365-day years

	CapitalAdded float64

	PortfolioReturn Percent // one decimal
	BenchmarkReturn Percent // one decimal
	PortfolioGain   float64
	BenchmarkGain   float64
	PortfolioCAGR   Percent // one decimal
	BenchmarkCAGR   Percent // one decimal
}

// Outperformance returns the difference between the portfolio and the benchmark returns.
func (s RangeSummary) Outperformance() Percent { return s.PortfolioReturn - s.BenchmarkReturn }

// Summary returns the RangeSummary of the full series.
//
// ok is false when there is no data.
func (s Series) Summary() (summary RangeSummary, ok bool) {
	return s.SummaryBetween(0, len(s)-1)
}

// SummaryBetween returns the RangeSummary of points start to end, both included.
//
// Indexes are clamped to the series bounds, ok is false if the selection is empty.
func (s Series) SummaryBetween(start, end int) (summary RangeSummary, ok bool) {
	start, end = max(start, 0), min(end, len(s)-1)
	if start > end {
		return RangeSummary{}, false
	}
	return summarize(s[start], s[end]), true
}

// SummaryOver returns the RangeSummary of the points within r.
//
// ok is false if no point lies within r.
func (s Series) SummaryOver(r date.Range) (summary RangeSummary, ok bool) {
	start, end := s.indexesOver(r)
	if start < 0 {
		return RangeSummary{}, false
	}
	return s.SummaryBetween(start, end)
}

// summarize computes the summary between two points of the same series.
func summarize(first, last Point) RangeSummary {
	added := last.CostBasis - first.CostBasis
	pGain := (last.Value - first.Value) - added
	bGain := (last.Benchmark - first.Benchmark) - added

	years := date.Range{From: first.Date, To: last.Date}.Years()
	pRet := netReturn(pGain, last.CostBasis)
	bRet := netReturn(bGain, last.CostBasis)

	return RangeSummary{
		Start:           first.Date,
		End:             last.Date,
		Years:           years,
		CapitalAdded:    added,
		PortfolioReturn: pRet,
		BenchmarkReturn: bRet,
		PortfolioGain:   pGain,
		BenchmarkGain:   bGain,
		PortfolioCAGR:   Annualize(pRet, years),
		BenchmarkCAGR:   Annualize(bRet, years),
	}
}

// netReturn returns gain relative to costBasis rounded to one decimal, or 0 if there is no cost basis.
func netReturn(gain, costBasis float64) Percent {
	if costBasis <= 0 {
		return 0
	}
	return Percent(gain / costBasis * 100).Round1()
}

// Annualize converts a return over years into a compound annual growth rate,
// rounded to one decimal.
//
// Periods within 10% of a year are not annualized, nor are empty or negative
// periods: the return is then returned unchanged.
func Annualize(ret Percent, years float64) Percent {
	if years <= 0 || (years >= 0.9 && years <= 1.1) {
		return ret
	}
	growth := 1 + float64(ret)/100
	if growth < 0 {
		// a loss beyond the invested capital has no annual equivalent.
		return ret
	}
	return Percent((math.Pow(growth, 1/years) - 1) * 100).Round1()
}
