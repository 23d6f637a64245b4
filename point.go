package fincalc

import (
	"math"

	"github.com/etnz/fincalc/date"
)

// PointMetrics are the figures displayed for a single point of a series.
type PointMetrics struct {
	Date          date.Date
	PortfolioPerf Percent // value relative to cost basis
	BenchmarkPerf Percent // benchmark relative to cost basis
	CAGR          Percent // annualized PortfolioPerf since the series first date, 0 when undefined
	// Outperformance is PortfolioPerf / BenchmarkPerf, 0 when the benchmark
	// did not move.
	Outperformance float64
}

// PointMetricsOf computes the metrics of p in a series starting on first.
func PointMetricsOf(p Point, first date.Date) PointMetrics {
	m := PointMetrics{Date: p.Date}
	if p.CostBasis <= 0 {
		return m
	}
	m.PortfolioPerf = Percent((p.Value - p.CostBasis) / p.CostBasis * 100)
	m.BenchmarkPerf = Percent((p.Benchmark - p.CostBasis) / p.CostBasis * 100)
	if m.BenchmarkPerf != 0 {
		m.Outperformance = float64(m.PortfolioPerf / m.BenchmarkPerf)
	}

	years := date.Range{From: first, To: p.Date}.Years()
	if years > 0 && p.Value >= 0 {
		m.CAGR = Percent((math.Pow(p.Value/p.CostBasis, 1/years) - 1) * 100)
	}
	return m
}

// PointMetricsAsOf returns the metrics of the last point on or before day.
func (s Series) PointMetricsAsOf(day date.Date) (PointMetrics, bool) {
	i, ok := s.IndexAsOf(day)
	if !ok {
		return PointMetrics{}, false
	}
	return PointMetricsOf(s[i], s[0].Date), true
}
