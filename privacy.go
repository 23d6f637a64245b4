package fincalc

// ReferenceBasis is the cost basis displayed in private mode.
const ReferenceBasis = 10000

// ScaleFactor returns the factor to apply to every displayed amount.
//
// In private mode amounts are rescaled as if actualCostBasis was
// ReferenceBasis, so that a dashboard can be shown without revealing real
// figures. Returns 1 otherwise, or when there is no cost basis to scale
// from. Percentages and ratios are scale invariant and must not be scaled.
func ScaleFactor(actualCostBasis float64, private bool) float64 {
	if !private || actualCostBasis <= 0 {
		return 1
	}
	return ReferenceBasis / actualCostBasis
}

// Scaled returns a copy of the summary with amounts multiplied by f.
func (s RangeSummary) Scaled(f float64) RangeSummary {
	s.CapitalAdded *= f
	s.PortfolioGain *= f
	s.BenchmarkGain *= f
	return s
}

// Scaled returns a copy of the point with amounts multiplied by f.
func (p Point) Scaled(f float64) Point {
	p.Value *= f
	p.Benchmark *= f
	p.CostBasis *= f
	return p
}
