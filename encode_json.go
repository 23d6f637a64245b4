package fincalc

// JSON encodings of the results, with a stable field order.

func (s RangeSummary) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("start", s.Start)
	w.Append("end", s.End)
	w.Append("years", s.Years)
	w.Append("capitalAdded", s.CapitalAdded)
	w.Append("portfolioReturn", s.PortfolioReturn)
	w.Append("benchmarkReturn", s.BenchmarkReturn)
	w.Append("portfolioGain", s.PortfolioGain)
	w.Append("benchmarkGain", s.BenchmarkGain)
	w.Append("portfolioCAGR", s.PortfolioCAGR)
	w.Append("benchmarkCAGR", s.BenchmarkCAGR)
	return w.MarshalJSON()
}

func (h HoldingPeriod) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("days", h.Days)
	w.Append("years", h.Years())
	w.Append("months", h.Months())
	w.Append("remainingDays", h.RemDays())
	return w.MarshalJSON()
}

func (m PointMetrics) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("date", m.Date)
	w.Append("portfolioPerf", m.PortfolioPerf)
	w.Append("benchmarkPerf", m.BenchmarkPerf)
	w.Append("cagr", m.CAGR)
	w.Append("outperformance", m.Outperformance)
	return w.MarshalJSON()
}

func (r YearlyTaxRow) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("year", r.Year)
	w.Append("ctoGross", r.CTOGross)
	w.Append("ctoTax", r.CTOTax)
	w.Append("ctoNet", r.CTONet)
	w.Append("holdingGross", r.HoldingGross)
	w.Append("holdingISTax", r.HoldingISTax)
	w.Append("holdingDividends", r.HoldingDividends)
	w.Append("holdingDividendTax", r.HoldingDividendTax)
	w.Append("holdingNet", r.HoldingNet)
	return w.MarshalJSON()
}

func (s Simulation) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("scenario", s.Scenario)
	w.Append("rates", s.Rates)
	w.Append("rows", s.Rows)
	w.Append("difference", s.Comparison.Difference)
	w.Append("differencePct", s.Comparison.DifferencePct)
	return w.MarshalJSON()
}
