// Package fincalc provides the calculations behind a personal-finance
// dashboard. It is a stateless library: every function takes a complete
// input and returns a complete, independent result.
//
// The core functionalities include:
//   - Performance metrics: returns, CAGR and gains of a portfolio and its
//     benchmark over a [Series] or any sub-range of it, see [Series.Summary].
//   - Holding period: the capital weighted average age of the contributions,
//     see [Series.WeightedHoldingPeriod].
//   - Point metrics: the figures displayed for a single day, see [PointMetricsOf].
//   - Tax simulation: a lump sum invested in a brokerage account (CTO) taxed
//     every year, versus a holding company taxed on exit, see [Simulate].
//   - Private mode: amounts rescaled to a reference cost basis for demos,
//     see [ScaleFactor].
//
// Amounts are float64 and kept at full precision; rounding only happens
// when formatting, see [Money].
//
// This package serves as the foundational logic for the `fcalc`
// command-line tool.
package fincalc
