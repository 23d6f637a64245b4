package fincalc

import (
	"testing"

	"github.com/etnz/fincalc/date"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// pt is a short hand to create a Point.
func pt(on date.Date, value, benchmark, costBasis float64) Point {
	return Point{Date: on, Value: value, Benchmark: benchmark, CostBasis: costBasis}
}

var day0 = date.New(2023, 1, 1)

// dateComparer lets cmp compare dates despite their unexported fields.
var dateComparer = cmp.Comparer(func(a, b date.Date) bool { return a == b })

func TestSummary_DoublingOverAYear(t *testing.T) {
	s := Series{
		pt(day0, 1000, 1000, 1000),
		pt(day0.Add(365), 2000, 1500, 1000),
	}
	got, ok := s.Summary()
	if !ok {
		t.Fatalf("Summary() reported no data")
	}
	want := RangeSummary{
		Start:           day0,
		End:             day0.Add(365),
		Years:           1,
		PortfolioReturn: 100,
		BenchmarkReturn: 50,
		PortfolioGain:   1000,
		BenchmarkGain:   500,
		PortfolioCAGR:   100,
		BenchmarkCAGR:   50,
	}
	if diff := cmp.Diff(want, got, dateComparer, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Errorf("Summary() mismatch (-want +got):\n%s", diff)
	}
}

func TestSummary_ContributionsAreNotGains(t *testing.T) {
	s := Series{
		pt(day0, 1000, 1000, 1000),
		pt(day0.Add(100), 1600, 1550, 1500), // 500 added
		pt(day0.Add(200), 1800, 1700, 1500),
	}
	got, ok := s.Summary()
	if !ok {
		t.Fatalf("Summary() reported no data")
	}
	if got.CapitalAdded != 500 {
		t.Errorf("CapitalAdded = %v, want 500", got.CapitalAdded)
	}
	if got.PortfolioGain != 300 {
		t.Errorf("PortfolioGain = %v, want 300", got.PortfolioGain)
	}
	if got.BenchmarkGain != 200 {
		t.Errorf("BenchmarkGain = %v, want 200", got.BenchmarkGain)
	}
	// 300/1500 and 200/1500
	if !got.PortfolioReturn.Equal(20) {
		t.Errorf("PortfolioReturn = %v, want 20%%", got.PortfolioReturn)
	}
	if !got.BenchmarkReturn.Equal(13.3) {
		t.Errorf("BenchmarkReturn = %v, want 13.3%%", got.BenchmarkReturn)
	}
}

func TestSummary_ZeroCostBasis(t *testing.T) {
	s := Series{
		pt(day0, 0, 0, 0),
		pt(day0.Add(730), 50, 20, 0),
	}
	got, ok := s.Summary()
	if !ok {
		t.Fatalf("Summary() reported no data")
	}
	if got.PortfolioReturn != 0 || got.BenchmarkReturn != 0 {
		t.Errorf("returns = %v, %v, want 0 with no cost basis", got.PortfolioReturn, got.BenchmarkReturn)
	}
	if got.PortfolioCAGR != 0 || got.BenchmarkCAGR != 0 {
		t.Errorf("CAGR = %v, %v, want 0 with no cost basis", got.PortfolioCAGR, got.BenchmarkCAGR)
	}
}

func TestSummary_SinglePoint(t *testing.T) {
	s := Series{pt(day0, 1200, 1100, 1000)}
	got, ok := s.Summary()
	if !ok {
		t.Fatalf("Summary() reported no data")
	}
	if got.Years != 0 || got.PortfolioReturn != 0 || got.PortfolioCAGR != 0 {
		t.Errorf("Summary() = %+v, want zero figures on a single point", got)
	}
}

func TestSummaryBetween(t *testing.T) {
	s := Series{
		pt(day0, 1000, 1000, 1000),
		pt(day0.Add(365), 1100, 1050, 1000),
		pt(day0.Add(730), 1210, 1100, 1000),
	}

	testCases := []struct {
		name       string
		start, end int
		wantOK     bool
		wantStart  date.Date
		wantEnd    date.Date
	}{
		{"full", 0, 2, true, day0, day0.Add(730)},
		{"tail", 1, 2, true, day0.Add(365), day0.Add(730)},
		{"single", 1, 1, true, day0.Add(365), day0.Add(365)},
		{"clamped", -5, 10, true, day0, day0.Add(730)},
		{"reversed", 2, 1, false, date.Date{}, date.Date{}},
		{"after the end", 3, 5, false, date.Date{}, date.Date{}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := s.SummaryBetween(tc.start, tc.end)
			if ok != tc.wantOK {
				t.Fatalf("SummaryBetween(%d, %d) ok = %v, want %v", tc.start, tc.end, ok, tc.wantOK)
			}
			if got.Start != tc.wantStart || got.End != tc.wantEnd {
				t.Errorf("SummaryBetween(%d, %d) = [%v, %v], want [%v, %v]", tc.start, tc.end, got.Start, got.End, tc.wantStart, tc.wantEnd)
			}
		})
	}
}

func TestSummary_EmptySeries(t *testing.T) {
	var s Series
	if _, ok := s.Summary(); ok {
		t.Errorf("Summary() of an empty series ok = true, want false")
	}
}

func TestSummaryOver(t *testing.T) {
	s := Series{
		pt(day0, 1000, 1000, 1000),
		pt(day0.Add(365), 1100, 1050, 1000),
		pt(day0.Add(730), 1210, 1100, 1000),
	}
	got, ok := s.SummaryOver(date.NewRange(day0.Add(300), day0.Add(800)))
	if !ok {
		t.Fatalf("SummaryOver() reported no data")
	}
	if got.Start != day0.Add(365) || got.End != day0.Add(730) {
		t.Errorf("SummaryOver() = [%v, %v], want [%v, %v]", got.Start, got.End, day0.Add(365), day0.Add(730))
	}
	// 110 / 1000
	if !got.PortfolioReturn.Equal(11) {
		t.Errorf("PortfolioReturn = %v, want 11%%", got.PortfolioReturn)
	}

	if _, ok := s.SummaryOver(date.NewRange(day0.Add(1), day0.Add(2))); ok {
		t.Errorf("SummaryOver() of a range without points ok = true, want false")
	}
}

func TestSummary_IsRecomputedNotMutated(t *testing.T) {
	s := Series{
		pt(day0, 1000, 1000, 1000),
		pt(day0.Add(365), 1100, 1050, 1000),
		pt(day0.Add(730), 1210, 1100, 1000),
	}
	full, _ := s.Summary()
	_, _ = s.SummaryBetween(1, 2)
	again, _ := s.Summary()
	if full != again {
		t.Errorf("Summary() changed after a sub-range selection: %+v != %+v", full, again)
	}
}

func TestAnnualize(t *testing.T) {
	testCases := []struct {
		name  string
		ret   Percent
		years float64
		want  Percent
	}{
		{"close to a year is not annualized", 50, 1.05, 50},
		{"just under a year is not annualized", 50, 0.95, 50},
		{"two years", 50, 2, 22.5},           // sqrt(1.5) = 1.2247
		{"half a year", 10, 0.5, 21},         // 1.1^2 = 1.21
		{"zero return", 0, 2, 0},             // 1^x = 1
		{"zero years", 12, 0, 12},            // no division
		{"negative years", 12, -1, 12},       // no division
		{"total loss", -100, 3, -100},        // 0^x = 0
		{"beyond total loss", -150, 3, -150}, // no real root
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Annualize(tc.ret, tc.years); !got.Equal(tc.want) {
				t.Errorf("Annualize(%v, %v) = %v, want %v", tc.ret, tc.years, got, tc.want)
			}
		})
	}
}

func TestSummary_TwoYearsIsAnnualized(t *testing.T) {
	s := Series{
		pt(day0, 1000, 1000, 1000),
		pt(day0.Add(730), 1500, 1000, 1000),
	}
	got, _ := s.Summary()
	if !got.PortfolioReturn.Equal(50) {
		t.Errorf("PortfolioReturn = %v, want 50%%", got.PortfolioReturn)
	}
	if got.PortfolioCAGR.Equal(got.PortfolioReturn) {
		t.Errorf("PortfolioCAGR = %v, want it annualized over 2 years", got.PortfolioCAGR)
	}
	if !got.PortfolioCAGR.Equal(22.5) {
		t.Errorf("PortfolioCAGR = %v, want 22.5%%", got.PortfolioCAGR)
	}
	if got.BenchmarkCAGR != 0 {
		t.Errorf("BenchmarkCAGR = %v, want 0 for a flat benchmark", got.BenchmarkCAGR)
	}
}
