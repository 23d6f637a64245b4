package fincalc

import (
	"errors"
	"fmt"
	"math"
)

// Rates are the tax rates of a simulation.
type Rates struct {
	FlatTax      float64 `yaml:"flat_tax" json:"flatTax"`           // PFU on gains and distributed profit
	CorporateTax float64 `yaml:"corporate_tax" json:"corporateTax"` // IS, reduced-rate bracket
}

// FrenchRates are the French rates: 31.4% flat tax and 15% reduced IS.
var FrenchRates = Rates{FlatTax: 0.314, CorporateTax: 0.15}

// Scenario is a lump sum invested for a number of years at a constant growth rate.
type Scenario struct {
	Years      int     `yaml:"years" json:"years"`
	GrowthRate float64 `yaml:"growth_rate" json:"growthRate"` // percent per year, may be negative
	Initial    float64 `yaml:"initial" json:"initial"`
}

// Validate checks that the scenario is within the bounds offered to users:
// 1 to 30 years, 1% to 20% growth and a non negative initial value.
//
// The simulation itself accepts any scenario.
func (s Scenario) Validate() error {
	var errs error
	if s.Years < 1 || s.Years > 30 {
		errs = errors.Join(errs, fmt.Errorf("years %d out of range [1, 30]", s.Years))
	}
	if s.GrowthRate < 1 || s.GrowthRate > 20 {
		errs = errors.Join(errs, fmt.Errorf("growth rate %v%% out of range [1%%, 20%%]", s.GrowthRate))
	}
	if s.Initial < 0 || math.IsNaN(s.Initial) {
		errs = errors.Join(errs, fmt.Errorf("negative initial value %v", s.Initial))
	}
	return errs
}

// CTOYear is one year of a brokerage account taxed on the year's gain.
type CTOYear struct {
	Year  int
	Gross float64 // balance after growth, before tax
	Tax   float64
	Net   float64 // balance carried to next year
}

// SimulateCTO projects a brokerage account where each year's gain is taxed
// at the flat tax rate and the tax is paid out of the balance.
//
// The balance compounds net of tax: each year depends on the previous one.
func SimulateCTO(s Scenario, r Rates) []CTOYear {
	years := make([]CTOYear, 0, max(s.Years, 0))
	balance := s.Initial
	for y := 1; y <= s.Years; y++ {
		gross := balance * (1 + s.GrowthRate/100)
		tax := max(0, (gross-balance)*r.FlatTax)
		balance = gross - tax
		years = append(years, CTOYear{Year: y, Gross: gross, Tax: tax, Net: balance})
	}
	return years
}

// HoldingYear is the outcome of liquidating a holding company after Year years.
type HoldingYear struct {
	Year        int
	Gross       float64 // untaxed compounded value
	ISTax       float64 // corporate tax on the gain
	Dividends   float64 // profit distributed after IS
	DividendTax float64 // flat tax on the dividends
	Net         float64
}

// HoldingAt returns the outcome of a full liquidation after year years.
//
// Value compounds untaxed inside the company. On exit the gain pays the
// corporate tax, then the profit left is distributed and pays the flat tax;
// the initial capital comes back untaxed.
func HoldingAt(s Scenario, r Rates, year int) HoldingYear {
	gross := s.Initial * math.Pow(1+s.GrowthRate/100, float64(year))
	isTax := max(0, gross-s.Initial) * r.CorporateTax
	afterIS := gross - isTax
	dividends := max(0, afterIS-s.Initial)
	divTax := dividends * r.FlatTax
	return HoldingYear{
		Year:        year,
		Gross:       gross,
		ISTax:       isTax,
		Dividends:   dividends,
		DividendTax: divTax,
		Net:         afterIS - divTax,
	}
}

// SimulateHolding projects a holding company for each year of the scenario.
//
// Years are independent: each one is a hypothetical exit that does not
// affect the compounding of the others.
func SimulateHolding(s Scenario, r Rates) []HoldingYear {
	years := make([]HoldingYear, max(s.Years, 0))
	for i := range years {
		years[i] = HoldingAt(s, r, i+1)
	}
	return years
}

// YearlyTaxRow compares both regimes on a given year.
type YearlyTaxRow struct {
	Year               int
	CTOGross           float64
	CTOTax             float64
	CTONet             float64
	HoldingGross       float64
	HoldingISTax       float64
	HoldingDividendTax float64
	HoldingNet         float64
	HoldingDividends   float64
}

// Scaled returns a copy of the row with all amounts multiplied by f.
func (r YearlyTaxRow) Scaled(f float64) YearlyTaxRow {
	r.CTOGross *= f
	r.CTOTax *= f
	r.CTONet *= f
	r.HoldingGross *= f
	r.HoldingISTax *= f
	r.HoldingDividendTax *= f
	r.HoldingNet *= f
	r.HoldingDividends *= f
	return r
}

// Comparison is the final year outcome of both regimes.
type Comparison struct {
	CTONet        float64
	HoldingNet    float64
	Difference    float64 // HoldingNet - CTONet
	DifferencePct Percent // Difference relative to CTONet, 0 if CTONet is 0
}

// Simulation is the result of comparing both regimes on a scenario.
type Simulation struct {
	Scenario   Scenario
	Rates      Rates
	Rows       []YearlyTaxRow
	Comparison Comparison
}

// Simulate runs both regimes on s and compares them year by year.
func Simulate(s Scenario, r Rates) Simulation {
	cto, holding := SimulateCTO(s, r), SimulateHolding(s, r)
	rows := make([]YearlyTaxRow, len(cto))
	for i := range rows {
		c, h := cto[i], holding[i]
		rows[i] = YearlyTaxRow{
			Year:               c.Year,
			CTOGross:           c.Gross,
			CTOTax:             c.Tax,
			CTONet:             c.Net,
			HoldingGross:       h.Gross,
			HoldingISTax:       h.ISTax,
			HoldingDividendTax: h.DividendTax,
			HoldingNet:         h.Net,
			HoldingDividends:   h.Dividends,
		}
	}
	return Simulation{Scenario: s, Rates: r, Rows: rows, Comparison: compare(rows)}
}

func compare(rows []YearlyTaxRow) Comparison {
	if len(rows) == 0 {
		return Comparison{}
	}
	last := rows[len(rows)-1]
	c := Comparison{
		CTONet:     last.CTONet,
		HoldingNet: last.HoldingNet,
		Difference: last.HoldingNet - last.CTONet,
	}
	if c.CTONet != 0 {
		c.DifferencePct = Percent(c.Difference / c.CTONet * 100)
	}
	return c
}

// Scaled returns a copy of the simulation with all amounts multiplied by f.
//
// Rates, years and percentages are unchanged.
func (s Simulation) Scaled(f float64) Simulation {
	rows := make([]YearlyTaxRow, len(s.Rows))
	for i, r := range s.Rows {
		rows[i] = r.Scaled(f)
	}
	s.Rows = rows
	s.Scenario.Initial *= f
	s.Comparison.CTONet *= f
	s.Comparison.HoldingNet *= f
	s.Comparison.Difference *= f
	return s
}
