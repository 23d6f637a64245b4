package fincalc

import (
	"fmt"
	"math"
)

// Percent is a percentage, 12.5 means 12.5%.
type Percent float64

func (p Percent) Equal(q Percent) bool {
	// it has to be compared with some precision
	const precision = 0.0001
	return math.Abs(float64(p-q)) < precision
}

// Round1 rounds to one decimal, the precision returns are displayed with.
func (p Percent) Round1() Percent { return Percent(math.Round(float64(p)*10) / 10) }

func (p Percent) String() string {
	if !p.finite() {
		return "-"
	}
	return fmt.Sprintf("%.1f%%", float64(p))
}

func (p Percent) SignedString() string {
	if !p.finite() {
		return "-"
	}
	res := fmt.Sprintf("%+.1f%%", float64(p))
	if res == "+0.0%" || res == "-0.0%" {
		return "-"
	}
	return res
}

func (p Percent) finite() bool { return !math.IsNaN(float64(p)) && !math.IsInf(float64(p), 0) }
