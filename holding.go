package fincalc

import (
	"fmt"
	"math"
	"strings"

	"github.com/etnz/fincalc/date"
)

// HoldingPeriod is an average duration, in days, capital has been invested.
type HoldingPeriod struct {
	Days float64
}

// Years returns the number of whole 365-day years.
//
// A negative period (asOf before the contributions) decomposes its absolute
// value and every part carries the sign.
func (h HoldingPeriod) Years() int { return h.sign() * (h.whole() / 365) }

// Months returns the number of whole 30-day months left after Years.
func (h HoldingPeriod) Months() int { return h.sign() * (h.whole() % 365 / 30) }

// RemDays returns the days left after Years and Months.
func (h HoldingPeriod) RemDays() int { return h.sign() * (h.whole() % 365 % 30) }

// whole returns the absolute number of days, rounded.
func (h HoldingPeriod) whole() int { return int(math.Abs(math.Round(h.Days))) }

func (h HoldingPeriod) sign() int {
	if math.Round(h.Days) < 0 {
		return -1
	}
	return 1
}

// String returns a short human readable form, like "2y 3m 12d", or
// "-1y 1m 5d" for a negative period.
func (h HoldingPeriod) String() string {
	var parts []string
	if y := h.whole() / 365; y > 0 {
		parts = append(parts, fmt.Sprintf("%dy", y))
	}
	if m := h.whole() % 365 / 30; m > 0 {
		parts = append(parts, fmt.Sprintf("%dm", m))
	}
	if d := h.whole() % 365 % 30; d > 0 || len(parts) == 0 {
		parts = append(parts, fmt.Sprintf("%dd", d))
	}
	str := strings.Join(parts, " ")
	if h.sign() < 0 {
		return "-" + str
	}
	return str
}

// WeightedHoldingPeriod returns the capital-weighted average age of the
// contributions on asOf.
//
// Each increase of the cost basis from one point to the next is a
// contribution made on the later point's date, weighted by its amount.
// Decreases (withdrawals, sells) are ignored: they neither carry weight nor
// reduce the capital total. The first point has no predecessor and is not a
// contribution.
//
// The period is always computed over the whole series, never over a
// displayed sub-range, so that it stays stable while the range changes.
func (s Series) WeightedHoldingPeriod(asOf date.Date) HoldingPeriod {
	var weighted, capital float64
	for i := 1; i < len(s); i++ {
		added := s[i].CostBasis - s[i-1].CostBasis
		if added <= 0 {
			continue
		}
		weighted += added * float64(asOf.Sub(s[i].Date))
		capital += added
	}
	if capital == 0 {
		return HoldingPeriod{}
	}
	return HoldingPeriod{Days: weighted / capital}
}
