package renderer

import (
	"bytes"
	"fmt"
	"math"
	"strconv"

	"github.com/etnz/fincalc"
	md "github.com/nao1215/markdown"
)

// SimulationMarkdown renders the year by year comparison of a brokerage
// account (CTO) and a holding company, then the final outcome.
func SimulationMarkdown(sim fincalc.Simulation, opts Options) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	s := sim.Scenario
	doc.H1("Tax Scenario: CTO vs Holding")
	doc.PlainText(fmt.Sprintf("%s invested for %d years at %s a year.",
		md.Bold(opts.money(s.Initial).String()), s.Years, fincalc.Percent(s.GrowthRate)))
	doc.PlainText(fmt.Sprintf("Flat tax %s, corporate tax %s.",
		fincalc.Percent(sim.Rates.FlatTax*100), fincalc.Percent(sim.Rates.CorporateTax*100)))
	opts.privateNote(doc)

	if len(sim.Rows) == 0 {
		doc.PlainText("Nothing to simulate.")
		return doc.String()
	}

	doc.H2("Year by Year")
	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Year", "CTO Gross", "CTO Tax", "CTO Net", "Holding Gross", "IS", "Dividend Tax", "Holding Net"},
	}
	for _, r := range sim.Rows {
		table.Rows = append(table.Rows, []string{
			strconv.Itoa(r.Year),
			opts.money(r.CTOGross).String(),
			opts.money(r.CTOTax).String(),
			opts.money(r.CTONet).String(),
			opts.money(r.HoldingGross).String(),
			opts.money(r.HoldingISTax).String(),
			opts.money(r.HoldingDividendTax).String(),
			opts.money(r.HoldingNet).String(),
		})
	}
	doc.Table(table)

	c := sim.Comparison
	doc.H2("Outcome")
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{"Regime", "Net after exit"},
		Rows: [][]string{
			{"CTO", opts.money(c.CTONet).String()},
			{"Holding", opts.money(c.HoldingNet).String()},
			{md.Bold("Holding - CTO"), md.Bold(opts.money(c.Difference).SignedString())},
			{"Relative to CTO", c.DifferencePct.SignedString()},
		},
	})
	doc.PlainText(verdict(c))
	return doc.String()
}

func verdict(c fincalc.Comparison) string {
	switch {
	case math.IsNaN(c.Difference) || math.IsInf(c.Difference, 0):
		return "The outcome overflows, no regime can be compared."
	case c.DifferencePct.SignedString() == "-":
		return "Both regimes end up even."
	case c.Difference > 0:
		return "The holding ends up ahead."
	default:
		return "The CTO ends up ahead."
	}
}
