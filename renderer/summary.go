package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/fincalc"
	md "github.com/nao1215/markdown"
)

// SummaryMarkdown renders the performance of the portfolio against its
// benchmark over a range.
func SummaryMarkdown(s fincalc.RangeSummary, opts Options) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Performance from %s to %s", s.Start, s.End))
	doc.PlainText(fmt.Sprintf("Period of %.2f years.", s.Years))
	opts.privateNote(doc)

	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"", md.Bold("Portfolio"), md.Bold("Benchmark")},
		Rows: [][]string{
			{"Return", s.PortfolioReturn.SignedString(), s.BenchmarkReturn.SignedString()},
			{"Gain", opts.money(s.PortfolioGain).SignedString(), opts.money(s.BenchmarkGain).SignedString()},
			{"CAGR", s.PortfolioCAGR.SignedString(), s.BenchmarkCAGR.SignedString()},
		},
	})

	doc.H2("Capital")
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{"Capital Added", opts.money(s.CapitalAdded).SignedString()},
		Rows: [][]string{
			{"Outperformance", s.Outperformance().SignedString()},
		},
	})

	return doc.String()
}
