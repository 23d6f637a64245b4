package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/fincalc"
	md "github.com/nao1215/markdown"
)

// PointMarkdown renders a single point of the series with its metrics since
// inception.
func PointMarkdown(p fincalc.Point, m fincalc.PointMetrics, opts Options) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Portfolio on %s", p.Date))
	opts.privateNote(doc)

	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{md.Bold("Value"), md.Bold(opts.money(p.Value).String())},
		Rows: [][]string{
			{"Benchmark", opts.money(p.Benchmark).String()},
			{"Cost Basis", opts.money(p.CostBasis).String()},
		},
	})

	doc.H2("Since Inception")
	outperf := "-"
	if m.Outperformance != 0 {
		outperf = fmt.Sprintf("%.2fx", m.Outperformance)
	}
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Portfolio", m.PortfolioPerf.SignedString()},
			{"Benchmark", m.BenchmarkPerf.SignedString()},
			{"CAGR", m.CAGR.SignedString()},
			{"Portfolio / Benchmark", outperf},
		},
	})
	return doc.String()
}
