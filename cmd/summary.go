package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/etnz/fincalc"
	"github.com/etnz/fincalc/date"
	"github.com/etnz/fincalc/renderer"
	"github.com/google/subcommands"
)

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct {
	from, to   string
	start, end int
	json       bool
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display returns, gains and CAGR over a range" }
func (*summaryCmd) Usage() string {
	return `fcalc summary [-from <date>] [-to <date>] [-start <index>] [-end <index>] [-json]

  Displays the return, gain and CAGR of the portfolio and its benchmark
  between two points of the series. The range is the whole series by default,
  it can be given as dates (-from, -to) or as point indexes (-start, -end).
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.from, "from", "", "First day of the range. Defaults to the first point.")
	f.StringVar(&c.to, "to", "", "Last day of the range. Defaults to the last point.")
	f.IntVar(&c.start, "start", -1, "Index of the first point of the range.")
	f.IntVar(&c.end, "end", -1, "Index of the last point of the range.")
	f.BoolVar(&c.json, "json", false, "Print the summary as JSON.")
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	series, err := DecodeSeries()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading series: %v\n", err)
		return subcommands.ExitFailure
	}

	summary, ok, err := c.summarize(series)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing range: %v\n", err)
		return subcommands.ExitUsageError
	}
	if !ok {
		slog.Warn("no data in range", "points", len(series))
		fmt.Println("No data in the selected range.")
		return subcommands.ExitSuccess
	}

	summary = summary.Scaled(scaleFactor(series[len(series)-1].CostBasis))
	if c.json {
		return printJSON(summary)
	}
	printMarkdown(renderer.SummaryMarkdown(summary, options()))
	return subcommands.ExitSuccess
}

// summarize picks the range given by the flags.
func (c *summaryCmd) summarize(s fincalc.Series) (fincalc.RangeSummary, bool, error) {
	if c.from == "" && c.to == "" {
		if c.start < 0 && c.end < 0 {
			summary, ok := s.Summary()
			return summary, ok, nil
		}
		start, end := c.start, c.end
		if start < 0 {
			start = 0
		}
		if end < 0 {
			end = len(s) - 1
		}
		summary, ok := s.SummaryBetween(start, end)
		return summary, ok, nil
	}

	r := s.Range()
	if c.from != "" {
		d, err := date.Parse(c.from)
		if err != nil {
			return fincalc.RangeSummary{}, false, err
		}
		r.From = d
	}
	if c.to != "" {
		d, err := date.Parse(c.to)
		if err != nil {
			return fincalc.RangeSummary{}, false, err
		}
		r.To = d
	}
	summary, ok := s.SummaryOver(r)
	return summary, ok, nil
}

// printJSON prints v as a single JSON line.
func printJSON(v any) subcommands.ExitStatus {
	if err := json.NewEncoder(os.Stdout).Encode(v); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding JSON: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
