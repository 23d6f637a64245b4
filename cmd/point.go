package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/fincalc"
	"github.com/etnz/fincalc/date"
	"github.com/etnz/fincalc/renderer"
	"github.com/google/subcommands"
)

// pointCmd holds the flags for the 'point' subcommand.
type pointCmd struct {
	date string
	json bool
}

func (*pointCmd) Name() string { return "point" }
func (*pointCmd) Synopsis() string {
	return "display a point of the series and its metrics since inception"
}
func (*pointCmd) Usage() string {
	return `fcalc point [-d <date>] [-json]

  Displays the value, benchmark and cost basis of the last point on or before
  a date, with its return, benchmark return and CAGR since the first point.
`
}

func (c *pointCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Date of the point. Defaults to the last point.")
	f.BoolVar(&c.json, "json", false, "Print the metrics as JSON.")
}

func (c *pointCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	series, err := DecodeSeries()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading series: %v\n", err)
		return subcommands.ExitFailure
	}
	if len(series) == 0 {
		fmt.Fprintf(os.Stderr, "Error: series %q is empty\n", *seriesFile)
		return subcommands.ExitFailure
	}

	on := series[len(series)-1].Date
	if c.date != "" {
		if on, err = date.Parse(c.date); err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
			return subcommands.ExitUsageError
		}
	}

	i, ok := series.IndexAsOf(on)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: no point on or before %s\n", on)
		return subcommands.ExitFailure
	}
	metrics := fincalc.PointMetricsOf(series[i], series[0].Date)
	if c.json {
		return printJSON(metrics)
	}
	p := series[i].Scaled(scaleFactor(series[len(series)-1].CostBasis))
	printMarkdown(renderer.PointMarkdown(p, metrics, options()))
	return subcommands.ExitSuccess
}
