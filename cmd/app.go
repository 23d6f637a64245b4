// Package cmd implements the fcalc command line: portfolio performance,
// holding period, tax scenarios and statement checks.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/etnz/fincalc"
	"github.com/etnz/fincalc/renderer"
	"github.com/google/subcommands"
)

// commands lists the subcommands, per group.
var commands = []struct {
	group string
	cmd   subcommands.Command
}{
	{"performance", &summaryCmd{}},
	{"performance", &pointCmd{}},
	{"performance", &holdingCmd{}},
	{"tax", &simulateCmd{}},
	{"import", &statementCmd{}},
	{"help", &topicCmd{}},
}

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(c.HelpCommand(), "help")
	c.Register(c.FlagsCommand(), "help")
	c.Register(c.CommandsCommand(), "help")
	for _, e := range commands {
		c.Register(e.cmd, e.group)
	}
}

// Known returns true if name is a built-in subcommand.
func Known(name string) bool {
	switch name {
	case "help", "flags", "commands":
		return true
	}
	for _, e := range commands {
		if e.cmd.Name() == name {
			return true
		}
	}
	return false
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var seriesFile = flag.String("series-file", "series.jsonl", "Path to the performance series (.jsonl, .csv or .json)")
var jsonPath = flag.String("jsonpath", "$", "JSONPath of the array of points, for .json series")
var currency = flag.String("currency", "EUR", "Currency amounts are displayed in")
var private = flag.Bool("private", false, "Scale amounts to a 10,000 cost basis, percentages are kept")

// Verbose enables debug logs.
var Verbose = flag.Bool("v", false, "Verbose logs")

// envFlags maps the global flags to the environment variables that provide
// their default value.
var envFlags = []struct{ flag, env string }{
	{"series-file", EnvSeriesFile},
	{"jsonpath", EnvJSONPath},
	{"currency", EnvCurrency},
	{"private", EnvPrivate},
	{"v", EnvVerbose},
}

// LoadEnv sets the flags of fs that were not set on the command line from
// their environment variable, if any.
func LoadEnv(fs *flag.FlagSet) error {
	explicit := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { explicit[f.Name] = true })

	var errs []error
	for _, e := range envFlags {
		value, ok := os.LookupEnv(e.env)
		if !ok || explicit[e.flag] || fs.Lookup(e.flag) == nil {
			continue
		}
		if err := fs.Set(e.flag, value); err != nil {
			errs = append(errs, fmt.Errorf("invalid %s=%q: %w", e.env, value, err))
		}
	}
	return errors.Join(errs...)
}

// DecodeSeries reads the series file, in the format given by its extension.
func DecodeSeries() (fincalc.Series, error) {
	return decodeSeriesFile(*seriesFile, *jsonPath)
}

func decodeSeriesFile(name, path string) (fincalc.Series, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var s fincalc.Series
	switch ext := strings.ToLower(filepath.Ext(name)); ext {
	case ".csv":
		s, err = fincalc.DecodeSeriesCSV(f)
	case ".json":
		s, err = fincalc.DecodeSeriesJSON(f, path)
	default:
		s, err = fincalc.DecodeSeries(f)
	}
	if err != nil {
		return nil, fmt.Errorf("decoding %q: %w", name, err)
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid series %q: %w", name, err)
	}
	slog.Debug("series loaded", "file", name, "points", len(s))
	return s, nil
}

// options returns the rendering options of the global flags.
func options() renderer.Options {
	return renderer.Options{Currency: *currency, Private: *private}
}

// scaleFactor is the factor to apply to amounts whose real cost basis is
// costBasis.
func scaleFactor(costBasis float64) float64 {
	f := fincalc.ScaleFactor(costBasis, *private)
	if *private {
		slog.Debug("private mode", "factor", f)
	}
	return f
}
