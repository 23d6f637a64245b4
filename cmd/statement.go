package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/etnz/fincalc/renderer"
	"github.com/etnz/fincalc/statement"
	"github.com/google/subcommands"
)

// statementCmd holds the flags for the 'statement' subcommand.
type statementCmd struct {
	file     string
	existing string
	json     bool
}

func (*statementCmd) Name() string     { return "statement" }
func (*statementCmd) Synopsis() string { return "check the rows extracted from a broker statement" }
func (*statementCmd) Usage() string {
	return `fcalc statement -f <result.json> [-existing <rows.json>] [-json]

  Validates the rows extracted from a broker statement and separates the new
  rows from those already imported. Exits with an error if any row is invalid.
  With -json, prints the new rows, ready to be appended to the existing ones.
`
}

func (c *statementCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "f", "", "Statement parser result (JSON).")
	f.StringVar(&c.existing, "existing", "", "Rows already imported (JSON array).")
	f.BoolVar(&c.json, "json", false, "Print the new rows as JSON.")
}

func (c *statementCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.file == "" {
		fmt.Fprintln(os.Stderr, "Error: -f is required")
		return subcommands.ExitUsageError
	}
	res, err := decodeFile(c.file, statement.Decode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading statement %q: %v\n", c.file, err)
		return subcommands.ExitFailure
	}
	var existing []statement.Row
	if c.existing != "" {
		if existing, err = decodeFile(c.existing, statement.DecodeRows); err != nil {
			fmt.Fprintf(os.Stderr, "Error reading rows %q: %v\n", c.existing, err)
			return subcommands.ExitFailure
		}
	}

	// only valid rows are candidates
	var valid []statement.Row
	for _, r := range res.Transactions {
		if r.Validate() == nil {
			valid = append(valid, r)
		}
	}
	report := renderer.StatementReport{Problems: res.Validate()}
	report.Fresh, report.Duplicates = statement.Dedupe(existing, valid)
	slog.Debug("statement checked", "rows", len(res.Transactions), "fresh", len(report.Fresh), "duplicates", len(report.Duplicates))

	if c.json {
		if report.Fresh == nil {
			report.Fresh = []statement.Row{}
		}
		if status := printJSON(report.Fresh); status != subcommands.ExitSuccess {
			return status
		}
	} else {
		printMarkdown(renderer.StatementMarkdown(report))
	}
	if report.Problems != nil {
		if c.json {
			fmt.Fprintf(os.Stderr, "Error invalid statement: %v\n", report.Problems)
		}
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// decodeFile opens name and decodes it with decode.
func decodeFile[T any](name string, decode func(io.Reader) (T, error)) (T, error) {
	f, err := os.Open(name)
	if err != nil {
		var zero T
		return zero, err
	}
	defer f.Close()
	return decode(f)
}
