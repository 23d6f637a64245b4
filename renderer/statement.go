package renderer

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/etnz/fincalc/statement"
	md "github.com/nao1215/markdown"
)

// StatementReport is the outcome of checking a statement import.
type StatementReport struct {
	Problems   error // every validation failure, joined
	Fresh      []statement.Row
	Duplicates []statement.Row
}

// StatementMarkdown renders the rows ready to be imported, the duplicates and
// the validation problems of a statement.
func StatementMarkdown(r StatementReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Statement Import")
	doc.PlainText(fmt.Sprintf("%d new rows, %d duplicates.", len(r.Fresh), len(r.Duplicates)))

	if r.Problems != nil {
		doc.H2("Problems")
		doc.OrderedList(strings.Split(r.Problems.Error(), "\n")...)
	}
	if len(r.Fresh) > 0 {
		doc.H2("New Rows")
		doc.Table(rowsTable(r.Fresh))
	}
	if len(r.Duplicates) > 0 {
		doc.H2("Already Imported")
		doc.Table(rowsTable(r.Duplicates))
	}
	return doc.String()
}

func rowsTable(rows []statement.Row) md.TableSet {
	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Date", "Ticker", "Type", "Quantity", "Price", "Amount"},
	}
	for _, row := range rows {
		table.Rows = append(table.Rows, []string{
			row.Date.String(),
			row.Ticker,
			string(row.Type),
			row.Quantity.String(),
			row.Price.String(),
			row.Amount().StringFixed(2),
		})
	}
	return table
}
