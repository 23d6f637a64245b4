package renderer

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/etnz/fincalc"
	"github.com/etnz/fincalc/date"
	md "github.com/nao1215/markdown"
)

// HoldingMarkdown renders the weighted holding period on a given day.
func HoldingMarkdown(h fincalc.HoldingPeriod, asOf date.Date) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Weighted Holding Period on %s", asOf))
	doc.PlainText(fmt.Sprintf("On average, the invested capital has been held for %s.", md.Bold(h.String())))
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{"Unit", "Value"},
		Rows: [][]string{
			{"Years", strconv.Itoa(h.Years())},
			{"Months", strconv.Itoa(h.Months())},
			{"Days", strconv.Itoa(h.RemDays())},
			{"Total days", fmt.Sprintf("%.1f", h.Days)},
		},
	})
	return doc.String()
}
