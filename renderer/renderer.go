// Package renderer turns calculation results into markdown documents.
//
// Amounts are expected already scaled (see fincalc.ScaleFactor): the renderer
// only formats them in the reporting currency and says so when the private
// mode is on.
package renderer

import (
	"fmt"

	"github.com/etnz/fincalc"
	md "github.com/nao1215/markdown"
)

// DefaultCurrency is used when Options has none.
const DefaultCurrency = "EUR"

// Options holds the presentation settings shared by every document.
type Options struct {
	Currency string // ISO code amounts are formatted in.
	Private  bool   // Amounts have been scaled to fincalc.ReferenceBasis.
}

func (o Options) money(v float64) fincalc.Money {
	cur := o.Currency
	if cur == "" {
		cur = DefaultCurrency
	}
	return fincalc.M(v, cur)
}

// privateNote writes the disclaimer of scaled amounts, if needed.
func (o Options) privateNote(doc *md.Markdown) {
	if !o.Private {
		return
	}
	doc.PlainText(md.Italic(fmt.Sprintf("Private mode: amounts are scaled to a %s cost basis, percentages are real.",
		o.money(fincalc.ReferenceBasis))))
}
