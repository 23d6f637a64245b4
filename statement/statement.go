// Package statement checks the rows extracted from a broker statement
// before they are merged into the portfolio history.
//
// The extraction itself (PDF, spreadsheets) happens elsewhere: this package
// only reads its JSON result, validates every row and separates the rows
// already known from the fresh ones.
package statement

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/etnz/fincalc/date"
	"github.com/shopspring/decimal"
)

// Type is the kind of a statement row.
type Type string

const (
	Buy      Type = "buy"
	Sell     Type = "sell"
	Dividend Type = "dividend"
)

// Row is a single transaction extracted from a statement.
type Row struct {
	Ticker   string          `json:"stock_ticker"`
	Type     Type            `json:"transaction_type"`
	Quantity decimal.Decimal `json:"quantity"`
	Date     date.Date       `json:"transaction_date"`
	Price    decimal.Decimal `json:"price_per_share"`
}

// Result is the document produced by the statement parser.
type Result struct {
	Success      bool  `json:"success"`
	Transactions []Row `json:"transactions"`
}

// Decode reads a parser result. Quantities and prices can be JSON numbers or
// strings.
func Decode(r io.Reader) (Result, error) {
	var res Result
	dec := json.NewDecoder(r)
	if err := dec.Decode(&res); err != nil {
		return Result{}, fmt.Errorf("cannot decode statement: %w", err)
	}
	return res, nil
}

// DecodeRows reads a JSON array of rows, as previously imported.
func DecodeRows(r io.Reader) ([]Row, error) {
	var rows []Row
	if err := json.NewDecoder(r).Decode(&rows); err != nil {
		return nil, fmt.Errorf("cannot decode rows: %w", err)
	}
	return rows, nil
}

// Amount is the cash value of the row: quantity times price.
func (r Row) Amount() decimal.Decimal { return r.Quantity.Mul(r.Price) }

// Validate reports every problem of the row.
func (r Row) Validate() error {
	var errs []error
	if strings.TrimSpace(r.Ticker) == "" {
		errs = append(errs, errors.New("missing ticker"))
	}
	switch r.Type {
	case Buy, Sell, Dividend:
	default:
		errs = append(errs, fmt.Errorf("unknown transaction type %q", r.Type))
	}
	if !r.Quantity.IsPositive() {
		errs = append(errs, fmt.Errorf("quantity %s is not positive", r.Quantity))
	}
	if r.Price.IsNegative() {
		errs = append(errs, fmt.Errorf("price %s is negative", r.Price))
	}
	if r.Date.IsZero() {
		errs = append(errs, errors.New("missing date"))
	}
	return errors.Join(errs...)
}

// Validate checks the parser status and every row. Row errors are prefixed
// with their 1-based position.
func (res Result) Validate() error {
	var errs []error
	if !res.Success {
		errs = append(errs, errors.New("statement parser reported a failure"))
	}
	for i, r := range res.Transactions {
		if err := r.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("row %d: %w", i+1, err))
		}
	}
	return errors.Join(errs...)
}

// key identifies a row regardless of ticker case and decimal representation.
type key struct {
	ticker   string
	typ      Type
	date     date.Date
	quantity string
	price    string
}

func keyOf(r Row) key {
	return key{
		ticker: strings.ToUpper(strings.TrimSpace(r.Ticker)),
		typ:    r.Type,
		date:   r.Date,
		// String() drops trailing zeros so "10" and "10.00" are the same.
		quantity: r.Quantity.String(),
		price:    r.Price.String(),
	}
}

// Dedupe splits incoming rows into fresh ones and duplicates. A row is a
// duplicate if an identical row exists in existing or appeared earlier in
// incoming. Order is preserved in both results.
func Dedupe(existing, incoming []Row) (fresh, duplicates []Row) {
	seen := make(map[key]bool, len(existing)+len(incoming))
	for _, r := range existing {
		seen[keyOf(r)] = true
	}
	for _, r := range incoming {
		k := keyOf(r)
		if seen[k] {
			duplicates = append(duplicates, r)
			continue
		}
		seen[k] = true
		fresh = append(fresh, r)
	}
	return fresh, duplicates
}
