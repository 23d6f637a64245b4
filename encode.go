package fincalc

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/fincalc/date"
	"github.com/gocarina/gocsv"
	"gopkg.in/yaml.v3"
)

// This file contains the decoders of the inputs: series in JSONL, CSV or
// embedded in any JSON document (like the performance-history API
// response), and simulation scenarios in YAML.

// UnmarshalJSON accepts both the JSONL field names and the names used by the
// performance-history API (portfolio_value, benchmark_value, cost_basis).
func (p *Point) UnmarshalJSON(b []byte) error {
	// jpoint is the object read from the file using json parser.
	type jpoint struct {
		Date      date.Date `json:"date"`
		Value     *float64  `json:"value"`
		Benchmark *float64  `json:"benchmark"`
		CostBasis *float64  `json:"costBasis"`

		PortfolioValue *float64 `json:"portfolio_value"`
		BenchmarkValue *float64 `json:"benchmark_value"`
		CostBasisSnake *float64 `json:"cost_basis"`
	}
	var jp jpoint
	if err := json.Unmarshal(b, &jp); err != nil {
		return err
	}
	first := func(values ...*float64) float64 {
		for _, v := range values {
			if v != nil {
				return *v
			}
		}
		return 0
	}
	*p = Point{
		Date:      jp.Date,
		Value:     first(jp.Value, jp.PortfolioValue),
		Benchmark: first(jp.Benchmark, jp.BenchmarkValue),
		CostBasis: first(jp.CostBasis, jp.CostBasisSnake),
	}
	return nil
}

// DecodeSeries reads a JSONL series, one point per line.
//
// Points are sorted by date, the series is not validated.
func DecodeSeries(r io.Reader) (Series, error) {
	var s Series
	scanner := bufio.NewScanner(r)
	for n := 1; scanner.Scan(); n++ {
		line := scanner.Bytes()
		if len(strings.TrimSpace(string(line))) == 0 {
			continue
		}
		var p Point
		if err := json.Unmarshal(line, &p); err != nil {
			return nil, fmt.Errorf("format error on line %d %q: %w", n, string(line), err)
		}
		s = append(s, p)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read series: %w", err)
	}
	sortByDate(s)
	return s, nil
}

// DecodeSeriesCSV reads a CSV series with a "date,value,benchmark,cost_basis" header.
func DecodeSeriesCSV(r io.Reader) (Series, error) {
	var s Series
	if err := gocsv.Unmarshal(r, &s); err != nil {
		return nil, fmt.Errorf("failed to read csv series: %w", err)
	}
	sortByDate(s)
	return s, nil
}

// DecodeSeriesJSON reads a series from a JSON document. path is a JSONPath
// expression selecting the list of points, like "$.data.history".
func DecodeSeriesJSON(r io.Reader, path string) (Series, error) {
	var doc any
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to parse json: %w", err)
	}
	if path == "" {
		path = "$"
	}
	selected, err := jsonpath.Get(path, doc)
	if err != nil {
		return nil, fmt.Errorf("error selecting %q: %w", path, err)
	}
	// jsonpath is never clear about whether it returns a list of 1 answer, or a single answer:
	// a list holding a single list is the list of points.
	if list, ok := selected.([]any); ok && len(list) == 1 {
		if inner, ok := list[0].([]any); ok {
			selected = inner
		}
	}
	if _, ok := selected.([]any); !ok {
		return nil, fmt.Errorf("%q does not select a list of points but a %T", path, selected)
	}

	// points are re-encoded to benefit from Point's own decoding.
	raw, err := json.Marshal(selected)
	if err != nil {
		return nil, fmt.Errorf("failed to re-encode %q: %w", path, err)
	}
	var s Series
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("invalid points at %q: %w", path, err)
	}
	sortByDate(s)
	return s, nil
}

func sortByDate(s Series) {
	sort.SliceStable(s, func(i, j int) bool { return s[i].Date.Before(s[j].Date) })
}

// scenarioFile is the YAML representation of a Scenario.
type scenarioFile struct {
	Scenario `yaml:",inline"`
	Rates    *Rates `yaml:"rates"`
}

// DecodeScenario reads a scenario in YAML. Rates default to FrenchRates.
func DecodeScenario(r io.Reader) (Scenario, Rates, error) {
	var f scenarioFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return Scenario{}, Rates{}, fmt.Errorf("invalid scenario: %w", err)
	}
	rates := FrenchRates
	if f.Rates != nil {
		rates = *f.Rates
	}
	return f.Scenario, rates, nil
}
