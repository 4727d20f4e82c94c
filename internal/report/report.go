// Package report prints a non-interactive per-series summary.
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/five82/chartail/internal/series"
)

const (
	TableOut = "table"
	CSVOut   = "csv"
)

// Row is the summary of one series.
type Row struct {
	Title  string
	Points int
	Min    float64
	Max    float64
	Last   float64
	Sum    float64
}

// Summarize computes one row per series, in set order. Min and Max are NaN
// for a series without finite values.
func Summarize(set series.Set) []Row {
	rows := make([]Row, 0, len(set.Y))
	for _, y := range set.Y {
		r := Row{Title: y.Title, Last: y.Last(), Sum: y.Sum(), Min: math.NaN(), Max: math.NaN()}
		for _, v := range y.Values {
			if !math.IsNaN(v) {
				r.Points++
			}
		}
		if mn, mx, ok := y.MinMax(); ok {
			r.Min, r.Max = mn, mx
		}
		rows = append(rows, r)
	}
	return rows
}

var headers = []string{"Series", "Points", "Min", "Max", "Last", "Sum"}

// Print writes the summary of set in the given format.
func Print(w io.Writer, set series.Set, format string, precision int) error {
	fmtFloat := func(v float64) string {
		if math.IsNaN(v) {
			return "-"
		}
		return strconv.FormatFloat(v, 'f', precision, 64)
	}

	rows := Summarize(set)
	data := make([][]string, 0, len(rows))
	for _, r := range rows {
		data = append(data, []string{
			r.Title,
			strconv.Itoa(r.Points),
			fmtFloat(r.Min),
			fmtFloat(r.Max),
			fmtFloat(r.Last),
			fmtFloat(r.Sum),
		})
	}

	switch strings.ToLower(format) {
	case CSVOut:
		if err := writeCSV(w, data); err != nil {
			return fmt.Errorf("write csv summary: %w", err)
		}
	case TableOut, "":
		if err := writeTable(w, data); err != nil {
			return fmt.Errorf("write table summary: %w", err)
		}
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
	return nil
}

func writeTable(w io.Writer, data [][]string) error {
	table := tablewriter.NewWriter(w)
	table.Header(headers)
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})
	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

func writeCSV(w io.Writer, data [][]string) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(headers); err != nil {
		return err
	}
	if err := cw.WriteAll(data); err != nil {
		return err
	}
	return cw.Error()
}
