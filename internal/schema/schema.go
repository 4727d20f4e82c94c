// Package schema turns header and data lines into series slices.
package schema

import (
	"encoding/csv"
	"math"
	"strconv"
	"strings"

	"github.com/five82/chartail/internal/series"
)

// Schema partitions a header into an optional X column, an optional epoch
// column and the value columns.
type Schema struct {
	xIndex     int // -1 when absent
	xTitle     string
	epochIndex int // -1 when absent
	titles     []string
	valueIndex []int
}

// New builds a schema from header titles. The first column matching x is the
// X column; the first other column matching epoch is the epoch column. Every
// remaining column is a value column, in header order.
func New(x, epoch Column, titles []string) *Schema {
	s := &Schema{xIndex: -1, epochIndex: -1, titles: []string{}}
	for i, t := range titles {
		switch {
		case s.xIndex < 0 && x.Matches(t, i):
			s.xIndex = i
			s.xTitle = t
		case s.epochIndex < 0 && epoch.Matches(t, i):
			s.epochIndex = i
		default:
			s.titles = append(s.titles, t)
			s.valueIndex = append(s.valueIndex, i)
		}
	}
	return s
}

// Titles returns value column titles.
func (s *Schema) Titles() []string { return s.titles }

// HasX reports whether an X column was found in the header.
func (s *Schema) HasX() bool { return s.xIndex >= 0 }

// HasEpoch reports whether an epoch column was found in the header.
func (s *Schema) HasEpoch() bool { return s.epochIndex >= 0 }

// EmptySet returns a set with one empty series per value column.
func (s *Schema) EmptySet() series.Set {
	set := series.Set{Y: make([]series.Series, len(s.titles))}
	for i, t := range s.titles {
		set.Y[i] = series.WithTitle(t)
	}
	if s.HasX() {
		set.X = &series.Axis{Title: s.xTitle, Labels: []string{}}
	}
	return set
}

// Slice parses one data row positionally. Values that do not parse become
// NaN, missing trailing fields become NaN and extra fields are ignored.
func (s *Schema) Slice(fields []string) series.Slice {
	var out series.Slice
	if s.HasX() {
		label := ""
		if s.xIndex < len(fields) {
			label = fields[s.xIndex]
		}
		out.X = &label
	}
	if s.HasEpoch() && s.epochIndex < len(fields) {
		out.Epoch = fields[s.epochIndex]
	}
	out.Titles = s.titles
	out.Y = make([]float64, len(s.valueIndex))
	for i, idx := range s.valueIndex {
		out.Y[i] = math.NaN()
		if idx >= len(fields) {
			continue
		}
		if v, err := strconv.ParseFloat(strings.TrimSpace(fields[idx]), 64); err == nil {
			out.Y[i] = v
		}
	}
	return out
}

// EpochOf returns the epoch field of a raw row, empty when the schema has no
// epoch column or the row is too short.
func (s *Schema) EpochOf(fields []string) string {
	if !s.HasEpoch() || s.epochIndex >= len(fields) {
		return ""
	}
	return fields[s.epochIndex]
}

// SplitRecord splits one CSV line into fields. Lines the CSV reader rejects
// fall back to a plain comma split.
func SplitRecord(line string) []string {
	r := csv.NewReader(strings.NewReader(line))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	fields, err := r.Read()
	if err != nil {
		return strings.Split(line, ",")
	}
	return fields
}
