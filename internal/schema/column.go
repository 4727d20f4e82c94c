package schema

import "strconv"

type columnKind int

const (
	kindNone columnKind = iota
	kindIndex
	kindTitle
)

// Column selects one input column either by 0-based position or by exact
// header title. The zero value selects nothing.
type Column struct {
	kind  columnKind
	index int
	title string
}

// None returns a selector that never matches.
func None() Column { return Column{} }

// Index selects the column at position i.
func Index(i int) Column { return Column{kind: kindIndex, index: i} }

// Title selects the column whose header equals t.
func Title(t string) Column { return Column{kind: kindTitle, title: t} }

// ParseColumn builds a selector from a flag value. Empty selects nothing.
func ParseColumn(v string) Column {
	if v == "" {
		return None()
	}
	return Title(v)
}

// ParseIndexColumn builds a positional selector; negative values select nothing.
func ParseIndexColumn(i int) Column {
	if i < 0 {
		return None()
	}
	return Index(i)
}

// IsNone reports whether the selector is empty.
func (c Column) IsNone() bool { return c.kind == kindNone }

// Matches reports whether the column with the given header and position is
// the selected one.
func (c Column) Matches(title string, index int) bool {
	switch c.kind {
	case kindIndex:
		return c.index == index
	case kindTitle:
		return c.title == title
	}
	return false
}

func (c Column) String() string {
	switch c.kind {
	case kindIndex:
		return "#" + strconv.Itoa(c.index)
	case kindTitle:
		return c.title
	}
	return "none"
}
