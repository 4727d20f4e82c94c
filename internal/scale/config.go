package scale

import (
	"strings"

	"github.com/five82/chartail/internal/series"
)

// autoDomain is the domain literal that requests a data-driven scale group.
const autoDomain = "auto"

type entry struct {
	pattern string
	auto    bool
	scale   Scale
}

// Config is a parsed scale configuration: an ordered list of
// (pattern, scale-or-auto) entries. The catch-all entry, if any, is last.
type Config struct {
	entries []entry
}

// ParseConfig parses "pattern:domain,..." where one bare domain acts as the
// catch-all. A domain is "C", "A..C", "A..B..C" or "auto".
func ParseConfig(conf string) (*Config, error) {
	var (
		entries  []entry
		catchAll *entry
	)
	for _, item := range strings.Split(conf, ",") {
		parts := strings.Split(item, ":")
		switch len(parts) {
		case 1:
			e, err := newEntry("", parts[0])
			if err != nil {
				return nil, err
			}
			catchAll = &e
		case 2:
			e, err := newEntry(parts[0], parts[1])
			if err != nil {
				return nil, err
			}
			entries = append(entries, e)
		default:
			return nil, newError(ErrBadFormat, conf, nil)
		}
	}
	if catchAll != nil {
		entries = append(entries, *catchAll)
	}
	return &Config{entries: entries}, nil
}

func newEntry(pattern, domain string) (entry, error) {
	if strings.TrimSpace(domain) == autoDomain {
		return entry{pattern: pattern, auto: true}, nil
	}
	s, err := ParseDomain(domain)
	if err != nil {
		return entry{}, err
	}
	return entry{pattern: pattern, scale: s}, nil
}

// Len returns the number of entries, catch-all included.
func (c *Config) Len() int {
	if c == nil {
		return 0
	}
	return len(c.entries)
}

// Patterns returns entry patterns in match order.
func (c *Config) Patterns() []string {
	if c == nil {
		return nil
	}
	out := make([]string, len(c.entries))
	for i, e := range c.entries {
		out[i] = e.pattern
	}
	return out
}

func (c *Config) find(title string) (int, bool) {
	for i, e := range c.entries {
		if strings.Contains(title, e.pattern) {
			return i, true
		}
	}
	return 0, false
}

// Materialize resolves every auto entry against the data. All series whose
// first matching entry is the same auto entry share one scale computed from
// their combined range.
func (c *Config) Materialize(data []series.Series) *Scales {
	if c == nil {
		return &Scales{}
	}
	type bounds struct{ mn, mx float64 }
	groups := make(map[int]bounds)
	for _, s := range data {
		i, ok := c.find(s.Title)
		if !ok || !c.entries[i].auto {
			continue
		}
		mn, mx, ok := MinMax(s.Values)
		if !ok {
			continue
		}
		if b, seen := groups[i]; seen {
			groups[i] = bounds{mn: min(b.mn, mn), mx: max(b.mx, mx)}
		} else {
			groups[i] = bounds{mn: mn, mx: mx}
		}
	}

	resolved := make([]entry, len(c.entries))
	for i, e := range c.entries {
		resolved[i] = entry{pattern: e.pattern, scale: e.scale}
		if !e.auto {
			continue
		}
		resolved[i].scale = Identity()
		if b, ok := groups[i]; ok {
			if s, err := FromMinMax(b.mn, b.mx); err == nil {
				resolved[i].scale = s
			}
		}
	}
	return &Scales{entries: resolved}
}

// Scales is a materialized Config: every entry holds a concrete scale.
type Scales struct {
	entries []entry
}

// Pick returns the scale of the first entry whose pattern is contained in title.
func (s *Scales) Pick(title string) (Scale, bool) {
	if s == nil {
		return Scale{}, false
	}
	for _, e := range s.entries {
		if strings.Contains(title, e.pattern) {
			return e.scale, true
		}
	}
	return Scale{}, false
}
