package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/five82/chartail/internal/fetch"
	"github.com/five82/chartail/internal/scale"
	"github.com/five82/chartail/internal/schema"
	"github.com/five82/chartail/internal/series"
	"github.com/five82/chartail/internal/source"
)

// Settings is the resolved run configuration after flags, environment and
// the config file have been merged.
type Settings struct {
	File    string
	Command []string
	XTitle  string
	XIndex  int // negative when unset
	Epoch   string
	Refresh time.Duration
	Scales  string
	Paired  bool
	Sort    string
	Theme   string
	LogFile string
}

var (
	ErrConflictingX       = errors.New("x column given both by title and by index")
	ErrConflictingInput   = errors.New("input file and command are mutually exclusive")
	ErrRefreshNeedsSource = errors.New("refresh requires a command or an input file")
	ErrNegativeRefresh    = errors.New("refresh must not be negative")
	ErrUnknownSort        = errors.New("unknown sort order")
)

// ParseRefresh reads a refresh rate. Bare integers are milliseconds; anything
// else must be a Go duration such as "1s" or "250ms".
func ParseRefresh(v string) (time.Duration, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return 0, nil
	}
	if ms, err := strconv.ParseInt(v, 10, 64); err == nil {
		return time.Duration(ms) * time.Millisecond, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("parse refresh %q: %w", v, err)
	}
	return d, nil
}

// Validate checks the settings and parses the scale configuration.
func (s Settings) Validate() (*scale.Config, error) {
	if s.XTitle != "" && s.XIndex >= 0 {
		return nil, ErrConflictingX
	}
	if s.File != "" && len(s.Command) > 0 {
		return nil, ErrConflictingInput
	}
	if s.Refresh < 0 {
		return nil, ErrNegativeRefresh
	}
	if s.Refresh > 0 && s.File == "" && len(s.Command) == 0 {
		return nil, ErrRefreshNeedsSource
	}
	if _, ok := series.ParseOrder(s.Sort); !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSort, s.Sort)
	}
	if strings.TrimSpace(s.Scales) == "" {
		return nil, nil
	}
	conf, err := scale.ParseConfig(s.Scales)
	if err != nil {
		return nil, fmt.Errorf("parse scales: %w", err)
	}
	return conf, nil
}

// Mode picks the ingestion mode: a refresh rate wins, then an epoch column.
func (s Settings) Mode() fetch.Mode {
	switch {
	case s.Refresh > 0:
		return fetch.Autorefresh
	case s.Epoch != "":
		return fetch.Batch
	}
	return fetch.Incremental
}

// XColumn returns the X column selector.
func (s Settings) XColumn() schema.Column {
	if s.XTitle != "" {
		return schema.ParseColumn(s.XTitle)
	}
	return schema.ParseIndexColumn(s.XIndex)
}

func (s Settings) Order() series.Order {
	o, _ := series.ParseOrder(s.Sort)
	return o
}

func (s Settings) Format() fetch.Format {
	if s.Paired {
		return fetch.Paired
	}
	return fetch.CSV
}

// FetchOptions bundles what the fetcher needs.
func (s Settings) FetchOptions() fetch.Options {
	return fetch.Options{
		Mode:   s.Mode(),
		Format: s.Format(),
		X:      s.XColumn(),
		Epoch:  schema.ParseColumn(s.Epoch),
		Order:  s.Order(),
	}
}

// Source returns the configured input: a command, a file, or stdin.
func (s Settings) Source() source.Source {
	switch {
	case len(s.Command) > 0:
		return source.Command(strings.Join(s.Command, " "))
	case s.File != "":
		return source.File(s.File)
	}
	return source.Stdin()
}

// ReadsStdin reports whether input comes from standard input.
func (s Settings) ReadsStdin() bool {
	return s.File == "" && len(s.Command) == 0
}
