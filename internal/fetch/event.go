// Package fetch reads input records off a source and turns them into events
// for the UI loop.
package fetch

import (
	"github.com/five82/chartail/internal/schema"
	"github.com/five82/chartail/internal/series"
)

// Mode selects how input is ingested.
type Mode int

const (
	// Incremental streams rows into a single growing set.
	Incremental Mode = iota
	// Batch groups rows into epochs by an epoch column or blank lines.
	Batch
	// Autorefresh re-runs the source on every tick and replaces the set.
	Autorefresh
)

func (m Mode) String() string {
	switch m {
	case Batch:
		return "batch"
	case Autorefresh:
		return "autorefresh"
	}
	return "incremental"
}

// Format is the input text layout.
type Format int

const (
	// CSV is a header line followed by comma separated rows.
	CSV Format = iota
	// Paired is "title: value" lines, one record per blank-line separated block.
	Paired
)

// Options configure readers and the fetcher.
type Options struct {
	Mode   Mode
	Format Format
	X      schema.Column
	Epoch  schema.Column
	Order  series.Order
}

// Event is one message from the fetch goroutine.
type Event interface {
	isEvent()
}

// Header starts a new schema; Set holds its empty series.
type Header struct{ Set series.Set }

// Row is one data row under the current header.
type Row struct{ Slice series.Slice }

// Extend is a set to union-merge into the current one.
type Extend struct{ Set series.Set }

// Epoch is a complete batch.
type Epoch struct{ Set series.Set }

// Replace is a full refresh result.
type Replace struct{ Set series.Set }

// Failed reports the error that stopped the fetcher.
type Failed struct{ Err error }

// Done reports the end of a streaming input.
type Done struct{}

func (Header) isEvent()  {}
func (Row) isEvent()     {}
func (Extend) isEvent()  {}
func (Epoch) isEvent()   {}
func (Replace) isEvent() {}
func (Failed) isEvent()  {}
func (Done) isEvent()    {}

// Control is a message from the UI loop to the fetcher.
type Control int

const (
	Tick Control = iota
	Pause
	Resume
)
