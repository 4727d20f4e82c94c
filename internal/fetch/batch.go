package fetch

import (
	"io"

	"github.com/five82/chartail/internal/schema"
	"github.com/five82/chartail/internal/series"
)

// BatchReader groups input into epochs. Rows accumulate into one set while
// the epoch column keeps its value; an epoch change, a blank line (CSV only)
// or the end of input closes the batch and yields it as an Epoch event.
type BatchReader struct {
	opts    Options
	in      lines
	pairs   *PairReader
	schema  *schema.Schema
	pending *series.Set
	eof     bool
}

func NewBatchReader(r io.Reader, opts Options) *BatchReader {
	br := &BatchReader{opts: opts}
	if opts.Format == Paired {
		br.pairs = NewPairReader(r, opts)
	} else {
		br.in = lines{scanner: newScanner(r)}
	}
	return br
}

func (r *BatchReader) Next() (Event, error) {
	if r.eof {
		return nil, io.EOF
	}
	if r.pairs != nil {
		return r.nextPaired()
	}
	return r.nextCSV()
}

// flush hands out the pending batch, if any.
func (r *BatchReader) flush() (Event, bool) {
	if r.pending == nil {
		return nil, false
	}
	set := *r.pending
	r.pending = nil
	return Epoch{Set: set}, true
}

func (r *BatchReader) nextCSV() (Event, error) {
	for {
		line, err := r.in.next()
		if err == io.EOF {
			r.eof = true
			if ev, ok := r.flush(); ok {
				return ev, nil
			}
			return nil, io.EOF
		}
		if err != nil {
			return nil, err
		}
		if blank(line) {
			r.schema = nil
			if ev, ok := r.flush(); ok {
				return ev, nil
			}
			continue
		}
		fields := schema.SplitRecord(line)
		if r.schema == nil {
			r.schema = schema.New(r.opts.X, r.opts.Epoch, fields)
			continue
		}

		slice := r.schema.Slice(fields)
		var out Event
		if r.pending != nil && slice.Epoch != r.pending.Epoch {
			out, _ = r.flush()
		}
		if r.pending == nil {
			set := r.schema.EmptySet()
			set.Epoch = slice.Epoch
			r.pending = &set
		}
		if err := r.pending.AppendSlice(slice); err != nil {
			return nil, err
		}
		if out != nil {
			return out, nil
		}
	}
}

func (r *BatchReader) nextPaired() (Event, error) {
	for {
		set, err := r.pairs.record()
		if err == io.EOF {
			r.eof = true
			if ev, ok := r.flush(); ok {
				return ev, nil
			}
			return nil, io.EOF
		}
		if err != nil {
			return nil, err
		}

		var out Event
		if r.pending != nil && set.Epoch != r.pending.Epoch {
			out, _ = r.flush()
		}
		if r.pending == nil {
			r.pending = &set
		} else {
			r.pending.AppendSet(set, r.opts.Order)
		}
		if out != nil {
			return out, nil
		}
	}
}
