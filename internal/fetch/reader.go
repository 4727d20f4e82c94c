package fetch

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/five82/chartail/internal/schema"
	"github.com/five82/chartail/internal/series"
)

// Reader yields events from an input stream. Next returns io.EOF once the
// stream is exhausted.
type Reader interface {
	Next() (Event, error)
}

// NewReader picks the reader for the given mode and format.
func NewReader(r io.Reader, opts Options) Reader {
	if opts.Mode == Batch {
		return NewBatchReader(r, opts)
	}
	if opts.Format == Paired {
		return NewPairReader(r, opts)
	}
	return NewLineReader(r, opts)
}

func newScanner(r io.Reader) *bufio.Scanner {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	return s
}

// lines wraps a scanner with CR stripping and error wrapping.
type lines struct {
	scanner *bufio.Scanner
}

func (l *lines) next() (string, error) {
	if !l.scanner.Scan() {
		if err := l.scanner.Err(); err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		return "", io.EOF
	}
	return strings.TrimRight(l.scanner.Text(), "\r"), nil
}

func blank(line string) bool {
	return strings.TrimSpace(line) == ""
}

// LineReader streams CSV input. A blank line resets the schema and the next
// line is read as a header.
type LineReader struct {
	in     lines
	opts   Options
	schema *schema.Schema
}

func NewLineReader(r io.Reader, opts Options) *LineReader {
	return &LineReader{in: lines{scanner: newScanner(r)}, opts: opts}
}

func (r *LineReader) Next() (Event, error) {
	for {
		line, err := r.in.next()
		if err != nil {
			return nil, err
		}
		if blank(line) {
			r.schema = nil
			continue
		}
		fields := schema.SplitRecord(line)
		if r.schema == nil {
			r.schema = schema.New(r.opts.X, r.opts.Epoch, fields)
			return Header{Set: r.schema.EmptySet()}, nil
		}
		return Row{Slice: r.schema.Slice(fields)}, nil
	}
}

// PairReader streams "title: value" records. Each blank-line separated block
// becomes a one-point set to be union-merged downstream. Lines without a
// colon are skipped.
type PairReader struct {
	in   lines
	opts Options
}

func NewPairReader(r io.Reader, opts Options) *PairReader {
	return &PairReader{in: lines{scanner: newScanner(r)}, opts: opts}
}

func (r *PairReader) Next() (Event, error) {
	set, err := r.record()
	if err != nil {
		return nil, err
	}
	return Extend{Set: set}, nil
}

// record reads the next non-empty block.
func (r *PairReader) record() (series.Set, error) {
	var titles, values []string
	for {
		line, err := r.in.next()
		if err == io.EOF && len(titles) > 0 {
			break
		}
		if err != nil {
			return series.Set{}, err
		}
		if blank(line) {
			if len(titles) > 0 {
				break
			}
			continue
		}
		title, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		titles = append(titles, strings.TrimSpace(title))
		values = append(values, strings.TrimSpace(value))
	}
	return onePoint(schema.New(r.opts.X, r.opts.Epoch, titles), values)
}

func onePoint(s *schema.Schema, values []string) (series.Set, error) {
	set := s.EmptySet()
	slice := s.Slice(values)
	if err := set.AppendSlice(slice); err != nil {
		return series.Set{}, err
	}
	return set, nil
}

// ReadAll reads a whole stream into one set, for refreshing input. Empty
// input yields an empty set.
func ReadAll(r io.Reader, opts Options) (series.Set, error) {
	if opts.Format == Paired {
		pr := NewPairReader(r, opts)
		var out series.Set
		for {
			set, err := pr.record()
			if err == io.EOF {
				return out, nil
			}
			if err != nil {
				return series.Set{}, err
			}
			out.AppendSet(set, opts.Order)
		}
	}

	in := lines{scanner: newScanner(r)}
	var sch *schema.Schema
	var out series.Set
	for {
		line, err := in.next()
		if err == io.EOF {
			out.Sort(opts.Order)
			return out, nil
		}
		if err != nil {
			return series.Set{}, err
		}
		if blank(line) {
			continue
		}
		fields := schema.SplitRecord(line)
		if sch == nil {
			sch = schema.New(opts.X, opts.Epoch, fields)
			out = sch.EmptySet()
			continue
		}
		if err := out.AppendSlice(sch.Slice(fields)); err != nil {
			return series.Set{}, err
		}
	}
}
