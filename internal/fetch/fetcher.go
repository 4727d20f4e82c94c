package fetch

import (
	"context"
	"errors"
	"io"
	"log"

	"github.com/five82/chartail/internal/series"
	"github.com/five82/chartail/internal/source"
)

const controlBuffer = 16

// Fetcher owns the input source and runs the read loop in its own goroutine.
// It stops after the first error, at the end of streaming input, or when the
// context is cancelled.
type Fetcher struct {
	src     source.Source
	opts    Options
	control chan Control
	events  chan Event
}

// New prepares a fetcher; call Start to launch it.
func New(src source.Source, opts Options) *Fetcher {
	return &Fetcher{
		src:     src,
		opts:    opts,
		control: make(chan Control, controlBuffer),
		events:  make(chan Event),
	}
}

// Events is the stream the UI loop consumes.
func (f *Fetcher) Events() <-chan Event { return f.events }

// Send delivers a control message. It gives up when ctx is done.
func (f *Fetcher) Send(ctx context.Context, c Control) {
	select {
	case f.control <- c:
	case <-ctx.Done():
	}
}

// Start launches the read loop. It returns immediately.
func (f *Fetcher) Start(ctx context.Context) {
	go func() {
		if f.opts.Mode == Autorefresh {
			f.refreshLoop(ctx)
			return
		}
		f.streamLoop(ctx)
	}()
}

func (f *Fetcher) emit(ctx context.Context, ev Event) bool {
	select {
	case f.events <- ev:
		return true
	case <-ctx.Done():
		return false
	}
}

func (f *Fetcher) fail(ctx context.Context, err error) {
	log.Printf("fetch from %s failed: %v", f.src, err)
	f.emit(ctx, Failed{Err: err})
}

func (f *Fetcher) streamLoop(ctx context.Context) {
	rc, err := f.src.Open(ctx)
	if err != nil {
		f.fail(ctx, err)
		return
	}
	defer closeSource(rc)

	reader := NewReader(rc, f.opts)
	paused := false
	for {
		if !f.checkPause(ctx, &paused) {
			return
		}
		ev, err := reader.Next()
		if errors.Is(err, io.EOF) {
			f.emit(ctx, Done{})
			return
		}
		if err != nil {
			f.fail(ctx, err)
			return
		}
		if !f.emit(ctx, ev) {
			return
		}
	}
}

// checkPause drains pending control messages without blocking, then blocks
// for as long as the fetcher is paused. It reports false when ctx is done.
func (f *Fetcher) checkPause(ctx context.Context, paused *bool) bool {
	for {
		select {
		case c := <-f.control:
			applyControl(c, paused)
			continue
		case <-ctx.Done():
			return false
		default:
		}
		if !*paused {
			return true
		}
		select {
		case c := <-f.control:
			applyControl(c, paused)
		case <-ctx.Done():
			return false
		}
	}
}

func applyControl(c Control, paused *bool) {
	switch c {
	case Pause:
		*paused = true
	case Resume:
		*paused = false
	}
}

func (f *Fetcher) refreshLoop(ctx context.Context) {
	paused := false
	for {
		select {
		case <-ctx.Done():
			return
		case c := <-f.control:
			if c != Tick {
				applyControl(c, &paused)
				continue
			}
			if paused {
				continue
			}
			set, err := f.readOnce(ctx)
			if err != nil {
				f.fail(ctx, err)
				return
			}
			if !f.emit(ctx, Replace{Set: set}) {
				return
			}
		}
	}
}

func (f *Fetcher) readOnce(ctx context.Context) (series.Set, error) {
	rc, err := f.src.Open(ctx)
	if err != nil {
		return series.Set{}, err
	}
	set, err := ReadAll(rc, f.opts)
	if closeErr := rc.Close(); err == nil && closeErr != nil {
		return series.Set{}, closeErr
	}
	return set, err
}

func closeSource(rc io.Closer) {
	if err := rc.Close(); err != nil {
		log.Printf("close input: %v", err)
	}
}
