// Package source provides the byte streams chartail reads from: a file,
// standard input, or the stdout of a shell command.
package source

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

// stderrLimit is how much of a command's stderr is kept for error messages.
const stderrLimit = 4096

// Source opens a fresh stream on every call. Streaming input opens once;
// refreshing input opens again on every tick.
type Source interface {
	Open(ctx context.Context) (io.ReadCloser, error)
	String() string
}

type file struct{ path string }

// File reads the file at path.
func File(path string) Source { return file{path: path} }

func (f file) Open(context.Context) (io.ReadCloser, error) {
	fh, err := os.Open(f.path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	return fh, nil
}

func (f file) String() string { return f.path }

type stdin struct{ r io.Reader }

// Stdin reads the process standard input.
func Stdin() Source { return stdin{r: os.Stdin} }

// Reader wraps an arbitrary reader, mostly for tests.
func Reader(r io.Reader) Source { return stdin{r: r} }

func (s stdin) Open(context.Context) (io.ReadCloser, error) {
	return io.NopCloser(s.r), nil
}

func (s stdin) String() string { return "stdin" }

type command struct{ cmdline string }

// Command runs cmdline through sh -c and reads its stdout.
func Command(cmdline string) Source { return command{cmdline: cmdline} }

func (c command) Open(ctx context.Context) (io.ReadCloser, error) {
	cmd := exec.CommandContext(ctx, "sh", "-c", c.cmdline)
	cmd.Stdin = nil
	stderr := &tail{limit: stderrLimit}
	cmd.Stderr = stderr
	out, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("pipe command output: %w", err)
	}
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("start command %q: %w", c.cmdline, err)
	}
	return &process{ReadCloser: out, cmd: cmd, stderr: stderr}, nil
}

func (c command) String() string { return c.cmdline }

// process closes the pipe and reaps the child. A failing child's last
// stderr line goes into the error.
type process struct {
	io.ReadCloser
	cmd    *exec.Cmd
	stderr *tail
}

func (p *process) Close() error {
	closeErr := p.ReadCloser.Close()
	if err := p.cmd.Wait(); err != nil {
		if msg := p.stderr.lastLine(); msg != "" {
			return fmt.Errorf("wait command: %w: %s", err, msg)
		}
		return fmt.Errorf("wait command: %w", err)
	}
	return closeErr
}

// tail keeps the last limit bytes written to it. exec.Cmd copies stderr
// from a single goroutine and Wait returns only after the copy ends.
type tail struct {
	limit int
	buf   []byte
}

func (t *tail) Write(p []byte) (int, error) {
	t.buf = append(t.buf, p...)
	if over := len(t.buf) - t.limit; over > 0 {
		t.buf = append(t.buf[:0], t.buf[over:]...)
	}
	return len(p), nil
}

func (t *tail) lastLine() string {
	text := strings.TrimSpace(string(t.buf))
	if i := strings.LastIndexByte(text, '\n'); i >= 0 {
		text = strings.TrimSpace(text[i+1:])
	}
	return text
}
