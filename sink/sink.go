package sink

import (
	"io"
	"sync"
)

// Sink is the line-consumption boundary of the encoder. Emit receives
// one finished, bounded log line without a trailing newline and is
// expected to perform the write as a single logical operation; the
// encoder never splits a line across Emit calls.
type Sink interface {
	Emit(line string) error
}

// Func adapts a plain function to the Sink interface.
type Func func(line string) error

// Emit calls f.
func (f Func) Emit(line string) error { return f(line) }

// Discard is a Sink that drops every line.
var Discard Sink = Func(func(string) error { return nil })

// Writer forwards each line, with a trailing newline appended, to an
// io.Writer in exactly one Write call. A mutex serializes concurrent
// emitters, so lines never interleave even when the underlying writer
// is not itself atomic.
type Writer struct {
	mu sync.Mutex
	w  io.Writer
}

// NewWriter creates a Writer sink around w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Emit writes line and a newline in a single Write call.
func (s *Writer) Emit(line string) error {
	buf := make([]byte, 0, len(line)+1)
	buf = append(buf, line...)
	buf = append(buf, '\n')

	s.mu.Lock()
	_, err := s.w.Write(buf)
	s.mu.Unlock()
	return err
}
