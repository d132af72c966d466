package encoder

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fixline/fixline/core"
	"github.com/fixline/fixline/sink"
)

// ErrNoBuffer reports that an entry buffer could not be obtained. Only
// the affected call is abandoned; subsequent calls are unaffected.
var ErrNoBuffer = errors.New("encoder: no buffer for log entry")

// Encoder builds bounded fixed-format log lines and forwards them to a
// sink. Every entry is assembled in a buffer local to the call, so the
// encoder needs no locking of its own; the only cross-call state it
// touches is the verbosity threshold inside the Gate.
type Encoder struct {
	gate     *core.Gate
	sink     sink.Sink
	now      func() time.Time
	alloc    func(n int) []byte
	fallback io.Writer
}

// Option configures an Encoder.
type Option func(*Encoder)

// WithClock overrides the wall-clock source, e.g. core.CoarseNow for
// high-rate callers or a fixed clock in tests.
func WithClock(now func() time.Time) Option {
	return func(e *Encoder) { e.now = now }
}

// WithAllocator overrides the entry buffer allocator. An allocator may
// return nil to signal failure; the encoder then prints a diagnostic on
// the fallback writer and abandons that single call.
func WithAllocator(alloc func(n int) []byte) Option {
	return func(e *Encoder) { e.alloc = alloc }
}

// WithFallback sets the writer for the encoder's own diagnostics,
// used when the regular path cannot produce a line (default os.Stderr).
func WithFallback(w io.Writer) Option {
	return func(e *Encoder) { e.fallback = w }
}

// New creates an Encoder gated by g that emits finished lines to s.
func New(g *core.Gate, s sink.Sink, opts ...Option) *Encoder {
	e := &Encoder{
		gate:     g,
		sink:     s,
		now:      time.Now,
		alloc:    func(n int) []byte { return make([]byte, 0, n) },
		fallback: os.Stderr,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// EncodePlain builds one plain entry and hands it to the sink. When
// level does not pass the gate the call returns immediately without
// touching a buffer; that is the dominant fast path. The emitted line
// is the fixed HeaderLen-byte header followed by the formatted message,
// truncated to MessageWidth.
func (e *Encoder) EncodePlain(loc core.SourceLocation, level core.Level, format string, args ...any) error {
	if !e.gate.Allow(level) {
		return nil
	}

	buf := e.alloc(MaxEntryLen)
	if buf == nil {
		e.errorf("no memory to allocate log entry (%d bytes)", MaxEntryLen)
		return ErrNoBuffer
	}

	buf = Header{Level: level, Location: loc, Time: e.now()}.AppendTo(buf)
	buf = appendBoundedMessage(buf, format, args...)

	return e.sink.Emit(string(buf))
}

// EncodeExtended builds one entry with a subsystem identifier field
// inserted between the header and the message body. The emitted line is
// bounded by MaxExtEntryLen.
func (e *Encoder) EncodeExtended(loc core.SourceLocation, level core.Level, subsystem, format string, args ...any) error {
	if !e.gate.Allow(level) {
		return nil
	}

	buf := e.alloc(MaxExtEntryLen)
	if buf == nil {
		e.errorf("no memory to allocate log entry (%d bytes)", MaxExtEntryLen)
		return ErrNoBuffer
	}

	buf = Header{Level: level, Location: loc, Time: e.now()}.AppendTo(buf)
	buf = appendSubsystem(buf, subsystem)
	buf = appendBoundedMessage(buf, format, args...)

	return e.sink.Emit(string(buf))
}

// errorf prints a diagnostic for faults inside the encoder itself.
func (e *Encoder) errorf(format string, args ...any) {
	fmt.Fprintf(e.fallback, format+"\n", args...)
}

// appendSubsystem appends the bracketed subsystem field: at most
// SubsystemWidth-1 characters of id, left-justified and padded to
// SubsystemWidth. The copy never reads past the identifier itself.
func appendSubsystem(dst []byte, id string) []byte {
	if len(id) > SubsystemWidth-1 {
		id = id[:SubsystemWidth-1]
	}
	dst = append(dst, '[')
	dst = append(dst, id...)
	for i := 0; i < SubsystemWidth-len(id); i++ {
		dst = append(dst, ' ')
	}
	return append(dst, ']')
}

// appendBoundedMessage formats the message into the remaining budget,
// truncating rather than overflowing when the rendering exceeds
// MessageWidth.
func appendBoundedMessage(dst []byte, format string, args ...any) []byte {
	mark := len(dst)
	dst = fmt.Appendf(dst, format, args...)
	if len(dst)-mark > MessageWidth {
		dst = dst[:mark+MessageWidth]
	}
	return dst
}
