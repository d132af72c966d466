package encoder

import (
	"time"

	"github.com/fixline/fixline/core"
)

// Header is the fixed-width prefix of an entry: level, file, line,
// function and wall-clock timestamp. Each field is padded or truncated
// to its width independently, so serialization always yields exactly
// HeaderLen bytes and downstream code can find the end of the header by
// offset instead of scanning.
type Header struct {
	Level    core.Level
	Location core.SourceLocation
	Time     time.Time
}

// AppendTo serializes the header, appending exactly HeaderLen bytes to
// dst. Missing fields render blank; it never fails.
func (h Header) AppendTo(dst []byte) []byte {
	dst = appendFieldRight(dst, h.Level.String(), LevelWidth)
	dst = appendFieldRight(dst, h.Location.File, FileWidth)
	dst = appendLineNumber(dst, h.Location.Line)
	dst = appendFieldRight(dst, h.Location.Function, FuncWidth)
	return appendStamp(dst, h.Time)
}

// appendFieldRight appends s right-justified in a bracketed field of
// the given width, silently truncating when s is longer.
func appendFieldRight(dst []byte, s string, width int) []byte {
	if len(s) > width {
		s = s[:width]
	}
	dst = append(dst, '[')
	for i := 0; i < width-len(s); i++ {
		dst = append(dst, ' ')
	}
	dst = append(dst, s...)
	return append(dst, ']')
}

// appendLineNumber appends the bracketed zero-padded line number,
// wrapping values that exceed the LineWidth-digit display range. The
// field is display-only and deliberately lossy.
func appendLineNumber(dst []byte, line uint) []byte {
	dst = append(dst, '[')
	dst = appendZeroPad(dst, int(line%lineModulus), LineWidth)
	return append(dst, ']')
}

// appendStamp appends the bracketed "[hh:mm:ss 042ms]"-shaped suffix.
// Milliseconds are clamped to 999 so the field never grows a fourth
// digit even if the clock reports a full second of nanoseconds.
func appendStamp(dst []byte, t time.Time) []byte {
	hh, mm, ss := t.Clock()
	ms := t.Nanosecond() / int(time.Millisecond)
	if ms > 999 {
		ms = 999
	}

	dst = append(dst, '[')
	dst = appendZeroPad(dst, hh, 2)
	dst = append(dst, ':')
	dst = appendZeroPad(dst, mm, 2)
	dst = append(dst, ':')
	dst = appendZeroPad(dst, ss, 2)
	dst = append(dst, ' ')
	dst = appendZeroPad(dst, ms, 3)
	return append(dst, 'm', 's', ']')
}

// appendZeroPad appends v as a zero-padded decimal of exactly width
// digits. Callers keep v within the field's range.
func appendZeroPad(dst []byte, v, width int) []byte {
	var buf [LineWidth]byte
	for i := width - 1; i >= 0; i-- {
		buf[i] = byte('0' + v%10)
		v /= 10
	}
	return append(dst, buf[:width]...)
}
