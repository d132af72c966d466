// Package encoder builds bounded, field-aligned log lines.
//
// A line starts with a fixed-width header carrying the level display
// name, source file, zero-padded line number, function name and a
// bracketed wall-clock timestamp. The header serializes to exactly
// HeaderLen bytes for every input: short fields are padded, long fields
// are silently truncated, and missing fields render blank. Extended
// entries insert one more fixed-width field, the subsystem identifier,
// between the header and the message.
//
// The message body is rendered with fmt verbs into the remaining
// budget and truncated at MessageWidth. Truncation across all fields is
// a deliberate lossy-display policy, not an error: the worst observable
// effect of any failure in this package is a missing or shortened line.
//
// The severity gate runs before any buffer is touched, so a filtered
// call costs a single atomic load. Each allowed call assembles its
// line in a call-local buffer and hands it to the sink in one Emit.
package encoder
