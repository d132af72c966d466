// Package core defines the shared types used across fixline.
//
// It provides the ordered Level type for severity filtering, the Gate
// that holds the process-wide verbosity threshold, and the
// SourceLocation tuple identifying the call site of a log entry.
//
// Gate stores its threshold behind an atomic value: the threshold is
// written once during startup and read by every logging call from any
// goroutine, and a concurrent reader always observes either the old or
// the new value, never a torn one. Levels compare numerically, with
// lower values more severe, so a message passes the gate exactly when
// its level is at most the configured threshold.
//
// The coarse clock caches time.Now in a background goroutine for
// encoders that log at high rates; cached timestamps lag real time by
// at most the refresh interval.
package core
