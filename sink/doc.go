// Package sink defines the Sink interface, the boundary through which
// the encoder hands off finished log lines, and its built-in
// implementations.
//
// A Sink receives exactly one bounded line per Emit call and must write
// it as a single logical operation. The encoder places no ordering
// requirement on concurrent emissions beyond that per-call atomicity.
//
// Built-in sinks:
//
//   - Writer wraps any io.Writer and serializes concurrent emitters
//     with a mutex, writing each line in one Write call.
//   - Syslog forwards lines to the local system log facility.
//   - Func adapts a plain function, which is handy in tests.
//   - Discard drops everything.
//
// The zapsink subpackage adapts a zapcore.Core, so applications that
// already ship zap output can route fixed-format lines through the
// same cores.
package sink
