// Package zapsink adapts a zapcore.Core to the sink.Sink interface.
// Applications that already ship zap output can route fixed-format
// control-plane lines through the same cores and write syncers.
package zapsink

import (
	"time"

	"go.uber.org/zap/zapcore"
)

// Sink emits every line as one zapcore entry. The finished line,
// severity field included, becomes the entry message unchanged; the
// zap-side level is always informational because the verbosity gate has
// already run on the fixline side.
type Sink struct {
	core zapcore.Core
}

// New creates a Sink backed by core.
func New(core zapcore.Core) *Sink {
	return &Sink{core: core}
}

// Emit writes one line as a single zap entry.
func (s *Sink) Emit(line string) error {
	ent := zapcore.Entry{
		Time:    time.Now(),
		Level:   zapcore.InfoLevel,
		Message: line,
	}
	if ce := s.core.Check(ent, nil); ce != nil {
		ce.Write()
	}
	return nil
}

// Sync flushes the underlying core.
func (s *Sink) Sync() error {
	return s.core.Sync()
}
