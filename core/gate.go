package core

import "sync/atomic"

// Gate holds the process-wide verbosity threshold and decides whether an
// entry at a given level is worth building at all.
//
// The threshold is written once during startup and read by every logging
// call from any goroutine afterwards. It is stored atomically so that a
// reader racing a Configure observes either the old or the new value,
// never a torn one.
type Gate struct {
	threshold atomic.Int32
}

// NewGate creates a Gate with the given initial threshold.
func NewGate(level Level) *Gate {
	g := &Gate{}
	g.Configure(level)
	return g
}

// Configure sets the verbosity threshold.
func (g *Gate) Configure(level Level) {
	g.threshold.Store(int32(level))
}

// Allow reports whether a message at the requested level passes the
// threshold. Lower values are more severe, so a message passes when its
// level is numerically at most the configured threshold. An out-of-range
// level is simply filtered, never reported as an error.
func (g *Gate) Allow(level Level) bool {
	if !level.Valid() {
		return false
	}
	return level <= g.Level()
}

// Level returns the current verbosity threshold.
func (g *Gate) Level() Level {
	return Level(g.threshold.Load())
}
