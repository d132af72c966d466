package benchmark

import "sync/atomic"

// countingSink counts emitted lines without retaining them, so
// benchmarks pay the encoding cost but not a sink cost.
type countingSink struct {
	n atomic.Uint64
}

func (s *countingSink) Emit(line string) error {
	_ = len(line)
	s.n.Add(1)
	return nil
}
