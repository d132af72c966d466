package sink

import "go.uber.org/multierr"

// Multi fans each line out to several sinks. Every child receives the
// line even when an earlier one fails; the errors are combined.
type Multi struct {
	sinks []Sink
}

// NewMulti creates a Multi over the given sinks.
func NewMulti(sinks ...Sink) *Multi {
	return &Multi{sinks: sinks}
}

// Emit forwards line to all child sinks.
func (m *Multi) Emit(line string) error {
	var err error
	for _, s := range m.sinks {
		err = multierr.Append(err, s.Emit(line))
	}
	return err
}
