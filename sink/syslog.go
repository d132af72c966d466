//go:build !windows && !plan9 && !js

package sink

import "log/syslog"

// Syslog forwards lines to the local system log facility, one line per
// syslog record. Every record is written at the informational priority:
// severity is already rendered inside the line's level field, and the
// verbosity gate has run before a line reaches the sink.
type Syslog struct {
	w *syslog.Writer
}

// NewSyslog connects to the system log using tag as the record tag.
func NewSyslog(tag string) (*Syslog, error) {
	w, err := syslog.New(syslog.LOG_INFO|syslog.LOG_DAEMON, tag)
	if err != nil {
		return nil, err
	}
	return &Syslog{w: w}, nil
}

// Emit writes one line as a single syslog record.
func (s *Syslog) Emit(line string) error {
	return s.w.Info(line)
}

// Close releases the connection to the system log.
func (s *Syslog) Close() error {
	return s.w.Close()
}
