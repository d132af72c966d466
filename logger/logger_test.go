package logger

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/fixline/fixline/core"
	"github.com/fixline/fixline/encoder"
	"github.com/fixline/fixline/sink"
)

// recorder collects emitted lines for assertions.
type recorder struct {
	lines []string
}

func (r *recorder) Emit(line string) error {
	r.lines = append(r.lines, line)
	return nil
}

func TestLogger_LevelGate(t *testing.T) {
	rec := &recorder{}
	log := NewBuilder().
		WithSink(rec).
		WithVerbosity(WarningLevel).
		Build()

	// Less severe than the threshold: nothing reaches the sink
	log.Debugf("debug message")
	log.Infof("info message")
	if len(rec.lines) != 0 {
		t.Errorf("Messages below threshold were emitted: %v", rec.lines)
	}

	// At least as severe: exactly one line each
	log.Warningf("warn message")
	log.Errorf("error message")
	if len(rec.lines) != 2 {
		t.Fatalf("Expected 2 lines, got %d", len(rec.lines))
	}
	if !strings.HasSuffix(rec.lines[0], "warn message") {
		t.Errorf("Expected 'warn message' at end of line, got: %s", rec.lines[0])
	}
	if !strings.HasSuffix(rec.lines[1], "error message") {
		t.Errorf("Expected 'error message' at end of line, got: %s", rec.lines[1])
	}
}

func TestLogger_CallerCapture(t *testing.T) {
	rec := &recorder{}
	log := NewBuilder().
		WithSink(rec).
		WithVerbosity(InfoLevel).
		Build()

	log.Infof("where am I")

	if len(rec.lines) != 1 {
		t.Fatalf("Expected 1 line, got %d", len(rec.lines))
	}
	header := rec.lines[0][:encoder.HeaderLen]
	if !strings.Contains(header, "logger_test.go") {
		t.Errorf("Header %q missing the caller's file", header)
	}
	if !strings.Contains(header, "TestLogger_CallerCapture") {
		t.Errorf("Header %q missing the caller's function", header)
	}
}

func TestLogger_Logf(t *testing.T) {
	rec := &recorder{}
	log := NewBuilder().
		WithSink(rec).
		WithVerbosity(DebugLevel).
		Build()

	log.Logf(WarningLevel, "count %d", 3)

	if len(rec.lines) != 1 {
		t.Fatalf("Expected 1 line, got %d", len(rec.lines))
	}
	if !strings.Contains(rec.lines[0][:encoder.HeaderLen], "WARNING") {
		t.Errorf("Header missing WARNING level: %s", rec.lines[0])
	}
	if !strings.HasSuffix(rec.lines[0], "count 3") {
		t.Errorf("Expected 'count 3' at end of line, got: %s", rec.lines[0])
	}
}

func TestLogger_Extended(t *testing.T) {
	rec := &recorder{}
	log := NewBuilder().
		WithSink(rec).
		WithVerbosity(InfoLevel).
		Build()

	log.LogExtf(InfoLevel, "eth0", "link %s", "up")

	if len(rec.lines) != 1 {
		t.Fatalf("Expected 1 line, got %d", len(rec.lines))
	}
	field := rec.lines[0][encoder.HeaderLen : encoder.HeaderLen+encoder.SubsystemFieldLen]
	if field != "[eth0"+strings.Repeat(" ", encoder.SubsystemWidth-4)+"]" {
		t.Errorf("Subsystem field = %q", field)
	}
	if !strings.HasSuffix(rec.lines[0], "link up") {
		t.Errorf("Expected 'link up' at end of line, got: %s", rec.lines[0])
	}
}

func TestLogger_LogAt(t *testing.T) {
	rec := &recorder{}
	log := NewBuilder().
		WithSink(rec).
		WithVerbosity(DebugLevel).
		Build()

	loc := core.SourceLocation{File: "net.c", Line: 42, Function: "doSend"}
	log.LogAt(loc, ErrorLevel, "failed: %d", 7)
	log.LogExtAt(loc, ErrorLevel, "plc0", "failed: %d", 8)

	if len(rec.lines) != 2 {
		t.Fatalf("Expected 2 lines, got %d", len(rec.lines))
	}
	for _, line := range rec.lines {
		if !strings.Contains(line[:encoder.HeaderLen], "[00042]") {
			t.Errorf("Header missing [00042]: %s", line)
		}
	}
}

func TestLogger_Verbosity(t *testing.T) {
	log := NewBuilder().WithVerbosity(ErrorLevel).Build()

	if got := log.Verbosity(); got != ErrorLevel {
		t.Errorf("Verbosity() = %v, want ErrorLevel", got)
	}

	log.SetVerbosity(DebugLevel)
	if got := log.Verbosity(); got != DebugLevel {
		t.Errorf("Verbosity() = %v after SetVerbosity(DebugLevel)", got)
	}
}

func TestLogger_NoSink(t *testing.T) {
	log := NewBuilder().WithVerbosity(DebugLevel).Build()

	// Builds with the discard sink; logging must not panic
	log.Infof("into the void")
}

// fakeLifecycle records Start/Stop calls.
type fakeLifecycle struct {
	started int
	stopped int
	err     error
}

func (f *fakeLifecycle) Start() error { f.started++; return f.err }
func (f *fakeLifecycle) Stop()        { f.stopped++ }

// fakePersistor records the forwarded configuration.
type fakePersistor struct {
	dest string
	cfg  PersistenceConfig
	dump string
}

func (f *fakePersistor) Configure(dest string, cfg PersistenceConfig) error {
	f.dest = dest
	f.cfg = cfg
	return nil
}

func (f *fakePersistor) Dump(w io.Writer) error {
	_, err := io.WriteString(w, f.dump)
	return err
}

func TestLogger_StartForwardsPersistenceConfig(t *testing.T) {
	lc := &fakeLifecycle{}
	p := &fakePersistor{dump: "old line\n"}
	cfg := Config{
		Destination: "engine",
		Verbosity:   InfoLevel,
		Persistence: PersistenceConfig{
			OutputFolder: "/var/log/engine",
			MaxLines:     5000,
			Verbosity:    DebugLevel,
			Circular:     true,
		},
	}

	log := NewBuilder().
		WithConfig(cfg).
		WithLifecycle(lc).
		WithPersistor(p).
		Build()

	if err := log.Start(); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	if lc.started != 1 {
		t.Errorf("Lifecycle started %d times, want 1", lc.started)
	}
	if p.dest != "engine" {
		t.Errorf("Persistor destination = %q, want engine", p.dest)
	}
	if p.cfg != cfg.Persistence {
		t.Errorf("Persistor config = %+v, want %+v", p.cfg, cfg.Persistence)
	}

	var buf bytes.Buffer
	if err := log.Dump(&buf); err != nil {
		t.Fatalf("Dump() error = %v", err)
	}
	if buf.String() != "old line\n" {
		t.Errorf("Dump() wrote %q", buf.String())
	}

	log.Stop()
	if lc.stopped != 1 {
		t.Errorf("Lifecycle stopped %d times, want 1", lc.stopped)
	}
}

func TestLogger_StartLifecycleError(t *testing.T) {
	wantErr := errors.New("thread refused")
	log := NewBuilder().WithLifecycle(&fakeLifecycle{err: wantErr}).Build()

	if err := log.Start(); !errors.Is(err, wantErr) {
		t.Errorf("Start() error = %v, want %v", err, wantErr)
	}
}

func TestLogger_CollaboratorsOptional(t *testing.T) {
	log := NewBuilder().Build()

	if err := log.Start(); err != nil {
		t.Errorf("Start() without collaborators error = %v", err)
	}
	log.Stop()
	if err := log.Dump(io.Discard); err != nil {
		t.Errorf("Dump() without persistor error = %v", err)
	}
	if log.Console(io.Discard, "log") {
		t.Error("Console() without commander must report false")
	}
}

// fakeCommander recognizes a single command name.
type fakeCommander struct{ seen []string }

func (f *fakeCommander) Command(w io.Writer, args []string) bool {
	f.seen = args
	if len(args) > 0 && args[0] == "log" {
		io.WriteString(w, "dumped")
		return true
	}
	return false
}

func TestLogger_Console(t *testing.T) {
	c := &fakeCommander{}
	log := NewBuilder().WithCommander(c).Build()

	var buf bytes.Buffer
	if !log.Console(&buf, "log", "all") {
		t.Error("Console() = false for a recognized command")
	}
	if buf.String() != "dumped" {
		t.Errorf("Console output = %q", buf.String())
	}
	if len(c.seen) != 2 || c.seen[0] != "log" || c.seen[1] != "all" {
		t.Errorf("Commander received %v", c.seen)
	}

	if log.Console(&buf, "bogus") {
		t.Error("Console() = true for an unknown command")
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
	}{
		{"error", ErrorLevel},
		{"ERROR", ErrorLevel},
		{"warning", WarningLevel},
		{"warn", WarningLevel},
		{"info", InfoLevel},
		{"debug", DebugLevel},
		{"bogus", InfoLevel},
	}

	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestDefault_PackageFunctions(t *testing.T) {
	rec := &recorder{}
	old := Default()
	SetDefault(NewBuilder().WithSink(rec).WithVerbosity(DebugLevel).Build())
	defer SetDefault(old)

	Infof("through the default")

	if len(rec.lines) != 1 {
		t.Fatalf("Expected 1 line, got %d", len(rec.lines))
	}
	header := rec.lines[0][:encoder.HeaderLen]
	if !strings.Contains(header, "logger_test.go") {
		t.Errorf("Package-level call captured wrong file: %q", header)
	}

	Debugf("debug %d", 1)
	Warningf("warn")
	Errorf("err")
	LogExtf(InfoLevel, "drv", "x")
	Logf(InfoLevel, "y")
	if len(rec.lines) != 6 {
		t.Errorf("Expected 6 lines total, got %d", len(rec.lines))
	}

	SetVerbosity(ErrorLevel)
	if Verbosity() != ErrorLevel {
		t.Errorf("Verbosity() = %v after SetVerbosity", Verbosity())
	}
	Infof("filtered now")
	if len(rec.lines) != 6 {
		t.Errorf("Filtered call emitted a line")
	}
}

func TestLogger_FallbackOnAllocFailure(t *testing.T) {
	rec := &recorder{}
	var diag bytes.Buffer
	log := NewBuilder().
		WithSink(rec).
		WithVerbosity(DebugLevel).
		WithEncoderOptions(
			encoder.WithFallback(&diag),
			encoder.WithAllocator(func(int) []byte { return nil }),
		).
		Build()

	// The logging call itself never fails; the line is simply lost
	log.Errorf("doomed")

	if len(rec.lines) != 0 {
		t.Errorf("Expected no lines, got %d", len(rec.lines))
	}
	if diag.Len() == 0 {
		t.Error("Expected a fallback diagnostic")
	}
}

var _ sink.Sink = (*recorder)(nil)
