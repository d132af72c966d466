package logger

import (
	"io"

	"github.com/fixline/fixline/core"
	"github.com/fixline/fixline/encoder"
	"github.com/fixline/fixline/sink"
)

// Config carries the initialization parameters of the logging
// subsystem. The logger itself consumes only Verbosity; Destination and
// Persistence are forwarded untouched to the collaborators that own
// them.
type Config struct {
	// Destination identifies the log output. It is opaque to the
	// logger and forwarded to the persistence collaborator.
	Destination string
	// Verbosity is the initial process-wide threshold.
	Verbosity core.Level
	// Persistence configures the optional persistent line store.
	Persistence PersistenceConfig
}

// PersistenceConfig describes the persistent log store owned by a
// Persistor collaborator. The logger never interprets these values.
type PersistenceConfig struct {
	// OutputFolder is where the store keeps its files.
	OutputFolder string
	// MaxLines caps the number of retained lines.
	MaxLines uint
	// Verbosity is the retention threshold, which may differ from the
	// live threshold.
	Verbosity core.Level
	// Circular makes the store overwrite its oldest lines when full.
	Circular bool
}

// Lifecycle is implemented by collaborators that run background work
// for the logger, such as a drain goroutine. The logger only relays
// Start and Stop; it mandates no behavior of its own.
type Lifecycle interface {
	Start() error
	Stop()
}

// Persistor is implemented by collaborators that retain emitted lines.
// The logger hands over its persistence configuration on Start and
// relays dump requests; the retention policy is entirely the
// collaborator's.
type Persistor interface {
	Configure(destination string, cfg PersistenceConfig) error
	Dump(w io.Writer) error
}

// Commander is implemented by collaborators that expose the retained
// log through an interactive console command. The return value reports
// whether the command was recognized.
type Commander interface {
	Command(w io.Writer, args []string) bool
}

// Logger is the front end tying the verbosity gate, the entry encoder
// and the sink together. It is immutable apart from the gate threshold.
type Logger struct {
	gate       *core.Gate
	enc        *encoder.Encoder
	callerSkip int
	lifecycle  Lifecycle
	persistor  Persistor
	commander  Commander
	cfg        Config
}

// Builder provides a fluent API for assembling Logger instances
type Builder struct {
	cfg        Config
	sink       sink.Sink
	encOpts    []encoder.Option
	callerSkip int
	lifecycle  Lifecycle
	persistor  Persistor
	commander  Commander
}

// NewBuilder creates a new logger builder
func NewBuilder() *Builder {
	return &Builder{
		cfg:        Config{Verbosity: core.InfoLevel},
		callerSkip: 3, // Default skip down to the user's call site
	}
}

// WithConfig sets the full initialization configuration.
func (b *Builder) WithConfig(cfg Config) *Builder {
	b.cfg = cfg
	return b
}

// WithVerbosity sets the initial verbosity threshold.
func (b *Builder) WithVerbosity(level core.Level) *Builder {
	b.cfg.Verbosity = level
	return b
}

// WithSink sets the sink that receives finished lines.
func (b *Builder) WithSink(s sink.Sink) *Builder {
	b.sink = s
	return b
}

// WithEncoderOptions passes options through to the entry encoder.
func (b *Builder) WithEncoderOptions(opts ...encoder.Option) *Builder {
	b.encOpts = append(b.encOpts, opts...)
	return b
}

// WithLifecycle sets the background-work collaborator.
func (b *Builder) WithLifecycle(lc Lifecycle) *Builder {
	b.lifecycle = lc
	return b
}

// WithPersistor sets the persistent line store collaborator.
func (b *Builder) WithPersistor(p Persistor) *Builder {
	b.persistor = p
	return b
}

// WithCommander sets the console command collaborator.
func (b *Builder) WithCommander(c Commander) *Builder {
	b.commander = c
	return b
}

// Build creates the Logger instance
func (b *Builder) Build() *Logger {
	s := b.sink
	if s == nil {
		s = sink.Discard
	}
	gate := core.NewGate(b.cfg.Verbosity)
	return &Logger{
		gate:       gate,
		enc:        encoder.New(gate, s, b.encOpts...),
		callerSkip: b.callerSkip,
		lifecycle:  b.lifecycle,
		persistor:  b.persistor,
		commander:  b.commander,
		cfg:        b.cfg,
	}
}

// Start forwards the persistence configuration to the persistor and
// starts the lifecycle collaborator. Both are optional; with neither
// set, Start is a no-op.
func (l *Logger) Start() error {
	if l.persistor != nil {
		if err := l.persistor.Configure(l.cfg.Destination, l.cfg.Persistence); err != nil {
			return err
		}
	}
	if l.lifecycle != nil {
		return l.lifecycle.Start()
	}
	return nil
}

// Stop stops the lifecycle collaborator, if any.
func (l *Logger) Stop() {
	if l.lifecycle != nil {
		l.lifecycle.Stop()
	}
}

// Verbosity returns the current threshold.
func (l *Logger) Verbosity() core.Level {
	return l.gate.Level()
}

// SetVerbosity reconfigures the threshold. Concurrent logging calls
// observe either the old or the new value.
func (l *Logger) SetVerbosity(level core.Level) {
	l.gate.Configure(level)
}

// Logf encodes one plain entry at the given level, capturing the caller
// as the source location. It emits zero or one lines.
func (l *Logger) Logf(level core.Level, format string, args ...any) {
	l.logf(level, format, args...)
}

// LogAt encodes one plain entry with an explicit source location.
func (l *Logger) LogAt(loc core.SourceLocation, level core.Level, format string, args ...any) {
	if !l.gate.Allow(level) {
		return
	}
	// A failed emit costs only that line
	_ = l.enc.EncodePlain(loc, level, format, args...)
}

// LogExtf encodes one extended entry carrying a subsystem identifier,
// capturing the caller as the source location.
func (l *Logger) LogExtf(level core.Level, subsystem, format string, args ...any) {
	l.logExtf(level, subsystem, format, args...)
}

// LogExtAt encodes one extended entry with an explicit source location.
func (l *Logger) LogExtAt(loc core.SourceLocation, level core.Level, subsystem, format string, args ...any) {
	if !l.gate.Allow(level) {
		return
	}
	_ = l.enc.EncodeExtended(loc, level, subsystem, format, args...)
}

// Errorf logs a formatted message at the error level
func (l *Logger) Errorf(format string, args ...any) {
	l.logf(core.ErrorLevel, format, args...)
}

// Warningf logs a formatted message at the warning level
func (l *Logger) Warningf(format string, args ...any) {
	l.logf(core.WarningLevel, format, args...)
}

// Infof logs a formatted message at the info level
func (l *Logger) Infof(format string, args ...any) {
	l.logf(core.InfoLevel, format, args...)
}

// Debugf logs a formatted message at the debug level
func (l *Logger) Debugf(format string, args ...any) {
	l.logf(core.DebugLevel, format, args...)
}

// Dump asks the persistor to write its retained lines to w. Without a
// persistor it is a no-op.
func (l *Logger) Dump(w io.Writer) error {
	if l.persistor == nil {
		return nil
	}
	return l.persistor.Dump(w)
}

// Console relays a console command to the commander collaborator. It
// reports false when no commander is set or the command is unknown.
func (l *Logger) Console(w io.Writer, args ...string) bool {
	if l.commander == nil {
		return false
	}
	return l.commander.Command(w, args)
}

// logf is the shared plain path. Every exported entry point sits
// exactly one frame above it, so callerSkip lands on the user's call
// site.
func (l *Logger) logf(level core.Level, format string, args ...any) {
	// Gate before capturing the caller; the filtered path must stay cheap
	if !l.gate.Allow(level) {
		return
	}
	_ = l.enc.EncodePlain(core.Here(l.callerSkip), level, format, args...)
}

// logExtf is the shared extended path.
func (l *Logger) logExtf(level core.Level, subsystem, format string, args ...any) {
	if !l.gate.Allow(level) {
		return
	}
	_ = l.enc.EncodeExtended(core.Here(l.callerSkip), level, subsystem, format, args...)
}
