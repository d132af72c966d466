// Package logger is the public API of fixline. Most users only need to
// import this package.
//
// A Logger ties the verbosity gate, the fixed-format entry encoder and
// a sink together. It is immutable after construction apart from the
// gate threshold, which lives behind an atomic, so Loggers are safe for
// concurrent use without locking on the logging path.
//
// The package initializes a default Logger (InfoLevel, standard error)
// in init(). The package-level functions Errorf, Infof, LogExtf, etc.
// delegate to this default instance, so simple programs can log
// without any setup:
//
//	logger.Infof("link %s", state)
//
// For custom configuration, use the Builder:
//
//	log := logger.NewBuilder().
//	    WithSink(mySink).
//	    WithVerbosity(logger.DebugLevel).
//	    Build()
//
// Each call captures its own source location and emits at most one
// bounded line. Level checks happen before the caller lookup and before
// any buffer work, so filtered-out messages cost a single atomic load
// and comparison.
//
// Process lifecycle, persistent line storage and the console dump
// command are collaborator interfaces (Lifecycle, Persistor,
// Commander); the logger relays their calls and mandates no behavior
// for them.
package logger
