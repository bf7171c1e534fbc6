// Package config centralizes the CLI-configurable knobs of cmd/sexpjit,
// grounded on bfcc's functional-option VM construction
// (internal/vm/vm.go WithOutput/WithInput/WithEOFBehavior) generalized
// into a single flag-populated struct rather than a variadic option list,
// since cmd/sexpjit has exactly one configuration source (the command
// line) rather than needing to be embeddable with options from multiple
// call sites.
package config

import (
	"flag"
	"log/slog"
)

// Config holds every value cmd/sexpjit derives from its flags.
type Config struct {
	// File is the source file to compile and run. Required.
	File string
	// Trace enables compile-time and runtime trace-event logging.
	Trace bool
	// Verbose lowers the minimum log level to debug.
	Verbose bool
}

// RegisterFlags registers Config's fields onto fs and returns a function
// that, once fs.Parse has run, yields the populated Config. Grounded on
// bfcc's cmd/bfcc/main.go flag.NewFlagSet-per-subcommand pattern.
func RegisterFlags(fs *flag.FlagSet) func() Config {
	trace := fs.Bool("trace", false, "log compile-time and runtime trace events")
	verbose := fs.Bool("v", false, "enable debug-level logging")

	return func() Config {
		cfg := Config{Trace: *trace, Verbose: *verbose}
		if fs.NArg() == 1 {
			cfg.File = fs.Arg(0)
		}
		return cfg
	}
}

// LogLevel returns the slog.Level RegisterFlags' -v and -trace imply.
// Trace events are logged at debug level, so -trace also selects debug.
func (c Config) LogLevel() slog.Level {
	if c.Verbose || c.Trace {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}
