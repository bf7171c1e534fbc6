// Package jit is the host-facing trampoline/façade: a single
// Compile-then-Run entry point that hides the Built-in Table, Code
// Generator, and Executable Memory Region behind two calls, the same
// shape wagon's VM.tryNativeCompile/nativeBackend dispatch gives callers
// over its own native-compile machinery.
package jit

import (
	"io"

	"github.com/lcox74/sexpjit/builtin"
	"github.com/lcox74/sexpjit/compile"
	"github.com/lcox74/sexpjit/compile/native"
	"github.com/lcox74/sexpjit/object"
)

// Options configures a Program at compile time. Output and Trace are
// forwarded verbatim to builtin.Options.
type Options struct {
	Output io.Writer
	Trace  func(event string, fields ...any)
}

// Program is a compiled, runnable S-expression program: a Region paired
// with the Stats of its compilation. Run needs no further arguments.
type Program struct {
	region *native.Region
	stats  compile.Stats
}

// Compile builds a fresh Built-in Table, then runs the Code Generator over
// root. Each call gets its own Table, but the print built-in's output
// writer and trace hook are process-wide: the most recent Compile's Output
// and Trace apply to the print calls of every Program.
func Compile(root object.Object, opts Options) (*Program, error) {
	table := builtin.NewTable(builtin.Options{
		Output: opts.Output,
		Trace:  opts.Trace,
	})

	region, stats, err := compile.Generate(root, table)
	if err != nil {
		return nil, err
	}
	return &Program{region: region, stats: stats}, nil
}

// Run invokes the compiled program once. Programs may be run more than
// once; each invocation starts with a fresh empty evaluation stack. A
// runtime error from a built-in (see builtin.ErrType) is returned here
// rather than crashing the process; the Program remains usable afterward.
func (p *Program) Run() (object.Object, error) {
	return p.region.Invoke()
}

// Stats reports the shape of the compiled program.
func (p *Program) Stats() compile.Stats {
	return p.stats
}

// Close releases the underlying Executable Memory Region. Programs are not
// usable after Close.
func (p *Program) Close() error {
	return p.region.Close()
}
