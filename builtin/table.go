// Package builtin implements the Built-in Table: an enumerated, read-only
// mapping from operator atom to a native-callable descriptor, plus the
// hidden push_immediate built-in that is the sole path by which literal
// atoms reach the runtime.
//
// The table of names, arities, and native entry addresses is built once
// per Table and exposed by reference, the same one-shot construction
// pattern wagon uses for its own backend registry.
package builtin

import (
	"fmt"
	"io"
	"os"
)

// Descriptor describes one built-in operator: its declared arity and the
// address of its native entry point, reachable via an indirect CALL from
// emitted code under the System V AMD64 calling convention.
type Descriptor struct {
	Name  string
	Arity int
	entry uintptr
}

// Address returns the native entry point's address, suitable for embedding
// as an 8-byte immediate operand ahead of an indirect CALL.
func (d Descriptor) Address() uintptr { return d.entry }

// Table is the read-only operator -> Descriptor mapping plus the hidden
// push_immediate descriptor used to materialize literal atoms.
type Table struct {
	byName  map[string]Descriptor
	pushImm Descriptor
	trace   func(event string, fields ...any)
}

// Options configures a Table. Output defaults to os.Stdout; Trace, when
// set, receives state-machine and call-site events emitted by
// compile.Generate and the print built-in — grounded on bfcc's
// functional-option VM construction (internal/vm/vm.go
// WithOutput/WithInput) generalized to a tracing hook.
type Options struct {
	Output io.Writer
	Trace  func(event string, fields ...any)
}

// NewTable constructs the Built-in Table. The output writer is
// process-wide configuration, so it is stored in a package-level variable
// rather than threaded through the native call path, which carries only
// the stack pointer, region pointer, and any built-in-specific argument.
// Every NewTable call replaces the previous output writer and trace hook.
func NewTable(opts Options) *Table {
	out := opts.Output
	if out == nil {
		out = os.Stdout
	}
	setOutput(out)
	traceEvent = opts.Trace

	t := &Table{
		byName: map[string]Descriptor{
			"+":     {Name: "+", Arity: 2, entry: builtinAddEntryAddr()},
			"*":     {Name: "*", Arity: 2, entry: builtinMulEntryAddr()},
			"print": {Name: "print", Arity: 1, entry: builtinPrintEntryAddr()},
		},
		pushImm: Descriptor{Name: "push_immediate", Arity: 3, entry: pushImmediateEntryAddr()},
		trace:   opts.Trace,
	}
	return t
}

// Lookup resolves an operator atom to its Descriptor. The second return
// value is false when the name is not in the table; the caller (the code
// generator) turns that into an ErrUnknownOperator.
func (t *Table) Lookup(name string) (Descriptor, bool) {
	d, ok := t.byName[name]
	return d, ok
}

// PushImmediate returns the hidden push_immediate descriptor used by the
// code generator to materialize literal atoms.
func (t *Table) PushImmediate() Descriptor {
	return t.pushImm
}

// Trace forwards a compile-time state-machine event to the configured
// trace hook, if any. Used by compile.Generate to report frame transitions
// without imposing a logging dependency on the code generator itself.
func (t *Table) Trace(event string, fields ...any) {
	if t.trace != nil {
		t.trace(event, fields...)
	}
}

// ErrUnknownOperator reports that a List's operator has no entry in the
// table.
type ErrUnknownOperator struct {
	Name string
}

func (e ErrUnknownOperator) Error() string {
	return fmt.Sprintf("unknown operator %q", e.Name)
}

// ErrArityMismatch reports that a List's child count doesn't match its
// operator's declared arity.
type ErrArityMismatch struct {
	Name string
	Want int
	Got  int
}

func (e ErrArityMismatch) Error() string {
	return fmt.Sprintf("operator %q expects %d argument(s), got %d", e.Name, e.Want, e.Got)
}

// ErrType is raised by a built-in at runtime when an atom fails to parse
// as the type it expects, e.g. a non-numeric argument to "+". Built-ins
// panic with this type rather than threading an error return through the
// native call path; Region.Invoke recovers it at the invocation boundary
// and returns it as an ordinary error.
type ErrType struct {
	Operator string
	Atom     string
}

func (e ErrType) Error() string {
	return fmt.Sprintf("%s: atom %q is not a valid signed decimal integer", e.Operator, e.Atom)
}
