//go:build amd64

package builtin

import (
	"fmt"
	"io"
	"reflect"
	"strconv"
	"unsafe"

	"github.com/lcox74/sexpjit/compile/native"
	"github.com/lcox74/sexpjit/object"
)

// Process-wide configuration for the print built-in. Emitted code passes
// built-ins only RDI/RSI/RDX (the stack pointer, region pointer, and the
// push_immediate index), so this lives in a package-level variable
// instead.
var (
	output     io.Writer = nil
	traceEvent func(event string, fields ...any)
)

func setOutput(w io.Writer) { output = w }

// The four functions below are declared without a body here and defined in
// native_amd64.s. Each is the native entry point reached by an indirect
// CALL from emitted code: on entry RDI holds the evaluation stack pointer
// and RSI the owning Region pointer, preserved across every call.
// builtinAddEntry/builtinMulEntry/builtinPrintEntry additionally receive
// no other arguments (their arity is satisfied entirely by popping the
// already-pushed operands off the stack); pushImmediateEntry additionally
// receives the immediate index in RDX.
//
// Each is a thin ABI bridge: it forwards the raw SysV-convention register
// state into a normal Go function call using Go's own (stack-based ABI0)
// calling convention, the same bridging pattern used throughout the Go
// runtime's own assembly entry points (e.g. runtime/sys_linux_amd64.s) to
// adapt a foreign calling convention at a CALL boundary.
func builtinAddEntry()
func builtinMulEntry()
func builtinPrintEntry()
func pushImmediateEntry()

func builtinAddEntryAddr() uintptr    { return reflect.ValueOf(builtinAddEntry).Pointer() }
func builtinMulEntryAddr() uintptr    { return reflect.ValueOf(builtinMulEntry).Pointer() }
func builtinPrintEntryAddr() uintptr  { return reflect.ValueOf(builtinPrintEntry).Pointer() }
func pushImmediateEntryAddr() uintptr { return reflect.ValueOf(pushImmediateEntry).Pointer() }

// goAdd implements "+": pops the top two elements, parses each as a
// signed decimal integer, pushes their sum as a decimal-formatted Atom.
// Parse failures panic with ErrType; Region.Invoke recovers it at the
// invocation boundary and returns it as an ordinary error.
func goAdd(stackPtr unsafe.Pointer) {
	s := (*object.Stack)(stackPtr)
	b := popInt(s, "+")
	a := popInt(s, "+")
	s.Push(object.Atom(strconv.FormatInt(a+b, 10)))
}

// goMul implements "*": same as goAdd but multiplicative.
func goMul(stackPtr unsafe.Pointer) {
	s := (*object.Stack)(stackPtr)
	b := popInt(s, "*")
	a := popInt(s, "*")
	s.Push(object.Atom(strconv.FormatInt(a*b, 10)))
}

// goPrint implements "print": writes the top element's textual form
// followed by a newline, leaving the element in place so the overall
// expression still evaluates to it.
func goPrint(stackPtr unsafe.Pointer) {
	s := (*object.Stack)(stackPtr)
	top := s.Top()
	if output != nil {
		fmt.Fprintf(output, "%s\n", printForm(top))
	}
	if traceEvent != nil {
		traceEvent("print", "value", printForm(top))
	}
}

// goPushImmediate implements the hidden push_immediate built-in: pushes
// region.Immediate(index) onto the stack. This is the sole path by which
// literal atoms reach the runtime, since emitted code never embeds a live
// Go string pointer directly as an instruction immediate — doing so would
// be invisible to the garbage collector, which does not scan executable
// JIT memory for roots.
func goPushImmediate(stackPtr, regionPtr unsafe.Pointer, index uint32) {
	s := (*object.Stack)(stackPtr)
	r := (*native.Region)(regionPtr)
	s.Push(r.Immediate(index))
}

func popInt(s *object.Stack, op string) int64 {
	a := s.Pop()
	n, err := strconv.ParseInt(a.AtomValue(), 10, 64)
	if err != nil {
		panic(ErrType{Operator: op, Atom: a.AtomValue()})
	}
	return n
}

// printForm renders o in the same surface syntax reader.Format produces,
// without importing the reader package. Lists reach it when print's
// argument is a literal list pushed as an immediate.
func printForm(o object.Object) string {
	if o.IsAtom() {
		return o.AtomValue()
	}
	s := "(" + o.Operator()
	for i, child := range o.Children() {
		if i > 0 || o.Operator() != "" {
			s += " "
		}
		s += printForm(child)
	}
	return s + ")"
}
