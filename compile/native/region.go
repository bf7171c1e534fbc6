package native

import (
	"fmt"
	"unsafe"

	mmap "github.com/edsrzf/mmap-go"

	"github.com/lcox74/sexpjit/object"
)

// Region is the Executable Memory Region: a page-aligned read+execute
// mapping holding the verbatim bytes emitted by the Instruction Emitter,
// plus the Immediates table those bytes reference by index. Regions are
// non-copyable (they hold a raw mmap handle) and must be released via
// Close when no longer needed.
type Region struct {
	mem  mmap.MMap
	size int // bytes actually occupied by the instruction stream, <= len(mem)
	imms *object.Immediates
}

// NewRegion allocates a region whose byte length is the next
// page-boundary multiple of len(code), copies code into its prefix, flips
// permissions to read+execute, and retains imms by shared ownership: the
// table must outlive every call into the region, and Region holds the
// same *object.Immediates the code generator populated, so it stays alive
// exactly as long as the Region does.
func NewRegion(code []byte, imms *object.Immediates) (*Region, error) {
	page, err := pageSize()
	if err != nil {
		return nil, err
	}
	size := alignUp(len(code), page)
	if size == 0 {
		size = page
	}

	mem, err := mapExecutable(size)
	if err != nil {
		return nil, err
	}
	copy(mem, code)

	if err := mem.Protect(mmap.EXEC); err != nil {
		mem.Unmap()
		return nil, ErrPermission{Err: err}
	}

	return &Region{mem: mem, size: len(code), imms: imms}, nil
}

// entryAddr returns the address of the first emitted instruction.
func (r *Region) entryAddr() uintptr {
	return uintptr(unsafe.Pointer(&r.mem[0]))
}

// Invoke calls into the region with a fresh, empty evaluation stack using
// the System V calling convention; after return, it takes the single
// remaining element as the result. A built-in that hits a runtime error
// (e.g. a malformed numeric atom) panics rather than threading an error
// return back through the native call path, so Invoke recovers any panic
// whose value implements error and returns it normally, leaving the
// region itself reusable for a subsequent call. A panic carrying a
// non-error value indicates a genuine bug (such as Immediate's
// out-of-range check below) and is left to propagate.
//
// Calling into raw machine code from Go cannot be a naked function-pointer
// cast here: Go's internal calling convention (register assignment for a
// plain `func(unsafe.Pointer, unsafe.Pointer)` value) is not guaranteed to
// coincide with System V's RDI/RSI placement this module relies on, and
// wagon's own such cast (exec/internal/compile/native_exec.go
// asmBlock.Invoke) only happens to work because wagon's emitted preamble
// reads its arguments back off the stack rather than out of RDI/RSI
// (amd64.go emitPreamble), a convention tied to the pre-register-ABI Go
// toolchains wagon targeted. This module instead uses callEntry, a small
// hand-written assembly trampoline (trampoline_amd64.s) that marshals the
// arguments expected by emitted code into the required registers.
func (r *Region) Invoke() (result object.Object, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			if e, ok := rec.(error); ok {
				err = e
				return
			}
			panic(rec)
		}
	}()

	stack := object.NewStack()

	callEntry(r.entryAddr(), unsafe.Pointer(stack), unsafe.Pointer(r))

	if stack.Len() != 1 {
		return object.Object{}, ErrRuntimeStackInvariant{Got: stack.Len()}
	}
	return stack.Top(), nil
}

// Immediate returns the i-th entry of the immediates table, intended to be
// called only by the push_immediate built-in from emitted code.
// Out-of-range access is a fatal bug in emitted code rather than a
// recoverable runtime error, so it panics with a plain string instead of
// an error value — Invoke's recover above only converts error-valued
// panics into returned errors, so this one still propagates as a crash.
func (r *Region) Immediate(i uint32) object.Object {
	if int(i) >= r.imms.Len() {
		panic(fmt.Sprintf("sexpjit: immediate index %d out of range (table has %d entries) — compiler bug", i, r.imms.Len()))
	}
	return r.imms.At(i)
}

// Close releases the mapping. Regions are not reusable after Close.
func (r *Region) Close() error {
	return r.mem.Unmap()
}

// ErrRuntimeStackInvariant reports that the evaluation stack held zero or
// more than one element when a region call returned — a protocol
// violation.
type ErrRuntimeStackInvariant struct {
	Got int
}

func (e ErrRuntimeStackInvariant) Error() string {
	return fmt.Sprintf("evaluation stack holds %d elements on return, want exactly 1", e.Got)
}
