package compile

import (
	"fmt"

	"github.com/lcox74/sexpjit/builtin"
	"github.com/lcox74/sexpjit/object"
)

// ErrUnknownOperator and ErrArityMismatch are raised by the Built-in Table
// during operator resolution; re-exported here under the Code Generator's
// own vocabulary rather than duplicated, since the generator's own
// unknown-operator and arity-mismatch failures ARE Table.Lookup's
// rejection of an operator.
type (
	ErrUnknownOperator = builtin.ErrUnknownOperator
	ErrArityMismatch   = builtin.ErrArityMismatch
)

// ErrImmediatesOverflow is object.Immediates' own overflow signal,
// re-exported under the generator's vocabulary for the same reason.
type ErrImmediatesOverflow = object.ErrImmediatesOverflow

// ErrCapacity reports that emitted bytes exceed the bound a single
// contiguous mapping can hold. MaxCodeSize picks a generous bound
// appropriate for the tiny programs this language produces.
type ErrCapacity struct {
	Size  int
	Bound int
}

func (e ErrCapacity) Error() string {
	return fmt.Sprintf("emitted code size %d exceeds capacity bound %d", e.Size, e.Bound)
}

// MaxCodeSize is the bound ErrCapacity checks against.
const MaxCodeSize = 16 * 1024 * 1024
