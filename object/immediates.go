package object

import "math"

// Immediates is the compile-time immediates table: an ordered, append-only
// sequence of Objects indexed by a 32-bit unsigned integer, populated once
// during code generation and immutable thereafter. Bounded at 2^32-1
// entries.
type Immediates struct {
	entries []Object
}

// NewImmediates returns an empty immediates table.
func NewImmediates() *Immediates {
	return &Immediates{}
}

// ErrImmediatesOverflow is returned by Append once the table has reached
// its 2^32-1 entry bound.
type ErrImmediatesOverflow struct{}

func (ErrImmediatesOverflow) Error() string {
	return "immediates table exceeds 2^32-1 entries"
}

// Append adds obj to the table and returns its index. Fails with
// ErrImmediatesOverflow once the bound is reached.
func (t *Immediates) Append(obj Object) (uint32, error) {
	if len(t.entries) >= math.MaxUint32 {
		return 0, ErrImmediatesOverflow{}
	}
	idx := uint32(len(t.entries))
	t.entries = append(t.entries, obj)
	return idx, nil
}

// Len reports the number of entries currently in the table.
func (t *Immediates) Len() int {
	return len(t.entries)
}

// At returns the i-th immediate. Out-of-range access is a fatal bug in
// emitted code: this method panics rather than returning an error, since a
// correctly compiled region never indexes past what it itself populated.
func (t *Immediates) At(i uint32) Object {
	return t.entries[i]
}
