package compile

import "github.com/lcox74/sexpjit/object"

// frameState is the per-frame state of the traversal's state machine:
// three states per frame (entering, iterating, finishing), no
// backtracking, each transition deterministic.
type frameState uint8

const (
	entering frameState = iota
	iterating
	finishing
)

// frame is one entry of the explicit traversal stack the code generator
// walks instead of recursing on the host call stack, grounded on the same
// non-recursive, index-driven traversal discipline wagon's scanner uses
// over a flat instruction range (exec/internal/compile/scanner.go walks
// meta.Instructions by index, never recursively).
type frame struct {
	list   object.Object
	cursor int
	state  frameState
}

// done reports whether every child of this frame's list has been visited.
func (f *frame) done() bool {
	return f.cursor >= len(f.list.Children())
}

// child returns the child at the current cursor position.
func (f *frame) child() object.Object {
	return f.list.Children()[f.cursor]
}
