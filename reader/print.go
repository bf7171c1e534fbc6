package reader

import (
	"io"
	"strings"

	"github.com/lcox74/sexpjit/object"
)

// Print renders o back to the surface syntax Parse accepts, the inverse
// collaborator needed alongside the reader to exercise a compiled program
// end to end from a CLI or test.
func Print(w io.Writer, o object.Object) error {
	_, err := io.WriteString(w, Format(o))
	return err
}

// Format renders o as a string, for callers that want the text without an
// io.Writer (e.g. error messages, tests).
func Format(o object.Object) string {
	if o.IsAtom() {
		return o.AtomValue()
	}

	var b strings.Builder
	b.WriteByte('(')
	if o.Operator() != "" {
		b.WriteString(o.Operator())
	}
	for i, child := range o.Children() {
		if i > 0 || o.Operator() != "" {
			b.WriteByte(' ')
		}
		b.WriteString(Format(child))
	}
	b.WriteByte(')')
	return b.String()
}
