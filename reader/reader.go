// Package reader implements the surface syntax surrounding the object
// model: a recursive-descent parser from parenthesized S-expression text
// into an object.Object tree, plus a Print collaborator for rendering a
// tree back to text.
//
// Grounded on bfcc's tokenizer (internal/core/tokenizer.go): a Position
// type tracking offset/line/column, and a flat token slice terminated by
// an explicit EOF token, adapted here from Brainfuck's single-character
// command alphabet to parenthesized list syntax with atoms.
package reader

import "fmt"

// Position locates a byte in source text, grounded on bfcc's
// internal/core.Position.
type Position struct {
	Offset int
	Line   int
	Column int
}

// ErrSyntax is raised for any malformed input: empty input, unbalanced
// parentheses, or trailing garbage after a complete expression. Arity is
// not checked here: "(+)" parses to a List with no children.
type ErrSyntax struct {
	Pos     Position
	Message string
}

func (e ErrSyntax) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Pos.Line, e.Pos.Column, e.Message)
}
