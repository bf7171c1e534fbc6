package object_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lcox74/sexpjit/object"
)

func TestStackPushPopOrder(t *testing.T) {
	s := object.NewStack()
	s.Push(object.Atom("1"))
	s.Push(object.Atom("2"))

	assert.Equal(t, 2, s.Len())
	assert.Equal(t, "2", s.Top().AtomValue())

	assert.Equal(t, "2", s.Pop().AtomValue())
	assert.Equal(t, "1", s.Pop().AtomValue())
	assert.Equal(t, 0, s.Len())
}

func TestStackPopEmptyPanics(t *testing.T) {
	s := object.NewStack()
	assert.Panics(t, func() { s.Pop() })
}

func TestImmediatesAppendAndAt(t *testing.T) {
	imms := object.NewImmediates()
	idx0, err := imms.Append(object.Atom("a"))
	assert.NoError(t, err)
	idx1, err := imms.Append(object.Atom("b"))
	assert.NoError(t, err)

	assert.Equal(t, uint32(0), idx0)
	assert.Equal(t, uint32(1), idx1)
	assert.Equal(t, 2, imms.Len())
	assert.Equal(t, "a", imms.At(0).AtomValue())
	assert.Equal(t, "b", imms.At(1).AtomValue())
}

func TestImmediatesAtOutOfRangePanics(t *testing.T) {
	imms := object.NewImmediates()
	assert.Panics(t, func() { imms.At(0) })
}
