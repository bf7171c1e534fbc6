package jit_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lcox74/sexpjit/jit"
	"github.com/lcox74/sexpjit/object"
)

func TestProgramCompileRunClose(t *testing.T) {
	var out bytes.Buffer
	root := object.List("print",
		object.List("+", object.Atom("19"), object.Atom("23")),
	)

	prog, err := jit.Compile(root, jit.Options{Output: &out})
	require.NoError(t, err)
	defer prog.Close()

	result, err := prog.Run()
	require.NoError(t, err)
	assert.Equal(t, "42", result.AtomValue())
	assert.Equal(t, "42\n", out.String())
}

func TestProgramRunMultipleTimes(t *testing.T) {
	root := object.List("+", object.Atom("5"), object.Atom("7"))
	prog, err := jit.Compile(root, jit.Options{})
	require.NoError(t, err)
	defer prog.Close()

	first, err := prog.Run()
	require.NoError(t, err)
	second, err := prog.Run()
	require.NoError(t, err)

	assert.Equal(t, first.AtomValue(), second.AtomValue())
}

func TestProgramStatsReflectCompilation(t *testing.T) {
	root := object.List("+", object.Atom("1"), object.Atom("2"))
	prog, err := jit.Compile(root, jit.Options{})
	require.NoError(t, err)
	defer prog.Close()

	stats := prog.Stats()
	assert.Equal(t, 1, stats.BuiltinCalls)
	assert.Equal(t, 2, stats.Immediates)
}

func TestProgramCompileErrorPropagates(t *testing.T) {
	root := object.List("unknown", object.Atom("1"))
	_, err := jit.Compile(root, jit.Options{})
	require.Error(t, err)
}
