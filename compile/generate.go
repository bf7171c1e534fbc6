// Package compile implements the Code Generator: a non-recursive
// post-order traversal of an S-expression tree that drives the
// Instruction Emitter (asm, asm/x86) to produce a position-independent
// x86-64 instruction stream honoring the System V AMD64 calling
// convention, then hands the finished bytes to the Executable Memory
// Region (compile/native).
package compile

import (
	"github.com/lcox74/sexpjit/asm"
	"github.com/lcox74/sexpjit/asm/x86"
	"github.com/lcox74/sexpjit/builtin"
	"github.com/lcox74/sexpjit/compile/native"
	"github.com/lcox74/sexpjit/object"
)

// generator holds the mutable state of one compilation: the growing
// instruction buffer, the immediates table under construction, and
// running stats. Unexported — Generate is the only entry point.
type generator struct {
	table *builtin.Table
	buf   *asm.Buffer
	imms  *object.Immediates
	stats Stats
}

// Generate compiles root into an executable Region: walk root in
// post-order, emit a call sequence per reduced operand and per completed
// operator invocation, then hand the finished instruction stream and
// immediates table to native.NewRegion. Compile-time failures
// (ErrUnknownOperator, ErrArityMismatch, ErrImmediatesOverflow,
// ErrCapacity) abort before any region is constructed, so no partial
// region is ever observable.
func Generate(root object.Object, table *builtin.Table) (*native.Region, Stats, error) {
	g := &generator{
		table: table,
		buf:   asm.NewBuffer(),
		imms:  object.NewImmediates(),
	}

	// Seed the pseudo-stack-depth counter: at the first instruction of
	// emitted code, RSP sits one 8-byte word off a 16-byte boundary,
	// because the host trampoline's CALL instruction (compile/native's
	// callEntry) pushed a return address per the System V entry
	// invariant ("%rsp+8 is a multiple of 16 at the function entry
	// point"). Seeding depth=1 makes DepthParity() reflect that real
	// offset from the very first call-site decision.
	g.buf.PushDepthDelta(1)

	if err := g.walk(root); err != nil {
		return nil, Stats{}, err
	}

	g.buf.EmitBytes(x86.Ret()...)
	g.stats.BytesEmitted = g.buf.Len()

	if g.buf.Len() > MaxCodeSize {
		return nil, Stats{}, ErrCapacity{Size: g.buf.Len(), Bound: MaxCodeSize}
	}

	region, err := native.NewRegion(g.buf.Bytes(), g.imms)
	if err != nil {
		return nil, Stats{}, err
	}
	return region, g.stats, nil
}

// walk runs the traversal's state machine over an explicit frame stack
// rooted at root, never recursing on the host call stack.
func (g *generator) walk(root object.Object) error {
	frames := []*frame{{list: root}}

	for len(frames) > 0 {
		top := frames[len(frames)-1]

		if top.done() {
			top.state = finishing
			g.table.Trace("finishing", "operator", top.list.Operator())

			desc, ok := g.table.Lookup(top.list.Operator())
			if !ok {
				return ErrUnknownOperator{Name: top.list.Operator()}
			}
			if got := len(top.list.Children()); got != desc.Arity {
				return ErrArityMismatch{Name: desc.Name, Want: desc.Arity, Got: got}
			}

			g.emitCall(desc.Address())
			g.stats.BuiltinCalls++

			frames = frames[:len(frames)-1]
			if len(frames) == 0 {
				return nil
			}
			frames[len(frames)-1].cursor++
			continue
		}

		next := top.child()
		if next.IsList() && !next.IsLiteralList() {
			top.state = iterating
			g.table.Trace("entering", "operator", next.Operator())
			frames = append(frames, &frame{list: next})
			continue
		}

		idx, err := g.imms.Append(next)
		if err != nil {
			return err
		}
		g.table.Trace("literal", "index", idx)
		g.emitPushImmediate(g.table.PushImmediate().Address(), idx)
		g.stats.Immediates++
		top.cursor++
	}

	return nil
}

// emitCall emits the save/call/restore sequence for an operator invocation:
// no extra argument beyond the preserved stack/region pointers.
func (g *generator) emitCall(target uintptr) {
	g.emitCallSequence(target, nil)
}

// emitPushImmediate emits the same sequence for the hidden push_immediate
// built-in, additionally loading the immediate's table index into RDX as an
// extra argument before the call.
func (g *generator) emitPushImmediate(target uintptr, idx uint32) {
	g.emitCallSequence(target, func() {
		g.buf.EmitBytes(x86.MovImm64(x86.RDX, uint64(idx))...)
	})
}

// emitCallSequence emits one indirect-call site:
//
//  1. push RDI, push RSI           (preserve the entry-argument registers;
//     the callee is free to clobber them)
//  2. setup (e.g. mov RDX, index)  (load any extra argument the callee needs)
//  3. sub RSP, 8 if depth parity   (keep RSP a multiple of 16 at CALL, per
//     the System V AMD64 calling convention)
//  4. mov RAX, target; call RAX    (indirect call through a scratch register,
//     since the call target is a runtime constant, not a fixed symbol)
//  5. add RSP, 8 if it was padded
//  6. pop RSI, pop RDI             (restore what step 1 preserved)
//
// setup may be nil for a plain built-in call.
func (g *generator) emitCallSequence(target uintptr, setup func()) {
	g.buf.EmitBytes(x86.PushReg(x86.RDI)...)
	g.buf.PushDepthDelta(1)
	g.buf.EmitBytes(x86.PushReg(x86.RSI)...)
	g.buf.PushDepthDelta(1)

	if setup != nil {
		setup()
	}

	padded := g.buf.DepthParity()
	if padded {
		g.buf.EmitBytes(x86.SubRSPImm8(8)...)
		g.buf.PushDepthDelta(1)
	}

	g.buf.EmitBytes(x86.MovImm64(x86.RAX, uint64(target))...)
	g.buf.EmitBytes(x86.CallIndirect(x86.RAX)...)

	if padded {
		g.buf.EmitBytes(x86.AddRSPImm8(8)...)
		g.buf.PushDepthDelta(-1)
	}

	g.buf.EmitBytes(x86.PopReg(x86.RSI)...)
	g.buf.PushDepthDelta(-1)
	g.buf.EmitBytes(x86.PopReg(x86.RDI)...)
	g.buf.PushDepthDelta(-1)
}
