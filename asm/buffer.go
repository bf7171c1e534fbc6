// Package asm implements the Instruction Emitter: a write-only byte sink
// with primitive helpers to append opcodes, little-endian immediates, and
// a pseudo-stack-depth counter used by the code generator for alignment
// decisions. It has no knowledge of the S-expression tree.
//
// Grounded on bfcc's pkg/amd64/encoder.go (writeLE32/writeLE64) for the
// little-endian primitives and on its instructions.go for the style of
// standalone, doc-commented instruction encoders built on top of them.
package asm

import "encoding/binary"

// Buffer is the growing byte sink emitted code is built up in. It carries
// no state beyond its output and the depth counter.
type Buffer struct {
	bytes []byte
	depth int
}

// NewBuffer returns an empty emitter.
func NewBuffer() *Buffer {
	return &Buffer{}
}

// EmitBytes appends raw opcode bytes.
func (b *Buffer) EmitBytes(seq ...byte) {
	b.bytes = append(b.bytes, seq...)
}

// EmitImm32 appends a 32-bit value, least significant byte first.
func (b *Buffer) EmitImm32(v uint32) {
	var tmp [4]byte
	binary.LittleEndian.PutUint32(tmp[:], v)
	b.bytes = append(b.bytes, tmp[:]...)
}

// EmitImm64 appends a 64-bit value, least significant byte first.
func (b *Buffer) EmitImm64(v uint64) {
	var tmp [8]byte
	binary.LittleEndian.PutUint64(tmp[:], v)
	b.bytes = append(b.bytes, tmp[:]...)
}

// PushDepthDelta adjusts the pseudo-stack-depth counter by delta. The code
// generator calls this around every PUSH/POP pair it emits so that
// DepthParity reflects the runtime RSP parity at the current emission
// point.
func (b *Buffer) PushDepthDelta(delta int) {
	b.depth += delta
}

// DepthParity reports the parity of the tracked pseudo-stack depth: true
// means the depth is currently odd relative to entry, i.e. RSP is off the
// 16-byte boundary it started at and a call site needs compensating
// padding.
func (b *Buffer) DepthParity() bool {
	return b.depth%2 != 0
}

// Len reports the number of bytes emitted so far. Used by the code
// generator to record the emitted size in its stats and to check the
// emitted-code capacity bound before calling native.NewRegion.
func (b *Buffer) Len() int {
	return len(b.bytes)
}

// Bytes returns the finished instruction stream. The returned slice aliases
// the Buffer's internal storage; callers must not mutate it.
func (b *Buffer) Bytes() []byte {
	return b.bytes
}
