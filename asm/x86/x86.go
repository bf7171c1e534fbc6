// Package x86 provides named x86-64 instruction encoders built on top of
// asm.Buffer's raw byte/immediate primitives.
//
// This package has no dependency on compiler internals and can be used
// standalone for generating x86-64 machine code, the same separation of
// concerns bfcc keeps between pkg/amd64 (encoder.go + instructions.go) and
// its codegen package. Each encoder is a standalone function documented
// with the mnemonic and raw bytes it produces, in bfcc's comment style.
//
// For details on x86-64 instruction encoding (REX prefixes, ModRM, SIB
// bytes), see: https://wiki.osdev.org/X86-64_Instruction_Encoding
package x86

// Reg is a general-purpose x86-64 register, numbered per the standard
// ModRM/SIB register field encoding (0-7 addressable without REX.B/R/X,
// 8-15 requiring the corresponding REX bit).
type Reg uint8

const (
	RAX Reg = 0
	RCX Reg = 1
	RDX Reg = 2
	RBX Reg = 3
	RSP Reg = 4
	RBP Reg = 5
	RSI Reg = 6
	RDI Reg = 7
	R8  Reg = 8
	R9  Reg = 9
	R10 Reg = 10
	R11 Reg = 11
	R12 Reg = 12
	R13 Reg = 13
	R14 Reg = 14
	R15 Reg = 15
)

// low3 returns the register's low 3 bits, used in ModRM/opcode fields; the
// 4th bit (>= R8) is folded into the REX prefix by each encoder.
func (r Reg) low3() byte { return byte(r) & 0x7 }

// extended reports whether r needs REX.B/R/X set (r8-r15).
func (r Reg) extended() bool { return r >= R8 }
