package x86

import "encoding/binary"

// This file contains the instruction encoders the code generator actually
// drives: loading a 64-bit immediate into a scratch register,
// saving/restoring the entry-argument registers around a call,
// indirect-calling a built-in, adjusting RSP by an 8-bit immediate for
// 16-byte alignment, and returning. Each function returns the raw machine code
// bytes for one instruction, in bfcc's pkg/amd64/instructions.go style: a
// doc comment naming the mnemonic and the encoded bytes, built on
// REX/ModRM/SIB by hand.

func rex(w, r, x, b bool) byte {
	v := byte(0x40)
	if w {
		v |= 0x08
	}
	if r {
		v |= 0x04
	}
	if x {
		v |= 0x02
	}
	if b {
		v |= 0x01
	}
	return v
}

// MovImm64 encodes: movabs $imm64, reg (REX.W[B] B8+r <imm64>)
// Loads a 64-bit immediate into reg. Used to materialize a built-in's
// native entry address before CallIndirect, and to materialize the
// push_immediate index (zero-extended into a full 64-bit slot — the
// callee only reads the low 32 bits).
func MovImm64(reg Reg, imm64 uint64) []byte {
	buf := make([]byte, 10)
	buf[0] = rex(true, false, false, reg.extended())
	buf[1] = 0xB8 + reg.low3()
	binary.LittleEndian.PutUint64(buf[2:], imm64)
	return buf
}

// PushReg encodes: push reg (REX.B? 50+r)
func PushReg(reg Reg) []byte {
	if reg.extended() {
		return []byte{0x41, 0x50 + reg.low3()}
	}
	return []byte{0x50 + reg.low3()}
}

// PopReg encodes: pop reg (REX.B? 58+r)
func PopReg(reg Reg) []byte {
	if reg.extended() {
		return []byte{0x41, 0x58 + reg.low3()}
	}
	return []byte{0x58 + reg.low3()}
}

// CallIndirect encodes: call reg (REX.B? FF /2)
// Calls the address held in reg — the indirect-call mechanism used to
// reach a built-in's native entry point.
func CallIndirect(reg Reg) []byte {
	modrm := 0xC0 | (2 << 3) | reg.low3()
	if reg.extended() {
		return []byte{0x41, 0xFF, modrm}
	}
	return []byte{0xFF, modrm}
}

// Ret encodes: ret (C3)
func Ret() []byte {
	return []byte{0xC3}
}

// SubRSPImm8 encodes: sub rsp, imm8 (REX.W 83 /5 ib)
// Used to insert 8 bytes of alignment padding ahead of a call site whose
// two preceding register pushes would otherwise leave RSP off the
// 16-byte boundary the System V ABI requires at CALL.
func SubRSPImm8(imm8 uint8) []byte {
	return []byte{0x48, 0x83, 0xEC, imm8}
}

// AddRSPImm8 encodes: add rsp, imm8 (REX.W 83 /0 ib)
// Undoes the padding SubRSPImm8 inserted, after the call and before the
// matching register pops.
func AddRSPImm8(imm8 uint8) []byte {
	return []byte{0x48, 0x83, 0xC4, imm8}
}
