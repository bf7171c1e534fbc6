package x86

import (
	"bytes"
	"testing"
)

func TestMovImm64Encoding(t *testing.T) {
	got := MovImm64(RAX, 1)
	want := []byte{0x48, 0xB8, 1, 0, 0, 0, 0, 0, 0, 0}
	if !bytes.Equal(got, want) {
		t.Errorf("MovImm64(RAX, 1) = % x, want % x", got, want)
	}

	got = MovImm64(R13, 1)
	want = []byte{0x49, 0xBD, 1, 0, 0, 0, 0, 0, 0, 0}
	if !bytes.Equal(got, want) {
		t.Errorf("MovImm64(R13, 1) = % x, want % x", got, want)
	}
}

func TestPushPopEncoding(t *testing.T) {
	if got, want := PushReg(RDI), []byte{0x57}; !bytes.Equal(got, want) {
		t.Errorf("PushReg(RDI) = % x, want % x", got, want)
	}
	if got, want := PushReg(R12), []byte{0x41, 0x54}; !bytes.Equal(got, want) {
		t.Errorf("PushReg(R12) = % x, want % x", got, want)
	}
	if got, want := PopReg(RSI), []byte{0x5E}; !bytes.Equal(got, want) {
		t.Errorf("PopReg(RSI) = % x, want % x", got, want)
	}
}

func TestCallIndirectEncoding(t *testing.T) {
	if got, want := CallIndirect(RAX), []byte{0xFF, 0xD0}; !bytes.Equal(got, want) {
		t.Errorf("CallIndirect(RAX) = % x, want % x", got, want)
	}
}

func TestRetEncoding(t *testing.T) {
	if got, want := Ret(), []byte{0xC3}; !bytes.Equal(got, want) {
		t.Errorf("Ret() = % x, want % x", got, want)
	}
}

func TestRSPAdjustEncoding(t *testing.T) {
	if got, want := SubRSPImm8(8), []byte{0x48, 0x83, 0xEC, 8}; !bytes.Equal(got, want) {
		t.Errorf("SubRSPImm8(8) = % x, want % x", got, want)
	}
	if got, want := AddRSPImm8(8), []byte{0x48, 0x83, 0xC4, 8}; !bytes.Equal(got, want) {
		t.Errorf("AddRSPImm8(8) = % x, want % x", got, want)
	}
}
