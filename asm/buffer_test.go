package asm

import "testing"

func TestEmitImm32LittleEndian(t *testing.T) {
	b := NewBuffer()
	b.EmitImm32(0x01020304)
	want := []byte{0x04, 0x03, 0x02, 0x01}
	got := b.Bytes()
	if len(got) != len(want) {
		t.Fatalf("len(Bytes()) = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Bytes()[%d] = %#x, want %#x", i, got[i], want[i])
		}
	}
}

func TestEmitImm64LittleEndian(t *testing.T) {
	b := NewBuffer()
	b.EmitImm64(0x0102030405060708)
	want := []byte{0x08, 0x07, 0x06, 0x05, 0x04, 0x03, 0x02, 0x01}
	got := b.Bytes()
	if len(got) != len(want) {
		t.Fatalf("len(Bytes()) = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Bytes()[%d] = %#x, want %#x", i, got[i], want[i])
		}
	}
}

func TestDepthParity(t *testing.T) {
	b := NewBuffer()
	if b.DepthParity() {
		t.Error("DepthParity() = true at depth 0, want false")
	}
	b.PushDepthDelta(1)
	if !b.DepthParity() {
		t.Error("DepthParity() = false at depth 1, want true")
	}
	b.PushDepthDelta(1)
	if b.DepthParity() {
		t.Error("DepthParity() = true at depth 2, want false")
	}
	b.PushDepthDelta(-2)
	if b.DepthParity() {
		t.Error("DepthParity() = true at depth 0, want false")
	}
}

func TestEmitBytesAppends(t *testing.T) {
	b := NewBuffer()
	b.EmitBytes(0xC3)
	b.EmitBytes(0x90, 0x90)
	want := []byte{0xC3, 0x90, 0x90}
	got := b.Bytes()
	if len(got) != len(want) {
		t.Fatalf("len(Bytes()) = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Bytes()[%d] = %#x, want %#x", i, got[i], want[i])
		}
	}
}
