package native

import (
	"testing"

	"github.com/lcox74/sexpjit/object"
)

// A bare `ret` (0xC3) is a valid, architecture-portable smoke test for the
// allocator independent of any instruction-encoding package: it exercises
// create -> close (the code is never executed) without depending on
// asm/x86 at all, the same
// separation of concerns wagon's own allocator_test.go keeps from
// amd64_test.go.
func TestNewRegionRoundTrip(t *testing.T) {
	imms := object.NewImmediates()
	r, err := NewRegion([]byte{0xC3}, imms)
	if err != nil {
		t.Fatalf("NewRegion() error = %v", err)
	}
	defer r.Close()

	if r.size != 1 {
		t.Errorf("r.size = %d, want 1", r.size)
	}
	if len(r.mem) == 0 || len(r.mem)%pageSizeForTest(t) != 0 {
		t.Errorf("len(r.mem) = %d, want a positive multiple of the page size", len(r.mem))
	}
}

func TestRegionImmediateBounds(t *testing.T) {
	imms := object.NewImmediates()
	if _, err := imms.Append(object.Atom("42")); err != nil {
		t.Fatalf("Append() error = %v", err)
	}

	r, err := NewRegion([]byte{0xC3}, imms)
	if err != nil {
		t.Fatalf("NewRegion() error = %v", err)
	}
	defer r.Close()

	if got := r.Immediate(0); got.AtomValue() != "42" {
		t.Errorf("r.Immediate(0) = %v, want Atom(42)", got)
	}

	defer func() {
		if recover() == nil {
			t.Error("r.Immediate(1) did not panic on out-of-range index")
		}
	}()
	r.Immediate(1)
}

func TestAlignUp(t *testing.T) {
	cases := []struct{ n, align, want int }{
		{0, 4096, 0},
		{1, 4096, 4096},
		{4096, 4096, 4096},
		{4097, 4096, 8192},
	}
	for _, c := range cases {
		if got := alignUp(c.n, c.align); got != c.want {
			t.Errorf("alignUp(%d, %d) = %d, want %d", c.n, c.align, got, c.want)
		}
	}
}

func pageSizeForTest(t *testing.T) int {
	t.Helper()
	sz, err := pageSize()
	if err != nil {
		t.Fatalf("pageSize() error = %v", err)
	}
	return sz
}
