// Package native implements the Executable Memory Region: a page-aligned,
// read+execute memory mapping holding a finished instruction stream plus
// the immediates table that stream depends on.
//
// Grounded directly on wagon's exec/internal/compile/native/allocator.go
// MMapAllocator, which copies assembled instructions into an
// github.com/edsrzf/mmap-go mapping. Unlike wagon, which packs many small
// code blobs from one VM into shared, reusable 32KiB pages (since its
// regions are re-patched into a live function table and never
// individually destroyed), every Region here is an independent,
// individually-destroyable handle whose destruction releases its own
// mapping, so each gets its own dedicated mapping sized to its own code
// rather than sharing a block with unrelated regions.
package native

import (
	"fmt"
	"os"

	mmap "github.com/edsrzf/mmap-go"
)

// ErrOSResource reports that an OS-level resource operation (page size
// discovery, mmap) failed.
type ErrOSResource struct {
	Op  string
	Err error
}

func (e ErrOSResource) Error() string {
	return fmt.Sprintf("executable memory region: %s: %v", e.Op, e.Err)
}

func (e ErrOSResource) Unwrap() error { return e.Err }

// ErrPermission reports that changing a mapping's memory protection failed.
type ErrPermission struct {
	Err error
}

func (e ErrPermission) Error() string {
	return fmt.Sprintf("executable memory region: permission change failed: %v", e.Err)
}

func (e ErrPermission) Unwrap() error { return e.Err }

// pageSize reports the host's page size, used to round an allocation up to
// the next page boundary. os.Getpagesize never fails on the platforms this
// module targets, but ErrOSResource exists so a future port to a platform
// where page size discovery can fail has somewhere to report it.
func pageSize() (int, error) {
	sz := os.Getpagesize()
	if sz <= 0 {
		return 0, ErrOSResource{Op: "determine page size", Err: fmt.Errorf("invalid page size %d", sz)}
	}
	return sz, nil
}

// alignUp rounds n up to the next multiple of align (align must be a power
// of two), mirroring wagon's `(len(asm)+allocationAlignment) &
// ^uint32(allocationAlignment)` rounding idiom.
func alignUp(n, align int) int {
	return (n + align - 1) &^ (align - 1)
}

// mapExecutable allocates a fresh RDWR|EXEC anonymous mapping of exactly
// size bytes, the same mmap-go call wagon's allocator makes
// (mmap.MapRegion(nil, alloc, mmap.EXEC|mmap.RDWR, mmap.ANON, 0)).
// Permissions start RDWR so the instruction stream can be copied in; the
// caller drops write permission once copying is complete, so the mapping is
// never simultaneously writable and executable after finalization.
func mapExecutable(size int) (mmap.MMap, error) {
	m, err := mmap.MapRegion(nil, size, mmap.EXEC|mmap.RDWR, mmap.ANON, 0)
	if err != nil {
		return nil, ErrOSResource{Op: "mmap", Err: err}
	}
	return m, nil
}
