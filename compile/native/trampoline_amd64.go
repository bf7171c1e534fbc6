//go:build amd64

package native

import "unsafe"

// callEntry is the host-side trampoline into compiled code: it marshals
// stack and region into RDI and RSI, then calls entry, matching the System
// V AMD64 calling convention the emitted code expects at its own entry
// point. Declared here without a body; implemented in trampoline_amd64.s.
func callEntry(entry uintptr, stack, region unsafe.Pointer)
