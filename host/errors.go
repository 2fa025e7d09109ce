package host

import (
	"errors"
	"fmt"
)

// ErrMissingExport indicates a module that does not export a symbol the
// kernel ABI requires.
var ErrMissingExport = errors.New("kernel does not export required symbol")

// SignatureError reports an exported symbol whose WASM signature differs
// from the declared one. Loading fails fast on it; a mismatch caught at
// call time would corrupt the call frame instead of erroring.
type SignatureError struct {
	Symbol string
	Want   string
	Got    string
}

func (e *SignatureError) Error() string {
	return fmt.Sprintf("export %q has signature %s, want %s", e.Symbol, e.Got, e.Want)
}

// MemoryAccessError reports a staging read or write that fell outside the
// kernel's linear memory.
type MemoryAccessError struct {
	Op   string // "read" or "write"
	Ptr  uint32
	Len  uint32
	Size uint32 // linear memory size at the time of failure
}

func (e *MemoryAccessError) Error() string {
	return fmt.Sprintf("%s of %d bytes at 0x%x exceeds linear memory (%d bytes)",
		e.Op, e.Len, e.Ptr, e.Size)
}

// AllocationError reports the kernel's staging allocator refusing a
// request, normally because it would exceed the kernel-side allocation cap.
type AllocationError struct {
	Size uint32
}

func (e *AllocationError) Error() string {
	return fmt.Sprintf("kernel refused staging allocation of %d bytes", e.Size)
}
