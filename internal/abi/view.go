// Package abi implements the kernel's boundary conventions: the exported
// symbol names, the buffer view over a raw address, and the staging
// allocator hosts use to place buffers in WASM linear memory.
package abi

import "unsafe"

// Int32View builds the mutable view over count signed 32-bit elements
// starting at ptr. The caller guarantees the region holds count initialized
// elements with no concurrent reader or writer for the duration of the
// call the view was built for; the view must not outlive that call.
//
// count == 0 yields nil regardless of ptr, so an empty buffer never
// dereferences the address.
func Int32View(ptr, count uintptr) []int32 {
	if count == 0 {
		return nil
	}
	// Raw address -> pointer conversion is the boundary contract here.
	//nolint:gosec // G103: Valid unsafe.Pointer use for linear memory access
	return unsafe.Slice((*int32)(unsafe.Pointer(ptr)), count)
}
