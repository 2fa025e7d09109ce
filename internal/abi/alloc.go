//go:build wasip1

package abi

import (
	"sync"
	"unsafe"
)

// MaxTotalAllocations caps the total bytes the staging allocator will hand
// out at once. It bounds host-driven growth of linear memory; kernel
// buffers are tiny compared to this.
const MaxTotalAllocations = 64 * 1024 * 1024 // 64 MB

// memoryManager tracks every staging allocation. Holding the slices keeps
// the Go GC from collecting or moving them while the host owns their
// addresses; an entry is released only through deallocate or FreeAllTracked.
var memoryManager = struct {
	sync.Mutex
	ptrs           map[uint32][]byte // ptr -> pinned slice
	totalAllocated int
}{
	ptrs: make(map[uint32][]byte),
}

// allocate reserves size bytes of linear memory for host staging and
// returns the address. A zero return means nothing was allocated: either
// size was 0 or the allocation would exceed MaxTotalAllocations. Hosts must
// treat 0 as failure for non-zero sizes.
//
//go:wasmexport allocate
func allocate(size uint32) uint32 {
	if size == 0 {
		return 0
	}

	memoryManager.Lock()
	defer memoryManager.Unlock()

	if memoryManager.totalAllocated+int(size) > MaxTotalAllocations {
		return 0
	}

	buf := make([]byte, size)
	//nolint:gosec // G103: Valid unsafe.Pointer use for linear memory access
	ptr := uint32(uintptr(unsafe.Pointer(&buf[0])))

	memoryManager.ptrs[ptr] = buf
	memoryManager.totalAllocated += int(size)

	return ptr
}

// deallocate releases the allocation at ptr, letting the GC reclaim it.
// Untracked pointers are ignored, so double frees are harmless. Accounting
// uses the stored slice length rather than the caller's size argument, so a
// host passing a wrong size cannot corrupt the counter.
//
//go:wasmexport deallocate
func deallocate(ptr uint32, size uint32) {
	memoryManager.Lock()
	defer memoryManager.Unlock()

	buf, ok := memoryManager.ptrs[ptr]
	if !ok {
		return
	}

	delete(memoryManager.ptrs, ptr)
	memoryManager.totalAllocated -= len(buf)
	if memoryManager.totalAllocated < 0 {
		memoryManager.totalAllocated = 0
	}
}

// FreeAllTracked drops every tracked allocation. Called on module shutdown
// or from tests to reset the allocator to a clean state.
func FreeAllTracked() {
	memoryManager.Lock()
	defer memoryManager.Unlock()

	clear(memoryManager.ptrs)
	memoryManager.totalAllocated = 0
}

// Stats reports the live allocation count and total pinned bytes.
func Stats() (allocations int, bytes int) {
	memoryManager.Lock()
	defer memoryManager.Unlock()

	return len(memoryManager.ptrs), memoryManager.totalAllocated
}
