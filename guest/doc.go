// Package guest declares the kernel's exported symbol table for WASM
// builds. Importing it (usually blank, from a main package) links the
// exports into the module:
//
//	collatz_steps(n i32) -> i32
//	bubble_sort(ptr i32, count i32)
//	allocate(size i32) -> i32
//	deallocate(ptr i32, size i32)
//
// collatz_steps passes its value in registers and touches no memory.
// bubble_sort receives the address and element count of a buffer in linear
// memory; the caller owns the buffer, the kernel borrows it exclusively for
// the duration of the call and sorts it in place. allocate and deallocate
// are the staging pair hosts use to place such buffers (see internal/abi).
//
// Build the module with:
//
//	GOOS=wasip1 GOARCH=wasm go build -buildmode=c-shared -o kernel.wasm ./cmd/kernel
//
// On non-WASM platforms the package is empty.
package guest
