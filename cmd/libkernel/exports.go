//go:build cgo

package main

/*
#include <stdint.h>
#include <stddef.h>
*/
import "C"

import (
	"unsafe"

	"github.com/kernlet-dev/kernlet-sdk/bubsort"
	"github.com/kernlet-dev/kernlet-sdk/collatz"
)

// collatz_steps mirrors the WASM export over the platform C ABI. The
// non-terminating inputs documented on collatz.Steps apply here too, and
// an in-process host has no runtime to interrupt them.
//
//nolint:revive // snake_case matches the exported C symbol name
//
//export collatz_steps
func collatz_steps(n C.int32_t) C.int32_t {
	return C.int32_t(collatz.Steps(int32(n)))
}

// bubble_sort sorts the caller's buffer of count int32 elements in place.
// The address is trusted to cover count initialized elements; with a shared
// address space there is nothing to validate it against.
//
//nolint:revive // snake_case matches the exported C symbol name
//
//export bubble_sort
func bubble_sort(ptr *C.int32_t, count C.size_t) {
	if count == 0 {
		return
	}
	bubsort.Sort(unsafe.Slice((*int32)(unsafe.Pointer(ptr)), count))
}
