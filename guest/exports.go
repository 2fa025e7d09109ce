//go:build wasip1

package guest

import (
	"github.com/kernlet-dev/kernlet-sdk/bubsort"
	"github.com/kernlet-dev/kernlet-sdk/collatz"
	"github.com/kernlet-dev/kernlet-sdk/internal/abi"
)

// collatzSteps is the collatz_steps entry point: one signed 32-bit value
// in, the step count out. Inputs whose trajectory never reaches 1 do not
// return; bounding such calls is the host's job (see collatz.Steps).
//
//go:wasmexport collatz_steps
func collatzSteps(n int32) int32 {
	return collatz.Steps(n)
}

// bubbleSort is the bubble_sort entry point. ptr addresses count contiguous
// signed 32-bit elements in linear memory, borrowed exclusively for the
// duration of the call and sorted in place. The view is built once here and
// never escapes; a zero count sorts nothing and never touches ptr.
//
//go:wasmexport bubble_sort
func bubbleSort(ptr uint32, count uint32) {
	bubsort.Sort(abi.Int32View(uintptr(ptr), uintptr(count)))
}
