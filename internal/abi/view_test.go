package abi

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kernlet-dev/kernlet-sdk/bubsort"
)

func TestInt32ViewAliasesBacking(t *testing.T) {
	buf := []int32{3, 1, 2}
	view := Int32View(uintptr(unsafe.Pointer(&buf[0])), uintptr(len(buf)))
	require.Len(t, view, 3)

	view[0], view[2] = view[2], view[0]
	assert.Equal(t, []int32{2, 1, 3}, buf, "writes through the view must land in the backing array")
}

func TestInt32ViewZeroCount(t *testing.T) {
	// A zero-length buffer carries no usable address; the view must be nil
	// without ever dereferencing ptr.
	assert.Nil(t, Int32View(0, 0))
	assert.Nil(t, Int32View(0xdeadbeef, 0))
}

func TestInt32ViewSortsInPlace(t *testing.T) {
	// The exported sort entry point is exactly this composition: build the
	// view over the raw address, sort it, let the view die.
	buf := []int32{5, 4, 3, 2, 1}
	bubsort.Sort(Int32View(uintptr(unsafe.Pointer(&buf[0])), uintptr(len(buf))))
	assert.Equal(t, []int32{1, 2, 3, 4, 5}, buf)
}
