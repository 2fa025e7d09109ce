// Package wireformat defines the byte-level layout of kernel buffers in
// WASM linear memory. Kernel exports operate on contiguous little-endian
// signed 32-bit elements; hosts stage Go slices through this codec whenever
// the kernel runs in a separate address space. The layout must remain
// stable as it defines the ABI contract.
package wireformat

import (
	"encoding/binary"
	"fmt"
	"math"
)

// ElemSize is the size in bytes of one buffer element, a signed 32-bit
// integer.
const ElemSize = 4

// ByteLen returns the number of bytes a buffer of n elements occupies in
// linear memory. It rejects counts whose byte size does not fit the 32-bit
// address space of a wasm32 module.
func ByteLen(n int) (uint32, error) {
	if n < 0 {
		return 0, fmt.Errorf("wireformat: negative element count %d", n)
	}
	size := uint64(n) * ElemSize
	if size > math.MaxUint32 {
		return 0, fmt.Errorf("wireformat: %d elements exceed 32-bit addressable size", n)
	}
	return uint32(size), nil
}

// AppendInt32s appends the little-endian encoding of src to dst and
// returns the extended slice.
func AppendInt32s(dst []byte, src []int32) []byte {
	for _, v := range src {
		dst = binary.LittleEndian.AppendUint32(dst, uint32(v))
	}
	return dst
}

// ReadInt32s decodes little-endian elements from src into dst. src must
// hold exactly len(dst)*ElemSize bytes.
func ReadInt32s(dst []int32, src []byte) error {
	if len(src) != len(dst)*ElemSize {
		return fmt.Errorf("wireformat: buffer is %d bytes, want %d", len(src), len(dst)*ElemSize)
	}
	for i := range dst {
		dst[i] = int32(binary.LittleEndian.Uint32(src[i*ElemSize:]))
	}
	return nil
}
