// Package bubsort sorts int32 buffers in place with a fixed-pass bubble
// sort.
package bubsort

// Sort reorders v into non-descending order using adjacent swaps only. It
// allocates nothing and touches no memory outside v.
//
// The pass structure is fixed: len(v) outer passes run regardless of how
// early the buffer becomes sorted, so the cost is O(n²) comparisons on
// every input. The comparison is strict, so equal elements are never
// swapped and duplicates keep their relative order.
func Sort(v []int32) {
	n := len(v)
	for i := 0; i < n; i++ {
		// After pass i the last i elements hold their final values. The
		// inner bound is signed, so it needs no separate guard when n is 0:
		// the outer loop never runs and n-1-i is never evaluated.
		for j := 0; j < n-1-i; j++ {
			if v[j] > v[j+1] {
				v[j], v[j+1] = v[j+1], v[j]
			}
		}
	}
}
