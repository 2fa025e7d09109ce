package abi

// Exported symbol names. Hosts resolve kernel entry points by these exact
// strings; renaming one is an ABI break.
const (
	ExportCollatzSteps = "collatz_steps"
	ExportBubbleSort   = "bubble_sort"
	ExportAllocate     = "allocate"
	ExportDeallocate   = "deallocate"
)
