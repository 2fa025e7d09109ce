//go:build (darwin || freebsd || linux) && (amd64 || arm64)

package native

import (
	"fmt"

	"github.com/ebitengine/purego"

	"github.com/kernlet-dev/kernlet-sdk/internal/abi"
)

// Kernel is a kernel library loaded into the host process, with its two
// entry points resolved to callable functions.
type Kernel struct {
	lib          uintptr
	collatzSteps func(int32) int32
	bubbleSort   func(*int32, uintptr)
}

// Open loads the shared library at path and resolves the kernel symbols.
func Open(path string) (*Kernel, error) {
	lib, err := purego.Dlopen(path, purego.RTLD_NOW|purego.RTLD_LOCAL)
	if err != nil {
		return nil, fmt.Errorf("failed to load kernel library %s: %w", path, err)
	}

	k := &Kernel{lib: lib}

	collatzAddr, err := purego.Dlsym(lib, abi.ExportCollatzSteps)
	if err != nil {
		_ = purego.Dlclose(lib)
		return nil, fmt.Errorf("%w: %s", ErrMissingSymbol, abi.ExportCollatzSteps)
	}
	purego.RegisterFunc(&k.collatzSteps, collatzAddr)

	sortAddr, err := purego.Dlsym(lib, abi.ExportBubbleSort)
	if err != nil {
		_ = purego.Dlclose(lib)
		return nil, fmt.Errorf("%w: %s", ErrMissingSymbol, abi.ExportBubbleSort)
	}
	purego.RegisterFunc(&k.bubbleSort, sortAddr)

	return k, nil
}

// CollatzSteps calls collatz_steps over the C calling convention. The
// call runs on the host's own thread: an input whose trajectory never
// reaches 1 never returns, and unlike the WASM runtime there is nothing
// here that can interrupt it.
func (k *Kernel) CollatzSteps(n int32) int32 {
	return k.collatzSteps(n)
}

// BubbleSort hands the address of v's backing array to the kernel, which
// sorts it in place. Host and kernel share one address space, so nothing
// is copied; the kernel borrows the buffer exclusively until the call
// returns. An empty v passes a null address and a zero count, which the
// kernel never dereferences.
func (k *Kernel) BubbleSort(v []int32) {
	if len(v) == 0 {
		k.bubbleSort(nil, 0)
		return
	}
	k.bubbleSort(&v[0], uintptr(len(v)))
}

// Close unloads the library. The kernel's entry points are invalid
// afterwards; calling them is undefined behavior.
func (k *Kernel) Close() error {
	if k.lib == 0 {
		return nil
	}
	err := purego.Dlclose(k.lib)
	k.lib = 0
	return err
}
