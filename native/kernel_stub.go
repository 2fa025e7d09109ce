//go:build !((darwin || freebsd || linux) && (amd64 || arm64))

package native

import "fmt"

// Kernel is a kernel library loaded into the host process. On this
// platform it cannot be constructed: Open always fails with ErrUnsupported.
type Kernel struct{}

// Open reports that dynamic kernel loading is unsupported here.
func Open(path string) (*Kernel, error) {
	return nil, fmt.Errorf("failed to load kernel library %s: %w", path, ErrUnsupported)
}

func (k *Kernel) CollatzSteps(n int32) int32 { return 0 }

func (k *Kernel) BubbleSort(v []int32) {}

func (k *Kernel) Close() error { return nil }
