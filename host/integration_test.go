package host

import (
	"context"
	"errors"
	"os"
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kernlet-dev/kernlet-sdk/manifest"
)

const kernelWasmPath = "testdata/kernel.wasm"

// loadKernelWasm reads the compiled kernel module, skipping the test when
// the artifact has not been built.
func loadKernelWasm(t *testing.T) []byte {
	t.Helper()
	wasm, err := os.ReadFile(kernelWasmPath)
	if errors.Is(err, os.ErrNotExist) {
		t.Skipf("%s not built; run: GOOS=wasip1 GOARCH=wasm go build -buildmode=c-shared -o host/%s ./cmd/kernel", kernelWasmPath, kernelWasmPath)
	}
	require.NoError(t, err)
	return wasm
}

func TestKernelEndToEnd(t *testing.T) {
	wasm := loadKernelWasm(t)
	ctx := context.Background()

	r, err := NewRuntime(ctx)
	require.NoError(t, err)
	defer r.Close(ctx)

	k, err := r.Load(ctx, wasm)
	require.NoError(t, err)
	defer k.Close(ctx)

	require.NoError(t, k.VerifyManifest(manifest.Default()))

	for _, tt := range []struct{ n, want int32 }{
		{n: 1, want: 0},
		{n: 6, want: 8},
		{n: 27, want: 111},
	} {
		got, err := k.CollatzSteps(ctx, tt.n)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "n=%d", tt.n)
	}

	v := []int32{5, 4, 3, 2, 1}
	require.NoError(t, k.BubbleSort(ctx, v))
	assert.Equal(t, []int32{1, 2, 3, 4, 5}, v)

	require.NoError(t, k.BubbleSort(ctx, nil))

	big := make([]int32, 1000)
	seed := uint32(42)
	for i := range big {
		seed = seed*1664525 + 1013904223
		big[i] = int32(seed)
	}
	want := slices.Clone(big)
	slices.Sort(want)
	require.NoError(t, k.BubbleSort(ctx, big))
	assert.Equal(t, want, big)
}

func TestKernelRepeatedStaging(t *testing.T) {
	wasm := loadKernelWasm(t)
	ctx := context.Background()

	r, err := NewRuntime(ctx)
	require.NoError(t, err)
	defer r.Close(ctx)

	k, err := r.Load(ctx, wasm)
	require.NoError(t, err)
	defer k.Close(ctx)

	// Each call allocates and frees its staging buffer; the kernel-side cap
	// would trip after a few iterations if frees leaked.
	for i := 0; i < 50; i++ {
		v := []int32{3, 2, 1}
		require.NoError(t, k.BubbleSort(ctx, v))
		require.Equal(t, []int32{1, 2, 3}, v)
	}
}

func TestKernelWatchdogInterruptsNonTermination(t *testing.T) {
	wasm := loadKernelWasm(t)
	ctx := context.Background()

	r, err := NewRuntime(ctx)
	require.NoError(t, err)
	defer r.Close(ctx)

	k, err := r.Load(ctx, wasm)
	require.NoError(t, err)

	// The trajectory from -1 cycles forever below 1. The call must be
	// failed by the context deadline, not by anything the kernel does.
	callCtx, cancel := context.WithTimeout(ctx, 200*time.Millisecond)
	defer cancel()

	_, err = k.CollatzSteps(callCtx, -1)
	require.Error(t, err, "collatz_steps(-1) must be interrupted by the deadline")
}
