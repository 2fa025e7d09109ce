package host

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/tetratelabs/wazero/api"

	"github.com/kernlet-dev/kernlet-sdk/internal/abi"
	"github.com/kernlet-dev/kernlet-sdk/manifest"
	"github.com/kernlet-dev/kernlet-sdk/wireformat"
)

// Kernel is an instantiated kernel module with its ABI resolved. Calls are
// not safe for concurrent use; WASM modules are single threaded.
type Kernel struct {
	module  api.Module
	memory  api.Memory
	collatz api.Function
	sort    api.Function
	alloc   api.Function // nil when the module ships no staging allocator
	dealloc api.Function
}

// newKernel resolves and verifies the kernel ABI on mod. The two compute
// exports are mandatory. The staging pair is optional, but must match the
// ABI when present and must come as a pair.
func newKernel(mod api.Module) (*Kernel, error) {
	memory := mod.Memory()
	if memory == nil {
		return nil, fmt.Errorf("kernel module has no linear memory")
	}

	k := &Kernel{module: mod, memory: memory}

	targets := map[string]*api.Function{
		abi.ExportCollatzSteps: &k.collatz,
		abi.ExportBubbleSort:   &k.sort,
		abi.ExportAllocate:     &k.alloc,
		abi.ExportDeallocate:   &k.dealloc,
	}
	required := []string{abi.ExportCollatzSteps, abi.ExportBubbleSort}
	optional := []string{abi.ExportAllocate, abi.ExportDeallocate}

	for _, name := range required {
		f := mod.ExportedFunction(name)
		if f == nil {
			return nil, fmt.Errorf("%w: %s", ErrMissingExport, name)
		}
		if err := checkSignature(name, f.Definition(), kernelABI[name]); err != nil {
			return nil, err
		}
		*targets[name] = f
	}
	for _, name := range optional {
		f := mod.ExportedFunction(name)
		if f == nil {
			continue
		}
		if err := checkSignature(name, f.Definition(), kernelABI[name]); err != nil {
			return nil, err
		}
		*targets[name] = f
	}

	// Half a staging pair is a broken module, not an optional feature.
	if (k.alloc == nil) != (k.dealloc == nil) {
		return nil, fmt.Errorf("%w: kernel exports only half the allocate/deallocate pair", ErrMissingExport)
	}

	return k, nil
}

// Close releases the kernel instance.
func (k *Kernel) Close(ctx context.Context) error {
	return k.module.Close(ctx)
}

// CollatzSteps calls the collatz_steps export with n and returns the step
// count. Inputs whose trajectory never reaches 1, 0 and -1 among them,
// leave the kernel spinning; bound the call with a context deadline and
// the runtime's close-on-done watchdog (on by default), which fails the
// call and closes the module.
func (k *Kernel) CollatzSteps(ctx context.Context, n int32) (int32, error) {
	results, err := k.collatz.Call(ctx, api.EncodeI32(n))
	if err != nil {
		return 0, fmt.Errorf("collatz_steps: %w", err)
	}
	return api.DecodeI32(results[0]), nil
}

// BubbleSort sorts v in place by staging it through the kernel: the
// encoded buffer is placed in linear memory with the kernel's allocator,
// sorted by the bubble_sort export, and the result is read back into v.
// The kernel keeps no reference to the buffer after the call; the staging
// region is freed before BubbleSort returns.
//
// An empty v calls the export with (0, 0) and needs no staging, so it
// works even on kernels without an allocator.
func (k *Kernel) BubbleSort(ctx context.Context, v []int32) error {
	byteLen, err := wireformat.ByteLen(len(v))
	if err != nil {
		return err
	}

	if len(v) == 0 {
		if _, err := k.sort.Call(ctx, 0, 0); err != nil {
			return fmt.Errorf("bubble_sort: %w", err)
		}
		return nil
	}

	ptr, err := k.allocate(ctx, byteLen)
	if err != nil {
		return err
	}
	defer k.deallocate(ctx, ptr, byteLen)

	if !k.memory.Write(ptr, wireformat.AppendInt32s(make([]byte, 0, byteLen), v)) {
		return &MemoryAccessError{Op: "write", Ptr: ptr, Len: byteLen, Size: k.memory.Size()}
	}

	// The export takes the element count, not the byte length.
	if _, err := k.sort.Call(ctx, api.EncodeU32(ptr), api.EncodeU32(uint32(len(v)))); err != nil {
		return fmt.Errorf("bubble_sort: %w", err)
	}

	data, ok := k.memory.Read(ptr, byteLen)
	if !ok {
		return &MemoryAccessError{Op: "read", Ptr: ptr, Len: byteLen, Size: k.memory.Size()}
	}

	// data views linear memory directly; decode into v before anything can
	// move or free it.
	return wireformat.ReadInt32s(v, data)
}

// VerifyManifest checks every export the manifest declares against the
// instantiated module: present, and with the declared signature.
func (k *Kernel) VerifyManifest(m *manifest.Manifest) error {
	for _, exp := range m.Exports {
		f := k.module.ExportedFunction(exp.Name)
		if f == nil {
			return fmt.Errorf("%w: %s", ErrMissingExport, exp.Name)
		}
		want, err := signatureFromManifest(exp)
		if err != nil {
			return err
		}
		if err := checkSignature(exp.Name, f.Definition(), want); err != nil {
			return err
		}
	}
	return nil
}

func (k *Kernel) allocate(ctx context.Context, size uint32) (uint32, error) {
	if k.alloc == nil {
		return 0, fmt.Errorf("%w: %s", ErrMissingExport, abi.ExportAllocate)
	}
	results, err := k.alloc.Call(ctx, api.EncodeU32(size))
	if err != nil {
		return 0, fmt.Errorf("allocate: %w", err)
	}
	ptr := api.DecodeU32(results[0])
	if ptr == 0 {
		return 0, &AllocationError{Size: size}
	}
	return ptr, nil
}

// deallocate is best effort: the kernel allocator is idempotent, and a
// failed free only pins guest memory until the module closes.
func (k *Kernel) deallocate(ctx context.Context, ptr, size uint32) {
	if k.dealloc == nil {
		return
	}
	if _, err := k.dealloc.Call(ctx, api.EncodeU32(ptr), api.EncodeU32(size)); err != nil {
		slog.DebugContext(ctx, "kernel deallocate failed", "ptr", ptr, "size", size, "error", err)
	}
}
