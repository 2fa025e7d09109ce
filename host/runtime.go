package host

import (
	"context"
	"fmt"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/imports/wasi_snapshot_preview1"
)

// Runtime manages the lifecycle of kernel WASM modules. One Runtime can
// host many kernels; closing it closes them all.
type Runtime struct {
	runtime wazero.Runtime
	config  runtimeConfig
}

// NewRuntime creates a kernel runtime with the given options.
func NewRuntime(ctx context.Context, opts ...Option) (*Runtime, error) {
	cfg := defaultRuntimeConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	rcfg := wazero.NewRuntimeConfig().WithCloseOnContextDone(cfg.closeOnCtxDone)
	if cfg.memoryLimitPages > 0 {
		rcfg = rcfg.WithMemoryLimitPages(cfg.memoryLimitPages)
	}

	rt := wazero.NewRuntimeWithConfig(ctx, rcfg)
	if cfg.wasi {
		wasi_snapshot_preview1.MustInstantiate(ctx, rt)
	}

	return &Runtime{runtime: rt, config: cfg}, nil
}

// Close releases the engine and every kernel instantiated in it.
func (r *Runtime) Close(ctx context.Context) error {
	return r.runtime.Close(ctx)
}

// Load instantiates a kernel module from its binary and resolves the
// kernel ABI, failing on missing exports or signature drift.
func (r *Runtime) Load(ctx context.Context, wasmBytes []byte) (*Kernel, error) {
	mcfg := wazero.NewModuleConfig().WithStartFunctions()
	if r.config.stdout != nil {
		mcfg = mcfg.WithStdout(r.config.stdout)
	}
	if r.config.stderr != nil {
		mcfg = mcfg.WithStderr(r.config.stderr)
	}

	mod, err := r.runtime.InstantiateWithConfig(ctx, wasmBytes, mcfg)
	if err != nil {
		return nil, fmt.Errorf("failed to instantiate kernel: %w", err)
	}

	// c-shared modules are reactors: run _initialize once, never _start.
	if init := mod.ExportedFunction("_initialize"); init != nil {
		if _, err := init.Call(ctx); err != nil {
			_ = mod.Close(ctx)
			return nil, fmt.Errorf("failed to call _initialize: %w", err)
		}
	}

	k, err := newKernel(mod)
	if err != nil {
		_ = mod.Close(ctx)
		return nil, err
	}
	return k, nil
}
