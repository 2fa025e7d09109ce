package host

import "io"

// runtimeConfig holds configuration for the Runtime.
type runtimeConfig struct {
	memoryLimitPages uint32
	closeOnCtxDone   bool
	wasi             bool
	stdout           io.Writer
	stderr           io.Writer
}

func defaultRuntimeConfig() runtimeConfig {
	return runtimeConfig{
		wasi:           true,
		closeOnCtxDone: true, // Safe default: context expiry interrupts runaway kernel calls
	}
}

// Option configures the Runtime.
type Option func(*runtimeConfig)

// WithMemoryLimitPages caps each kernel's linear memory, in 64 KiB WASM
// pages. Zero keeps the engine default.
func WithMemoryLimitPages(pages uint32) Option {
	return func(c *runtimeConfig) {
		c.memoryLimitPages = pages
	}
}

// WithCloseOnContextDone controls whether an expired or canceled context
// closes the module mid-call, failing the call. Enabled by default:
// collatz_steps never returns for inputs whose trajectory misses 1, and a
// context deadline is the host's only way to bound such a call. Disable
// only when every input is trusted and the interrupt check overhead
// matters.
func WithCloseOnContextDone(enabled bool) Option {
	return func(c *runtimeConfig) {
		c.closeOnCtxDone = enabled
	}
}

// WithWASI controls instantiation of the wasi_snapshot_preview1 host
// module. Kernels built from Go need it; freestanding kernels do not.
// Enabled by default.
func WithWASI(enabled bool) Option {
	return func(c *runtimeConfig) {
		c.wasi = enabled
	}
}

// WithStdout routes kernel stdout. Discarded by default.
func WithStdout(w io.Writer) Option {
	return func(c *runtimeConfig) {
		c.stdout = w
	}
}

// WithStderr routes kernel stderr. Discarded by default.
func WithStderr(w io.Writer) Option {
	return func(c *runtimeConfig) {
		c.stderr = w
	}
}
