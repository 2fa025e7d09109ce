// Package host provides the runtime environment for executing kernel WASM
// modules.
//
// It abstracts the underlying WASM engine (wazero), manages kernel
// lifecycle, and handles the low-level ABI interactions: resolving and
// verifying the exported symbols, staging buffers through the kernel's
// allocator pair, and encoding raw call arguments. The context passed to a
// kernel call doubles as the watchdog for calls that would otherwise
// never return.
package host
