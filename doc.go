// Package sdk is the root of the kernlet module, a pair of minimal compute
// kernels and the plumbing to call them across a foreign-function boundary.
//
// The kernels themselves are ordinary Go: collatz counts transformation
// steps, bubsort sorts int32 buffers in place. Package guest and
// cmd/kernel expose them as a WASM module over the wasm32 C ABI;
// cmd/libkernel builds the same surface as a platform shared library.
//
// Hosts embed a kernel either with package host, which runs the WASM
// module under wazero and stages buffers through the kernel's allocator
// pair, or with package native, which loads the shared library into the
// host's own address space and passes buffers by pointer. The conventions
// both sides agree on live in internal/abi and wireformat, and package
// manifest declares the exported surface so hosts can verify a module
// before calling into it.
package sdk
