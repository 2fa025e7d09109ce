// Package native loads the kernel as a platform shared library into the
// host's own address space. Calls cross no memory boundary: buffers are
// handed to the kernel by address, with no staging copy and no runtime to
// interrupt a call that does not return.
//
// Build the library with:
//
//	go build -buildmode=c-shared -o libkernel.so ./cmd/libkernel
package native

import "errors"

var (
	// ErrMissingSymbol indicates a library that does not export a symbol the
	// kernel ABI requires.
	ErrMissingSymbol = errors.New("kernel library does not export required symbol")

	// ErrUnsupported indicates a platform without dynamic library loading
	// support.
	ErrUnsupported = errors.New("native kernel loading is not supported on this platform")
)
