// Command kernel builds the compute kernels as a WASM module:
//
//	GOOS=wasip1 GOARCH=wasm go build -buildmode=c-shared -o kernel.wasm ./cmd/kernel
//
// The guest import links the exported symbol table; there is no other
// entry point.
package main

import (
	_ "github.com/kernlet-dev/kernlet-sdk/guest"
)

func main() {
	// main is not called in -buildmode=c-shared
}
