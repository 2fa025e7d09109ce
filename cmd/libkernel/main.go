// Command libkernel builds the compute kernels as a platform shared
// library exposing the C calling convention:
//
//	go build -buildmode=c-shared -o libkernel.so ./cmd/libkernel
//
// Hosts in the same address space load it with dlopen (see the native
// package) and call collatz_steps and bubble_sort directly; no staging
// allocator is needed because there is no separate linear memory.
package main

func main() {
	// main is not called in -buildmode=c-shared
}
