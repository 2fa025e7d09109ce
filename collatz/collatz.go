// Package collatz counts the steps a value takes to reach 1 under the
// Collatz transformation.
package collatz

// Steps returns the number of transformation steps for n to reach 1: even
// values are halved, odd values become 3n+1. Steps(1) is 0.
//
// Arithmetic wraps on int32 overflow (two's complement), so trajectories
// that leave the 32-bit range follow the wrapped values rather than the
// mathematical sequence. A wrap can carry a trajectory across the sign
// boundary in either direction.
//
// Steps returns only when the trajectory reaches 1. Termination for
// positive inputs is conjectural, and not guaranteed at all once a
// trajectory wraps. Every wrap-free trajectory from n <= 0 settles into a
// cycle below 1 (0 and -1 are the canonical cases) and never returns.
// Callers that cannot trust their input must bound the call externally;
// rejecting or capping inputs here would change observable behavior for
// conforming callers.
func Steps(n int32) int32 {
	var steps int32
	for n != 1 {
		n = next(n)
		steps++
	}
	return steps
}

// next applies a single transformation with wrapping int32 arithmetic.
// Division truncates toward zero, and n%2 carries the sign of n, so odd
// negative values take the 3n+1 branch.
func next(n int32) int32 {
	if n%2 == 0 {
		return n / 2
	}
	return 3*n + 1
}
