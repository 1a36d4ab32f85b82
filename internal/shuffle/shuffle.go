// Package shuffle provides unbiased random permutations.
package shuffle

import "math/rand/v2"

// Slice returns a new slice holding a uniformly random permutation of s.
// The input is never mutated. Uses a Fisher-Yates walk from the last
// position backward, swapping each element with a uniformly chosen
// position at or before it.
func Slice[T any](s []T) []T {
	out := make([]T, len(s))
	copy(out, s)
	for i := len(out) - 1; i > 0; i-- {
		j := rand.IntN(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}
