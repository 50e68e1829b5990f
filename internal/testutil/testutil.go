// Package testutil provides fixture generation shared by this module's
// tests and fuzz seed corpora, grounded in the source library's own
// sz_generate test-data helper (not part of its public API there either).
package testutil

import "math/rand"

// RandString returns a random byte string of length n drawn from alphabet.
// If alphabet is empty, all 256 byte values are used, which is the
// important case for this package: these algorithms must not assume
// printable or UTF-8 input.
func RandString(r *rand.Rand, n int, alphabet []byte) []byte {
	out := make([]byte, n)
	if len(alphabet) == 0 {
		for i := range out {
			out[i] = byte(r.Intn(256))
		}
		return out
	}
	for i := range out {
		out[i] = alphabet[r.Intn(len(alphabet))]
	}
	return out
}
