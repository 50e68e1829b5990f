// Package strz provides byte-string algorithms tuned for large,
// arbitrary-length, not-necessarily-UTF-8 corpora: substring search,
// bounded edit distance and weighted alignment scoring, a 64-bit
// non-cryptographic hash, bulk sequence sort, and byte-wise case folding.
//
// Every function in this package is a pure, total function of its
// arguments: there is no global state, no internal goroutines, and no
// hidden allocation beyond what each doc comment states. Callers that want
// cancellation or chunked processing must slice their own inputs; the only
// built-in bounded-work control is the bound parameter on Levenshtein.
//
// The package is safe for concurrent use from multiple goroutines as long
// as distinct calls do not share a mutable scratch buffer or a Sequence's
// Order slice, and no other code concurrently mutates an input buffer.
package strz

import "github.com/coregx/strz/internal/swar"

// Ordering is a three-valued lexicographic comparison result.
type Ordering int

const (
	Less    Ordering = -1
	Equal   Ordering = 0
	Greater Ordering = 1
)

// String returns "Less", "Equal", or "Greater".
func (o Ordering) String() string {
	switch o {
	case Less:
		return "Less"
	case Greater:
		return "Greater"
	default:
		return "Equal"
	}
}

// BytesEqual reports whether the first n bytes of a and b match. Zero-length
// comparisons (n == 0) are always equal. Callers must ensure len(a) >= n and
// len(b) >= n; this mirrors spec's equal(a, b, n) rather than Go's
// bytes.Equal, which compares whole slices — useful when verifying a needle
// match against a haystack slice that extends beyond the compared region.
func BytesEqual(a, b []byte, n int) bool {
	if n == 0 {
		return true
	}
	i := 0
	for i+8 <= n {
		if swar.LoadLE64(a, i) != swar.LoadLE64(b, i) {
			return false
		}
		i += 8
	}
	for ; i < n; i++ {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Compare performs a byte-unsigned lexicographic comparison of a and b.
// It compares the common prefix (min(len(a), len(b)) bytes); if that prefix
// is equal, the shorter string is Less. Equal-length, byte-equal inputs
// compare Equal.
func Compare(a, b []byte) Ordering {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	if pos := MismatchFirst(a, b, n); pos != nil {
		if a[*pos] < b[*pos] {
			return Less
		}
		return Greater
	}
	switch {
	case len(a) < len(b):
		return Less
	case len(a) > len(b):
		return Greater
	default:
		return Equal
	}
}

// MismatchFirst returns the smallest index i < n such that a[i] != b[i], or
// nil if the first n bytes of a and b match entirely. Callers must ensure
// len(a) >= n and len(b) >= n.
func MismatchFirst(a, b []byte, n int) *int {
	i := 0
	for i+8 <= n {
		if swar.LoadLE64(a, i) != swar.LoadLE64(b, i) {
			// The lane differs; fall back to a byte scan to pinpoint which
			// of the 8 bytes mismatched first.
			for j := 0; j < 8; j++ {
				if a[i+j] != b[i+j] {
					pos := i + j
					return &pos
				}
			}
		}
		i += 8
	}
	for ; i < n; i++ {
		if a[i] != b[i] {
			pos := i
			return &pos
		}
	}
	return nil
}

// MismatchLast returns the largest index i < n such that a[i] != b[i], or
// nil if the first n bytes of a and b match entirely.
func MismatchLast(a, b []byte, n int) *int {
	for i := n - 1; i >= 0; i-- {
		if a[i] != b[i] {
			pos := i
			return &pos
		}
	}
	return nil
}

// FindByte returns the index of the leftmost occurrence of needle in h, or
// nil if it does not occur.
//
// Scalar algorithm: broadcast needle into every lane of a uint64, XOR
// against 8-byte windows of h, and use the zero-byte-detection formula to
// spot a match lane; this is 8x fewer comparisons per loop iteration than a
// byte-at-a-time scan. See internal/swar for the shared primitive.
func FindByte(h []byte, needle byte) *int {
	n := len(h)
	mask := swar.Broadcast(needle)
	i := 0
	for i+8 <= n {
		x := swar.LoadLE64(h, i) ^ mask
		if z := swar.HasZeroByte(x); z != 0 {
			pos := i + swar.FirstZeroByteIndex(z)
			return &pos
		}
		i += 8
	}
	for ; i < n; i++ {
		if h[i] == needle {
			pos := i
			return &pos
		}
	}
	return nil
}

// RFindByte returns the index of the rightmost occurrence of needle in h, or
// nil if it does not occur.
func RFindByte(h []byte, needle byte) *int {
	n := len(h)
	mask := swar.Broadcast(needle)

	// Tail bytes that don't fill a full 8-byte lane are checked first so the
	// aligned SWAR loop below can scan strictly from the highest full
	// 8-byte window down to zero.
	tailStart := (n / 8) * 8
	for i := n - 1; i >= tailStart; i-- {
		if h[i] == needle {
			pos := i
			return &pos
		}
	}

	for i := tailStart - 8; i >= 0; i -= 8 {
		x := swar.LoadLE64(h, i) ^ mask
		if z := swar.HasZeroByte(x); z != 0 {
			pos := i + swar.LastZeroByteIndex(z)
			return &pos
		}
	}
	return nil
}

// LongestCommonPrefix returns the length of the longest common prefix of a
// and b. It is the same mismatch-detection kernel as MismatchFirst with no
// match treated as "the whole shorter string".
//
// Not part of the original C-library surface this package is modeled on,
// but grounded in the same byte-parallel mismatch primitive and a natural
// complement to Compare for corpora-processing callers that need to know
// *how much* two strings share, not just their order.
func LongestCommonPrefix(a, b []byte) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	if pos := MismatchFirst(a, b, n); pos != nil {
		return *pos
	}
	return n
}

// LongestCommonSuffix returns the length of the longest common suffix of a
// and b.
func LongestCommonSuffix(a, b []byte) int {
	la, lb := len(a), len(b)
	n := la
	if lb < n {
		n = lb
	}
	i := 0
	for i < n && a[la-1-i] == b[lb-1-i] {
		i++
	}
	return i
}
