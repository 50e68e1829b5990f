package strz

import (
	"github.com/coregx/strz/internal/bitap"
	"github.com/coregx/strz/internal/swar"
)

// Index returns the byte offset of the leftmost occurrence of needle in h,
// or nil if needle does not occur in h (including when needle is empty —
// this package defines find-with-empty-needle as "not found" rather than
// "start of haystack"; see DESIGN.md for why).
//
// The kernel used is chosen entirely by len(needle):
//
//   - 1 byte: FindByte.
//   - 2-4 bytes: packed byte-parallel compare, one uint64 window per 9-len(needle)
//     haystack bytes.
//   - 5-8, 9-16, 17-64 bytes: Shift-Or Bitap with an 8/16/64-bit state word.
//   - >64 bytes: Bitap over the first 64 bytes as a seed, then byte-equal
//     verification of the remainder.
//
// Every dispatch branch returns the same answer a naive O(len(h)*len(needle))
// scan would; they differ only in constant factor.
func Index(h, needle []byte) *int {
	lh, ln := len(h), len(needle)
	if ln == 0 || lh < ln {
		return nil
	}
	switch {
	case ln == 1:
		return FindByte(h, needle[0])
	case ln <= 4:
		return packedFind(h, needle)
	case ln <= 8:
		mask := bitap.BuildMask8(needle)
		if pos := bitap.Find8(h, ln, mask); pos >= 0 {
			return &pos
		}
		return nil
	case ln <= 16:
		mask := bitap.BuildMask16(needle)
		if pos := bitap.Find16(h, ln, mask); pos >= 0 {
			return &pos
		}
		return nil
	case ln <= 64:
		mask := bitap.BuildMask64(needle)
		if pos := bitap.Find64(h, ln, mask); pos >= 0 {
			return &pos
		}
		return nil
	default:
		if pos := bitap.FindSeededLong(h, needle); pos >= 0 {
			return &pos
		}
		return nil
	}
}

// LastIndex returns the byte offset of the rightmost occurrence of needle in
// h, or nil if needle does not occur. Dispatch mirrors Index.
func LastIndex(h, needle []byte) *int {
	lh, ln := len(h), len(needle)
	if ln == 0 || lh < ln {
		return nil
	}
	switch {
	case ln == 1:
		return RFindByte(h, needle[0])
	case ln <= 4:
		return packedRFind(h, needle)
	case ln <= 8:
		mask := bitap.BuildMask8(needle)
		if pos := bitap.RFind8(h, ln, mask); pos >= 0 {
			return &pos
		}
		return nil
	case ln <= 16:
		mask := bitap.BuildMask16(needle)
		if pos := bitap.RFind16(h, ln, mask); pos >= 0 {
			return &pos
		}
		return nil
	case ln <= 64:
		mask := bitap.BuildMask64(needle)
		if pos := bitap.RFind64(h, ln, mask); pos >= 0 {
			return &pos
		}
		return nil
	default:
		if pos := bitap.RFindSeededLong(h, needle); pos >= 0 {
			return &pos
		}
		return nil
	}
}

// packedFind implements the 2-4 byte needle kernel: for each needle byte
// n[k], broadcast it to a per-byte equality mask over an 8-byte haystack
// window (chunk XOR broadcast(n[k]), zero-detected), then AND together the
// k masks after right-shifting each by 8*k bits so that lane p of the
// combined mask requires chunk[p+k] == n[k] for every k simultaneously —
// i.e. lane p is flagged iff the needle matches starting at p.
//
// A window of 8 bytes can only certify start positions p in [0, 8-len(needle)]
// without reading past the window, so consecutive windows start
// 9-len(needle) bytes apart: exactly the number of positions the previous
// window certified, so every haystack position is tested exactly once.
func packedFind(h, needle []byte) int {
	ln := len(needle)
	step := 9 - ln
	n := len(h)
	i := 0
	for i+8 <= n {
		if p, ok := packedMatchInWindow(h, i, needle, true); ok {
			return i + p
		}
		i += step
	}
	// Tail shorter than 8 bytes: fall back to a naive scan over the
	// remaining candidate starts.
	for ; i+ln <= n; i++ {
		if BytesEqual(h[i:], needle, ln) {
			return i
		}
	}
	return -1
}

// packedRFind reuses Index's left-to-right window walk (so both functions
// agree exactly on which positions get tested) but keeps the rightmost
// match seen instead of returning on the first one; since windows advance
// strictly left to right, the last match recorded is always the true
// rightmost occurrence.
func packedRFind(h, needle []byte) int {
	ln := len(needle)
	step := 9 - ln
	n := len(h)
	last := -1

	i := 0
	for i+8 <= n {
		if p, ok := packedMatchInWindow(h, i, needle, false); ok {
			last = i + p
		}
		i += step
	}
	for ; i+ln <= n; i++ {
		if BytesEqual(h[i:], needle, ln) {
			last = i
		}
	}
	return last
}

// packedMatchInWindow tests all valid needle-start positions within the
// 8-byte window h[base:base+8] and returns the leftmost (first=true) or
// rightmost (first=false) one, if any.
func packedMatchInWindow(h []byte, base int, needle []byte, first bool) (int, bool) {
	ln := len(needle)
	chunk := swar.LoadLE64(h, base)

	matches := ^uint64(0)
	for k := 0; k < ln; k++ {
		eq := swar.HasZeroByte(chunk ^ swar.Broadcast(needle[k]))
		matches &= eq >> uint(8*k)
	}
	if matches == 0 {
		return 0, false
	}
	if first {
		return swar.FirstFlaggedLane(matches), true
	}
	return swar.LastFlaggedLane(matches), true
}
