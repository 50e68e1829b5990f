// Package bitap implements the Shift-Or (Baeza-Yates-Gonnet) bit-parallel
// substring matcher used for needles of 5-64 bytes, plus the
// seeded-prefix scan used for needles longer than 64 bytes.
//
// The algorithm maintains a running state word where bit i is clear iff the
// needle's first i+1 bytes match the haystack bytes ending at the current
// position. A 256-entry mask table, indexed by haystack byte, encodes
// which needle positions that byte is compatible with; folding the mask into
// the state on every haystack byte costs one shift, one OR, and one table
// lookup per byte regardless of needle length — the classic bit-parallelism
// trade of matching width for matching time.
//
// Three state widths are provided (8/16/64-bit), one per needle-length
// tier; each is a distinct, non-generic implementation in the style of this
// codebase's other length-specialized kernels (see internal/swar and
// strz/search.go), since the mask tables and the "match bit" position differ
// per width and a generic implementation would hide that a 64-bit state
// machine is the workhorse while 8/16-bit are memory-saving specializations
// for the short end of the range.
package bitap

// foldAndTest64 folds one haystack byte's mask into state (the shift-or
// step) and reports whether a match ends at this byte.
//
//go:inline
func foldAndTest64(state, mask uint64, matchBit uint) (next uint64, matched bool) {
	next = (state << 1) | mask
	return next, next&(1<<matchBit) == 0
}

// BuildMask64 builds the 256-entry Shift-Or mask table for needle, which
// must have length in [1, 64]. mask[c] has bit i clear iff needle[i] == c.
func BuildMask64(needle []byte) (mask [256]uint64) {
	for i := range mask {
		mask[i] = ^uint64(0)
	}
	for i, c := range needle {
		mask[c] &^= 1 << uint(i)
	}
	return mask
}

// Find64 returns the leftmost occurrence of needle (1-64 bytes, mask
// produced by BuildMask64) in haystack, or -1.
func Find64(haystack []byte, needleLen int, mask [256]uint64) int {
	matchBit := uint(needleLen - 1)
	state := ^uint64(0)
	for i, c := range haystack {
		var matched bool
		state, matched = foldAndTest64(state, mask[c], matchBit)
		if matched {
			return i - needleLen + 1
		}
	}
	return -1
}

// RFind64 returns the rightmost occurrence of needle in haystack using the
// same mask table as Find64.
func RFind64(haystack []byte, needleLen int, mask [256]uint64) int {
	matchBit := uint(needleLen - 1)
	state := ^uint64(0)
	last := -1
	for i, c := range haystack {
		var matched bool
		state, matched = foldAndTest64(state, mask[c], matchBit)
		if matched {
			last = i - needleLen + 1
		}
	}
	return last
}

// BuildMask16 builds the 256-entry Shift-Or mask table for a needle of
// length in [1, 16].
func BuildMask16(needle []byte) (mask [256]uint16) {
	for i := range mask {
		mask[i] = ^uint16(0)
	}
	for i, c := range needle {
		mask[c] &^= 1 << uint(i)
	}
	return mask
}

// Find16 returns the leftmost occurrence of a 9-16 byte needle in haystack.
func Find16(haystack []byte, needleLen int, mask [256]uint16) int {
	matchBit := uint(needleLen - 1)
	state := ^uint16(0)
	for i, c := range haystack {
		state = (state << 1) | mask[c]
		if state&(1<<matchBit) == 0 {
			return i - needleLen + 1
		}
	}
	return -1
}

// RFind16 returns the rightmost occurrence of a 9-16 byte needle in haystack.
func RFind16(haystack []byte, needleLen int, mask [256]uint16) int {
	matchBit := uint(needleLen - 1)
	state := ^uint16(0)
	last := -1
	for i, c := range haystack {
		state = (state << 1) | mask[c]
		if state&(1<<matchBit) == 0 {
			last = i - needleLen + 1
		}
	}
	return last
}

// BuildMask8 builds the 256-entry Shift-Or mask table for a needle of
// length in [1, 8].
func BuildMask8(needle []byte) (mask [256]uint8) {
	for i := range mask {
		mask[i] = ^uint8(0)
	}
	for i, c := range needle {
		mask[c] &^= 1 << uint(i)
	}
	return mask
}

// Find8 returns the leftmost occurrence of a 5-8 byte needle in haystack.
func Find8(haystack []byte, needleLen int, mask [256]uint8) int {
	matchBit := uint(needleLen - 1)
	state := ^uint8(0)
	for i, c := range haystack {
		state = (state << 1) | mask[c]
		if state&(1<<matchBit) == 0 {
			return i - needleLen + 1
		}
	}
	return -1
}

// RFind8 returns the rightmost occurrence of a 5-8 byte needle in haystack.
func RFind8(haystack []byte, needleLen int, mask [256]uint8) int {
	matchBit := uint(needleLen - 1)
	state := ^uint8(0)
	last := -1
	for i, c := range haystack {
		state = (state << 1) | mask[c]
		if state&(1<<matchBit) == 0 {
			last = i - needleLen + 1
		}
	}
	return last
}

// FindSeededLong finds the leftmost occurrence of a needle longer than 64
// bytes. It uses Find64 to locate a candidate match of the first 64 bytes,
// then verifies the remaining needleLen-64 bytes byte-for-byte; on a failed
// verification it resumes the 64-bit scan immediately after the candidate's
// start.
func FindSeededLong(haystack, needle []byte) int {
	prefix := needle[:64]
	mask := BuildMask64(prefix)
	searchFrom := 0
	for {
		rel := Find64(haystack[searchFrom:], 64, mask)
		if rel == -1 {
			return -1
		}
		candidate := searchFrom + rel
		if candidate+len(needle) > len(haystack) {
			return -1
		}
		if tailEqual(haystack[candidate+64:candidate+len(needle)], needle[64:]) {
			return candidate
		}
		searchFrom = candidate + 1
	}
}

// RFindSeededLong is the rightmost-match mirror of FindSeededLong.
func RFindSeededLong(haystack, needle []byte) int {
	prefix := needle[:64]
	mask := BuildMask64(prefix)
	best := -1
	searchFrom := 0
	for {
		rel := Find64(haystack[searchFrom:], 64, mask)
		if rel == -1 {
			break
		}
		candidate := searchFrom + rel
		if candidate+len(needle) > len(haystack) {
			break
		}
		if tailEqual(haystack[candidate+64:candidate+len(needle)], needle[64:]) {
			best = candidate
		}
		searchFrom = candidate + 1
	}
	return best
}

func tailEqual(a, b []byte) bool {
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
