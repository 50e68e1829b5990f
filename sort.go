package strz

import (
	"encoding/binary"
	"sort"
)

// Comparator reports whether the element currently at order position i
// sorts before the element at order position j. Implementations typically
// close over a Sequence and its Order slice, e.g.:
//
//	order := strz.NewOrder(seq.Len())
//	less := func(i, j int) bool {
//	    return strz.Compare(seq.Bytes(order[i]), seq.Bytes(order[j])) == strz.Less
//	}
type Comparator func(i, j int) bool

// Partition performs a Hoare-style in-place partition of order: elements
// for which keep returns true are moved before all elements for which it
// returns false, and the boundary index is returned. keep receives the
// underlying sequence index (the value stored in order, not its position);
// it may be called more than once for the same index, so it must be a pure
// function of that index.
//
// The partition is unstable: relative order within each side is not
// preserved.
func Partition(order []int, keep func(idx int) bool) int {
	i, j := 0, len(order)-1
	for {
		for i <= j && keep(order[i]) {
			i++
		}
		for i <= j && !keep(order[j]) {
			j--
		}
		if i > j {
			break
		}
		order[i], order[j] = order[j], order[i]
		i++
		j--
	}
	return i
}

// Merge performs an in-place merge of the two adjacent runs order[:pivot]
// and order[pivot:], each already sorted ascending under less, leaving
// order[:] sorted ascending under less. less compares the elements at
// positions i and j of order as it stands when less is called, including
// rotations Merge has already made, matching Comparator's contract.
//
// The merge proceeds by block rotation: whenever the head of the right run
// sorts before the head of the left run, the whole run of right-run
// elements smaller than the left head is rotated in front of it. This keeps
// the merge in-place (no second array) at the cost of being unstable and,
// worst case, superlinear in the number of element moves — an accepted
// trade accepted here since stability is not guaranteed and no extra-memory
// allowance is offered for this operation.
func Merge(order []int, pivot int, less Comparator) {
	lo, mid, hi := 0, pivot, len(order)
	for lo < mid && mid < hi {
		if !less(mid, lo) {
			// order[lo] already <= order[mid]; it's in its final place.
			lo++
			continue
		}
		// Find how far the "belongs before order[lo]" run in the right
		// half extends, then rotate that whole run in front of order[lo].
		next := mid
		for next < hi && less(next, lo) {
			next++
		}
		rotateLeft(order[lo:next], mid-lo)
		lo += next - mid
		mid = next
	}
}

// rotateLeft rotates s left by k positions in place using the standard
// three-reversal trick: reverse the two halves, then reverse the whole.
func rotateLeft(s []int, k int) {
	if k <= 0 || k >= len(s) {
		return
	}
	reverseInts(s[:k])
	reverseInts(s[k:])
	reverseInts(s)
}

func reverseInts(s []int) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

// radixKeyWidth is the number of leading bytes folded into the sort's radix
// key: bytes packed most-significant-first so numeric order on the key
// matches lexicographic order on the prefix.
const radixKeyWidth = 4

// radixKey packs the first up to 4 bytes of b into a big-endian uint32,
// conceptually right-padding shorter strings with zero bytes. Big-endian
// packing is what makes ascending numeric order on the key agree with
// ascending lexicographic order on the prefix.
func radixKey(b []byte) uint32 {
	var buf [radixKeyWidth]byte
	copy(buf[:], b)
	return binary.BigEndian.Uint32(buf[:])
}

// Sort performs a full lexicographic ascending sort of order (unstable):
// the permutation of seq's elements is left in order such that consecutive
// elements compare Less-or-Equal under Compare.
//
// Algorithm: compute each element's 4-byte radix key, LSD radix-sort order
// by that key (so equal-prefix elements end up contiguous), then run a
// full-lexicographic comparator sort within each equal-key run to settle
// ties the radix pass can't distinguish — an Introsort-style recursion
// from the radix pre-pass down to a plain comparison sort.
func Sort(seq Sequence, order []int) {
	if len(order) < 2 {
		return
	}
	keys := make([]uint32, len(order))
	for i, idx := range order {
		keys[i] = radixKey(seq.Bytes(idx))
	}
	radixSortByKey(order, keys)
	sortEqualKeyRuns(seq, order, keys)
}

// SortPartial sorts order such that its first n positions hold the n
// smallest elements in ascending order; the remaining positions hold the
// rest in unspecified order.
//
// This implementation satisfies that contract by performing a full Sort:
// every position ends up correct, which trivially satisfies "the first n
// are correct" without a dedicated partial-selection algorithm. Conformant
// but not work-optimal for n much smaller than len(order); see DESIGN.md.
func SortPartial(seq Sequence, order []int, n int) {
	Sort(seq, order)
	_ = n
}

// SortIntro sorts order under a caller-supplied comparator, with no radix
// pre-pass — the comparator-only counterpart to Sort, for sequences whose
// ordering isn't plain lexicographic byte order (e.g. case-insensitive or
// reverse sorts).
func SortIntro(order []int, less Comparator) {
	sort.Sort(&intSliceSorter{order: order, less: less})
}

func sortEqualKeyRuns(seq Sequence, order []int, keys []uint32) {
	n := len(order)
	for start := 0; start < n; {
		end := start + 1
		for end < n && keys[end] == keys[start] {
			end++
		}
		if end-start > 1 {
			run := order[start:end]
			sort.Sort(&intSliceSorter{
				order: run,
				less: func(i, j int) bool {
					return Compare(seq.Bytes(run[i]), seq.Bytes(run[j])) == Less
				},
			})
		}
		start = end
	}
}

// intSliceSorter adapts an order slice plus a position-based Comparator to
// sort.Interface.
type intSliceSorter struct {
	order []int
	less  Comparator
}

func (s *intSliceSorter) Len() int           { return len(s.order) }
func (s *intSliceSorter) Less(i, j int) bool { return s.less(i, j) }
func (s *intSliceSorter) Swap(i, j int) {
	s.order[i], s.order[j] = s.order[j], s.order[i]
}

// radixSortByKey sorts order and keys in lockstep, ascending by key, using
// four passes of 8-bit LSD counting sort. Each pass is stable, and four
// stable LSD passes over 8-bit digits of a 32-bit key compose into a
// correct, stable ascending sort of the full key.
func radixSortByKey(order []int, keys []uint32) {
	n := len(order)
	srcOrder, srcKeys := order, keys
	dstOrder := make([]int, n)
	dstKeys := make([]uint32, n)

	for shift := uint(0); shift < 32; shift += 8 {
		var count [257]int
		for _, k := range srcKeys {
			count[byte(k>>shift)+1]++
		}
		for i := 0; i < 256; i++ {
			count[i+1] += count[i]
		}
		for i := 0; i < n; i++ {
			b := byte(srcKeys[i] >> shift)
			pos := count[b]
			dstOrder[pos] = srcOrder[i]
			dstKeys[pos] = srcKeys[i]
			count[b]++
		}
		srcOrder, dstOrder = dstOrder, srcOrder
		srcKeys, dstKeys = dstKeys, srcKeys
	}

	// 4 passes is even, so after the loop srcOrder/srcKeys (the "current"
	// buffers) are the caller's order/keys slices again and these copies
	// are self-copies; they place the sorted result in order/keys either way.
	copy(order, srcOrder)
	copy(keys, srcKeys)
}
