package strz

import "fmt"

// Sequence is an addressable collection of count byte strings, consumed
// through a single accessor: Bytes(i) returns the i'th element's bytes,
// i in [0, Len()). This folds a separate start-offset/length-pair-plus-
// opaque-handle API into one method, since a Go slice already carries its
// own pointer and length together.
//
// Sequence itself is never mutated by any operation in this package; all
// reordering happens through a caller-owned Order slice passed alongside
// it (see Partition, Merge, Sort, SortPartial, SortIntro).
type Sequence interface {
	Len() int
	Bytes(i int) []byte
}

// sliceSeq adapts a [][]byte directly to Sequence.
type sliceSeq [][]byte

func (s sliceSeq) Len() int          { return len(s) }
func (s sliceSeq) Bytes(i int) []byte { return s[i] }

// FromSlice wraps a [][]byte as a Sequence. The returned Sequence aliases
// elems; elements must not be mutated while the Sequence is in use.
func FromSlice(elems [][]byte) Sequence {
	return sliceSeq(elems)
}

// NewOrder returns the identity permutation [0, 1, ..., n-1], the required
// initial state for a Sequence's Order slice.
func NewOrder(n int) []int {
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	return order
}

// ErrNonMonotonicOffsets is returned by NewTapeView32/64 when the supplied
// offsets array is not monotonically non-decreasing, or when its last entry
// does not equal len(tape), violating the tape layout's precondition. Unlike the algorithmic core, tape construction is
// a boundary function a caller invokes once per corpus rather than on a
// hot path, so it is worth a checked, returned error instead of undefined
// behavior.
var ErrNonMonotonicOffsets = fmt.Errorf("strz: tape offsets are not monotonically non-decreasing")

// tapeView is the Sequence implementation backing both tape constructors:
// a contiguous byte buffer addressed by a count+1 offsets array, where
// element i spans tape[offsets[i]:offsets[i+1]].
type tapeView struct {
	tape    []byte
	offsets []int
}

func (t *tapeView) Len() int { return len(t.offsets) - 1 }

func (t *tapeView) Bytes(i int) []byte {
	return t.tape[t.offsets[i]:t.offsets[i+1]]
}

// NewTapeView32 builds a Sequence over an Apache-Arrow-style contiguous
// tape addressed by 32-bit offsets: offsets must have count+1 entries,
// offsets[i+1]-offsets[i] is the length of element i, and offsets[count]
// must equal len(tape).
func NewTapeView32(tape []byte, offsets []uint32) (Sequence, error) {
	ints, err := monotonicInts32(offsets, len(tape))
	if err != nil {
		return nil, err
	}
	return &tapeView{tape: tape, offsets: ints}, nil
}

// NewTapeView64 is NewTapeView32 for a 64-bit offsets array.
func NewTapeView64(tape []byte, offsets []uint64) (Sequence, error) {
	ints, err := monotonicInts64(offsets, len(tape))
	if err != nil {
		return nil, err
	}
	return &tapeView{tape: tape, offsets: ints}, nil
}

func monotonicInts32(offsets []uint32, tapeLen int) ([]int, error) {
	out := make([]int, len(offsets))
	for i, v := range offsets {
		out[i] = int(v)
		if i > 0 && out[i] < out[i-1] {
			return nil, ErrNonMonotonicOffsets
		}
	}
	if len(out) > 0 && out[len(out)-1] != tapeLen {
		return nil, ErrNonMonotonicOffsets
	}
	return out, nil
}

func monotonicInts64(offsets []uint64, tapeLen int) ([]int, error) {
	out := make([]int, len(offsets))
	for i, v := range offsets {
		out[i] = int(v)
		if i > 0 && out[i] < out[i-1] {
			return nil, ErrNonMonotonicOffsets
		}
	}
	if len(out) > 0 && out[len(out)-1] != tapeLen {
		return nil, ErrNonMonotonicOffsets
	}
	return out, nil
}
