package strz

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromSlice(t *testing.T) {
	seq := FromSlice([][]byte{[]byte("a"), []byte("bb"), []byte("ccc")})
	require.Equal(t, 3, seq.Len())
	assert.Equal(t, "a", string(seq.Bytes(0)))
	assert.Equal(t, "bb", string(seq.Bytes(1)))
	assert.Equal(t, "ccc", string(seq.Bytes(2)))
}

func TestNewOrder(t *testing.T) {
	assert.Equal(t, []int{}, NewOrder(0))
	if diff := cmp.Diff([]int{0, 1, 2, 3}, NewOrder(4)); diff != "" {
		t.Fatalf("NewOrder(4) mismatch (-want +got):\n%s", diff)
	}
}

func TestNewTapeView32(t *testing.T) {
	tape := []byte("foobarbaz")
	offsets := []uint32{0, 3, 6, 9}
	seq, err := NewTapeView32(tape, offsets)
	require.NoError(t, err)
	require.Equal(t, 3, seq.Len())
	assert.Equal(t, "foo", string(seq.Bytes(0)))
	assert.Equal(t, "bar", string(seq.Bytes(1)))
	assert.Equal(t, "baz", string(seq.Bytes(2)))
}

func TestNewTapeView32RejectsNonMonotonic(t *testing.T) {
	tape := []byte("foobar")
	offsets := []uint32{0, 4, 3}
	_, err := NewTapeView32(tape, offsets)
	assert.ErrorIs(t, err, ErrNonMonotonicOffsets)
}

func TestNewTapeView32RejectsMismatchedFinalOffset(t *testing.T) {
	tape := []byte("foobar")
	offsets := []uint32{0, 3, 5}
	_, err := NewTapeView32(tape, offsets)
	assert.ErrorIs(t, err, ErrNonMonotonicOffsets)
}

func TestNewTapeView64(t *testing.T) {
	tape := []byte("hello world")
	offsets := []uint64{0, 5, 11}
	seq, err := NewTapeView64(tape, offsets)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(seq.Bytes(0)))
	assert.Equal(t, " world", string(seq.Bytes(1)))
}

func TestNewTapeViewEmpty(t *testing.T) {
	seq, err := NewTapeView32(nil, []uint32{0})
	require.NoError(t, err)
	assert.Equal(t, 0, seq.Len())
}
