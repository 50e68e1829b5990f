package bitap

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFind8AgainstStdlib(t *testing.T) {
	cases := []struct {
		haystack, needle string
	}{
		{"", "a"},
		{"hello world", "world"},
		{"hello world", "xyz"},
		{"aaaaaaaa", "aaa"},
		{"abcdefgh", "abcdefgh"},
		{"xabcdefghx", "abcdefgh"},
	}
	for _, c := range cases {
		mask := BuildMask8([]byte(c.needle))
		got := Find8([]byte(c.haystack), len(c.needle), mask)
		want := bytes.Index([]byte(c.haystack), []byte(c.needle))
		assert.Equal(t, want, got, "Find8(%q, %q)", c.haystack, c.needle)
	}
}

func TestRFind8AgainstStdlib(t *testing.T) {
	cases := []struct {
		haystack, needle string
	}{
		{"abcabcabc", "abc"},
		{"hello world hello", "hello"},
		{"xyz", "xyz"},
		{"no match here", "zzz"},
	}
	for _, c := range cases {
		mask := BuildMask8([]byte(c.needle))
		got := RFind8([]byte(c.haystack), len(c.needle), mask)
		want := bytes.LastIndex([]byte(c.haystack), []byte(c.needle))
		assert.Equal(t, want, got, "RFind8(%q, %q)", c.haystack, c.needle)
	}
}

func TestFind16AgainstStdlib(t *testing.T) {
	needle := "0123456789abcdef" // 16 bytes
	haystack := "xxx0123456789abcdefxxx"
	mask := BuildMask16([]byte(needle))
	got := Find16([]byte(haystack), len(needle), mask)
	want := bytes.Index([]byte(haystack), []byte(needle))
	assert.Equal(t, want, got)
}

func TestFind64AgainstStdlib(t *testing.T) {
	needle := bytes.Repeat([]byte("ab"), 32) // 64 bytes
	haystack := append(append([]byte("prefix-"), needle...), []byte("-suffix")...)
	mask := BuildMask64(needle)
	got := Find64(haystack, len(needle), mask)
	want := bytes.Index(haystack, needle)
	assert.Equal(t, want, got)
}

func TestFindSeededLong(t *testing.T) {
	needle := bytes.Repeat([]byte("xy"), 40) // 80 bytes, > 64
	haystack := append(append(bytes.Repeat([]byte("z"), 10), needle...), bytes.Repeat([]byte("z"), 10)...)

	got := FindSeededLong(haystack, needle)
	want := bytes.Index(haystack, needle)
	require.Equal(t, want, got)

	absent := make([]byte, len(haystack))
	copy(absent, haystack)
	absent[15] ^= 0xff // corrupt one byte inside the needle region
	got2 := FindSeededLong(absent, needle)
	want2 := bytes.Index(absent, needle)
	assert.Equal(t, want2, got2)
}

func TestRFindSeededLong(t *testing.T) {
	needle := bytes.Repeat([]byte("mn"), 33) // 66 bytes
	haystack := append(append(append([]byte{}, needle...), []byte("---")...), needle...)

	got := RFindSeededLong(haystack, needle)
	want := bytes.LastIndex(haystack, needle)
	assert.Equal(t, want, got)
}

func TestBitapRandomizedAgainstStdlib(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	alphabet := []byte("abc")
	for i := 0; i < 200; i++ {
		hn := 5 + r.Intn(40)
		h := make([]byte, hn)
		for j := range h {
			h[j] = alphabet[r.Intn(len(alphabet))]
		}
		nn := 5 + r.Intn(8)
		if nn > hn {
			nn = hn
		}
		start := r.Intn(hn - nn + 1)
		needle := append([]byte{}, h[start:start+nn]...)

		var got int
		switch {
		case nn <= 8:
			mask := BuildMask8(needle)
			got = Find8(h, nn, mask)
		case nn <= 16:
			mask := BuildMask16(needle)
			got = Find16(h, nn, mask)
		default:
			mask := BuildMask64(needle)
			got = Find64(h, nn, mask)
		}
		want := bytes.Index(h, needle)
		require.Equal(t, want, got, "haystack=%q needle=%q", h, needle)
	}
}
