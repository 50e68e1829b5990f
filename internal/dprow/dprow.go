// Package dprow provides the row-swap dynamic-programming scratch rows
// shared by the bounded Levenshtein distance and weighted alignment score
// operations.
//
// Both algorithms only ever need the previous and current DP row alive at
// once; keeping two reusable row buffers and swapping their roles after
// each outer iteration avoids allocating an O(la*lb) matrix for inputs that
// may be arbitrarily long.
package dprow

// Uint8Rows holds the two DP rows for the narrow (single-byte cell) variant
// of Levenshtein distance, used when both operand lengths are below 256 so
// no cell can overflow a byte.
type Uint8Rows struct {
	Prev, Curr []uint8
}

// NewUint8Rows allocates two rows of the given width (lb+1 cells).
func NewUint8Rows(width int) Uint8Rows {
	return Uint8Rows{
		Prev: make([]uint8, width),
		Curr: make([]uint8, width),
	}
}

// Swap exchanges the roles of Prev and Curr after an outer DP iteration.
func (r *Uint8Rows) Swap() {
	r.Prev, r.Curr = r.Curr, r.Prev
}

// WordRows holds the two DP rows for the pointer-sized-cell variant, used by
// Levenshtein when either operand is 256 bytes or longer, and always by the
// weighted alignment score (whose cells may go negative, so they are signed
// regardless of input size).
type WordRows struct {
	Prev, Curr []int
}

// NewWordRows allocates two rows of the given width (lb+1 cells).
func NewWordRows(width int) WordRows {
	return WordRows{
		Prev: make([]int, width),
		Curr: make([]int, width),
	}
}

// Swap exchanges the roles of Prev and Curr after an outer DP iteration.
func (r *WordRows) Swap() {
	r.Prev, r.Curr = r.Curr, r.Prev
}
