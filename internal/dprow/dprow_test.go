package dprow

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUint8RowsSwap(t *testing.T) {
	rows := NewUint8Rows(4)
	rows.Prev[0] = 1
	rows.Curr[0] = 2
	rows.Swap()
	assert.Equal(t, uint8(2), rows.Prev[0])
	assert.Equal(t, uint8(1), rows.Curr[0])
}

func TestWordRowsSwap(t *testing.T) {
	rows := NewWordRows(4)
	rows.Prev[0] = 10
	rows.Curr[0] = 20
	rows.Swap()
	assert.Equal(t, 20, rows.Prev[0])
	assert.Equal(t, 10, rows.Curr[0])
}

func TestNewRowsWidth(t *testing.T) {
	u := NewUint8Rows(7)
	assert.Len(t, u.Prev, 7)
	assert.Len(t, u.Curr, 7)

	w := NewWordRows(9)
	assert.Len(t, w.Prev, 9)
	assert.Len(t, w.Curr, 9)
}
