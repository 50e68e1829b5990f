package conv

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIntToUint8(t *testing.T) {
	assert.Equal(t, uint8(0), IntToUint8(0))
	assert.Equal(t, uint8(255), IntToUint8(255))
}

func TestIntToUint8PanicsOnOverflow(t *testing.T) {
	assert.Panics(t, func() { IntToUint8(256) })
	assert.Panics(t, func() { IntToUint8(-1) })
}

func TestFitsUint8Cells(t *testing.T) {
	assert.True(t, FitsUint8Cells(0, 0))
	assert.True(t, FitsUint8Cells(255, 255))
	assert.False(t, FitsUint8Cells(256, 0))
	assert.False(t, FitsUint8Cells(0, 256))
	assert.False(t, FitsUint8Cells(300, 300))
}
