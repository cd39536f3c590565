package regspace

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegionAddressing(t *testing.T) {
	mem := NewMemory()
	r := NewRegion(mem, 0x1000, 0x100)

	assert.Equal(t, uint32(0x104c), r.Addr(0x4c))

	r.WriteWord(0x4c, 0x11223344)
	assert.Equal(t, uint32(0x11223344), mem.ReadWord(0x104c))
	assert.Equal(t, uint32(0x11223344), r.ReadWord(0x4c))

	prev := r.Modify(0x4c, 0x0000ff00, 0x0000aa00)
	assert.Equal(t, uint32(0x11223344), prev)
	assert.Equal(t, uint32(0x1122aa44), r.ReadWord(0x4c))
}

func TestRegionContains(t *testing.T) {
	r := NewRegion(NewMemory(), 0, 0x10)

	tests := []struct {
		off  uint32
		want bool
	}{
		{0x0, true},
		{0xc, true},
		{0xd, false},
		{0x10, false},
		{0xfffffffc, false},
	}
	for _, tt := range tests {
		if got := r.Contains(tt.off); got != tt.want {
			t.Errorf("Contains(0x%x) = %v, want %v", tt.off, got, tt.want)
		}
	}
}

func TestRegionSub(t *testing.T) {
	mem := NewMemory()
	r := NewRegion(mem, 0x18000, 0x1000)

	sub, err := r.Sub(0xe80, 0x100)
	require.NoError(t, err)
	assert.Equal(t, uint32(0x18e80), sub.Base)
	assert.Equal(t, uint32(0x100), sub.Size)

	sub.WriteWord(0x8, 0x780)
	assert.Equal(t, uint32(0x780), mem.ReadWord(0x18e88))

	_, err = r.Sub(0xf00, 0x200)
	assert.True(t, errors.Is(err, ErrOutOfRegion), "err = %v", err)
}

func TestRegionString(t *testing.T) {
	r := NewRegion(nil, 0x18000, 0x1000)
	assert.Equal(t, "[0x00018000..0x00019000)", r.String())
}
