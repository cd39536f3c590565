package regspace

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMemoryUnwrittenReadsZero(t *testing.T) {
	m := NewMemory()
	assert.Equal(t, uint32(0), m.ReadWord(0x100))
	assert.Equal(t, uint64(1), m.Reads())
	assert.Equal(t, uint64(0), m.Writes())
}

func TestMemoryCounters(t *testing.T) {
	m := NewMemory()
	m.WriteWord(0x4c, 1)
	m.WriteWord(0x4c, 1)
	m.WriteWord(0x50, 2)
	_ = m.ReadWord(0x4c)

	assert.Equal(t, uint64(3), m.Writes())
	assert.Equal(t, uint64(1), m.Reads())
	assert.Equal(t, uint64(2), m.WriteCount(0x4c))
	assert.Equal(t, uint64(1), m.WriteCount(0x50))
	assert.Equal(t, uint64(0), m.WriteCount(0x54))
	assert.Equal(t, []uint32{0x4c, 0x50}, m.Addresses())
}

func TestMemoryResetImage(t *testing.T) {
	image := map[uint32]uint32{0x18e88: 0x04380780}
	m := NewMemoryWithImage(image)

	assert.Equal(t, uint32(0x04380780), m.ReadWord(0x18e88))

	m.WriteWord(0x18e88, 0)
	m.WriteWord(0x4c, 0xff)
	m.Reset()

	assert.Equal(t, uint32(0x04380780), m.ReadWord(0x18e88))
	assert.Equal(t, uint32(0), m.ReadWord(0x4c))
	assert.Equal(t, uint64(0), m.Writes())
	assert.Equal(t, []uint32{0x18e88}, m.Addresses())

	// The image is copied.
	image[0x18e88] = 0
	m.Reset()
	assert.Equal(t, uint32(0x04380780), m.ReadWord(0x18e88))
}

func TestMemoryResetReplacesImage(t *testing.T) {
	m := NewMemoryWithImage(map[uint32]uint32{0x0: 1})
	m.Reset(map[uint32]uint32{0x4: 2}, map[uint32]uint32{0x8: 3})

	assert.Equal(t, uint32(0), m.ReadWord(0x0))
	assert.Equal(t, uint32(2), m.ReadWord(0x4))
	assert.Equal(t, uint32(3), m.ReadWord(0x8))
}
