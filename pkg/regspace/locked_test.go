package regspace

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLockedModifyOneReadOneWrite(t *testing.T) {
	s := &stubSpace{}
	s.On("ReadWord", uint32(0x18e88)).Return(uint32(0x04380780)).Once()
	s.On("WriteWord", uint32(0x18e88), uint32(0x03c00780)).Once()

	l := NewLocked(s)
	prev := l.ModifyWord(0x18e88, 0xffff0000, 0x03c00000)

	assert.Equal(t, uint32(0x04380780), prev)
	s.AssertExpectations(t)
	assert.Same(t, Space(s), l.Unwrap())
}

func TestLockedConcurrentModify(t *testing.T) {
	mem := NewMemory()
	l := NewLocked(mem)

	// Each goroutine owns one byte lane of the same word and toggles it
	// repeatedly. Without the lock, lanes would clobber each other.
	const rounds = 500
	var wg sync.WaitGroup
	for lane := uint32(0); lane < 4; lane++ {
		wg.Add(1)
		go func(lane uint32) {
			defer wg.Done()
			shift := lane * 8
			mask := uint32(0xff) << shift
			for i := 0; i < rounds; i++ {
				Modify(l, 0x4c, mask, uint32(i&0xff)<<shift)
			}
			Modify(l, 0x4c, mask, (lane+1)<<shift)
		}(lane)
	}
	wg.Wait()

	assert.Equal(t, uint32(0x04030201), l.ReadWord(0x4c))
	assert.Equal(t, uint64(4*(rounds+1)), mem.Writes())
}
