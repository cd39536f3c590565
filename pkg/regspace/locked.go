package regspace

import "sync"

// Locked serializes access to an underlying Space with one mutex, making
// masked updates through ModifyWord atomic with respect to every other
// caller of the same Locked value.
type Locked struct {
	mu    sync.Mutex
	space Space
}

// NewLocked wraps s.
func NewLocked(s Space) *Locked {
	return &Locked{space: s}
}

// ReadWord implements Space.
func (l *Locked) ReadWord(addr uint32) uint32 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.space.ReadWord(addr)
}

// WriteWord implements Space.
func (l *Locked) WriteWord(addr uint32, v uint32) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.space.WriteWord(addr, v)
}

// ModifyWord implements Modifier. The underlying space sees one read and
// one write.
func (l *Locked) ModifyWord(addr uint32, mask uint32, bits uint32) uint32 {
	l.mu.Lock()
	defer l.mu.Unlock()
	prev := l.space.ReadWord(addr)
	l.space.WriteWord(addr, Merge(prev, mask, bits))
	return prev
}

// Unwrap returns the underlying space.
func (l *Locked) Unwrap() Space { return l.space }

// Compile-time interface satisfaction checks.
var (
	_ Space    = (*Locked)(nil)
	_ Modifier = (*Locked)(nil)
)
