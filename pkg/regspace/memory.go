package regspace

import (
	"sort"
	"sync"
)

// Memory is a sparse in-memory Space. Words never written read as the value
// loaded by Reset, or zero. It stands in for hardware in tests and in the
// simulator backend of isp-regd.
//
// Individual word accesses are safe for concurrent use; masked updates built
// from separate ReadWord/WriteWord calls still race (wrap in Locked).
type Memory struct {
	mu     sync.Mutex
	words  map[uint32]uint32
	reset  map[uint32]uint32
	reads  uint64
	writes uint64
	hits   map[uint32]uint64
}

// NewMemory creates an empty Memory.
func NewMemory() *Memory {
	return &Memory{
		words: make(map[uint32]uint32),
		reset: make(map[uint32]uint32),
		hits:  make(map[uint32]uint64),
	}
}

// NewMemoryWithImage creates a Memory holding the given reset image.
func NewMemoryWithImage(image map[uint32]uint32) *Memory {
	m := NewMemory()
	m.Reset(image)
	return m
}

// ReadWord implements Space.
func (m *Memory) ReadWord(addr uint32) uint32 {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reads++
	return m.words[addr]
}

// WriteWord implements Space.
func (m *Memory) WriteWord(addr uint32, v uint32) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.writes++
	m.hits[addr]++
	m.words[addr] = v
}

// Reset simulates a hardware reset: all words are cleared and the words of
// image are loaded. The image is retained so later Resets without arguments
// restore it. Counters are cleared.
func (m *Memory) Reset(image ...map[uint32]uint32) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(image) > 0 {
		m.reset = make(map[uint32]uint32)
		for _, img := range image {
			for addr, v := range img {
				m.reset[addr] = v
			}
		}
	}
	m.words = make(map[uint32]uint32, len(m.reset))
	for addr, v := range m.reset {
		m.words[addr] = v
	}
	m.reads, m.writes = 0, 0
	m.hits = make(map[uint32]uint64)
}

// Reads returns the number of ReadWord calls since the last Reset.
func (m *Memory) Reads() uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.reads
}

// Writes returns the number of WriteWord calls since the last Reset.
func (m *Memory) Writes() uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.writes
}

// WriteCount returns how many times addr was written since the last Reset.
func (m *Memory) WriteCount(addr uint32) uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.hits[addr]
}

// Addresses returns every address holding a word, in ascending order.
func (m *Memory) Addresses() []uint32 {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]uint32, 0, len(m.words))
	for addr := range m.words {
		out = append(out, addr)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Compile-time interface satisfaction check.
var _ Space = (*Memory)(nil)
