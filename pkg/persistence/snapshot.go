package persistence

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/acamera-isp/ispreg-go/pkg/regspace"
)

// SnapshotVersion is the current version of the snapshot file format.
const SnapshotVersion = 1

// ErrVersion is returned when loading a snapshot of an unknown format.
var ErrVersion = errors.New("unsupported snapshot version")

// Snapshot holds register words captured from a window.
type Snapshot struct {
	// Version is the snapshot file format version.
	Version int `json:"version"`

	// SavedAt is when the snapshot was last saved.
	SavedAt time.Time `json:"saved_at"`

	// Base is the absolute address the offsets in Words are relative to.
	Base uint32 `json:"base"`

	// Blocks names the register blocks the snapshot was taken from.
	Blocks []string `json:"blocks,omitempty"`

	// Words maps byte offsets to word values.
	Words map[uint32]uint32 `json:"words"`
}

// Capture reads the word at each offset of r.
func Capture(r *regspace.Region, offsets []uint32) *Snapshot {
	s := &Snapshot{
		Version: SnapshotVersion,
		Base:    r.Base,
		Words:   make(map[uint32]uint32, len(offsets)),
	}
	for _, off := range offsets {
		s.Words[off] = r.ReadWord(off)
	}
	return s
}

// Offsets returns the captured offsets in ascending order.
func (s *Snapshot) Offsets() []uint32 {
	out := make([]uint32, 0, len(s.Words))
	for off := range s.Words {
		out = append(out, off)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Restore writes every word to r in ascending offset order. Every word is
// written, including those already holding the captured value.
func (s *Snapshot) Restore(r *regspace.Region) error {
	offsets := s.Offsets()
	for _, off := range offsets {
		if !r.Contains(off) || off%regspace.WordSize != 0 {
			return fmt.Errorf("offset 0x%x: %w", off, regspace.ErrOutOfRegion)
		}
	}
	for _, off := range offsets {
		r.WriteWord(off, s.Words[off])
	}
	return nil
}

// Diff returns the offsets whose value in other differs from s, including
// offsets present in only one of them, in ascending order.
func (s *Snapshot) Diff(other *Snapshot) []uint32 {
	seen := make(map[uint32]bool)
	var out []uint32
	for off, v := range s.Words {
		seen[off] = true
		if w, ok := other.Words[off]; !ok || w != v {
			out = append(out, off)
		}
	}
	for off := range other.Words {
		if !seen[off] {
			out = append(out, off)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// SnapshotStore manages persistence of a snapshot to a JSON file.
type SnapshotStore struct {
	mu   sync.Mutex
	path string
}

// NewSnapshotStore creates a new snapshot store.
func NewSnapshotStore(path string) *SnapshotStore {
	return &SnapshotStore{path: path}
}

// Path returns the file the store reads and writes.
func (s *SnapshotStore) Path() string {
	return s.path
}

// Save persists the snapshot to disk.
func (s *SnapshotStore) Save(snap *Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Ensure parent directory exists
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	snap.Version = SnapshotVersion
	if snap.SavedAt.IsZero() {
		snap.SavedAt = time.Now()
	}

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(s.path, data, 0644)
}

// Load reads the snapshot from disk.
// Returns nil, nil if the file doesn't exist.
func (s *SnapshotStore) Load() (*Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	snap := &Snapshot{}
	if err := json.Unmarshal(data, snap); err != nil {
		return nil, err
	}
	if snap.Version != SnapshotVersion {
		return nil, fmt.Errorf("%s: version %d: %w", s.path, snap.Version, ErrVersion)
	}
	if snap.Words == nil {
		snap.Words = make(map[uint32]uint32)
	}

	return snap, nil
}

// Clear removes the snapshot file.
func (s *SnapshotStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.path)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
