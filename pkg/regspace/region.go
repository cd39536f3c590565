package regspace

import "fmt"

// Region is a window of a Space starting at Base and spanning Size bytes.
// Descriptor offsets are relative to Base. A Region is created once per
// hardware instance and passed by pointer to every accessor; it is not safe
// to share between goroutines unless Space is (see Locked).
type Region struct {
	Space Space
	Base  uint32
	Size  uint32
}

// NewRegion creates a region of s.
func NewRegion(s Space, base, size uint32) *Region {
	return &Region{Space: s, Base: base, Size: size}
}

// Addr returns the absolute byte address of offset. No bounds check is made.
func (r *Region) Addr(offset uint32) uint32 {
	return r.Base + offset
}

// Contains reports whether the word at offset lies inside the region.
func (r *Region) Contains(offset uint32) bool {
	return uint64(offset)+WordSize <= uint64(r.Size)
}

// Sub returns a region of the same space starting at offset.
func (r *Region) Sub(offset, size uint32) (*Region, error) {
	if uint64(offset)+uint64(size) > uint64(r.Size) {
		return nil, fmt.Errorf("%w: sub-region 0x%x+0x%x exceeds size 0x%x",
			ErrOutOfRegion, offset, size, r.Size)
	}
	return &Region{Space: r.Space, Base: r.Base + offset, Size: size}, nil
}

// ReadWord reads the word at offset.
func (r *Region) ReadWord(offset uint32) uint32 {
	return r.Space.ReadWord(r.Base + offset)
}

// WriteWord writes the word at offset.
func (r *Region) WriteWord(offset uint32, v uint32) {
	r.Space.WriteWord(r.Base+offset, v)
}

// Modify applies a masked update to the word at offset.
func (r *Region) Modify(offset uint32, mask uint32, bits uint32) uint32 {
	return Modify(r.Space, r.Base+offset, mask, bits)
}

// String implements fmt.Stringer.
func (r *Region) String() string {
	return fmt.Sprintf("[0x%08x..0x%08x)", r.Base, uint64(r.Base)+uint64(r.Size))
}
