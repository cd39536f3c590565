package isp

import (
	"sort"

	"github.com/acamera-isp/ispreg-go/pkg/field"
	"github.com/acamera-isp/ispreg-go/pkg/lut"
	"github.com/acamera-isp/ispreg-go/pkg/regspace"
)

// Block groups the fields and tables of one hardware block.
type Block struct {
	Name        string
	Description string
	Base        uint32
	Size        uint32
	Fields      []*field.Descriptor
	LUTs        []*lut.Descriptor
}

// Field returns the field called name.
func (b *Block) Field(name string) (*field.Descriptor, bool) {
	for _, d := range b.Fields {
		if d.Name == name {
			return d, true
		}
	}
	return nil, false
}

// LUT returns the table called name.
func (b *Block) LUT(name string) (*lut.Descriptor, bool) {
	for _, d := range b.LUTs {
		if d.Name == name {
			return d, true
		}
	}
	return nil, false
}

// Offsets returns the offset of every register word of the block in
// ascending order. Table words are not included.
func (b *Block) Offsets() []uint32 {
	var out []uint32
	seen := make(map[uint32]bool)
	for _, d := range b.Fields {
		if !seen[d.Offset] {
			seen[d.Offset] = true
			out = append(out, d.Offset)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// FieldsAt returns the fields of the word at offset, lowest bit first.
func (b *Block) FieldsAt(offset uint32) []*field.Descriptor {
	var out []*field.Descriptor
	for _, d := range b.Fields {
		if d.Offset == offset {
			out = append(out, d)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Shift < out[j].Shift })
	return out
}

// ResetImage returns the documented reset value of each register word.
func (b *Block) ResetImage() map[uint32]uint32 {
	img := make(map[uint32]uint32)
	for _, d := range b.Fields {
		img[d.Offset] |= d.DefaultWord()
	}
	return img
}

// Reset writes the documented default of every writable field, one field
// at a time. Read-only and strobe fields are skipped.
func (b *Block) Reset(r *regspace.Region) {
	for _, d := range b.Fields {
		if d.Access == field.ReadOnly || d.Access == field.Strobe {
			continue
		}
		field.Reset(r, d)
	}
}

// Contains reports whether offset lies in the block window.
func (b *Block) Contains(offset uint32) bool {
	return offset >= b.Base && uint64(offset) < uint64(b.Base)+uint64(b.Size)
}
