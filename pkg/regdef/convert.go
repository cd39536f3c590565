package regdef

import (
	"fmt"

	"github.com/acamera-isp/ispreg-go/pkg/field"
	"github.com/acamera-isp/ispreg-go/pkg/lut"
)

// Descriptor converts the field definition to an accessor descriptor.
func (f *RawFieldDef) Descriptor(offset uint32) (*field.Descriptor, error) {
	access, err := field.ParseAccess(f.Access)
	if err != nil {
		return nil, fmt.Errorf("field %s: %w", f.Name, err)
	}
	d := &field.Descriptor{
		Name:    f.Name,
		Offset:  offset,
		Shift:   f.LSB,
		Width:   f.Width,
		Default: f.Default,
		Access:  access,
	}
	for _, e := range f.Enum {
		d.Enum = append(d.Enum, field.EnumValue{Name: e.Name, Value: e.Value})
	}
	return d, nil
}

// Descriptor converts the LUT definition to an accessor descriptor.
func (l *RawLUTDef) Descriptor() (*lut.Descriptor, error) {
	layout, err := lut.ParseLayout(l.Layout)
	if err != nil {
		return nil, fmt.Errorf("lut %s: %w", l.Name, err)
	}
	return &lut.Descriptor{
		Name:        l.Name,
		Offset:      l.Offset,
		EntryWidth:  l.EntryWidth,
		Entries:     l.Entries,
		AddressBits: l.AddressBits,
		Layout:      layout,
	}, nil
}

// Fields returns a descriptor for every field of the block, in register
// order.
func (b *RawBlockDef) Fields() ([]*field.Descriptor, error) {
	var out []*field.Descriptor
	for i := range b.Registers {
		reg := &b.Registers[i]
		for j := range reg.Fields {
			d, err := reg.Fields[j].Descriptor(reg.Offset)
			if err != nil {
				return nil, fmt.Errorf("%s.%s: %w", b.Name, reg.Name, err)
			}
			out = append(out, d)
		}
	}
	return out, nil
}

// LUTDescriptors returns a descriptor for every table of the block.
func (b *RawBlockDef) LUTDescriptors() ([]*lut.Descriptor, error) {
	out := make([]*lut.Descriptor, 0, len(b.LUTs))
	for i := range b.LUTs {
		d, err := b.LUTs[i].Descriptor()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", b.Name, err)
		}
		out = append(out, d)
	}
	return out, nil
}

// ResetImage returns the documented post-reset value of every register
// word of the block, keyed by byte offset. Registers whose fields all
// default to zero are included with value zero.
func (b *RawBlockDef) ResetImage() map[uint32]uint32 {
	img := make(map[uint32]uint32, len(b.Registers))
	for _, reg := range b.Registers {
		var word uint32
		for _, f := range reg.Fields {
			d := field.Descriptor{Shift: f.LSB, Width: f.Width, Default: f.Default}
			word |= d.DefaultWord()
		}
		img[reg.Offset] |= word
	}
	return img
}

// Register returns the register holding the word at offset.
func (b *RawBlockDef) Register(offset uint32) (*RawRegisterDef, bool) {
	for i := range b.Registers {
		if b.Registers[i].Offset == offset {
			return &b.Registers[i], true
		}
	}
	return nil, false
}
