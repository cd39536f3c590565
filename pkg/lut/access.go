package lut

import (
	"fmt"

	"github.com/acamera-isp/ispreg-go/pkg/field"
	"github.com/acamera-isp/ispreg-go/pkg/regspace"
)

// lane returns the 8-bit field holding packed entry i.
func (d *Descriptor) lane(i uint32) *field.Descriptor {
	off, shift := d.Address(i)
	return &field.Descriptor{Name: d.Name, Offset: off, Shift: shift, Width: PackedLane}
}

// Read returns entry i. Packed entries cost one word read and are masked to
// 8 bits; word-per-entry entries are the whole word. i is not bounds checked.
func Read(r *regspace.Region, d *Descriptor, i uint32) uint32 {
	if field.Debug {
		mustIndex(d, i)
	}
	if d.Layout == WordPerEntry {
		off, _ := d.Address(i)
		return r.ReadWord(off)
	}
	return field.Read(r, d.lane(i))
}

// Write stores v as entry i. Packed entries are merged into their word with
// one read and one write, truncated to 8 bits. Word-per-entry entries are
// written whole with a single write and no read. i is not bounds checked.
func Write(r *regspace.Region, d *Descriptor, i uint32, v uint32) {
	if field.Debug {
		mustIndex(d, i)
		if err := d.CheckValue(v); err != nil {
			panic(err)
		}
	}
	if d.Layout == WordPerEntry {
		off, _ := d.Address(i)
		r.WriteWord(off, v)
		return
	}
	field.Write(r, d.lane(i), v)
}

// ReadChecked is Read with an index check.
func ReadChecked(r *regspace.Region, d *Descriptor, i uint32) (uint32, error) {
	if err := d.CheckIndex(i); err != nil {
		return 0, err
	}
	return Read(r, d, i), nil
}

// WriteChecked is Write with index and value checks. Nothing is written when
// a check fails.
func WriteChecked(r *regspace.Region, d *Descriptor, i uint32, v uint32) error {
	if err := d.CheckIndex(i); err != nil {
		return err
	}
	if err := d.CheckValue(v); err != nil {
		return err
	}
	Write(r, d, i, v)
	return nil
}

// Load writes values to entries 0..len(values)-1 in index order. Every
// value is checked before the first write.
func Load(r *regspace.Region, d *Descriptor, values []uint32) error {
	if uint64(len(values)) > uint64(d.Entries) {
		return fmt.Errorf("%s: %d values for %d entries: %w", d.Name, len(values), d.Entries, ErrLength)
	}
	for i, v := range values {
		if err := d.CheckValue(v); err != nil {
			return fmt.Errorf("entry %d: %w", i, err)
		}
	}
	for i, v := range values {
		Write(r, d, uint32(i), v)
	}
	return nil
}

// Dump returns every entry of the table in index order.
func Dump(r *regspace.Region, d *Descriptor) []uint32 {
	out := make([]uint32, d.Entries)
	for i := range out {
		out[i] = Read(r, d, uint32(i))
	}
	return out
}

func mustIndex(d *Descriptor, i uint32) {
	if err := d.CheckIndex(i); err != nil {
		panic(err)
	}
}
