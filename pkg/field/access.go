package field

import (
	"fmt"

	"github.com/acamera-isp/ispreg-go/pkg/regspace"
)

// Read returns the value of d in region r. It performs one word read.
func Read(r *regspace.Region, d *Descriptor) uint32 {
	return d.Extract(r.ReadWord(d.Offset))
}

// Write stores v in d, leaving every other bit of the word unchanged. It
// performs one word read and one word write; when r's space implements
// regspace.Modifier the pair is atomic with respect to that space.
//
// Bits of v above the field width are discarded.
func Write(r *regspace.Region, d *Descriptor, v uint32) {
	if Debug {
		if err := d.Check(v); err != nil {
			panic(err)
		}
	}
	r.Modify(d.Offset, d.Mask(), (v&d.FieldMask())<<d.Shift)
}

// WriteChecked is Write preceded by Check. Read-only fields are refused.
func WriteChecked(r *regspace.Region, d *Descriptor, v uint32) error {
	if d.Access == ReadOnly {
		return fmt.Errorf("%s: %w", d.Name, ErrReadOnly)
	}
	if err := d.Check(v); err != nil {
		return err
	}
	Write(r, d, v)
	return nil
}

// Reset writes the documented default of d.
func Reset(r *regspace.Region, d *Descriptor) {
	Write(r, d, d.Default)
}
