package field

import (
	"fmt"
	"strings"
)

// Access describes how software may use a field.
type Access uint8

const (
	ReadWrite Access = iota
	ReadOnly
	WriteOnly
	// Strobe fields trigger a hardware action on every write, including a
	// write of the value already present.
	Strobe
)

// String returns the register-map spelling of the access mode.
func (a Access) String() string {
	switch a {
	case ReadWrite:
		return "rw"
	case ReadOnly:
		return "ro"
	case WriteOnly:
		return "wo"
	case Strobe:
		return "strobe"
	default:
		return fmt.Sprintf("Access(%d)", uint8(a))
	}
}

// ParseAccess parses the register-map spelling of an access mode.
// The empty string means ReadWrite.
func ParseAccess(s string) (Access, error) {
	switch strings.ToLower(s) {
	case "", "rw":
		return ReadWrite, nil
	case "ro", "r":
		return ReadOnly, nil
	case "wo", "w":
		return WriteOnly, nil
	case "strobe":
		return Strobe, nil
	}
	return 0, fmt.Errorf("unknown access mode %q", s)
}

// EnumValue names one value of an enumerated field.
type EnumValue struct {
	Name  string
	Value uint32
}

// Descriptor locates a bitfield. Descriptors are static tables; they are
// never modified after initialization.
type Descriptor struct {
	// Name is the register-map name, e.g. "active_width".
	Name string

	// Offset is the byte offset of the containing word from the region base.
	Offset uint32

	// Shift is the bit position of the field's least significant bit.
	Shift uint8

	// Width is the number of bits, 1 to 32.
	Width uint8

	// Default is the field value after hardware reset.
	Default uint32

	Access Access

	// Enum lists named values, if the field is enumerated.
	Enum []EnumValue
}

// FieldMask returns the unshifted mask, (1<<Width)-1.
func (d *Descriptor) FieldMask() uint32 {
	return uint32(uint64(1)<<d.Width - 1)
}

// Mask returns the field's bits within the word.
func (d *Descriptor) Mask() uint32 {
	return d.FieldMask() << d.Shift
}

// Extract returns the field value held in word.
func (d *Descriptor) Extract(word uint32) uint32 {
	return word >> d.Shift & d.FieldMask()
}

// Insert returns word with the field replaced by v, truncated to the field
// width.
func (d *Descriptor) Insert(word, v uint32) uint32 {
	return word&^d.Mask() | (v&d.FieldMask())<<d.Shift
}

// DefaultWord returns the field's reset value positioned in its word.
func (d *Descriptor) DefaultWord() uint32 {
	return (d.Default & d.FieldMask()) << d.Shift
}

// Check reports whether v fits the field without truncation.
func (d *Descriptor) Check(v uint32) error {
	if v&^d.FieldMask() != 0 {
		return fmt.Errorf("%s: 0x%x exceeds %d bits: %w", d.Name, v, d.Width, ErrValueTruncated)
	}
	return nil
}

// Validate checks the shift/width invariant: 1 <= Width and
// Shift+Width <= 32.
func (d *Descriptor) Validate() error {
	if d.Width == 0 || int(d.Shift)+int(d.Width) > 32 {
		return fmt.Errorf("%s: shift %d width %d: %w", d.Name, d.Shift, d.Width, ErrInvalidDescriptor)
	}
	if err := d.Check(d.Default); err != nil {
		return fmt.Errorf("default: %w", err)
	}
	for _, e := range d.Enum {
		if err := d.Check(e.Value); err != nil {
			return fmt.Errorf("enum %s: %w", e.Name, err)
		}
	}
	return nil
}

// Overlaps reports whether d and o share any bit of the same word.
func (d *Descriptor) Overlaps(o *Descriptor) bool {
	return d.Offset == o.Offset && d.Mask()&o.Mask() != 0
}

// Lookup returns the value of the enumeration entry called name.
func (d *Descriptor) Lookup(name string) (uint32, error) {
	for _, e := range d.Enum {
		if strings.EqualFold(e.Name, name) {
			return e.Value, nil
		}
	}
	return 0, fmt.Errorf("%s: %q: %w", d.Name, name, ErrUnknownEnum)
}

// EnumName returns the name of v, if the field is enumerated and v is listed.
func (d *Descriptor) EnumName(v uint32) (string, bool) {
	for _, e := range d.Enum {
		if e.Value == v {
			return e.Name, true
		}
	}
	return "", false
}

// String implements fmt.Stringer, e.g. "active_width@0x18e88[15:0]".
func (d *Descriptor) String() string {
	return fmt.Sprintf("%s@0x%x[%d:%d]", d.Name, d.Offset, int(d.Shift)+int(d.Width)-1, d.Shift)
}
