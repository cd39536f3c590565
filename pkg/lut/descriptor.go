package lut

import (
	"fmt"
	"strings"

	"github.com/acamera-isp/ispreg-go/pkg/regspace"
)

// Layout selects how entries map onto words.
type Layout uint8

const (
	// Packed stores four 8-bit entries per word.
	Packed Layout = iota
	// WordPerEntry stores one entry per word.
	WordPerEntry
)

// PackedLane is the width of one packed entry lane in bits.
const PackedLane = 8

// String returns the register-map spelling of the layout.
func (l Layout) String() string {
	switch l {
	case Packed:
		return "packed"
	case WordPerEntry:
		return "word"
	default:
		return fmt.Sprintf("Layout(%d)", uint8(l))
	}
}

// ParseLayout parses the register-map spelling of a layout.
func ParseLayout(s string) (Layout, error) {
	switch strings.ToLower(s) {
	case "packed":
		return Packed, nil
	case "word", "word-per-entry":
		return WordPerEntry, nil
	}
	return 0, fmt.Errorf("unknown LUT layout %q", s)
}

// Descriptor locates a look-up table.
type Descriptor struct {
	Name string

	// Offset is the byte offset of entry 0's word from the region base.
	Offset uint32

	// EntryWidth is the number of meaningful bits per entry.
	EntryWidth uint8

	// Entries is the documented number of nodes.
	Entries uint32

	// AddressBits is the width of the hardware's index decoder.
	AddressBits uint8

	Layout Layout
}

// Address returns the byte offset, relative to the region base, of the word
// holding entry i and the entry's bit position inside it. No bounds check is
// made.
func (d *Descriptor) Address(i uint32) (offset uint32, shift uint8) {
	if d.Layout == WordPerEntry {
		return d.Offset + i*regspace.WordSize, 0
	}
	return d.Offset + i&^3, uint8(i&3) * PackedLane
}

// EntryMask returns (1<<EntryWidth)-1.
func (d *Descriptor) EntryMask() uint32 {
	return uint32(uint64(1)<<d.EntryWidth - 1)
}

// Words returns the number of words the table spans.
func (d *Descriptor) Words() uint32 {
	if d.Layout == WordPerEntry {
		return d.Entries
	}
	return (d.Entries + 3) / 4
}

// Size returns the table's extent in bytes.
func (d *Descriptor) Size() uint32 {
	return d.Words() * regspace.WordSize
}

// CheckIndex reports whether i addresses an entry of the table.
func (d *Descriptor) CheckIndex(i uint32) error {
	if i >= d.Entries {
		return fmt.Errorf("%s[%d]: table has %d entries: %w", d.Name, i, d.Entries, ErrIndexOutOfRange)
	}
	return nil
}

// CheckValue reports whether v fits an entry without truncation.
func (d *Descriptor) CheckValue(v uint32) error {
	if v&^d.EntryMask() != 0 {
		return fmt.Errorf("%s: 0x%x exceeds %d bits: %w", d.Name, v, d.EntryWidth, ErrValueTruncated)
	}
	return nil
}

// Validate checks the descriptor for internal consistency: packed entries
// fit one lane, entries fit a word, the offset is word aligned and the
// index decoder covers every entry.
func (d *Descriptor) Validate() error {
	bad := func(format string, args ...any) error {
		return fmt.Errorf("%s: %s: %w", d.Name, fmt.Sprintf(format, args...), ErrInvalidDescriptor)
	}
	switch d.Layout {
	case Packed:
		if d.EntryWidth == 0 || d.EntryWidth > PackedLane {
			return bad("packed entry width %d", d.EntryWidth)
		}
	case WordPerEntry:
		if d.EntryWidth == 0 || d.EntryWidth > 32 {
			return bad("entry width %d", d.EntryWidth)
		}
	default:
		return bad("layout %v", d.Layout)
	}
	if d.Entries == 0 {
		return bad("no entries")
	}
	if d.Offset%regspace.WordSize != 0 {
		return bad("offset 0x%x not word aligned", d.Offset)
	}
	if d.AddressBits > 32 || (d.AddressBits < 32 && uint64(d.Entries) > uint64(1)<<d.AddressBits) {
		return bad("%d address bits cannot index %d entries", d.AddressBits, d.Entries)
	}
	return nil
}

// Contains reports whether byte offset off lies inside the table.
func (d *Descriptor) Contains(off uint32) bool {
	return off >= d.Offset && off < d.Offset+d.Size()
}

// String implements fmt.Stringer.
func (d *Descriptor) String() string {
	return fmt.Sprintf("%s@0x%x[%d x %d bits, %s]", d.Name, d.Offset, d.Entries, d.EntryWidth, d.Layout)
}
