package regdef

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/acamera-isp/ispreg-go/pkg/field"
	"github.com/acamera-isp/ispreg-go/pkg/regspace"
)

// ErrInvalidMap is returned by Validate and ValidateMap.
var ErrInvalidMap = errors.New("invalid register map")

// Validate checks the block for errors that would make generated
// descriptors disagree with the hardware: misplaced or overlapping fields,
// defaults and enumeration values wider than their field, and tables that
// overlap registers or exceed their index decoder. All problems are reported
// together.
func (b *RawBlockDef) Validate() error {
	var problems []string
	add := func(format string, args ...any) {
		problems = append(problems, fmt.Sprintf(format, args...))
	}

	if b.Size == 0 {
		add("block size is zero")
	}
	if b.Base%regspace.WordSize != 0 {
		add("block base 0x%x not word aligned", b.Base)
	}
	inBlock := func(off, size uint32) bool {
		return off >= b.Base && uint64(off)+uint64(size) <= uint64(b.Base)+uint64(b.Size)
	}

	names := make(map[string]string)
	claim := func(name, what string) {
		if name == "" {
			add("%s has no name", what)
			return
		}
		if prev, ok := names[name]; ok {
			add("%s: name %q already used by %s", what, name, prev)
			return
		}
		names[name] = what
	}

	words := make(map[uint32]string)
	for i := range b.Registers {
		reg := &b.Registers[i]
		what := fmt.Sprintf("register %s", reg.Name)
		if reg.Offset%regspace.WordSize != 0 {
			add("%s: offset 0x%x not word aligned", what, reg.Offset)
		}
		if !inBlock(reg.Offset, regspace.WordSize) {
			add("%s: offset 0x%x outside block", what, reg.Offset)
		}
		if prev, ok := words[reg.Offset]; ok {
			add("%s: offset 0x%x already used by %s", what, reg.Offset, prev)
		}
		words[reg.Offset] = what
		if len(reg.Fields) == 0 {
			add("%s: no fields", what)
		}

		var descs []*field.Descriptor
		for j := range reg.Fields {
			f := &reg.Fields[j]
			fwhat := fmt.Sprintf("field %s", f.Name)
			claim(f.Name, fwhat)
			d, err := f.Descriptor(reg.Offset)
			if err != nil {
				add("%v", err)
				continue
			}
			if err := d.Validate(); err != nil {
				add("%v", err)
				continue
			}
			seen := make(map[string]bool)
			for _, e := range f.Enum {
				if seen[e.Name] {
					add("%s: duplicate enum %s", fwhat, e.Name)
				}
				seen[e.Name] = true
			}
			for _, o := range descs {
				if d.Overlaps(o) {
					add("%s: bits %s overlap %s", fwhat, bitRange(d), o.Name)
				}
			}
			descs = append(descs, d)
		}
	}

	for i := range b.LUTs {
		l := &b.LUTs[i]
		what := fmt.Sprintf("lut %s", l.Name)
		claim(l.Name, what)
		d, err := l.Descriptor()
		if err != nil {
			add("%v", err)
			continue
		}
		if err := d.Validate(); err != nil {
			add("%v", err)
			continue
		}
		if !inBlock(d.Offset, d.Size()) {
			add("%s: 0x%x+0x%x outside block", what, d.Offset, d.Size())
		}
		for off, reg := range words {
			if d.Contains(off) {
				add("%s: overlaps %s at 0x%x", what, reg, off)
			}
		}
		for j := 0; j < i; j++ {
			o, err := b.LUTs[j].Descriptor()
			if err != nil {
				continue
			}
			if d.Offset < o.Offset+o.Size() && o.Offset < d.Offset+d.Size() {
				add("%s: overlaps lut %s", what, o.Name)
			}
		}
	}

	if len(problems) == 0 {
		return nil
	}
	sort.Strings(problems)
	return fmt.Errorf("%w: block %s: %s", ErrInvalidMap, b.Name, strings.Join(problems, "; "))
}

// ValidateMap validates every block and checks that block windows and
// names do not collide.
func ValidateMap(blocks []*RawBlockDef) error {
	var problems []string
	byName := make(map[string]bool)
	for i, b := range blocks {
		if err := b.Validate(); err != nil {
			return err
		}
		if byName[b.Name] {
			problems = append(problems, fmt.Sprintf("duplicate block %s", b.Name))
		}
		byName[b.Name] = true
		for _, o := range blocks[:i] {
			if b.Base < o.Base+o.Size && o.Base < b.Base+b.Size {
				problems = append(problems, fmt.Sprintf("block %s overlaps block %s", b.Name, o.Name))
			}
		}
	}
	if len(problems) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrInvalidMap, strings.Join(problems, "; "))
}

func bitRange(d *field.Descriptor) string {
	return fmt.Sprintf("[%d:%d]", int(d.Shift)+int(d.Width)-1, d.Shift)
}
