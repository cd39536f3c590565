package main

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/acamera-isp/ispreg-go/pkg/field"
	"github.com/acamera-isp/ispreg-go/pkg/lut"
	"github.com/acamera-isp/ispreg-go/pkg/regdef"
)

// GenerateBlock renders the Go source for one block. The result still needs
// goimports to add fmt and drop unused imports.
func GenerateBlock(def *regdef.RawBlockDef, pkg, source string) (string, error) {
	prefix := regdef.GoName(def.Name)
	data := blockData{
		Source:      source,
		Package:     pkg,
		Prefix:      prefix,
		Name:        def.Name,
		Description: def.Description,
		Base:        def.Base,
		Size:        def.Size,
	}

	for _, reg := range def.Registers {
		for _, f := range reg.Fields {
			access, err := field.ParseAccess(f.Access)
			if err != nil {
				return "", fmt.Errorf("field %s: %w", f.Name, err)
			}
			fd := fieldData{
				Var:         prefix + regdef.GoName(f.Name),
				Name:        f.Name,
				Macro:       regdef.ConstName(def.Name, f.Name),
				Description: f.Description,
				Offset:      reg.Offset,
				Shift:       f.LSB,
				Width:       f.Width,
				Default:     f.Default,
				Access:      accessConst(access),
			}
			if len(f.Enum) > 0 {
				fd.EnumType = fd.Var + "Value"
				for _, e := range f.Enum {
					fd.Enum = append(fd.Enum, enumData{
						Const:       fd.Var + regdef.GoName(e.Name),
						Name:        e.Name,
						Value:       e.Value,
						Description: e.Description,
					})
				}
			}
			data.Fields = append(data.Fields, fd)
		}
	}

	for _, l := range def.LUTs {
		layout, err := lut.ParseLayout(l.Layout)
		if err != nil {
			return "", fmt.Errorf("lut %s: %w", l.Name, err)
		}
		data.LUTs = append(data.LUTs, lutData{
			Var:         prefix + regdef.GoName(l.Name),
			Name:        l.Name,
			Macro:       regdef.ConstName(def.Name, l.Name),
			Description: l.Description,
			Offset:      l.Offset,
			EntryWidth:  l.EntryWidth,
			Entries:     l.Entries,
			AddressBits: l.AddressBits,
			Layout:      layoutConst(layout),
		})
	}

	var b strings.Builder
	renderTemplate(&b, "block", data)
	return b.String(), nil
}

// GenerateIndex renders the Blocks table. defs must already be ordered by
// base address.
func GenerateIndex(defs []*regdef.RawBlockDef, pkg string) string {
	data := indexData{Package: pkg}
	for _, def := range defs {
		data.Blocks = append(data.Blocks, regdef.GoName(def.Name))
	}
	var b strings.Builder
	renderTemplate(&b, "index", data)
	return b.String()
}

func accessConst(a field.Access) string {
	switch a {
	case field.ReadOnly:
		return "field.ReadOnly"
	case field.WriteOnly:
		return "field.WriteOnly"
	case field.Strobe:
		return "field.Strobe"
	default:
		return "field.ReadWrite"
	}
}

func layoutConst(l lut.Layout) string {
	if l == lut.WordPerEntry {
		return "lut.WordPerEntry"
	}
	return "lut.Packed"
}

// firstLower lower-cases the first letter unless the first word is an
// initialism: "Active video width" -> "active video width", "ISP state" is
// kept.
func firstLower(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	if len(r) > 1 && unicode.IsUpper(r[1]) {
		return s
	}
	r[0] = unicode.ToLower(r[0])
	return string(r)
}
