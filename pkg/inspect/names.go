package inspect

import (
	"strings"

	"github.com/acamera-isp/ispreg-go/pkg/field"
)

// ResolveValue parses s as a value for d. Enumeration names are accepted
// case-insensitively for enumerated fields; anything else must be numeric.
func ResolveValue(d *field.Descriptor, s string) (uint32, error) {
	s = strings.TrimSpace(s)
	if len(d.Enum) > 0 && !isNumeric(s) {
		return d.Lookup(s)
	}
	return ParseValue(s)
}

// EnumNames returns the enumeration names of d in declaration order.
func EnumNames(d *field.Descriptor) []string {
	names := make([]string, len(d.Enum))
	for i, e := range d.Enum {
		names[i] = e.Name
	}
	return names
}

// CompleteNames returns the field and LUT names of block that start with
// prefix, for shell completion.
func (i *Inspector) CompleteNames(block, prefix string) []string {
	b, err := i.registry.Block(block)
	if err != nil {
		return nil
	}
	var out []string
	for _, d := range b.Fields {
		if strings.HasPrefix(d.Name, prefix) {
			out = append(out, d.Name)
		}
	}
	for _, d := range b.LUTs {
		if strings.HasPrefix(d.Name, prefix) {
			out = append(out, d.Name)
		}
	}
	return out
}
