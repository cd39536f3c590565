package inspect

import (
	"fmt"
	"strings"

	"github.com/acamera-isp/ispreg-go/pkg/field"
	"github.com/acamera-isp/ispreg-go/pkg/lut"
)

// Formatter formats inspection output.
type Formatter struct {
	// ShowDefaults appends the reset value of fields that differ from it
	ShowDefaults bool

	// ShowBits includes the [msb:lsb] range of each field
	ShowBits bool

	// IndentWidth is the number of spaces per indent level
	IndentWidth int

	// LUTColumns is the number of table entries per output line
	LUTColumns int
}

// NewFormatter creates a new Formatter with default settings.
func NewFormatter() *Formatter {
	return &Formatter{
		ShowDefaults: true,
		ShowBits:     true,
		IndentWidth:  2,
		LUTColumns:   8,
	}
}

// Indent returns the content with indentation.
func (f *Formatter) Indent(depth int, content string) string {
	width := f.IndentWidth
	if width == 0 {
		width = 2
	}
	indent := strings.Repeat(" ", depth*width)
	return indent + content
}

// FormatValue formats a field value for display. Enumerated values show
// their name; one-bit fields show as decimal; wider fields show hex and
// decimal.
func (f *Formatter) FormatValue(d *field.Descriptor, v uint32) string {
	if name, ok := d.EnumName(v); ok {
		return fmt.Sprintf("%s (%d)", name, v)
	}
	if d.Width == 1 {
		return fmt.Sprintf("%d", v)
	}
	return fmt.Sprintf("0x%x (%d)", v, v)
}

// FormatWord formats a raw register word.
func FormatWord(addr, v uint32) string {
	return fmt.Sprintf("0x%08x: 0x%08x", addr, v)
}

// FormatBits returns the [msb:lsb] range of a field.
func FormatBits(shift, width uint8) string {
	if width == 1 {
		return fmt.Sprintf("[%d]", shift)
	}
	return fmt.Sprintf("[%d:%d]", int(shift)+int(width)-1, shift)
}

// FormatBlock formats a block with its registers and tables.
func (f *Formatter) FormatBlock(info *BlockInfo) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s @ 0x%05x (0x%x bytes)", info.Name, info.Base, info.Size))
	if info.Description != "" {
		sb.WriteString(" - " + info.Description)
	}
	sb.WriteString("\n")

	for _, r := range info.Registers {
		sb.WriteString(f.Indent(1, fmt.Sprintf("0x%05x = 0x%08x\n", r.Offset, r.Word)))
		sb.WriteString(f.FormatFieldTable(r.Fields, 2))
	}
	for _, l := range info.LUTs {
		sb.WriteString(f.Indent(1, fmt.Sprintf("0x%05x %s: %d x %d-bit (%s)\n",
			l.Offset, l.Name, l.Entries, l.EntryWidth, l.Layout)))
	}
	return sb.String()
}

// FormatFieldTable formats a list of fields as a table at the given depth.
func (f *Formatter) FormatFieldTable(rows []FieldInfo, depth int) string {
	if len(rows) == 0 {
		return f.Indent(depth, "(no fields)\n")
	}

	width := 0
	for _, row := range rows {
		if len(row.Name) > width {
			width = len(row.Name)
		}
	}

	var sb strings.Builder
	for _, row := range rows {
		line := fmt.Sprintf("%-*s = %s", width, row.Name, formatRowValue(row))
		if f.ShowBits {
			line += " " + FormatBits(row.Shift, row.Width)
		}
		if row.Access != field.ReadWrite {
			line += " " + row.Access.String()
		}
		if f.ShowDefaults && row.Value != row.Default {
			line += fmt.Sprintf(" (reset 0x%x)", row.Default)
		}
		sb.WriteString(f.Indent(depth, line))
		sb.WriteString("\n")
	}
	return sb.String()
}

// FormatLUT formats table contents as rows of hex values prefixed by the
// index of the first entry in the row.
func (f *Formatter) FormatLUT(d *lut.Descriptor, values []uint32) string {
	cols := f.LUTColumns
	if cols <= 0 {
		cols = 8
	}
	digits := (int(d.EntryWidth) + 3) / 4

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s: %d x %d-bit (%s)\n", d.Name, d.Entries, d.EntryWidth, d.Layout))
	for start := 0; start < len(values); start += cols {
		end := start + cols
		if end > len(values) {
			end = len(values)
		}
		parts := make([]string, 0, end-start)
		for _, v := range values[start:end] {
			parts = append(parts, fmt.Sprintf("%0*x", digits, v))
		}
		sb.WriteString(f.Indent(1, fmt.Sprintf("[%3d] %s\n", start, strings.Join(parts, " "))))
	}
	return sb.String()
}

func formatRowValue(row FieldInfo) string {
	if row.EnumName != "" {
		return fmt.Sprintf("%s (%d)", row.EnumName, row.Value)
	}
	if row.Width == 1 {
		return fmt.Sprintf("%d", row.Value)
	}
	return fmt.Sprintf("0x%x", row.Value)
}
