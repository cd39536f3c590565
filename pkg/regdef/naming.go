package regdef

import (
	"strings"
	"unicode"
)

// initialisms are kept upper case in Go names.
var initialisms = map[string]bool{
	"ISP": true, "LUT": true, "DMA": true, "WDR": true, "CFA": true,
	"ID": true, "RGB": true, "RGGB": true, "FR": true, "DS": true,
}

// GoName converts a register-map name to an exported Go identifier:
// "active_width" -> "ActiveWidth", "isp_top" -> "ISPTop",
// "GR_R_B_GB" -> "GrRBGb".
func GoName(name string) string {
	var b strings.Builder
	for _, part := range splitName(name) {
		up := strings.ToUpper(part)
		if initialisms[up] {
			b.WriteString(up)
			continue
		}
		lower := strings.ToLower(part)
		r := []rune(lower)
		r[0] = unicode.ToUpper(r[0])
		b.WriteString(string(r))
	}
	return b.String()
}

// ConstName returns the manual's macro spelling of a field or table name
// within a block: ("isp_top", "active_width") -> "ACAMERA_ISP_TOP_ACTIVE_WIDTH".
func ConstName(block, name string) string {
	parts := append([]string{"acamera"}, splitName(block)...)
	parts = append(parts, splitName(name)...)
	return strings.ToUpper(strings.Join(parts, "_"))
}

// FileName returns the generated file name for a block: "isp_top" ->
// "isp_top_gen.go".
func FileName(block string) string {
	return strings.ToLower(strings.Join(splitName(block), "_")) + "_gen.go"
}

func splitName(name string) []string {
	return strings.FieldsFunc(name, func(r rune) bool {
		return r == '_' || r == '-' || r == ' ' || r == '.'
	})
}
