// Package inspect provides register-map inspection and manipulation utilities.
//
// The inspect package offers a unified interface for:
//   - Parsing path expressions (e.g., "isp_top/active_width", "noise_profile/weight_lut[5]")
//   - Resolving enumeration names to field values
//   - Reading and writing fields, LUT entries and raw words
//   - Formatting output for display
package inspect

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Path errors.
var (
	ErrEmptyPath     = errors.New("empty path")
	ErrInvalidPath   = errors.New("invalid path format")
	ErrInvalidNumber = errors.New("invalid numeric value in path")
)

// Path represents a parsed inspection path.
// Format: block[/name[[index]]] or a numeric word address.
type Path struct {
	// Block is the register block name.
	Block string

	// Name is the field or LUT name within the block.
	Name string

	// Index is the LUT entry index (when HasIndex is true).
	Index uint32

	// HasIndex indicates a LUT entry path, e.g. "weight_lut[5]".
	HasIndex bool

	// Address is the byte offset of a raw word (when IsAddress is true).
	Address uint32

	// IsAddress indicates a numeric word path such as "0x18e88".
	IsAddress bool

	// IsPartial indicates the path names only a block
	// (used for inspect operations that show every field).
	IsPartial bool

	// Raw stores the original input string.
	Raw string
}

// ParsePath parses a path string into a Path struct.
//
// Supported formats:
//   - "block/field" - a bitfield
//   - "block/lut" - a whole table
//   - "block/lut[index]" - one table entry
//   - "block" - partial (for listing fields)
//   - "0x18e88" - a raw word at a byte offset
//
// Numeric values can be decimal, hex (0x prefix) or binary (0b prefix).
func ParsePath(input string) (*Path, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, ErrEmptyPath
	}

	// Check for invalid patterns
	if strings.HasPrefix(input, "/") || strings.HasSuffix(input, "/") || strings.Contains(input, "//") {
		return nil, ErrInvalidPath
	}

	p := &Path{Raw: input}

	if isNumeric(input) {
		addr, err := ParseValue(input)
		if err != nil {
			return nil, fmt.Errorf("address: %w", err)
		}
		p.Address = addr
		p.IsAddress = true
		return p, nil
	}

	parts := strings.Split(input, "/")
	if len(parts) > 2 {
		return nil, fmt.Errorf("%w: %s", ErrInvalidPath, input)
	}

	p.Block = parts[0]
	if !validName(p.Block) {
		return nil, fmt.Errorf("%w: block %q", ErrInvalidPath, p.Block)
	}
	if len(parts) == 1 {
		p.IsPartial = true
		return p, nil
	}

	name := parts[1]
	if open := strings.IndexByte(name, '['); open >= 0 {
		if !strings.HasSuffix(name, "]") {
			return nil, fmt.Errorf("%w: unterminated index in %q", ErrInvalidPath, name)
		}
		idx, err := ParseValue(name[open+1 : len(name)-1])
		if err != nil {
			return nil, fmt.Errorf("index: %w", err)
		}
		p.Index = idx
		p.HasIndex = true
		name = name[:open]
	}
	if !validName(name) {
		return nil, fmt.Errorf("%w: name %q", ErrInvalidPath, name)
	}
	p.Name = name

	return p, nil
}

// String returns the path as a string.
func (p *Path) String() string {
	if p.IsAddress {
		return fmt.Sprintf("0x%x", p.Address)
	}

	var sb strings.Builder
	sb.WriteString(p.Block)

	if p.IsPartial {
		return sb.String()
	}

	sb.WriteString("/")
	sb.WriteString(p.Name)

	if p.HasIndex {
		sb.WriteString("[")
		sb.WriteString(strconv.FormatUint(uint64(p.Index), 10))
		sb.WriteString("]")
	}

	return sb.String()
}

// ParseValue parses a uint32 from a decimal, hex (0x) or binary (0b) string.
func ParseValue(s string) (uint32, error) {
	s = strings.TrimSpace(s)
	var v uint64
	var err error

	switch {
	case strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X"):
		v, err = strconv.ParseUint(s[2:], 16, 32)
	case strings.HasPrefix(s, "0b") || strings.HasPrefix(s, "0B"):
		v, err = strconv.ParseUint(s[2:], 2, 32)
	default:
		v, err = strconv.ParseUint(s, 10, 32)
	}
	if err != nil {
		return 0, fmt.Errorf("%w: %s", ErrInvalidNumber, s)
	}
	return uint32(v), nil
}

// isNumeric reports whether s starts like a number.
func isNumeric(s string) bool {
	return s != "" && s[0] >= '0' && s[0] <= '9'
}

// validName accepts register-map identifiers.
func validName(s string) bool {
	if s == "" || isNumeric(s) {
		return false
	}
	for _, r := range s {
		if !(r == '_' || r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9') {
			return false
		}
	}
	return true
}
