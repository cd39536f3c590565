// Package regdef loads register-map definitions from YAML. Both isp-reggen
// and the register tools import this package.
//
// A block file describes one hardware block: its address window, the
// registers in it with their bitfields, and its look-up tables. Offsets are
// byte offsets from the ISP register base, exactly as printed in the
// technical reference manual.
package regdef

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"
)

// RawBlockDef represents one register block loaded from YAML.
type RawBlockDef struct {
	Name        string           `yaml:"name"`
	Base        uint32           `yaml:"base"`
	Size        uint32           `yaml:"size"`
	Description string           `yaml:"description"`
	Registers   []RawRegisterDef `yaml:"registers"`
	LUTs        []RawLUTDef      `yaml:"luts"`
}

// RawRegisterDef represents one 32-bit register.
type RawRegisterDef struct {
	Name        string        `yaml:"name"`
	Offset      uint32        `yaml:"offset"`
	Description string        `yaml:"description"`
	Fields      []RawFieldDef `yaml:"fields"`
}

// RawFieldDef represents a bitfield within a register.
type RawFieldDef struct {
	Name        string         `yaml:"name"`
	LSB         uint8          `yaml:"lsb"`
	Width       uint8          `yaml:"width"`
	Default     uint32         `yaml:"default"`
	Access      string         `yaml:"access"` // "rw", "ro", "wo", "strobe"
	Description string         `yaml:"description"`
	Enum        []RawEnumValue `yaml:"enum"`
}

// RawEnumValue represents a named field value.
type RawEnumValue struct {
	Name        string `yaml:"name"`
	Value       uint32 `yaml:"value"`
	Description string `yaml:"description"`
}

// RawLUTDef represents an indexed look-up table.
type RawLUTDef struct {
	Name        string `yaml:"name"`
	Offset      uint32 `yaml:"offset"`
	EntryWidth  uint8  `yaml:"entryWidth"`
	Entries     uint32 `yaml:"entries"`
	AddressBits uint8  `yaml:"addressBits"`
	Layout      string `yaml:"layout"` // "packed", "word"
	Description string `yaml:"description"`
}

// ParseBlockDef parses a block definition from YAML bytes.
func ParseBlockDef(data []byte) (*RawBlockDef, error) {
	var def RawBlockDef
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("parsing block def: %w", err)
	}
	if def.Name == "" {
		return nil, fmt.Errorf("block definition missing name")
	}
	return &def, nil
}

// LoadBlockDef loads and parses a block definition from a file.
func LoadBlockDef(path string) (*RawBlockDef, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return ParseBlockDef(data)
}

// LoadDir loads every *.yaml file in dir, ordered by block base address.
func LoadDir(dir string) ([]*RawBlockDef, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.yaml"))
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no block definitions in %s", dir)
	}
	defs := make([]*RawBlockDef, 0, len(paths))
	for _, p := range paths {
		def, err := LoadBlockDef(p)
		if err != nil {
			return nil, err
		}
		defs = append(defs, def)
	}
	sort.SliceStable(defs, func(i, j int) bool { return defs[i].Base < defs[j].Base })
	return defs, nil
}
