package inspect

import (
	"errors"
	"fmt"
	"time"

	"github.com/acamera-isp/ispreg-go/pkg/field"
	"github.com/acamera-isp/ispreg-go/pkg/isp"
	"github.com/acamera-isp/ispreg-go/pkg/log"
	"github.com/acamera-isp/ispreg-go/pkg/lut"
	"github.com/acamera-isp/ispreg-go/pkg/regspace"
)

// Inspector errors.
var (
	ErrNotWritable = errors.New("field is not writable")
	ErrNeedsIndex  = errors.New("lut path needs an index")
	ErrNotLUT      = errors.New("not a lut")
)

// Inspector provides inspection and mutation capabilities for a register
// window described by a Registry.
type Inspector struct {
	region   *regspace.Region
	registry *isp.Registry
	logger   log.Logger
	session  string
	now      func() time.Time
}

// NewInspector creates a new Inspector over region. Offsets in registry are
// relative to the region base.
func NewInspector(region *regspace.Region, registry *isp.Registry) *Inspector {
	return &Inspector{
		region:   region,
		registry: registry,
		logger:   log.NoopLogger{},
		now:      time.Now,
	}
}

// SetLogger makes the inspector emit field and LUT events to logger.
func (i *Inspector) SetLogger(logger log.Logger, sessionID string) {
	if logger == nil {
		logger = log.NoopLogger{}
	}
	i.logger = logger
	i.session = sessionID
}

// Region returns the underlying register window.
func (i *Inspector) Region() *regspace.Region {
	return i.region
}

// Registry returns the register map.
func (i *Inspector) Registry() *isp.Registry {
	return i.registry
}

// Err returns the sticky error of the underlying space, if it records one
// (a remote or /dev/mem space).
func (i *Inspector) Err() error {
	if e, ok := i.region.Space.(interface{ Err() error }); ok {
		return e.Err()
	}
	return nil
}

// Target is what a Path resolves to.
type Target struct {
	Block *isp.Block
	Field *field.Descriptor
	LUT   *lut.Descriptor
}

// Resolve looks up the block, field or LUT named by p.
func (i *Inspector) Resolve(p *Path) (*Target, error) {
	if p.IsAddress {
		return nil, fmt.Errorf("%w: %s is an address", ErrInvalidPath, p.Raw)
	}
	b, err := i.registry.Block(p.Block)
	if err != nil {
		return nil, err
	}
	t := &Target{Block: b}
	if p.IsPartial {
		return t, nil
	}
	if d, ok := b.Field(p.Name); ok {
		if p.HasIndex {
			return nil, fmt.Errorf("%w: %s", ErrNotLUT, d.Name)
		}
		t.Field = d
		return t, nil
	}
	if d, ok := b.LUT(p.Name); ok {
		t.LUT = d
		return t, nil
	}
	return nil, fmt.Errorf("%w: %s/%s", isp.ErrUnknownField, p.Block, p.Name)
}

// Read returns the value at p: a field value, a LUT entry or a raw word.
func (i *Inspector) Read(p *Path) (uint32, error) {
	if p.IsAddress {
		if err := i.checkAddress(p.Address); err != nil {
			return 0, err
		}
		return i.region.ReadWord(p.Address), nil
	}
	t, err := i.Resolve(p)
	if err != nil {
		return 0, err
	}
	switch {
	case t.Field != nil:
		v := field.Read(i.region, t.Field)
		i.emit(log.LayerField, log.OpRead, t.Field.Offset, v, t.Block.Name+"/"+t.Field.Name, nil)
		return v, nil
	case t.LUT != nil:
		if !p.HasIndex {
			return 0, fmt.Errorf("%w: %s", ErrNeedsIndex, t.LUT.Name)
		}
		v, err := lut.ReadChecked(i.region, t.LUT, p.Index)
		if err != nil {
			return 0, err
		}
		off, _ := t.LUT.Address(p.Index)
		i.emit(log.LayerLUT, log.OpRead, off, v, t.Block.Name+"/"+t.LUT.Name, &p.Index)
		return v, nil
	}
	return 0, fmt.Errorf("%w: %s names a block", ErrInvalidPath, p.Raw)
}

// Write sets the value at p from its textual form. Field values accept
// enumeration names. Values that do not fit are rejected rather than
// truncated.
func (i *Inspector) Write(p *Path, value string) error {
	if p.IsAddress {
		if err := i.checkAddress(p.Address); err != nil {
			return err
		}
		v, err := ParseValue(value)
		if err != nil {
			return err
		}
		i.region.WriteWord(p.Address, v)
		return nil
	}
	t, err := i.Resolve(p)
	if err != nil {
		return err
	}
	switch {
	case t.Field != nil:
		if t.Field.Access == field.ReadOnly {
			return fmt.Errorf("%w: %s", ErrNotWritable, t.Field.Name)
		}
		v, err := ResolveValue(t.Field, value)
		if err != nil {
			return err
		}
		if err := field.WriteChecked(i.region, t.Field, v); err != nil {
			return err
		}
		i.emit(log.LayerField, log.OpWrite, t.Field.Offset, v, t.Block.Name+"/"+t.Field.Name, nil)
		return nil
	case t.LUT != nil:
		if !p.HasIndex {
			return fmt.Errorf("%w: %s", ErrNeedsIndex, t.LUT.Name)
		}
		v, err := ParseValue(value)
		if err != nil {
			return err
		}
		if err := lut.WriteChecked(i.region, t.LUT, p.Index, v); err != nil {
			return err
		}
		off, _ := t.LUT.Address(p.Index)
		i.emit(log.LayerLUT, log.OpWrite, off, v, t.Block.Name+"/"+t.LUT.Name, &p.Index)
		return nil
	}
	return fmt.Errorf("%w: %s names a block", ErrInvalidPath, p.Raw)
}

// ReadLUT returns every entry of the table at p.
func (i *Inspector) ReadLUT(p *Path) ([]uint32, *lut.Descriptor, error) {
	d, err := i.resolveLUT(p)
	if err != nil {
		return nil, nil, err
	}
	return lut.Dump(i.region, d), d, nil
}

// LoadLUT writes values into the table at p starting at entry 0.
func (i *Inspector) LoadLUT(p *Path, values []uint32) error {
	d, err := i.resolveLUT(p)
	if err != nil {
		return err
	}
	if err := lut.Load(i.region, d, values); err != nil {
		return err
	}
	name := p.Block + "/" + d.Name
	for idx, v := range values {
		n := uint32(idx)
		off, _ := d.Address(n)
		i.emit(log.LayerLUT, log.OpWrite, off, v, name, &n)
	}
	return nil
}

// ResetBlock writes the reset value of every writable field of a block.
func (i *Inspector) ResetBlock(name string) error {
	b, err := i.registry.Block(name)
	if err != nil {
		return err
	}
	b.Reset(i.region)
	return nil
}

func (i *Inspector) resolveLUT(p *Path) (*lut.Descriptor, error) {
	t, err := i.Resolve(p)
	if err != nil {
		return nil, err
	}
	if t.LUT == nil {
		return nil, fmt.Errorf("%w: %s", ErrNotLUT, p.Raw)
	}
	return t.LUT, nil
}

func (i *Inspector) checkAddress(addr uint32) error {
	if addr%4 != 0 {
		return fmt.Errorf("%w: 0x%x", regspace.ErrUnaligned, addr)
	}
	if !i.region.Contains(addr) {
		return fmt.Errorf("%w: 0x%x", regspace.ErrOutOfRegion, addr)
	}
	return nil
}

// BlockInfo represents a block and its current register contents for display.
type BlockInfo struct {
	Name        string
	Description string
	Base        uint32
	Size        uint32
	Registers   []RegisterInfo
	LUTs        []LUTInfo
}

// RegisterInfo represents one word and the fields packed into it.
type RegisterInfo struct {
	Offset uint32
	Word   uint32
	Fields []FieldInfo
}

// FieldInfo represents a field value for display.
type FieldInfo struct {
	Name     string
	Shift    uint8
	Width    uint8
	Access   field.Access
	Value    uint32
	Default  uint32
	EnumName string
}

// LUTInfo summarises a table without reading it.
type LUTInfo struct {
	Name       string
	Offset     uint32
	Entries    uint32
	EntryWidth uint8
	Layout     lut.Layout
}

// InspectBlock reads every register of the named block.
// Each register word is read once; field values are extracted from it.
func (i *Inspector) InspectBlock(name string) (*BlockInfo, error) {
	b, err := i.registry.Block(name)
	if err != nil {
		return nil, err
	}
	info := &BlockInfo{
		Name:        b.Name,
		Description: b.Description,
		Base:        b.Base,
		Size:        b.Size,
	}
	for _, off := range b.Offsets() {
		word := i.region.ReadWord(off)
		reg := RegisterInfo{Offset: off, Word: word}
		for _, d := range b.FieldsAt(off) {
			fi := FieldInfo{
				Name:    d.Name,
				Shift:   d.Shift,
				Width:   d.Width,
				Access:  d.Access,
				Value:   d.Extract(word),
				Default: d.Default,
			}
			fi.EnumName, _ = d.EnumName(fi.Value)
			reg.Fields = append(reg.Fields, fi)
		}
		info.Registers = append(info.Registers, reg)
	}
	for _, d := range b.LUTs {
		info.LUTs = append(info.LUTs, LUTInfo{
			Name:       d.Name,
			Offset:     d.Offset,
			Entries:    d.Entries,
			EntryWidth: d.EntryWidth,
			Layout:     d.Layout,
		})
	}
	return info, nil
}

// InspectAll inspects every block in base order.
func (i *Inspector) InspectAll() []*BlockInfo {
	var out []*BlockInfo
	for _, b := range i.registry.Blocks() {
		info, err := i.InspectBlock(b.Name)
		if err != nil {
			continue
		}
		out = append(out, info)
	}
	return out
}

// Changed returns the fields of a block whose value differs from reset.
func (info *BlockInfo) Changed() []FieldInfo {
	var out []FieldInfo
	for _, r := range info.Registers {
		for _, f := range r.Fields {
			if f.Value != f.Default {
				out = append(out, f)
			}
		}
	}
	return out
}

// emit records an access. name is the block-qualified path of the field or
// table.
func (i *Inspector) emit(layer log.Layer, op log.Op, offset, value uint32, name string, index *uint32) {
	i.logger.Log(log.Event{
		Timestamp: i.now(),
		SessionID: i.session,
		Layer:     layer,
		Category:  log.CategoryAccess,
		Access: &log.AccessEvent{
			Op:      op,
			Address: i.region.Addr(offset),
			Value:   value,
			Name:    name,
			Index:   index,
		},
	})
}
