package isp

import (
	"errors"
	"fmt"
	"sort"

	"github.com/acamera-isp/ispreg-go/pkg/field"
	"github.com/acamera-isp/ispreg-go/pkg/lut"
)

// WindowSize is the extent of the ISP register window in bytes. It covers
// every generated block.
const WindowSize uint32 = 0x20000

// Lookup errors.
var (
	ErrUnknownBlock = errors.New("unknown block")
	ErrUnknownField = errors.New("unknown field")
	ErrUnknownLUT   = errors.New("unknown LUT")
)

// Registry finds blocks, fields and tables by name or address.
type Registry struct {
	blocks []*Block
	byName map[string]*Block
}

// NewRegistry indexes blocks. Later blocks with a duplicate name are ignored.
func NewRegistry(blocks ...*Block) *Registry {
	r := &Registry{byName: make(map[string]*Block, len(blocks))}
	for _, b := range blocks {
		if _, ok := r.byName[b.Name]; ok {
			continue
		}
		r.byName[b.Name] = b
		r.blocks = append(r.blocks, b)
	}
	sort.SliceStable(r.blocks, func(i, j int) bool { return r.blocks[i].Base < r.blocks[j].Base })
	return r
}

// Default returns a registry of every generated block.
func Default() *Registry {
	return NewRegistry(Blocks...)
}

// Blocks returns the indexed blocks in base address order.
func (r *Registry) Blocks() []*Block {
	return r.blocks
}

// Block returns the block called name.
func (r *Registry) Block(name string) (*Block, error) {
	b, ok := r.byName[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownBlock, name)
	}
	return b, nil
}

// Field returns field name of block.
func (r *Registry) Field(block, name string) (*field.Descriptor, error) {
	b, err := r.Block(block)
	if err != nil {
		return nil, err
	}
	d, ok := b.Field(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s/%s", ErrUnknownField, block, name)
	}
	return d, nil
}

// LUT returns table name of block.
func (r *Registry) LUT(block, name string) (*lut.Descriptor, error) {
	b, err := r.Block(block)
	if err != nil {
		return nil, err
	}
	d, ok := b.LUT(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s/%s", ErrUnknownLUT, block, name)
	}
	return d, nil
}

// BlockAt returns the block whose window holds offset.
func (r *Registry) BlockAt(offset uint32) (*Block, bool) {
	for _, b := range r.blocks {
		if b.Contains(offset) {
			return b, true
		}
	}
	return nil, false
}

// ResetImage merges the reset images of every block.
func (r *Registry) ResetImage() map[uint32]uint32 {
	img := make(map[uint32]uint32)
	for _, b := range r.blocks {
		for off, v := range b.ResetImage() {
			img[off] |= v
		}
	}
	return img
}
