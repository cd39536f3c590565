//go:build linux

package regspace

import (
	"fmt"
	"os"
	"sync"
	"sync/atomic"
	"unsafe"

	"golang.org/x/sys/unix"
)

// DefaultDevMem is the physical memory device used by OpenDevMem callers
// that map real hardware.
const DefaultDevMem = "/dev/mem"

// DevMem is a Space backed by an mmap of a physical address window.
// Addresses passed to ReadWord and WriteWord are absolute physical byte
// addresses inside [Base, Base+Size). Each access is a single aligned 32-bit
// load or store.
//
// Space has no error return, so an unaligned or out-of-window access, or
// any access after Close, is dropped (reads return zero) and the first such
// failure is kept for Err.
type DevMem struct {
	mu     sync.RWMutex
	file   *os.File
	mem    []byte
	base   uint32
	size   uint32
	closed bool

	errMu sync.Mutex
	err   error
}

// OpenDevMem maps size bytes of path starting at the physical address base.
// base must be page aligned.
func OpenDevMem(path string, base, size uint32) (*DevMem, error) {
	if size == 0 || size%WordSize != 0 {
		return nil, fmt.Errorf("devmem: size 0x%x: %w", size, ErrUnaligned)
	}
	if pg := uint32(unix.Getpagesize()); base%pg != 0 {
		return nil, fmt.Errorf("devmem: base 0x%08x not aligned to page size 0x%x", base, pg)
	}

	f, err := os.OpenFile(path, os.O_RDWR|os.O_SYNC, 0)
	if err != nil {
		return nil, fmt.Errorf("devmem: open %s: %w", path, err)
	}
	mem, err := unix.Mmap(int(f.Fd()), int64(base), int(size),
		unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("devmem: mmap 0x%08x+0x%x: %w", base, size, err)
	}
	return &DevMem{file: f, mem: mem, base: base, size: size}, nil
}

// Base returns the first mapped physical address.
func (d *DevMem) Base() uint32 { return d.base }

// Size returns the length of the mapped window in bytes.
func (d *DevMem) Size() uint32 { return d.size }

// ReadWord implements Space.
func (d *DevMem) ReadWord(addr uint32) uint32 {
	d.mu.RLock()
	defer d.mu.RUnlock()
	p, err := d.word(addr)
	if err != nil {
		d.fail(err)
		return 0
	}
	return atomic.LoadUint32(p)
}

// WriteWord implements Space.
func (d *DevMem) WriteWord(addr uint32, v uint32) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	p, err := d.word(addr)
	if err != nil {
		d.fail(err)
		return
	}
	atomic.StoreUint32(p, v)
}

// Err returns the first access failure, if any.
func (d *DevMem) Err() error {
	d.errMu.Lock()
	defer d.errMu.Unlock()
	return d.err
}

// Close unmaps the window and closes the device. Close is idempotent.
func (d *DevMem) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return nil
	}
	d.closed = true
	err := unix.Munmap(d.mem)
	d.mem = nil
	if cerr := d.file.Close(); err == nil {
		err = cerr
	}
	return err
}

// word must be called with mu held.
func (d *DevMem) word(addr uint32) (*uint32, error) {
	if d.closed {
		return nil, ErrClosed
	}
	if addr%WordSize != 0 {
		return nil, fmt.Errorf("devmem: 0x%08x: %w", addr, ErrUnaligned)
	}
	if addr < d.base || uint64(addr)+WordSize > uint64(d.base)+uint64(d.size) {
		return nil, fmt.Errorf("devmem: 0x%08x: %w", addr, ErrOutOfRegion)
	}
	return (*uint32)(unsafe.Pointer(&d.mem[addr-d.base])), nil
}

func (d *DevMem) fail(err error) {
	d.errMu.Lock()
	defer d.errMu.Unlock()
	if d.err == nil {
		d.err = err
	}
}

var _ Space = (*DevMem)(nil)
