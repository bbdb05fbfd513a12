// Package mmio provides a bounded, typed view over a memory-mapped
// device region.
//
// The hardware on the other side of the region observes every access,
// so reads and writes go through Load and Store calls that the compiler
// will not elide, merge, or reorder relative to each other. Treating
// the region as ordinary memory would let the optimizer cache or drop
// stores the device needs to see.
package mmio

import "unsafe"

// Device is a fixed-size region of 16-bit device cells. A Device is
// constructed once, stays bound to the same backing store for the life
// of the process, and is never resized.
type Device struct {
	mem []uint16
}

// Map binds a device to cells 16-bit words of memory at the fixed
// address addr. The caller must guarantee the region is mapped and that
// nothing else in the process aliases it.
func Map(addr uintptr, cells int) *Device {
	return &Device{mem: unsafe.Slice((*uint16)(unsafe.Pointer(addr)), cells)}
}

// NewRAM returns a device backed by ordinary host memory, for emulation
// and tests.
func NewRAM(cells int) *Device {
	return &Device{mem: make([]uint16, cells)}
}

// Len returns the number of cells in the region.
func (d *Device) Len() int {
	return len(d.mem)
}

// Load reads the cell at index i.
//
//go:noinline
func (d *Device) Load(i int) uint16 {
	return d.mem[i]
}

// Store writes the cell at index i.
//
//go:noinline
func (d *Device) Store(i int, v uint16) {
	d.mem[i] = v
}
