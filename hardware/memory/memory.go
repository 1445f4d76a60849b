// This file is part of Gestencil.
//
// Gestencil is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gestencil is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gestencil.  If not, see <https://www.gnu.org/licenses/>.

package memory

import (
	"github.com/jetsetilly/gestencil/curated"
	"github.com/jetsetilly/gestencil/hardware/memory/memorymap"
)

// Sentinal errors returned by the memory package.
const (
	UnmappedAddress = "memory: unmapped address (%#010x)"
	OutOfRange      = "memory: region at %#010x (%d bytes) extends beyond %v"
)

// Memory is the emulated address space.
type Memory struct {
	vram []byte
	ram  []byte
}

// sizes of each memory area
const (
	vramSize = 0x00200000
	ramSize  = int(memorymap.MemtopRAM-memorymap.OriginRAM) + 1
)

// NewMemory is the preferred method of initialisation for the Memory type.
func NewMemory() *Memory {
	return &Memory{
		vram: make([]byte, vramSize),
		ram:  make([]byte, ramSize),
	}
}

// area returns the backing slice for the memory area and the offset of the
// address within that area.
func (mem *Memory) area(address uint32) ([]byte, int, memorymap.Area, error) {
	mapped, area := memorymap.MapAddress(address)
	switch area {
	case memorymap.VRAM:
		return mem.vram, int(mapped - memorymap.OriginVRAM), area, nil
	case memorymap.RAM:
		return mem.ram, int(mapped - memorymap.OriginRAM), area, nil
	}
	return nil, 0, area, curated.Errorf(UnmappedAddress, address)
}

// Pointer returns a slice of emulated memory starting at the address. The
// slice aliases emulated memory.
func (mem *Memory) Pointer(address uint32, size int) ([]byte, error) {
	data, offset, area, err := mem.area(address)
	if err != nil {
		return nil, err
	}
	if size < 0 || offset+size > len(data) {
		return nil, curated.Errorf(OutOfRange, address, size, area)
	}
	return data[offset : offset+size : offset+size], nil
}

// Write copies data into emulated memory at the address.
func (mem *Memory) Write(address uint32, data []byte) error {
	p, err := mem.Pointer(address, len(data))
	if err != nil {
		return err
	}
	copy(p, data)
	return nil
}

// Peek returns the byte at the address.
func (mem *Memory) Peek(address uint32) (uint8, error) {
	p, err := mem.Pointer(address, 1)
	if err != nil {
		return 0, err
	}
	return p[0], nil
}

// Poke sets the byte at the address.
func (mem *Memory) Poke(address uint32, value uint8) error {
	p, err := mem.Pointer(address, 1)
	if err != nil {
		return err
	}
	p[0] = value
	return nil
}
