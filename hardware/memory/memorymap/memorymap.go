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

package memorymap

// Area identifies a region of the address space.
type Area int

func (a Area) String() string {
	switch a {
	case VRAM:
		return "VRAM"
	case RAM:
		return "RAM"
	}

	return "undefined"
}

// The different memory areas.
const (
	Undefined Area = iota
	VRAM
	RAM
)

// The origin and memory top for each area of memory. These are the addresses
// after CacheMask has been applied.
const (
	OriginVRAM = uint32(0x04000000)
	MemtopVRAM = uint32(0x047fffff)
	OriginRAM  = uint32(0x08000000)
	MemtopRAM  = uint32(0x09ffffff)
)

// CacheMask removes the cache-control and kernel bits from an address.
const CacheMask = uint32(0x3fffffff)

// AddressMask keeps only the bits that are relevant when comparing the base
// addresses of framebuffers. The VRAM mirrors all collapse to the same value
// under this mask.
const AddressMask = uint32(0x03ffffff)

// MaskAddress applies AddressMask to the address.
func MaskAddress(address uint32) uint32 {
	return address & AddressMask
}

// MaskedEqual returns true if the two addresses refer to the same memory
// once non-addressing bits have been discarded.
func MaskedEqual(a, b uint32) bool {
	return MaskAddress(a) == MaskAddress(b)
}

// MapAddress removes the cache bits from the address and returns the area
// of memory it belongs to.
func MapAddress(address uint32) (uint32, Area) {
	address &= CacheMask

	// VRAM is mirrored four times inside a 0x00800000 window. the mirrors
	// are collapsed into the first 2MB
	if address >= OriginVRAM && address <= MemtopVRAM {
		return OriginVRAM | (address & 0x001fffff), VRAM
	}

	if address >= OriginRAM && address <= MemtopRAM {
		return address, RAM
	}

	return address, Undefined
}
