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

// Package memorymap describes the address space of the emulated console and
// the masks used to normalise addresses.
//
// The upper bits of an address are used by the hardware for purposes other
// than addressing (cached/uncached access and the kernel segment). Two
// addresses that differ only in those bits refer to the same memory. The
// MaskedEqual() function compares addresses in this way:
//
//	MaskedEqual(0x44000000, 0x04000000) == true
//
// The MapAddress() function normalises an address and reports which area of
// memory it belongs to.
package memorymap
