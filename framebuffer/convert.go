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

package framebuffer

// Convert4To8 expands a 4-bit channel value to 8 bits by replicating the
// value into both nibbles. Only the low four bits of v are used.
func Convert4To8(v uint8) uint8 {
	v &= 0x0f
	return v<<4 | v
}

// Convert5To8 expands a 5-bit channel value to 8 bits.
func Convert5To8(v uint8) uint8 {
	v &= 0x1f
	return v<<3 | v>>2
}

// Convert6To8 expands a 6-bit channel value to 8 bits.
func Convert6To8(v uint8) uint8 {
	v &= 0x3f
	return v<<2 | v>>4
}
