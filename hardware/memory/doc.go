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

// Package memory implements the emulated memory that is visible to the
// graphics engine: video memory (VRAM) and main memory (RAM).
//
// The Pointer() function returns a slice that aliases emulated memory. This
// is how the contents of a memory region are made available to the graphics
// backend without copying. Writes through the slice are visible to the
// emulation.
package memory
