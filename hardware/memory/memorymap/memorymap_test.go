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

package memorymap_test

import (
	"testing"

	"github.com/jetsetilly/gestencil/hardware/memory/memorymap"
	"github.com/jetsetilly/gestencil/test"
)

func TestMaskedEqual(t *testing.T) {
	test.ExpectSuccess(t, memorymap.MaskedEqual(0x04000000, 0x44000000))
	test.ExpectSuccess(t, memorymap.MaskedEqual(0x04088000, 0x84088000))
	test.ExpectSuccess(t, memorymap.MaskedEqual(0x04000000, 0x00000000))
	test.ExpectFailure(t, memorymap.MaskedEqual(0x04000000, 0x04044000))
	test.ExpectEquality(t, memorymap.MaskAddress(0x44110000), 0x00110000)
}

func TestMapAddress(t *testing.T) {
	a, area := memorymap.MapAddress(0x44000100)
	test.ExpectEquality(t, area, memorymap.VRAM)
	test.ExpectEquality(t, a, 0x04000100)

	// mirror of VRAM
	a, area = memorymap.MapAddress(0x04200100)
	test.ExpectEquality(t, area, memorymap.VRAM)
	test.ExpectEquality(t, a, 0x04000100)

	a, area = memorymap.MapAddress(0x48800000)
	test.ExpectEquality(t, area, memorymap.RAM)
	test.ExpectEquality(t, a, 0x08800000)

	_, area = memorymap.MapAddress(0x00010000)
	test.ExpectEquality(t, area, memorymap.Undefined)
	test.ExpectEquality(t, area.String(), "undefined")
}
