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

package memory_test

import (
	"testing"

	"github.com/jetsetilly/gestencil/curated"
	"github.com/jetsetilly/gestencil/hardware/memory"
	"github.com/jetsetilly/gestencil/test"
)

func TestPointerAliasesMemory(t *testing.T) {
	mem := memory.NewMemory()

	err := mem.Write(0x04000000, []byte{0, 1, 255, 128})
	test.DemandSuccess(t, err)

	// uncached mirror of the same address
	p, err := mem.Pointer(0x44000000, 4)
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(p), 4)
	test.ExpectEquality(t, p[2], uint8(255))

	p[3] = 0x7f
	v, err := mem.Peek(0x04000003)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint8(0x7f))
}

func TestMainRAM(t *testing.T) {
	mem := memory.NewMemory()
	test.ExpectSuccess(t, mem.Poke(0x08800000, 0xaa))
	v, err := mem.Peek(0x48800000)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint8(0xaa))
}

func TestErrors(t *testing.T) {
	mem := memory.NewMemory()

	_, err := mem.Pointer(0x00001000, 4)
	test.ExpectSuccess(t, curated.Is(err, memory.UnmappedAddress))

	_, err = mem.Pointer(0x041ffffe, 4)
	test.ExpectSuccess(t, curated.Is(err, memory.OutOfRange))

	_, err = mem.Pointer(0x04000000, -1)
	test.ExpectFailure(t, err)
}
