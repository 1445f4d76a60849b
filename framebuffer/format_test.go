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

package framebuffer_test

import (
	"testing"

	"github.com/jetsetilly/gestencil/framebuffer"
	"github.com/jetsetilly/gestencil/test"
)

func TestConvert(t *testing.T) {
	test.ExpectEquality(t, framebuffer.Convert4To8(5), uint8(0x55))
	test.ExpectEquality(t, framebuffer.Convert4To8(0x0f), uint8(0xff))
	test.ExpectEquality(t, framebuffer.Convert4To8(0), uint8(0x00))
	test.ExpectEquality(t, framebuffer.Convert5To8(0x1f), uint8(0xff))
	test.ExpectEquality(t, framebuffer.Convert6To8(0x3f), uint8(0xff))
	test.ExpectEquality(t, framebuffer.Convert5To8(0x10), uint8(0x84))
}

func TestAlphaBits(t *testing.T) {
	test.ExpectEquality(t, framebuffer.Format565.AlphaBits(), 0)
	test.ExpectEquality(t, framebuffer.Format5551.AlphaBits(), 1)
	test.ExpectEquality(t, framebuffer.Format4444.AlphaBits(), 4)
	test.ExpectEquality(t, framebuffer.Format8888.AlphaBits(), 8)
}

func TestParseFormat(t *testing.T) {
	for f := framebuffer.Format(0); f < framebuffer.NumFormats; f++ {
		p, ok := framebuffer.ParseFormat(f.String())
		test.ExpectSuccess(t, ok)
		test.ExpectEquality(t, p, f)
	}
	_, ok := framebuffer.ParseFormat("888")
	test.ExpectFailure(t, ok)
}

func TestDecode8888(t *testing.T) {
	src := []byte{
		1, 2, 3, 0,
		4, 5, 6, 1,
		7, 8, 9, 255,
		10, 11, 12, 128,
	}
	img := framebuffer.Format8888.Decode(src, 4, 4, 1)
	for x, a := range []uint8{0, 1, 255, 128} {
		test.ExpectEquality(t, img.NRGBAAt(x, 0).A, a)
	}
	test.ExpectEquality(t, img.NRGBAAt(2, 0).R, uint8(7))
}

func TestDecode4444(t *testing.T) {
	// alpha nibble of 5 in the top four bits
	src := []byte{0x21, 0x53}
	img := framebuffer.Format4444.Decode(src, 1, 1, 1)
	c := img.NRGBAAt(0, 0)
	test.ExpectEquality(t, c.R, uint8(0x11))
	test.ExpectEquality(t, c.G, uint8(0x22))
	test.ExpectEquality(t, c.B, uint8(0x33))
	test.ExpectEquality(t, c.A, uint8(0x55))
}

func TestDecode5551(t *testing.T) {
	src := []byte{0x1f, 0x00, 0x00, 0x80}
	img := framebuffer.Format5551.Decode(src, 2, 2, 1)
	test.ExpectEquality(t, img.NRGBAAt(0, 0).A, uint8(0x00))
	test.ExpectEquality(t, img.NRGBAAt(0, 0).R, uint8(0xff))
	test.ExpectEquality(t, img.NRGBAAt(1, 0).A, uint8(0xff))
}

func TestDecode565(t *testing.T) {
	src := []byte{0x00, 0xf8}
	img := framebuffer.Format565.Decode(src, 1, 1, 1)
	c := img.NRGBAAt(0, 0)
	test.ExpectEquality(t, c.B, uint8(0xff))
	test.ExpectEquality(t, c.R, uint8(0x00))
	test.ExpectEquality(t, c.A, uint8(0xff))
}

func TestDecodeStride(t *testing.T) {
	// two rows of two pixels with a stride of three pixels. the third pixel of
	// each row is padding and must not appear in the output
	src := []byte{
		0, 0, 0, 10, 0, 0, 0, 11, 0, 0, 0, 99,
		0, 0, 0, 12, 0, 0, 0, 13, 0, 0, 0, 99,
	}
	img := framebuffer.Format8888.Decode(src, 3, 2, 2)
	test.ExpectEquality(t, img.NRGBAAt(0, 1).A, uint8(12))
	test.ExpectEquality(t, img.NRGBAAt(1, 1).A, uint8(13))

	// short source leaves pixels transparent
	img = framebuffer.Format8888.Decode(src[:8], 3, 2, 2)
	test.ExpectEquality(t, img.NRGBAAt(0, 1).A, uint8(0))
}
