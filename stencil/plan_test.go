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

package stencil_test

import (
	"testing"

	"github.com/jetsetilly/gestencil/framebuffer"
	"github.com/jetsetilly/gestencil/stencil"
	"github.com/jetsetilly/gestencil/test"
)

func TestPasses(t *testing.T) {
	test.ExpectEquality(t, stencil.Passes(framebuffer.Format565), 0)
	test.ExpectEquality(t, stencil.Passes(framebuffer.Format5551), 2)
	test.ExpectEquality(t, stencil.Passes(framebuffer.Format4444), 16)
	test.ExpectEquality(t, stencil.Passes(framebuffer.Format8888), 256)
	test.ExpectEquality(t, stencil.Passes(framebuffer.NumFormats), 0)

	// the number of passes is the number of values the alpha field can hold
	for f := framebuffer.Format(0); f < framebuffer.NumFormats; f++ {
		if f.AlphaBits() == 0 {
			test.ExpectEquality(t, stencil.Passes(f), 0, f)
		} else {
			test.ExpectEquality(t, stencil.Passes(f), 1<<f.AlphaBits(), f)
		}
	}
}

func TestReference(t *testing.T) {
	_, ok := stencil.Reference(framebuffer.Format565, 0)
	test.ExpectFailure(t, ok)

	_, ok = stencil.Reference(framebuffer.Format8888, 256)
	test.ExpectFailure(t, ok)

	_, ok = stencil.Reference(framebuffer.Format8888, -1)
	test.ExpectFailure(t, ok)

	r, ok := stencil.Reference(framebuffer.Format5551, 0)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, r, 0x00)
	r, _ = stencil.Reference(framebuffer.Format5551, 1)
	test.ExpectEquality(t, r, 0xff)

	r, _ = stencil.Reference(framebuffer.Format4444, 5)
	test.ExpectEquality(t, r, 0x55)
	r, _ = stencil.Reference(framebuffer.Format4444, 15)
	test.ExpectEquality(t, r, 0xff)

	for i := 0; i < 256; i++ {
		r, _ = stencil.Reference(framebuffer.Format8888, i)
		test.ExpectEquality(t, int(r), i)
	}
}

func TestQuantize(t *testing.T) {
	test.ExpectEquality(t, stencil.Quantize(0.0), 0)
	test.ExpectEquality(t, stencil.Quantize(1.0), 255)

	// every 8bit value survives normalisation followed by quantisation. this
	// is true for both methods of normalisation used by the upload
	scale := 1.0 / float32(255)
	for i := 0; i < 256; i++ {
		test.ExpectEquality(t, stencil.Quantize(float32(i)/255), i)
		test.ExpectEquality(t, stencil.Quantize(float32(i)*scale), i)
	}

	// the 4bit values expanded to 8bits match the pass value of the 4444
	// format
	scale = 1.0 / float32(15)
	for i := 0; i < 16; i++ {
		a := float32(framebuffer.Convert4To8(uint8(i))) / 255
		test.ExpectEquality(t, stencil.Quantize(a), stencil.Quantize(float32(i)*scale))
	}
}
