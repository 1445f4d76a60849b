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

package stencil

import (
	"math"

	"github.com/jetsetilly/gestencil/framebuffer"
	"github.com/jetsetilly/gestencil/render"
)

// passPlan describes how the stencil buffer for a format is reconstructed.
type passPlan struct {
	// number of draws. zero if the format cannot encode stencil values
	passes int

	// stencil reference value for pass i
	reference func(i int) uint8
}

// one entry for every format. the compile time checks below fail if a format
// is added without a corresponding entry.
var passPlans = [...]passPlan{
	framebuffer.Format565: {},
	framebuffer.Format5551: {
		passes: 2,
		reference: func(i int) uint8 {
			if i == 0 {
				return 0x00
			}
			return 0xff
		},
	},
	framebuffer.Format4444: {
		passes: 16,
		reference: func(i int) uint8 {
			return framebuffer.Convert4To8(uint8(i))
		},
	},
	framebuffer.Format8888: {
		passes: 256,
		reference: func(i int) uint8 {
			return uint8(i)
		},
	},
}

var _ [int(framebuffer.NumFormats) - len(passPlans)]struct{}
var _ [len(passPlans) - int(framebuffer.NumFormats)]struct{}

func planFor(f framebuffer.Format) passPlan {
	if f < 0 || f >= framebuffer.NumFormats {
		return passPlan{}
	}
	return passPlans[f]
}

// Passes returns the number of draws required to reconstruct the stencil
// buffer for the format. Returns zero if the format cannot encode stencil
// values.
func Passes(f framebuffer.Format) int {
	return planFor(f).passes
}

// Reference returns the stencil reference value used for pass i of the
// format. The second return value is false if the format cannot encode
// stencil values or if i is out of range.
func Reference(f framebuffer.Format, i int) (uint8, bool) {
	p := planFor(f)
	if i < 0 || i >= p.passes {
		return 0, false
	}
	return p.reference(i), true
}

// Quantize maps a normalised channel value to an integer level in the same
// way as the fragment program.
func Quantize(x float32) int {
	return int(math.Floor(float64(x * 255.99)))
}

// shade is the CPU implementation of the fragment program in
// shaders/stencil_upload.frag.
func shade(u render.Uniforms, texel [4]float32) ([4]float32, bool) {
	v := u.Float(stencilValueUniform)
	return [4]float32{v, v, v, v}, Quantize(v) != Quantize(texel[3])
}
