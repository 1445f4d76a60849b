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

package softrender

import (
	"math"

	"github.com/jetsetilly/gestencil/render"
)

// DrawActiveTexture implements the render.Backend interface.
//
// The quad is rasterised by sampling each pixel of the viewport at its
// centre. Texture lookup uses nearest filtering with clamped coordinates.
func (b *Backend) DrawActiveTexture(dst render.Rect, destW, destH int, uv render.UV, flip bool, prog render.Program) {
	b.log("DrawActiveTexture(%s, %dx%d, %v)", dst, destW, destH, flip)

	p, ok := prog.(*program)
	if !ok || p == nil || b.texture == nil || destW <= 0 || destH <= 0 {
		return
	}

	s := b.surfaces[b.bound]
	vp := b.state.viewport

	// quad edges in normalised device coordinates
	left := float64(dst.X)/float64(destW)*2 - 1
	right := float64(dst.X+dst.W)/float64(destW)*2 - 1
	top := 1 - float64(dst.Y)/float64(destH)*2
	bottom := 1 - float64(dst.Y+dst.H)/float64(destH)*2

	// quad edges in window coordinates. window y increases upwards
	wl := float64(vp.X) + (left+1)/2*float64(vp.W)
	wr := float64(vp.X) + (right+1)/2*float64(vp.W)
	wt := float64(vp.Y) + (top+1)/2*float64(vp.H)
	wb := float64(vp.Y) + (bottom+1)/2*float64(vp.H)
	if wl > wr {
		wl, wr = wr, wl
	}
	if wb > wt {
		wb, wt = wt, wb
	}

	v0, v1 := uv.V0, uv.V1
	if flip {
		v0, v1 = v1, v0
	}

	bounds := b.texture.Bounds()
	tw := bounds.Dx()
	th := bounds.Dy()

	for wy := 0; wy < s.Height; wy++ {
		cy := float64(wy) + 0.5
		if cy < wb || cy >= wt {
			continue
		}
		t := float32((wt - cy) / (wt - wb))
		tv := v0 + t*(v1-v0)
		ty := clampi(int(math.Floor(float64(tv)*float64(th))), 0, th-1)

		row := s.Height - 1 - wy

		for wx := 0; wx < s.Width; wx++ {
			cx := float64(wx) + 0.5
			if cx < wl || cx >= wr {
				continue
			}
			u := float32((cx - wl) / (wr - wl))
			tu := uv.U0 + u*(uv.U1-uv.U0)
			tx := clampi(int(math.Floor(float64(tu)*float64(tw))), 0, tw-1)

			c := b.texture.NRGBAAt(bounds.Min.X+tx, bounds.Min.Y+ty)
			texel := [4]float32{
				float32(c.R) / 255,
				float32(c.G) / 255,
				float32(c.B) / 255,
				float32(c.A) / 255,
			}

			out, discard := p.shade(p, texel)
			if discard {
				continue
			}

			idx := row*s.Width + wx
			if !b.stencilFragment(s, idx) {
				continue
			}
			b.writeColor(s, idx, out)
		}
	}
}

// stencilFragment performs the stencil test and stencil update for the pixel
// at idx. Returns false if the fragment fails the test.
func (b *Backend) stencilFragment(s *Surface, idx int) bool {
	st := &b.state
	if !st.stencilTest {
		return true
	}

	stored := s.Stencil[idx]
	if !compare(st.stencilFunc, st.stencilRef&st.stencilMask, stored&st.stencilMask) {
		s.Stencil[idx] = applyOp(st.stencilFail, st.stencilRef, stored)
		return false
	}

	// there is no depth buffer so the depth test always passes
	s.Stencil[idx] = applyOp(st.depthPass, st.stencilRef, stored)
	return true
}

func (b *Backend) writeColor(s *Surface, idx int, out [4]float32) {
	st := &b.state
	c := s.Color[idx*4 : idx*4+4]

	if !st.blend {
		for i := range out {
			c[i] = toByte(out[i])
		}
		return
	}

	var dst [4]float32
	for i := range c {
		dst[i] = float32(c[i]) / 255
	}
	srcA := clampf(out[3], 0, 1)
	dstA := dst[3]

	for i := 0; i < 3; i++ {
		sf := blendFactor(st.srcRGB, srcA, dstA)
		df := blendFactor(st.dstRGB, srcA, dstA)
		c[i] = toByte(blendEquation(st.blendEq, clampf(out[i], 0, 1)*sf, dst[i]*df))
	}
	sf := blendFactor(st.srcAlpha, srcA, dstA)
	df := blendFactor(st.dstAlpha, srcA, dstA)
	c[3] = toByte(blendEquation(st.blendEq, srcA*sf, dstA*df))
}

func toByte(v float32) uint8 {
	return uint8(math.Round(float64(clampf(v, 0, 1)) * 255))
}

func clampi(v, minVal, maxVal int) int {
	if v < minVal {
		return minVal
	}
	if v > maxVal {
		return maxVal
	}
	return v
}
