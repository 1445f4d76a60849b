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
	"github.com/jetsetilly/gestencil/render"
)

// state implements the render.State interface.
type state struct {
	b *Backend

	blend    bool
	blendEq  render.BlendEquation
	srcRGB   render.BlendFactor
	dstRGB   render.BlendFactor
	srcAlpha render.BlendFactor
	dstAlpha render.BlendFactor

	stencilTest bool
	stencilFail render.StencilOp
	depthFail   render.StencilOp
	depthPass   render.StencilOp
	stencilFunc render.CompareFunc
	stencilRef  uint8
	stencilMask uint8

	viewport render.Rect
}

func (st *state) DisableState() {
	st.b.log("DisableState()")
	st.blend = false
	st.stencilTest = false
}

func (st *state) SetBlend(enable bool) {
	st.b.log("SetBlend(%v)", enable)
	st.blend = enable
}

func (st *state) SetBlendEquation(eq render.BlendEquation) {
	st.b.log("SetBlendEquation(%d)", eq)
	st.blendEq = eq
}

func (st *state) SetBlendFuncSeparate(srcRGB, dstRGB, srcAlpha, dstAlpha render.BlendFactor) {
	st.b.log("SetBlendFuncSeparate(%d, %d, %d, %d)", srcRGB, dstRGB, srcAlpha, dstAlpha)
	st.srcRGB = srcRGB
	st.dstRGB = dstRGB
	st.srcAlpha = srcAlpha
	st.dstAlpha = dstAlpha
}

func (st *state) SetStencilTest(enable bool) {
	st.b.log("SetStencilTest(%v)", enable)
	st.stencilTest = enable
}

func (st *state) SetStencilOp(fail, depthFail, pass render.StencilOp) {
	st.b.log("SetStencilOp(%d, %d, %d)", fail, depthFail, pass)
	st.stencilFail = fail
	st.depthFail = depthFail
	st.depthPass = pass
}

func (st *state) SetStencilFunc(fn render.CompareFunc, ref uint8, mask uint8) {
	st.b.log("SetStencilFunc(%d, %#02x, %#02x)", fn, ref, mask)
	st.stencilFunc = fn
	st.stencilRef = ref
	st.stencilMask = mask
}

// Viewport does not change state and is not recorded in the journal.
func (st *state) Viewport() render.Rect {
	return st.viewport
}

func (st *state) SetViewport(vp render.Rect) {
	st.b.log("SetViewport(%s)", vp)
	st.viewport = vp
}

// compare performs the stencil comparison. as in OpenGL the reference value
// is on the left of the comparison.
func compare(fn render.CompareFunc, ref, stored uint8) bool {
	switch fn {
	case render.CompareNever:
		return false
	case render.CompareLess:
		return ref < stored
	case render.CompareEqual:
		return ref == stored
	case render.CompareLessEqual:
		return ref <= stored
	case render.CompareGreater:
		return ref > stored
	case render.CompareNotEqual:
		return ref != stored
	case render.CompareGreaterEqual:
		return ref >= stored
	case render.CompareAlways:
		return true
	}
	return true
}

// applyOp returns the new stencil value.
func applyOp(op render.StencilOp, ref, stored uint8) uint8 {
	switch op {
	case render.StencilKeep:
		return stored
	case render.StencilZero:
		return 0
	case render.StencilReplace:
		return ref
	case render.StencilIncr:
		if stored == 0xff {
			return stored
		}
		return stored + 1
	case render.StencilDecr:
		if stored == 0 {
			return stored
		}
		return stored - 1
	case render.StencilInvert:
		return ^stored
	}
	return stored
}

// blendFactor returns the multiplier for the factor. values are normalised.
func blendFactor(f render.BlendFactor, srcAlpha, dstAlpha float32) float32 {
	switch f {
	case render.BlendZero:
		return 0
	case render.BlendOne:
		return 1
	case render.BlendSrcAlpha:
		return srcAlpha
	case render.BlendOneMinusSrcAlpha:
		return 1 - srcAlpha
	case render.BlendDstAlpha:
		return dstAlpha
	case render.BlendOneMinusDstAlpha:
		return 1 - dstAlpha
	}
	return 1
}

func blendEquation(eq render.BlendEquation, src, dst float32) float32 {
	var v float32
	switch eq {
	case render.BlendAdd:
		v = src + dst
	case render.BlendSubtract:
		v = src - dst
	case render.BlendReverseSubtract:
		v = dst - src
	}
	return clampf(v, 0, 1)
}

func clampf(v, minVal, maxVal float32) float32 {
	if v < minVal {
		return minVal
	}
	if v > maxVal {
		return maxVal
	}
	return v
}
