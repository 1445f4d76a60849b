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

package glrender

import (
	"github.com/go-gl/gl/v3.2-core/gl"
	"github.com/jetsetilly/gestencil/render"
)

var blendEquations = [...]uint32{
	render.BlendAdd:             gl.FUNC_ADD,
	render.BlendSubtract:        gl.FUNC_SUBTRACT,
	render.BlendReverseSubtract: gl.FUNC_REVERSE_SUBTRACT,
}

var blendFactors = [...]uint32{
	render.BlendZero:             gl.ZERO,
	render.BlendOne:              gl.ONE,
	render.BlendSrcAlpha:         gl.SRC_ALPHA,
	render.BlendOneMinusSrcAlpha: gl.ONE_MINUS_SRC_ALPHA,
	render.BlendDstAlpha:         gl.DST_ALPHA,
	render.BlendOneMinusDstAlpha: gl.ONE_MINUS_DST_ALPHA,
}

var stencilOps = [...]uint32{
	render.StencilKeep:    gl.KEEP,
	render.StencilZero:    gl.ZERO,
	render.StencilReplace: gl.REPLACE,
	render.StencilIncr:    gl.INCR,
	render.StencilDecr:    gl.DECR,
	render.StencilInvert:  gl.INVERT,
}

var compareFuncs = [...]uint32{
	render.CompareNever:        gl.NEVER,
	render.CompareLess:         gl.LESS,
	render.CompareEqual:        gl.EQUAL,
	render.CompareLessEqual:    gl.LEQUAL,
	render.CompareGreater:      gl.GREATER,
	render.CompareNotEqual:     gl.NOTEQUAL,
	render.CompareGreaterEqual: gl.GEQUAL,
	render.CompareAlways:       gl.ALWAYS,
}

func enable(cap uint32, on bool) {
	if on {
		gl.Enable(cap)
	} else {
		gl.Disable(cap)
	}
}

// state implements the render.State interface. Values are cached and GL is
// only called when a value changes.
type state struct {
	blend     bool
	blendEq   render.BlendEquation
	blendFunc [4]render.BlendFactor

	stencilTest bool
	stencilOp   [3]render.StencilOp
	stencilFunc render.CompareFunc
	stencilRef  uint8
	stencilMask uint8

	viewport render.Rect
}

// sync reads the current GL state into the cache.
func (st *state) sync() {
	var vp [4]int32
	gl.GetIntegerv(gl.VIEWPORT, &vp[0])
	st.viewport = render.Rect{X: int(vp[0]), Y: int(vp[1]), W: int(vp[2]), H: int(vp[3])}

	st.blend = gl.IsEnabled(gl.BLEND)
	st.stencilTest = gl.IsEnabled(gl.STENCIL_TEST)

	// the remaining values are forced on the next call to their setter
	st.blendEq = -1
	st.blendFunc = [4]render.BlendFactor{-1, -1, -1, -1}
	st.stencilOp = [3]render.StencilOp{-1, -1, -1}
	st.stencilFunc = -1
}

func (st *state) DisableState() {
	gl.Disable(gl.BLEND)
	gl.Disable(gl.STENCIL_TEST)
	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.SCISSOR_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.ColorMask(true, true, true, true)
	gl.StencilMask(0xff)
	st.blend = false
	st.stencilTest = false
}

func (st *state) SetBlend(on bool) {
	if st.blend != on {
		enable(gl.BLEND, on)
		st.blend = on
	}
}

func (st *state) SetBlendEquation(eq render.BlendEquation) {
	if st.blendEq != eq {
		gl.BlendEquation(blendEquations[eq])
		st.blendEq = eq
	}
}

func (st *state) SetBlendFuncSeparate(srcRGB, dstRGB, srcAlpha, dstAlpha render.BlendFactor) {
	f := [4]render.BlendFactor{srcRGB, dstRGB, srcAlpha, dstAlpha}
	if st.blendFunc != f {
		gl.BlendFuncSeparate(blendFactors[srcRGB], blendFactors[dstRGB], blendFactors[srcAlpha], blendFactors[dstAlpha])
		st.blendFunc = f
	}
}

func (st *state) SetStencilTest(on bool) {
	if st.stencilTest != on {
		enable(gl.STENCIL_TEST, on)
		st.stencilTest = on
	}
}

func (st *state) SetStencilOp(fail, depthFail, pass render.StencilOp) {
	op := [3]render.StencilOp{fail, depthFail, pass}
	if st.stencilOp != op {
		gl.StencilOp(stencilOps[fail], stencilOps[depthFail], stencilOps[pass])
		st.stencilOp = op
	}
}

func (st *state) SetStencilFunc(fn render.CompareFunc, ref uint8, mask uint8) {
	if st.stencilFunc != fn || st.stencilRef != ref || st.stencilMask != mask {
		gl.StencilFunc(compareFuncs[fn], int32(ref), uint32(mask))
		st.stencilFunc = fn
		st.stencilRef = ref
		st.stencilMask = mask
	}
}

func (st *state) Viewport() render.Rect {
	return st.viewport
}

func (st *state) SetViewport(vp render.Rect) {
	if st.viewport != vp {
		gl.Viewport(int32(vp.X), int32(vp.Y), int32(vp.W), int32(vp.H))
		st.viewport = vp
	}
}
