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

package render

import "fmt"

// BlendEquation selects how source and destination are combined.
type BlendEquation int

// List of valid BlendEquation values.
const (
	BlendAdd BlendEquation = iota
	BlendSubtract
	BlendReverseSubtract
)

// BlendFactor is the multiplier applied to a source or destination value.
type BlendFactor int

// List of valid BlendFactor values.
const (
	BlendZero BlendFactor = iota
	BlendOne
	BlendSrcAlpha
	BlendOneMinusSrcAlpha
	BlendDstAlpha
	BlendOneMinusDstAlpha
)

// StencilOp is the action taken on the stored stencil value after a stencil
// test.
type StencilOp int

// List of valid StencilOp values.
const (
	StencilKeep StencilOp = iota
	StencilZero
	StencilReplace
	StencilIncr
	StencilDecr
	StencilInvert
)

// CompareFunc is a comparison used by the stencil test.
type CompareFunc int

// List of valid CompareFunc values.
const (
	CompareNever CompareFunc = iota
	CompareLess
	CompareEqual
	CompareLessEqual
	CompareGreater
	CompareNotEqual
	CompareGreaterEqual
	CompareAlways
)

// Rect is a rectangle in pixels. Origin is the bottom left corner, as it is
// for an OpenGL viewport.
type Rect struct {
	X, Y int
	W, H int
}

func (r Rect) String() string {
	return fmt.Sprintf("%d,%d %dx%d", r.X, r.Y, r.W, r.H)
}

// UV is a rectangle in texture coordinate space.
type UV struct {
	U0, V0 float32
	U1, V1 float32
}

// FullUV covers the entire texture.
var FullUV = UV{U0: 0, V0: 0, U1: 1, V1: 1}

// State is the render state facade. Setters are applied immediately to the
// backend, or cached and applied when they change, depending on the
// implementation.
type State interface {
	// DisableState turns off all state that is not explicitly set by the
	// caller afterwards: blending, depth test, stencil test, scissor test
	// and face culling. Color and stencil write masks are fully enabled.
	DisableState()

	SetBlend(enable bool)
	SetBlendEquation(eq BlendEquation)
	SetBlendFuncSeparate(srcRGB, dstRGB, srcAlpha, dstAlpha BlendFactor)

	SetStencilTest(enable bool)
	SetStencilOp(fail, depthFail, pass StencilOp)
	SetStencilFunc(fn CompareFunc, ref uint8, mask uint8)

	Viewport() Rect
	SetViewport(vp Rect)
}
