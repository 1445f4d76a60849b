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

import (
	"github.com/jetsetilly/gestencil/framebuffer"
)

// Uniforms gives a FragmentShader access to the current uniform values of
// its program.
type Uniforms interface {
	Float(name string) float32
}

// FragmentShader is the CPU equivalent of a fragment program. It receives the
// texel sampled at the fragment's texture coordinate (normalised RGBA) and
// returns the output color. A true discard value means the fragment is
// dropped before any stencil or color write.
type FragmentShader func(u Uniforms, texel [4]float32) (out [4]float32, discard bool)

// ProgramSource describes a shader program. Backends that can run GLSL use
// the Vertex and Fragment source. Backends that cannot use the Shade field.
type ProgramSource struct {
	Name     string
	Vertex   string
	Fragment string
	Shade    FragmentShader
}

// Program is a compiled and linked shader program.
type Program interface {
	// Bind makes the program the active program.
	Bind()

	// UniformLocation returns the location of the named uniform. Returns -1
	// if the program has no such uniform.
	UniformLocation(name string) int32

	// SetUniform1f and SetUniform1i set uniform values of the program. The
	// program must be bound.
	SetUniform1f(location int32, v float32)
	SetUniform1i(location int32, v int32)
}

// Backend is a native graphics backend.
type Backend interface {
	State() State

	// CompileProgram compiles and links a shader program. Returns an error if
	// compilation or linking fails.
	CompileProgram(src ProgramSource) (Program, error)

	// DirtyLastShader tells the backend that the active program has been
	// changed outside of its own shader management.
	DirtyLastShader()

	// MakePixelTexture converts width*height pixels of emulated memory into
	// a texture and makes it the active texture for DrawActiveTexture().
	// Stride is measured in pixels.
	MakePixelTexture(src []byte, format framebuffer.Format, stride, width, height int)

	// BindFramebuffer makes the framebuffer object the render destination.
	BindFramebuffer(fbo uint32)

	// UnbindFramebuffer returns rendering to the default surface.
	UnbindFramebuffer()

	// RebindFramebuffer restores a previously current render target and
	// whatever buffers are associated with it.
	RebindFramebuffer(vfb *framebuffer.VirtualFramebuffer)

	// ClearStencil sets every stencil value of the render destination.
	ClearStencil(value uint8)

	// DrawActiveTexture draws a quad textured with the active texture using
	// the program. The dst rectangle is measured in a coordinate space of
	// destW by destH pixels, which is mapped to the current viewport.
	DrawActiveTexture(dst Rect, destW, destH int, uv UV, flip bool, prog Program)
}
