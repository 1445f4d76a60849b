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
	"fmt"

	"github.com/go-gl/gl/v3.2-core/gl"
	"github.com/jetsetilly/gestencil/curated"
	"github.com/jetsetilly/gestencil/framebuffer"
	"github.com/jetsetilly/gestencil/logger"
	"github.com/jetsetilly/gestencil/render"
)

// IncompleteFramebuffer is returned by CreateFramebuffer() if the framebuffer
// cannot be used as a render target.
const IncompleteFramebuffer = "glrender: incomplete framebuffer (status %#x)"

// Backend implements the render.Backend interface.
type Backend struct {
	state state

	// dimensions of the default surface
	width  int
	height int

	// the program most recently passed to gl.UseProgram()
	lastProgram uint32
	programs    []*program

	// texture created by MakePixelTexture()
	texture uint32

	vao uint32
	vbo uint32

	// framebuffers created by CreateFramebuffer() and the currently bound
	// framebuffer
	framebuffers map[uint32]*surface
	bound        uint32
}

// NewBackend is the preferred method of initialisation for the Backend type.
// A GL context must be current. The width and height are the dimensions of
// the default surface.
func NewBackend(width, height int) (*Backend, error) {
	err := gl.Init()
	if err != nil {
		return nil, fmt.Errorf("glrender: %w", err)
	}

	logger.Logf(logger.Allow, "glrender", "%s", gl.GoStr(gl.GetString(gl.RENDERER)))

	b := &Backend{
		width:        width,
		height:       height,
		framebuffers: make(map[uint32]*surface),
	}

	gl.GenVertexArrays(1, &b.vao)
	gl.GenBuffers(1, &b.vbo)
	gl.GenTextures(1, &b.texture)

	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	gl.Viewport(0, 0, int32(width), int32(height))
	b.state.sync()

	return b, nil
}

// Destroy releases all GL resources created by the backend.
func (b *Backend) Destroy() {
	for _, p := range b.programs {
		p.destroy()
	}
	b.programs = b.programs[:0]

	for fbo := range b.framebuffers {
		b.DestroyFramebuffer(fbo)
	}

	gl.DeleteTextures(1, &b.texture)
	gl.DeleteBuffers(1, &b.vbo)
	gl.DeleteVertexArrays(1, &b.vao)
}

// State implements the render.Backend interface.
func (b *Backend) State() render.State {
	return &b.state
}

// DirtyLastShader implements the render.Backend interface.
func (b *Backend) DirtyLastShader() {
	b.lastProgram = 0
}

// MakePixelTexture implements the render.Backend interface.
func (b *Backend) MakePixelTexture(src []byte, format framebuffer.Format, stride, width, height int) {
	img := format.Decode(src, stride, width, height)

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, b.texture)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.PixelStorei(gl.UNPACK_ROW_LENGTH, 0)
	gl.TexImage2D(gl.TEXTURE_2D, 0,
		gl.RGBA, int32(width), int32(height), 0,
		gl.RGBA, gl.UNSIGNED_BYTE,
		gl.Ptr(img.Pix))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
}

// BindFramebuffer implements the render.Backend interface.
func (b *Backend) BindFramebuffer(fbo uint32) {
	gl.BindFramebuffer(gl.FRAMEBUFFER, fbo)
	b.bound = fbo
}

// UnbindFramebuffer implements the render.Backend interface.
func (b *Backend) UnbindFramebuffer() {
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	b.bound = 0
}

// RebindFramebuffer implements the render.Backend interface.
func (b *Backend) RebindFramebuffer(vfb *framebuffer.VirtualFramebuffer) {
	b.BindFramebuffer(vfb.FBO)
}

// ClearStencil implements the render.Backend interface.
func (b *Backend) ClearStencil(value uint8) {
	gl.StencilMask(0xff)
	gl.ClearStencil(int32(value))
	gl.Clear(gl.STENCIL_BUFFER_BIT)
}

// DrawActiveTexture implements the render.Backend interface.
func (b *Backend) DrawActiveTexture(dst render.Rect, destW, destH int, uv render.UV, flip bool, prog render.Program) {
	p, ok := prog.(*program)
	if !ok || p == nil || p.handle == 0 || destW <= 0 || destH <= 0 {
		return
	}

	left := float32(dst.X)/float32(destW)*2 - 1
	right := float32(dst.X+dst.W)/float32(destW)*2 - 1
	top := 1 - float32(dst.Y)/float32(destH)*2
	bottom := 1 - float32(dst.Y+dst.H)/float32(destH)*2

	v0, v1 := uv.V0, uv.V1
	if flip {
		v0, v1 = v1, v0
	}

	// triangle strip. position followed by texture coordinate
	verts := [16]float32{
		left, top, uv.U0, v0,
		left, bottom, uv.U0, v1,
		right, top, uv.U1, v0,
		right, bottom, uv.U1, v1,
	}

	p.Bind()

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, b.texture)

	gl.BindVertexArray(b.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(verts)*4, gl.Ptr(&verts[0]), gl.STREAM_DRAW)

	if p.position >= 0 {
		gl.EnableVertexAttribArray(uint32(p.position))
		gl.VertexAttribPointerWithOffset(uint32(p.position), 2, gl.FLOAT, false, 16, 0)
	}
	if p.texcoord >= 0 {
		gl.EnableVertexAttribArray(uint32(p.texcoord))
		gl.VertexAttribPointerWithOffset(uint32(p.texcoord), 2, gl.FLOAT, false, 16, 8)
	}

	gl.DrawArrays(gl.TRIANGLE_STRIP, 0, 4)
}

// surface is a framebuffer object with a color texture and a combined depth
// and stencil renderbuffer.
type surface struct {
	fbo     uint32
	texture uint32
	rbo     uint32
	width   int32
	height  int32
}

// CreateFramebuffer creates a framebuffer suitable for use as the FBO of a
// VirtualFramebuffer. The bound framebuffer is not changed.
func (b *Backend) CreateFramebuffer(width, height int) (uint32, error) {
	s := &surface{
		width:  int32(width),
		height: int32(height),
	}

	gl.GenFramebuffers(1, &s.fbo)
	gl.BindFramebuffer(gl.FRAMEBUFFER, s.fbo)
	defer gl.BindFramebuffer(gl.FRAMEBUFFER, b.bound)

	gl.GenTextures(1, &s.texture)
	gl.BindTexture(gl.TEXTURE_2D, s.texture)
	gl.TexImage2D(gl.TEXTURE_2D, 0,
		gl.RGBA, s.width, s.height, 0,
		gl.RGBA, gl.UNSIGNED_BYTE,
		gl.Ptr(make([]uint8, width*height*4)))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, s.texture, 0)

	gl.GenRenderbuffers(1, &s.rbo)
	gl.BindRenderbuffer(gl.RENDERBUFFER, s.rbo)
	gl.RenderbufferStorage(gl.RENDERBUFFER, gl.DEPTH24_STENCIL8, s.width, s.height)
	gl.FramebufferRenderbuffer(gl.FRAMEBUFFER, gl.DEPTH_STENCIL_ATTACHMENT, gl.RENDERBUFFER, s.rbo)

	status := gl.CheckFramebufferStatus(gl.FRAMEBUFFER)
	if status != gl.FRAMEBUFFER_COMPLETE {
		s.destroy()
		return 0, curated.Errorf(IncompleteFramebuffer, status)
	}

	b.framebuffers[s.fbo] = s
	return s.fbo, nil
}

func (s *surface) destroy() {
	gl.DeleteRenderbuffers(1, &s.rbo)
	gl.DeleteTextures(1, &s.texture)
	gl.DeleteFramebuffers(1, &s.fbo)
}

// DestroyFramebuffer releases a framebuffer created by CreateFramebuffer().
func (b *Backend) DestroyFramebuffer(fbo uint32) {
	s, ok := b.framebuffers[fbo]
	if !ok {
		return
	}
	if b.bound == fbo {
		b.UnbindFramebuffer()
	}
	s.destroy()
	delete(b.framebuffers, fbo)
}

// ReadStencil returns the stencil values of the framebuffer. Rows are
// returned top row first. The bound framebuffer is not changed.
func (b *Backend) ReadStencil(fbo uint32) []uint8 {
	width, height := int32(b.width), int32(b.height)
	if s, ok := b.framebuffers[fbo]; ok {
		width, height = s.width, s.height
	}

	data := make([]uint8, width*height)

	gl.BindFramebuffer(gl.FRAMEBUFFER, fbo)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, width, height, gl.STENCIL_INDEX, gl.UNSIGNED_BYTE, gl.Ptr(data))
	gl.BindFramebuffer(gl.FRAMEBUFFER, b.bound)

	// GL returns the bottom row first
	out := make([]uint8, len(data))
	for y := int32(0); y < height; y++ {
		copy(out[y*width:(y+1)*width], data[(height-1-y)*width:(height-y)*width])
	}

	return out
}
