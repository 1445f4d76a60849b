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
	"fmt"
	"image"

	"github.com/jetsetilly/gestencil/framebuffer"
	"github.com/jetsetilly/gestencil/render"
)

// Surface is the storage for a single framebuffer. Rows are stored top row
// first.
type Surface struct {
	Width  int
	Height int

	// four bytes per pixel (RGBA)
	Color []uint8

	// one byte per pixel
	Stencil []uint8
}

func newSurface(width, height int) *Surface {
	return &Surface{
		Width:   width,
		Height:  height,
		Color:   make([]uint8, width*height*4),
		Stencil: make([]uint8, width*height),
	}
}

// Backend implements the render.Backend interface.
type Backend struct {
	state state

	// surface zero is the default surface
	surfaces map[uint32]*Surface
	nextFBO  uint32
	bound    uint32

	texture *image.NRGBA
	active  *program

	failCompilation bool

	journal []string
}

// NewBackend is the preferred method of initialisation for the Backend type.
// The width and height are the dimensions of the default surface.
func NewBackend(width, height int) *Backend {
	b := &Backend{
		surfaces: make(map[uint32]*Surface),
		nextFBO:  1,
	}
	b.state.b = b
	b.state.viewport = render.Rect{W: width, H: height}
	b.surfaces[0] = newSurface(width, height)
	return b
}

func (b *Backend) log(format string, args ...interface{}) {
	b.journal = append(b.journal, fmt.Sprintf(format, args...))
}

// Journal returns a copy of the calls made to the backend since the last
// call to ResetJournal().
func (b *Backend) Journal() []string {
	j := make([]string, len(b.journal))
	copy(j, b.journal)
	return j
}

// ResetJournal empties the journal.
func (b *Backend) ResetJournal() {
	b.journal = b.journal[:0]
}

// FailCompilation causes all future calls to CompileProgram() to fail.
func (b *Backend) FailCompilation(fail bool) {
	b.failCompilation = fail
}

// CreateFramebuffer creates a new framebuffer with a color plane and a
// stencil plane. Returns the handle of the framebuffer.
func (b *Backend) CreateFramebuffer(width, height int) uint32 {
	fbo := b.nextFBO
	b.nextFBO++
	b.surfaces[fbo] = newSurface(width, height)
	return fbo
}

// DestroyFramebuffer releases the framebuffer. The default surface cannot be
// destroyed.
func (b *Backend) DestroyFramebuffer(fbo uint32) {
	if fbo == 0 {
		return
	}
	delete(b.surfaces, fbo)
	if b.bound == fbo {
		b.bound = 0
	}
}

// Surface returns the storage for the framebuffer. Returns nil if the handle
// is not valid.
func (b *Backend) Surface(fbo uint32) *Surface {
	return b.surfaces[fbo]
}

// Stencil returns a copy of the stencil plane of the framebuffer.
func (b *Backend) Stencil(fbo uint32) []uint8 {
	s, ok := b.surfaces[fbo]
	if !ok {
		return nil
	}
	c := make([]uint8, len(s.Stencil))
	copy(c, s.Stencil)
	return c
}

// Bound returns the handle of the framebuffer that is the current render
// destination.
func (b *Backend) Bound() uint32 {
	return b.bound
}

// State implements the render.Backend interface.
func (b *Backend) State() render.State {
	return &b.state
}

// DirtyLastShader implements the render.Backend interface.
func (b *Backend) DirtyLastShader() {
	b.log("DirtyLastShader()")
}

// MakePixelTexture implements the render.Backend interface.
func (b *Backend) MakePixelTexture(src []byte, format framebuffer.Format, stride, width, height int) {
	b.log("MakePixelTexture(%s, %d, %dx%d)", format, stride, width, height)
	b.texture = format.Decode(src, stride, width, height)
}

// BindFramebuffer implements the render.Backend interface.
func (b *Backend) BindFramebuffer(fbo uint32) {
	b.log("BindFramebuffer(%d)", fbo)
	if _, ok := b.surfaces[fbo]; ok {
		b.bound = fbo
	}
}

// UnbindFramebuffer implements the render.Backend interface.
func (b *Backend) UnbindFramebuffer() {
	b.log("UnbindFramebuffer()")
	b.bound = 0
}

// RebindFramebuffer implements the render.Backend interface.
func (b *Backend) RebindFramebuffer(vfb *framebuffer.VirtualFramebuffer) {
	b.log("RebindFramebuffer(%d)", vfb.FBO)
	if _, ok := b.surfaces[vfb.FBO]; ok {
		b.bound = vfb.FBO
	} else {
		b.bound = 0
	}
}

// ClearStencil implements the render.Backend interface.
func (b *Backend) ClearStencil(value uint8) {
	b.log("ClearStencil(%d)", value)
	s := b.surfaces[b.bound]
	for i := range s.Stencil {
		s.Stencil[i] = value
	}
}
