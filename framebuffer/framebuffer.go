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

package framebuffer

import (
	"fmt"
)

// VirtualFramebuffer is a render target of the emulated graphics engine.
type VirtualFramebuffer struct {
	// base address in emulated memory
	Address uint32

	Format Format

	// logical dimensions as seen by the emulation
	Width  int
	Height int

	// dimensions of the native surface. larger than the logical dimensions
	// when rendering is upscaled
	RenderWidth  int
	RenderHeight int

	// stride in pixels
	Stride int

	// handle of the native framebuffer object. zero if the target renders to
	// the default surface
	FBO uint32
}

func (vfb *VirtualFramebuffer) String() string {
	return fmt.Sprintf("%#010x %s %dx%d (render %dx%d, stride %d, fbo %d)",
		vfb.Address, vfb.Format, vfb.Width, vfb.Height,
		vfb.RenderWidth, vfb.RenderHeight, vfb.Stride, vfb.FBO)
}

// Size returns the number of bytes of emulated memory covered by the
// framebuffer.
func (vfb *VirtualFramebuffer) Size() int {
	return vfb.Stride * vfb.Height * vfb.Format.BytesPerPixel()
}
