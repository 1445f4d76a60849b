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

// Package framebuffer tracks the render targets (virtual framebuffers) that
// the emulated graphics engine draws into.
//
// A VirtualFramebuffer is identified by its base address in emulated memory.
// It has a pixel Format, a logical size, a render size (which is larger than
// the logical size when the output is upscaled), a stride and the handle of
// the native framebuffer object that backs it. A handle of zero means the
// target renders to the default surface.
//
// The Registry holds every live VirtualFramebuffer and remembers which one is
// current. Resolve() maps an address to a target:
//
//	reg := framebuffer.NewRegistry()
//	reg.Add(&framebuffer.VirtualFramebuffer{Address: 0x04000000, ...})
//	if reg.MayIntersect(addr) {
//		vfb := reg.Resolve(addr)
//	}
//
// MayIntersect() is a cheap range test that should be used before Resolve()
// in the common case where an address is nowhere near any framebuffer.
package framebuffer
