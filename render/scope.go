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

// Scope records the render target and viewport at the time of Push() and
// restores them when Pop() is called.
type Scope struct {
	backend  Backend
	previous *framebuffer.VirtualFramebuffer
	viewport Rect
	popped   bool
}

// Push starts a new Scope. The current argument is the render target that is
// current at the time of the call and can be nil.
func Push(backend Backend, current *framebuffer.VirtualFramebuffer) *Scope {
	return &Scope{
		backend:  backend,
		previous: current,
		viewport: backend.State().Viewport(),
	}
}

// Pop restores the render target and viewport. If there was no current
// render target at the time of Push() the default surface is bound.
//
// Only the first call to Pop() has any effect.
func (s *Scope) Pop() {
	if s.popped {
		return
	}
	s.popped = true

	if s.previous != nil {
		s.backend.RebindFramebuffer(s.previous)
	} else {
		s.backend.UnbindFramebuffer()
	}
	s.backend.State().SetViewport(s.viewport)
}
