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
	"strings"

	"github.com/jetsetilly/gestencil/curated"
	"github.com/jetsetilly/gestencil/hardware/memory/memorymap"
)

// InvalidTarget is returned by Add() when the VirtualFramebuffer cannot be
// registered.
const InvalidTarget = "framebuffer: invalid target: %s"

// Registry is the list of live render targets.
type Registry struct {
	targets []*VirtualFramebuffer
	current *VirtualFramebuffer

	// end of the highest framebuffer in memory (cache bits removed). used by
	// MayIntersect() as a quick rejection test
	rangeEnd uint32
}

// NewRegistry is the preferred method of initialisation for the Registry
// type.
func NewRegistry() *Registry {
	return &Registry{}
}

func (reg *Registry) String() string {
	s := strings.Builder{}
	for i, vfb := range reg.targets {
		if vfb == reg.current {
			s.WriteString("* ")
		} else {
			s.WriteString("  ")
		}
		s.WriteString(fmt.Sprintf("%d: %s\n", i, vfb))
	}
	return s.String()
}

// Add a target to the registry. Targets added later take precedence in
// Resolve() over earlier targets with the same masked address.
func (reg *Registry) Add(vfb *VirtualFramebuffer) error {
	if vfb == nil {
		return curated.Errorf(InvalidTarget, "nil")
	}
	if vfb.Format < 0 || vfb.Format >= NumFormats {
		return curated.Errorf(InvalidTarget, fmt.Sprintf("format %d", vfb.Format))
	}
	if vfb.Width <= 0 || vfb.Height <= 0 {
		return curated.Errorf(InvalidTarget, fmt.Sprintf("dimensions %dx%d", vfb.Width, vfb.Height))
	}
	if vfb.Stride < vfb.Width {
		return curated.Errorf(InvalidTarget, fmt.Sprintf("stride %d less than width %d", vfb.Stride, vfb.Width))
	}

	// render size defaults to the logical size
	if vfb.RenderWidth <= 0 || vfb.RenderHeight <= 0 {
		vfb.RenderWidth = vfb.Width
		vfb.RenderHeight = vfb.Height
	}

	reg.targets = append(reg.targets, vfb)
	reg.extendRange(vfb)

	return nil
}

// Remove a target from the registry. If the target is current then there will
// be no current target after the call.
func (reg *Registry) Remove(vfb *VirtualFramebuffer) {
	for i := range reg.targets {
		if reg.targets[i] == vfb {
			reg.targets = append(reg.targets[:i], reg.targets[i+1:]...)
			break
		}
	}

	if reg.current == vfb {
		reg.current = nil
	}

	reg.rangeEnd = 0
	for _, t := range reg.targets {
		reg.extendRange(t)
	}
}

func (reg *Registry) extendRange(vfb *VirtualFramebuffer) {
	end := (vfb.Address & memorymap.CacheMask) + uint32(vfb.Size())
	if end > reg.rangeEnd {
		reg.rangeEnd = end
	}
}

// Targets returns the list of registered targets in registration order.
func (reg *Registry) Targets() []*VirtualFramebuffer {
	return reg.targets
}

// Current returns the current render target. Returns nil if no target is
// current.
func (reg *Registry) Current() *VirtualFramebuffer {
	return reg.current
}

// SetCurrent changes the current render target. A nil value means that
// rendering goes to the default surface.
func (reg *Registry) SetCurrent(vfb *VirtualFramebuffer) {
	reg.current = vfb
}

// MayIntersect returns false if the address cannot be inside any registered
// framebuffer. A true result means that Resolve() should be called.
func (reg *Registry) MayIntersect(address uint32) bool {
	address &= memorymap.CacheMask
	return address >= memorymap.OriginVRAM && address < reg.rangeEnd
}

// Resolve returns the target whose base address is equal to the address
// after masking. If more than one target matches then the most recently
// added target is returned. Returns nil if there is no match.
func (reg *Registry) Resolve(address uint32) *VirtualFramebuffer {
	var match *VirtualFramebuffer
	for _, vfb := range reg.targets {
		if memorymap.MaskedEqual(vfb.Address, address) {
			match = vfb
		}
	}
	return match
}
