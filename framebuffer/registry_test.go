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

package framebuffer_test

import (
	"testing"

	"github.com/jetsetilly/gestencil/curated"
	"github.com/jetsetilly/gestencil/framebuffer"
	"github.com/jetsetilly/gestencil/test"
)

func newTarget(address uint32, format framebuffer.Format) *framebuffer.VirtualFramebuffer {
	return &framebuffer.VirtualFramebuffer{
		Address: address,
		Format:  format,
		Width:   480,
		Height:  272,
		Stride:  512,
	}
}

func TestResolve(t *testing.T) {
	reg := framebuffer.NewRegistry()

	a := newTarget(0x04000000, framebuffer.Format8888)
	b := newTarget(0x04088000, framebuffer.Format5551)
	test.DemandSuccess(t, reg.Add(a))
	test.DemandSuccess(t, reg.Add(b))

	test.ExpectEquality(t, reg.Resolve(0x04000000), a)
	test.ExpectEquality(t, reg.Resolve(0x44088000), b)
	test.ExpectEquality(t, reg.Resolve(0x04000004), (*framebuffer.VirtualFramebuffer)(nil))
}

func TestResolveLastMatchWins(t *testing.T) {
	reg := framebuffer.NewRegistry()

	a := newTarget(0x04000000, framebuffer.Format8888)
	b := newTarget(0x44000000, framebuffer.Format4444)
	c := newTarget(0x04044000, framebuffer.Format565)
	test.DemandSuccess(t, reg.Add(a))
	test.DemandSuccess(t, reg.Add(b))
	test.DemandSuccess(t, reg.Add(c))

	test.ExpectEquality(t, reg.Resolve(0x04000000), b)

	reg.Remove(b)
	test.ExpectEquality(t, reg.Resolve(0x04000000), a)
}

func TestResolveProperty(t *testing.T) {
	reg := framebuffer.NewRegistry()
	addresses := []uint32{0x04000000, 0x04044000, 0x84000000, 0x04088000, 0x44044000}
	for i, a := range addresses {
		test.DemandSuccess(t, reg.Add(newTarget(a, framebuffer.Format(i%int(framebuffer.NumFormats)))))
	}

	for _, addr := range []uint32{0x04000000, 0x44000000, 0x04044000, 0x04088000, 0x040cc000, 0x00000000} {
		var expected *framebuffer.VirtualFramebuffer
		for _, vfb := range reg.Targets() {
			if vfb.Address&0x03ffffff == addr&0x03ffffff {
				expected = vfb
			}
		}
		test.ExpectEquality(t, reg.Resolve(addr), expected, addr)
	}
}

func TestMayIntersect(t *testing.T) {
	reg := framebuffer.NewRegistry()
	test.ExpectFailure(t, reg.MayIntersect(0x04000000))

	a := newTarget(0x04000000, framebuffer.Format8888)
	test.DemandSuccess(t, reg.Add(a))

	test.ExpectSuccess(t, reg.MayIntersect(0x04000000))
	test.ExpectSuccess(t, reg.MayIntersect(0x44000000))
	test.ExpectSuccess(t, reg.MayIntersect(0x04000000+uint32(a.Size())-1))
	test.ExpectFailure(t, reg.MayIntersect(0x04000000+uint32(a.Size())))
	test.ExpectFailure(t, reg.MayIntersect(0x03ffffff))
	test.ExpectFailure(t, reg.MayIntersect(0x08800000))

	reg.Remove(a)
	test.ExpectFailure(t, reg.MayIntersect(0x04000000))
}

func TestCurrent(t *testing.T) {
	reg := framebuffer.NewRegistry()
	a := newTarget(0x04000000, framebuffer.Format8888)
	test.DemandSuccess(t, reg.Add(a))

	test.ExpectEquality(t, reg.Current(), (*framebuffer.VirtualFramebuffer)(nil))
	reg.SetCurrent(a)
	test.ExpectEquality(t, reg.Current(), a)
	test.ExpectEquality(t, reg.String()[:2], "* ")

	reg.Remove(a)
	test.ExpectEquality(t, reg.Current(), (*framebuffer.VirtualFramebuffer)(nil))
}

func TestAddInvalid(t *testing.T) {
	reg := framebuffer.NewRegistry()

	err := reg.Add(nil)
	test.ExpectSuccess(t, curated.Is(err, framebuffer.InvalidTarget))

	err = reg.Add(&framebuffer.VirtualFramebuffer{Address: 0x04000000, Format: framebuffer.NumFormats, Width: 1, Height: 1, Stride: 1})
	test.ExpectSuccess(t, curated.Is(err, framebuffer.InvalidTarget))

	err = reg.Add(&framebuffer.VirtualFramebuffer{Address: 0x04000000, Width: 4, Height: 1, Stride: 2})
	test.ExpectSuccess(t, curated.Is(err, framebuffer.InvalidTarget))

	// render size defaults to logical size
	vfb := &framebuffer.VirtualFramebuffer{Address: 0x04000000, Width: 4, Height: 1, Stride: 4}
	test.DemandSuccess(t, reg.Add(vfb))
	test.ExpectEquality(t, vfb.RenderWidth, 4)
	test.ExpectEquality(t, vfb.RenderHeight, 1)
}

func TestString(t *testing.T) {
	reg := framebuffer.NewRegistry()
	a := newTarget(0x04000000, framebuffer.Format8888)
	test.DemandSuccess(t, reg.Add(a))

	// address is always shown with eight hex digits
	test.ExpectEquality(t, a.String(), "0x04000000 8888 480x272 (render 480x272, stride 512, fbo 0)")

	reg.SetCurrent(a)
	test.ExpectEquality(t, reg.String(), "* 0: 0x04000000 8888 480x272 (render 480x272, stride 512, fbo 0)\n")
}
