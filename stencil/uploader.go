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

package stencil

import (
	"github.com/jetsetilly/gestencil/framebuffer"
	"github.com/jetsetilly/gestencil/logger"
	"github.com/jetsetilly/gestencil/render"
)

// Targets is the collection of render targets that an upload can be
// directed to. Satisfied by framebuffer.Registry.
type Targets interface {
	// MayIntersect is a quick test of whether Resolve() could return a
	// target for the address
	MayIntersect(address uint32) bool

	// Resolve returns the target for the address or nil
	Resolve(address uint32) *framebuffer.VirtualFramebuffer

	// Current returns the current render target or nil
	Current() *framebuffer.VirtualFramebuffer
}

// Memory is the emulated memory that contains the stencil data. Satisfied by
// memory.Memory.
type Memory interface {
	Pointer(address uint32, size int) ([]byte, error)
}

// Result of an Upload().
type Result int

// List of valid Result values.
const (
	// the stencil buffer was reconstructed. also returned when the pipeline
	// could not be built but the StrictPipeline preference is false
	Attempted Result = iota

	// the address does not correspond to a render target
	NoTarget

	// the format of the render target has no alpha channel
	UnsupportedFormat

	// the render target does not lie in valid emulated memory
	NoMemory

	// the stencil upload program could not be built
	PipelineUnavailable
)

func (r Result) String() string {
	switch r {
	case Attempted:
		return "attempted"
	case NoTarget:
		return "no target"
	case UnsupportedFormat:
		return "unsupported format"
	case NoMemory:
		return "no memory"
	case PipelineUnavailable:
		return "pipeline unavailable"
	}
	return "unknown result"
}

// Uploader reconstructs the stencil buffer of render targets.
type Uploader struct {
	backend   render.Backend
	targets   Targets
	mem       Memory
	prefs     *Preferences
	pipelines *pipelineCache
}

// NewUploader is the preferred method of initialisation for the Uploader type.
// If prefs is nil then a default set of preferences, not stored on disk, is
// created.
func NewUploader(backend render.Backend, targets Targets, mem Memory, prefs *Preferences) (*Uploader, error) {
	if prefs == nil {
		var err error
		prefs, err = NewPreferences("")
		if err != nil {
			return nil, err
		}
	}

	return &Uploader{
		backend:   backend,
		targets:   targets,
		mem:       mem,
		prefs:     prefs,
		pipelines: newPipelineCache(backend),
	}, nil
}

// Preferences returns the preferences in use by the Uploader.
func (u *Uploader) Preferences() *Preferences {
	return u.prefs
}

// AllowLogging implements the logger.Permission interface.
func (u *Uploader) AllowLogging() bool {
	return u.prefs.Logging.Get().(bool)
}

// NotifyUpload should be called when the emulation writes data that might be
// stencil data to emulated memory. Returns true if the stencil buffer of a
// render target was reconstructed.
func (u *Uploader) NotifyUpload(address uint32, size int) bool {
	r, _ := u.Upload(address, size)
	return r == Attempted
}

// Upload is the same as NotifyUpload() but returns the detailed result. The
// error is non-nil only for the NoMemory and PipelineUnavailable results, or
// for the Attempted result when the pipeline could not be built.
//
// The size of the upload is not used to restrict the area of the stencil
// buffer that is reconstructed. The entire render target is always rebuilt.
//
// Rendering state is only changed for the Attempted result. The bound
// framebuffer and viewport are restored before the function returns.
func (u *Uploader) Upload(address uint32, size int) (Result, error) {
	if !u.targets.MayIntersect(address) {
		return NoTarget, nil
	}

	vfb := u.targets.Resolve(address)
	if vfb == nil {
		return NoTarget, nil
	}

	plan := planFor(vfb.Format)
	if plan.passes == 0 {
		return UnsupportedFormat, nil
	}

	pl, buildErr := u.pipelines.acquire()
	if buildErr != nil {
		logger.Logf(logger.Allow, "stencil", "%v", buildErr)
		if u.prefs.StrictPipeline.Get().(bool) {
			return PipelineUnavailable, buildErr
		}
	}

	src, err := u.mem.Pointer(address, vfb.Size())
	if err != nil {
		return NoMemory, err
	}

	// a failed pipeline means that the draws in the pass loop will do
	// nothing. the rest of the upload still happens
	var prog render.Program
	var stencilValue int32 = -1
	if pl != nil {
		prog = pl.prog
		stencilValue = pl.stencilValue
	}

	scope := render.Push(u.backend, u.targets.Current())
	defer scope.Pop()

	u.backend.DirtyLastShader()
	u.backend.MakePixelTexture(src, vfb.Format, vfb.Stride, vfb.Width, vfb.Height)

	st := u.backend.State()
	st.DisableState()
	st.SetBlend(true)
	st.SetBlendEquation(render.BlendAdd)
	st.SetBlendFuncSeparate(render.BlendZero, render.BlendOne, render.BlendOne, render.BlendZero)
	st.SetStencilTest(true)
	st.SetStencilOp(render.StencilReplace, render.StencilReplace, render.StencilReplace)

	if vfb.FBO != 0 {
		u.backend.BindFramebuffer(vfb.FBO)
	}
	st.SetViewport(render.Rect{W: vfb.RenderWidth, H: vfb.RenderHeight})

	u.backend.ClearStencil(uint8(u.prefs.ClearValue.Get().(int)))

	scale := 1.0 / float32(plan.passes-1)
	dst := render.Rect{W: vfb.Width, H: vfb.Height}

	for i := 0; i < plan.passes; i++ {
		if prog != nil {
			prog.Bind()
			prog.SetUniform1f(stencilValue, float32(i)*scale)
		}
		st.SetStencilFunc(render.CompareAlways, plan.reference(i), 0xff)
		u.backend.DrawActiveTexture(dst, vfb.Width, vfb.Height, render.FullUV, false, prog)
	}

	logger.Logf(u, "stencil", "%d bytes at %#010x uploaded to %s in %d passes", size, address, vfb, plan.passes)

	return Attempted, buildErr
}
