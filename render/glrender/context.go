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
	"runtime"

	"github.com/jetsetilly/gestencil/logger"
	"github.com/jetsetilly/gestencil/version"
	"github.com/veandco/go-sdl2/sdl"
)

// Context is a hidden SDL window with a current OpenGL 3.2 core context. The
// default surface of the window has an 8bit stencil buffer.
type Context struct {
	window    *sdl.Window
	glContext sdl.GLContext
	width     int
	height    int
}

// NewContext is the preferred method of initialisation for the Context type.
// The goroutine is locked to the OS thread and remains locked.
func NewContext(width, height int) (*Context, error) {
	runtime.LockOSThread()

	err := sdl.Init(sdl.INIT_VIDEO)
	if err != nil {
		return nil, fmt.Errorf("sdl: %w", err)
	}

	attributes := []struct {
		attr  sdl.GLattr
		value int
	}{
		{sdl.GL_CONTEXT_MAJOR_VERSION, 3},
		{sdl.GL_CONTEXT_MINOR_VERSION, 2},
		{sdl.GL_CONTEXT_FLAGS, sdl.GL_CONTEXT_FORWARD_COMPATIBLE_FLAG},
		{sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_CORE},
		{sdl.GL_STENCIL_SIZE, 8},
	}
	for _, a := range attributes {
		err = sdl.GLSetAttribute(a.attr, a.value)
		if err != nil {
			sdl.Quit()
			return nil, fmt.Errorf("sdl: %w", err)
		}
	}

	var sdlVersion sdl.Version
	sdl.VERSION(&sdlVersion)
	logger.Logf(logger.Allow, "sdl", "version %d.%d.%d", sdlVersion.Major, sdlVersion.Minor, sdlVersion.Patch)

	ctx := &Context{
		width:  width,
		height: height,
	}

	ctx.window, err = sdl.CreateWindow(version.ApplicationName,
		sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		int32(width), int32(height),
		sdl.WINDOW_OPENGL|sdl.WINDOW_HIDDEN)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("sdl: %w", err)
	}

	ctx.glContext, err = ctx.window.GLCreateContext()
	if err != nil {
		_ = ctx.Destroy()
		return nil, fmt.Errorf("sdl: %w", err)
	}
	err = ctx.window.GLMakeCurrent(ctx.glContext)
	if err != nil {
		_ = ctx.Destroy()
		return nil, fmt.Errorf("sdl: %w", err)
	}

	major, _ := sdl.GLGetAttribute(sdl.GL_CONTEXT_MAJOR_VERSION)
	minor, _ := sdl.GLGetAttribute(sdl.GL_CONTEXT_MINOR_VERSION)
	stencil, _ := sdl.GLGetAttribute(sdl.GL_STENCIL_SIZE)
	logger.Logf(logger.Allow, "sdl", "using GL version %d.%d core (stencil %d bits)", major, minor, stencil)

	return ctx, nil
}

// Size returns the dimensions of the default surface.
func (ctx *Context) Size() (int, int) {
	return ctx.width, ctx.height
}

// Destroy the window and the GL context.
func (ctx *Context) Destroy() error {
	if ctx.glContext != nil {
		sdl.GLDeleteContext(ctx.glContext)
		ctx.glContext = nil
	}
	if ctx.window != nil {
		err := ctx.window.Destroy()
		if err != nil {
			return err
		}
		ctx.window = nil
	}
	sdl.Quit()
	return nil
}
