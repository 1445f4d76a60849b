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

// Package render defines the interface between the emulation and a native
// graphics backend. The interface is deliberately small: a render state facade
// (blend, stencil and viewport), shader programs with scalar uniforms, pixel
// texture upload from emulated memory, framebuffer binding and a textured quad
// primitive.
//
// Two backends are provided. The glrender package drives OpenGL 3.2 core and
// the softrender package is a CPU reference implementation.
//
// All backends are confined to a single goroutine. Callers must not share a
// Backend between goroutines.
//
// The Scope type is used to guarantee that the render target and viewport
// are restored after a sequence of operations:
//
//	scope := render.Push(backend, registry.Current())
//	defer scope.Pop()
package render
