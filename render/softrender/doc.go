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

// Package softrender is a CPU implementation of render.Backend. It keeps a
// color plane and an 8-bit stencil plane for every framebuffer and applies
// blending, the stencil test and stencil operations in the same way as an
// OpenGL implementation.
//
// Shader programs are not compiled. Instead the FragmentShader of the
// render.ProgramSource is run for every fragment and the uniforms of the
// program are found by scanning the uniform declarations in the GLSL
// fragment source.
//
// Every call that changes state is recorded in a journal. This is useful for
// testing that a sequence of operations did (or did not) touch the backend.
package softrender
