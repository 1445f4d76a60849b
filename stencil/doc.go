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

// Package stencil reconstructs the native stencil buffer of a render target
// from the alpha channel of emulated memory.
//
// The emulated graphics engine keeps stencil values in the alpha bits of the
// color buffer. When the emulation writes to memory that backs a render
// target, the Uploader rebuilds the stencil buffer of the corresponding
// native surface so that later rendering which depends on the stencil test
// behaves correctly.
//
// The native graphics API cannot write an arbitrary stencil value from a
// fragment. Reconstruction is therefore performed with one draw per stencil
// value that the pixel format can represent. In each pass the fragment
// program discards every pixel whose alpha does not quantise to the value of
// the pass, and the stencil operation replaces the stencil value of every
// pixel that survives with the reference value of the pass.
//
// Number of passes per format:
//
//	565   rejected (no alpha)
//	5551  2
//	4444  16
//	8888  256
//
// An Uploader and the pipeline it creates are confined to the goroutine that
// drives the graphics backend. Confinement is checked when the assertions
// build tag is present.
package stencil
