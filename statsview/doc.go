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

// Package statsview offers a local HTTP server with runtime statistics. The
// server is only available when the statsview build tag is present. The
// underlying functionality is provided by "github.com/go-echarts/statsview".
//
// After launch, graphs are viewable at:
//
//	localhost:12600/debug/statsview
//
// And the standard Go pprof statistics at:
//
//	localhost:12600/debug/pprof/
//
// Reconstruction of an 8888 stencil buffer draws the full target 256 times.
// The graphs are useful for watching allocation and GC behaviour when the
// upload is repeated over many frames.
package statsview
