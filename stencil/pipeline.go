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
	"github.com/jetsetilly/gestencil/assert"
	"github.com/jetsetilly/gestencil/curated"
	"github.com/jetsetilly/gestencil/render"
	"github.com/jetsetilly/gestencil/stencil/shaders"
)

// PipelineBuildError is returned when the stencil upload program cannot be
// compiled or linked.
const PipelineBuildError = "stencil: pipeline: %v"

// names of uniforms in the fragment program
const (
	stencilValueUniform = "u_stencilValue"
	samplerUniform      = "tex"
)

// pipeline is the compiled stencil upload program and the location of its
// per-pass uniform.
type pipeline struct {
	prog         render.Program
	stencilValue int32
}

// pipelineCache creates the stencil upload program on first demand and keeps
// it for the lifetime of the backend. The program is never destroyed by the
// cache.
//
// Must only be used from the goroutine that drives the backend.
type pipelineCache struct {
	backend     render.Backend
	pipeline    *pipeline
	confinement assert.ThreadConfinement
}

func newPipelineCache(backend render.Backend) *pipelineCache {
	return &pipelineCache{backend: backend}
}

// acquire returns the pipeline, compiling it if necessary. A failed build is
// not remembered and the next call to acquire() will try again.
func (pc *pipelineCache) acquire() (*pipeline, error) {
	pc.confinement.Check("stencil pipeline")

	if pc.pipeline != nil {
		return pc.pipeline, nil
	}

	prog, err := pc.backend.CompileProgram(render.ProgramSource{
		Name:     "stencil upload",
		Vertex:   string(shaders.StencilUploadVertexShader),
		Fragment: string(shaders.StencilUploadFragShader),
		Shade:    shade,
	})
	if err != nil {
		return nil, curated.Errorf(PipelineBuildError, err)
	}

	// the sampler never changes so it is set once on creation
	prog.Bind()
	prog.SetUniform1i(prog.UniformLocation(samplerUniform), 0)

	pc.pipeline = &pipeline{
		prog:         prog,
		stencilValue: prog.UniformLocation(stencilValueUniform),
	}

	return pc.pipeline, nil
}
