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
	"strings"

	"github.com/go-gl/gl/v3.2-core/gl"
	"github.com/jetsetilly/gestencil/curated"
	"github.com/jetsetilly/gestencil/render"
)

// Sentinal errors returned by CompileProgram().
const (
	CompileError = "glrender: cannot compile %s shader for %s: %s"
	LinkError    = "glrender: cannot link %s: %s"
)

// program implements the render.Program interface.
type program struct {
	b      *Backend
	name   string
	handle uint32

	// vertex attributes
	position int32
	texcoord int32
}

// CompileProgram implements the render.Backend interface. The vertex shader
// must declare the a_position and a_texcoord0 attributes.
func (b *Backend) CompileProgram(src render.ProgramSource) (render.Program, error) {
	vertHandle, err := compileShader(gl.VERTEX_SHADER, src.Vertex)
	if err != nil {
		return nil, curated.Errorf(CompileError, "vertex", src.Name, err)
	}
	defer gl.DeleteShader(vertHandle)

	fragHandle, err := compileShader(gl.FRAGMENT_SHADER, src.Fragment)
	if err != nil {
		return nil, curated.Errorf(CompileError, "fragment", src.Name, err)
	}
	defer gl.DeleteShader(fragHandle)

	p := &program{
		b:      b,
		name:   src.Name,
		handle: gl.CreateProgram(),
	}

	gl.AttachShader(p.handle, vertHandle)
	gl.AttachShader(p.handle, fragHandle)
	gl.LinkProgram(p.handle)

	var status int32
	gl.GetProgramiv(p.handle, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(p.handle, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(p.handle, logLength, nil, gl.Str(log))
		gl.DeleteProgram(p.handle)
		return nil, curated.Errorf(LinkError, src.Name, strings.TrimRight(log, "\x00"))
	}

	p.position = gl.GetAttribLocation(p.handle, gl.Str("a_position\x00"))
	p.texcoord = gl.GetAttribLocation(p.handle, gl.Str("a_texcoord0\x00"))

	b.programs = append(b.programs, p)

	return p, nil
}

// compileShader returns the compile log as an error if compilation fails.
func compileShader(shaderType uint32, source string) (uint32, error) {
	handle := gl.CreateShader(shaderType)

	csource, free := gl.Strs(source + "\x00")
	gl.ShaderSource(handle, 1, csource, nil)
	free()

	gl.CompileShader(handle)

	var isCompiled int32
	gl.GetShaderiv(handle, gl.COMPILE_STATUS, &isCompiled)
	if isCompiled == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(handle, gl.INFO_LOG_LENGTH, &logLength)

		// the length includes the NULL character
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(handle, logLength, nil, gl.Str(log))
		gl.DeleteShader(handle)
		return 0, curated.Errorf("%s", strings.TrimRight(log, "\x00"))
	}

	return handle, nil
}

func (p *program) destroy() {
	if p.handle != 0 {
		gl.DeleteProgram(p.handle)
		p.handle = 0
	}
}

// Bind implements the render.Program interface.
func (p *program) Bind() {
	if p.b.lastProgram != p.handle {
		gl.UseProgram(p.handle)
		p.b.lastProgram = p.handle
	}
}

// UniformLocation implements the render.Program interface.
func (p *program) UniformLocation(name string) int32 {
	return gl.GetUniformLocation(p.handle, gl.Str(name+"\x00"))
}

// SetUniform1f implements the render.Program interface.
func (p *program) SetUniform1f(location int32, v float32) {
	gl.Uniform1f(location, v)
}

// SetUniform1i implements the render.Program interface.
func (p *program) SetUniform1i(location int32, v int32) {
	gl.Uniform1i(location, v)
}
