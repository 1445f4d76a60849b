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

package softrender

import (
	"regexp"

	"github.com/jetsetilly/gestencil/curated"
	"github.com/jetsetilly/gestencil/render"
)

// CompileError is returned by CompileProgram().
const CompileError = "softrender: cannot compile program %s: %s"

// matches uniform declarations in GLSL source
var uniformDecl = regexp.MustCompile(`uniform\s+\w+\s+(\w+)\s*;`)

// program implements the render.Program and render.Uniforms interfaces.
type program struct {
	b     *Backend
	name  string
	shade render.FragmentShader

	// uniform name to location
	locations map[string]int32

	// uniform values indexed by location
	values []float32
}

// CompileProgram implements the render.Backend interface.
func (b *Backend) CompileProgram(src render.ProgramSource) (render.Program, error) {
	b.log("CompileProgram(%s)", src.Name)

	if b.failCompilation {
		return nil, curated.Errorf(CompileError, src.Name, "compilation disabled")
	}
	if src.Shade == nil {
		return nil, curated.Errorf(CompileError, src.Name, "no fragment shader")
	}

	p := &program{
		b:         b,
		name:      src.Name,
		shade:     src.Shade,
		locations: make(map[string]int32),
	}

	for _, m := range uniformDecl.FindAllStringSubmatch(src.Fragment, -1) {
		if _, ok := p.locations[m[1]]; !ok {
			p.locations[m[1]] = int32(len(p.values))
			p.values = append(p.values, 0)
		}
	}

	return p, nil
}

// Bind implements the render.Program interface.
func (p *program) Bind() {
	p.b.log("Bind(%s)", p.name)
	p.b.active = p
}

// UniformLocation implements the render.Program interface.
func (p *program) UniformLocation(name string) int32 {
	if l, ok := p.locations[name]; ok {
		return l
	}
	return -1
}

// SetUniform1f implements the render.Program interface. As with OpenGL, the
// value is applied to the bound program.
func (p *program) SetUniform1f(location int32, v float32) {
	p.b.log("SetUniform1f(%d, %f)", location, v)
	a := p.b.active
	if a == nil || location < 0 || int(location) >= len(a.values) {
		return
	}
	a.values[location] = v
}

// SetUniform1i implements the render.Program interface.
func (p *program) SetUniform1i(location int32, v int32) {
	p.SetUniform1f(location, float32(v))
}

// Float implements the render.Uniforms interface.
func (p *program) Float(name string) float32 {
	if l, ok := p.locations[name]; ok {
		return p.values[l]
	}
	return 0
}
