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

//go:build assertions

package assert

import "fmt"

// Check panics if the current goroutine is not the goroutine that first
// called Check().
func (tc *ThreadConfinement) Check(name string) {
	id := GetGoRoutineID()
	if tc.owner == 0 {
		tc.owner = id
		return
	}
	if tc.owner != id {
		panic(fmt.Sprintf("%s: used from goroutine %d but owned by goroutine %d", name, id, tc.owner))
	}
}
