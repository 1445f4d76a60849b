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

package assert

import (
	"bytes"
	"runtime"
	"strconv"
)

// GetGoRoutineID returns the ID of the current goroutine. The value is (a)
// different between goroutines and (b) consistent for a given goroutine. It
// should only ever be used for debugging or testing purposes.
func GetGoRoutineID() uint64 {
	b := make([]byte, 64)
	b = b[:runtime.Stack(b, false)]
	b = bytes.TrimPrefix(b, []byte("goroutine "))
	b = b[:bytes.IndexByte(b, ' ')]
	n, _ := strconv.ParseUint(string(b), 10, 64)
	return n
}

// ThreadConfinement records the goroutine that first called Check().
//
// The zero value is ready to use.
type ThreadConfinement struct {
	owner uint64
}

// Owner returns the ID of the goroutine that owns the value. Returns zero if
// Check() has never been called or if the assertions build tag is missing.
func (tc *ThreadConfinement) Owner() uint64 {
	return tc.owner
}
