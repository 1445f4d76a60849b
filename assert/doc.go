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

// Package assert contains functions that help with runtime assertions of
// programming constraints.
//
// The ThreadConfinement type is used to check that a value is only ever used
// from the goroutine that first used it. The check is only performed when the
// program is built with the "assertions" build tag. Without the tag the
// Check() function does nothing.
package assert
