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

// Package paths prepares paths to gestencil resources, such as the saved
// preferences file.
//
// The ResourcePath() function prepends the base resource directory to the
// supplied path elements. For development builds the base is a directory in
// the current working directory:
//
//	.gestencil
//
// For builds with the "release" build tag the base is rooted in the user's
// config directory. On a modern Linux system:
//
//	/home/user/.config/gestencil
//
// The final element of the path is never created. Any directories leading to
// it are created as required.
package paths
