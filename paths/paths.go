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

package paths

import (
	"os"
	"path/filepath"
)

// ResourcePath returns the resource path (representing the file or
// directory to be used) prepended with the base resource directory.
// Directories leading to the resource are created if necessary.
//
// Empty elements are ignored.
func ResourcePath(resource ...string) (string, error) {
	base, err := getBasePath()
	if err != nil {
		return "", err
	}

	p := filepath.Join(append([]string{base}, resource...)...)

	dir := filepath.Dir(p)
	if _, err := os.Stat(dir); err == nil {
		return p, nil
	}

	err = os.MkdirAll(dir, 0700)
	if err != nil {
		return "", err
	}

	return p, nil
}
