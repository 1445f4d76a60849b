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

package curated_test

import (
	"errors"
	"testing"

	"github.com/jetsetilly/gestencil/curated"
	"github.com/jetsetilly/gestencil/test"
)

const testPattern = "stencil: %s"
const wrapPattern = "upload: %v"

func TestDuplicateParts(t *testing.T) {
	e := curated.Errorf(testPattern, "no program")
	test.ExpectEquality(t, e.Error(), "stencil: no program")

	f := curated.Errorf("stencil: %v", e)
	test.ExpectEquality(t, f.Error(), "stencil: no program")

	g := curated.Errorf(wrapPattern, f)
	test.ExpectEquality(t, g.Error(), "upload: stencil: no program")
}

func TestIsAndHas(t *testing.T) {
	e := curated.Errorf(testPattern, "no program")
	test.ExpectSuccess(t, curated.IsAny(e))
	test.ExpectSuccess(t, curated.Is(e, testPattern))
	test.ExpectFailure(t, curated.Is(e, wrapPattern))

	f := curated.Errorf(wrapPattern, e)
	test.ExpectFailure(t, curated.Is(f, testPattern))
	test.ExpectSuccess(t, curated.Has(f, testPattern))
	test.ExpectSuccess(t, curated.Has(f, wrapPattern))

	plain := errors.New("plain error")
	test.ExpectFailure(t, curated.IsAny(plain))
	test.ExpectFailure(t, curated.Has(plain, testPattern))
	test.ExpectFailure(t, curated.IsAny(nil))
}

func TestUnwrap(t *testing.T) {
	plain := errors.New("plain error")
	e := curated.Errorf(wrapPattern, plain)
	test.ExpectSuccess(t, errors.Is(e, plain))
}
