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

package prefs_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gestencil/prefs"
	"github.com/jetsetilly/gestencil/test"
)

func getTmpPrefFile(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "gestencil_prefs_test")
}

func cmpTmpFile(t *testing.T, fn string, expected string) {
	t.Helper()

	data, err := os.ReadFile(fn)
	if err != nil {
		t.Errorf("error reading tmp file: %v", err)
		return
	}

	expected = fmt.Sprintf("%s\n%s", prefs.WarningBoilerPlate, expected)
	test.ExpectEquality(t, string(data), expected)
}

func TestBool(t *testing.T) {
	fn := getTmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Bool
	var w prefs.Bool
	var x prefs.Bool
	test.ExpectSuccess(t, dsk.Add("test", &v))
	test.ExpectSuccess(t, dsk.Add("testB", &w))
	test.ExpectSuccess(t, dsk.Add("testC", &x))

	test.ExpectSuccess(t, v.Set(true))
	test.ExpectSuccess(t, w.Set("foo"))
	test.ExpectSuccess(t, x.Set("true"))

	test.DemandSuccess(t, dsk.Save())
	cmpTmpFile(t, fn, "test :: true\ntestB :: false\ntestC :: true\n")
}

func TestInt(t *testing.T) {
	fn := getTmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Int
	var w prefs.Int
	test.ExpectSuccess(t, dsk.Add("number", &v))
	test.ExpectSuccess(t, dsk.Add("numberB", &w))

	test.ExpectSuccess(t, v.Set(10))
	test.ExpectSuccess(t, w.Set("99"))

	test.DemandSuccess(t, dsk.Save())
	cmpTmpFile(t, fn, "number :: 10\nnumberB :: 99\n")

	test.ExpectFailure(t, v.Set("---"))
	test.ExpectFailure(t, v.Set(1.0))
}

func TestIntHookPre(t *testing.T) {
	var v prefs.Int
	v.SetHookPre(func(value prefs.Value) error {
		if value.(int) > 255 {
			return fmt.Errorf("out of range")
		}
		return nil
	})
	test.ExpectSuccess(t, v.Set(255))
	test.ExpectFailure(t, v.Set(256))
	test.ExpectEquality(t, v.Get().(int), 255)
}

func TestLoad(t *testing.T) {
	fn := getTmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Bool
	test.ExpectSuccess(t, dsk.Add("stencil.strictPipeline", &v))

	// file doesn't exist yet. this will create the file
	test.DemandSuccess(t, dsk.Load(true))
	cmpTmpFile(t, fn, "stencil.strictPipeline :: false\n")

	test.ExpectSuccess(t, v.Set(true))
	test.DemandSuccess(t, dsk.Save())
	test.ExpectSuccess(t, v.Set(false))

	test.DemandSuccess(t, dsk.Load(false))
	test.ExpectEquality(t, v.Get().(bool), true)
}

// write a bool and then an int from a different prefs.Disk instance. the
// second write must not clobber the first.
func TestBoolAndInt(t *testing.T) {
	fn := getTmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Bool
	test.ExpectSuccess(t, dsk.Add("test", &v))
	test.ExpectSuccess(t, v.Set(true))
	test.DemandSuccess(t, dsk.Save())

	dsk, err = prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var n prefs.Int
	test.ExpectSuccess(t, dsk.Add("foo", &n))
	test.ExpectSuccess(t, n.Set(255))
	test.DemandSuccess(t, dsk.Save())

	cmpTmpFile(t, fn, "foo :: 255\ntest :: true\n")
}

func TestDuplicateKey(t *testing.T) {
	dsk, err := prefs.NewDisk(getTmpPrefFile(t))
	test.DemandSuccess(t, err)

	var v, w prefs.Bool
	test.ExpectSuccess(t, dsk.Add("test", &v))
	test.ExpectFailure(t, dsk.Add("test", &w))
}

// a command line value survives a Load() from an existing file and is not
// written back by Save().
func TestCommandLineOverridesLoad(t *testing.T) {
	fn := getTmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Bool
	test.ExpectSuccess(t, v.Set(true))
	test.ExpectSuccess(t, dsk.Add("stencil.logging", &v))
	test.DemandSuccess(t, dsk.Save())
	cmpTmpFile(t, fn, "stencil.logging :: true\n")

	prefs.PushCommandLineStack("stencil.logging::false")
	defer prefs.PopCommandLineStack()

	dsk, err = prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var w prefs.Bool
	test.ExpectSuccess(t, dsk.Add("stencil.logging", &w))
	test.ExpectEquality(t, w.Get().(bool), false)

	test.DemandSuccess(t, dsk.Load(true))
	test.ExpectEquality(t, w.Get().(bool), false)

	test.DemandSuccess(t, dsk.Save())
	cmpTmpFile(t, fn, "stencil.logging :: true\n")
}

// on first use the file is created with the value the preference had before
// the command line value was applied.
func TestCommandLineFirstUse(t *testing.T) {
	fn := getTmpPrefFile(t)

	prefs.PushCommandLineStack("stencil.clearValue::66")
	defer prefs.PopCommandLineStack()

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Int
	test.ExpectSuccess(t, dsk.Add("stencil.clearValue", &v))
	test.ExpectEquality(t, v.Get().(int), 66)

	test.DemandSuccess(t, dsk.Load(true))
	test.ExpectEquality(t, v.Get().(int), 66)
	cmpTmpFile(t, fn, "stencil.clearValue :: 0\n")
}
