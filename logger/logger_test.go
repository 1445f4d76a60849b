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

package logger_test

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/jetsetilly/gestencil/logger"
	"github.com/jetsetilly/gestencil/test"
)

func TestLogger(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	log.Write(w)
	test.ExpectEquality(t, w.String(), "")

	log.Log(logger.Allow, "test", "this is a test")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "test: this is a test\n")

	w.Reset()

	log.Log(logger.Allow, "test2", "this is another test")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "test: this is a test\ntest2: this is another test\n")

	// asking for too many entries in a Tail() should be okay
	w.Reset()
	log.Tail(w, 100)
	test.ExpectEquality(t, w.String(), "test: this is a test\ntest2: this is another test\n")

	// asking for fewer entries is okay too
	w.Reset()
	log.Tail(w, 1)
	test.ExpectEquality(t, w.String(), "test2: this is another test\n")

	// and no entries
	w.Reset()
	log.Tail(w, 0)
	test.ExpectEquality(t, w.String(), "")
}

func TestRepeatedEntries(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	log.Logf(logger.Allow, "stencil", "%d passes", 16)
	log.Logf(logger.Allow, "stencil", "%d passes", 16)
	log.Logf(logger.Allow, "stencil", "%d passes", 16)
	log.Write(w)
	test.ExpectEquality(t, w.String(), "stencil: 16 passes (repeat x3)\n")
	test.ExpectEquality(t, len(log.Entries()), 1)
}

func TestMaximumEntries(t *testing.T) {
	log := logger.NewLogger(2)
	log.Log(logger.Allow, "a", "1")
	log.Log(logger.Allow, "b", "2")
	log.Log(logger.Allow, "c", "3")

	e := log.Entries()
	test.DemandEquality(t, len(e), 2)
	test.ExpectEquality(t, e[0].Tag, "b")
	test.ExpectEquality(t, e[1].Tag, "c")
}

func TestEcho(t *testing.T) {
	log := logger.NewLogger(10)
	w := &test.CompareWriter{}
	log.SetEcho(w)
	log.Log(logger.Allow, "echo", "on")
	test.ExpectSuccess(t, w.Compare("echo: on\n"))

	log.SetEcho(nil)
	log.Log(logger.Allow, "echo", "off")
	test.ExpectSuccess(t, w.Compare("echo: on\n"))
}

type prohibitLogging struct {
	allow int
}

func (p prohibitLogging) AllowLogging() bool {
	return p.allow > 50
}

func TestPermissions(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	var p prohibitLogging

	for i := 0; i < 100; i++ {
		p.allow = rand.Intn(100)
		log.Clear()
		w.Reset()
		log.Log(p, "tag", "detail")
		log.Write(w)
		if p.AllowLogging() {
			test.ExpectEquality(t, w.String(), "tag: detail\n")
		} else {
			test.ExpectEquality(t, w.String(), "")
		}
	}
}
