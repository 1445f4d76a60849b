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

// Package logger is the central log for the project. Log entries are made
// with a tag and a detail string:
//
//	logger.Log(logger.Allow, "stencil", "upload attempted")
//	logger.Logf(logger.Allow, "stencil", "%d passes", 256)
//
// The first argument is a Permission. Only entries from callers whose
// permission allows logging are recorded. The Allow value always permits
// logging and should be used for conditions that must always be reported.
//
// Consecutive identical entries are collapsed into a single entry with a
// repeat count. The number of entries retained is bounded; the oldest entries
// are dropped first.
//
// Independent logs can be created with NewLogger(). This is mostly useful for
// testing.
package logger
