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

// Package modalflag handles command lines that are divided into modes. Each
// mode has its own set of flags and may itself have sub-modes. For example:
//
//	gestencil -log GL -format 4444 -width 480 -height 272 stencil.raw
//
// The top level flag (-log) is parsed first. The GL sub-mode is then found and
// the remaining arguments are parsed against the flags of that mode.
//
// A mode is not required on the command line. The first of the sub-modes
// given to AddSubModes() is used when the next argument is not a known mode.
package modalflag
