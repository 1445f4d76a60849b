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

// Package prefs facilitates the storage of preferential values. Values are
// held in typed preference values (Bool, Int, String and Generic) and are
// registered with a Disk instance under a key:
//
//	var strict prefs.Bool
//	dsk, _ := prefs.NewDisk(path)
//	dsk.Add("stencil.strictPipeline", &strict)
//
// The Disk type saves and loads values as "key :: value" lines. Entries found
// in the file that have not been added to the Disk instance are preserved when
// saving, so that more than one Disk instance can share a file.
//
// Values can also be specified on the command line as a group of key/value
// pairs, separated by semicolons:
//
//	prefs.PushCommandLineStack("stencil.strictPipeline::false; stencil.logging::false")
//
// The values at the top of the command line stack are applied when a key is
// added to a Disk and they override whatever value was loaded from disk.
package prefs
