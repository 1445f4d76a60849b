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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface and are created with the
// Errorf() function, which is used in the same way as fmt.Errorf().
//
// The pattern string given to Errorf() identifies the error. Patterns that
// callers are expected to test for should be exported as a const string from
// the package that creates the error. For example, the memory package
// exports:
//
//	const UnmappedAddress = "memory: unmapped address (%#010x)"
//
// and a caller can test for it with the Is() function:
//
//	_, err := mem.Pointer(addr, size)
//	if curated.Is(err, memory.UnmappedAddress) {
//		...
//	}
//
// The Has() function is similar but checks if a pattern occurs somewhere in
// the error chain.
//
//	err := curated.Errorf("stencil: %v", memErr)
//	curated.Has(err, memory.UnmappedAddress) // true
//	curated.Is(err, memory.UnmappedAddress)  // false
//
// The IsAny() function answers whether the error was created by Errorf() at
// all. We think of these errors as 'expected' errors and of all other errors
// as 'unexpected'.
//
// The Error() implementation normalises the chain so that it does not contain
// duplicate adjacent parts. Parts are separated by the sub-string ": ", as
// suggested on p239 of "The Go Programming Language" (Donovan, Kernighan).
// This means a function does not need to worry about whether its caller will
// also prefix the message with the same context:
//
//	e := curated.Errorf("stencil: %v", curated.Errorf("stencil: no program"))
//	e.Error() // "stencil: no program"
package curated
