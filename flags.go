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

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jetsetilly/gestencil/framebuffer"
)

// formatFlag implements the flag.Value interface for framebuffer.Format.
type formatFlag framebuffer.Format

func (f *formatFlag) String() string {
	return framebuffer.Format(*f).String()
}

func (f *formatFlag) Set(s string) error {
	v, ok := framebuffer.ParseFormat(strings.TrimSpace(s))
	if !ok {
		return fmt.Errorf("unrecognised format (%s): must be one of 565, 5551, 4444, 8888", s)
	}
	*f = formatFlag(v)
	return nil
}

// addressFlag implements the flag.Value interface for an address in emulated
// memory. Values may be given in decimal, hex (0x prefix) or octal.
type addressFlag uint32

func (a *addressFlag) String() string {
	return fmt.Sprintf("%#010x", uint32(*a))
}

func (a *addressFlag) Set(s string) error {
	v, err := strconv.ParseUint(strings.TrimSpace(s), 0, 32)
	if err != nil {
		return fmt.Errorf("address: %w", err)
	}
	*a = addressFlag(v)
	return nil
}

// sizeFlag implements the flag.Value interface for a WxH dimension. The zero
// value means that no size has been specified.
type sizeFlag struct {
	width  int
	height int
}

func (sz *sizeFlag) String() string {
	if sz.width == 0 && sz.height == 0 {
		return ""
	}
	return fmt.Sprintf("%dx%d", sz.width, sz.height)
}

func (sz *sizeFlag) Set(s string) error {
	var w, h int
	_, err := fmt.Sscanf(strings.ToLower(strings.TrimSpace(s)), "%dx%d", &w, &h)
	if err != nil {
		return fmt.Errorf("size must be WIDTHxHEIGHT: %w", err)
	}
	if w <= 0 || h <= 0 {
		return fmt.Errorf("size must be positive (%s)", s)
	}
	sz.width = w
	sz.height = h
	return nil
}
