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

package framebuffer

import (
	"encoding/binary"
	"image"
)

// Format is the pixel format of a framebuffer in emulated memory.
type Format int

// List of valid Format values. The order matches the hardware encoding of
// the format field.
const (
	Format565 Format = iota
	Format5551
	Format4444
	Format8888

	// NumFormats is the number of formats. Tables indexed by Format should be
	// sized with this value.
	NumFormats
)

func (f Format) String() string {
	switch f {
	case Format565:
		return "565"
	case Format5551:
		return "5551"
	case Format4444:
		return "4444"
	case Format8888:
		return "8888"
	}
	return "unknown"
}

// ParseFormat returns the Format for the string as returned by the String()
// function.
func ParseFormat(s string) (Format, bool) {
	for f := Format(0); f < NumFormats; f++ {
		if f.String() == s {
			return f, true
		}
	}
	return NumFormats, false
}

// BytesPerPixel returns the number of bytes used to store a single pixel.
func (f Format) BytesPerPixel() int {
	if f == Format8888 {
		return 4
	}
	return 2
}

// AlphaBits returns the number of bits in the alpha field of the format. The
// 565 format has no alpha field.
func (f Format) AlphaBits() int {
	switch f {
	case Format5551:
		return 1
	case Format4444:
		return 4
	case Format8888:
		return 8
	}
	return 0
}

// Decode converts width*height pixels of raw memory in the format into an
// 8-bit per channel image. Stride is measured in pixels. Pixels that lie
// beyond the end of src are left as transparent black.
func (f Format) Decode(src []byte, stride, width, height int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	bpp := f.BytesPerPixel()

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			s := (y*stride + x) * bpp
			if s+bpp > len(src) {
				continue
			}

			d := img.PixOffset(x, y)
			px := img.Pix[d : d+4 : d+4]

			switch f {
			case Format565:
				v := binary.LittleEndian.Uint16(src[s:])
				px[0] = Convert5To8(uint8(v & 0x1f))
				px[1] = Convert6To8(uint8((v >> 5) & 0x3f))
				px[2] = Convert5To8(uint8((v >> 11) & 0x1f))
				px[3] = 0xff
			case Format5551:
				v := binary.LittleEndian.Uint16(src[s:])
				px[0] = Convert5To8(uint8(v & 0x1f))
				px[1] = Convert5To8(uint8((v >> 5) & 0x1f))
				px[2] = Convert5To8(uint8((v >> 10) & 0x1f))
				if v&0x8000 == 0x8000 {
					px[3] = 0xff
				} else {
					px[3] = 0x00
				}
			case Format4444:
				v := binary.LittleEndian.Uint16(src[s:])
				px[0] = Convert4To8(uint8(v & 0x0f))
				px[1] = Convert4To8(uint8((v >> 4) & 0x0f))
				px[2] = Convert4To8(uint8((v >> 8) & 0x0f))
				px[3] = Convert4To8(uint8((v >> 12) & 0x0f))
			case Format8888:
				copy(px, src[s:s+4])
			}
		}
	}

	return img
}
