// This file is part of SegaOS.
//
// SegaOS is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// SegaOS is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with SegaOS.  If not, see <https://www.gnu.org/licenses/>.

package frontend

// PixelDepth is the number of bytes per output pixel.
const PixelDepth = 4

// the four desktop shades as they appear on the wire to the display: R, G,
// B, A byte order, which is the ABGR8888 texture layout on a little-endian
// machine.
var palette = [4][PixelDepth]byte{
	{0x00, 0x00, 0x00, 0xff}, // black
	{0x55, 0x55, 0x55, 0xff}, // dark gray
	{0xaa, 0xaa, 0xaa, 0xff}, // light gray
	{0xff, 0xff, 0xff, 0xff}, // white
}

// convertFrame expands a one-byte-per-pixel shade surface into the ABGR
// buffer dst, which must be len(src)*PixelDepth bytes. Shades outside the
// palette render black.
func convertFrame(dst, src []byte) {
	for i, s := range src {
		c := palette[0]
		if int(s) < len(palette) {
			c = palette[s]
		}
		copy(dst[i*PixelDepth:], c[:])
	}
}
