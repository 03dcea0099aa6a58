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

package blitter

import (
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// sysFont stands in for the ROM system font.
var sysFont font.Face = basicfont.Face7x13

// FontHeight is the line height of the system font.
var FontHeight = basicfont.Face7x13.Height

// FontAscent is the ascent of the system font from the baseline.
var FontAscent = basicfont.Face7x13.Ascent

// DrawString renders a string with its top left corner at (x, y). Returns
// the x position after the last character.
func (blt *Blitter) DrawString(x, y int, s string, shade Shade) int {
	dot := fixed.P(x, y+FontAscent)
	for _, r := range s {
		dr, mask, maskp, advance, ok := sysFont.Glyph(dot, r)
		if !ok {
			continue
		}
		for gy := dr.Min.Y; gy < dr.Max.Y; gy++ {
			for gx := dr.Min.X; gx < dr.Max.X; gx++ {
				_, _, _, a := mask.At(maskp.X+gx-dr.Min.X, maskp.Y+gy-dr.Min.Y).RGBA()
				if a > 0 {
					blt.SetPixel(gx, gy, shade)
				}
			}
		}
		dot.X += advance
	}
	return dot.X.Ceil()
}

// StringWidth measures a string in pixels without drawing it.
func StringWidth(s string) int {
	return font.MeasureString(sysFont, s).Ceil()
}
