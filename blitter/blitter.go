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
	"github.com/Project12x/segaos/geom"
)

// Surface dimensions. The surface is one byte per pixel.
const (
	ScreenWidth  = 320
	ScreenHeight = 224
)

// Shade is a 4-level grayscale palette index.
type Shade = uint8

// List of Shade values.
const (
	Black     Shade = 0
	DarkGray  Shade = 1
	LightGray Shade = 2
	White     Shade = 3
)

// Pattern is an 8x8 1-bit fill mask. Set bits draw in the foreground shade.
type Pattern [8]uint8

// Built-in fill patterns.
var (
	SolidBlack = Pattern{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}
	SolidWhite = Pattern{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}
	Gray50     = Pattern{0xaa, 0x55, 0xaa, 0x55, 0xaa, 0x55, 0xaa, 0x55}
	Gray25     = Pattern{0x88, 0x00, 0x22, 0x00, 0x88, 0x00, 0x22, 0x00}
	HatchHoriz = Pattern{0x00, 0x00, 0x00, 0xff, 0x00, 0x00, 0x00, 0xff}
	HatchVert  = Pattern{0x11, 0x11, 0x11, 0x11, 0x11, 0x11, 0x11, 0x11}
	HatchDiag  = Pattern{0x80, 0x40, 0x20, 0x10, 0x08, 0x04, 0x02, 0x01}
)

var screenRect = geom.Rect{Right: ScreenWidth, Bottom: ScreenHeight}

// Blitter draws into a pixel surface. Drawing with no surface attached is a
// no-op.
type Blitter struct {
	pix  []byte
	clip geom.Rect
}

// NewBlitter is the preferred method of initialisation for the Blitter type.
func NewBlitter() *Blitter {
	return &Blitter{clip: screenRect}
}

// SetSurface points the blitter at a new pixel surface. The surface must be
// ScreenWidth*ScreenHeight bytes.
func (blt *Blitter) SetSurface(pix []byte) {
	blt.pix = pix
}

// SetClip narrows drawing to the given rectangle. The rectangle is clipped
// to the screen.
func (blt *Blitter) SetClip(r geom.Rect) {
	blt.clip = r.ClipTo(screenRect)
}

// ResetClip restores the clip to the full screen.
func (blt *Blitter) ResetClip() {
	blt.clip = screenRect
}

// Clip returns the current clip rectangle.
func (blt *Blitter) Clip() geom.Rect {
	return blt.clip
}

// Clear fills the entire surface, ignoring the clip rectangle.
func (blt *Blitter) Clear(shade Shade) {
	if blt.pix == nil {
		return
	}
	for i := range blt.pix {
		blt.pix[i] = shade
	}
}

// SetPixel plots a single pixel, subject to clipping.
func (blt *Blitter) SetPixel(x, y int, shade Shade) {
	if blt.pix == nil || !blt.clip.Contains(geom.Point{X: x, Y: y}) {
		return
	}
	blt.pix[y*ScreenWidth+x] = shade
}

// Pixel reads a pixel. Out of bounds reads return Black.
func (blt *Blitter) Pixel(x, y int) Shade {
	if blt.pix == nil || x < 0 || x >= ScreenWidth || y < 0 || y >= ScreenHeight {
		return Black
	}
	return blt.pix[y*ScreenWidth+x]
}

// HLine draws a horizontal line of width w starting at (x, y).
func (blt *Blitter) HLine(x, y, w int, shade Shade) {
	if blt.pix == nil || w <= 0 {
		return
	}
	if y < blt.clip.Top || y >= blt.clip.Bottom {
		return
	}
	x0 := max(x, blt.clip.Left)
	x1 := min(x+w, blt.clip.Right)
	if x0 >= x1 {
		return
	}
	row := blt.pix[y*ScreenWidth+x0 : y*ScreenWidth+x1]
	for i := range row {
		row[i] = shade
	}
}

// VLine draws a vertical line of height h starting at (x, y).
func (blt *Blitter) VLine(x, y, h int, shade Shade) {
	if blt.pix == nil || h <= 0 {
		return
	}
	if x < blt.clip.Left || x >= blt.clip.Right {
		return
	}
	y0 := max(y, blt.clip.Top)
	y1 := min(y+h, blt.clip.Bottom)
	for ; y0 < y1; y0++ {
		blt.pix[y0*ScreenWidth+x] = shade
	}
}

// Line draws a line between two points. Axis-aligned lines take the HLine
// and VLine fast paths; everything else is Bresenham.
func (blt *Blitter) Line(x0, y0, x1, y1 int, shade Shade) {
	if y0 == y1 {
		blt.HLine(min(x0, x1), y0, abs(x1-x0)+1, shade)
		return
	}
	if x0 == x1 {
		blt.VLine(x0, min(y0, y1), abs(y1-y0)+1, shade)
		return
	}

	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	for {
		blt.SetPixel(x0, y0, shade)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := err * 2
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// FrameRect draws the 1px outline of a rectangle.
func (blt *Blitter) FrameRect(r geom.Rect, shade Shade) {
	w := r.Width()
	h := r.Height()
	blt.HLine(r.Left, r.Top, w, shade)
	blt.HLine(r.Left, r.Bottom-1, w, shade)
	blt.VLine(r.Left, r.Top, h, shade)
	blt.VLine(r.Right-1, r.Top, h, shade)
}

// FillRect fills a rectangle with a solid shade.
func (blt *Blitter) FillRect(r geom.Rect, shade Shade) {
	for y := r.Top; y < r.Bottom; y++ {
		blt.HLine(r.Left, y, r.Width(), shade)
	}
}

// FillPattern fills a rectangle with a pattern in black on white.
func (blt *Blitter) FillPattern(r geom.Rect, pat Pattern) {
	blt.FillPattern2(r, pat, Black, White)
}

// FillPattern2 fills a rectangle with a pattern in the given foreground and
// background shades. The pattern is anchored to the screen, not the
// rectangle, so adjoining fills tile seamlessly.
func (blt *Blitter) FillPattern2(r geom.Rect, pat Pattern, fg, bg Shade) {
	if blt.pix == nil {
		return
	}
	r = r.ClipTo(blt.clip)
	for y := r.Top; y < r.Bottom; y++ {
		patRow := pat[y&7]
		row := blt.pix[y*ScreenWidth : y*ScreenWidth+ScreenWidth]
		for x := r.Left; x < r.Right; x++ {
			if patRow>>(7-(x&7))&1 == 1 {
				row[x] = fg
			} else {
				row[x] = bg
			}
		}
	}
}

// FillPatternMask draws only the set bits of a pattern, leaving the rest of
// the rectangle untouched.
func (blt *Blitter) FillPatternMask(r geom.Rect, pat Pattern, shade Shade) {
	if blt.pix == nil {
		return
	}
	r = r.ClipTo(blt.clip)
	for y := r.Top; y < r.Bottom; y++ {
		patRow := pat[y&7]
		row := blt.pix[y*ScreenWidth : y*ScreenWidth+ScreenWidth]
		for x := r.Left; x < r.Right; x++ {
			if patRow>>(7-(x&7))&1 == 1 {
				row[x] = shade
			}
		}
	}
}

// Blit1 draws a 1-bit packed bitmap, MSB first. Set bits draw in the given
// shade; clear bits are transparent.
func (blt *Blitter) Blit1(dstX, dstY int, src []byte, srcW, srcH int, shade Shade) {
	srcBPR := (srcW + 7) / 8
	for y := 0; y < srcH; y++ {
		for x := 0; x < srcW; x++ {
			if src[y*srcBPR+(x>>3)]>>(7-(x&7))&1 == 1 {
				blt.SetPixel(dstX+x, dstY+y, shade)
			}
		}
	}
}

// ScrollRect shifts the pixels inside a rectangle by (dx, dy). Exposed
// pixels are filled with White.
func (blt *Blitter) ScrollRect(r geom.Rect, dx, dy int) {
	if blt.pix == nil || (dx == 0 && dy == 0) || r.Empty() {
		return
	}

	startY, endY, stepY := r.Top, r.Bottom, 1
	if dy > 0 {
		startY, endY, stepY = r.Bottom-1, r.Top-1, -1
	}

	for y := startY; y != endY; y += stepY {
		srcY := y - dy
		if srcY < r.Top || srcY >= r.Bottom {
			blt.HLine(r.Left, y, r.Width(), White)
			continue
		}

		startX, endX, stepX := r.Left, r.Right, 1
		if dx > 0 {
			startX, endX, stepX = r.Right-1, r.Left-1, -1
		}
		for x := startX; x != endX; x += stepX {
			srcX := x - dx
			px := White
			if srcX >= r.Left && srcX < r.Right {
				px = blt.Pixel(srcX, srcY)
			}
			blt.SetPixel(x, y, px)
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
