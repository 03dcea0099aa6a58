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

// Package geom defines the point and rectangle types shared by the window
// manager, the blitter and the frontend. Rectangles are half-open: a point on
// the right or bottom edge is outside the rectangle.
package geom

import "fmt"

// Point is a screen coordinate.
type Point struct {
	X int
	Y int
}

// Rect is a screen rectangle. The right and bottom edges are exclusive.
type Rect struct {
	Left   int
	Top    int
	Right  int
	Bottom int
}

// XYWH creates a Rect from an origin and dimensions.
func XYWH(x, y, w, h int) Rect {
	return Rect{Left: x, Top: y, Right: x + w, Bottom: y + h}
}

func (r Rect) String() string {
	return fmt.Sprintf("(%d,%d)-(%d,%d)", r.Left, r.Top, r.Right, r.Bottom)
}

// Width of the rectangle.
func (r Rect) Width() int {
	return r.Right - r.Left
}

// Height of the rectangle.
func (r Rect) Height() int {
	return r.Bottom - r.Top
}

// Empty is true if the rectangle encloses no pixels.
func (r Rect) Empty() bool {
	return r.Left >= r.Right || r.Top >= r.Bottom
}

// Contains is true if pt falls inside the rectangle.
func (r Rect) Contains(pt Point) bool {
	return pt.X >= r.Left && pt.X < r.Right && pt.Y >= r.Top && pt.Y < r.Bottom
}

// Intersects is true if the two rectangles share any pixel.
func (r Rect) Intersects(o Rect) bool {
	return !(r.Right <= o.Left || r.Left >= o.Right || r.Bottom <= o.Top || r.Top >= o.Bottom)
}

// Union returns the bounding rectangle of the two rectangles.
func (r Rect) Union(o Rect) Rect {
	return Rect{
		Left:   min(r.Left, o.Left),
		Top:    min(r.Top, o.Top),
		Right:  max(r.Right, o.Right),
		Bottom: max(r.Bottom, o.Bottom),
	}
}

// Intersect returns the overlapping region of the two rectangles. The result
// may be Empty.
func (r Rect) Intersect(o Rect) Rect {
	return Rect{
		Left:   max(r.Left, o.Left),
		Top:    max(r.Top, o.Top),
		Right:  min(r.Right, o.Right),
		Bottom: min(r.Bottom, o.Bottom),
	}
}

// Translate returns the rectangle moved by dx, dy.
func (r Rect) Translate(dx, dy int) Rect {
	return Rect{Left: r.Left + dx, Top: r.Top + dy, Right: r.Right + dx, Bottom: r.Bottom + dy}
}

// ClipTo returns the rectangle clipped to the bounds rectangle.
func (r Rect) ClipTo(bounds Rect) Rect {
	return r.Intersect(bounds)
}
