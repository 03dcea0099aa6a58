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

package apps_test

import (
	"testing"

	"github.com/Project12x/segaos/apps"
	"github.com/Project12x/segaos/blitter"
	"github.com/Project12x/segaos/geom"
	"github.com/Project12x/segaos/test"
	"github.com/Project12x/segaos/wm"
)

func newDesk() (*wm.Manager, *blitter.Blitter) {
	mgr := wm.NewManager()
	blt := blitter.NewBlitter()
	blt.SetSurface(make([]byte, blitter.ScreenWidth*blitter.ScreenHeight))
	return mgr, blt
}

func TestNotepadEditing(t *testing.T) {
	mgr, blt := newDesk()
	n := apps.OpenNotepad(mgr, blt)
	test.ExpectSuccess(t, n != nil)

	for _, ch := range []byte("hello") {
		n.Insert(ch)
	}
	test.ExpectEquality(t, n.Text(), "hello")
	test.ExpectEquality(t, n.Caret(), 5)

	n.Insert('\b')
	test.ExpectEquality(t, n.Text(), "hell")
	test.ExpectEquality(t, n.Caret(), 4)

	// a click moves the caret
	n.Window().Click(n.Window(), geom.Point{X: 4, Y: 4})
	test.ExpectEquality(t, n.Caret(), 0)

	n.Insert('s')
	test.ExpectEquality(t, n.Text(), "shell")
}

func TestNotepadDraws(t *testing.T) {
	mgr, blt := newDesk()
	n := apps.OpenNotepad(mgr, blt)

	n.Insert('x')
	n.Window().Draw(n.Window())

	// something landed inside the content area
	found := false
	c := n.Window().Content
	for y := c.Top; y < c.Bottom && !found; y++ {
		for x := c.Left; x < c.Right; x++ {
			if blt.Pixel(x, y) == blitter.Black {
				found = true
				break
			}
		}
	}
	test.ExpectSuccess(t, found)
}

func TestPaintPencilAndDrag(t *testing.T) {
	mgr, blt := newDesk()
	p := apps.OpenPaint(mgr, blt)
	test.ExpectSuccess(t, p != nil)
	test.ExpectEquality(t, p.Tool(), apps.ToolPencil)

	win := p.Window()

	// content coordinates: the canvas starts after the 20px toolbar
	win.Click(win, geom.Point{X: 20 + 10, Y: 10})
	test.ExpectSuccess(t, p.CanvasPixel(10, 10))

	// dragging draws a connected line from the last position
	win.Drag(win, geom.Point{X: 20 + 14, Y: 14})
	test.ExpectSuccess(t, p.CanvasPixel(12, 12))
	test.ExpectSuccess(t, p.CanvasPixel(14, 14))
}

func TestPaintTwoClickTools(t *testing.T) {
	mgr, blt := newDesk()
	p := apps.OpenPaint(mgr, blt)
	win := p.Window()

	// select the filled rectangle tool (5th button)
	win.Click(win, geom.Point{X: 5, Y: 4*18 + 4})
	test.ExpectEquality(t, p.Tool(), apps.ToolFillRect)

	// anchor, then endpoint
	win.Click(win, geom.Point{X: 20 + 5, Y: 5})
	test.ExpectFailure(t, p.CanvasPixel(5, 5))
	win.Click(win, geom.Point{X: 20 + 8, Y: 8})
	test.ExpectSuccess(t, p.CanvasPixel(5, 5))
	test.ExpectSuccess(t, p.CanvasPixel(7, 7))
	test.ExpectSuccess(t, p.CanvasPixel(8, 8))
	test.ExpectFailure(t, p.CanvasPixel(9, 9))
}

func TestPaintEraserAndClear(t *testing.T) {
	mgr, blt := newDesk()
	p := apps.OpenPaint(mgr, blt)
	win := p.Window()

	win.Click(win, geom.Point{X: 20 + 10, Y: 10})
	test.ExpectSuccess(t, p.CanvasPixel(10, 10))

	// eraser is the 2nd button
	win.Click(win, geom.Point{X: 5, Y: 18 + 4})
	test.ExpectEquality(t, p.Tool(), apps.ToolEraser)
	win.Click(win, geom.Point{X: 20 + 10, Y: 10})
	test.ExpectFailure(t, p.CanvasPixel(10, 10))

	// pencil again, then the clear action wipes the whole canvas
	win.Click(win, geom.Point{X: 5, Y: 4})
	win.Click(win, geom.Point{X: 20 + 30, Y: 30})
	test.ExpectSuccess(t, p.CanvasPixel(30, 30))
	win.Click(win, geom.Point{X: 5, Y: 5*18 + 4})
	test.ExpectFailure(t, p.CanvasPixel(30, 30))
	test.ExpectEquality(t, p.Tool(), apps.ToolPencil)
}
