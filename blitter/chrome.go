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
	"github.com/Project12x/segaos/wm"
)

// DrawWindowFrame paints a window's chrome and clears its content area. The
// content itself is painted afterwards by the window's Draw callback.
func (blt *Blitter) DrawWindowFrame(win *wm.Window) {
	blt.FrameRect(win.Frame, Black)

	if !win.TitleBar.Empty() {
		blt.DrawTitleBar(win.TitleBar, win.Title(), win.Highlighted(),
			win.Flags()&wm.FlagHasClose == wm.FlagHasClose)
	}

	if gb := win.GrowBox(); !gb.Empty() {
		blt.DrawGrowBox(gb.Left, gb.Top)
	}

	switch win.Style() {
	case wm.StyleShadow, wm.StyleDialog:
		blt.DrawShadow(win.Frame)
	case wm.StyleAlert:
		// alerts get a heavier border
		blt.FrameRect(geom.Rect{
			Left: win.Frame.Left + 2, Top: win.Frame.Top + 2,
			Right: win.Frame.Right - 2, Bottom: win.Frame.Bottom - 2,
		}, Black)
	}

	blt.FillRect(win.Content, White)
}

// DrawTitleBar paints a title bar: diagonal stripes with a cleared slot for
// the centred title when highlighted, plain white otherwise.
func (blt *Blitter) DrawTitleBar(bar geom.Rect, title string, hilited bool, hasClose bool) {
	if hilited {
		blt.FillPattern2(bar, Gray50, Black, LightGray)
		if title != "" {
			w := StringWidth(title)
			x := bar.Left + (bar.Width()-w)/2
			blt.FillRect(geom.Rect{
				Left: x - 4, Top: bar.Top + 1,
				Right: x + w + 4, Bottom: bar.Bottom - 1,
			}, White)
			blt.DrawString(x, bar.Top+2, title, Black)
		}
	} else {
		blt.FillRect(bar, White)
		if title != "" {
			w := StringWidth(title)
			blt.DrawString(bar.Left+(bar.Width()-w)/2, bar.Top+2, title, Black)
		}
	}

	blt.FrameRect(bar, Black)

	if hasClose {
		blt.DrawCloseBox(bar.Left+4, bar.Top+3, false)
	}
}

// DrawCloseBox paints the close box, filled when pressed.
func (blt *Blitter) DrawCloseBox(x, y int, pressed bool) {
	blt.FrameRect(geom.XYWH(x, y, wm.CloseBoxSize, wm.CloseBoxSize), Black)
	if pressed {
		blt.FillRect(geom.XYWH(x+1, y+1, wm.CloseBoxSize-2, wm.CloseBoxSize-2), Black)
	}
}

// DrawGrowBox paints the grow box: a box within a box.
func (blt *Blitter) DrawGrowBox(x, y int) {
	blt.FrameRect(geom.XYWH(x, y, wm.GrowBoxSize, wm.GrowBoxSize), Black)
	blt.FrameRect(geom.XYWH(x+3, y+3, 6, 6), Black)
}

// DrawShadow paints a drop shadow along the right and bottom edges of a
// frame.
func (blt *Blitter) DrawShadow(frame geom.Rect) {
	blt.VLine(frame.Right, frame.Top+1, frame.Height(), DarkGray)
	blt.HLine(frame.Left+1, frame.Bottom, frame.Width(), DarkGray)
}
