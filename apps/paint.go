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

package apps

import (
	"github.com/Project12x/segaos/blitter"
	"github.com/Project12x/segaos/geom"
	"github.com/Project12x/segaos/wm"
)

// Paint canvas and toolbar layout. The canvas is stored as a 1-bit packed
// bitmap and expanded to black at draw time.
const (
	CanvasWidth  = 240
	CanvasHeight = 150

	canvasStride = CanvasWidth / 8

	toolbarWidth  = 20
	toolButtonH   = 16
	toolButtonPad = 2
)

// Tool selects the active drawing tool.
type Tool int

// List of Tool values. ToolClear is an action button rather than a tool.
const (
	ToolPencil Tool = iota
	ToolEraser
	ToolLine
	ToolRect
	ToolFillRect
	ToolClear
	numTools
)

var toolLabels = [numTools]string{"P", "E", "L", "R", "F", "C"}

// Paint is a small drawing application: pencil and eraser draw freehand,
// line and the two rectangle tools work with two clicks (anchor, then
// endpoint).
type Paint struct {
	mgr *wm.Manager
	blt *blitter.Blitter
	win *wm.Window

	canvas [canvasStride * CanvasHeight]byte
	tool   Tool

	anchorSet        bool
	anchorX, anchorY int

	hasLast      bool
	lastX, lastY int
}

// OpenPaint creates the paint window. Returns nil when the window pool is
// exhausted.
func OpenPaint(mgr *wm.Manager, blt *blitter.Blitter) *Paint {
	w := toolbarWidth + CanvasWidth + 4
	h := CanvasHeight + wm.TitleBarHeight + 6
	win := mgr.NewWindow(geom.XYWH(15, 25, w, h), "Paint", wm.StyleDocument,
		wm.FlagVisible|wm.FlagHasGrow)
	if win == nil {
		return nil
	}

	p := &Paint{mgr: mgr, blt: blt, win: win}
	win.Draw = p.draw
	win.Click = p.click
	win.Drag = p.drag
	return p
}

// Window returns the paint window.
func (p *Paint) Window() *wm.Window {
	return p.win
}

// Tool returns the active tool.
func (p *Paint) Tool() Tool {
	return p.tool
}

// CanvasPixel reads a canvas pixel. Out of bounds reads return false.
func (p *Paint) CanvasPixel(x, y int) bool {
	if x < 0 || x >= CanvasWidth || y < 0 || y >= CanvasHeight {
		return false
	}
	return p.canvas[y*canvasStride+(x>>3)]>>(7-(x&7))&1 == 1
}

func (p *Paint) setPixel(x, y int, on bool) {
	if x < 0 || x >= CanvasWidth || y < 0 || y >= CanvasHeight {
		return
	}
	bit := uint8(0x80) >> (x & 7)
	if on {
		p.canvas[y*canvasStride+(x>>3)] |= bit
	} else {
		p.canvas[y*canvasStride+(x>>3)] &^= bit
	}
}

func (p *Paint) line(x0, y0, x1, y1 int, on bool) {
	dx := abs(x1 - x0)
	dy := abs(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx - dy

	for {
		p.setPixel(x0, y0, on)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := err * 2
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

func (p *Paint) rect(x0, y0, x1, y1 int, fill bool) {
	x0, x1 = min(x0, x1), max(x0, x1)
	y0, y1 = min(y0, y1), max(y0, y1)

	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if fill || y == y0 || y == y1 || x == x0 || x == x1 {
				p.setPixel(x, y, true)
			}
		}
	}
}

// eraseAt clears a 4x4 block centred on the point.
func (p *Paint) eraseAt(cx, cy int) {
	for y := cy - 1; y <= cy+2; y++ {
		for x := cx - 1; x <= cx+2; x++ {
			p.setPixel(x, y, false)
		}
	}
}

func (p *Paint) eraseLine(x0, y0, x1, y1 int) {
	dx := abs(x1 - x0)
	dy := abs(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx - dy

	for {
		p.eraseAt(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := err * 2
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// toCanvas maps a content coordinate to canvas coordinates.
func toCanvas(pt geom.Point) (int, int, bool) {
	cx := pt.X - toolbarWidth
	cy := pt.Y
	return cx, cy, cx >= 0 && cx < CanvasWidth && cy >= 0 && cy < CanvasHeight
}

// toolbarHit returns the toolbar button under a content coordinate, or -1.
func toolbarHit(pt geom.Point) Tool {
	if pt.X < 0 || pt.X >= toolbarWidth || pt.Y < 0 {
		return -1
	}
	btn := Tool(pt.Y / (toolButtonH + toolButtonPad))
	if btn >= numTools {
		return -1
	}
	return btn
}

func (p *Paint) draw(win *wm.Window) {
	tx := win.Content.Left
	ty := win.Content.Top
	canvasLeft := tx + toolbarWidth

	// toolbar
	p.blt.FillRect(geom.XYWH(tx, ty, toolbarWidth-1,
		int(numTools)*(toolButtonH+toolButtonPad)), blitter.White)
	for i := Tool(0); i < numTools; i++ {
		by := ty + int(i)*(toolButtonH+toolButtonPad)
		selected := i == p.tool && i < ToolClear

		btn := geom.Rect{Left: tx + 1, Top: by, Right: tx + toolbarWidth - 2,
			Bottom: by + toolButtonH}
		if selected {
			p.blt.FillRect(btn, blitter.Black)
		} else {
			p.blt.FillRect(btn, blitter.White)
		}
		p.blt.FrameRect(btn, blitter.Black)

		shade := blitter.Black
		if selected {
			shade = blitter.White
		}
		p.blt.DrawString(tx+4, by+2, toolLabels[i], shade)
	}

	// separator between toolbar and canvas
	p.blt.VLine(canvasLeft-1, ty, CanvasHeight, blitter.Black)

	// canvas
	p.blt.FillRect(geom.XYWH(canvasLeft, ty, CanvasWidth, CanvasHeight), blitter.White)
	p.blt.Blit1(canvasLeft, ty, p.canvas[:], CanvasWidth, CanvasHeight, blitter.Black)
	p.blt.FrameRect(geom.Rect{Left: canvasLeft - 1, Top: ty - 1,
		Right: canvasLeft + CanvasWidth, Bottom: ty + CanvasHeight}, blitter.Black)

	// crosshair at the anchor of a two-click tool
	if p.anchorSet {
		ax := canvasLeft + p.anchorX
		ay := ty + p.anchorY
		p.blt.SetPixel(ax, ay, blitter.Black)
		p.blt.SetPixel(ax-2, ay, blitter.Black)
		p.blt.SetPixel(ax+2, ay, blitter.Black)
		p.blt.SetPixel(ax, ay-2, blitter.Black)
		p.blt.SetPixel(ax, ay+2, blitter.Black)
	}
}

func (p *Paint) click(win *wm.Window, pt geom.Point) {
	if btn := toolbarHit(pt); btn >= 0 {
		if btn == ToolClear {
			p.canvas = [canvasStride * CanvasHeight]byte{}
			p.anchorSet = false
		} else {
			p.tool = btn
			p.anchorSet = false
		}
		p.hasLast = false
		p.mgr.InvalidateWindow(win)
		return
	}

	cx, cy, ok := toCanvas(pt)
	if !ok {
		return
	}

	switch p.tool {
	case ToolPencil:
		p.setPixel(cx, cy, true)
		p.lastX, p.lastY = cx, cy
		p.hasLast = true

	case ToolEraser:
		p.eraseAt(cx, cy)
		p.lastX, p.lastY = cx, cy
		p.hasLast = true

	case ToolLine, ToolRect, ToolFillRect:
		if !p.anchorSet {
			p.anchorX, p.anchorY = cx, cy
			p.anchorSet = true
		} else {
			switch p.tool {
			case ToolLine:
				p.line(p.anchorX, p.anchorY, cx, cy, true)
			case ToolRect:
				p.rect(p.anchorX, p.anchorY, cx, cy, false)
			case ToolFillRect:
				p.rect(p.anchorX, p.anchorY, cx, cy, true)
			}
			p.anchorSet = false
		}
	}

	p.mgr.InvalidateWindow(win)
}

func (p *Paint) drag(win *wm.Window, pt geom.Point) {
	cx, cy, ok := toCanvas(pt)
	if !ok {
		return
	}

	switch p.tool {
	case ToolPencil:
		if p.hasLast {
			p.line(p.lastX, p.lastY, cx, cy, true)
		} else {
			p.setPixel(cx, cy, true)
		}
		p.lastX, p.lastY = cx, cy
		p.hasLast = true
		p.mgr.InvalidateWindow(win)

	case ToolEraser:
		if p.hasLast {
			p.eraseLine(p.lastX, p.lastY, cx, cy)
		} else {
			p.eraseAt(cx, cy)
		}
		p.lastX, p.lastY = cx, cy
		p.hasLast = true
		p.mgr.InvalidateWindow(win)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
