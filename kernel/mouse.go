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

package kernel

import (
	"fmt"

	"github.com/Project12x/segaos/apps"
	"github.com/Project12x/segaos/geom"
	"github.com/Project12x/segaos/hardware/gatearray"
	"github.com/Project12x/segaos/logger"
	"github.com/Project12x/segaos/menubar"
	"github.com/Project12x/segaos/wm"
)

// contentPoint converts a screen position to a window's content coordinates.
func contentPoint(win *wm.Window, x, y int) geom.Point {
	return geom.Point{X: x - win.Content.Left, Y: y - win.Content.Top}
}

// mouseEvent services a CmdMouseEvent: move the cursor, then route the
// event to the menu bar, a drag or resize in progress, or the window under
// the pointer.
func (k *Kernel) mouseEvent(ev gatearray.MouseEvent) {
	k.prevCursor = k.cursor
	k.cursor = geom.Point{X: ev.X, Y: ev.Y}

	// both the old and new cursor footprints need repainting
	k.mgr.InvalidateRect(geom.XYWH(k.prevCursor.X, k.prevCursor.Y,
		cursorWidth, cursorHeight))
	k.mgr.InvalidateRect(geom.XYWH(k.cursor.X, k.cursor.Y,
		cursorWidth, cursorHeight))

	// if the dropdown closes during this event the area it covered has to
	// be repainted
	dropdown := k.bar.DropdownRect()
	defer func() {
		if !dropdown.Empty() && !k.bar.IsTracking() {
			k.mgr.InvalidateRect(dropdown)
		}
	}()

	switch ev.Type {
	case gatearray.MouseDown:
		k.mouseDown(ev.X, ev.Y)

	case gatearray.MouseMove:
		if k.bar.IsTracking() {
			k.bar.MouseMove(ev.X, ev.Y)
		}

	case gatearray.MouseDrag:
		k.mouseDrag(ev.X, ev.Y)

	case gatearray.MouseUp:
		k.mouseUp(ev.X, ev.Y)

	default:
		logger.Logf("kernel", "mouse event with unknown type (%d)", ev.Type)
	}
}

func (k *Kernel) mouseDown(x, y int) {
	pt := geom.Point{X: x, Y: y}
	part, win := k.mgr.FindWindow(pt)

	switch part {
	case wm.PartMenuBar:
		k.bar.MouseDown(x, y)

	case wm.PartContent:
		k.mgr.Select(win)
		if win.Click != nil {
			win.Click(win, contentPoint(win, x, y))
		}

	case wm.PartDrag:
		k.mgr.Select(win)
		k.dragWin = win
		k.dragOff = geom.Point{X: x - win.Frame.Left, Y: y - win.Frame.Top}

	case wm.PartClose:
		k.mgr.Dispose(win)

	case wm.PartGrow:
		k.mgr.Select(win)
		k.growWin = win

	case wm.PartDesktop:
		if k.bar.IsTracking() {
			k.bar.MouseDown(x, y)
		}
	}
}

func (k *Kernel) mouseDrag(x, y int) {
	switch {
	case k.bar.IsTracking():
		k.bar.MouseMove(x, y)

	case k.dragWin != nil:
		k.mgr.Move(k.dragWin, x-k.dragOff.X, y-k.dragOff.Y)

	case k.growWin != nil:
		// resize so the grow box corner tracks the pointer
		k.mgr.Size(k.growWin, x-k.growWin.Frame.Left+1, y-k.growWin.Frame.Top+1)

	default:
		if active := k.mgr.Active(); active != nil && active.Drag != nil {
			active.Drag(active, contentPoint(active, x, y))
		}
	}
}

func (k *Kernel) mouseUp(x, y int) {
	if k.bar.IsTracking() {
		sel := k.bar.MouseUp(x, y)
		if sel.Command != 0 {
			k.menuCommand(sel.Command)
		}
	}
	k.dragWin = nil
	k.growWin = nil
}

// menuCommand dispatches a completed menu selection. Commands without an
// implementation are ignored, matching a menu item that does nothing.
func (k *Kernel) menuCommand(cmd menubar.CommandID) {
	switch cmd {
	case cmdFileNew:
		k.windowCounter++
		x := 30 + (k.windowCounter*12)%120
		y := 40 + (k.windowCounter*10)%80
		k.mgr.NewWindow(geom.XYWH(x, y, 180, 120),
			fmt.Sprintf("Window %02d", k.windowCounter),
			wm.StyleDocument, wm.FlagVisible|wm.FlagHasGrow)

	case cmdFileClose:
		if active := k.mgr.Active(); active != nil {
			k.mgr.Dispose(active)
		}

	case cmdAppsNote:
		apps.OpenNotepad(k.mgr, k.blt)

	case cmdAppsPaint:
		// one paint window at a time
		if k.paint != nil {
			if _, err := k.mgr.Lookup(k.paint.Window().ID()); err == nil {
				k.mgr.Select(k.paint.Window())
				return
			}
		}
		k.paint = apps.OpenPaint(k.mgr, k.blt)
	}
}
