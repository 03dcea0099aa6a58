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

package wm

import (
	"fmt"

	"github.com/Project12x/segaos/geom"
)

// Part is the region of the screen a pointer position resolves to.
type Part int

// List of valid Part values, in the priority order they are tested within a
// window: close box, then grow box, then title bar, then content, with the
// remaining border acting as a drag handle.
const (
	PartDesktop Part = iota
	PartMenuBar
	PartClose
	PartGrow
	PartDrag
	PartContent
)

func (p Part) String() string {
	switch p {
	case PartDesktop:
		return "desktop"
	case PartMenuBar:
		return "menu bar"
	case PartClose:
		return "close box"
	case PartGrow:
		return "grow box"
	case PartDrag:
		return "drag region"
	case PartContent:
		return "content"
	}
	return fmt.Sprintf("part %d", int(p))
}

// FindWindow maps a screen position to the window part under it, walking the
// stack front to back. The window is nil for the desktop and menu bar parts.
func (m *Manager) FindWindow(pt geom.Point) (Part, *Window) {
	if pt.Y < MenuBarHeight {
		return PartMenuBar, nil
	}

	for win := m.top; win != nil; win = win.below {
		if !win.Visible() || !win.Frame.Contains(pt) {
			continue
		}

		if win.CloseBox().Contains(pt) {
			return PartClose, win
		}
		if win.GrowBox().Contains(pt) {
			return PartGrow, win
		}
		if win.TitleBar.Contains(pt) {
			return PartDrag, win
		}
		if win.Content.Contains(pt) {
			return PartContent, win
		}

		// the border is all that is left of the frame
		return PartDrag, win
	}

	return PartDesktop, nil
}
