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
	"github.com/Project12x/segaos/blitter"
	"github.com/Project12x/segaos/hardware/gatearray"
	"github.com/Project12x/segaos/wm"
)

// Cursor bitmap dimensions.
const (
	cursorWidth  = 11
	cursorHeight = 16
)

// the classic arrow, 1-bit packed, two bytes per row.
var cursorBitmap = [cursorHeight * 2]byte{
	0xc0, 0x00,
	0xa0, 0x00,
	0x90, 0x00,
	0x88, 0x00,
	0x84, 0x00,
	0x82, 0x00,
	0x81, 0x00,
	0x80, 0x80,
	0x80, 0x40,
	0x83, 0xc0,
	0x92, 0x00,
	0xa2, 0x00,
	0xc1, 0x00,
	0x01, 0x00,
	0x00, 0x80,
	0x00, 0x00,
}

func desktopPattern(p wm.DesktopPattern) blitter.Pattern {
	switch p {
	case wm.PatternWhite:
		return blitter.SolidWhite
	case wm.PatternChecker:
		return blitter.Gray25
	}
	return blitter.Gray50
}

// renderFrame services a CmdRenderFrame: repaint every dirty rectangle,
// overlay the menu bar and cursor, surrender the bank and complete.
func (k *Kernel) renderFrame() error {
	k.sub.WriteState(gatearray.StateRendering)

	count := k.mgr.BeginUpdate()
	_ = k.sub.WriteResult(1, uint16(count))

	for i := 0; i < count; i++ {
		r, ok := k.mgr.DirtyRect(i)
		if !ok {
			continue
		}

		k.blt.SetClip(r)
		k.blt.FillPattern(r, desktopPattern(k.mgr.Desktop()))

		for win := k.mgr.Bottom(); win != nil; win = win.Above() {
			if !win.Visible() {
				continue
			}
			k.blt.DrawWindowFrame(win)
			if win.Draw != nil {
				win.Draw(win)
			}
		}
	}

	// the menu bar, the open dropdown and the cursor float above the
	// windows and are repainted in full every frame
	k.blt.ResetClip()
	k.bar.Draw(k.blt)
	if k.bar.IsTracking() {
		k.bar.DrawDropdown(k.blt)
	}
	k.blt.Blit1(k.cursor.X, k.cursor.Y, cursorBitmap[:],
		cursorWidth, cursorHeight, blitter.Black)

	k.mgr.EndUpdate()

	k.returnBank()

	k.sub.WriteState(gatearray.StateReady)
	return k.sub.Complete()
}
