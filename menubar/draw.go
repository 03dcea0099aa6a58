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

package menubar

import (
	"github.com/Project12x/segaos/blitter"
	"github.com/Project12x/segaos/geom"
)

// Draw paints the bar: white background, black bottom border, menu titles
// with the open menu's title inverted.
func (mb *MenuBar) Draw(blt *blitter.Blitter) {
	blt.FillRect(geom.XYWH(0, 0, blitter.ScreenWidth, Height), blitter.White)
	blt.HLine(0, Height-1, blitter.ScreenWidth, blitter.Black)

	for i := range mb.menus {
		m := &mb.menus[i]
		if mb.open && mb.activeMenu == i {
			blt.FillRect(geom.Rect{
				Left: m.titleX - 4, Top: 1,
				Right: m.titleX + m.titleWidth, Bottom: Height - 1,
			}, blitter.Black)
			blt.DrawString(m.titleX, textY, m.title, blitter.White)
		} else {
			blt.DrawString(m.titleX, textY, m.title, blitter.Black)
		}
	}
}

// DrawDropdown paints the open dropdown, if any. Called after Draw, and
// after the windows, so the dropdown floats above everything but the cursor.
func (mb *MenuBar) DrawDropdown(blt *blitter.Blitter) {
	if !mb.open || mb.activeMenu < 0 {
		return
	}

	m := &mb.menus[mb.activeMenu]
	dropX := m.titleX - 4
	dropY := Height
	dropW := m.dropdownWidth()
	dropH := m.dropdownHeight()

	// shadow first, then the panel over it
	blt.FillRect(geom.XYWH(dropX+dropShadowSize, dropY+dropShadowSize, dropW, dropH),
		blitter.Black)
	panel := geom.XYWH(dropX, dropY, dropW, dropH)
	blt.FillRect(panel, blitter.White)
	blt.FrameRect(panel, blitter.Black)

	itemY := dropY + dropPaddingY
	for i, it := range m.items {
		if it.flags&ItemSeparator == ItemSeparator {
			blt.HLine(dropX+2, itemY+separatorHeight/2, dropW-4, blitter.Black)
			itemY += separatorHeight
			continue
		}

		hilited := mb.activeItem == i
		if hilited {
			blt.FillRect(geom.Rect{
				Left: dropX + 1, Top: itemY,
				Right: dropX + dropW - 1, Bottom: itemY + itemHeight,
			}, blitter.Black)
		}

		shade := blitter.Black
		if hilited {
			shade = blitter.White
		}

		textX := dropX + dropPaddingX
		if it.flags&ItemChecked == ItemChecked {
			blt.DrawString(textX, itemY+2, "*", shade)
			textX += 10
		}

		if it.flags&ItemDisabled == ItemDisabled {
			blt.DrawString(textX, itemY+2, it.text, blitter.Black)
			// knock the text back to gray it out
			blt.FillPatternMask(geom.Rect{
				Left: textX, Top: itemY + 2,
				Right:  textX + blitter.StringWidth(it.text),
				Bottom: itemY + 2 + blitter.FontHeight,
			}, blitter.Gray50, blitter.White)
		} else {
			blt.DrawString(textX, itemY+2, it.text, shade)
		}

		itemY += itemHeight
	}
}
