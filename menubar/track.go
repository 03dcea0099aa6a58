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

// MouseDown starts or dismisses dropdown tracking. Returns true if the
// click landed on a menu title and a dropdown is now open.
func (mb *MenuBar) MouseDown(x, y int) bool {
	if y >= Height {
		if mb.open {
			mb.Close()
		}
		return false
	}

	for i := range mb.menus {
		m := &mb.menus[i]
		if x >= m.titleX-4 && x < m.titleX+m.titleWidth {
			mb.activeMenu = i
			mb.activeItem = -1
			mb.open = true
			return true
		}
	}
	return false
}

// MouseMove tracks the pointer while a dropdown is open, switching menus
// when the pointer crosses to another title and highlighting items under
// the pointer.
func (mb *MenuBar) MouseMove(x, y int) {
	if !mb.open || mb.activeMenu < 0 {
		return
	}

	if y < Height {
		for i := range mb.menus {
			m := &mb.menus[i]
			if x >= m.titleX-4 && x < m.titleX+m.titleWidth {
				if mb.activeMenu != i {
					mb.activeMenu = i
					mb.activeItem = -1
				}
				return
			}
		}
		mb.activeItem = -1
		return
	}

	m := &mb.menus[mb.activeMenu]
	dropX := m.titleX - 4
	if x < dropX || x >= dropX+m.dropdownWidth() {
		mb.activeItem = -1
		return
	}

	itemY := Height + dropPaddingY
	for i, it := range m.items {
		h := itemHeight
		if it.flags&ItemSeparator == ItemSeparator {
			h = separatorHeight
		}
		if y >= itemY && y < itemY+h {
			if it.flags&(ItemSeparator|ItemDisabled) != 0 {
				mb.activeItem = -1
			} else {
				mb.activeItem = i
			}
			return
		}
		itemY += h
	}
	mb.activeItem = -1
}

// MouseUp completes the interaction. The returned Selection carries the
// highlighted item's command, or a zero command if nothing selectable was
// under the pointer. The dropdown closes either way.
func (mb *MenuBar) MouseUp(x, y int) Selection {
	var sel Selection

	if mb.open && mb.activeMenu >= 0 && mb.activeItem >= 0 {
		it := mb.menus[mb.activeMenu].items[mb.activeItem]
		if it.flags&(ItemSeparator|ItemDisabled) == 0 {
			sel = Selection{
				Menu:    mb.activeMenu,
				Item:    mb.activeItem,
				Command: it.command,
			}
		}
	}

	mb.Close()
	return sel
}
