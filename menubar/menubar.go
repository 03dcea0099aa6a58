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

// Package menubar implements the top-of-screen pull down menu bar. The bar
// occupies the top 20 pixels; an open dropdown is drawn over the windows
// below it, unclipped, during the render pass.
//
// The bar itself is pure state plus drawing; which commands exist and what
// they do is decided by whoever builds the menus, through CommandID.
package menubar

import (
	"github.com/Project12x/segaos/blitter"
	"github.com/Project12x/segaos/geom"
)

// Bar and dropdown metrics, in pixels.
const (
	Height          = 20
	textY           = 5
	titlePadding    = 8
	firstTitleX     = 10
	itemHeight      = 14
	separatorHeight = 8
	dropPaddingX    = 8
	dropPaddingY    = 2
	dropMinWidth    = 80
	dropShadowSize  = 2
)

// Capacity of the statically allocated menu structures.
const (
	MaxMenus = 8
	MaxItems = 16
)

// CommandID identifies a menu item to whoever built the menu. Zero is never
// a valid command.
type CommandID uint16

// ItemFlags modify the behaviour and appearance of a menu item.
type ItemFlags uint8

// List of ItemFlags values.
const (
	ItemSeparator ItemFlags = 0x01
	ItemDisabled  ItemFlags = 0x02
	ItemChecked   ItemFlags = 0x04
)

type item struct {
	text    string
	flags   ItemFlags
	command CommandID
}

type menu struct {
	title      string
	titleX     int
	titleWidth int
	items      []item
}

// Selection is the result of a completed menu interaction. A zero CommandID
// means nothing was chosen.
type Selection struct {
	Menu    int
	Item    int
	Command CommandID
}

// MenuBar holds the menus and the dropdown tracking state.
type MenuBar struct {
	menus []menu

	activeMenu int
	activeItem int
	open       bool
}

// NewMenuBar is the preferred method of initialisation for the MenuBar type.
func NewMenuBar() *MenuBar {
	return &MenuBar{
		menus:      make([]menu, 0, MaxMenus),
		activeMenu: -1,
		activeItem: -1,
	}
}

// AddMenu appends a menu title to the bar. Returns the menu index, or -1
// when the bar is full.
func (mb *MenuBar) AddMenu(title string) int {
	if len(mb.menus) >= MaxMenus {
		return -1
	}

	x := firstTitleX
	if n := len(mb.menus); n > 0 {
		prev := &mb.menus[n-1]
		x = prev.titleX + prev.titleWidth + titlePadding
	}

	mb.menus = append(mb.menus, menu{
		title:      title,
		titleX:     x,
		titleWidth: blitter.StringWidth(title) + titlePadding,
	})
	return len(mb.menus) - 1
}

// AddItem appends an item to a menu. Returns the item index, or -1 when the
// menu is invalid or full.
func (mb *MenuBar) AddItem(menuIdx int, text string, command CommandID, flags ItemFlags) int {
	if menuIdx < 0 || menuIdx >= len(mb.menus) {
		return -1
	}
	m := &mb.menus[menuIdx]
	if len(m.items) >= MaxItems {
		return -1
	}
	m.items = append(m.items, item{text: text, flags: flags, command: command})
	return len(m.items) - 1
}

// AddSeparator appends a separator line to a menu.
func (mb *MenuBar) AddSeparator(menuIdx int) int {
	return mb.AddItem(menuIdx, "", 0, ItemSeparator)
}

// SetItemEnabled enables or disables a menu item.
func (mb *MenuBar) SetItemEnabled(menuIdx, itemIdx int, enabled bool) {
	if menuIdx < 0 || menuIdx >= len(mb.menus) {
		return
	}
	m := &mb.menus[menuIdx]
	if itemIdx < 0 || itemIdx >= len(m.items) {
		return
	}
	if enabled {
		m.items[itemIdx].flags &^= ItemDisabled
	} else {
		m.items[itemIdx].flags |= ItemDisabled
	}
}

// SetItemChecked checks or unchecks a menu item.
func (mb *MenuBar) SetItemChecked(menuIdx, itemIdx int, checked bool) {
	if menuIdx < 0 || menuIdx >= len(mb.menus) {
		return
	}
	m := &mb.menus[menuIdx]
	if itemIdx < 0 || itemIdx >= len(m.items) {
		return
	}
	if checked {
		m.items[itemIdx].flags |= ItemChecked
	} else {
		m.items[itemIdx].flags &^= ItemChecked
	}
}

// IsTracking is true while a dropdown is open.
func (mb *MenuBar) IsTracking() bool {
	return mb.open
}

// Close dismisses any open dropdown.
func (mb *MenuBar) Close() {
	mb.activeMenu = -1
	mb.activeItem = -1
	mb.open = false
}

func (m *menu) dropdownWidth() int {
	w := dropMinWidth
	for _, it := range m.items {
		if it.flags&ItemSeparator == ItemSeparator || it.text == "" {
			continue
		}
		iw := blitter.StringWidth(it.text) + dropPaddingX*2
		if it.flags&ItemChecked == ItemChecked {
			iw += 10
		}
		w = max(w, iw)
	}
	return w
}

func (m *menu) dropdownHeight() int {
	h := dropPaddingY * 2
	for _, it := range m.items {
		if it.flags&ItemSeparator == ItemSeparator {
			h += separatorHeight
		} else {
			h += itemHeight
		}
	}
	return h
}

// DropdownRect returns the screen area the open dropdown covers, including
// its shadow. Empty when no dropdown is open. The render loop uses it to
// invalidate the uncovered area when the dropdown closes.
func (mb *MenuBar) DropdownRect() geom.Rect {
	if !mb.open || mb.activeMenu < 0 {
		return geom.Rect{}
	}
	m := &mb.menus[mb.activeMenu]
	return geom.XYWH(m.titleX-4, Height,
		m.dropdownWidth()+dropShadowSize, m.dropdownHeight()+dropShadowSize)
}
