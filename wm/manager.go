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
	"github.com/Project12x/segaos/curated"
	"github.com/Project12x/segaos/geom"
)

// Sentinel errors returned by the window manager.
const (
	StaleWindow = "window manager: stale or invalid window id (%s)"
)

// DesktopPattern selects the fill pattern behind all windows.
type DesktopPattern uint8

// List of valid DesktopPattern values.
const (
	PatternGray DesktopPattern = iota
	PatternWhite
	PatternChecker
)

// Manager owns the window pool, the stacking order and the dirty rectangle
// accumulator.
type Manager struct {
	pool       [MaxWindows]Window
	used       [MaxWindows]bool
	generation [MaxWindows]uint8
	count      int

	// stacking order. top is drawn last
	top    *Window
	bottom *Window
	active *Window

	dirty dirtyList

	desktop DesktopPattern
}

// NewManager is the preferred method of initialisation for the Manager type.
// The entire screen below the menu bar starts dirty.
func NewManager() *Manager {
	m := &Manager{desktop: PatternGray}
	m.InvalidateRect(geom.Rect{Left: 0, Top: MenuBarHeight,
		Right: ScreenWidth, Bottom: ScreenHeight})
	return m
}

// WindowCount returns the number of live windows.
func (m *Manager) WindowCount() int {
	return m.count
}

// Top returns the frontmost window, or nil.
func (m *Manager) Top() *Window {
	return m.top
}

// Bottom returns the backmost window, or nil.
func (m *Manager) Bottom() *Window {
	return m.bottom
}

// Active returns the highlighted window, or nil.
func (m *Manager) Active() *Window {
	return m.active
}

// Lookup resolves a WindowID. Fails for a disposed or never-issued ID.
func (m *Manager) Lookup(id WindowID) (*Window, error) {
	slot := id.Slot()
	if slot >= MaxWindows || !m.used[slot] || m.generation[slot] != id.Generation() {
		return nil, curated.Errorf(StaleWindow, id)
	}
	return &m.pool[slot], nil
}

// WindowBySlot resolves a bare pool slot, the form window identities take
// in the command registers. Returns nil for an empty or out of range slot.
func (m *Manager) WindowBySlot(slot int) *Window {
	if slot < 0 || slot >= MaxWindows || !m.used[slot] {
		return nil
	}
	return &m.pool[slot]
}

// NewWindow allocates a window from the pool and places it at the top of the
// stack. The frame is kept inside the screen, as with Move and Size. A window
// created with FlagVisible becomes the active window; without it the window
// joins the stack hidden and the current active window is untouched. Returns
// nil when the pool is exhausted.
func (m *Manager) NewWindow(bounds geom.Rect, title string, style Style, flags Flags) *Window {
	slot := -1
	for i := 0; i < MaxWindows; i++ {
		if !m.used[i] {
			slot = i
			break
		}
	}
	if slot == -1 {
		return nil
	}

	switch style {
	case StyleDocument:
		flags |= FlagHasClose
	case StyleDialog, StyleAlert:
		flags |= FlagModal
	}

	w := min(bounds.Width(), ScreenWidth)
	h := min(bounds.Height(), ScreenHeight-MenuBarHeight)
	x := min(max(bounds.Left, 0), ScreenWidth-w)
	y := min(max(bounds.Top, MenuBarHeight), ScreenHeight-h)

	win := &m.pool[slot]
	*win = Window{
		id:    windowID(slot, m.generation[slot]),
		style: style,
		flags: flags,
		Frame: geom.XYWH(x, y, w, h),
	}
	win.setTitle(title)
	win.computeRects()

	m.used[slot] = true
	m.count++
	m.linkTop(win)

	if win.Visible() {
		if m.active != nil {
			m.active.flags &^= FlagHilited
			m.InvalidateWindow(m.active)
		}
		m.active = win
		win.flags |= FlagHilited
		m.InvalidateWindow(win)
	}

	return win
}

// Dispose returns a window to the pool. The slot's generation is bumped so
// outstanding IDs for the window go stale.
func (m *Manager) Dispose(win *Window) {
	if win == nil {
		return
	}

	m.InvalidateWindow(win)
	m.unlink(win)

	slot := win.id.Slot()
	m.used[slot] = false
	m.generation[slot]++
	m.count--

	if m.active == win {
		// the topmost visible window inherits active status
		next := m.top
		for next != nil && !next.Visible() {
			next = next.Below()
		}
		m.active = next
		if m.active != nil {
			m.active.flags |= FlagHilited
			m.InvalidateWindow(m.active)
		}
	}
}

// Select brings a window to the front and makes it active.
func (m *Manager) Select(win *Window) {
	if win == nil || win == m.top {
		return
	}

	if m.active != nil && m.active != win {
		m.active.flags &^= FlagHilited
		m.InvalidateWindow(m.active)
	}

	m.unlink(win)
	m.linkTop(win)

	m.active = win
	win.flags |= FlagHilited
	m.InvalidateWindow(win)
}

// SendToBack pushes a window to the bottom of the stack. The window keeps
// its active status; use Select on another window to move it.
func (m *Manager) SendToBack(win *Window) {
	if win == nil || win == m.bottom {
		return
	}
	m.unlink(win)
	m.linkBottom(win)
	m.InvalidateWindow(win)
}

// Show makes a hidden window visible again.
func (m *Manager) Show(win *Window) {
	if win == nil || win.Visible() {
		return
	}
	win.flags |= FlagVisible
	m.InvalidateWindow(win)
}

// Hide removes a window from the screen without disposing of it.
func (m *Manager) Hide(win *Window) {
	if win == nil || !win.Visible() {
		return
	}
	win.flags &^= FlagVisible
	m.InvalidateWindow(win)
}

// Move places the window's top left corner at the given screen position. The
// frame is kept inside the screen.
func (m *Manager) Move(win *Window, x, y int) {
	if win == nil {
		return
	}

	m.InvalidateWindow(win)

	w := win.Frame.Width()
	h := win.Frame.Height()
	x = min(max(x, 0), ScreenWidth-w)
	y = min(max(y, MenuBarHeight), ScreenHeight-h)

	win.Frame = geom.XYWH(x, y, w, h)
	win.computeRects()
	m.InvalidateWindow(win)
}

// Size resizes the window's frame. Width and height are clamped to the
// minimum window size and to the screen.
func (m *Manager) Size(win *Window, w, h int) {
	if win == nil {
		return
	}

	m.InvalidateWindow(win)

	w = max(w, MinWindowWidth)
	h = max(h, MinWindowHeight)
	w = min(w, ScreenWidth-win.Frame.Left)
	h = min(h, ScreenHeight-win.Frame.Top)

	win.Frame.Right = win.Frame.Left + w
	win.Frame.Bottom = win.Frame.Top + h
	win.computeRects()
	m.InvalidateWindow(win)
}

// SetTitle changes the window title, truncating it if necessary.
func (m *Manager) SetTitle(win *Window, title string) {
	if win == nil {
		return
	}
	win.setTitle(title)
	if !win.TitleBar.Empty() {
		m.InvalidateRect(win.TitleBar)
	}
}

// Desktop returns the current desktop fill pattern.
func (m *Manager) Desktop() DesktopPattern {
	return m.desktop
}

// SetDesktop changes the desktop fill pattern and redraws everything below
// the menu bar.
func (m *Manager) SetDesktop(p DesktopPattern) {
	m.desktop = p
	m.InvalidateRect(geom.Rect{Left: 0, Top: MenuBarHeight,
		Right: ScreenWidth, Bottom: ScreenHeight})
}

func (win *Window) setTitle(title string) {
	if len(title) > TitleMax {
		title = title[:TitleMax]
	}
	win.title = title
}

// linkTop inserts an unlinked window at the top of the stack.
func (m *Manager) linkTop(win *Window) {
	win.above = nil
	win.below = m.top
	if m.top != nil {
		m.top.above = win
	}
	m.top = win
	if m.bottom == nil {
		m.bottom = win
	}
}

// linkBottom inserts an unlinked window at the bottom of the stack.
func (m *Manager) linkBottom(win *Window) {
	win.below = nil
	win.above = m.bottom
	if m.bottom != nil {
		m.bottom.below = win
	}
	m.bottom = win
	if m.top == nil {
		m.top = win
	}
}

// unlink removes a window from the stacking order.
func (m *Manager) unlink(win *Window) {
	if win.above != nil {
		win.above.below = win.below
	} else if m.top == win {
		m.top = win.below
	}
	if win.below != nil {
		win.below.above = win.above
	} else if m.bottom == win {
		m.bottom = win.above
	}
	win.above = nil
	win.below = nil
}
