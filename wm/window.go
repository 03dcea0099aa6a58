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

// Screen and chrome metrics. All in pixels.
const (
	ScreenWidth  = 320
	ScreenHeight = 224

	MenuBarHeight  = 20
	BorderWidth    = 1
	TitleBarHeight = 18
	SeparatorWidth = 1
	CloseBoxSize   = 12
	GrowBoxSize    = 12

	// minimum content size a window can be resized down to
	MinWindowWidth  = 64
	MinWindowHeight = 48

	// longest title in bytes. longer titles are truncated on assignment
	TitleMax = 31
)

// MaxWindows is the size of the window pool. NewWindow returns nil once the
// pool is exhausted.
const MaxWindows = 16

// Style selects the chrome a window is drawn with.
type Style int

// List of valid Style values.
const (
	StyleDocument Style = iota
	StyleDialog
	StylePlain
	StyleShadow
	StyleAlert
)

func (s Style) String() string {
	switch s {
	case StyleDocument:
		return "document"
	case StyleDialog:
		return "dialog"
	case StylePlain:
		return "plain"
	case StyleShadow:
		return "shadow"
	case StyleAlert:
		return "alert"
	}
	return fmt.Sprintf("style %d", int(s))
}

// Flags are the per-window state bits.
type Flags uint8

// List of Flags values.
const (
	FlagVisible  Flags = 0x01
	FlagHilited  Flags = 0x02
	FlagHasClose Flags = 0x04
	FlagHasGrow  Flags = 0x08
	FlagModal    Flags = 0x10
)

// WindowID identifies a window across the wire and across its lifetime. The
// low byte is the pool slot, the high byte a generation counter bumped every
// time the slot is recycled.
type WindowID uint16

// NilWindowID never resolves to a window.
const NilWindowID WindowID = 0xffff

func windowID(slot int, generation uint8) WindowID {
	return WindowID(generation)<<8 | WindowID(slot)
}

// Slot returns the pool slot the ID refers to.
func (id WindowID) Slot() int {
	return int(id & 0xff)
}

// Generation returns the generation the ID was minted with.
func (id WindowID) Generation() uint8 {
	return uint8(id >> 8)
}

func (id WindowID) String() string {
	return fmt.Sprintf("window %d.%d", id.Slot(), id.Generation())
}

// Window is one entry in the manager's pool. Collaborators receive *Window
// from the manager and must not retain it past a Dispose; retain the
// WindowID instead and re-resolve with Lookup.
type Window struct {
	id    WindowID
	style Style
	flags Flags
	title string

	// Frame is the outer rectangle including all chrome. Content is the
	// client area. TitleBar is empty for styles without one. All in screen
	// coordinates.
	Frame    geom.Rect
	Content  geom.Rect
	TitleBar geom.Rect

	// stacking order links. above points towards the top of the stack
	above *Window
	below *Window

	// Draw paints the content area. Click and Drag receive the pointer
	// position in content coordinates. Any of the three may be nil.
	Draw  func(*Window)
	Click func(*Window, geom.Point)
	Drag  func(*Window, geom.Point)

	// scratch rectangles reserved for the window's owner. the manager never
	// reads or writes these
	OwnerRects [4]geom.Rect
}

// ID returns the window's pool identity.
func (win *Window) ID() WindowID {
	return win.id
}

// Style returns the chrome style the window was created with.
func (win *Window) Style() Style {
	return win.style
}

// Flags returns the current state bits.
func (win *Window) Flags() Flags {
	return win.flags
}

// Title returns the current title.
func (win *Window) Title() string {
	return win.title
}

// Visible is true when the window is shown.
func (win *Window) Visible() bool {
	return win.flags&FlagVisible == FlagVisible
}

// Highlighted is true when the window is the active window.
func (win *Window) Highlighted() bool {
	return win.flags&FlagHilited == FlagHilited
}

// Modal is true for dialog and alert style windows.
func (win *Window) Modal() bool {
	return win.flags&FlagModal == FlagModal
}

// Above returns the window immediately above this one, or nil at the top.
func (win *Window) Above() *Window {
	return win.above
}

// Below returns the window immediately below this one, or nil at the bottom.
func (win *Window) Below() *Window {
	return win.below
}

// CloseBox returns the close box rectangle. Empty if the window has no close
// box.
func (win *Window) CloseBox() geom.Rect {
	if win.flags&FlagHasClose != FlagHasClose || win.TitleBar.Empty() {
		return geom.Rect{}
	}
	return geom.XYWH(win.TitleBar.Left+4, win.TitleBar.Top+3, CloseBoxSize, CloseBoxSize)
}

// GrowBox returns the grow box rectangle in the bottom right corner of the
// frame. Empty if the window cannot be resized.
func (win *Window) GrowBox() geom.Rect {
	if win.flags&FlagHasGrow != FlagHasGrow {
		return geom.Rect{}
	}
	return geom.XYWH(win.Frame.Right-GrowBoxSize-1, win.Frame.Bottom-GrowBoxSize-1,
		GrowBoxSize, GrowBoxSize)
}

// computeRects derives Content and TitleBar from Frame according to the
// window style.
func (win *Window) computeRects() {
	switch win.style {
	case StyleDocument, StyleDialog, StyleAlert:
		win.TitleBar = geom.Rect{
			Left:   win.Frame.Left + BorderWidth,
			Top:    win.Frame.Top + BorderWidth,
			Right:  win.Frame.Right - BorderWidth,
			Bottom: win.Frame.Top + BorderWidth + TitleBarHeight,
		}
		win.Content = geom.Rect{
			Left:   win.Frame.Left + BorderWidth,
			Top:    win.TitleBar.Bottom + SeparatorWidth,
			Right:  win.Frame.Right - BorderWidth,
			Bottom: win.Frame.Bottom - BorderWidth,
		}
	default:
		win.TitleBar = geom.Rect{}
		win.Content = geom.Rect{
			Left:   win.Frame.Left + BorderWidth,
			Top:    win.Frame.Top + BorderWidth,
			Right:  win.Frame.Right - BorderWidth,
			Bottom: win.Frame.Bottom - BorderWidth,
		}
	}
}
