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

// Notepad layout.
const (
	notepadMargin   = 4
	notepadMaxChars = 1024
)

// Notepad is a plain text viewer with a caret. Text wraps at the content
// edge; Insert edits at the caret and a click moves it.
type Notepad struct {
	mgr *wm.Manager
	blt *blitter.Blitter
	win *wm.Window

	text  []byte
	caret int
}

// OpenNotepad creates the notepad window. Returns nil when the window pool
// is exhausted.
func OpenNotepad(mgr *wm.Manager, blt *blitter.Blitter) *Notepad {
	win := mgr.NewWindow(geom.Rect{Left: 10, Top: 24, Right: 240, Bottom: 120},
		"Notepad", wm.StyleDocument, wm.FlagVisible|wm.FlagHasGrow)
	if win == nil {
		return nil
	}

	n := &Notepad{
		mgr:  mgr,
		blt:  blt,
		win:  win,
		text: make([]byte, 0, notepadMaxChars),
	}
	win.Draw = n.draw
	win.Click = n.click
	return n
}

// Window returns the notepad's window.
func (n *Notepad) Window() *wm.Window {
	return n.win
}

// Text returns the current buffer contents.
func (n *Notepad) Text() string {
	return string(n.text)
}

// Caret returns the caret position in the buffer.
func (n *Notepad) Caret() int {
	return n.caret
}

// Insert edits the buffer at the caret. Backspace ('\b') deletes the
// character before the caret; anything else is inserted. Input beyond the
// buffer capacity is dropped.
func (n *Notepad) Insert(ch byte) {
	if ch == '\b' {
		if n.caret > 0 {
			n.caret--
			n.text = append(n.text[:n.caret], n.text[n.caret+1:]...)
		}
	} else if len(n.text) < notepadMaxChars {
		n.text = append(n.text, 0)
		copy(n.text[n.caret+1:], n.text[n.caret:])
		n.text[n.caret] = ch
		n.caret++
	}
	n.mgr.InvalidateWindow(n.win)
}

// glyphW is the fixed advance of the system font.
var glyphW = blitter.StringWidth("0")

func (n *Notepad) charsPerLine() int {
	return max(1, (n.win.Content.Width()-notepadMargin*2)/glyphW)
}

func (n *Notepad) lineHeight() int {
	return blitter.FontHeight + 1
}

func (n *Notepad) draw(win *wm.Window) {
	cx := win.Content.Left + notepadMargin
	cy := win.Content.Top + notepadMargin
	maxY := win.Content.Bottom - notepadMargin
	cpl := n.charsPerLine()
	lineH := n.lineHeight()

	lineY := cy
	col := 0
	for i := 0; i <= len(n.text); i++ {
		if i == n.caret && lineY+lineH <= maxY {
			n.blt.VLine(cx+col*glyphW, lineY, lineH-2, blitter.Black)
		}
		if i == len(n.text) {
			break
		}

		ch := n.text[i]
		if ch == '\n' {
			col = 0
			lineY += lineH
			if lineY > maxY {
				break
			}
			continue
		}

		if col >= cpl {
			col = 0
			lineY += lineH
			if lineY > maxY {
				break
			}
		}

		if lineY+lineH <= maxY {
			n.blt.DrawString(cx+col*glyphW, lineY, string(ch), blitter.Black)
		}
		col++
	}
}

// click moves the caret to the character nearest the click.
func (n *Notepad) click(win *wm.Window, pt geom.Point) {
	cpl := n.charsPerLine()
	lineH := n.lineHeight()

	clickRow := max(0, (pt.Y-notepadMargin)/lineH)
	clickCol := max(0, (pt.X-notepadMargin)/glyphW)

	row := 0
	col := 0
	for i := 0; i < len(n.text); i++ {
		if row == clickRow && col >= clickCol {
			n.caret = i
			n.mgr.InvalidateWindow(win)
			return
		}

		if n.text[i] == '\n' {
			if row == clickRow {
				n.caret = i
				n.mgr.InvalidateWindow(win)
				return
			}
			row++
			col = 0
		} else {
			col++
			if col >= cpl {
				if row == clickRow {
					n.caret = i + 1
					n.mgr.InvalidateWindow(win)
					return
				}
				row++
				col = 0
			}
		}
	}

	n.caret = len(n.text)
	n.mgr.InvalidateWindow(win)
}
