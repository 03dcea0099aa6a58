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

package wm_test

import (
	"testing"

	"github.com/Project12x/segaos/geom"
	"github.com/Project12x/segaos/test"
	"github.com/Project12x/segaos/wm"
)

func newWindow(m *wm.Manager, x, y int, title string) *wm.Window {
	return m.NewWindow(geom.XYWH(x, y, 120, 90), title, wm.StyleDocument, wm.FlagVisible)
}

// walk the stack both ways and check the links agree.
func checkOrder(t *testing.T, m *wm.Manager, want []*wm.Window) {
	t.Helper()

	win := m.Top()
	for i := 0; i < len(want); i++ {
		test.ExpectEquality(t, win, want[i])
		win = win.Below()
	}
	test.ExpectSuccess(t, win == nil)

	win = m.Bottom()
	for i := len(want) - 1; i >= 0; i-- {
		test.ExpectEquality(t, win, want[i])
		win = win.Above()
	}
	test.ExpectSuccess(t, win == nil)
}

func TestStackingOrder(t *testing.T) {
	m := wm.NewManager()

	a := newWindow(m, 10, 30, "a")
	b := newWindow(m, 20, 40, "b")
	c := newWindow(m, 30, 50, "c")
	checkOrder(t, m, []*wm.Window{c, b, a})
	test.ExpectEquality(t, m.Active(), c)
	test.ExpectSuccess(t, c.Highlighted())
	test.ExpectFailure(t, b.Highlighted())

	m.Select(a)
	checkOrder(t, m, []*wm.Window{a, c, b})
	test.ExpectEquality(t, m.Active(), a)
	test.ExpectFailure(t, c.Highlighted())

	m.SendToBack(a)
	checkOrder(t, m, []*wm.Window{c, b, a})

	m.Dispose(b)
	checkOrder(t, m, []*wm.Window{c, a})
}

func TestDisposeActive(t *testing.T) {
	m := wm.NewManager()

	a := newWindow(m, 10, 30, "a")
	b := newWindow(m, 20, 40, "b")

	m.Dispose(b)
	test.ExpectEquality(t, m.Active(), a)
	test.ExpectSuccess(t, a.Highlighted())

	m.Dispose(a)
	test.ExpectSuccess(t, m.Active() == nil)
	test.ExpectEquality(t, m.WindowCount(), 0)
}

func TestPoolExhaustion(t *testing.T) {
	m := wm.NewManager()

	for i := 0; i < wm.MaxWindows; i++ {
		test.ExpectSuccess(t, newWindow(m, 10, 30, "w") != nil)
	}
	test.ExpectEquality(t, m.WindowCount(), wm.MaxWindows)

	// pool exhausted
	test.ExpectSuccess(t, newWindow(m, 10, 30, "overflow") == nil)
}

func TestStaleWindowID(t *testing.T) {
	m := wm.NewManager()

	a := newWindow(m, 10, 30, "a")
	id := a.ID()

	win, err := m.Lookup(id)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, win, a)

	m.Dispose(a)
	_, err = m.Lookup(id)
	test.ExpectFailure(t, err)

	// the recycled slot carries a new generation, so the old ID still fails
	b := newWindow(m, 10, 30, "b")
	test.ExpectEquality(t, b.ID().Slot(), id.Slot())
	test.ExpectInequality(t, b.ID(), id)
	_, err = m.Lookup(id)
	test.ExpectFailure(t, err)

	_, err = m.Lookup(wm.NilWindowID)
	test.ExpectFailure(t, err)
}

func TestDirtyAccumulator(t *testing.T) {
	m := wm.NewManager()
	m.EndUpdate()

	// disjoint rectangles stay separate. invalidating the same region again
	// adds nothing
	m.InvalidateRect(geom.XYWH(10, 30, 20, 20))
	m.InvalidateRect(geom.XYWH(100, 30, 20, 20))
	m.InvalidateRect(geom.XYWH(10, 30, 20, 20))
	test.ExpectEquality(t, m.BeginUpdate(), 2)
	m.EndUpdate()

	// a rectangle spanning both absorbs them into one entry
	m.InvalidateRect(geom.XYWH(10, 30, 20, 20))
	m.InvalidateRect(geom.XYWH(100, 30, 20, 20))
	m.InvalidateRect(geom.XYWH(10, 30, 120, 20))
	test.ExpectEquality(t, m.BeginUpdate(), 1)

	r, ok := m.DirtyRect(0)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, r, geom.XYWH(10, 30, 120, 20))
	m.EndUpdate()

	// offscreen rectangles are discarded
	m.InvalidateRect(geom.XYWH(400, 30, 20, 20))
	test.ExpectEquality(t, m.BeginUpdate(), 0)
	m.EndUpdate()
}

func TestDirtyOverflow(t *testing.T) {
	m := wm.NewManager()
	m.EndUpdate()

	// 1x1 rectangles spaced so none of them touch, plus one more. the
	// overflow folds into the first entry rather than being lost
	for i := 0; i < wm.MaxDirtyRects; i++ {
		m.InvalidateRect(geom.XYWH((i%32)*10, 30+(i/32)*10, 1, 1))
	}
	m.InvalidateRect(geom.XYWH(5, 100, 1, 1))
	test.ExpectEquality(t, m.BeginUpdate(), wm.MaxDirtyRects)
	m.EndUpdate()
}

func TestInvalidateDuringUpdate(t *testing.T) {
	m := wm.NewManager()
	m.EndUpdate()

	m.InvalidateRect(geom.XYWH(10, 30, 20, 20))
	m.InvalidateRect(geom.XYWH(100, 30, 20, 20))
	test.ExpectEquality(t, m.BeginUpdate(), 2)

	// a rectangle invalidated mid-pass is discarded with the pass. it must
	// not merge with, reorder or shrink the entries the caller is indexing
	before0, _ := m.DirtyRect(0)
	before1, _ := m.DirtyRect(1)
	m.InvalidateRect(geom.XYWH(5, 25, 200, 30))

	after0, _ := m.DirtyRect(0)
	after1, _ := m.DirtyRect(1)
	test.ExpectEquality(t, after0, before0)
	test.ExpectEquality(t, after1, before1)

	m.EndUpdate()
	test.ExpectEquality(t, m.BeginUpdate(), 0)
	m.EndUpdate()
}

func TestHitTest(t *testing.T) {
	m := wm.NewManager()

	// frame (10,30)-(130,120). title bar (11,31)-(129,49), close box at
	// (15,34), grow box in the corner at (117,107)
	a := newWindow(m, 10, 30, "a")

	part, win := m.FindWindow(geom.Point{X: 150, Y: 10})
	test.ExpectEquality(t, part, wm.PartMenuBar)
	test.ExpectSuccess(t, win == nil)

	part, win = m.FindWindow(geom.Point{X: 300, Y: 200})
	test.ExpectEquality(t, part, wm.PartDesktop)
	test.ExpectSuccess(t, win == nil)

	part, win = m.FindWindow(geom.Point{X: 20, Y: 40})
	test.ExpectEquality(t, part, wm.PartClose)
	test.ExpectEquality(t, win, a)

	part, _ = m.FindWindow(geom.Point{X: 60, Y: 40})
	test.ExpectEquality(t, part, wm.PartDrag)

	part, _ = m.FindWindow(geom.Point{X: 60, Y: 80})
	test.ExpectEquality(t, part, wm.PartContent)

	// the one pixel border is a drag handle
	part, _ = m.FindWindow(geom.Point{X: 10, Y: 80})
	test.ExpectEquality(t, part, wm.PartDrag)
}

func TestHitTestGrow(t *testing.T) {
	m := wm.NewManager()

	a := m.NewWindow(geom.XYWH(10, 30, 120, 90), "a", wm.StyleDocument,
		wm.FlagVisible|wm.FlagHasGrow)

	part, win := m.FindWindow(geom.Point{X: 120, Y: 110})
	test.ExpectEquality(t, part, wm.PartGrow)
	test.ExpectEquality(t, win, a)

	// without the grow flag the same corner is content
	b := m.NewWindow(geom.XYWH(10, 30, 120, 90), "b", wm.StyleDocument, wm.FlagVisible)
	part, win = m.FindWindow(geom.Point{X: 120, Y: 110})
	test.ExpectEquality(t, part, wm.PartContent)
	test.ExpectEquality(t, win, b)
}

func TestHitTestStacking(t *testing.T) {
	m := wm.NewManager()

	a := newWindow(m, 10, 30, "a")
	b := newWindow(m, 60, 60, "b")

	// the overlap belongs to the window in front
	part, win := m.FindWindow(geom.Point{X: 100, Y: 100})
	test.ExpectEquality(t, part, wm.PartContent)
	test.ExpectEquality(t, win, b)

	m.Select(a)
	part, win = m.FindWindow(geom.Point{X: 100, Y: 100})
	test.ExpectEquality(t, part, wm.PartContent)
	test.ExpectEquality(t, win, a)

	// hidden windows are transparent to hit testing
	m.Hide(a)
	_, win = m.FindWindow(geom.Point{X: 100, Y: 100})
	test.ExpectEquality(t, win, b)
}

func TestMoveAndSizeClamp(t *testing.T) {
	m := wm.NewManager()
	a := newWindow(m, 10, 30, "a")

	// a window cannot be dragged over the menu bar or off screen
	m.Move(a, -50, 0)
	test.ExpectEquality(t, a.Frame.Left, 0)
	test.ExpectEquality(t, a.Frame.Top, wm.MenuBarHeight)

	m.Move(a, 1000, 1000)
	test.ExpectEquality(t, a.Frame.Right, wm.ScreenWidth)
	test.ExpectEquality(t, a.Frame.Bottom, wm.ScreenHeight)

	m.Size(a, 10, 10)
	test.ExpectEquality(t, a.Frame.Width(), wm.MinWindowWidth)
	test.ExpectEquality(t, a.Frame.Height(), wm.MinWindowHeight)

	// content tracks the frame
	test.ExpectEquality(t, a.Content.Right, a.Frame.Right-wm.BorderWidth)
}

func TestTitleTruncation(t *testing.T) {
	m := wm.NewManager()
	a := newWindow(m, 10, 30, "a")

	long := "this title is much too long to fit in a title bar record"
	m.SetTitle(a, long)
	test.ExpectEquality(t, len(a.Title()), wm.TitleMax)
	test.ExpectEquality(t, a.Title(), long[:wm.TitleMax])
}

func TestStyleChrome(t *testing.T) {
	m := wm.NewManager()

	doc := m.NewWindow(geom.XYWH(10, 30, 120, 90), "doc", wm.StyleDocument, wm.FlagVisible)
	test.ExpectFailure(t, doc.TitleBar.Empty())
	test.ExpectFailure(t, doc.CloseBox().Empty())
	test.ExpectFailure(t, doc.Modal())

	plain := m.NewWindow(geom.XYWH(10, 30, 120, 90), "plain", wm.StylePlain, wm.FlagVisible)
	test.ExpectSuccess(t, plain.TitleBar.Empty())
	test.ExpectSuccess(t, plain.CloseBox().Empty())

	dlg := m.NewWindow(geom.XYWH(10, 30, 120, 90), "dlg", wm.StyleDialog, wm.FlagVisible)
	test.ExpectSuccess(t, dlg.Modal())
}

func TestHiddenCreation(t *testing.T) {
	m := wm.NewManager()
	a := newWindow(m, 10, 30, "a")
	m.EndUpdate()

	// a window created without FlagVisible starts hidden and does not take
	// active status from the window that has it
	b := m.NewWindow(geom.XYWH(10, 30, 120, 90), "b", wm.StyleDocument, 0)
	test.ExpectFailure(t, b.Visible())
	test.ExpectFailure(t, b.Highlighted())
	test.ExpectEquality(t, m.Active(), a)
	test.ExpectSuccess(t, a.Highlighted())

	// it joins the stack at the top but dirties nothing
	test.ExpectEquality(t, m.Top(), b)
	test.ExpectEquality(t, m.BeginUpdate(), 0)
	m.EndUpdate()

	// and is transparent to hit testing until shown
	_, win := m.FindWindow(geom.Point{X: 60, Y: 80})
	test.ExpectEquality(t, win, a)

	m.Show(b)
	test.ExpectSuccess(t, b.Visible())
	test.ExpectEquality(t, m.BeginUpdate(), 1)
	m.EndUpdate()

	_, win = m.FindWindow(geom.Point{X: 60, Y: 80})
	test.ExpectEquality(t, win, b)
}

func TestCreationClamp(t *testing.T) {
	m := wm.NewManager()

	// creation obeys the same screen limits as Move
	a := m.NewWindow(geom.XYWH(-50, 0, 120, 90), "a", wm.StyleDocument, wm.FlagVisible)
	test.ExpectEquality(t, a.Frame.Left, 0)
	test.ExpectEquality(t, a.Frame.Top, wm.MenuBarHeight)
	test.ExpectEquality(t, a.Frame.Width(), 120)
	test.ExpectEquality(t, a.Frame.Height(), 90)

	b := m.NewWindow(geom.XYWH(280, 200, 120, 90), "b", wm.StyleDocument, wm.FlagVisible)
	test.ExpectEquality(t, b.Frame.Right, wm.ScreenWidth)
	test.ExpectEquality(t, b.Frame.Bottom, wm.ScreenHeight)

	// a frame larger than the screen is cut down to fit below the menu bar
	c := m.NewWindow(geom.XYWH(0, 0, 1000, 1000), "c", wm.StyleDocument, wm.FlagVisible)
	test.ExpectEquality(t, c.Frame, geom.Rect{Left: 0, Top: wm.MenuBarHeight,
		Right: wm.ScreenWidth, Bottom: wm.ScreenHeight})

	// content tracks the clamped frame
	test.ExpectEquality(t, c.Content.Right, c.Frame.Right-wm.BorderWidth)
}
