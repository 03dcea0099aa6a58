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

import "github.com/Project12x/segaos/geom"

// MaxDirtyRects is the capacity of the dirty rectangle accumulator. Once
// full, further rectangles are folded into the first entry.
const MaxDirtyRects = 32

type dirtyList struct {
	rects [MaxDirtyRects]geom.Rect
	count int

	// set between BeginUpdate and EndUpdate. the entries are indexed by the
	// update pass while set, so they must not move
	updating bool
}

// add accumulates a dirty rectangle. A rectangle intersecting existing
// entries absorbs them into a single bounding union, so no two entries ever
// intersect. Rectangles added during an update pass are discarded.
func (d *dirtyList) add(r geom.Rect) {
	if d.updating {
		return
	}

	r = r.ClipTo(geom.Rect{Right: ScreenWidth, Bottom: ScreenHeight})
	if r.Empty() {
		return
	}

	// absorbing an entry can bring the grown rectangle into contact with
	// entries already passed over, so restart the scan after each absorption
	for {
		absorbed := false
		for i := 0; i < d.count; i++ {
			if r.Intersects(d.rects[i]) {
				r = r.Union(d.rects[i])
				d.rects[i] = d.rects[d.count-1]
				d.count--
				absorbed = true
				break
			}
		}
		if !absorbed {
			break
		}
	}

	if d.count == MaxDirtyRects {
		d.rects[0] = d.rects[0].Union(r)
		return
	}
	d.rects[d.count] = r
	d.count++
}

func (d *dirtyList) clear() {
	d.count = 0
	d.updating = false
}

// InvalidateRect marks a screen rectangle as needing redraw.
func (m *Manager) InvalidateRect(r geom.Rect) {
	m.dirty.add(r)
}

// InvalidateWindow marks the window's whole frame as needing redraw.
func (m *Manager) InvalidateWindow(win *Window) {
	if win == nil {
		return
	}
	m.dirty.add(win.Frame)
}

// BeginUpdate opens an update pass and returns the number of dirty
// rectangles accumulated since the last EndUpdate. Rectangles invalidated
// between BeginUpdate and EndUpdate are not part of this update pass and are
// discarded along with it.
func (m *Manager) BeginUpdate() int {
	m.dirty.updating = true
	return m.dirty.count
}

// DirtyRect returns the i'th dirty rectangle of the current update pass.
func (m *Manager) DirtyRect(i int) (geom.Rect, bool) {
	if i < 0 || i >= m.dirty.count {
		return geom.Rect{}, false
	}
	return m.dirty.rects[i], true
}

// EndUpdate discards all accumulated dirty rectangles.
func (m *Manager) EndUpdate() {
	m.dirty.clear()
}
