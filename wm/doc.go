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

// Package wm implements the window manager that runs on the Sub CPU. It
// maintains a fixed pool of windows in a doubly linked stacking order, an
// accumulator of dirty screen rectangles, and the hit testing that maps a
// pointer position to a window part.
//
// The manager is purely bookkeeping: it decides what is stacked where and
// what needs redrawing, but never touches pixels itself. Drawing is the
// blitter package's job, hooked in through each window's Draw callback and
// driven by the kernel's render pass.
//
// Windows handed to collaborators are identified by WindowID, which packs
// the pool slot with a generation counter. A disposed slot bumps the
// generation so a stale ID held across a Dispose can never resolve to the
// window that reused the slot.
//
// All methods must be called from the Sub CPU goroutine. The manager has no
// locking of its own.
package wm
