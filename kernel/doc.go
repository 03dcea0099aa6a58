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

// Package kernel is the operating system that runs on the Sub CPU: the
// command dispatcher, the desktop (window manager, menu bar, cursor) and the
// frame renderer.
//
// The kernel owns one side of the Gate Array channel and exactly one Word
// RAM bank at any time. Run executes the boot sequence and then the command
// loop; every command is acknowledged, dispatched and completed (or failed)
// in strict alternation with the Main CPU. Run is the only kernel goroutine;
// none of the desktop state is shared.
//
// A render command paints only the accumulated dirty rectangles, walking the
// window stack bottom to top within each (painter's algorithm), then draws
// the menu bar, any open dropdown and the cursor over the lot, and finally
// returns the finished bank to the Main CPU.
package kernel
