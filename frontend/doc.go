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

// Package frontend is the program that runs on the Main CPU. It owns the
// display and the mouse, and drives the Sub CPU kernel over the Gate Array
// channel: one mouse event or render command at a time, never overlapping.
//
// Every display interval the frontend polls the mouse, forwards any activity
// as a MouseEvent command, then issues RenderFrame and waits. When the render
// completes the Word RAM banks have been exchanged and the frontend converts
// its side's bank through the four shade palette into ABGR pixels for the
// Display.
//
// The Display implementation is confined to the frontend goroutine. The
// Headless display satisfies the interface without any video hardware and
// fingerprints each frame, in the manner of a regression digest.
package frontend
