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

// Package apps bundles the desktop applications launched from the Apps
// menu. Each application owns a document window and hangs its behaviour off
// the window's Draw, Click and Drag callbacks; all pointer positions arrive
// in content coordinates.
package apps
