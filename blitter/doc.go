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

// Package blitter is the software rasterizer used by the Sub CPU. It draws
// into a Word RAM bank surface: 320x224 pixels, one byte per pixel, holding
// a 4-shade grayscale index.
//
// All drawing is clipped against the current clip rectangle. The render loop
// narrows the clip to each dirty rectangle in turn so a partial redraw only
// touches the pixels it has to.
//
// Text is rendered with the basicfont face from golang.org/x/image, which
// stands in for the ROM system font.
package blitter
