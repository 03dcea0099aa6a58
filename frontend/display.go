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

package frontend

import (
	"crypto/sha1"
	"fmt"
)

// Display is where finished frames end up. Implementations are confined to
// the frontend goroutine.
type Display interface {
	// SetFrame presents a finished frame. pixels is ABGR, four bytes per
	// pixel, w*h*4 bytes long.
	SetFrame(pixels []byte, w, h int) error

	// Service pumps the display's event queue. Returning false ends the
	// frontend loop.
	Service() bool
}

// Headless is a Display that discards pixels but keeps a running SHA1
// fingerprint of everything it has been shown. The use of sha1 is fine
// because this is not a cryptographic task.
//
// The digest is chained: each frame is hashed together with the previous
// digest, so a single differing frame changes the final value.
type Headless struct {
	limit    int
	frameNum int
	digest   [sha1.Size]byte
	buffer   []byte
}

// NewHeadless is the preferred method of initialisation for the Headless
// type. A limit of zero or less means the display never asks to stop.
func NewHeadless(limit int) *Headless {
	return &Headless{limit: limit}
}

// SetFrame implements the Display interface.
func (h *Headless) SetFrame(pixels []byte, _, _ int) error {
	need := sha1.Size + len(pixels)
	if cap(h.buffer) < need {
		h.buffer = make([]byte, need)
	}
	h.buffer = h.buffer[:need]

	copy(h.buffer, h.digest[:])
	copy(h.buffer[sha1.Size:], pixels)
	h.digest = sha1.Sum(h.buffer)
	h.frameNum++

	return nil
}

// Service implements the Display interface.
func (h *Headless) Service() bool {
	return h.limit <= 0 || h.frameNum < h.limit
}

// FrameCount returns the number of frames shown so far.
func (h *Headless) FrameCount() int {
	return h.frameNum
}

func (h *Headless) String() string {
	return fmt.Sprintf("%x", h.digest)
}
