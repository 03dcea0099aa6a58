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

package megamouse

import "sync"

// Simulated is a Mega Mouse on the other side of the controller Port. The
// GUI event loop feeds it with Move and SetButtons; the Driver polls it
// exactly as it would poll the real device.
//
// Simulated is safe for concurrent use: the feeding goroutine and the
// polling goroutine are different.
type Simulated struct {
	crit sync.Mutex

	plugged bool

	// deltas accumulated since the last report was latched
	dx, dy  int
	buttons uint8

	// the latched report and the transfer position
	report [reportLen]uint8
	idx    int

	// state of the TL line. mirrors the TR phase when plugged
	tl uint8

	// the nibble currently presented on the data lines
	data uint8
}

// NewSimulated is the preferred method of initialisation for the Simulated
// type. The device starts plugged in.
func NewSimulated() *Simulated {
	return &Simulated{plugged: true}
}

// Plug connects or disconnects the device. An unplugged device leaves the
// TL line low, which the driver sees as a handshake timeout.
func (sim *Simulated) Plug(plugged bool) {
	sim.crit.Lock()
	defer sim.crit.Unlock()
	sim.plugged = plugged
	sim.tl = 0
	sim.data = 0
}

// Move accumulates a pointer movement for the next report.
func (sim *Simulated) Move(dx, dy int) {
	sim.crit.Lock()
	defer sim.crit.Unlock()
	sim.dx += dx
	sim.dy += dy
}

// SetButtons sets the current button bitmask (ButtonLeft etc, active high).
func (sim *Simulated) SetButtons(buttons uint8) {
	sim.crit.Lock()
	defer sim.crit.Unlock()
	sim.buttons = buttons
}

// Write implements the Port interface.
func (sim *Simulated) Write(phase uint8) {
	sim.crit.Lock()
	defer sim.crit.Unlock()

	if !sim.plugged {
		return
	}

	if phase == phaseIdle {
		sim.latch()
		sim.idx = 0
		sim.tl = 0x10
		return
	}

	// present the next nibble and answer on TL by mirroring TR
	if sim.idx < reportLen {
		sim.data = sim.report[sim.idx]
		sim.idx++
	} else {
		sim.data = 0
	}
	if phase&phaseHigh == phaseHigh {
		sim.tl = 0x10
	} else {
		sim.tl = 0x00
	}
}

// Read implements the Port interface.
func (sim *Simulated) Read() uint8 {
	sim.crit.Lock()
	defer sim.crit.Unlock()

	if !sim.plugged {
		// lines float low with nothing connected
		return 0x00
	}
	return sim.tl | sim.data&0x0f
}

// latch builds a report from the accumulated movement and clears the
// accumulators.
func (sim *Simulated) latch() {
	dx := sim.dx
	dy := sim.dy
	sim.dx = 0
	sim.dy = 0

	var overflow uint8
	if dx > 255 || dx < -255 {
		overflow |= 0x01
		dx = clampMagnitude(dx)
	}
	if dy > 255 || dy < -255 {
		overflow |= 0x02
		dy = clampMagnitude(dy)
	}

	var sign uint8
	if dx < 0 {
		sign |= 0x01
		dx = -dx
	}
	if dy < 0 {
		sign |= 0x02
		dy = -dy
	}

	sim.report[0] = 0x00 // device id
	sim.report[1] = overflow
	sim.report[2] = sign
	sim.report[3] = ^sim.buttons & 0x0f // active low on the wire
	sim.report[4] = uint8(dx>>4) & 0x0f
	sim.report[5] = uint8(dx) & 0x0f
	sim.report[6] = uint8(dy>>4) & 0x0f
	sim.report[7] = uint8(dy) & 0x0f

	// checksum nibble. the driver ignores it but the real device sends one
	var sum uint8
	for i := 0; i < 8; i++ {
		sum += sim.report[i]
	}
	sim.report[8] = sum & 0x0f
}

func clampMagnitude(v int) int {
	if v < 0 {
		return -255
	}
	return 255
}
