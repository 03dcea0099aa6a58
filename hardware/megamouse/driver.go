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

// Port is the controller-port side of the nibble handshake. Write sets the
// TH/TR lines (the phase); Read returns the current state of the TL line
// (bit 4) and the data lines (bits 0-3).
type Port interface {
	Write(phase uint8)
	Read() uint8
}

// phase values written to the port. idle has both TH and TR high; during a
// transfer TR alternates between high and low, with TH held low.
const (
	phaseIdle = 0x60
	phaseHigh = 0x20
	phaseLow  = 0x00
)

// retryBudget is the number of times the TL line is sampled before the
// transfer is abandoned and the mouse reported disconnected.
const retryBudget = 4000

// number of nibbles in a Mega Mouse report.
const reportLen = 9

// Button bit values as reported in State.Buttons.
const (
	ButtonLeft   = 0x01
	ButtonRight  = 0x02
	ButtonMiddle = 0x04
	ButtonStart  = 0x08
)

// State is the decoded mouse state after a Poll.
type State struct {
	X, Y    int
	DX, DY  int
	Buttons uint8

	// buttons as they were on the previous poll. for edge detection
	PrevButtons uint8

	Connected bool

	// either axis moved too fast for the hardware counter
	Overflow bool
}

// Driver polls a Mega Mouse through a controller Port and accumulates the
// absolute pointer position.
type Driver struct {
	port Port

	state  State
	bounds struct {
		minX, minY int
		maxX, maxY int
	}
}

// NewDriver is the preferred method of initialisation for the Driver type.
// The pointer starts at the centre of the 320x224 screen.
func NewDriver(port Port) *Driver {
	dr := &Driver{port: port}
	dr.state.X = 160
	dr.state.Y = 112
	dr.SetBounds(0, 0, 319, 223)
	dr.port.Write(phaseIdle)
	return dr
}

// SetBounds limits the absolute pointer position. The current position is
// re-clamped.
func (dr *Driver) SetBounds(minX, minY, maxX, maxY int) {
	dr.bounds.minX = minX
	dr.bounds.minY = minY
	dr.bounds.maxX = maxX
	dr.bounds.maxY = maxY
	dr.clamp()
}

// SetPosition warps the pointer.
func (dr *Driver) SetPosition(x, y int) {
	dr.state.X = x
	dr.state.Y = y
	dr.clamp()
}

// State returns a copy of the decoded mouse state.
func (dr *Driver) State() State {
	return dr.state
}

// ButtonPressed is true if the button went down on the most recent poll.
func (dr *Driver) ButtonPressed(btn uint8) bool {
	return dr.state.Buttons&btn != 0 && dr.state.PrevButtons&btn == 0
}

// ButtonReleased is true if the button went up on the most recent poll.
func (dr *Driver) ButtonReleased(btn uint8) bool {
	return dr.state.Buttons&btn == 0 && dr.state.PrevButtons&btn != 0
}

// Poll reads one report from the mouse and updates the state. Returns true
// if a mouse is connected and the report was read in full.
func (dr *Driver) Poll() bool {
	dr.state.PrevButtons = dr.state.Buttons
	dr.state.DX = 0
	dr.state.DY = 0
	dr.state.Overflow = false

	// request a report
	dr.port.Write(phaseIdle)

	var report [reportLen]uint8

	phase := uint8(phaseHigh)
	for i := 0; i < reportLen; i++ {
		nib, ok := dr.readNibble(phase)
		if !ok {
			// timeout: mouse not responding
			dr.state.Connected = false
			dr.port.Write(phaseIdle)
			return false
		}
		report[i] = nib
		phase ^= phaseHigh
	}

	// end transfer
	dr.port.Write(phaseIdle)

	// nibble 0 is the device id. anything but zero is not a Mega Mouse
	if report[0] != 0x00 {
		dr.state.Connected = false
		return false
	}
	dr.state.Connected = true

	overflow := report[1]
	dr.state.Overflow = overflow&0x03 != 0

	negX := report[2]&0x01 == 0x01
	negY := report[2]&0x02 == 0x02

	// the hardware reports buttons active-low
	dr.state.Buttons = ^report[3] & 0x0f

	rawX := int(report[4])<<4 | int(report[5])
	rawY := int(report[6])<<4 | int(report[7])
	if negX {
		rawX = -rawX
	}
	if negY {
		rawY = -rawY
	}

	// clamp overflowed axes to the counter limit
	if overflow&0x01 == 0x01 {
		rawX = 255
		if negX {
			rawX = -255
		}
	}
	if overflow&0x02 == 0x02 {
		rawY = 255
		if negY {
			rawY = -255
		}
	}

	// nibble 8 is the checksum. the transfer is already complete so there is
	// nothing useful to do with it

	dr.state.DX = rawX
	dr.state.DY = rawY
	dr.state.X += rawX
	dr.state.Y += rawY
	dr.clamp()

	return true
}

// readNibble performs one phase of the handshake: toggle TR, wait for the
// mouse to answer on TL, read the data lines.
func (dr *Driver) readNibble(phase uint8) (uint8, bool) {
	tlExpect := uint8(0x00)
	if phase&phaseHigh == phaseHigh {
		tlExpect = 0x10
	}

	dr.port.Write(phase)

	for i := 0; i < retryBudget; i++ {
		if v := dr.port.Read(); v&0x10 == tlExpect {
			return v & 0x0f, true
		}
	}
	return 0, false
}

func (dr *Driver) clamp() {
	if dr.state.X < dr.bounds.minX {
		dr.state.X = dr.bounds.minX
	}
	if dr.state.X > dr.bounds.maxX {
		dr.state.X = dr.bounds.maxX
	}
	if dr.state.Y < dr.bounds.minY {
		dr.state.Y = dr.bounds.minY
	}
	if dr.state.Y > dr.bounds.maxY {
		dr.state.Y = dr.bounds.maxY
	}
}
