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

package gatearray

// MouseEventType is carried in the high byte of the third CMD register of a
// CmdMouseEvent command.
type MouseEventType uint8

// List of MouseEventType values.
const (
	MouseMove MouseEventType = 1
	MouseDown MouseEventType = 2
	MouseUp   MouseEventType = 3
	MouseDrag MouseEventType = 4
)

func (t MouseEventType) String() string {
	switch t {
	case MouseMove:
		return "move"
	case MouseDown:
		return "down"
	case MouseUp:
		return "up"
	case MouseDrag:
		return "drag"
	}
	return "unknown"
}

// MouseEvent is the payload of a CmdMouseEvent command: pointer position,
// event type, button bitmask and the horizontal delta.
type MouseEvent struct {
	X, Y    int
	Type    MouseEventType
	Buttons uint8
	DX      int
}

// Params packs the event into the four CMD register values.
func (ev MouseEvent) Params() (uint16, uint16, uint16, uint16) {
	return uint16(int16(ev.X)), uint16(int16(ev.Y)),
		uint16(ev.Type)<<8 | uint16(ev.Buttons), uint16(int16(ev.DX))
}

// DecodeMouseEvent unpacks the four CMD register values of a CmdMouseEvent.
func DecodeMouseEvent(p0, p1, p2, p3 uint16) MouseEvent {
	return MouseEvent{
		X:       int(int16(p0)),
		Y:       int(int16(p1)),
		Type:    MouseEventType(p2 >> 8),
		Buttons: uint8(p2),
		DX:      int(int16(p3)),
	}
}
