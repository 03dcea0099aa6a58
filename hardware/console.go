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

// Package hardware gathers the emulated components of the console: the Gate
// Array the two CPUs talk through, the Word RAM banks they exchange, and the
// Mega Mouse on the controller port.
package hardware

import (
	"github.com/Project12x/segaos/hardware/gatearray"
	"github.com/Project12x/segaos/hardware/megamouse"
	"github.com/Project12x/segaos/hardware/wordram"
	"github.com/Project12x/segaos/logger"
)

// Console is the assembled machine. The two CPUs are not part of the
// console; they are the kernel and frontend programs, which attach to the
// console's ports.
type Console struct {
	GateArray *gatearray.GateArray
	WordRAM   *wordram.WordRAM

	// the simulated mouse, the controller port it is plugged into, and the
	// driver that polls it
	Mouse       *megamouse.Simulated
	MousePort   int
	MouseDriver *megamouse.Driver
}

// NewConsole is the preferred method of initialisation for the Console type.
// The mouse is plugged into the given controller port (1 or 2).
func NewConsole(mousePort int) *Console {
	con := &Console{
		GateArray: gatearray.NewGateArray(),
		WordRAM:   wordram.NewWordRAM(),
		Mouse:     megamouse.NewSimulated(),
		MousePort: mousePort,
	}
	con.MouseDriver = megamouse.NewDriver(con.Mouse)
	logger.Logf("console", "mega mouse on controller port %d", mousePort)
	return con
}

// PowerOff wakes every goroutine blocked on console hardware with a
// terminal error, unwinding both processors.
func (con *Console) PowerOff() {
	con.GateArray.Quit()
	con.WordRAM.Quit()
}
