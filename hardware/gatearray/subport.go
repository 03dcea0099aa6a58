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

import (
	"github.com/Project12x/segaos/curated"
)

// SubPort is the Sub CPU's side of the communication channel. It may only be
// used from a single goroutine, the back processor.
type SubPort struct {
	ga *GateArray
}

// WaitCommand blocks until the Main CPU raises an opcode in the CFM flag
// byte. The opcode is returned; the flag is left raised until the Main CPU
// clears it during the completion handshake.
func (sp *SubPort) WaitCommand() (Opcode, error) {
	ga := sp.ga
	ga.crit.Lock()
	defer ga.crit.Unlock()

	for ga.cfm == CmdNone {
		if ga.off {
			return CmdNone, curated.Errorf(PowerOff)
		}
		ga.cond.Wait()
	}

	return ga.cfm, nil
}

// Param reads a CMD register. No side effects.
func (sp *SubPort) Param(idx int) (uint16, error) {
	if idx < 0 || idx >= NumCommRegisters {
		return 0, curated.Errorf(BadRegister, idx)
	}

	ga := sp.ga
	ga.crit.Lock()
	defer ga.crit.Unlock()
	return ga.cmd[idx], nil
}

// WriteResult writes a STATUS register.
func (sp *SubPort) WriteResult(idx int, value uint16) error {
	if idx < 0 || idx >= NumCommRegisters {
		return curated.Errorf(BadRegister, idx)
	}

	ga := sp.ga
	ga.crit.Lock()
	defer ga.crit.Unlock()
	ga.result[idx] = value
	ga.cond.Broadcast()
	return nil
}

// WriteState writes the Sub CPU state machine value to STATUS register 0.
func (sp *SubPort) WriteState(state SubState) {
	_ = sp.WriteResult(0, uint16(state))
}

// SetFlag writes the CFS flag byte directly. Used during the boot sequence,
// before the command loop and its Acknowledge/Complete discipline have
// started.
func (sp *SubPort) SetFlag(status Status) {
	ga := sp.ga
	ga.crit.Lock()
	defer ga.crit.Unlock()
	ga.cfs = status
	ga.cond.Broadcast()
}

// Acknowledge the command currently in flight by setting CFS to StatusBusy.
func (sp *SubPort) Acknowledge() {
	sp.SetFlag(StatusBusy)
}

// Complete finishes the command currently in flight: CFS is set to
// StatusDone, then the call blocks until the Main CPU clears its flag byte,
// then CFS returns to StatusIdle.
func (sp *SubPort) Complete() error {
	return sp.finish(StatusDone)
}

// Fail is the same as Complete but with StatusError in place of StatusDone.
// A command the dispatcher does not recognise must reach Fail, never hang
// and never silently succeed.
func (sp *SubPort) Fail() error {
	return sp.finish(StatusError)
}

func (sp *SubPort) finish(terminal Status) error {
	ga := sp.ga
	ga.crit.Lock()
	defer ga.crit.Unlock()

	ga.cfs = terminal
	ga.cond.Broadcast()

	// wait for the main side to lower its flag
	for ga.cfm != CmdNone {
		if ga.off {
			return curated.Errorf(PowerOff)
		}
		ga.cond.Wait()
	}

	ga.cfs = StatusIdle
	ga.cond.Broadcast()
	return nil
}
