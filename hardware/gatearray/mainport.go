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
	"time"

	"github.com/Project12x/segaos/curated"
)

// BadRegister is returned when a comm register index is out of range.
const BadRegister = "gate array: no such comm register (%d)"

// NotReady is returned by WaitIdle when the Sub CPU has not reached idle
// within the allowed time.
const NotReady = "gate array: sub CPU not ready (last status %s)"

// MainPort is the Main CPU's side of the communication channel. It may only
// be used from a single goroutine, the front processor.
type MainPort struct {
	ga *GateArray
}

// Pending is the token representing a command in flight. It is returned by
// Send and consumed by Wait. There can only ever be one Pending token alive
// per channel; the token is how the single-flight rule is kept visible in
// the types.
type Pending struct {
	ga       *GateArray
	op       Opcode
	consumed bool
}

// Send issues a command to the Sub CPU. It blocks until the channel is idle
// and no other command is in flight, writes the four parameters to the CMD
// registers and raises the opcode in the CFM flag byte.
//
// The in-flight parameters cannot be corrupted by a second Send: the second
// caller blocks until the first command's Pending token has been consumed.
func (mp *MainPort) Send(op Opcode, p0, p1, p2, p3 uint16) (*Pending, error) {
	ga := mp.ga
	ga.crit.Lock()
	defer ga.crit.Unlock()

	for ga.pending || ga.cfs != StatusIdle || ga.cfm != CmdNone {
		if ga.off {
			return nil, curated.Errorf(PowerOff)
		}
		ga.cond.Wait()
	}
	if ga.off {
		return nil, curated.Errorf(PowerOff)
	}

	ga.cmd[0] = p0
	ga.cmd[1] = p1
	ga.cmd[2] = p2
	ga.cmd[3] = p3
	ga.cfm = op
	ga.pending = true
	ga.cond.Broadcast()

	return &Pending{ga: ga, op: op}, nil
}

// Wait blocks until the Sub CPU reports StatusDone or StatusError, clears
// the CFM flag byte and then blocks again until the Sub CPU has returned the
// channel to StatusIdle. The terminal status is returned.
//
// Wait consumes the Pending token. Calling it a second time is an error in
// the caller; it panics rather than corrupting the handshake.
func (p *Pending) Wait() (Status, error) {
	if p.consumed {
		panic("gate array: pending token used twice")
	}
	p.consumed = true

	ga := p.ga
	ga.crit.Lock()
	defer ga.crit.Unlock()

	for ga.cfs != StatusDone && ga.cfs != StatusError {
		if ga.off {
			return StatusError, curated.Errorf(PowerOff)
		}
		ga.cond.Wait()
	}
	status := ga.cfs

	// clear our flag to complete the handshake
	ga.cfm = CmdNone
	ga.cond.Broadcast()

	// wait for the sub side to clear too
	for ga.cfs != StatusIdle {
		if ga.off {
			return StatusError, curated.Errorf(PowerOff)
		}
		ga.cond.Wait()
	}

	ga.pending = false
	ga.cond.Broadcast()

	return status, nil
}

// Opcode returns the opcode the Pending token was created for.
func (p *Pending) Opcode() Opcode {
	return p.op
}

// SendParam writes a single CMD register outside of the full handshake. Used
// for streaming updates where the Sub CPU polls the registers directly.
func (mp *MainPort) SendParam(idx int, value uint16) error {
	if idx < 0 || idx >= NumCommRegisters {
		return curated.Errorf(BadRegister, idx)
	}

	ga := mp.ga
	ga.crit.Lock()
	defer ga.crit.Unlock()
	ga.cmd[idx] = value
	ga.cond.Broadcast()
	return nil
}

// Result reads a STATUS register. No side effects.
func (mp *MainPort) Result(idx int) (uint16, error) {
	if idx < 0 || idx >= NumCommRegisters {
		return 0, curated.Errorf(BadRegister, idx)
	}

	ga := mp.ga
	ga.crit.Lock()
	defer ga.crit.Unlock()
	return ga.result[idx], nil
}

// SubFlag reads the CFS flag byte. No side effects.
func (mp *MainPort) SubFlag() Status {
	ga := mp.ga
	ga.crit.Lock()
	defer ga.crit.Unlock()
	return ga.cfs
}

// WaitIdle blocks until the Sub CPU reports StatusIdle, typically during the
// boot sequence. On real hardware the Main CPU would spin forever; here a
// deadline makes a wedged Sub CPU an explicit error rather than a silent
// hang.
func (mp *MainPort) WaitIdle(deadline time.Duration) error {
	ga := mp.ga

	// a time based interruption of a condition wait needs a watchdog. the
	// watchdog broadcast wakes the loop below which then notices that the
	// deadline has passed
	expired := false
	wd := time.AfterFunc(deadline, func() {
		ga.crit.Lock()
		defer ga.crit.Unlock()
		expired = true
		ga.cond.Broadcast()
	})
	defer wd.Stop()

	ga.crit.Lock()
	defer ga.crit.Unlock()

	for ga.cfs != StatusIdle {
		if ga.off {
			return curated.Errorf(PowerOff)
		}
		if expired {
			return curated.Errorf(NotReady, ga.cfs)
		}
		ga.cond.Wait()
	}

	return nil
}
