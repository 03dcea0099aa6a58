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
	"fmt"
	"strings"
	"sync"
)

// PowerOff is the error returned by blocked channel operations when the Gate
// Array has been shut down with the Quit() function.
const PowerOff = "gate array: power off"

// GateArray emulates the communication block shared by the two CPUs. All
// fields are guarded by the one mutex; every state change broadcasts on the
// condition variable so that whichever side is blocked re-examines the flag
// bytes.
type GateArray struct {
	crit sync.Mutex
	cond *sync.Cond

	// the comm flag pair. cfm is written only through MainPort, cfs only
	// through SubPort
	cfm Opcode
	cfs Status

	// main -> sub parameters and sub -> main results
	cmd    [NumCommRegisters]uint16
	result [NumCommRegisters]uint16

	// single-flight guard. true from Send() until the Pending token has been
	// consumed by Wait()
	pending bool

	// set by Quit(). once set, every blocked operation returns PowerOff
	off bool
}

// NewGateArray is the preferred method of initialisation for the GateArray
// type.
func NewGateArray() *GateArray {
	ga := &GateArray{}
	ga.cond = sync.NewCond(&ga.crit)
	return ga
}

// Quit wakes every goroutine blocked on the channel. Blocked and future
// operations fail with the PowerOff error. There is no recovery path for a
// stalled handshake on real hardware; Quit exists so that an emulated
// processor that has wedged can be unwound rather than leaking a goroutine.
func (ga *GateArray) Quit() {
	ga.crit.Lock()
	defer ga.crit.Unlock()
	ga.off = true
	ga.cond.Broadcast()
}

// Main returns the Main CPU's side of the channel.
func (ga *GateArray) Main() *MainPort {
	return &MainPort{ga: ga}
}

// Sub returns the Sub CPU's side of the channel.
func (ga *GateArray) Sub() *SubPort {
	return &SubPort{ga: ga}
}

// Peek returns a summary of the channel state. Used for logging and for the
// register dump on abnormal termination.
func (ga *GateArray) Peek() string {
	ga.crit.Lock()
	defer ga.crit.Unlock()

	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("CFM=%s CFS=%s", ga.cfm, ga.cfs))
	s.WriteString(" CMD=")
	for i := range ga.cmd {
		s.WriteString(fmt.Sprintf("%04x ", ga.cmd[i]))
	}
	s.WriteString("STATUS=")
	for i := range ga.result {
		s.WriteString(fmt.Sprintf("%04x ", ga.result[i]))
	}
	return strings.TrimSpace(s.String())
}
