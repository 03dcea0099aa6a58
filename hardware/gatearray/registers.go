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

import "fmt"

// Gate Array base addresses. The Main CPU sees the Gate Array at $A12000,
// the Sub CPU at $FF8000. Register offsets are common to both.
const (
	MainBase = 0xA12000
	SubBase  = 0xFF8000
)

// Register offsets, as per the Mega-CD hardware manual. Access in this
// emulation is through typed methods but the layout is kept bit-exact for
// reference and for the register dump in Peek().
const (
	RegReset      = 0x00 // sub CPU reset/halt (main only)
	RegMemMode    = 0x02 // word RAM mode / RET / DMNA
	RegCommFlag   = 0x0E // CFM (high byte) / CFS (low byte)
	RegCommCmd    = 0x10 // 8 x 16-bit, main writes
	RegCommStatus = 0x20 // 8 x 16-bit, sub writes
)

// Bits in the memory mode register.
const (
	MemModeRET  = 0x0001 // sub returns word RAM bank
	MemModeDMNA = 0x0002 // main requests word RAM swap
	MemMode1M   = 0x0004 // 1 = 1M mode (128KB per bank, both CPUs)
)

// NumCommRegisters is the number of CMD registers and the number of STATUS
// registers.
const NumCommRegisters = 8

// Opcode is the value carried in the CFM flag byte. CmdNone means no command
// is in flight.
type Opcode uint8

// List of command opcodes.
const (
	CmdNone        Opcode = 0x00
	CmdBoot        Opcode = 0x01
	CmdInitOS      Opcode = 0x02
	CmdRenderFrame Opcode = 0x10
	CmdWordRAMSwap Opcode = 0x11
	CmdOpenWindow  Opcode = 0x20
	CmdCloseWindow Opcode = 0x21
	CmdMoveWindow  Opcode = 0x22
	CmdDrawText    Opcode = 0x30
	CmdDrawIcon    Opcode = 0x31
	CmdCDPlay      Opcode = 0x40
	CmdCDStop      Opcode = 0x41
	CmdFileRead    Opcode = 0x50
	CmdFileWrite   Opcode = 0x51
	CmdMouseEvent  Opcode = 0x60
)

func (op Opcode) String() string {
	switch op {
	case CmdNone:
		return "NONE"
	case CmdBoot:
		return "BOOT"
	case CmdInitOS:
		return "INIT_OS"
	case CmdRenderFrame:
		return "RENDER_FRAME"
	case CmdWordRAMSwap:
		return "WRAM_SWAP"
	case CmdOpenWindow:
		return "OPEN_WINDOW"
	case CmdCloseWindow:
		return "CLOSE_WINDOW"
	case CmdMoveWindow:
		return "MOVE_WINDOW"
	case CmdDrawText:
		return "DRAW_TEXT"
	case CmdDrawIcon:
		return "DRAW_ICON"
	case CmdCDPlay:
		return "CD_PLAY"
	case CmdCDStop:
		return "CD_STOP"
	case CmdFileRead:
		return "FILE_READ"
	case CmdFileWrite:
		return "FILE_WRITE"
	case CmdMouseEvent:
		return "MOUSE_EVENT"
	}
	return fmt.Sprintf("UNKNOWN (%#02x)", uint8(op))
}

// Status is the value carried in the CFS flag byte.
type Status uint8

// List of status codes.
const (
	StatusIdle  Status = 0x00
	StatusBusy  Status = 0x01
	StatusAck   Status = 0x02
	StatusDone  Status = 0x03
	StatusError Status = 0xFF
)

func (st Status) String() string {
	switch st {
	case StatusIdle:
		return "IDLE"
	case StatusBusy:
		return "BUSY"
	case StatusAck:
		return "ACK"
	case StatusDone:
		return "DONE"
	case StatusError:
		return "ERROR"
	}
	return fmt.Sprintf("UNKNOWN (%#02x)", uint8(st))
}

// SubState is the Sub CPU state machine value, written to STATUS register 0
// for the Main CPU to monitor.
type SubState uint16

// List of SubState values.
const (
	StateReset     SubState = 0
	StateBooting   SubState = 1
	StateReady     SubState = 2
	StateRendering SubState = 3
	StateCrashed   SubState = 0xFF
)

func (st SubState) String() string {
	switch st {
	case StateReset:
		return "RESET"
	case StateBooting:
		return "BOOTING"
	case StateReady:
		return "READY"
	case StateRendering:
		return "RENDERING"
	case StateCrashed:
		return "CRASHED"
	}
	return fmt.Sprintf("UNKNOWN (%#04x)", uint16(st))
}
