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

// Package gatearray emulates the communication block of the Sega CD Gate
// Array: the chip that mediates all traffic between the Main CPU (the
// Genesis 68000) and the Sub CPU (the Sega CD 68000).
//
// The communication block is a comm flag pair and sixteen 16-bit data
// registers. The high flag byte (CFM) is written only by the Main CPU and
// carries the current command opcode. The low flag byte (CFS) is written
// only by the Sub CPU and carries the command status. The eight CMD
// registers carry command parameters (main to sub) and the eight STATUS
// registers carry results (sub to main). Both CPUs can read everything.
//
// The handshake protocol is strictly alternating and single-flight:
//
//  1. Main waits for CFS == StatusIdle
//  2. Main writes parameters to the CMD registers and sets CFM to the opcode
//  3. Sub reads CFM, sets CFS to StatusBusy and processes the command
//  4. Sub writes results to the STATUS registers
//  5. Sub sets CFS to StatusDone (or StatusError)
//  6. Main reads CFS, reads results, clears CFM to CmdNone
//  7. Sub sees CFM clear and returns CFS to StatusIdle
//
// On real hardware both sides busy-poll the flag bytes. Each CPU is
// single-threaded with nothing else to do while waiting, so the spin is
// deliberate. In this emulation the two CPUs are goroutines and the waits
// are blocking condition-variable receives with identical ordering
// semantics.
//
// The two sides of the channel are exposed as MainPort and SubPort. The
// MainPort enforces the single-flight rule at the type level: Send returns a
// Pending token and a second Send blocks until the token has been consumed
// by Wait.
package gatearray
