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

// Package wordram emulates the Sega CD Word RAM in 1M mode: two 128KB banks,
// each owned by exactly one CPU at any instant. The Sub CPU renders into its
// bank; when the frame is finished it returns the bank and the hardware
// swaps the two banks atomically, so each side always owns exactly one.
//
// On real hardware the exchange is driven by the RET and DMNA bits of the
// Gate Array memory mode register and software must never touch a bank
// between raising a bit and seeing it clear. That discipline is easy to get
// wrong, so here a bank is a capability: the only way to obtain a *Bank is
// from an ownership-transfer call, and the handle a CPU holds before a swap
// refers to memory the other side cannot also hold a handle to.
//
// A processor that keeps a stale *Bank after releasing it is still
// expressible (Go cannot revoke a pointer) but the exclusivity invariant is
// observable through HasOwnership and is exercised by the package tests.
package wordram

import (
	"sync"

	"github.com/Project12x/segaos/curated"
)

// Screen dimensions. A bank holds one full frame, one byte per pixel, each
// byte holding a 2-bit shade.
const (
	ScreenWidth  = 320
	ScreenHeight = 224
)

// NotOwner is returned when a CPU tries to return a bank it does not own.
const NotOwner = "word ram: bank %d is not owned by %s"

// PowerOff is returned by a blocked MainRequest when the WordRAM is shut
// down.
const PowerOff = "word ram: power off"

// Side identifies one of the two CPUs.
type Side int

// List of Side values.
const (
	MainSide Side = iota
	SubSide
)

func (s Side) String() string {
	if s == MainSide {
		return "main"
	}
	return "sub"
}

// Bank is one half of the Word RAM. A Bank is a capability: instances are
// created only by NewWordRAM and handles are handed out only by the
// ownership-transfer functions.
type Bank struct {
	id  int
	pix []byte
}

// ID returns the physical bank number (0 or 1).
func (b *Bank) ID() int {
	return b.id
}

// Pixels returns the bank's pixel memory, one byte per pixel in row-major
// order. The caller must own the bank.
func (b *Bank) Pixels() []byte {
	return b.pix
}

// Clear sets every pixel in the bank to the given shade.
func (b *Bank) Clear(shade byte) {
	for i := range b.pix {
		b.pix[i] = shade
	}
}

// WordRAM emulates the two banks and the hardware that exchanges them.
type WordRAM struct {
	crit sync.Mutex
	cond *sync.Cond

	banks [2]*Bank
	owner [2]Side

	// the RET and DMNA bits. set by the respective side, cleared by the
	// "hardware" when the swap completes
	ret  bool
	dmna bool

	// swap counter. MainRequest waits for this to advance
	swaps int

	off bool
}

// NewWordRAM is the preferred method of initialisation for the WordRAM type.
// Bank 0 starts owned by the Main CPU, bank 1 by the Sub CPU.
func NewWordRAM() *WordRAM {
	w := &WordRAM{}
	w.cond = sync.NewCond(&w.crit)
	for i := range w.banks {
		w.banks[i] = &Bank{
			id:  i,
			pix: make([]byte, ScreenWidth*ScreenHeight),
		}
	}
	w.owner[0] = MainSide
	w.owner[1] = SubSide
	return w
}

// Quit wakes any goroutine blocked in MainRequest.
func (w *WordRAM) Quit() {
	w.crit.Lock()
	defer w.crit.Unlock()
	w.off = true
	w.cond.Broadcast()
}

// MainBank returns the bank currently owned by the Main CPU without waiting
// for a swap. To be used only when ownership has already been proven by a
// completed protocol round trip (eg. after a render command has returned
// Done).
func (w *WordRAM) MainBank() *Bank {
	w.crit.Lock()
	defer w.crit.Unlock()
	return w.sideBank(MainSide)
}

// SubBank is the Sub CPU's equivalent of MainBank. Used once at boot to
// obtain the initial render target.
func (w *WordRAM) SubBank() *Bank {
	w.crit.Lock()
	defer w.crit.Unlock()
	return w.sideBank(SubSide)
}

// SubReturn releases the Sub CPU's bank. The hardware performs the exchange
// immediately: both banks flip owner, the RET bit clears and any Main CPU
// goroutine blocked in MainRequest wakes. The Sub CPU's new bank (the one
// the Main CPU just gave up) is returned.
//
// The held argument must be the bank the Sub CPU currently owns; anything
// else is a protocol violation and returns an error with no swap performed.
func (w *WordRAM) SubReturn(held *Bank) (*Bank, error) {
	w.crit.Lock()
	defer w.crit.Unlock()

	if held == nil || w.owner[held.id] != SubSide {
		id := -1
		if held != nil {
			id = held.id
		}
		return nil, curated.Errorf(NotOwner, id, SubSide)
	}

	// the atomic exchange. RET is raised and cleared inside the critical
	// section: no observer can ever see a half-performed swap
	w.ret = true
	w.owner[0], w.owner[1] = w.owner[1], w.owner[0]
	w.ret = false
	w.dmna = false
	w.swaps++
	w.cond.Broadcast()

	return w.sideBank(SubSide), nil
}

// MainRequest raises the DMNA bit and blocks until the hardware has
// performed a swap, then returns the Main CPU's new bank. Used by the
// explicit bank-swap command; the ordinary render path relies on the Sub CPU
// releasing as part of frame completion.
func (w *WordRAM) MainRequest() (*Bank, error) {
	w.crit.Lock()
	defer w.crit.Unlock()

	w.dmna = true
	w.cond.Broadcast()

	waitFor := w.swaps + 1
	for w.swaps < waitFor {
		if w.off {
			return nil, curated.Errorf(PowerOff)
		}
		w.cond.Wait()
	}

	return w.sideBank(MainSide), nil
}

// HasOwnership reports whether the given side currently owns the given
// bank. No side effects.
func (w *WordRAM) HasOwnership(side Side, bank int) bool {
	w.crit.Lock()
	defer w.crit.Unlock()
	return w.owner[bank&1] == side
}

// Pending reports the state of the RET and DMNA bits. Debug use only.
func (w *WordRAM) Pending() (ret bool, dmna bool) {
	w.crit.Lock()
	defer w.crit.Unlock()
	return w.ret, w.dmna
}

func (w *WordRAM) sideBank(side Side) *Bank {
	if w.owner[0] == side {
		return w.banks[0]
	}
	return w.banks[1]
}
