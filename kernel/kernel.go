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

package kernel

import (
	"github.com/Project12x/segaos/apps"
	"github.com/Project12x/segaos/blitter"
	"github.com/Project12x/segaos/geom"
	"github.com/Project12x/segaos/hardware/gatearray"
	"github.com/Project12x/segaos/hardware/wordram"
	"github.com/Project12x/segaos/logger"
	"github.com/Project12x/segaos/menubar"
	"github.com/Project12x/segaos/wm"
)

// CDPlayer is the CD audio collaborator. Implementations decode a numbered
// track and play it until Stop.
type CDPlayer interface {
	Play(track int) error
	Stop() error
}

// Menu command IDs.
const (
	cmdFileNew   menubar.CommandID = 0x0101
	cmdFileOpen  menubar.CommandID = 0x0102
	cmdFileClose menubar.CommandID = 0x0103
	cmdFileQuit  menubar.CommandID = 0x0104
	cmdEditUndo  menubar.CommandID = 0x0201
	cmdEditCut   menubar.CommandID = 0x0202
	cmdEditCopy  menubar.CommandID = 0x0203
	cmdEditPaste menubar.CommandID = 0x0204
	cmdAppsNote  menubar.CommandID = 0x0302
	cmdAppsPaint menubar.CommandID = 0x0303
)

// Kernel is the Sub CPU operating system.
type Kernel struct {
	sub  *gatearray.SubPort
	wram *wordram.WordRAM
	cd   CDPlayer

	mgr *wm.Manager
	blt *blitter.Blitter
	bar *menubar.MenuBar

	// the bank currently owned by this side. surrendered at the end of every
	// render pass
	bank *wordram.Bank

	// the canonical desktop image. all drawing happens here; the bank only
	// ever receives a copy of the finished frame. rendering directly into
	// the bank would leave the other bank stale after a swap
	shadow []byte

	cursor     geom.Point
	prevCursor geom.Point

	// window drag/resize in progress
	dragWin *wm.Window
	dragOff geom.Point
	growWin *wm.Window

	// counter for auto-naming File > New windows
	windowCounter int

	// desktop pattern applied at initialisation
	desktop wm.DesktopPattern

	paint *apps.Paint
}

// New is the preferred method of initialisation for the Kernel type. The
// CDPlayer may be nil, in which case CD commands fail.
func New(sub *gatearray.SubPort, wram *wordram.WordRAM, cd CDPlayer) *Kernel {
	return &Kernel{sub: sub, wram: wram, cd: cd}
}

// SetDesktop selects the desktop pattern used when the desktop is built.
// Must be called before Run.
func (k *Kernel) SetDesktop(p wm.DesktopPattern) {
	k.desktop = p
}

// Run boots the operating system and then services commands until the gate
// array is powered off. Blocking; intended to be run as the back processor
// goroutine.
func (k *Kernel) Run() {
	k.boot()

	for {
		op, err := k.sub.WaitCommand()
		if err != nil {
			logger.Log("kernel", "power off. command loop exiting")
			return
		}
		if !k.dispatch(op) {
			return
		}
	}
}

// boot mirrors the hardware boot sequence: the Main CPU watches STATUS
// register 0 go Booting then Ready, and the flag byte settle at Idle.
func (k *Kernel) boot() {
	k.sub.WriteState(gatearray.StateBooting)
	k.sub.SetFlag(gatearray.StatusBusy)

	k.osInit()

	k.sub.WriteState(gatearray.StateReady)
	k.sub.SetFlag(gatearray.StatusIdle)
	logger.Log("kernel", "boot complete")
}

// osInit builds the desktop from nothing. Also reached by CmdInitOS.
func (k *Kernel) osInit() {
	k.bank = k.wram.SubBank()
	k.shadow = make([]byte, wordram.ScreenWidth*wordram.ScreenHeight)

	k.blt = blitter.NewBlitter()
	k.blt.SetSurface(k.shadow)
	k.blt.Clear(blitter.White)

	k.mgr = wm.NewManager()
	k.mgr.SetDesktop(k.desktop)

	k.bar = menubar.NewMenuBar()
	file := k.bar.AddMenu("File")
	k.bar.AddItem(file, "New", cmdFileNew, 0)
	k.bar.AddItem(file, "Open", cmdFileOpen, 0)
	k.bar.AddItem(file, "Close", cmdFileClose, 0)
	k.bar.AddSeparator(file)
	k.bar.AddItem(file, "Quit", cmdFileQuit, 0)
	edit := k.bar.AddMenu("Edit")
	k.bar.AddItem(edit, "Undo", cmdEditUndo, menubar.ItemDisabled)
	k.bar.AddSeparator(edit)
	k.bar.AddItem(edit, "Cut", cmdEditCut, 0)
	k.bar.AddItem(edit, "Copy", cmdEditCopy, 0)
	k.bar.AddItem(edit, "Paste", cmdEditPaste, 0)
	appsMenu := k.bar.AddMenu("Apps")
	k.bar.AddItem(appsMenu, "Notepad", cmdAppsNote, 0)
	k.bar.AddItem(appsMenu, "Paint", cmdAppsPaint, 0)

	k.cursor = geom.Point{X: wm.ScreenWidth / 2, Y: wm.ScreenHeight / 2}
	k.prevCursor = k.cursor
	k.dragWin = nil
	k.growWin = nil
	k.paint = nil

	logger.Log("kernel", "desktop initialised")
}

// Manager exposes the window manager for tests and debugging. Not safe to
// use while Run is live.
func (k *Kernel) Manager() *wm.Manager {
	return k.mgr
}

// returnBank copies the finished frame into the held bank and surrenders it
// to the Main CPU.
func (k *Kernel) returnBank() {
	copy(k.bank.Pixels(), k.shadow)
	next, err := k.wram.SubReturn(k.bank)
	if err != nil {
		logger.Logf("kernel", "bank return failed: %v", err)
		return
	}
	k.bank = next
}

func (k *Kernel) param(idx int) uint16 {
	v, _ := k.sub.Param(idx)
	return v
}

// dispatch services one command. Returns false when the channel went away
// mid-handshake.
func (k *Kernel) dispatch(op gatearray.Opcode) bool {
	k.sub.Acknowledge()

	var err error
	switch op {
	case gatearray.CmdInitOS:
		k.osInit()
		err = k.sub.Complete()

	case gatearray.CmdRenderFrame:
		err = k.renderFrame()

	case gatearray.CmdWordRAMSwap:
		k.returnBank()
		err = k.sub.Complete()

	case gatearray.CmdOpenWindow:
		x := int(int16(k.param(0)))
		y := int(int16(k.param(1)))
		w := int(int16(k.param(2)))
		h := int(int16(k.param(3)))
		win := k.mgr.NewWindow(geom.XYWH(x, y, w, h), "Untitled",
			wm.StyleDocument, wm.FlagVisible)
		if win != nil {
			_ = k.sub.WriteResult(0, uint16(win.ID().Slot()))
		} else {
			_ = k.sub.WriteResult(0, 0xFF)
		}
		err = k.sub.Complete()

	case gatearray.CmdCloseWindow:
		if win := k.mgr.WindowBySlot(int(k.param(0))); win != nil {
			k.mgr.Dispose(win)
			_ = k.sub.WriteResult(0, 0)
		} else {
			_ = k.sub.WriteResult(0, 0xFF)
		}
		err = k.sub.Complete()

	case gatearray.CmdMoveWindow:
		if win := k.mgr.WindowBySlot(int(k.param(0))); win != nil {
			k.mgr.Move(win, int(int16(k.param(1))), int(int16(k.param(2))))
			_ = k.sub.WriteResult(0, 0)
		} else {
			_ = k.sub.WriteResult(0, 0xFF)
		}
		err = k.sub.Complete()

	case gatearray.CmdCDPlay:
		track := int(k.param(0))
		if k.cd == nil {
			logger.Log("kernel", "cd play with no cd player attached")
			err = k.sub.Fail()
			break
		}
		if playErr := k.cd.Play(track); playErr != nil {
			logger.Logf("kernel", "cd play: %v", playErr)
			err = k.sub.Fail()
			break
		}
		err = k.sub.Complete()

	case gatearray.CmdCDStop:
		if k.cd == nil {
			err = k.sub.Fail()
			break
		}
		if stopErr := k.cd.Stop(); stopErr != nil {
			logger.Logf("kernel", "cd stop: %v", stopErr)
			err = k.sub.Fail()
			break
		}
		err = k.sub.Complete()

	case gatearray.CmdMouseEvent:
		k.mouseEvent(gatearray.DecodeMouseEvent(
			k.param(0), k.param(1), k.param(2), k.param(3)))
		err = k.sub.Complete()

	default:
		// a command we do not implement must fail, never hang
		logger.Logf("kernel", "unsupported command %s", op)
		err = k.sub.Fail()
	}

	if err != nil {
		logger.Logf("kernel", "handshake abandoned: %v", err)
		return false
	}
	return true
}
