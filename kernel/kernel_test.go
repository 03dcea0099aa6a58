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

package kernel_test

import (
	"testing"
	"time"

	"github.com/Project12x/segaos/blitter"
	"github.com/Project12x/segaos/hardware/gatearray"
	"github.com/Project12x/segaos/hardware/wordram"
	"github.com/Project12x/segaos/kernel"
	"github.com/Project12x/segaos/test"
)

type recordingCD struct {
	played chan int
	stops  chan bool
}

func newRecordingCD() *recordingCD {
	return &recordingCD{played: make(chan int, 8), stops: make(chan bool, 8)}
}

func (cd *recordingCD) Play(track int) error {
	cd.played <- track
	return nil
}

func (cd *recordingCD) Stop() error {
	cd.stops <- true
	return nil
}

type rig struct {
	ga   *gatearray.GateArray
	wram *wordram.WordRAM
	main *gatearray.MainPort
	cd   *recordingCD
	done chan bool
}

func startKernel(t *testing.T) *rig {
	t.Helper()

	r := &rig{
		ga:   gatearray.NewGateArray(),
		wram: wordram.NewWordRAM(),
		cd:   newRecordingCD(),
		done: make(chan bool),
	}
	r.main = r.ga.Main()

	k := kernel.New(r.ga.Sub(), r.wram, r.cd)
	go func() {
		k.Run()
		close(r.done)
	}()

	t.Cleanup(func() {
		r.ga.Quit()
		select {
		case <-r.done:
		case <-time.After(time.Second):
			t.Error("kernel did not exit on power off")
		}
	})

	if err := r.main.WaitIdle(5 * time.Second); err != nil {
		t.Fatalf("boot did not complete: %v", err)
	}
	return r
}

// send performs a full command handshake and returns the terminal status.
func (r *rig) send(t *testing.T, op gatearray.Opcode, p0, p1, p2, p3 uint16) gatearray.Status {
	t.Helper()
	pending, err := r.main.Send(op, p0, p1, p2, p3)
	if err != nil {
		t.Fatalf("send %v: %v", op, err)
	}
	status, err := pending.Wait()
	if err != nil {
		t.Fatalf("wait %v: %v", op, err)
	}
	return status
}

func (r *rig) result(t *testing.T, idx int) uint16 {
	t.Helper()
	v, err := r.main.Result(idx)
	test.ExpectSuccess(t, err)
	return v
}

func TestBootHandshake(t *testing.T) {
	r := startKernel(t)
	test.ExpectEquality(t, gatearray.SubState(r.result(t, 0)), gatearray.StateReady)
	test.ExpectEquality(t, r.main.SubFlag(), gatearray.StatusIdle)
}

func TestRenderFrame(t *testing.T) {
	r := startKernel(t)

	status := r.send(t, gatearray.CmdRenderFrame, 0, 0, 0, 0)
	test.ExpectEquality(t, status, gatearray.StatusDone)
	test.ExpectEquality(t, gatearray.SubState(r.result(t, 0)), gatearray.StateReady)

	// the finished frame came across in the bank swap: the menu bar is
	// white, the desktop under it is the 50% gray pattern
	pix := r.wram.MainBank().Pixels()
	test.ExpectEquality(t, pix[5*blitter.ScreenWidth+5], blitter.White)
	deskRow := 30 * blitter.ScreenWidth
	test.ExpectInequality(t, pix[deskRow+0], pix[deskRow+1])
}

func TestOpenCloseWindow(t *testing.T) {
	r := startKernel(t)

	status := r.send(t, gatearray.CmdOpenWindow, 40, 60, 100, 80)
	test.ExpectEquality(t, status, gatearray.StatusDone)
	slot := r.result(t, 0)
	test.ExpectEquality(t, slot, uint16(0))

	// move it
	status = r.send(t, gatearray.CmdMoveWindow, slot, 50, 70, 0)
	test.ExpectEquality(t, status, gatearray.StatusDone)
	test.ExpectEquality(t, r.result(t, 0), uint16(0))

	// close it
	status = r.send(t, gatearray.CmdCloseWindow, slot, 0, 0, 0)
	test.ExpectEquality(t, status, gatearray.StatusDone)
	test.ExpectEquality(t, r.result(t, 0), uint16(0))

	// closing again reports not found but still completes
	status = r.send(t, gatearray.CmdCloseWindow, slot, 0, 0, 0)
	test.ExpectEquality(t, status, gatearray.StatusDone)
	test.ExpectEquality(t, r.result(t, 0), uint16(0xFF))
}

func TestUnknownCommandFails(t *testing.T) {
	r := startKernel(t)

	status := r.send(t, gatearray.CmdFileRead, 0, 0, 0, 0)
	test.ExpectEquality(t, status, gatearray.StatusError)

	// the channel recovers: the next command succeeds
	status = r.send(t, gatearray.CmdRenderFrame, 0, 0, 0, 0)
	test.ExpectEquality(t, status, gatearray.StatusDone)
}

func TestCDCommands(t *testing.T) {
	r := startKernel(t)

	status := r.send(t, gatearray.CmdCDPlay, 2, 0, 0, 0)
	test.ExpectEquality(t, status, gatearray.StatusDone)
	test.ExpectEquality(t, <-r.cd.played, 2)

	status = r.send(t, gatearray.CmdCDStop, 0, 0, 0, 0)
	test.ExpectEquality(t, status, gatearray.StatusDone)
	test.ExpectSuccess(t, <-r.cd.stops)
}

func (r *rig) mouse(t *testing.T, typ gatearray.MouseEventType, x, y int, buttons uint8) {
	t.Helper()
	ev := gatearray.MouseEvent{X: x, Y: y, Type: typ, Buttons: buttons}
	p0, p1, p2, p3 := ev.Params()
	status := r.send(t, gatearray.CmdMouseEvent, p0, p1, p2, p3)
	test.ExpectEquality(t, status, gatearray.StatusDone)
}

// drive the desktop entirely through the wire protocol: open the File menu
// with the mouse, choose New, and observe that a window now occupies the
// first pool slot.
func TestMenuFileNew(t *testing.T) {
	r := startKernel(t)

	r.mouse(t, gatearray.MouseDown, 12, 5, 1)
	// the first item of the File dropdown starts just below the bar
	r.mouse(t, gatearray.MouseDrag, 15, 25, 1)
	r.mouse(t, gatearray.MouseUp, 15, 25, 0)

	// slot 0 is taken by the new window, so an explicit open lands in slot 1
	status := r.send(t, gatearray.CmdOpenWindow, 40, 60, 100, 80)
	test.ExpectEquality(t, status, gatearray.StatusDone)
	test.ExpectEquality(t, r.result(t, 0), uint16(1))
}

// dragging a title bar moves the window.
func TestWindowDrag(t *testing.T) {
	r := startKernel(t)

	status := r.send(t, gatearray.CmdOpenWindow, 40, 60, 100, 80)
	test.ExpectEquality(t, status, gatearray.StatusDone)
	slot := r.result(t, 0)

	// grab the title bar and drag 20 pixels right and down
	r.mouse(t, gatearray.MouseDown, 80, 65, 1)
	r.mouse(t, gatearray.MouseDrag, 100, 85, 1)
	r.mouse(t, gatearray.MouseUp, 100, 85, 0)

	// verify the drag took effect by clicking the close box at the window's
	// new position. the frame is now at (60,80) so the box centre is at
	// (60+1+4+6, 80+1+3+6)
	r.mouse(t, gatearray.MouseDown, 71, 90, 1)
	r.mouse(t, gatearray.MouseUp, 71, 90, 0)

	statusClose := r.send(t, gatearray.CmdCloseWindow, slot, 0, 0, 0)
	test.ExpectEquality(t, statusClose, gatearray.StatusDone)
	test.ExpectEquality(t, r.result(t, 0), uint16(0xFF))
}
