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

package frontend

import (
	"time"

	"github.com/Project12x/segaos/curated"
	"github.com/Project12x/segaos/hardware/gatearray"
	"github.com/Project12x/segaos/hardware/megamouse"
	"github.com/Project12x/segaos/hardware/wordram"
	"github.com/Project12x/segaos/logger"
)

// BootFailed is returned when the Sub CPU reached idle but did not report
// the ready state.
const BootFailed = "frontend: sub CPU idle but not ready (state %s)"

// how long the frontend will wait for the Sub CPU to boot. on real hardware
// the Main CPU spins forever; a deadline makes a wedged boot an explicit
// error.
const bootDeadline = 5 * time.Second

const defaultFPS = 30

// Frontend is the Main CPU program: mouse in, commands across the gate
// array, frames out to the Display.
type Frontend struct {
	main  *gatearray.MainPort
	wram  *wordram.WordRAM
	mouse *megamouse.Driver
	disp  Display

	fps int

	// pointer state at the previous poll. a mouse event is only sent across
	// the channel when something has changed
	lastX, lastY int

	// reused ABGR conversion buffer
	frame []byte
}

// New is the preferred method of initialisation for the Frontend type. An
// fps of zero or less selects the default display rate.
func New(main *gatearray.MainPort, wram *wordram.WordRAM,
	mouse *megamouse.Driver, disp Display, fps int) *Frontend {

	if fps <= 0 {
		fps = defaultFPS
	}
	return &Frontend{
		main:  main,
		wram:  wram,
		mouse: mouse,
		disp:  disp,
		fps:   fps,
	}
}

// Boot waits for the Sub CPU to finish its boot sequence and verifies that
// it reported ready.
func (fe *Frontend) Boot() error {
	if err := fe.main.WaitIdle(bootDeadline); err != nil {
		return err
	}

	state, err := fe.main.Result(0)
	if err != nil {
		return err
	}
	if gatearray.SubState(state) != gatearray.StateReady {
		return curated.Errorf(BootFailed, gatearray.SubState(state))
	}

	st := fe.mouse.State()
	fe.lastX = st.X
	fe.lastY = st.Y

	logger.Log("frontend", "sub CPU ready")
	return nil
}

// Run boots the Sub CPU and then services the display until the Display
// asks to stop or the gate array powers off. Blocking; intended to be run
// on the main goroutine.
func (fe *Frontend) Run() error {
	if err := fe.Boot(); err != nil {
		return err
	}

	// the limiter. the loop does no work between ticks
	lmtr := time.NewTicker(time.Second / time.Duration(fe.fps))
	defer lmtr.Stop()

	for range lmtr.C {
		if !fe.disp.Service() {
			logger.Log("frontend", "display quit")
			return nil
		}

		if err := fe.serviceMouse(); err != nil {
			if curated.Is(err, gatearray.PowerOff) {
				return nil
			}
			return err
		}

		if err := fe.renderFrame(); err != nil {
			if curated.Is(err, gatearray.PowerOff) {
				return nil
			}
			return err
		}
	}

	return nil
}

// serviceMouse polls the mouse and forwards any activity to the kernel as a
// single MouseEvent command.
func (fe *Frontend) serviceMouse() error {
	fe.mouse.Poll()
	st := fe.mouse.State()
	if !st.Connected {
		return nil
	}

	moved := st.X != fe.lastX || st.Y != fe.lastY

	var typ gatearray.MouseEventType
	switch {
	case fe.mouse.ButtonPressed(megamouse.ButtonLeft):
		typ = gatearray.MouseDown
	case fe.mouse.ButtonReleased(megamouse.ButtonLeft):
		typ = gatearray.MouseUp
	case moved && st.Buttons&megamouse.ButtonLeft != 0:
		typ = gatearray.MouseDrag
	case moved:
		typ = gatearray.MouseMove
	default:
		return nil
	}

	fe.lastX = st.X
	fe.lastY = st.Y

	ev := gatearray.MouseEvent{
		X:       st.X,
		Y:       st.Y,
		Type:    typ,
		Buttons: st.Buttons,
		DX:      st.DX,
	}

	p0, p1, p2, p3 := ev.Params()
	pending, err := fe.main.Send(gatearray.CmdMouseEvent, p0, p1, p2, p3)
	if err != nil {
		return err
	}
	status, err := pending.Wait()
	if err != nil {
		return err
	}
	if status != gatearray.StatusDone {
		logger.Logf("frontend", "mouse event rejected (%s)", status)
	}
	return nil
}

// renderFrame asks the kernel for a frame and presents the result. An error
// status from the kernel skips the frame rather than ending the loop.
func (fe *Frontend) renderFrame() error {
	pending, err := fe.main.Send(gatearray.CmdRenderFrame, 0, 0, 0, 0)
	if err != nil {
		return err
	}
	status, err := pending.Wait()
	if err != nil {
		return err
	}
	if status != gatearray.StatusDone {
		logger.Logf("frontend", "render failed (%s). frame skipped", status)
		return nil
	}

	// Done means the kernel has surrendered the bank it just painted
	bank := fe.wram.MainBank()
	src := bank.Pixels()

	if len(fe.frame) != len(src)*PixelDepth {
		fe.frame = make([]byte, len(src)*PixelDepth)
	}
	convertFrame(fe.frame, src)

	return fe.disp.SetFrame(fe.frame, wordram.ScreenWidth, wordram.ScreenHeight)
}
