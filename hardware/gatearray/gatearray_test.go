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

package gatearray_test

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/Project12x/segaos/curated"
	"github.com/Project12x/segaos/hardware/gatearray"
	"github.com/Project12x/segaos/test"
)

func TestHandshake(t *testing.T) {
	ga := gatearray.NewGateArray()
	main := ga.Main()
	sub := ga.Sub()

	// back processor: one command, echo parameters as results
	go func() {
		op, err := sub.WaitCommand()
		if err != nil {
			return
		}
		sub.Acknowledge()
		for i := 0; i < 4; i++ {
			v, _ := sub.Param(i)
			_ = sub.WriteResult(i, v+1)
		}
		_ = op
		_ = sub.Complete()
	}()

	pending, err := main.Send(gatearray.CmdOpenWindow, 10, 20, 30, 40)
	test.ExpectSuccess(t, err)

	status, err := pending.Wait()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, status, gatearray.StatusDone)

	for i := 0; i < 4; i++ {
		v, err := main.Result(i)
		test.ExpectSuccess(t, err)
		test.ExpectEquality(t, int(v), (i+1)*10+1)
	}

	// channel has returned to idle
	test.ExpectEquality(t, main.SubFlag(), gatearray.StatusIdle)
}

func TestFail(t *testing.T) {
	ga := gatearray.NewGateArray()
	main := ga.Main()
	sub := ga.Sub()

	go func() {
		_, _ = sub.WaitCommand()
		sub.Acknowledge()
		_ = sub.Fail()
	}()

	pending, err := main.Send(gatearray.CmdFileRead, 0, 0, 0, 0)
	test.ExpectSuccess(t, err)

	status, err := pending.Wait()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, status, gatearray.StatusError)
	test.ExpectEquality(t, main.SubFlag(), gatearray.StatusIdle)
}

// a second Send must block until the first command's token has been consumed
// and must never corrupt the in-flight parameters.
func TestSingleFlight(t *testing.T) {
	ga := gatearray.NewGateArray()
	main := ga.Main()
	sub := ga.Sub()

	var firstDone atomic.Bool
	secondSent := make(chan struct{})

	// back processor: service two commands. the first command's parameters
	// are sampled after a delay, giving the second Send every chance to
	// corrupt them if it were going to.
	params := make(chan uint16, 2)
	go func() {
		for i := 0; i < 2; i++ {
			_, err := sub.WaitCommand()
			if err != nil {
				return
			}
			sub.Acknowledge()
			time.Sleep(10 * time.Millisecond)
			v, _ := sub.Param(0)
			params <- v
			_ = sub.Complete()
		}
	}()

	pending, err := main.Send(gatearray.CmdRenderFrame, 111, 0, 0, 0)
	test.ExpectSuccess(t, err)

	go func() {
		// second command from a second sender. must block until the first
		// command has fully completed
		p2, err := main.Send(gatearray.CmdRenderFrame, 222, 0, 0, 0)
		if err != nil {
			return
		}
		if !firstDone.Load() {
			t.Error("second Send returned before first command completed")
		}
		close(secondSent)
		_, _ = p2.Wait()
	}()

	_, err = pending.Wait()
	firstDone.Store(true)
	test.ExpectSuccess(t, err)

	select {
	case <-secondSent:
	case <-time.After(time.Second):
		t.Fatal("second Send did not proceed after first command completed")
	}

	test.ExpectEquality(t, <-params, 111)
	test.ExpectEquality(t, <-params, 222)
}

func TestQuitUnblocks(t *testing.T) {
	ga := gatearray.NewGateArray()
	sub := ga.Sub()

	errs := make(chan error)
	go func() {
		_, err := sub.WaitCommand()
		errs <- err
	}()

	// give the goroutine a chance to block
	time.Sleep(time.Millisecond)
	ga.Quit()

	select {
	case err := <-errs:
		test.ExpectSuccess(t, curated.Is(err, gatearray.PowerOff))
	case <-time.After(time.Second):
		t.Fatal("WaitCommand did not unblock on Quit")
	}
}

func TestWaitIdleDeadline(t *testing.T) {
	ga := gatearray.NewGateArray()
	main := ga.Main()
	sub := ga.Sub()

	// sub CPU is wedged in the busy state
	sub.SetFlag(gatearray.StatusBusy)

	err := main.WaitIdle(10 * time.Millisecond)
	test.ExpectSuccess(t, curated.Is(err, gatearray.NotReady))

	// and recovers when the flag clears
	sub.SetFlag(gatearray.StatusIdle)
	test.ExpectSuccess(t, main.WaitIdle(time.Second))
}

func TestBadRegister(t *testing.T) {
	ga := gatearray.NewGateArray()
	main := ga.Main()
	sub := ga.Sub()

	_, err := main.Result(8)
	test.ExpectSuccess(t, curated.Is(err, gatearray.BadRegister))
	test.ExpectSuccess(t, curated.Is(main.SendParam(-1, 0), gatearray.BadRegister))
	_, err = sub.Param(100)
	test.ExpectSuccess(t, curated.Is(err, gatearray.BadRegister))
}
