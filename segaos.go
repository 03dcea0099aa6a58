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

package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"

	"github.com/Project12x/segaos/cdaudio"
	"github.com/Project12x/segaos/config"
	"github.com/Project12x/segaos/frontend"
	"github.com/Project12x/segaos/gui"
	"github.com/Project12x/segaos/hardware"
	"github.com/Project12x/segaos/kernel"
	"github.com/Project12x/segaos/logger"
	"github.com/Project12x/segaos/version"
)

func init() {
	// SDL insists on the main thread
	runtime.LockOSThread()
}

func main() {
	configPath := flag.String("config", config.DefaultFilename, "configuration file")
	headless := flag.Bool("headless", false, "run without a display")
	frames := flag.Int("frames", 0, "in headless mode, stop after this many frames")
	verbose := flag.Bool("log", false, "echo the log to stderr")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		vers, rev, _ := version.Version()
		fmt.Printf("%s %s (%s)\n", version.ApplicationName, vers, rev)
		return
	}

	if err := run(*configPath, *headless, *frames, *verbose); err != nil {
		fmt.Fprintf(os.Stderr, "* %v\n", err)
		os.Exit(10)
	}
}

func run(configPath string, headless bool, frames int, verbose bool) error {
	if verbose {
		logger.SetEcho(os.Stderr)
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	con := hardware.NewConsole(cfg.Input.Port)
	defer con.PowerOff()

	// the back processor
	k := kernel.New(con.GateArray.Sub(), con.WordRAM, cdaudio.NewPlayer(cfg.CD.Tracks))
	k.SetDesktop(cfg.DesktopPattern())
	kernelDone := make(chan bool)
	go func() {
		k.Run()
		close(kernelDone)
	}()

	// the front processor runs on this goroutine, attached to either a real
	// display or the headless fingerprinting one
	var disp frontend.Display

	if headless {
		hl := frontend.NewHeadless(frames)
		disp = hl
		defer func() {
			fmt.Printf("%d frames, digest %s\n", hl.FrameCount(), hl)
		}()
	} else {
		scr, err := gui.NewSDL(con.Mouse, cfg.Display.Scale, cfg.Display.Fullscreen)
		if err != nil {
			return err
		}
		defer scr.Destroy()
		disp = scr
	}

	fe := frontend.New(con.GateArray.Main(), con.WordRAM,
		con.MouseDriver, disp, cfg.Display.FPS)

	err = fe.Run()

	// unwind the kernel before the deferred cleanups run
	con.PowerOff()
	<-kernelDone

	return err
}
