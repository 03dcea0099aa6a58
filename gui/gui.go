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

// Package gui is the SDL implementation of the frontend's Display. It also
// feeds the host machine's mouse into the simulated Mega Mouse, closing the
// input loop: host mouse -> controller port -> driver -> kernel.
//
// SDL requires that all calls happen on the same OS thread that initialised
// it; the frontend loop satisfies this by owning the Display outright.
package gui

import (
	"github.com/Project12x/segaos/curated"
	"github.com/Project12x/segaos/frontend"
	"github.com/Project12x/segaos/hardware/megamouse"
	"github.com/Project12x/segaos/hardware/wordram"
	"github.com/veandco/go-sdl2/sdl"
)

// SDLError is how errors from the SDL layer are wrapped.
const SDLError = "gui: %v"

// SDL is a Display backed by an SDL window with a streaming texture the
// size of the console screen.
type SDL struct {
	sim   *megamouse.Simulated
	scale int

	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture

	// sub-pixel mouse motion left over after dividing by the window scale
	remX, remY int

	buttons uint8
}

// NewSDL is the preferred method of initialisation for the SDL type. The
// simulated mouse receives all pointer activity over the window.
func NewSDL(sim *megamouse.Simulated, scale int, fullscreen bool) (*SDL, error) {
	if scale < 1 {
		scale = 1
	}
	scr := &SDL{sim: sim, scale: scale}

	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return nil, curated.Errorf(SDLError, err)
	}

	var flags uint32 = sdl.WINDOW_SHOWN
	if fullscreen {
		flags |= sdl.WINDOW_FULLSCREEN_DESKTOP
	}

	var err error
	scr.window, err = sdl.CreateWindow("SegaOS",
		sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		int32(wordram.ScreenWidth*scale), int32(wordram.ScreenHeight*scale),
		flags)
	if err != nil {
		return nil, curated.Errorf(SDLError, err)
	}

	scr.renderer, err = sdl.CreateRenderer(scr.window, -1, sdl.RENDERER_ACCELERATED)
	if err != nil {
		return nil, curated.Errorf(SDLError, err)
	}

	// the texture is screen sized; the renderer scales it to the window
	scr.texture, err = scr.renderer.CreateTexture(sdl.PIXELFORMAT_ABGR8888,
		sdl.TEXTUREACCESS_STREAMING,
		wordram.ScreenWidth, wordram.ScreenHeight)
	if err != nil {
		return nil, curated.Errorf(SDLError, err)
	}

	_ = scr.renderer.SetLogicalSize(wordram.ScreenWidth, wordram.ScreenHeight)

	// the host cursor would sit on top of the desktop's own
	sdl.ShowCursor(sdl.DISABLE)

	return scr, nil
}

// Destroy releases the SDL resources.
func (scr *SDL) Destroy() {
	if scr.texture != nil {
		_ = scr.texture.Destroy()
	}
	if scr.renderer != nil {
		_ = scr.renderer.Destroy()
	}
	if scr.window != nil {
		_ = scr.window.Destroy()
	}
	sdl.Quit()
}

// SetFrame implements the frontend.Display interface.
func (scr *SDL) SetFrame(pixels []byte, w, h int) error {
	if err := scr.texture.Update(nil, pixels, w*frontend.PixelDepth); err != nil {
		return curated.Errorf(SDLError, err)
	}
	if err := scr.renderer.Clear(); err != nil {
		return curated.Errorf(SDLError, err)
	}
	if err := scr.renderer.Copy(scr.texture, nil, nil); err != nil {
		return curated.Errorf(SDLError, err)
	}
	scr.renderer.Present()
	return nil
}

// Service implements the frontend.Display interface. Pending SDL events are
// translated into simulated mouse activity.
func (scr *SDL) Service() bool {
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			return false

		case *sdl.MouseMotionEvent:
			scr.motion(int(ev.XRel), int(ev.YRel))

		case *sdl.MouseButtonEvent:
			var btn uint8
			switch ev.Button {
			case sdl.BUTTON_LEFT:
				btn = megamouse.ButtonLeft
			case sdl.BUTTON_RIGHT:
				btn = megamouse.ButtonRight
			case sdl.BUTTON_MIDDLE:
				btn = megamouse.ButtonMiddle
			default:
				continue
			}
			if ev.State == sdl.PRESSED {
				scr.buttons |= btn
			} else {
				scr.buttons &^= btn
			}
			scr.sim.SetButtons(scr.buttons)
		}
	}
	return true
}

// motion scales window-relative movement down to screen pixels, carrying
// the sub-pixel remainder so slow movement is not lost.
func (scr *SDL) motion(dx, dy int) {
	dx += scr.remX
	dy += scr.remY
	scr.remX = dx % scr.scale
	scr.remY = dy % scr.scale
	scr.sim.Move(dx/scr.scale, dy/scr.scale)
}
