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

package cdaudio

import (
	"bytes"
	"time"

	"github.com/Project12x/segaos/curated"
	"github.com/Project12x/segaos/logger"
	"github.com/ebitengine/oto/v3"
)

// NoDevice is returned when the platform audio device cannot be opened.
const NoDevice = "cd audio: audio device: %v"

// Player decodes numbered track files and plays them through the platform
// audio device. It implements the kernel's CDPlayer interface.
//
// Player is called from the kernel goroutine only.
type Player struct {
	dir string

	// created on first Play
	ctx *oto.Context

	current *oto.Player
}

// NewPlayer is the preferred method of initialisation for the Player type.
// The directory is not checked until a track is requested.
func NewPlayer(dir string) *Player {
	return &Player{dir: dir}
}

// Play decodes the numbered track and starts playback, stopping any track
// already playing. Blocks only for the decode, not the playback.
func (p *Player) Play(track int) error {
	path, err := trackPath(p.dir, track)
	if err != nil {
		return err
	}

	pcm, err := decodeTrack(path)
	if err != nil {
		return err
	}

	if err := p.ensureContext(); err != nil {
		return err
	}

	_ = p.Stop()

	p.current = p.ctx.NewPlayer(bytes.NewReader(pcm))
	p.current.Play()

	logger.Logf("cdaudio", "playing %s (%.1fs)", path,
		float64(len(pcm))/float64(sampleRate*numChannels*2))
	return nil
}

// Stop halts playback. Stopping an idle player is not an error.
func (p *Player) Stop() error {
	if p.current == nil {
		return nil
	}
	err := p.current.Close()
	p.current = nil
	return err
}

func (p *Player) ensureContext() error {
	if p.ctx != nil {
		return nil
	}

	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: numChannels,
		Format:       oto.FormatSignedInt16LE,
	})
	if err != nil {
		return curated.Errorf(NoDevice, err)
	}

	select {
	case <-ready:
	case <-time.After(5 * time.Second):
		return curated.Errorf(NoDevice, "device not ready")
	}

	p.ctx = ctx
	return nil
}
