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
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/Project12x/segaos/curated"
	"github.com/go-audio/wav"
	"github.com/hajimehoshi/go-mp3"
)

// MissingTrack is returned by Play when no file exists for the track number.
const MissingTrack = "cd audio: no file for track %d in %s"

// BadTrack is returned when a track file exists but cannot be decoded.
const BadTrack = "cd audio: %s: %v"

// CD audio is 16bit stereo at 44.1kHz. everything decoded is brought to this
// format before playback.
const (
	sampleRate  = 44100
	numChannels = 2
)

// trackPath finds the file for a track number, trying the supported
// extensions in order.
func trackPath(dir string, track int) (string, error) {
	for _, ext := range []string{"wav", "mp3"} {
		p := filepath.Join(dir, fmt.Sprintf("track%02d.%s", track, ext))
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}
	return "", curated.Errorf(MissingTrack, track, dir)
}

// decodeTrack loads a track file and returns interleaved stereo s16le PCM at
// the playback rate.
func decodeTrack(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, curated.Errorf(BadTrack, path, err)
	}
	defer f.Close()

	var pcm []int16
	var rate int

	switch strings.ToLower(filepath.Ext(path)) {
	case ".wav":
		pcm, rate, err = decodeWAV(f)
	case ".mp3":
		pcm, rate, err = decodeMP3(f)
	default:
		err = fmt.Errorf("unsupported file type")
	}
	if err != nil {
		return nil, curated.Errorf(BadTrack, path, err)
	}

	pcm = resample(pcm, rate, sampleRate)

	// to little-endian bytes
	b := make([]byte, len(pcm)*2)
	for i, s := range pcm {
		b[i*2] = byte(s)
		b[i*2+1] = byte(s >> 8)
	}
	return b, nil
}

func decodeWAV(f *os.File) ([]int16, int, error) {
	d := wav.NewDecoder(f)
	if !d.IsValidFile() {
		return nil, 0, fmt.Errorf("not a valid wav file")
	}

	buf, err := d.FullPCMBuffer()
	if err != nil {
		return nil, 0, err
	}

	// bring whatever bit depth the file uses to 16 bits. 8 bit wav samples
	// are unsigned, centred on 128
	shift := 16 - int(buf.SourceBitDepth)
	toS16 := func(v int) int16 {
		if buf.SourceBitDepth == 8 {
			return int16(v-128) << 8
		}
		if shift < 0 {
			return int16(v >> -shift)
		}
		return int16(v << shift)
	}

	channels := buf.Format.NumChannels
	frames := len(buf.Data) / channels

	pcm := make([]int16, 0, frames*numChannels)
	for i := 0; i < frames; i++ {
		l := toS16(buf.Data[i*channels])
		r := l
		if channels > 1 {
			r = toS16(buf.Data[i*channels+1])
		}
		pcm = append(pcm, l, r)
	}

	return pcm, buf.Format.SampleRate, nil
}

func decodeMP3(f *os.File) ([]int16, int, error) {
	d, err := mp3.NewDecoder(f)
	if err != nil {
		return nil, 0, err
	}

	// the decoder always produces interleaved stereo s16le
	raw, err := io.ReadAll(d)
	if err != nil {
		return nil, 0, err
	}

	pcm := make([]int16, len(raw)/2)
	for i := range pcm {
		pcm[i] = int16(raw[i*2]) | int16(raw[i*2+1])<<8
	}

	return pcm, d.SampleRate(), nil
}

// resample converts interleaved stereo PCM between sample rates by linear
// interpolation. Identical rates return the input unchanged.
func resample(pcm []int16, from, to int) []int16 {
	if from == to || from <= 0 {
		return pcm
	}

	inFrames := len(pcm) / numChannels
	outFrames := inFrames * to / from
	out := make([]int16, outFrames*numChannels)

	for i := 0; i < outFrames; i++ {
		// position in the input, fixed point
		pos := i * from / to
		frac := i*from%to

		next := pos + 1
		if next >= inFrames {
			next = inFrames - 1
		}

		for c := 0; c < numChannels; c++ {
			a := int(pcm[pos*numChannels+c])
			b := int(pcm[next*numChannels+c])
			out[i*numChannels+c] = int16(a + (b-a)*frac/to)
		}
	}

	return out
}
