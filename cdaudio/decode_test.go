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

// decoding is tested in-package: the playback half of the Player needs a
// real audio device and is deliberately left alone here.
package cdaudio

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Project12x/segaos/curated"
	"github.com/Project12x/segaos/test"
	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// writeWAV creates a mono wav file of constant-amplitude samples.
func writeWAV(t *testing.T, path string, rate, bits, frames int, value int) {
	t.Helper()

	f, err := os.Create(path)
	test.ExpectSuccess(t, err)
	defer f.Close()

	enc := wav.NewEncoder(f, rate, bits, 1, 1)
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 1, SampleRate: rate},
		SourceBitDepth: bits,
		Data:           make([]int, frames),
	}
	for i := range buf.Data {
		buf.Data[i] = value
	}
	test.ExpectSuccess(t, enc.Write(buf))
	test.ExpectSuccess(t, enc.Close())
}

func TestTrackPath(t *testing.T) {
	dir := t.TempDir()
	writeWAV(t, filepath.Join(dir, "track02.wav"), sampleRate, 16, 10, 0)

	p, err := trackPath(dir, 2)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, filepath.Base(p), "track02.wav")

	_, err = trackPath(dir, 9)
	test.ExpectFailure(t, err)
	if !curated.Is(err, MissingTrack) {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestDecodeWAV(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "track02.wav")
	writeWAV(t, path, sampleRate, 16, 100, 1000)

	pcm, err := decodeTrack(path)
	test.ExpectSuccess(t, err)

	// mono in, stereo out, no resampling needed
	test.ExpectEquality(t, len(pcm), 100*numChannels*2)

	// constant amplitude survives the conversion, on both channels
	left := int16(pcm[0]) | int16(pcm[1])<<8
	right := int16(pcm[2]) | int16(pcm[3])<<8
	test.ExpectEquality(t, left, int16(1000))
	test.ExpectEquality(t, right, int16(1000))
}

func TestDecode8BitWAV(t *testing.T) {
	dir := t.TempDir()

	// 8 bit wav samples are unsigned. silence is 128 and must decode to 0
	path := filepath.Join(dir, "track05.wav")
	writeWAV(t, path, sampleRate, 8, 50, 128)

	pcm, err := decodeTrack(path)
	test.ExpectSuccess(t, err)
	left := int16(pcm[0]) | int16(pcm[1])<<8
	test.ExpectEquality(t, left, int16(0))

	// a sample above the bias lands in the positive half
	path = filepath.Join(dir, "track06.wav")
	writeWAV(t, path, sampleRate, 8, 50, 192)

	pcm, err = decodeTrack(path)
	test.ExpectSuccess(t, err)
	left = int16(pcm[0]) | int16(pcm[1])<<8
	test.ExpectEquality(t, left, int16(64<<8))
}

func TestDecodeResamples(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "track03.wav")
	writeWAV(t, path, sampleRate/2, 16, 100, 500)

	pcm, err := decodeTrack(path)
	test.ExpectSuccess(t, err)

	// half the input rate means twice the output frames
	test.ExpectEquality(t, len(pcm), 200*numChannels*2)

	// linear interpolation between equal samples is the same sample
	mid := int16(pcm[100]) | int16(pcm[101])<<8
	test.ExpectEquality(t, mid, int16(500))
}

func TestDecodeBadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "track04.wav")
	test.ExpectSuccess(t, os.WriteFile(path, []byte("not audio"), 0644))

	_, err := decodeTrack(path)
	test.ExpectFailure(t, err)
	if !curated.Is(err, BadTrack) {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestResample(t *testing.T) {
	src := []int16{0, 0, 100, 100, 200, 200, 300, 300}

	// identity
	out := resample(src, 44100, 44100)
	test.ExpectEquality(t, len(out), len(src))

	// doubling the rate doubles the frame count
	out = resample(src, 22050, 44100)
	test.ExpectEquality(t, len(out), len(src)*2)
}