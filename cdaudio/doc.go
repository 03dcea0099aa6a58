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

// Package cdaudio stands in for the CD drive's audio tracks. Numbered track
// files (track02.wav, track03.mp3, etc) live in a directory; Play decodes
// the requested track to 16bit 44.1kHz stereo PCM and plays it through the
// platform audio device.
//
// The audio device is opened lazily on the first Play. A kernel wired to a
// Player in a headless or test build therefore never touches the device
// unless a CD command actually arrives.
package cdaudio
