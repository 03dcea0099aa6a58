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

// Package megamouse implements the Sega Mega Mouse driver. The Main CPU
// polls the mouse once per display interval through the controller port
// using the TH/TR/TL nibble handshake: nine nibbles per report carrying
// device id, overflow flags, sign bits, buttons and the X/Y deltas.
//
// Unlike the command handshake between the two CPUs, the mouse handshake has
// a bounded retry budget. A mouse that stops responding mid-transfer is
// reported as disconnected and the driver recovers on a later poll; it is
// never escalated. This asymmetry is deliberate: a missing mouse is an
// ordinary condition, a missing co-processor is not.
//
// The Port interface stands in for the controller-port hardware. The
// Simulated type implements it with a faithful Mega Mouse report format and
// is fed by the GUI event loop (or by a test).
package megamouse
