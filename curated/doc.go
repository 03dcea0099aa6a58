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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. It takes a
// formatting pattern and placeholder values, like fmt.Errorf(). The pattern
// is what distinguishes one curated error from another:
//
//	e := curated.Errorf("gate array: unknown opcode (%#02x)", op)
//
//	if curated.Is(e, "gate array: unknown opcode (%#02x)") {
//		fmt.Println("true")
//	}
//
// The Has() function is like Is() but looks for the pattern anywhere in the
// error chain, rather than only at the outermost error.
//
// Error messages should be lowercase and prefixed with the subsystem that
// created them. When curated errors wrap other curated errors the duplicate
// message parts are normalised away by the Error() function.
package curated
