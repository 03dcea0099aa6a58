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

package curated_test

import (
	"testing"

	"github.com/Project12x/segaos/curated"
	"github.com/Project12x/segaos/test"
)

const testPattern = "test: %v"

func TestIs(t *testing.T) {
	e := curated.Errorf(testPattern, 10)
	test.ExpectSuccess(t, curated.Is(e, testPattern))
	test.ExpectFailure(t, curated.Is(e, "some other pattern"))
	test.ExpectSuccess(t, curated.IsAny(e))
	test.ExpectFailure(t, curated.IsAny(nil))
}

func TestHas(t *testing.T) {
	e := curated.Errorf(testPattern, 10)
	f := curated.Errorf("wrapping: %v", e)

	test.ExpectSuccess(t, curated.Has(f, testPattern))
	test.ExpectFailure(t, curated.Is(f, testPattern))
	test.ExpectSuccess(t, curated.Is(f, "wrapping: %v"))
}

func TestNormalisation(t *testing.T) {
	e := curated.Errorf("window manager: %v", curated.Errorf("window manager: %v", "pool exhausted"))
	test.ExpectEquality(t, e.Error(), "window manager: pool exhausted")
}
