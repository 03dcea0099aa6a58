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

package geom_test

import (
	"testing"

	"github.com/Project12x/segaos/geom"
	"github.com/Project12x/segaos/test"
)

func TestContains(t *testing.T) {
	r := geom.Rect{Left: 10, Top: 10, Right: 100, Bottom: 100}

	test.ExpectSuccess(t, r.Contains(geom.Point{X: 10, Y: 10}))
	test.ExpectSuccess(t, r.Contains(geom.Point{X: 99, Y: 99}))

	// right and bottom edges are exclusive
	test.ExpectFailure(t, r.Contains(geom.Point{X: 100, Y: 50}))
	test.ExpectFailure(t, r.Contains(geom.Point{X: 50, Y: 100}))
}

func TestIntersects(t *testing.T) {
	a := geom.XYWH(0, 0, 10, 10)
	b := geom.XYWH(9, 9, 10, 10)
	c := geom.XYWH(10, 10, 10, 10)

	test.ExpectSuccess(t, a.Intersects(b))
	test.ExpectFailure(t, a.Intersects(c))

	// union of disjoint rectangles spans both
	u := a.Union(c)
	test.ExpectEquality(t, u, geom.Rect{Left: 0, Top: 0, Right: 20, Bottom: 20})
}

func TestClip(t *testing.T) {
	bounds := geom.XYWH(0, 0, 320, 224)
	r := geom.Rect{Left: -10, Top: 200, Right: 50, Bottom: 300}

	clipped := r.ClipTo(bounds)
	test.ExpectEquality(t, clipped, geom.Rect{Left: 0, Top: 200, Right: 50, Bottom: 224})

	test.ExpectSuccess(t, geom.XYWH(400, 0, 10, 10).ClipTo(bounds).Empty())
}
