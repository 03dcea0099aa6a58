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

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Project12x/segaos/config"
	"github.com/Project12x/segaos/curated"
	"github.com/Project12x/segaos/test"
	"github.com/Project12x/segaos/wm"
)

func TestMissingFileIsDefaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "segaos.yaml"))
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, cfg, config.Default())
	test.ExpectEquality(t, cfg.DesktopPattern(), wm.PatternGray)
}

func TestOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "segaos.yaml")
	err := os.WriteFile(path, []byte(`
display:
  scale: 2
  fullscreen: true
desktop:
  pattern: checker
`), 0644)
	test.ExpectSuccess(t, err)

	cfg, err := config.Load(path)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, cfg.Display.Scale, 2)
	test.ExpectSuccess(t, cfg.Display.Fullscreen)
	test.ExpectEquality(t, cfg.DesktopPattern(), wm.PatternChecker)

	// unmentioned fields keep their defaults
	test.ExpectEquality(t, cfg.Display.FPS, config.Default().Display.FPS)
	test.ExpectEquality(t, cfg.CD.Tracks, config.Default().CD.Tracks)
}

func TestValidation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "segaos.yaml")
	err := os.WriteFile(path, []byte("display:\n  scale: 20\n"), 0644)
	test.ExpectSuccess(t, err)

	_, err = config.Load(path)
	test.ExpectFailure(t, err)
	if !curated.Is(err, config.BadValue) {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestUnparseable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "segaos.yaml")
	err := os.WriteFile(path, []byte("display: ["), 0644)
	test.ExpectSuccess(t, err)

	_, err = config.Load(path)
	test.ExpectFailure(t, err)
	if !curated.Is(err, config.BadFile) {
		t.Errorf("unexpected error: %v", err)
	}
}
