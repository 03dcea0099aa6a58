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

// Package config loads the run-time configuration from a YAML file. A
// missing file is not an error; every field has a sensible default.
package config

import (
	"os"

	"github.com/Project12x/segaos/curated"
	"github.com/Project12x/segaos/wm"
	"gopkg.in/yaml.v3"
)

// DefaultFilename is looked for in the working directory when no explicit
// path is given.
const DefaultFilename = "segaos.yaml"

// BadFile is returned when the configuration file exists but cannot be read
// or parsed.
const BadFile = "config: %s: %v"

// BadValue is returned by Validate for an out-of-range field.
const BadValue = "config: %s"

// Config is the complete run-time configuration.
type Config struct {
	Display struct {
		// integer scale factor applied to the 320x224 frame
		Scale      int  `yaml:"scale"`
		Fullscreen bool `yaml:"fullscreen"`
		FPS        int  `yaml:"fps"`
	} `yaml:"display"`

	Input struct {
		// controller port the mouse is plugged into (1 or 2)
		Port int `yaml:"port"`
	} `yaml:"input"`

	Desktop struct {
		// "gray", "white" or "checker"
		Pattern string `yaml:"pattern"`
	} `yaml:"desktop"`

	CD struct {
		// directory containing trackNN audio files
		Tracks string `yaml:"tracks"`
	} `yaml:"cd"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	var cfg Config
	cfg.Display.Scale = 3
	cfg.Display.FPS = 30
	cfg.Input.Port = 1
	cfg.Desktop.Pattern = "gray"
	cfg.CD.Tracks = "tracks"
	return cfg
}

// Load reads the configuration file at path, layering it over the defaults.
// A file that does not exist returns the defaults without error.
func Load(path string) (Config, error) {
	cfg := Default()

	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, curated.Errorf(BadFile, path, err)
	}

	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, curated.Errorf(BadFile, path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks every field is within range.
func (cfg Config) Validate() error {
	if cfg.Display.Scale < 1 || cfg.Display.Scale > 8 {
		return curated.Errorf(BadValue, "display scale must be between 1 and 8")
	}
	if cfg.Display.FPS < 1 || cfg.Display.FPS > 240 {
		return curated.Errorf(BadValue, "display fps must be between 1 and 240")
	}
	if cfg.Input.Port != 1 && cfg.Input.Port != 2 {
		return curated.Errorf(BadValue, "input port must be 1 or 2")
	}
	switch cfg.Desktop.Pattern {
	case "gray", "white", "checker":
	default:
		return curated.Errorf(BadValue, "desktop pattern must be gray, white or checker")
	}
	return nil
}

// DesktopPattern maps the configured pattern name to the window manager's
// pattern type.
func (cfg Config) DesktopPattern() wm.DesktopPattern {
	switch cfg.Desktop.Pattern {
	case "white":
		return wm.PatternWhite
	case "checker":
		return wm.PatternChecker
	}
	return wm.PatternGray
}
