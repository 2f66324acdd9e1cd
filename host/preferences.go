// This file is part of Presshere.
//
// Presshere is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Presshere is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Presshere.  If not, see <https://www.gnu.org/licenses/>.

package host

import (
	"time"

	"github.com/jetsetilly/presshere/axis"
	"github.com/jetsetilly/presshere/curated"
	"github.com/jetsetilly/presshere/paths"
	"github.com/jetsetilly/presshere/prefs"
)

// Sentinal error pattern returned when a preference is given an unusable
// value.
const InvalidPreference = "host: invalid value for %s (%v)"

// Preferences for the host and for the bindings created by the application.
type Preferences struct {
	dsk *prefs.Disk

	// frames per second of the host loop
	FPS prefs.Int

	// conversion factor for pixel scrolling. see axis.MouseWheel
	PixelsPerLine prefs.Float

	// threshold used by deadzone filters
	Deadzone prefs.Float

	// time constant in seconds used by smoothing filters
	Smoothing prefs.Float

	// milliseconds a terminal key remains pressed after it was last seen
	HoldDuration prefs.Int
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

const (
	fps           = 60
	pixelsPerLine = axis.DefaultPixelsPerLine
	deadzone      = 0.1
	smoothing     = 0.05
	holdDuration  = 150
)

// NewPreferences is the preferred method of initialisation for the
// Preferences type. If path is empty then the default preferences file in the
// resource directory is used.
func NewPreferences(path string) (*Preferences, error) {
	p := &Preferences{}
	p.SetDefaults()

	p.FPS.SetHookPre(func(v prefs.Value) error {
		if v.(int) <= 0 {
			return curated.Errorf(InvalidPreference, "host.fps", v)
		}
		return nil
	})
	p.PixelsPerLine.SetHookPre(func(v prefs.Value) error {
		if v.(float64) <= 0 {
			return curated.Errorf(InvalidPreference, "input.pixelsPerLine", v)
		}
		return nil
	})
	p.Deadzone.SetHookPre(func(v prefs.Value) error {
		if f := v.(float64); f < 0 || f >= 1 {
			return curated.Errorf(InvalidPreference, "input.deadzone", v)
		}
		return nil
	})
	p.HoldDuration.SetHookPre(func(v prefs.Value) error {
		if v.(int) <= 0 {
			return curated.Errorf(InvalidPreference, "input.holdDuration", v)
		}
		return nil
	})

	var err error
	if path == "" {
		path, err = paths.ResourcePath("", prefs.DefaultPrefsFile)
		if err != nil {
			return nil, err
		}
	}

	p.dsk, err = prefs.NewDisk(path)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Add("host.fps", &p.FPS)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("input.pixelsPerLine", &p.PixelsPerLine)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("input.deadzone", &p.Deadzone)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("input.smoothing", &p.Smoothing)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("input.holdDuration", &p.HoldDuration)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Load(true)
	if err != nil && !prefs.IsNoPrefsFile(err) {
		return nil, err
	}

	return p, nil
}

// SetDefaults reverts all preferences to the default values.
func (p *Preferences) SetDefaults() {
	p.FPS.Set(fps)
	p.PixelsPerLine.Set(pixelsPerLine)
	p.Deadzone.Set(deadzone)
	p.Smoothing.Set(smoothing)
	p.HoldDuration.Set(holdDuration)
}

// Load current preferences from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load(false)
}

// Save current preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}

// Hold returns the HoldDuration preference as a time.Duration.
func (p *Preferences) Hold() time.Duration {
	return time.Duration(p.HoldDuration.Get().(int)) * time.Millisecond
}

// Float32 is a convenience function for reading a Float preference as the
// float32 type used by the axis package.
func Float32(p *prefs.Float) float32 {
	return float32(p.Get().(float64))
}
