// This file is part of Gestencil.
//
// Gestencil is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gestencil is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gestencil.  If not, see <https://www.gnu.org/licenses/>.

package stencil

import (
	"fmt"

	"github.com/jetsetilly/gestencil/prefs"
)

// Preferences for the stencil package.
type Preferences struct {
	dsk *prefs.Disk

	// abort the upload if the stencil upload program cannot be built. if false
	// the upload continues with draws that do nothing and still reports that
	// the upload was attempted
	StrictPipeline prefs.Bool

	// log successful uploads. pipeline failures are always logged
	Logging prefs.Bool

	// value the stencil buffer is cleared to before the passes are drawn
	ClearValue prefs.Int
}

func (p *Preferences) String() string {
	if p.dsk == nil {
		return fmt.Sprintf("stencil.strictPipeline :: %s\nstencil.logging :: %s\nstencil.clearValue :: %s\n",
			p.StrictPipeline.String(), p.Logging.String(), p.ClearValue.String())
	}
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. An empty path means that the preferences are not stored
// on disk. Values on the command line preferences stack are applied in both
// cases.
func NewPreferences(path string) (*Preferences, error) {
	p := &Preferences{}
	p.SetDefaults()

	p.ClearValue.SetHookPre(func(v prefs.Value) error {
		if v.(int) < 0 || v.(int) > 255 {
			return fmt.Errorf("stencil: clear value must be between 0 and 255")
		}
		return nil
	})

	entries := []struct {
		key string
		p   interface {
			Set(prefs.Value) error
		}
	}{
		{"stencil.strictPipeline", &p.StrictPipeline},
		{"stencil.logging", &p.Logging},
		{"stencil.clearValue", &p.ClearValue},
	}

	if path == "" {
		for _, e := range entries {
			if ok, v := prefs.GetCommandLinePref(e.key); ok {
				if err := e.p.Set(v); err != nil {
					return nil, fmt.Errorf("stencil: %s: %w", e.key, err)
				}
			}
		}
		return p, nil
	}

	var err error
	p.dsk, err = prefs.NewDisk(path)
	if err != nil {
		return nil, err
	}
	if err = p.dsk.Add("stencil.strictPipeline", &p.StrictPipeline); err != nil {
		return nil, err
	}
	if err = p.dsk.Add("stencil.logging", &p.Logging); err != nil {
		return nil, err
	}
	if err = p.dsk.Add("stencil.clearValue", &p.ClearValue); err != nil {
		return nil, err
	}
	if err = p.dsk.Load(true); err != nil {
		return nil, err
	}

	return p, nil
}

// SetDefaults reverts all preferences to their default values.
func (p *Preferences) SetDefaults() {
	_ = p.StrictPipeline.Set(true)
	_ = p.Logging.Set(true)
	_ = p.ClearValue.Set(0)
}

// Load preferences from disk. Does nothing if the preferences are not stored
// on disk.
func (p *Preferences) Load() error {
	if p.dsk == nil {
		return nil
	}
	return p.dsk.Load(false)
}

// Save preferences to disk. Does nothing if the preferences are not stored on
// disk.
func (p *Preferences) Save() error {
	if p.dsk == nil {
		return nil
	}
	return p.dsk.Save()
}
