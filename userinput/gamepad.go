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

package userinput

import (
	"fmt"
	"maps"
)

// Gamepad is the state of a single connected gamepad. The gamepads in a
// Snapshot are copies of the live state and cannot be changed.
type Gamepad struct {
	id   int
	name string

	buttons Buttons[GamepadButton]

	// analog intensity of buttons. a button is only present in the map once
	// the gamepad has reported it
	values map[GamepadButton]float32

	// axes are only present in the map once the gamepad has reported them
	axes map[GamepadAxis]float32
}

func newGamepad(id int, name string) *Gamepad {
	return &Gamepad{
		id:     id,
		name:   name,
		values: make(map[GamepadButton]float32),
		axes:   make(map[GamepadAxis]float32),
	}
}

func (g *Gamepad) String() string {
	if g.name == "" {
		return fmt.Sprintf("gamepad %d", g.id)
	}
	return fmt.Sprintf("gamepad %d (%s)", g.id, g.name)
}

// ID returns the ID given to the gamepad by the host.
func (g *Gamepad) ID() int {
	return g.id
}

// Name returns the name of the gamepad as reported by the host. The name may
// be empty.
func (g *Gamepad) Name() string {
	return g.name
}

// Pressed returns true if the button is currently pressed.
func (g *Gamepad) Pressed(b GamepadButton) bool {
	return g.buttons.Pressed(b)
}

// JustPressed returns true if the button was pressed during this frame.
func (g *Gamepad) JustPressed(b GamepadButton) bool {
	return g.buttons.JustPressed(b)
}

// JustReleased returns true if the button was released during this frame.
func (g *Gamepad) JustReleased(b GamepadButton) bool {
	return g.buttons.JustReleased(b)
}

// Button returns the analog intensity of the button. Returns false if the
// gamepad has never reported the button.
func (g *Gamepad) Button(b GamepadButton) (float32, bool) {
	v, ok := g.values[b]
	return v, ok
}

// Axis returns the value of the axis. Returns false if the gamepad has never
// reported the axis.
func (g *Gamepad) Axis(a GamepadAxis) (float32, bool) {
	v, ok := g.axes[a]
	return v, ok
}

func (g *Gamepad) setButton(b GamepadButton, down bool, value float32) {
	if down {
		if value == 0.0 {
			value = 1.0
		}
		g.buttons.press(b)
	} else {
		g.buttons.release(b)
	}
	g.values[b] = value
}

func (g *Gamepad) setAxis(a GamepadAxis, value float32) {
	g.axes[a] = value
}

func (g *Gamepad) clone() *Gamepad {
	return &Gamepad{
		id:      g.id,
		name:    g.name,
		buttons: g.buttons.clone(),
		values:  maps.Clone(g.values),
		axes:    maps.Clone(g.axes),
	}
}
