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

package trigger

import (
	"fmt"

	"github.com/jetsetilly/presshere/userinput"
)

// Empty is a trigger that is never pressed.
type Empty struct{}

func (Empty) Pressed(*userinput.Snapshot) bool      { return false }
func (Empty) JustPressed(*userinput.Snapshot) bool  { return false }
func (Empty) JustReleased(*userinput.Snapshot) bool { return false }
func (e Empty) Clone() Binding                      { return e }
func (Empty) String() string                        { return "none" }

// Constant is a trigger that is always pressed or never pressed. It never
// reports an edge.
type Constant bool

func (c Constant) Pressed(*userinput.Snapshot) bool   { return bool(c) }
func (Constant) JustPressed(*userinput.Snapshot) bool  { return false }
func (Constant) JustReleased(*userinput.Snapshot) bool { return false }
func (c Constant) Clone() Binding                      { return c }

func (c Constant) String() string {
	return fmt.Sprintf("%v", bool(c))
}

// Key is a trigger for a keyboard key.
type Key userinput.Key

func (k Key) Pressed(s *userinput.Snapshot) bool {
	return s.Keys().Pressed(userinput.Key(k))
}

func (k Key) JustPressed(s *userinput.Snapshot) bool {
	return s.Keys().JustPressed(userinput.Key(k))
}

func (k Key) JustReleased(s *userinput.Snapshot) bool {
	return s.Keys().JustReleased(userinput.Key(k))
}

func (k Key) Clone() Binding {
	return k
}

func (k Key) String() string {
	return fmt.Sprintf("key(%s)", string(k))
}

// MouseButton is a trigger for a mouse button.
type MouseButton userinput.MouseButton

func (b MouseButton) Pressed(s *userinput.Snapshot) bool {
	return s.MouseButtons().Pressed(userinput.MouseButton(b))
}

func (b MouseButton) JustPressed(s *userinput.Snapshot) bool {
	return s.MouseButtons().JustPressed(userinput.MouseButton(b))
}

func (b MouseButton) JustReleased(s *userinput.Snapshot) bool {
	return s.MouseButtons().JustReleased(userinput.MouseButton(b))
}

func (b MouseButton) Clone() Binding {
	return b
}

func (b MouseButton) String() string {
	return fmt.Sprintf("mouse(%s)", userinput.MouseButton(b))
}

// GamepadButton is a trigger for a gamepad button. The button on any of the
// connected gamepads will activate the trigger.
type GamepadButton userinput.GamepadButton

func (b GamepadButton) Pressed(s *userinput.Snapshot) bool {
	for _, g := range s.Gamepads() {
		if g.Pressed(userinput.GamepadButton(b)) {
			return true
		}
	}
	return false
}

func (b GamepadButton) JustPressed(s *userinput.Snapshot) bool {
	for _, g := range s.Gamepads() {
		if g.JustPressed(userinput.GamepadButton(b)) {
			return true
		}
	}
	return false
}

func (b GamepadButton) JustReleased(s *userinput.Snapshot) bool {
	for _, g := range s.Gamepads() {
		if g.JustReleased(userinput.GamepadButton(b)) {
			return true
		}
	}
	return false
}

func (b GamepadButton) Clone() Binding {
	return b
}

func (b GamepadButton) String() string {
	return fmt.Sprintf("gamepad(%s)", userinput.GamepadButton(b))
}
