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

package axis

import (
	"fmt"

	"github.com/jetsetilly/presshere/userinput"
)

// Empty never has a value.
type Empty struct{}

func (Empty) Value(*userinput.Snapshot) (float32, bool) { return 0, false }
func (e Empty) Clone() Binding                          { return e }
func (Empty) String() string                            { return "none" }

// Constant always has the same value.
type Constant float32

func (c Constant) Value(*userinput.Snapshot) (float32, bool) { return float32(c), true }
func (c Constant) Clone() Binding                            { return c }

func (c Constant) String() string {
	return fmt.Sprintf("%v", float32(c))
}

// Key has the value 1.0 when the key is pressed and no value otherwise.
type Key userinput.Key

func (k Key) Value(s *userinput.Snapshot) (float32, bool) {
	if s.Keys().Pressed(userinput.Key(k)) {
		return 1.0, true
	}
	return 0, false
}

func (k Key) Clone() Binding {
	return k
}

func (k Key) String() string {
	return fmt.Sprintf("key(%s)", string(k))
}

// MouseButton has the value 1.0 when the button is pressed and no value
// otherwise.
type MouseButton userinput.MouseButton

func (b MouseButton) Value(s *userinput.Snapshot) (float32, bool) {
	if s.MouseButtons().Pressed(userinput.MouseButton(b)) {
		return 1.0, true
	}
	return 0, false
}

func (b MouseButton) Clone() Binding {
	return b
}

func (b MouseButton) String() string {
	return fmt.Sprintf("mouse(%s)", userinput.MouseButton(b))
}

// GamepadButton is the analog intensity of a gamepad button. The value is
// taken from the first gamepad that has reported the button.
type GamepadButton userinput.GamepadButton

func (b GamepadButton) Value(s *userinput.Snapshot) (float32, bool) {
	for _, g := range s.Gamepads() {
		if v, ok := g.Button(userinput.GamepadButton(b)); ok {
			return v, true
		}
	}
	return 0, false
}

func (b GamepadButton) Clone() Binding {
	return b
}

func (b GamepadButton) String() string {
	return fmt.Sprintf("gamepad(%s)", userinput.GamepadButton(b))
}

// GamepadAxis is the value of a gamepad axis. The value is taken from the
// first gamepad that has reported the axis.
type GamepadAxis userinput.GamepadAxis

func (a GamepadAxis) Value(s *userinput.Snapshot) (float32, bool) {
	for _, g := range s.Gamepads() {
		if v, ok := g.Axis(userinput.GamepadAxis(a)); ok {
			return v, true
		}
	}
	return 0, false
}

func (a GamepadAxis) Clone() Binding {
	return a
}

func (a GamepadAxis) String() string {
	return fmt.Sprintf("gamepad(%s)", userinput.GamepadAxis(a))
}

// MouseX is the horizontal mouse movement during the frame. No value if the
// mouse did not move during the frame.
type MouseX struct{}

func (MouseX) Value(s *userinput.Snapshot) (float32, bool) {
	m := s.MouseMotion()
	if len(m) == 0 {
		return 0, false
	}
	var sum float32
	for _, e := range m {
		sum += e.DX
	}
	return sum, true
}

func (m MouseX) Clone() Binding { return m }
func (MouseX) String() string   { return "mouse(X)" }

// MouseY is the vertical mouse movement during the frame. No value if the
// mouse did not move during the frame.
type MouseY struct{}

func (MouseY) Value(s *userinput.Snapshot) (float32, bool) {
	m := s.MouseMotion()
	if len(m) == 0 {
		return 0, false
	}
	var sum float32
	for _, e := range m {
		sum += e.DY
	}
	return sum, true
}

func (m MouseY) Clone() Binding { return m }
func (MouseY) String() string   { return "mouse(Y)" }

// DefaultPixelsPerLine is the number of pixels in a single line of mouse
// wheel scrolling. Used when the PixelsPerLine field of MouseWheel or
// MouseWheelX is zero.
const DefaultPixelsPerLine = 16.0

// MouseWheel is the amount of vertical scrolling during the frame, measured in
// pixels. No value if there was no scrolling during the frame.
type MouseWheel struct {
	// the number of pixels in a line for wheels that scroll in lines. the
	// zero value means DefaultPixelsPerLine
	PixelsPerLine float32
}

func (w MouseWheel) Value(s *userinput.Snapshot) (float32, bool) {
	return wheel(s, w.PixelsPerLine, func(e userinput.EventMouseWheel) float32 {
		return e.Y
	})
}

func (w MouseWheel) Clone() Binding { return w }
func (MouseWheel) String() string   { return "wheel(Y)" }

// MouseWheelX is the amount of horizontal scrolling during the frame. See
// MouseWheel.
type MouseWheelX struct {
	PixelsPerLine float32
}

func (w MouseWheelX) Value(s *userinput.Snapshot) (float32, bool) {
	return wheel(s, w.PixelsPerLine, func(e userinput.EventMouseWheel) float32 {
		return e.X
	})
}

func (w MouseWheelX) Clone() Binding { return w }
func (MouseWheelX) String() string   { return "wheel(X)" }

func wheel(s *userinput.Snapshot, ppl float32, get func(userinput.EventMouseWheel) float32) (float32, bool) {
	events := s.MouseWheel()
	if len(events) == 0 {
		return 0, false
	}

	if ppl == 0 {
		ppl = DefaultPixelsPerLine
	}

	var sum float32
	for _, e := range events {
		switch e.Unit {
		case userinput.ScrollLine:
			sum += get(e) * ppl
		default:
			sum += get(e)
		}
	}
	return sum, true
}
