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

package sdlinput

import (
	"testing"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/jetsetilly/presshere/assert"
	"github.com/jetsetilly/presshere/curated"
	"github.com/jetsetilly/presshere/test"
	"github.com/jetsetilly/presshere/userinput"
)

func TestMouseButton(t *testing.T) {
	ev, ok := translateMouseButton(&sdl.MouseButtonEvent{Type: sdl.MOUSEBUTTONDOWN, Button: sdl.BUTTON_X1})
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, ev.Button, userinput.MouseButtonBack)
	test.ExpectEquality(t, ev.Down, true)

	ev, ok = translateMouseButton(&sdl.MouseButtonEvent{Type: sdl.MOUSEBUTTONUP, Button: sdl.BUTTON_LEFT})
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, ev.Button, userinput.MouseButtonLeft)
	test.ExpectEquality(t, ev.Down, false)

	_, ok = translateMouseButton(&sdl.MouseButtonEvent{Button: 99})
	test.ExpectFailure(t, ok)
}

func TestMouseMotionAndWheel(t *testing.T) {
	m := translateMouseMotion(&sdl.MouseMotionEvent{XRel: -3, YRel: 4})
	test.ExpectEquality(t, m.DX, -3)
	test.ExpectEquality(t, m.DY, 4)

	w := translateMouseWheel(&sdl.MouseWheelEvent{X: 1, Y: -2})
	test.ExpectEquality(t, w.Unit, userinput.ScrollLine)
	test.ExpectEquality(t, w.X, 1)
	test.ExpectEquality(t, w.Y, -2)

	w = translateMouseWheel(&sdl.MouseWheelEvent{X: 1, Y: -2, Direction: uint32(sdl.MOUSEWHEEL_FLIPPED)})
	test.ExpectEquality(t, w.X, -1)
	test.ExpectEquality(t, w.Y, 2)
}

func TestControllerButton(t *testing.T) {
	ev, ok := translateControllerButton(&sdl.ControllerButtonEvent{
		Which:  2,
		Button: uint8(sdl.CONTROLLER_BUTTON_A),
		State:  uint8(sdl.PRESSED),
	})
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, ev.ID, 2)
	test.ExpectEquality(t, ev.Button, userinput.GamepadButtonSouth)
	test.ExpectEquality(t, ev.Down, true)
}

func TestControllerAxis(t *testing.T) {
	evs := translateControllerAxis(&sdl.ControllerAxisEvent{
		Axis:  uint8(sdl.CONTROLLER_AXIS_LEFTX),
		Value: -32768,
	})
	test.DemandEquality(t, len(evs), 1)
	a := evs[0].(userinput.EventGamepadAxis)
	test.ExpectEquality(t, a.Axis, userinput.GamepadAxisLeftStickX)
	test.ExpectEquality(t, a.Value, -1.0)

	// triggers are also analog buttons
	evs = translateControllerAxis(&sdl.ControllerAxisEvent{
		Which: 1,
		Axis:  uint8(sdl.CONTROLLER_AXIS_TRIGGERRIGHT),
		Value: 32767,
	})
	test.DemandEquality(t, len(evs), 2)
	a = evs[0].(userinput.EventGamepadAxis)
	test.ExpectEquality(t, a.Axis, userinput.GamepadAxisRightZ)
	test.ExpectEquality(t, a.Value, 1.0)
	b := evs[1].(userinput.EventGamepadButton)
	test.ExpectEquality(t, b.Button, userinput.GamepadButtonRightTrigger2)
	test.ExpectEquality(t, b.Down, true)
	test.ExpectEquality(t, b.ID, 1)

	evs = translateControllerAxis(&sdl.ControllerAxisEvent{
		Axis:  uint8(sdl.CONTROLLER_AXIS_TRIGGERLEFT),
		Value: 1000,
	})
	test.DemandEquality(t, len(evs), 2)
	b = evs[1].(userinput.EventGamepadButton)
	test.ExpectEquality(t, b.Down, false)
	test.ExpectApproximate(t, b.Value, 1000.0/32767.0, 0.0001)
}

func TestWrongThread(t *testing.T) {
	src := &Source{thread: assert.NewGoroutine()}

	// events are never polled from a goroutine other than the one that
	// created the source
	errs := make(chan error)
	go func() {
		_, err := src.Service(userinput.NewCollector())
		errs <- err
	}()
	err := <-errs
	test.ExpectSuccess(t, curated.Is(err, WrongThread))
	test.ExpectEquality(t, err.Error(), "sdl: events must be serviced on the thread that created the source")
}
