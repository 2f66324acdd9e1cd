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
	"github.com/veandco/go-sdl2/sdl"

	"github.com/jetsetilly/presshere/userinput"
)

// the value at which a trigger axis is considered to be pressing the
// equivalent button
const triggerPressed = 0.5

func translateKeyboard(ev *sdl.KeyboardEvent) userinput.EventKeyboard {
	return userinput.EventKeyboard{
		Key:    userinput.Key(sdl.GetKeyName(ev.Keysym.Sym)),
		Down:   ev.Type == sdl.KEYDOWN,
		Repeat: ev.Repeat != 0,
	}
}

func translateMouseButton(ev *sdl.MouseButtonEvent) (userinput.EventMouseButton, bool) {
	var button userinput.MouseButton

	switch ev.Button {
	case sdl.BUTTON_LEFT:
		button = userinput.MouseButtonLeft
	case sdl.BUTTON_MIDDLE:
		button = userinput.MouseButtonMiddle
	case sdl.BUTTON_RIGHT:
		button = userinput.MouseButtonRight
	case sdl.BUTTON_X1:
		button = userinput.MouseButtonBack
	case sdl.BUTTON_X2:
		button = userinput.MouseButtonForward
	default:
		return userinput.EventMouseButton{}, false
	}

	return userinput.EventMouseButton{
		Button: button,
		Down:   ev.Type == sdl.MOUSEBUTTONDOWN,
	}, true
}

func translateMouseMotion(ev *sdl.MouseMotionEvent) userinput.EventMouseMotion {
	return userinput.EventMouseMotion{
		DX: float32(ev.XRel),
		DY: float32(ev.YRel),
	}
}

// SDL reports wheel events in whole lines (notches)
func translateMouseWheel(ev *sdl.MouseWheelEvent) userinput.EventMouseWheel {
	x := float32(ev.X)
	y := float32(ev.Y)
	if ev.Direction == uint32(sdl.MOUSEWHEEL_FLIPPED) {
		x = -x
		y = -y
	}
	return userinput.EventMouseWheel{
		Unit: userinput.ScrollLine,
		X:    x,
		Y:    y,
	}
}

var controllerButtons = map[sdl.GameControllerButton]userinput.GamepadButton{
	sdl.CONTROLLER_BUTTON_A:             userinput.GamepadButtonSouth,
	sdl.CONTROLLER_BUTTON_B:             userinput.GamepadButtonEast,
	sdl.CONTROLLER_BUTTON_X:             userinput.GamepadButtonWest,
	sdl.CONTROLLER_BUTTON_Y:             userinput.GamepadButtonNorth,
	sdl.CONTROLLER_BUTTON_BACK:          userinput.GamepadButtonSelect,
	sdl.CONTROLLER_BUTTON_GUIDE:         userinput.GamepadButtonMode,
	sdl.CONTROLLER_BUTTON_START:         userinput.GamepadButtonStart,
	sdl.CONTROLLER_BUTTON_LEFTSTICK:     userinput.GamepadButtonLeftThumb,
	sdl.CONTROLLER_BUTTON_RIGHTSTICK:    userinput.GamepadButtonRightThumb,
	sdl.CONTROLLER_BUTTON_LEFTSHOULDER:  userinput.GamepadButtonLeftTrigger,
	sdl.CONTROLLER_BUTTON_RIGHTSHOULDER: userinput.GamepadButtonRightTrigger,
	sdl.CONTROLLER_BUTTON_DPAD_UP:       userinput.GamepadButtonDPadUp,
	sdl.CONTROLLER_BUTTON_DPAD_DOWN:     userinput.GamepadButtonDPadDown,
	sdl.CONTROLLER_BUTTON_DPAD_LEFT:     userinput.GamepadButtonDPadLeft,
	sdl.CONTROLLER_BUTTON_DPAD_RIGHT:    userinput.GamepadButtonDPadRight,
}

func translateControllerButton(ev *sdl.ControllerButtonEvent) (userinput.EventGamepadButton, bool) {
	button, ok := controllerButtons[sdl.GameControllerButton(ev.Button)]
	if !ok {
		return userinput.EventGamepadButton{}, false
	}
	return userinput.EventGamepadButton{
		ID:     int(ev.Which),
		Button: button,
		Down:   ev.State == uint8(sdl.PRESSED),
	}, true
}

var controllerAxes = map[sdl.GameControllerAxis]userinput.GamepadAxis{
	sdl.CONTROLLER_AXIS_LEFTX:        userinput.GamepadAxisLeftStickX,
	sdl.CONTROLLER_AXIS_LEFTY:        userinput.GamepadAxisLeftStickY,
	sdl.CONTROLLER_AXIS_TRIGGERLEFT:  userinput.GamepadAxisLeftZ,
	sdl.CONTROLLER_AXIS_RIGHTX:       userinput.GamepadAxisRightStickX,
	sdl.CONTROLLER_AXIS_RIGHTY:       userinput.GamepadAxisRightStickY,
	sdl.CONTROLLER_AXIS_TRIGGERRIGHT: userinput.GamepadAxisRightZ,
}

// translateControllerAxis returns one or two events. trigger axes are also
// sent as an analog button event
func translateControllerAxis(ev *sdl.ControllerAxisEvent) []userinput.Event {
	axis, ok := controllerAxes[sdl.GameControllerAxis(ev.Axis)]
	if !ok {
		return nil
	}

	var button userinput.GamepadButton
	switch axis {
	case userinput.GamepadAxisLeftZ:
		button = userinput.GamepadButtonLeftTrigger2
	case userinput.GamepadAxisRightZ:
		button = userinput.GamepadButtonRightTrigger2
	default:
		return []userinput.Event{userinput.EventGamepadAxis{
			ID:    int(ev.Which),
			Axis:  axis,
			Value: scaleStick(ev.Value),
		}}
	}

	v := scaleTrigger(ev.Value)
	return []userinput.Event{
		userinput.EventGamepadAxis{
			ID:    int(ev.Which),
			Axis:  axis,
			Value: v,
		},
		userinput.EventGamepadButton{
			ID:     int(ev.Which),
			Button: button,
			Down:   v >= triggerPressed,
			Value:  v,
		},
	}
}

// the range of an int16 is not symmetrical. the most negative value is
// clamped so that the stick range is -1.0 to 1.0
func scaleStick(v int16) float32 {
	return max(float32(v)/32767.0, -1.0)
}

// triggers never report a negative value
func scaleTrigger(v int16) float32 {
	return max(float32(v)/32767.0, 0.0)
}
