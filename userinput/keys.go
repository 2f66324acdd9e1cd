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

import "fmt"

// Key identifies a keyboard key. Names are the same as those returned by
// sdl.GetKeyName().
type Key string

// List of valid Key values. This is not an exhaustive list and any name
// produced by the host is acceptable.
const (
	KeyA Key = "A"
	KeyB Key = "B"
	KeyC Key = "C"
	KeyD Key = "D"
	KeyE Key = "E"
	KeyF Key = "F"
	KeyG Key = "G"
	KeyH Key = "H"
	KeyI Key = "I"
	KeyJ Key = "J"
	KeyK Key = "K"
	KeyL Key = "L"
	KeyM Key = "M"
	KeyN Key = "N"
	KeyO Key = "O"
	KeyP Key = "P"
	KeyQ Key = "Q"
	KeyR Key = "R"
	KeyS Key = "S"
	KeyT Key = "T"
	KeyU Key = "U"
	KeyV Key = "V"
	KeyW Key = "W"
	KeyX Key = "X"
	KeyY Key = "Y"
	KeyZ Key = "Z"

	Key0 Key = "0"
	Key1 Key = "1"
	Key2 Key = "2"
	Key3 Key = "3"
	Key4 Key = "4"
	Key5 Key = "5"
	Key6 Key = "6"
	Key7 Key = "7"
	Key8 Key = "8"
	Key9 Key = "9"

	KeySpace     Key = "Space"
	KeyReturn    Key = "Return"
	KeyEscape    Key = "Escape"
	KeyTab       Key = "Tab"
	KeyBackspace Key = "Backspace"
	KeyMinus     Key = "-"
	KeyEquals    Key = "="

	KeyLeft  Key = "Left"
	KeyRight Key = "Right"
	KeyUp    Key = "Up"
	KeyDown  Key = "Down"

	KeyLeftShift  Key = "Left Shift"
	KeyRightShift Key = "Right Shift"
	KeyLeftCtrl   Key = "Left Ctrl"
	KeyRightCtrl  Key = "Right Ctrl"
	KeyLeftAlt    Key = "Left Alt"
	KeyRightAlt   Key = "Right Alt"

	KeyF1  Key = "F1"
	KeyF2  Key = "F2"
	KeyF3  Key = "F3"
	KeyF4  Key = "F4"
	KeyF5  Key = "F5"
	KeyF6  Key = "F6"
	KeyF7  Key = "F7"
	KeyF8  Key = "F8"
	KeyF9  Key = "F9"
	KeyF10 Key = "F10"
	KeyF11 Key = "F11"
	KeyF12 Key = "F12"
)

// MouseButton identifies a button on a mouse.
type MouseButton int

// List of valid MouseButton values.
const (
	MouseButtonNone MouseButton = iota
	MouseButtonLeft
	MouseButtonMiddle
	MouseButtonRight
	MouseButtonBack
	MouseButtonForward
)

func (b MouseButton) String() string {
	switch b {
	case MouseButtonNone:
		return "None"
	case MouseButtonLeft:
		return "Left"
	case MouseButtonMiddle:
		return "Middle"
	case MouseButtonRight:
		return "Right"
	case MouseButtonBack:
		return "Back"
	case MouseButtonForward:
		return "Forward"
	}
	return fmt.Sprintf("MouseButton(%d)", int(b))
}

// GamepadButton identifies a button on a gamepad. The naming is positional
// rather than by label: South is the bottom face button (labelled A on an
// XBox controller and Cross on a PlayStation controller).
type GamepadButton int

// List of valid GamepadButton values.
const (
	GamepadButtonNone GamepadButton = iota
	GamepadButtonSouth
	GamepadButtonEast
	GamepadButtonWest
	GamepadButtonNorth
	GamepadButtonC
	GamepadButtonZ

	// the upper shoulder buttons
	GamepadButtonLeftTrigger
	GamepadButtonRightTrigger

	// the lower shoulder buttons. these are usually analog
	GamepadButtonLeftTrigger2
	GamepadButtonRightTrigger2

	GamepadButtonSelect
	GamepadButtonStart
	GamepadButtonMode
	GamepadButtonLeftThumb
	GamepadButtonRightThumb

	GamepadButtonDPadUp
	GamepadButtonDPadDown
	GamepadButtonDPadLeft
	GamepadButtonDPadRight
)

var gamepadButtonNames = map[GamepadButton]string{
	GamepadButtonNone:          "None",
	GamepadButtonSouth:         "South",
	GamepadButtonEast:          "East",
	GamepadButtonWest:          "West",
	GamepadButtonNorth:         "North",
	GamepadButtonC:             "C",
	GamepadButtonZ:             "Z",
	GamepadButtonLeftTrigger:   "LeftTrigger",
	GamepadButtonRightTrigger:  "RightTrigger",
	GamepadButtonLeftTrigger2:  "LeftTrigger2",
	GamepadButtonRightTrigger2: "RightTrigger2",
	GamepadButtonSelect:        "Select",
	GamepadButtonStart:         "Start",
	GamepadButtonMode:          "Mode",
	GamepadButtonLeftThumb:     "LeftThumb",
	GamepadButtonRightThumb:    "RightThumb",
	GamepadButtonDPadUp:        "DPadUp",
	GamepadButtonDPadDown:      "DPadDown",
	GamepadButtonDPadLeft:      "DPadLeft",
	GamepadButtonDPadRight:     "DPadRight",
}

func (b GamepadButton) String() string {
	if s, ok := gamepadButtonNames[b]; ok {
		return s
	}
	return fmt.Sprintf("GamepadButton(%d)", int(b))
}

// GamepadAxis identifies an analog axis on a gamepad. Stick axes are in the
// range -1.0 to 1.0.
type GamepadAxis int

// List of valid GamepadAxis values.
const (
	GamepadAxisNone GamepadAxis = iota
	GamepadAxisLeftStickX
	GamepadAxisLeftStickY
	GamepadAxisLeftZ
	GamepadAxisRightStickX
	GamepadAxisRightStickY
	GamepadAxisRightZ
)

func (a GamepadAxis) String() string {
	switch a {
	case GamepadAxisNone:
		return "None"
	case GamepadAxisLeftStickX:
		return "LeftStickX"
	case GamepadAxisLeftStickY:
		return "LeftStickY"
	case GamepadAxisLeftZ:
		return "LeftZ"
	case GamepadAxisRightStickX:
		return "RightStickX"
	case GamepadAxisRightStickY:
		return "RightStickY"
	case GamepadAxisRightZ:
		return "RightZ"
	}
	return fmt.Sprintf("GamepadAxis(%d)", int(a))
}

// ScrollUnit is the unit in which a mouse wheel event is measured.
type ScrollUnit int

// List of valid ScrollUnit values.
const (
	// the delta is a number of lines (or notches of the wheel)
	ScrollLine ScrollUnit = iota

	// the delta is a number of pixels. high precision touchpads report this
	ScrollPixel
)

func (u ScrollUnit) String() string {
	switch u {
	case ScrollLine:
		return "Line"
	case ScrollPixel:
		return "Pixel"
	}
	return fmt.Sprintf("ScrollUnit(%d)", int(u))
}
