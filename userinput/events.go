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

// Event represents all the different type of events that can occur in the
// host. The host implementation sends these to the Collector.
type Event interface{}

// EventQuit is sent when the host wants the application to end.
type EventQuit struct{}

// EventKeyboard is sent on keyboard input. Repeat events are sent by some
// hosts when a key is held down. They are ignored by the Collector.
type EventKeyboard struct {
	Key    Key
	Down   bool
	Repeat bool
}

// EventMouseButton is sent when a mouse button is pressed or released.
type EventMouseButton struct {
	Button MouseButton
	Down   bool
}

// EventMouseMotion is sent when the mouse moves. DX and DY are the relative
// motion since the previous motion event.
type EventMouseMotion struct {
	DX float32
	DY float32
}

// EventMouseWheel is sent when the mouse wheel (or the touchpad equivalent)
// is moved. Y is vertical scrolling and X is horizontal scrolling.
type EventMouseWheel struct {
	Unit ScrollUnit
	X    float32
	Y    float32
}

// EventGamepadConnect is sent when a gamepad is connected. The ID is decided
// by the host and must be unique while the gamepad is connected.
type EventGamepadConnect struct {
	ID   int
	Name string
}

// EventGamepadDisconnect is sent when a gamepad is disconnected.
type EventGamepadDisconnect struct {
	ID int
}

// EventGamepadButton is sent when a gamepad button changes. Value is the
// analog intensity of the button in the range 0.0 to 1.0. A digital button
// that is Down with a Value of zero is given an intensity of 1.0.
type EventGamepadButton struct {
	ID     int
	Button GamepadButton
	Down   bool
	Value  float32
}

// EventGamepadAxis is sent when a gamepad axis moves.
type EventGamepadAxis struct {
	ID    int
	Axis  GamepadAxis
	Value float32
}
