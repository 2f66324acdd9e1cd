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
	"time"
)

// Snapshot is the state of all input devices for a single frame. It is
// created by Collector.Tick() and does not change once created. Every binding
// evaluated during a frame sees the same Snapshot.
type Snapshot struct {
	frame   uint64
	delta   time.Duration
	elapsed time.Duration

	keys         Buttons[Key]
	mouseButtons Buttons[MouseButton]

	// in the order in which the gamepads were connected
	gamepads []*Gamepad

	motion []EventMouseMotion
	wheel  []EventMouseWheel
}

func (s *Snapshot) String() string {
	return fmt.Sprintf("frame %d (delta %v)", s.frame, s.delta)
}

// Frame returns the frame number of the Snapshot. The first Snapshot created
// by a Collector is frame one.
func (s *Snapshot) Frame() uint64 {
	return s.frame
}

// Delta returns the time elapsed since the previous frame.
func (s *Snapshot) Delta() time.Duration {
	return s.delta
}

// DeltaSeconds is the same as Delta() but returned as a number of seconds.
// Useful for filters that work with rates of change.
func (s *Snapshot) DeltaSeconds() float32 {
	return float32(s.delta.Seconds())
}

// Elapsed returns the time elapsed since the first frame.
func (s *Snapshot) Elapsed() time.Duration {
	return s.elapsed
}

// Keys returns the state of the keyboard.
func (s *Snapshot) Keys() Buttons[Key] {
	return s.keys
}

// MouseButtons returns the state of the mouse buttons.
func (s *Snapshot) MouseButtons() Buttons[MouseButton] {
	return s.mouseButtons
}

// Gamepads returns the connected gamepads in the order in which they were
// connected. The returned slice should not be modified.
func (s *Snapshot) Gamepads() []*Gamepad {
	return s.gamepads
}

// MouseMotion returns the mouse motion events that occurred during the
// frame. The returned slice should not be modified.
func (s *Snapshot) MouseMotion() []EventMouseMotion {
	return s.motion
}

// MouseWheel returns the mouse wheel events that occurred during the frame.
// The returned slice should not be modified.
func (s *Snapshot) MouseWheel() []EventMouseWheel {
	return s.wheel
}
