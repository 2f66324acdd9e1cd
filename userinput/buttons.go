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

import "maps"

// Buttons records which buttons of type K are pressed and which buttons
// changed state during the current frame.
//
// The zero value is ready to use. Only the read functions are exported. A
// Buttons value taken from a Snapshot cannot be changed.
type Buttons[K comparable] struct {
	pressed      map[K]bool
	justPressed  map[K]bool
	justReleased map[K]bool
}

// Pressed returns true if the button is currently pressed.
func (b Buttons[K]) Pressed(k K) bool {
	return b.pressed[k]
}

// JustPressed returns true if the button was pressed during this frame.
func (b Buttons[K]) JustPressed(k K) bool {
	return b.justPressed[k]
}

// JustReleased returns true if the button was released during this frame.
func (b Buttons[K]) JustReleased(k K) bool {
	return b.justReleased[k]
}

// AnyPressed returns true if any button is pressed.
func (b Buttons[K]) AnyPressed() bool {
	return len(b.pressed) > 0
}

// GetPressed returns all pressed buttons. The order of the list is undefined.
func (b Buttons[K]) GetPressed() []K {
	l := make([]K, 0, len(b.pressed))
	for k := range b.pressed {
		l = append(l, k)
	}
	return l
}

// pressing a button that is already pressed does not count as a new press
func (b *Buttons[K]) press(k K) {
	if b.pressed[k] {
		return
	}
	setTrue(&b.pressed, k)
	setTrue(&b.justPressed, k)
}

// releasing a button that is not pressed does not count as a release
func (b *Buttons[K]) release(k K) {
	if !b.pressed[k] {
		return
	}
	delete(b.pressed, k)
	setTrue(&b.justReleased, k)
}

func (b *Buttons[K]) nextTick() {
	clear(b.justPressed)
	clear(b.justReleased)
}

func (b Buttons[K]) clone() Buttons[K] {
	return Buttons[K]{
		pressed:      maps.Clone(b.pressed),
		justPressed:  maps.Clone(b.justPressed),
		justReleased: maps.Clone(b.justReleased),
	}
}

func setTrue[K comparable](m *map[K]bool, key K) {
	if *m == nil {
		*m = map[K]bool{}
	}
	(*m)[key] = true
}
