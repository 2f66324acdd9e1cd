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

import "github.com/jetsetilly/presshere/userinput"

// Binding is implemented by every type that can produce a trigger value from
// a Snapshot.
type Binding interface {
	// Pressed returns true if the trigger is active in the Snapshot.
	Pressed(*userinput.Snapshot) bool

	// JustPressed returns true if the trigger became active during the
	// Snapshot's frame.
	JustPressed(*userinput.Snapshot) bool

	// JustReleased returns true if the trigger became inactive during the
	// Snapshot's frame.
	JustReleased(*userinput.Snapshot) bool

	// Clone returns a deep copy of the Binding. The copy shares nothing with
	// the original.
	Clone() Binding
}

// Collection is implemented by bindings that are made up of a sequence of
// child bindings.
type Collection interface {
	Binding

	// Children returns the child bindings in order. Replacing an element of
	// the returned slice replaces the child in the Collection.
	Children() []Binding
}

// Split returns clones of the children of a Collection. For any other Binding
// the result is a single element slice containing a clone of the Binding.
func Split(b Binding) []Binding {
	if c, ok := unwrap(b).(Collection); ok {
		children := c.Children()
		split := make([]Binding, len(children))
		for i, ch := range children {
			split[i] = ch.Clone()
		}
		return split
	}
	return []Binding{b.Clone()}
}
