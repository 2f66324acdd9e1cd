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

// Binding is implemented by every type that can produce an axis value from a
// Snapshot.
type Binding interface {
	// Value returns the value of the axis for the Snapshot. The boolean is
	// false if the binding has no value for this frame.
	Value(*userinput.Snapshot) (float32, bool)

	// Clone returns a deep copy of the Binding, including any filter state.
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

func describe(b Binding) string {
	if s, ok := b.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%T", b)
}

// Describe returns a short description of the Binding tree, suitable for
// logging.
func Describe(b Binding) string {
	if b == nil {
		return "nil"
	}
	return describe(b)
}

// value of the binding or the fallback value if the binding has no value
func valueOr(b Binding, s *userinput.Snapshot, fallback float32) float32 {
	if v, ok := b.Value(s); ok {
		return v
	}
	return fallback
}
