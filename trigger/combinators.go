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
	"strings"

	"github.com/jetsetilly/presshere/userinput"
)

// List is pressed when any of its children are pressed. Edges are reported
// if any child reports the edge.
//
// An empty List is never pressed.
type List []Binding

func (l List) Pressed(s *userinput.Snapshot) bool {
	for _, b := range l {
		if b.Pressed(s) {
			return true
		}
	}
	return false
}

func (l List) JustPressed(s *userinput.Snapshot) bool {
	for _, b := range l {
		if b.JustPressed(s) {
			return true
		}
	}
	return false
}

func (l List) JustReleased(s *userinput.Snapshot) bool {
	for _, b := range l {
		if b.JustReleased(s) {
			return true
		}
	}
	return false
}

func (l List) Clone() Binding {
	c := make(List, len(l))
	for i, b := range l {
		c[i] = b.Clone()
	}
	return c
}

// Children implements the Collection interface.
func (l List) Children() []Binding {
	return l
}

func (l List) String() string {
	s := make([]string, len(l))
	for i, b := range l {
		s[i] = describe(b)
	}
	return fmt.Sprintf("any(%s)", strings.Join(s, ", "))
}

// And is pressed when both A and B are pressed.
//
// The JustPressed edge is reported on the frame in which the combination
// becomes pressed. That is, when one of the children reports a JustPressed
// edge and both children are pressed. The JustReleased edge is reported
// when one of the children reports a JustReleased edge and the combination
// is not pressed.
type And struct {
	A Binding
	B Binding
}

func (a And) Pressed(s *userinput.Snapshot) bool {
	return a.A.Pressed(s) && a.B.Pressed(s)
}

func (a And) JustPressed(s *userinput.Snapshot) bool {
	if !a.A.JustPressed(s) && !a.B.JustPressed(s) {
		return false
	}
	return a.Pressed(s)
}

func (a And) JustReleased(s *userinput.Snapshot) bool {
	if !a.A.JustReleased(s) && !a.B.JustReleased(s) {
		return false
	}
	return !a.Pressed(s)
}

func (a And) Clone() Binding {
	return And{A: a.A.Clone(), B: a.B.Clone()}
}

func (a And) String() string {
	return fmt.Sprintf("and(%s, %s)", describe(a.A), describe(a.B))
}

// Not is pressed when A is not pressed.
//
// The edges are the logical inverse of A's edges and not a swap of the
// JustPressed and JustReleased edges. A Not binding therefore reports
// JustPressed on every frame that A does not report JustPressed.
type Not struct {
	A Binding
}

func (n Not) Pressed(s *userinput.Snapshot) bool {
	return !n.A.Pressed(s)
}

func (n Not) JustPressed(s *userinput.Snapshot) bool {
	return !n.A.JustPressed(s)
}

func (n Not) JustReleased(s *userinput.Snapshot) bool {
	return !n.A.JustReleased(s)
}

func (n Not) Clone() Binding {
	return Not{A: n.A.Clone()}
}

func (n Not) String() string {
	return fmt.Sprintf("not(%s)", describe(n.A))
}

// describe returns a short description of the Binding. bindings from outside
// the package that do not implement fmt.Stringer are described by their type
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
