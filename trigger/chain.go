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

// Chain wraps a Binding and adds methods that wrap the Binding in another
// Binding. A Chain is itself a Binding.
type Chain struct {
	Binding
}

// From starts a new Chain.
func From(b Binding) Chain {
	return Chain{Binding: unwrap(b)}
}

// unwrap removes a Chain from around a Binding. Chains nested inside other
// bindings are left alone
func unwrap(b Binding) Binding {
	for {
		c, ok := b.(Chain)
		if !ok {
			return b
		}
		b = c.Binding
	}
}

// Clone implements the Binding interface.
func (c Chain) Clone() Binding {
	return Chain{Binding: c.Binding.Clone()}
}

func (c Chain) String() string {
	return Describe(c.Binding)
}

// And combines the Chain with another Binding. See the And type.
func (c Chain) And(other Binding) Chain {
	return Chain{Binding: And{A: c.Binding, B: unwrap(other)}}
}

// Or creates a List from the Chain and the other bindings. See the List
// type.
func (c Chain) Or(others ...Binding) Chain {
	l := make(List, 0, len(others)+1)
	l = append(l, c.Binding)
	for _, o := range others {
		l = append(l, unwrap(o))
	}
	return Chain{Binding: l}
}

// Not inverts the Chain. See the Not type.
func (c Chain) Not() Chain {
	return Chain{Binding: Not{A: c.Binding}}
}

// Unwrap returns the Binding being built by the Chain.
func (c Chain) Unwrap() Binding {
	return c.Binding
}
