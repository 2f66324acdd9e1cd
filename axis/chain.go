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
	"github.com/jetsetilly/presshere/curve"
	"github.com/jetsetilly/presshere/trigger"
)

// Chain wraps a Binding and adds methods that wrap the Binding in a
// combinator, filter or modifier. A Chain is itself a Binding.
type Chain struct {
	Binding
}

// From starts a new Chain.
func From(b Binding) Chain {
	return Chain{Binding: unwrap(b)}
}

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

// Unwrap returns the Binding being built by the Chain.
func (c Chain) Unwrap() Binding {
	return c.Binding
}

// Or creates a List from the Chain and the other bindings. See the List type.
func (c Chain) Or(others ...Binding) Chain {
	l := make(List, 0, len(others)+1)
	l = append(l, c.Binding)
	for _, o := range others {
		l = append(l, unwrap(o))
	}
	return Chain{Binding: l}
}

// WithTrigger only allows the Chain to have a value when the trigger is
// pressed. See the WithTrigger type.
func (c Chain) WithTrigger(t trigger.Binding) Chain {
	return Chain{Binding: WithTrigger{Axis: c.Binding, Trigger: t}}
}

// Deadzone filters out small values. See the Deadzone type.
func (c Chain) Deadzone(threshold float32) Chain {
	return Chain{Binding: Deadzone{A: c.Binding, Threshold: threshold}}
}

// Smooth applies exponential smoothing. See the Smooth type.
func (c Chain) Smooth(tau float32) Chain {
	return Chain{Binding: NewSmooth(c.Binding, tau)}
}

// Normalize limits the length of the vector formed with the perpendicular
// binding. See the Normalize type.
func (c Chain) Normalize(perpendicular Binding) Chain {
	return Chain{Binding: Normalize{A: c.Binding, Perpendicular: unwrap(perpendicular)}}
}

// LimitRate limits how quickly the value can change. See the RateLimit type.
func (c Chain) LimitRate(maxRate float32) Chain {
	return Chain{Binding: NewRateLimit(c.Binding, maxRate)}
}

// WithCurve passes the value through a response curve. See the WithCurve
// type.
func (c Chain) WithCurve(cv curve.Curve) Chain {
	return Chain{Binding: WithCurve{A: c.Binding, Curve: cv}}
}

// Transform passes the value through a function. See the Transformation type.
func (c Chain) Transform(f func(float32) float32) Chain {
	return Chain{Binding: Transformation{A: c.Binding, Func: f}}
}

// Mult multiplies the value by the value of another binding.
func (c Chain) Mult(other Binding) Chain {
	return Chain{Binding: Multiply{A: c.Binding, B: unwrap(other)}}
}

// Div divides the value by the value of another binding.
func (c Chain) Div(other Binding) Chain {
	return Chain{Binding: Divide{A: c.Binding, B: unwrap(other)}}
}

// Add adds the value of another binding.
func (c Chain) Add(other Binding) Chain {
	return Chain{Binding: Add{A: c.Binding, B: unwrap(other)}}
}

// Sub subtracts the value of another binding.
func (c Chain) Sub(other Binding) Chain {
	return Chain{Binding: Subtract{A: c.Binding, B: unwrap(other)}}
}

// Invert negates the value.
func (c Chain) Invert() Chain {
	return Chain{Binding: Invert{A: c.Binding}}
}

// Remap maps the value from one range to another. See the Remap type.
func (c Chain) Remap(inMin, inMax, outMin, outMax float32) Chain {
	return Chain{Binding: Remap{A: c.Binding, InMin: inMin, InMax: inMax, OutMin: outMin, OutMax: outMax}}
}
