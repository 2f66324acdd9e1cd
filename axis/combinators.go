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
	"strings"

	"github.com/jetsetilly/presshere/trigger"
	"github.com/jetsetilly/presshere/userinput"
)

// Pair combines a binding for the negative direction and a binding for the
// positive direction. For example, the left and right cursor keys.
//
// The value is Positive minus Negative, with a missing value counting as
// zero. The Pair has no value only if neither child has a value.
type Pair struct {
	Negative Binding
	Positive Binding
}

func (p Pair) Value(s *userinput.Snapshot) (float32, bool) {
	neg, nok := p.Negative.Value(s)
	pos, pok := p.Positive.Value(s)
	if !nok && !pok {
		return 0, false
	}
	if !nok {
		neg = 0
	}
	if !pok {
		pos = 0
	}
	return pos - neg, true
}

func (p Pair) Clone() Binding {
	return Pair{Negative: p.Negative.Clone(), Positive: p.Positive.Clone()}
}

func (p Pair) String() string {
	return fmt.Sprintf("pair(%s, %s)", describe(p.Negative), describe(p.Positive))
}

// List is the average of the children that have a value. Children without a
// value are not included in the average. The List has no value if none of the
// children have a value.
//
// Every child is evaluated on every frame, whether or not it contributes to
// the result.
type List []Binding

func (l List) Value(s *userinput.Snapshot) (float32, bool) {
	var sum float32
	var count int
	for _, b := range l {
		if v, ok := b.Value(s); ok {
			sum += v
			count++
		}
	}
	if count == 0 {
		return 0, false
	}
	return sum / float32(count), true
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
	return fmt.Sprintf("avg(%s)", strings.Join(s, ", "))
}

// WithTrigger has the value of Axis but only when Trigger is pressed. The
// Axis binding is not evaluated if the Trigger is not pressed.
type WithTrigger struct {
	Axis    Binding
	Trigger trigger.Binding
}

func (w WithTrigger) Value(s *userinput.Snapshot) (float32, bool) {
	if !w.Trigger.Pressed(s) {
		return 0, false
	}
	return w.Axis.Value(s)
}

func (w WithTrigger) Clone() Binding {
	return WithTrigger{Axis: w.Axis.Clone(), Trigger: w.Trigger.Clone()}
}

func (w WithTrigger) String() string {
	return fmt.Sprintf("with(%s, %s)", describe(w.Axis), trigger.Describe(w.Trigger))
}
