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

package signals

import (
	"fmt"

	"github.com/jetsetilly/presshere/axis"
	"github.com/jetsetilly/presshere/logger"
	"github.com/jetsetilly/presshere/trigger"
	"github.com/jetsetilly/presshere/userinput"
)

// Trigger is a named trigger signal. The state of the trigger is the result
// of the most recent call to Registry.Update().
type Trigger struct {
	id      any
	binding trigger.Binding

	pressed      bool
	justPressed  bool
	justReleased bool
}

func (t *Trigger) String() string {
	return fmt.Sprintf("%s: %s", name(t.id), trigger.Describe(t.binding))
}

// ID returns the identity of the trigger.
func (t *Trigger) ID() any {
	return t.id
}

// Pressed returns true if the trigger is pressed.
func (t *Trigger) Pressed() bool {
	return t.pressed
}

// JustPressed returns true if the trigger was pressed during this frame.
func (t *Trigger) JustPressed() bool {
	return t.justPressed
}

// JustReleased returns true if the trigger was released during this frame.
func (t *Trigger) JustReleased() bool {
	return t.justReleased
}

// Binding returns the binding tree of the trigger.
func (t *Trigger) Binding() trigger.Binding {
	return t.binding
}

// SetBinding replaces the binding tree of the trigger with a copy of b. The
// new binding is used from the next call to Registry.Update(). Until then,
// the state of the trigger is unchanged.
func (t *Trigger) SetBinding(b trigger.Binding) {
	t.binding = orEmptyTrigger(b)
	logger.Logf(logger.Allow, "signals", "rebound trigger %s", t)
}

func (t *Trigger) update(s *userinput.Snapshot) {
	t.pressed = t.binding.Pressed(s)
	t.justPressed = t.binding.JustPressed(s)
	t.justReleased = t.binding.JustReleased(s)
}

// the registry owns its own copy of a binding tree. filter state is never
// shared with the caller or with another signal
func orEmptyTrigger(b trigger.Binding) trigger.Binding {
	if b == nil {
		return trigger.Empty{}
	}
	return b.Clone()
}

// Axis is a named axis signal. The value of the axis is the result of the
// most recent call to Registry.Update().
type Axis struct {
	id      any
	binding axis.Binding

	value float32
}

func (a *Axis) String() string {
	return fmt.Sprintf("%s: %s", name(a.id), axis.Describe(a.binding))
}

// ID returns the identity of the axis.
func (a *Axis) ID() any {
	return a.id
}

// Value returns the value of the axis. If the binding tree had no value then
// the value is zero.
func (a *Axis) Value() float32 {
	return a.value
}

// Binding returns the binding tree of the axis.
func (a *Axis) Binding() axis.Binding {
	return a.binding
}

// SetBinding replaces the binding tree of the axis with a copy of b. Any
// filter state in the previous binding is lost. The new binding is used from
// the next call to Registry.Update(). Until then, the value of the axis is
// unchanged.
func (a *Axis) SetBinding(b axis.Binding) {
	a.binding = orEmptyAxis(b)
	logger.Logf(logger.Allow, "signals", "rebound axis %s", a)
}

func (a *Axis) update(s *userinput.Snapshot) {
	v, ok := a.binding.Value(s)
	if !ok {
		v = 0.0
	}
	a.value = v
}

func orEmptyAxis(b axis.Binding) axis.Binding {
	if b == nil {
		return axis.Empty{}
	}
	return b.Clone()
}
