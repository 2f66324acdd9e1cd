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
	"reflect"

	"github.com/jetsetilly/presshere/axis"
	"github.com/jetsetilly/presshere/curated"
	"github.com/jetsetilly/presshere/logger"
	"github.com/jetsetilly/presshere/trigger"
	"github.com/jetsetilly/presshere/userinput"
)

// Sentinal error patterns returned by the Add functions.
const (
	DuplicateTrigger = "signals: duplicate trigger (%s)"
	DuplicateAxis    = "signals: duplicate axis (%s)"
	InvalidIdentity  = "signals: identity is not comparable (%T)"
)

// signal is implemented by Trigger and Axis
type signal interface {
	update(*userinput.Snapshot)
}

// Registry holds every named signal.
type Registry struct {
	triggers []*Trigger
	axes     []*Axis

	// lookup tables. the trigger and axis namespaces are separate
	triggerIDs map[any]*Trigger
	axisIDs    map[any]*Axis

	// all signals in the order they were added
	order []signal

	// the frame number of the most recent Snapshot passed to Update()
	frame   uint64
	updated bool
}

// NewRegistry is the preferred method of initialisation for the Registry type.
func NewRegistry() *Registry {
	return &Registry{
		triggerIDs: make(map[any]*Trigger),
		axisIDs:    make(map[any]*Axis),
	}
}

func checkIdentity(id any) error {
	if id == nil || !reflect.ValueOf(id).Comparable() {
		return curated.Errorf(InvalidIdentity, id)
	}
	return nil
}

// name returns a printable name for an identity. the typed helpers use a
// reflect.Type as the identity and the name is the name of the type
func name(id any) string {
	if t, ok := id.(reflect.Type); ok {
		return t.Name()
	}
	return fmt.Sprintf("%v", id)
}

// AddTrigger creates a new named trigger. The trigger is not pressed until the
// next call to Update(). The registry keeps a copy of the binding. A nil
// binding is the same as trigger.Empty.
func (r *Registry) AddTrigger(id any, b trigger.Binding) (*Trigger, error) {
	if err := checkIdentity(id); err != nil {
		return nil, err
	}
	if _, ok := r.triggerIDs[id]; ok {
		return nil, curated.Errorf(DuplicateTrigger, name(id))
	}

	t := &Trigger{id: id, binding: orEmptyTrigger(b)}
	r.triggers = append(r.triggers, t)
	r.triggerIDs[id] = t
	r.order = append(r.order, t)

	logger.Logf(logger.Allow, "signals", "added trigger %s", t)
	return t, nil
}

// AddAxis creates a new named axis. The value of the axis is zero until the
// next call to Update(). The registry keeps a copy of the binding. A nil
// binding is the same as axis.Empty.
func (r *Registry) AddAxis(id any, b axis.Binding) (*Axis, error) {
	if err := checkIdentity(id); err != nil {
		return nil, err
	}
	if _, ok := r.axisIDs[id]; ok {
		return nil, curated.Errorf(DuplicateAxis, name(id))
	}

	a := &Axis{id: id, binding: orEmptyAxis(b)}
	r.axes = append(r.axes, a)
	r.axisIDs[id] = a
	r.order = append(r.order, a)

	logger.Logf(logger.Allow, "signals", "added axis %s", a)
	return a, nil
}

// Trigger returns the named trigger. Returns false if there is no trigger
// with that identity.
func (r *Registry) Trigger(id any) (*Trigger, bool) {
	if checkIdentity(id) != nil {
		return nil, false
	}
	t, ok := r.triggerIDs[id]
	return t, ok
}

// Axis returns the named axis. Returns false if there is no axis with that
// identity.
func (r *Registry) Axis(id any) (*Axis, bool) {
	if checkIdentity(id) != nil {
		return nil, false
	}
	a, ok := r.axisIDs[id]
	return a, ok
}

// Triggers returns all triggers in the order in which they were added.
func (r *Registry) Triggers() []*Trigger {
	return r.triggers
}

// Axes returns all axes in the order in which they were added.
func (r *Registry) Axes() []*Axis {
	return r.axes
}

// Update evaluates every signal with the Snapshot. Signals are evaluated in
// the order in which they were added.
//
// Update should be called once per frame. Calling Update a second time with a
// Snapshot from the same frame does nothing because evaluating filters twice
// in the same frame would advance them twice.
func (r *Registry) Update(s *userinput.Snapshot) {
	if r.updated && s.Frame() == r.frame {
		logger.Logf(logger.Allow, "signals", "frame %d has already been evaluated", s.Frame())
		return
	}
	r.frame = s.Frame()
	r.updated = true

	for _, sig := range r.order {
		sig.update(s)
	}
}

// AddTriggerOf is the same as AddTrigger() except that the identity is the
// type T.
func AddTriggerOf[T any](r *Registry, b trigger.Binding) (*Trigger, error) {
	return r.AddTrigger(reflect.TypeFor[T](), b)
}

// AddAxisOf is the same as AddAxis() except that the identity is the type T.
func AddAxisOf[T any](r *Registry, b axis.Binding) (*Axis, error) {
	return r.AddAxis(reflect.TypeFor[T](), b)
}

// TriggerOf returns the trigger added with AddTriggerOf().
func TriggerOf[T any](r *Registry) (*Trigger, bool) {
	return r.Trigger(reflect.TypeFor[T]())
}

// AxisOf returns the axis added with AddAxisOf().
func AxisOf[T any](r *Registry) (*Axis, bool) {
	return r.Axis(reflect.TypeFor[T]())
}
