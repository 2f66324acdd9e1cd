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

package main

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"go.uber.org/multierr"

	"github.com/jetsetilly/presshere/axis"
	"github.com/jetsetilly/presshere/curve"
	"github.com/jetsetilly/presshere/host"
	"github.com/jetsetilly/presshere/signals"
	"github.com/jetsetilly/presshere/trigger"
	"github.com/jetsetilly/presshere/userinput"
)

// signal identities for the demonstration bindings
type (
	Jump     struct{}
	Fire     struct{}
	Quit     struct{}
	MoveX    struct{}
	MoveY    struct{}
	Look     struct{}
	Zoom     struct{}
	Throttle struct{}
)

// throttle response. gentle at the start of the trigger travel
var throttleCurve = [][]float32{
	{0.0, 0.5, 0.8, 1.0},
	{0.0, 0.2, 0.5, 1.0},
}

// register the demonstration bindings with the registry. values for the
// filters are taken from the preferences
func register(reg *signals.Registry, p *host.Preferences) error {
	dz := host.Float32(&p.Deadzone)
	tau := host.Float32(&p.Smoothing)
	ppl := host.Float32(&p.PixelsPerLine)

	throttle, err := curve.NewKeyframes(curve.Monotone, throttleCurve[0], throttleCurve[1])
	if err != nil {
		return err
	}

	var errs error
	add := func(_ *signals.Trigger, err error) {
		errs = multierr.Append(errs, err)
	}
	addAxis := func(_ *signals.Axis, err error) {
		errs = multierr.Append(errs, err)
	}

	add(signals.AddTriggerOf[Jump](reg, trigger.From(trigger.Key(userinput.KeySpace)).
		Or(trigger.GamepadButton(userinput.GamepadButtonSouth)).Unwrap()))

	add(signals.AddTriggerOf[Fire](reg, trigger.From(trigger.Key(userinput.KeyF)).
		Or(trigger.MouseButton(userinput.MouseButtonLeft),
			trigger.GamepadButton(userinput.GamepadButtonRightTrigger2)).Unwrap()))

	add(signals.AddTriggerOf[Quit](reg, trigger.From(trigger.Key(userinput.KeyEscape)).
		Or(trigger.From(trigger.Key(userinput.KeyQ)).And(trigger.Key(userinput.KeyLeftCtrl))).Unwrap()))

	addAxis(signals.AddAxisOf[MoveX](reg, axis.From(axis.Pair{
		Negative: axis.Key(userinput.KeyA),
		Positive: axis.Key(userinput.KeyD),
	}).Or(axis.Pair{
		Negative: axis.Key(userinput.KeyLeft),
		Positive: axis.Key(userinput.KeyRight),
	}, axis.From(axis.GamepadAxis(userinput.GamepadAxisLeftStickX)).Deadzone(dz)).Smooth(tau).Unwrap()))

	// gamepad and screen Y axes point down. moving up is positive
	addAxis(signals.AddAxisOf[MoveY](reg, axis.From(axis.Pair{
		Negative: axis.Key(userinput.KeyS),
		Positive: axis.Key(userinput.KeyW),
	}).Or(axis.Pair{
		Negative: axis.Key(userinput.KeyDown),
		Positive: axis.Key(userinput.KeyUp),
	}, axis.From(axis.GamepadAxis(userinput.GamepadAxisLeftStickY)).Deadzone(dz).Invert()).Smooth(tau).Unwrap()))

	addAxis(signals.AddAxisOf[Look](reg, axis.From(axis.MouseX{}).
		WithTrigger(trigger.MouseButton(userinput.MouseButtonRight)).
		Or(axis.From(axis.GamepadAxis(userinput.GamepadAxisRightStickX)).Deadzone(dz).Mult(axis.Constant(10))).Unwrap()))

	addAxis(signals.AddAxisOf[Zoom](reg, axis.From(axis.MouseWheel{PixelsPerLine: ppl}).
		Or(axis.Pair{
			Negative: axis.Key(userinput.KeyMinus),
			Positive: axis.Key(userinput.KeyEquals),
		}).LimitRate(20).Unwrap()))

	addAxis(signals.AddAxisOf[Throttle](reg, axis.From(axis.GamepadButton(userinput.GamepadButtonRightTrigger2)).
		Or(axis.Key(userinput.KeyT)).WithCurve(throttle).Unwrap()))

	return errs
}

// lookup a binding by the lower case name of its signal
func lookup(reg *signals.Registry, name string) (any, bool) {
	for _, t := range reg.Triggers() {
		if signalName(t.ID()) == name {
			return t.Binding(), true
		}
	}
	for _, a := range reg.Axes() {
		if signalName(a.ID()) == name {
			return a.Binding(), true
		}
	}
	return nil, false
}

func signalName(id any) string {
	s := fmt.Sprintf("%v", id)
	if i := strings.LastIndex(s, "."); i >= 0 {
		s = s[i+1:]
	}
	return strings.ToLower(s)
}

// list of signal names in alphabetical order
func signalNames(reg *signals.Registry) []string {
	var names []string
	for _, t := range reg.Triggers() {
		names = append(names, signalName(t.ID()))
	}
	for _, a := range reg.Axes() {
		names = append(names, signalName(a.ID()))
	}
	sort.Strings(names)
	return names
}

// reporter writes a line to the output whenever a signal changes
type reporter struct {
	output  io.Writer
	newline string
	reg     *signals.Registry
	axes    map[*signals.Axis]float32
}

func newReporter(output io.Writer, newline string, reg *signals.Registry) *reporter {
	return &reporter{
		output:  output,
		newline: newline,
		reg:     reg,
		axes:    make(map[*signals.Axis]float32),
	}
}

// the change in an axis value that is worth reporting
const reportThreshold = 0.01

// logic implements host.Logic
func (r *reporter) logic(s *userinput.Snapshot) (bool, error) {
	for _, t := range r.reg.Triggers() {
		if t.JustPressed() {
			fmt.Fprintf(r.output, "%05d %s pressed%s", s.Frame(), signalName(t.ID()), r.newline)
		}
		if t.JustReleased() {
			fmt.Fprintf(r.output, "%05d %s released%s", s.Frame(), signalName(t.ID()), r.newline)
		}
	}

	for _, a := range r.reg.Axes() {
		v := a.Value()
		d := v - r.axes[a]
		if d > reportThreshold || d < -reportThreshold || (v == 0 && r.axes[a] != 0) {
			fmt.Fprintf(r.output, "%05d %s %.2f%s", s.Frame(), signalName(a.ID()), v, r.newline)
			r.axes[a] = v
		}
	}

	if q, ok := signals.TriggerOf[Quit](r.reg); ok && q.JustPressed() {
		return false, nil
	}

	return true, nil
}
