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

package signals_test

import (
	"strings"
	"testing"
	"time"

	"github.com/jetsetilly/presshere/axis"
	"github.com/jetsetilly/presshere/curated"
	"github.com/jetsetilly/presshere/logger"
	"github.com/jetsetilly/presshere/signals"
	"github.com/jetsetilly/presshere/test"
	"github.com/jetsetilly/presshere/trigger"
	"github.com/jetsetilly/presshere/userinput"
)

const frame = time.Second / 60

type Walk struct{}
type Jump struct{}

func tick(t *testing.T, c *userinput.Collector, events ...userinput.Event) *userinput.Snapshot {
	t.Helper()
	for _, ev := range events {
		_, err := c.HandleUserInput(ev)
		test.DemandSuccess(t, err)
	}
	return c.Tick(frame)
}

func TestPairEndToEnd(t *testing.T) {
	reg := signals.NewRegistry()
	c := userinput.NewCollector()

	walk, err := signals.AddAxisOf[Walk](reg, axis.Pair{
		Negative: axis.Key(userinput.KeyA),
		Positive: axis.Key(userinput.KeyD),
	})
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, walk.Value(), 0)

	// neither pressed. no value is zero
	reg.Update(tick(t, c))
	test.ExpectEquality(t, walk.Value(), 0)

	reg.Update(tick(t, c, userinput.EventKeyboard{Key: userinput.KeyD, Down: true}))
	test.ExpectEquality(t, walk.Value(), 1)

	reg.Update(tick(t, c, userinput.EventKeyboard{Key: userinput.KeyA, Down: true}))
	test.ExpectEquality(t, walk.Value(), 0)

	reg.Update(tick(t, c, userinput.EventKeyboard{Key: userinput.KeyD, Down: false}))
	test.ExpectEquality(t, walk.Value(), -1)

	// the same axis through the typed lookup
	w, ok := signals.AxisOf[Walk](reg)
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, w, walk)
	test.ExpectEquality(t, w.String(), "Walk: pair(key(A), key(D))")
}

func TestTrigger(t *testing.T) {
	reg := signals.NewRegistry()
	c := userinput.NewCollector()

	jump, err := signals.AddTriggerOf[Jump](reg, trigger.Key(userinput.KeySpace))
	test.DemandSuccess(t, err)
	test.ExpectFailure(t, jump.Pressed())
	test.ExpectFailure(t, jump.JustPressed())
	test.ExpectFailure(t, jump.JustReleased())

	reg.Update(tick(t, c, userinput.EventKeyboard{Key: userinput.KeySpace, Down: true}))
	test.ExpectSuccess(t, jump.Pressed())
	test.ExpectSuccess(t, jump.JustPressed())

	reg.Update(tick(t, c))
	test.ExpectSuccess(t, jump.Pressed())
	test.ExpectFailure(t, jump.JustPressed())

	reg.Update(tick(t, c, userinput.EventKeyboard{Key: userinput.KeySpace, Down: false}))
	test.ExpectFailure(t, jump.Pressed())
	test.ExpectSuccess(t, jump.JustReleased())

	// triggers and axes have separate namespaces
	_, ok := signals.AxisOf[Jump](reg)
	test.ExpectFailure(t, ok)
	_, err = signals.AddAxisOf[Jump](reg, axis.Empty{})
	test.ExpectSuccess(t, err)
}

func TestIdentities(t *testing.T) {
	reg := signals.NewRegistry()

	_, err := reg.AddTrigger("fire", trigger.Key(userinput.KeyF))
	test.ExpectSuccess(t, err)

	_, err = reg.AddTrigger("fire", trigger.Key(userinput.KeyG))
	test.ExpectSuccess(t, curated.Is(err, signals.DuplicateTrigger))
	test.ExpectEquality(t, err.Error(), "signals: duplicate trigger (fire)")

	_, err = reg.AddAxis(1, axis.Empty{})
	test.ExpectSuccess(t, err)
	_, err = reg.AddAxis(1, axis.Empty{})
	test.ExpectSuccess(t, curated.Is(err, signals.DuplicateAxis))

	// identities must be comparable
	_, err = reg.AddTrigger([]int{1}, trigger.Empty{})
	test.ExpectSuccess(t, curated.Is(err, signals.InvalidIdentity))
	_, err = reg.AddAxis(nil, axis.Empty{})
	test.ExpectSuccess(t, curated.Is(err, signals.InvalidIdentity))
	_, ok := reg.Trigger([]int{1})
	test.ExpectFailure(t, ok)

	fire, ok := reg.Trigger("fire")
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, fire.ID(), any("fire"))

	_, ok = reg.Trigger("missing")
	test.ExpectFailure(t, ok)
}

func TestRegistrationOrder(t *testing.T) {
	reg := signals.NewRegistry()

	for _, id := range []string{"c", "a", "b"} {
		_, err := reg.AddTrigger(id, nil)
		test.DemandSuccess(t, err)
		_, err = reg.AddAxis(id, nil)
		test.DemandSuccess(t, err)
	}

	var ids []string
	for _, tr := range reg.Triggers() {
		ids = append(ids, tr.ID().(string))
	}
	test.ExpectEquality(t, strings.Join(ids, ""), "cab")

	ids = ids[:0]
	for _, a := range reg.Axes() {
		ids = append(ids, a.ID().(string))
	}
	test.ExpectEquality(t, strings.Join(ids, ""), "cab")

	// nil bindings are empty bindings
	_, ok := reg.Triggers()[0].Binding().(trigger.Empty)
	test.ExpectSuccess(t, ok)
	_, ok = reg.Axes()[0].Binding().(axis.Empty)
	test.ExpectSuccess(t, ok)
}

func TestSameSnapshot(t *testing.T) {
	reg := signals.NewRegistry()
	c := userinput.NewCollector()

	// a rate limited axis moves by a fixed amount each time it is evaluated
	a, err := reg.AddAxis("limited", axis.NewRateLimit(axis.Constant(1), 6))
	test.DemandSuccess(t, err)

	s := tick(t, c)
	reg.Update(s)
	test.ExpectApproximate(t, a.Value(), 0.1, 0.0001)

	// evaluating the same frame again does nothing
	reg.Update(s)
	test.ExpectApproximate(t, a.Value(), 0.1, 0.0001)

	w := &strings.Builder{}
	logger.Tail(w, 1)
	test.ExpectEquality(t, w.String(), "signals: frame 1 has already been evaluated\n")

	reg.Update(tick(t, c))
	test.ExpectApproximate(t, a.Value(), 0.2, 0.0001)
}

func TestHotSwap(t *testing.T) {
	reg := signals.NewRegistry()
	c := userinput.NewCollector()

	a, err := reg.AddAxis("smoothed", axis.NewSmooth(axis.Constant(1), 0.1))
	test.DemandSuccess(t, err)

	for range 10 {
		reg.Update(tick(t, c))
	}
	before := a.Value()
	test.ExpectSuccess(t, before > 0.5)

	// the value is unchanged until the next update
	a.SetBinding(axis.NewSmooth(axis.Constant(1), 0.1))
	test.ExpectEquality(t, a.Value(), before)

	// the history of the old binding is lost
	reg.Update(tick(t, c))
	test.ExpectSuccess(t, a.Value() < before)

	// swapping a trigger
	tr, err := reg.AddTrigger("t", trigger.Constant(false))
	test.DemandSuccess(t, err)
	reg.Update(tick(t, c))
	test.ExpectFailure(t, tr.Pressed())
	tr.SetBinding(trigger.Constant(true))
	test.ExpectFailure(t, tr.Pressed())
	reg.Update(tick(t, c))
	test.ExpectSuccess(t, tr.Pressed())
	test.ExpectEquality(t, tr.String(), "t: true")

	// a nil binding is an empty binding
	tr.SetBinding(nil)
	reg.Update(tick(t, c))
	test.ExpectFailure(t, tr.Pressed())
}

func TestSharedSnapshot(t *testing.T) {
	reg := signals.NewRegistry()
	c := userinput.NewCollector()

	// every signal sees the same mouse motion
	x1, _ := reg.AddAxis("x1", axis.MouseX{})
	x2, _ := reg.AddAxis("x2", axis.MouseX{})
	reg.Update(tick(t, c, userinput.EventMouseMotion{DX: 3}))
	test.ExpectEquality(t, x1.Value(), 3)
	test.ExpectEquality(t, x2.Value(), 3)
}

func TestBindingIsCopied(t *testing.T) {
	reg := signals.NewRegistry()
	c := userinput.NewCollector()

	// one tree with filter state registered twice
	b := axis.From(axis.Constant(1)).Smooth(0.1).Unwrap()
	first, err := reg.AddAxis("first", b)
	test.DemandSuccess(t, err)
	second, err := reg.AddAxis("second", b)
	test.DemandSuccess(t, err)

	alone := signals.NewRegistry()
	single, err := alone.AddAxis("single", b)
	test.DemandSuccess(t, err)

	s := tick(t, c)
	reg.Update(s)
	alone.Update(s)

	// each signal advances its own filter once per frame
	test.ExpectEquality(t, first.Value(), single.Value())
	test.ExpectEquality(t, second.Value(), single.Value())

	// the caller's tree is untouched
	v, ok := b.Value(s)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v, single.Value())

	// rebinding also takes a copy
	first.SetBinding(b)
	second.SetBinding(b)
	reg.Update(tick(t, c))
	test.ExpectEquality(t, first.Value(), second.Value())
}
