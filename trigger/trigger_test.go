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

package trigger_test

import (
	"testing"
	"time"

	"github.com/jetsetilly/presshere/test"
	"github.com/jetsetilly/presshere/trigger"
	"github.com/jetsetilly/presshere/userinput"
)

const frame = time.Second / 60

// input is a helper for driving a Collector from a test. events are handled
// and then the frame is ended
type input struct {
	t *testing.T
	c *userinput.Collector
}

func newInput(t *testing.T) *input {
	return &input{t: t, c: userinput.NewCollector()}
}

func (in *input) tick(events ...userinput.Event) *userinput.Snapshot {
	in.t.Helper()
	for _, ev := range events {
		_, err := in.c.HandleUserInput(ev)
		test.DemandSuccess(in.t, err)
	}
	return in.c.Tick(frame)
}

func down(k userinput.Key) userinput.Event {
	return userinput.EventKeyboard{Key: k, Down: true}
}

func up(k userinput.Key) userinput.Event {
	return userinput.EventKeyboard{Key: k, Down: false}
}

// pressed, justPressed, justReleased
func state(b trigger.Binding, s *userinput.Snapshot) [3]bool {
	return [3]bool{b.Pressed(s), b.JustPressed(s), b.JustReleased(s)}
}

func TestLeaves(t *testing.T) {
	in := newInput(t)
	s := in.tick()

	test.ExpectEquality(t, state(trigger.Empty{}, s), [3]bool{false, false, false})
	test.ExpectEquality(t, state(trigger.Constant(true), s), [3]bool{true, false, false})
	test.ExpectEquality(t, state(trigger.Constant(false), s), [3]bool{false, false, false})

	key := trigger.Key(userinput.KeyA)
	test.ExpectEquality(t, state(key, s), [3]bool{false, false, false})

	s = in.tick(down(userinput.KeyA))
	test.ExpectEquality(t, state(key, s), [3]bool{true, true, false})

	s = in.tick()
	test.ExpectEquality(t, state(key, s), [3]bool{true, false, false})

	s = in.tick(up(userinput.KeyA))
	test.ExpectEquality(t, state(key, s), [3]bool{false, false, true})

	mouse := trigger.MouseButton(userinput.MouseButtonLeft)
	s = in.tick(userinput.EventMouseButton{Button: userinput.MouseButtonLeft, Down: true})
	test.ExpectEquality(t, state(mouse, s), [3]bool{true, true, false})
	test.ExpectEquality(t, state(key, s), [3]bool{false, false, false})
}

func TestGamepadButton(t *testing.T) {
	in := newInput(t)
	south := trigger.GamepadButton(userinput.GamepadButtonSouth)

	// no gamepads connected
	s := in.tick()
	test.ExpectEquality(t, state(south, s), [3]bool{false, false, false})

	// button on the second gamepad counts
	s = in.tick(
		userinput.EventGamepadConnect{ID: 1},
		userinput.EventGamepadConnect{ID: 2},
		userinput.EventGamepadButton{ID: 2, Button: userinput.GamepadButtonSouth, Down: true},
	)
	test.ExpectEquality(t, state(south, s), [3]bool{true, true, false})

	s = in.tick(userinput.EventGamepadButton{ID: 2, Button: userinput.GamepadButtonSouth, Down: false})
	test.ExpectEquality(t, state(south, s), [3]bool{false, false, true})
}

func TestList(t *testing.T) {
	in := newInput(t)
	l := trigger.List{trigger.Key(userinput.KeyA), trigger.Key(userinput.KeyB)}

	s := in.tick()
	test.ExpectEquality(t, state(l, s), [3]bool{false, false, false})

	s = in.tick(down(userinput.KeyB))
	test.ExpectEquality(t, state(l, s), [3]bool{true, true, false})

	// pressing the second key is reported as an edge even though the list was
	// already pressed
	s = in.tick(down(userinput.KeyA))
	test.ExpectEquality(t, state(l, s), [3]bool{true, true, false})

	s = in.tick(up(userinput.KeyA))
	test.ExpectEquality(t, state(l, s), [3]bool{true, false, true})

	test.ExpectEquality(t, state(trigger.List{}, s), [3]bool{false, false, false})
}

func TestAnd(t *testing.T) {
	in := newInput(t)
	and := trigger.And{A: trigger.Key(userinput.KeyA), B: trigger.Key(userinput.KeyB)}

	// A held for three frames and B pressed on the third frame
	s := in.tick(down(userinput.KeyA))
	test.ExpectEquality(t, state(and, s), [3]bool{false, false, false})
	s = in.tick()
	test.ExpectEquality(t, state(and, s), [3]bool{false, false, false})
	s = in.tick(down(userinput.KeyB))
	test.ExpectEquality(t, state(and, s), [3]bool{true, true, false})
	s = in.tick()
	test.ExpectEquality(t, state(and, s), [3]bool{true, false, false})

	// releasing either is a release of the combination
	s = in.tick(up(userinput.KeyA))
	test.ExpectEquality(t, state(and, s), [3]bool{false, false, true})

	// releasing the other when the combination is already released is
	// reported again because the edge is taken from the child
	s = in.tick(up(userinput.KeyB))
	test.ExpectEquality(t, state(and, s), [3]bool{false, false, true})

	// both pressed during the same frame
	s = in.tick(down(userinput.KeyA), down(userinput.KeyB))
	test.ExpectEquality(t, state(and, s), [3]bool{true, true, false})
}

func TestNot(t *testing.T) {
	in := newInput(t)
	not := trigger.Not{A: trigger.Key(userinput.KeyA)}

	s := in.tick()
	test.ExpectEquality(t, state(not, s), [3]bool{true, true, true})

	s = in.tick(down(userinput.KeyA))
	test.ExpectEquality(t, state(not, s), [3]bool{false, false, true})

	s = in.tick()
	test.ExpectEquality(t, state(not, s), [3]bool{false, true, true})

	s = in.tick(up(userinput.KeyA))
	test.ExpectEquality(t, state(not, s), [3]bool{true, true, false})
}

func TestChain(t *testing.T) {
	in := newInput(t)

	c := trigger.From(trigger.Key(userinput.KeyW)).Or(trigger.Key(userinput.KeyUp)).And(trigger.Key(userinput.KeyLeftShift))
	test.ExpectEquality(t, c.String(), "and(any(key(W), key(Up)), key(Left Shift))")

	s := in.tick(down(userinput.KeyUp))
	test.ExpectEquality(t, state(c, s), [3]bool{false, false, false})
	s = in.tick(down(userinput.KeyLeftShift))
	test.ExpectEquality(t, state(c, s), [3]bool{true, true, false})

	n := trigger.From(c).Not()
	test.ExpectEquality(t, n.Pressed(s), false)
	test.ExpectEquality(t, trigger.Describe(n), "not(and(any(key(W), key(Up)), key(Left Shift)))")

	// a chain inside a chain is unwrapped
	_, ok := trigger.From(trigger.From(trigger.Empty{})).Unwrap().(trigger.Empty)
	test.ExpectSuccess(t, ok)
}

func TestSplit(t *testing.T) {
	l := trigger.List{trigger.Key(userinput.KeyA), trigger.Not{A: trigger.Key(userinput.KeyB)}}

	split := trigger.Split(l)
	test.DemandEquality(t, len(split), 2)
	test.ExpectEquality(t, trigger.Describe(split[0]), "key(A)")
	test.ExpectEquality(t, trigger.Describe(split[1]), "not(key(B))")

	// modifying the result of a split does not affect the original
	split[0] = trigger.Key(userinput.KeyC)
	test.ExpectEquality(t, trigger.Describe(l), "any(key(A), not(key(B)))")

	// children can be replaced directly
	l.Children()[0] = trigger.Key(userinput.KeyC)
	test.ExpectEquality(t, trigger.Describe(l), "any(key(C), not(key(B)))")

	// a chain around a list is split as a list
	test.ExpectEquality(t, len(trigger.Split(trigger.From(l))), 2)

	// anything else is a single element
	split = trigger.Split(trigger.Key(userinput.KeyA))
	test.DemandEquality(t, len(split), 1)
	test.ExpectEquality(t, trigger.Describe(split[0]), "key(A)")
}

func TestClone(t *testing.T) {
	l := trigger.List{trigger.Key(userinput.KeyA), trigger.List{trigger.Key(userinput.KeyB)}}
	c := l.Clone().(trigger.List)

	c.Children()[1].(trigger.List)[0] = trigger.Key(userinput.KeyC)
	test.ExpectEquality(t, trigger.Describe(l), "any(key(A), any(key(B)))")
	test.ExpectEquality(t, trigger.Describe(c), "any(key(A), any(key(C)))")
}
