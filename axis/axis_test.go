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

package axis_test

import (
	"math"
	"testing"
	"time"

	"github.com/jetsetilly/presshere/axis"
	"github.com/jetsetilly/presshere/curve"
	"github.com/jetsetilly/presshere/test"
	"github.com/jetsetilly/presshere/trigger"
	"github.com/jetsetilly/presshere/userinput"
)

// optional returns a binding that has the value v if ok is true and no value
// otherwise
func optional(v float32, ok bool) axis.Binding {
	if ok {
		return axis.Constant(v)
	}
	return axis.Empty{}
}

func TestPair(t *testing.T) {
	s := newInput(t).tick()

	for _, neg := range []bool{false, true} {
		for _, pos := range []bool{false, true} {
			p := axis.Pair{Negative: optional(0.25, neg), Positive: optional(1.0, pos)}
			r := value(p, s)

			switch {
			case !neg && !pos:
				test.ExpectEquality(t, r, none)
			case neg && !pos:
				test.ExpectEquality(t, r, some(-0.25))
			case !neg && pos:
				test.ExpectEquality(t, r, some(1.0))
			default:
				test.ExpectEquality(t, r, some(0.75))
			}
		}
	}
}

func TestListAverage(t *testing.T) {
	s := newInput(t).tick()

	values := []float32{1, 2, 3, 4}

	// every combination of active children
	for mask := 0; mask < 1<<len(values); mask++ {
		var l axis.List
		var sum float32
		var count int
		for i, v := range values {
			active := mask&(1<<i) != 0
			l = append(l, optional(v, active))
			if active {
				sum += v
				count++
			}
		}

		if count == 0 {
			test.ExpectEquality(t, value(l, s), none, mask)
		} else {
			test.ExpectEquality(t, value(l, s), some(sum/float32(count)), mask)
		}
	}

	test.ExpectEquality(t, value(axis.List{}, s), none)
}

func TestWithTrigger(t *testing.T) {
	in := newInput(t)
	w := axis.WithTrigger{Axis: axis.Constant(0.5), Trigger: trigger.Key(userinput.KeyLeftShift)}

	s := in.tick()
	test.ExpectEquality(t, value(w, s), none)

	s = in.tick(down(userinput.KeyLeftShift))
	test.ExpectEquality(t, value(w, s), some(0.5))

	// the axis is not evaluated when the trigger is not pressed
	sm := axis.NewSmooth(axis.Constant(1), 0.1)
	w = axis.WithTrigger{Axis: sm, Trigger: trigger.Constant(false)}
	test.ExpectEquality(t, value(w, s), none)
	test.ExpectEquality(t, value(sm, in.tickDelta(0)), some(0))
}

func TestDeadzone(t *testing.T) {
	s := newInput(t).tick()

	for _, v := range []float32{-0.5, -0.2, -0.1, 0, 0.05, 0.1, 0.3, 1} {
		d := axis.Deadzone{A: axis.Constant(v), Threshold: 0.2}
		if v > -0.2 && v < 0.2 {
			test.ExpectEquality(t, value(d, s), none, v)
		} else {
			test.ExpectEquality(t, value(d, s), some(v), v)
		}
	}

	d := axis.Deadzone{A: axis.Empty{}, Threshold: 0}
	test.ExpectEquality(t, value(d, s), none)
}

func TestSmooth(t *testing.T) {
	in := newInput(t)
	sm := axis.NewSmooth(axis.Constant(1), 0.1)

	// a zero delta leaves the value unchanged
	test.ExpectEquality(t, value(sm, in.tickDelta(0)), some(0))

	// one frame moves part of the way
	r := value(sm, in.tick())
	test.ExpectSuccess(t, r.ok)
	test.ExpectSuccess(t, r.v > 0 && r.v < 1)

	// the value is unchanged by a frame with a zero delta
	test.ExpectEquality(t, value(sm, in.tickDelta(0)), r)

	// the expected value after one frame
	alpha := 1.0 - math.Exp(-frame.Seconds()/0.1)
	test.ExpectApproximate(t, float64(r.v), alpha, 0.0001)

	// converges on the target
	for range 600 {
		sm.Value(in.tick())
	}
	test.ExpectApproximate(t, value(sm, in.tick()).v, 1.0, 0.0001)

	// missing values count as zero and smooth always has a value
	sm.A = axis.Empty{}
	r = value(sm, in.tick())
	test.ExpectSuccess(t, r.ok)
	test.ExpectSuccess(t, r.v < 1)

	// no smoothing
	sm = axis.NewSmooth(axis.Constant(1), 0)
	test.ExpectEquality(t, value(sm, in.tickDelta(0)), some(1))
}

func TestRateLimit(t *testing.T) {
	in := newInput(t)
	target := axis.Constant(10)
	rl := axis.NewRateLimit(target, 2)

	// the change in any frame is limited to the maximum rate multiplied by the
	// frame delta
	limit := float32(2 * frame.Seconds())
	var prev float32
	for i := range 10 {
		r := value(rl, in.tick())
		test.ExpectSuccess(t, r.ok)
		test.ExpectApproximate(t, r.v-prev, limit, 0.0001, i)
		prev = r.v
	}

	// no value when the input has no value
	rl.A = axis.Empty{}
	test.ExpectEquality(t, value(rl, in.tick()), none)

	// and the state is remembered for when the input next has a value
	rl.A = axis.Constant(prev)
	test.ExpectEquality(t, value(rl, in.tick()), some(prev))

	// a large jump over a long frame
	rl.A = axis.Constant(-10)
	r := value(rl, in.tickDelta(time.Second))
	test.ExpectEquality(t, r, some(prev-2))

	// the target is reached when it is within the limit
	r = value(rl, in.tickDelta(10*time.Second))
	test.ExpectSuccess(t, r.ok)
	test.ExpectApproximate(t, r.v, -10, 0.0001)
}

func TestNormalize(t *testing.T) {
	s := newInput(t).tick()

	n := axis.Normalize{A: axis.Constant(1), Perpendicular: axis.Constant(1)}
	test.ExpectApproximate(t, value(n, s).v, float32(1/math.Sqrt2), 0.0001)

	// vectors shorter than one are unchanged
	n = axis.Normalize{A: axis.Constant(0.5), Perpendicular: axis.Constant(0.5)}
	test.ExpectEquality(t, value(n, s), some(0.5))

	// missing values count as zero
	n = axis.Normalize{A: axis.Constant(3), Perpendicular: axis.Empty{}}
	test.ExpectEquality(t, value(n, s), some(1))
	n = axis.Normalize{A: axis.Empty{}, Perpendicular: axis.Constant(3)}
	test.ExpectEquality(t, value(n, s), some(0))
}

func TestArithmetic(t *testing.T) {
	s := newInput(t).tick()

	a := axis.Constant(6)
	b := axis.Constant(3)
	e := axis.Empty{}

	test.ExpectEquality(t, value(axis.Multiply{A: a, B: b}, s), some(18))
	test.ExpectEquality(t, value(axis.Multiply{A: a, B: e}, s), some(0))
	test.ExpectEquality(t, value(axis.Divide{A: a, B: b}, s), some(2))
	test.ExpectEquality(t, value(axis.Divide{A: a, B: e}, s), some(6))
	test.ExpectEquality(t, value(axis.Divide{A: e, B: b}, s), some(0))
	test.ExpectEquality(t, value(axis.Add{A: a, B: b}, s), some(9))
	test.ExpectEquality(t, value(axis.Add{A: e, B: e}, s), some(0))
	test.ExpectEquality(t, value(axis.Subtract{A: a, B: b}, s), some(3))
	test.ExpectEquality(t, value(axis.Subtract{A: e, B: b}, s), some(-3))

	test.ExpectEquality(t, value(axis.Invert{A: a}, s), some(-6))
	test.ExpectEquality(t, value(axis.Invert{A: e}, s), none)

	// division by zero is not guarded against
	r := value(axis.Divide{A: a, B: axis.Constant(0)}, s)
	test.ExpectSuccess(t, math.IsInf(float64(r.v), 1))
}

func TestCurveAndTransformation(t *testing.T) {
	s := newInput(t).tick()

	w := axis.WithCurve{A: axis.Constant(0.5), Curve: curve.QuadraticIn}
	test.ExpectEquality(t, value(w, s), some(0.25))

	// the curve is not defined outside of the unit interval
	w = axis.WithCurve{A: axis.Constant(-0.5), Curve: curve.QuadraticIn}
	test.ExpectEquality(t, value(w, s), none)

	w = axis.WithCurve{A: axis.Empty{}, Curve: curve.Linear}
	test.ExpectEquality(t, value(w, s), none)

	tr := axis.Transformation{A: axis.Constant(3), Func: func(v float32) float32 { return v * v }}
	test.ExpectEquality(t, value(tr, s), some(9))
	tr.A = axis.Empty{}
	test.ExpectEquality(t, value(tr, s), none)
}

func TestRemap(t *testing.T) {
	s := newInput(t).tick()

	r := axis.Remap{A: axis.Constant(0.5), InMin: 0, InMax: 1, OutMin: 0, OutMax: 10}
	test.ExpectEquality(t, value(r, s), some(5))

	// not clamped
	r.A = axis.Constant(2)
	test.ExpectEquality(t, value(r, s), some(20))

	r.A = axis.Empty{}
	test.ExpectEquality(t, value(r, s), none)

	// an empty input range is not guarded against
	r = axis.Remap{A: axis.Constant(0), InMin: 0, InMax: 0, OutMin: 0, OutMax: 10}
	test.ExpectSuccess(t, math.IsNaN(float64(value(r, s).v)))
}

func TestCloneFilterState(t *testing.T) {
	in := newInput(t)

	orig := axis.From(axis.Constant(1)).Smooth(0.1).Deadzone(0)
	clone := orig.Clone()

	// drive the clone through a number of frames
	var s *userinput.Snapshot
	for range 10 {
		s = in.tick()
		clone.Value(s)
	}

	// the original is unaffected
	test.ExpectEquality(t, value(orig, in.tickDelta(0)), some(0))
	test.ExpectInequality(t, value(clone, in.tickDelta(0)), some(0))

	// state is copied at the time of the clone
	clone2 := clone.Clone()
	test.ExpectEquality(t, value(clone2, in.tickDelta(0)), value(clone, in.tickDelta(0)))
}

func TestChain(t *testing.T) {
	c := axis.From(axis.Pair{Negative: axis.Key(userinput.KeyA), Positive: axis.Key(userinput.KeyD)}).
		Or(axis.GamepadAxis(userinput.GamepadAxisLeftStickX)).
		Deadzone(0.1).
		WithTrigger(trigger.Key(userinput.KeyLeftShift))

	test.ExpectEquality(t, c.String(), "with(deadzone(avg(pair(key(A), key(D)), gamepad(LeftStickX)), 0.1), key(Left Shift))")

	in := newInput(t)
	s := in.tick(down(userinput.KeyD))
	test.ExpectEquality(t, value(c, s), none)
	s = in.tick(down(userinput.KeyLeftShift))
	test.ExpectEquality(t, value(c, s), some(1))

	// the remaining chain methods
	m := axis.From(axis.Constant(0.5)).
		Mult(axis.Constant(4)).
		Div(axis.Constant(2)).
		Add(axis.Constant(1)).
		Sub(axis.Constant(0.5)).
		Invert().
		Remap(-2, 0, 0, 1).
		WithCurve(curve.Linear).
		Transform(func(v float32) float32 { return v * 10 })
	test.ExpectApproximate(t, value(m, s).v, 2.5, 0.0001)

	n := axis.From(axis.Constant(3)).Normalize(axis.From(axis.Constant(4)))
	test.ExpectApproximate(t, value(n, s).v, 0.6, 0.0001)

	l := axis.From(axis.Constant(10)).LimitRate(60)
	test.ExpectApproximate(t, value(l, s).v, 1.0, 0.0001)
}

func TestSplit(t *testing.T) {
	sm := axis.NewSmooth(axis.Constant(1), 0.1)
	l := axis.List{sm, axis.Key(userinput.KeyA)}

	split := axis.Split(l)
	test.DemandEquality(t, len(split), 2)
	test.ExpectEquality(t, axis.Describe(split[1]), "key(A)")

	// split children are clones
	in := newInput(t)
	split[0].Value(in.tick())
	test.ExpectEquality(t, value(sm, in.tickDelta(0)), some(0))

	split = axis.Split(axis.Constant(1))
	test.DemandEquality(t, len(split), 1)
	test.ExpectEquality(t, axis.Describe(split[0]), "1")
}
