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

// Package axis implements continuous input signals. An axis binding is a tree
// of Binding values that produces a float32 value from a userinput.Snapshot.
//
// A Binding may produce no value at all. For example, a Key binding produces
// 1.0 when the key is pressed and no value when the key is not pressed. No
// value is not the same as zero and the combinators treat the two cases
// differently. A List averages only those children that produced a value, so
// an idle input source does not dilute the signal from an active one.
//
// Filters (Deadzone, Smooth, RateLimit, Normalize) may carry state from one
// frame to the next. A binding tree should therefore be evaluated exactly once
// per frame. Cloning a binding tree copies the state, the clone and the
// original do not share state after the clone is made.
//
// Modifiers (Multiply, Divide, Add, Subtract, Invert, WithCurve,
// Transformation, Remap) are stateless. Binding trees are not validated. A
// Remap with an empty input range will produce NaN or Inf values, as
// specified by IEEE 754.
//
// The Chain type makes it easier to build long chains of filters and
// modifiers:
//
//	walk := axis.From(axis.Pair{
//		Negative: axis.Key(userinput.KeyA),
//		Positive: axis.Key(userinput.KeyD),
//	}).Or(axis.GamepadAxis(userinput.GamepadAxisLeftStickX)).Deadzone(0.1).Smooth(0.1)
package axis
