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

// Package trigger implements boolean input signals. A trigger binding is a
// tree of Binding values. The leaves of the tree read device state from a
// userinput.Snapshot and the inner nodes combine the results of their
// children.
//
// Every Binding reports three things for a frame: whether the trigger is
// pressed, whether it became pressed during the frame and whether it became
// released during the frame. Leaves take the edges directly from the device
// state. Composite bindings derive their edges from the edges of their
// children because a composite has no memory of its own.
//
// Trees can be written out in full:
//
//	b := trigger.And{
//		A: trigger.Key(userinput.KeyLeftShift),
//		B: trigger.List{trigger.Key(userinput.KeyW), trigger.Key(userinput.KeyUp)},
//	}
//
// or with the Chain type, which is easier to read for long chains:
//
//	b := trigger.From(trigger.Key(userinput.KeyW)).Or(trigger.Key(userinput.KeyUp)).And(trigger.Key(userinput.KeyLeftShift))
//
// The two forms are identical at runtime.
package trigger
