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

// Package signals is the registry of named triggers and axes. Each named
// signal owns a binding tree and the result of the most recent evaluation of
// that tree.
//
// The identity of a signal can be any comparable value. A common pattern is
// to use a distinct empty type for each signal and to use the typed helper
// functions:
//
//	type Jump struct{}
//
//	signals.AddTriggerOf[Jump](reg, trigger.Key(userinput.KeySpace))
//	...
//	jump, _ := signals.TriggerOf[Jump](reg)
//	if jump.JustPressed() {
//		...
//	}
//
// Registry.Update() should be called exactly once per frame, before any of the
// signals are read. The Registry is not safe for concurrent use.
package signals
