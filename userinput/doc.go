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

// Package userinput handles input from real hardware and presents it, one
// frame at a time, to the binding packages.
//
// It can be thought of as a translation layer between the host (an SDL
// window, a terminal, a test) and the trigger and axis packages. The host
// sends Event values to a Collector as they arrive. Once per frame the host
// calls Collector.Tick() and receives a Snapshot, an immutable view of the
// device state for that frame:
//
//	c := userinput.NewCollector()
//	c.HandleUserInput(userinput.EventKeyboard{Key: userinput.KeySpace, Down: true})
//	s := c.Tick(16 * time.Millisecond)
//	s.Keys().JustPressed(userinput.KeySpace) // true
//
// Per-frame information (just pressed and just released edges, mouse motion
// and mouse wheel events) is cleared by Tick() after the Snapshot has been
// taken, so it is seen by exactly one Snapshot.
//
// The host in use during development was SDL and so there will be a bias
// towards that system. Key names for example, are the names returned by
// sdl.GetKeyName().
package userinput
