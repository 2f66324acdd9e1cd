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

// Package sdlinput is a host.Source for SDL2. It opens a small window to
// receive keyboard focus and translates SDL keyboard, mouse and game
// controller events into userinput events.
//
// Mouse motion is reported relative to the previous position. The mouse is
// captured by the window (relative mouse mode) while the right mouse button
// is held down, so motion is still reported at the edge of the screen.
//
// Game controller sticks are scaled to the range -1.0 to 1.0 and triggers to
// the range 0.0 to 1.0. The triggers are also reported as the analog buttons
// LeftTrigger2 and RightTrigger2.
package sdlinput
