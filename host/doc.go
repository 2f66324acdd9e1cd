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

// Package host drives the per-frame cycle of the input layer. Once per frame
// the Host waits for the frame limiter, services the event Source (the SDL
// window or the terminal), freezes the collected input into a Snapshot,
// updates every signal in the Registry and then calls the application logic.
//
// None of the binding packages depend on this package. Any other program can
// drive a Collector and Registry in exactly the same way from its own loop.
package host
