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

// Package terminput is a host.Source for a POSIX terminal in raw mode. It is
// useful when a window cannot be opened, for example over an SSH connection.
//
// A terminal only reports characters. It does not report when a key is
// released and it does not report modifier keys on their own. A key is
// therefore considered to be held down from the moment it is first seen until
// it has not been seen for the hold duration. Terminal auto-repeat keeps the
// key held for as long as it is physically pressed, provided the hold
// duration is longer than the auto-repeat delay.
//
// The arrow keys are recognised from their ANSI escape sequences. Ctrl-C and
// Ctrl-D request that the program ends.
package terminput
