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

// Package logger is the central log for the application. Log entries are
// made up of a tag and a detail. The tag is usually the name of the package
// making the entry:
//
//	logger.Log(logger.Allow, "signals", "registered trigger Jump")
//
// Consecutive entries with the same tag and detail are collapsed into a single
// entry with a repeat count.
//
// Logging is gated by the Permission interface. Code that may be run in an
// environment where logging is unwanted (for example, a binding evaluated many
// times by a test) can pass a Permission that says no.
//
// The central log is not written anywhere unless SetEcho() is used or the log
// is explicitly written with Write() or Tail(). Additional, independent logs
// can be created with NewLogger(), which is useful for testing.
package logger
