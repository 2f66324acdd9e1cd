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

// Package test bundles a number of helper functions that remove common
// boilerplate from tests. They are intended to be used in conjunction with
// the standard go test harness.
//
// The Expect functions report a failure and allow the test to continue. The
// Demand functions are fatal to the test.
//
// ExpectSuccess() and ExpectFailure() test for success and failure under
// generic conditions. The documentation for those functions describe the
// currently supported types.
//
// It is worth describing how these functions handle the nil type because it
// is not obvious. The nil type is considered a success and consequently will
// cause ExpectFailure() to fail and ExpectSuccess() to succeed. This is
// because of how errors usually work (nil to indicate no error).
//
// The Writer type implements the io.Writer interface and should be used to
// capture output. The Writer.Compare() function can then be used to test for
// equality. RingWriter is similar but only keeps the most recent output.
package test
