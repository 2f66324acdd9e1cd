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

// Package assert contains checks that are only useful during development or
// for catching misuse of APIs with threading requirements.
package assert

import (
	"bytes"
	"runtime"
	"strconv"
)

// GetGoRoutineID returns an identifier for a goroutine. It returns a result
// that is (a) different between goroutines and (b) consistent for a given
// goroutine. It should only ever be used for checks and not for program
// logic.
func GetGoRoutineID() uint64 {
	b := make([]byte, 64)
	b = b[:runtime.Stack(b, false)]
	b = bytes.TrimPrefix(b, []byte("goroutine "))
	if i := bytes.IndexByte(b, ' '); i >= 0 {
		b = b[:i]
	}
	n, _ := strconv.ParseUint(string(b), 10, 64)
	return n
}

// Goroutine remembers the goroutine it was created on.
type Goroutine uint64

// NewGoroutine returns a Goroutine for the calling goroutine.
func NewGoroutine() Goroutine {
	return Goroutine(GetGoRoutineID())
}

// Same returns true if it is called from the goroutine the Goroutine was
// created on.
func (g Goroutine) Same() bool {
	return uint64(g) == GetGoRoutineID()
}
