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

//go:build windows

package terminput

import (
	"time"

	"github.com/jetsetilly/presshere/curated"
)

// DefaultDevice is not used on this platform.
const DefaultDevice = ""

// Sentinal error pattern returned by NewSource().
const Unsupported = "terminal: raw terminal input is not supported on this platform"

// NewSource always fails on this platform.
func NewSource(_ string, _ time.Duration) (*Source, error) {
	return nil, curated.Errorf(Unsupported)
}
