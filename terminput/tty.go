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

//go:build !windows

package terminput

import (
	"time"

	"github.com/pkg/term"
	"go.uber.org/multierr"

	"github.com/jetsetilly/presshere/curated"
	"github.com/jetsetilly/presshere/logger"
)

// DefaultDevice is the controlling terminal of the process.
const DefaultDevice = "/dev/tty"

// the read timeout of the terminal. the reading goroutine checks whether
// the Source has been destroyed at this interval
const readTimeout = 100 * time.Millisecond

// NewSource opens the terminal device and puts it into raw mode. The hold
// duration is the time a key remains pressed after it was last seen.
func NewSource(device string, hold time.Duration) (*Source, error) {
	tty, err := term.Open(device, term.RawMode)
	if err != nil {
		return nil, curated.Errorf(DeviceError, err)
	}

	err = tty.SetReadTimeout(readTimeout)
	if err != nil {
		return nil, multierr.Append(curated.Errorf(DeviceError, err), tty.Close())
	}

	logger.Logf(logger.Allow, "terminal", "%s in raw mode (hold %v)", device, hold)

	restore := func() error {
		return multierr.Append(tty.Restore(), tty.Close())
	}

	return newSource(tty, restore, hold), nil
}
