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

package host

import (
	"context"
	"time"

	"github.com/jetsetilly/presshere/curated"
)

// Sentinal error pattern returned by the frame limiter.
const InvalidFPS = "host: invalid fps (%d)"

// fpsLimiter produces a tick at a regular interval. the interval is
// adjusted on every tick to account for drift in the sleep duration
type fpsLimiter struct {
	framesPerSecond int
	secondsPerFrame time.Duration
	tick            chan time.Time
}

func newFPSLimiter(framesPerSecond int) (*fpsLimiter, error) {
	if framesPerSecond <= 0 {
		return nil, curated.Errorf(InvalidFPS, framesPerSecond)
	}

	lim := &fpsLimiter{
		framesPerSecond: framesPerSecond,
		secondsPerFrame: time.Second / time.Duration(framesPerSecond),
		tick:            make(chan time.Time),
	}

	return lim, nil
}

// run should be launched in its own goroutine. it returns when the context
// is cancelled
func (lim *fpsLimiter) run(ctx context.Context) {
	adjusted := lim.secondsPerFrame
	t := time.Now()
	for {
		select {
		case <-ctx.Done():
			return
		case <-time.After(adjusted):
		}

		nt := time.Now()
		select {
		case <-ctx.Done():
			return
		case lim.tick <- nt:
		}

		// the adjustment can never result in a negative sleep. if a frame
		// took much longer than expected we don't try to catch up
		adjusted -= nt.Sub(t) - lim.secondsPerFrame
		adjusted = max(adjusted, 0)
		adjusted = min(adjusted, lim.secondsPerFrame)
		t = nt
	}
}

// wait for the next tick. returns false if the context has been cancelled
func (lim *fpsLimiter) wait(ctx context.Context) (time.Time, bool) {
	select {
	case <-ctx.Done():
		return time.Time{}, false
	case t := <-lim.tick:
		return t, true
	}
}
