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

package terminput

import (
	"maps"
	"slices"
	"time"

	"github.com/jetsetilly/presshere/userinput"
)

// holder decides when a key has been released. a key is released when it has
// not been seen for the hold duration
type holder struct {
	duration time.Duration
	lastSeen map[userinput.Key]time.Time
}

func newHolder(duration time.Duration) *holder {
	return &holder{
		duration: duration,
		lastSeen: make(map[userinput.Key]time.Time),
	}
}

// seen returns true if the key was not already being held
func (h *holder) seen(k userinput.Key, now time.Time) bool {
	_, held := h.lastSeen[k]
	h.lastSeen[k] = now
	return !held
}

// expire returns the keys that should now be released. the list is sorted so
// that release events are sent in a predictable order
func (h *holder) expire(now time.Time) []userinput.Key {
	var released []userinput.Key
	for k, t := range h.lastSeen {
		if now.Sub(t) >= h.duration {
			released = append(released, k)
		}
	}
	slices.Sort(released)
	for _, k := range released {
		delete(h.lastSeen, k)
	}
	return released
}

// held returns all keys that are currently held, sorted
func (h *holder) held() []userinput.Key {
	return slices.Sorted(maps.Keys(h.lastSeen))
}
