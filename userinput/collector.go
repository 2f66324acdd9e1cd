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

package userinput

import (
	"slices"
	"time"

	"github.com/jetsetilly/presshere/curated"
	"github.com/jetsetilly/presshere/logger"
)

// Sentinal error patterns returned by HandleUserInput().
const (
	UnknownGamepad   = "userinput: unknown gamepad (%d)"
	UnsupportedEvent = "userinput: unsupported event (%T)"
)

// Collector accumulates events sent by the host and produces a Snapshot once
// per frame.
//
// Collector is not safe for concurrent use. It is expected that the host
// sends events and calls Tick() from the same goroutine.
type Collector struct {
	frame   uint64
	elapsed time.Duration

	keys         Buttons[Key]
	mouseButtons Buttons[MouseButton]
	gamepads     []*Gamepad

	motion []EventMouseMotion
	wheel  []EventMouseWheel

	recorders []EventRecorder
}

// EventRecorder is implemented by types that want to see every event handled
// by the Collector. The frame is the number of the frame that the event will
// be part of, ie. the frame of the next Snapshot.
type EventRecorder interface {
	RecordEvent(frame uint64, ev Event) error
}

// AttachEventRecorder adds a recorder to the Collector. Events are sent to the
// recorder after they have been handled successfully.
func (c *Collector) AttachEventRecorder(r EventRecorder) {
	c.recorders = append(c.recorders, r)
}

// NewCollector is the preferred method of initialisation for the Collector
// type.
func NewCollector() *Collector {
	return &Collector{}
}

// HandleUserInput updates the live device state with the Event. Returns true
// if the event is a quit event and false otherwise.
func (c *Collector) HandleUserInput(ev Event) (bool, error) {
	quit, err := c.handle(ev)
	if err != nil {
		return false, err
	}
	for _, r := range c.recorders {
		err = r.RecordEvent(c.frame+1, ev)
		if err != nil {
			return false, err
		}
	}
	return quit, nil
}

func (c *Collector) handle(ev Event) (bool, error) {
	switch ev := ev.(type) {
	case EventQuit:
		return true, nil

	case EventKeyboard:
		if ev.Repeat {
			return false, nil
		}
		if ev.Down {
			c.keys.press(ev.Key)
		} else {
			c.keys.release(ev.Key)
		}

	case EventMouseButton:
		if ev.Down {
			c.mouseButtons.press(ev.Button)
		} else {
			c.mouseButtons.release(ev.Button)
		}

	case EventMouseMotion:
		c.motion = append(c.motion, ev)

	case EventMouseWheel:
		c.wheel = append(c.wheel, ev)

	case EventGamepadConnect:
		if g := c.gamepad(ev.ID); g != nil {
			g.name = ev.Name
			logger.Logf(logger.Allow, "userinput", "%s reconnected", g)
			return false, nil
		}
		g := newGamepad(ev.ID, ev.Name)
		c.gamepads = append(c.gamepads, g)
		logger.Logf(logger.Allow, "userinput", "%s connected", g)

	case EventGamepadDisconnect:
		i := slices.IndexFunc(c.gamepads, func(g *Gamepad) bool {
			return g.ID() == ev.ID
		})
		if i == -1 {
			return false, curated.Errorf(UnknownGamepad, ev.ID)
		}
		logger.Logf(logger.Allow, "userinput", "%s disconnected", c.gamepads[i])
		c.gamepads = slices.Delete(c.gamepads, i, i+1)

	case EventGamepadButton:
		c.implicitGamepad(ev.ID).setButton(ev.Button, ev.Down, ev.Value)

	case EventGamepadAxis:
		c.implicitGamepad(ev.ID).setAxis(ev.Axis, ev.Value)

	default:
		return false, curated.Errorf(UnsupportedEvent, ev)
	}

	return false, nil
}

// Tick ends the current frame. The returned Snapshot is a copy of the device
// state and is not affected by any events handled after the call to Tick().
//
// Edges, mouse motion and mouse wheel information is cleared so that the next
// Snapshot only contains information about the next frame.
func (c *Collector) Tick(delta time.Duration) *Snapshot {
	c.frame++
	c.elapsed += delta

	s := &Snapshot{
		frame:        c.frame,
		delta:        delta,
		elapsed:      c.elapsed,
		keys:         c.keys.clone(),
		mouseButtons: c.mouseButtons.clone(),
		gamepads:     make([]*Gamepad, len(c.gamepads)),
		motion:       c.motion,
		wheel:        c.wheel,
	}
	for i, g := range c.gamepads {
		s.gamepads[i] = g.clone()
	}

	// the snapshot owns the motion and wheel slices now. we need new slices
	// for the next frame rather than reusing the existing backing arrays
	c.motion = nil
	c.wheel = nil

	c.keys.nextTick()
	c.mouseButtons.nextTick()
	for _, g := range c.gamepads {
		g.buttons.nextTick()
	}

	return s
}

// Frame returns the number of the most recent frame.
func (c *Collector) Frame() uint64 {
	return c.frame
}

func (c *Collector) gamepad(id int) *Gamepad {
	for _, g := range c.gamepads {
		if g.id == id {
			return g
		}
	}
	return nil
}

// gamepad events for a gamepad that has not been connected are accepted. the
// gamepad is connected implicitly
func (c *Collector) implicitGamepad(id int) *Gamepad {
	if g := c.gamepad(id); g != nil {
		return g
	}
	g := newGamepad(id, "")
	c.gamepads = append(c.gamepads, g)
	logger.Logf(logger.Allow, "userinput", "%s connected implicitly", g)
	return g
}
