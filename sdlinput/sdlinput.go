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

package sdlinput

import (
	"runtime"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/multierr"

	"github.com/jetsetilly/presshere/assert"
	"github.com/jetsetilly/presshere/curated"
	"github.com/jetsetilly/presshere/logger"
	"github.com/jetsetilly/presshere/userinput"
	"github.com/jetsetilly/presshere/version"
)

const (
	windowWidth  = 320
	windowHeight = 200
)

// Source implements the host.Source interface for SDL.
type Source struct {
	window *sdl.Window

	// open game controllers indexed by instance ID
	controllers map[sdl.JoystickID]*sdl.GameController

	// relative mouse mode is enabled while the right mouse button is held
	captured bool

	// the goroutine that initialised SDL
	thread assert.Goroutine
}

// Sentinal error patterns.
const (
	SDLError    = "sdl: %v"
	WrongThread = "sdl: events must be serviced on the thread that created the source"
)

// NewSource is the preferred method of initialisation for the Source type.
//
// Must be called from the main thread. SDL requires that the events are
// serviced from the same thread that initialised it.
func NewSource() (*Source, error) {
	// the SDL package calls LockOSThread() but we call it here too. it can't
	// hurt and we never unlock it in any case
	runtime.LockOSThread()

	err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_GAMECONTROLLER)
	if err != nil {
		return nil, curated.Errorf(SDLError, err)
	}

	var sdlVersion sdl.Version
	sdl.VERSION(&sdlVersion)
	logger.Logf(logger.Allow, "sdl", "version %d.%d.%d", sdlVersion.Major, sdlVersion.Minor, sdlVersion.Patch)

	src := &Source{
		controllers: make(map[sdl.JoystickID]*sdl.GameController),
		thread:      assert.NewGoroutine(),
	}

	src.window, err = sdl.CreateWindow(version.Title(),
		sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED,
		windowWidth, windowHeight, sdl.WINDOW_SHOWN)
	if err != nil {
		sdl.Quit()
		return nil, curated.Errorf(SDLError, err)
	}

	// controllers that are already connected will be announced by a
	// CONTROLLERDEVICEADDED event on the first call to Service()

	return src, nil
}

// Service implements the host.Source interface.
func (src *Source) Service(c *userinput.Collector) (bool, error) {
	if !src.thread.Same() {
		return false, curated.Errorf(WrongThread)
	}

	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		for _, uev := range src.translate(ev) {
			quit, err := c.HandleUserInput(uev)
			if err != nil {
				logger.Log(logger.Allow, "sdl", err)
			}
			if quit {
				return false, nil
			}
		}
	}
	return true, nil
}

func (src *Source) translate(ev sdl.Event) []userinput.Event {
	switch ev := ev.(type) {
	case *sdl.QuitEvent:
		return []userinput.Event{userinput.EventQuit{}}

	case *sdl.KeyboardEvent:
		return []userinput.Event{translateKeyboard(ev)}

	case *sdl.MouseButtonEvent:
		if ev.Button == sdl.BUTTON_RIGHT {
			src.capture(ev.Type == sdl.MOUSEBUTTONDOWN)
		}
		if uev, ok := translateMouseButton(ev); ok {
			return []userinput.Event{uev}
		}

	case *sdl.MouseMotionEvent:
		return []userinput.Event{translateMouseMotion(ev)}

	case *sdl.MouseWheelEvent:
		return []userinput.Event{translateMouseWheel(ev)}

	case *sdl.ControllerDeviceEvent:
		switch ev.Type {
		case sdl.CONTROLLERDEVICEADDED:
			// for the added event the Which field is the device index
			// and not the instance ID
			pad := sdl.GameControllerOpen(int(ev.Which))
			if pad == nil {
				logger.Logf(logger.Allow, "sdl", "cannot open gamepad at device index %d", ev.Which)
				return nil
			}
			id := pad.Joystick().InstanceID()
			src.controllers[id] = pad
			return []userinput.Event{userinput.EventGamepadConnect{
				ID:   int(id),
				Name: pad.Name(),
			}}

		case sdl.CONTROLLERDEVICEREMOVED:
			if pad, ok := src.controllers[ev.Which]; ok {
				pad.Close()
				delete(src.controllers, ev.Which)
			}
			return []userinput.Event{userinput.EventGamepadDisconnect{
				ID: int(ev.Which),
			}}
		}

	case *sdl.ControllerButtonEvent:
		if uev, ok := translateControllerButton(ev); ok {
			return []userinput.Event{uev}
		}

	case *sdl.ControllerAxisEvent:
		return translateControllerAxis(ev)
	}

	return nil
}

func (src *Source) capture(set bool) {
	if src.captured == set {
		return
	}
	src.captured = set
	sdl.SetRelativeMouseMode(set)
}

// Destroy implements the host.Source interface.
func (src *Source) Destroy() error {
	var err error

	for id, pad := range src.controllers {
		pad.Close()
		delete(src.controllers, id)
	}

	if src.window != nil {
		err = multierr.Append(err, src.window.Destroy())
		src.window = nil
	}
	sdl.Quit()

	return err
}
