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

	"go.uber.org/multierr"

	"github.com/jetsetilly/presshere/logger"
	"github.com/jetsetilly/presshere/signals"
	"github.com/jetsetilly/presshere/userinput"
)

// Source is a provider of input events. The SDL window and the terminal are
// the two Source implementations in this project.
type Source interface {
	// Service sends all pending events to the Collector. Returns false if
	// the source wants the application to end.
	Service(c *userinput.Collector) (bool, error)

	// Destroy releases any resources held by the source. It is called once
	// when the Host stops running.
	Destroy() error
}

// FrameTimer is implemented by a Source that decides the duration of each
// frame. A Source that replays a recording is an example.
type FrameTimer interface {
	// FrameDelta returns the duration of the numbered frame. Returns false if
	// the wall clock should be used.
	FrameDelta(frame uint64) (time.Duration, bool)
}

// TickRecorder is implemented by an EventRecorder that also records the
// duration of every frame.
type TickRecorder interface {
	RecordTick(frame uint64, delta time.Duration) error
}

// Logic is called once per frame after the Registry has been updated. The
// application should stop if the function returns false.
type Logic func(s *userinput.Snapshot) (bool, error)

// Host owns a Collector and a Registry and drives them once per frame.
type Host struct {
	prefs     *Preferences
	collector *userinput.Collector
	registry  *signals.Registry

	ticks []TickRecorder
}

// NewHost is the preferred method of initialisation for the Host type.
func NewHost(prefs *Preferences) *Host {
	return &Host{
		prefs:     prefs,
		collector: userinput.NewCollector(),
		registry:  signals.NewRegistry(),
	}
}

// Registry returns the Registry updated by the Host on every frame.
func (h *Host) Registry() *signals.Registry {
	return h.registry
}

// AttachEventRecorder attaches the recorder to the Collector owned by the
// Host. If the recorder also implements TickRecorder then it is sent the
// duration of every frame.
func (h *Host) AttachEventRecorder(r userinput.EventRecorder) {
	h.collector.AttachEventRecorder(r)
	if t, ok := r.(TickRecorder); ok {
		h.ticks = append(h.ticks, t)
	}
}

// Run the frame loop until the context is cancelled, the source or the logic
// requests that the program ends, or an error occurs. The source is always
// destroyed before Run returns and any error from Destroy() is combined with
// the error that caused the loop to end.
//
// Run returns nil if the loop ended because of a quit request or because the
// context was cancelled.
func (h *Host) Run(ctx context.Context, src Source, logic Logic) (err error) {
	defer func() {
		err = multierr.Append(err, src.Destroy())
	}()

	lim, err := newFPSLimiter(h.prefs.FPS.Get().(int))
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go lim.run(ctx)

	logger.Logf(logger.Allow, "host", "running at %d fps", lim.framesPerSecond)

	last := time.Now()
	for {
		now, ok := lim.wait(ctx)
		if !ok {
			logger.Log(logger.Allow, "host", "cancelled")
			return nil
		}

		cont, err := src.Service(h.collector)
		if err != nil {
			return err
		}
		if !cont {
			logger.Log(logger.Allow, "host", "quit requested by source")
			return nil
		}

		delta := now.Sub(last)
		last = now
		if ft, ok := src.(FrameTimer); ok {
			if d, ok := ft.FrameDelta(h.collector.Frame() + 1); ok {
				delta = d
			}
		}

		s := h.collector.Tick(delta)
		for _, t := range h.ticks {
			err = t.RecordTick(s.Frame(), delta)
			if err != nil {
				return err
			}
		}

		h.registry.Update(s)

		if logic != nil {
			cont, err = logic(s)
			if err != nil {
				return err
			}
			if !cont {
				logger.Log(logger.Allow, "host", "quit requested by logic")
				return nil
			}
		}
	}
}
